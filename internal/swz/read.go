package swz

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jszwec/csvutil"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/veldran/powerdesk/internal/power"
)

// RowError records one skipped row.
type RowError struct {
	// Row is the 1-based data row number, counted after the header lines.
	Row int

	// Err is the decode failure for that row.
	Err error
}

// Result is the outcome of decoding one powerTypes stream.
type Result struct {
	// Powers holds the successfully decoded records in file order.
	Powers []power.Power

	// Skipped reports rows dropped under the partial-success policy.
	Skipped []RowError

	// HadSentinel is true when the stream opened with the sentinel line.
	HadSentinel bool
}

// ReadFile loads a powerTypes file from disk. The file must exist and hold
// UTF-8-decodable text; UTF-8 and UTF-16 byte order marks are tolerated.
// File-level failures abort the load, row-level failures do not.
func ReadFile(path string, log *zap.Logger) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &CodecError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file not found at %s", path)}
		}
		return nil, &CodecError{Code: ErrCodeRead, Message: fmt.Sprintf("reading %s", path), Err: err}
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, &CodecError{Code: ErrCodeEncoding, Message: fmt.Sprintf("decoding %s", path), Err: err}
	}
	return Read(strings.NewReader(text), log)
}

// Read decodes a powerTypes stream. The first line is dropped when it is
// the format sentinel; the following line is the column header, which is
// skipped without validation since field positions are trusted to match
// the canonical order. Each remaining line decodes into one Power; rows
// that fail decoding are skipped with a logged warning.
func Read(r io.Reader, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := &Result{Powers: []power.Power{}}
	br := bufio.NewReader(r)

	first, err := readLine(br)
	if errors.Is(err, io.EOF) && first == "" {
		return res, nil // empty stream, zero records
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &CodecError{Code: ErrCodeRead, Message: "reading header", Err: err}
	}
	if strings.HasPrefix(first, power.SentinelLine) {
		res.HadSentinel = true
		if _, err := readLine(br); err != nil && !errors.Is(err, io.EOF) {
			return nil, &CodecError{Code: ErrCodeRead, Message: "reading header", Err: err}
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = len(power.Fields())
	dec, err := csvutil.NewDecoder(cr, power.ColumnNames()...)
	if err != nil {
		return nil, &CodecError{Code: ErrCodeRead, Message: "creating row decoder", Err: err}
	}

	for row := 1; ; row++ {
		var p power.Power
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{Row: row, Err: err})
			log.Warn("skipping malformed row",
				zap.Int("row", row),
				zap.Error(err))
			continue
		}
		res.Powers = append(res.Powers, p)
	}
	return res, nil
}

// readLine returns the next line without its trailing newline. A final
// line without a newline is returned together with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// decodeText turns raw file bytes into UTF-8 text. UTF-16 input with a
// byte order mark is transcoded, a UTF-8 byte order mark is stripped, and
// anything else that is not valid UTF-8 is rejected.
func decodeText(raw []byte) (string, error) {
	if len(raw) >= 2 {
		if (raw[0] == 0xFE && raw[1] == 0xFF) || (raw[0] == 0xFF && raw[1] == 0xFE) {
			dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
			out, _, err := transform.Bytes(dec, raw)
			if err != nil {
				return "", fmt.Errorf("transcoding UTF-16 text: %w", err)
			}
			return string(out), nil
		}
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(raw) {
		return "", errors.New("not valid UTF-8 text")
	}
	return string(raw), nil
}
