package swz

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/veldran/powerdesk/internal/power"
)

// Write encodes records as a powerTypes stream: the sentinel line, the
// canonical column header, then one comma-delimited row per record in
// canonical field order and formatting.
func Write(w io.Writer, records []power.Power) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, power.SentinelLine); err != nil {
		return &CodecError{Code: ErrCodeWrite, Message: "writing sentinel line", Err: err}
	}
	if _, err := fmt.Fprintln(bw, power.CanonicalHeader()); err != nil {
		return &CodecError{Code: ErrCodeWrite, Message: "writing header line", Err: err}
	}

	cw := csv.NewWriter(bw)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false // the canonical header line is written above
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return &CodecError{Code: ErrCodeWrite, Message: fmt.Sprintf("encoding record %d", i+1), Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &CodecError{Code: ErrCodeWrite, Message: "flushing rows", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &CodecError{Code: ErrCodeWrite, Message: "flushing output", Err: err}
	}
	return nil
}

// WriteFile saves records to path atomically. The stream is written to a
// sibling temp file, flushed and synced, then renamed over the
// destination. Until the rename succeeds the destination is untouched;
// on any failure the temp file is removed. This rename is the system's
// only durability guarantee.
func WriteFile(path string, records []power.Power) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &CodecError{Code: ErrCodeWrite, Message: fmt.Sprintf("creating temp file %s", tmp), Err: err}
	}
	if err := Write(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return &CodecError{Code: ErrCodeWrite, Message: fmt.Sprintf("syncing %s", tmp), Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &CodecError{Code: ErrCodeWrite, Message: fmt.Sprintf("closing %s", tmp), Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &CodecError{Code: ErrCodeRename, Message: fmt.Sprintf("replacing %s", path), Err: err}
	}
	return nil
}
