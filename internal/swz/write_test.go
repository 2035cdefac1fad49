package swz

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldran/powerdesk/internal/power"
)

func TestWrite_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePowers()))

	g := goldie.New(t)
	g.Assert(t, "canonical_save", buf.Bytes())
}

func TestWrite_HeaderLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3) // sentinel, header, trailing newline
	assert.Equal(t, power.SentinelLine, lines[0])
	assert.Equal(t, power.CanonicalHeader(), lines[1])
	assert.Empty(t, lines[2])
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "powers.csv")
	records := samplePowers()

	require.NoError(t, WriteFile(path, records))
	res, err := ReadFile(path, nil)
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	assert.Equal(t, records, res.Powers)

	// Canonical formatting is idempotent: a second save writes identical bytes.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, res.Powers))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "powers.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, samplePowers()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), power.SentinelLine+"\n"))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be gone after rename")
}

func TestWriteFile_FailureLeavesDestinationUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "powers.csv")
	original := []byte("original contents")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	// Occupy the temp path with a directory so the temp create fails
	// before anything reaches the destination.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err := WriteFile(path, samplePowers())
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeWrite, ce.Code)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, data)
}
