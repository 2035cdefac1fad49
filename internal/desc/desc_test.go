package desc

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldran/powerdesk/internal/power"
)

func TestLoadCoversEveryColumn(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	for _, spec := range power.Fields() {
		text, ok := table[spec.Name]
		assert.True(t, ok, "no description for column %q", spec.Name)
		assert.NotEmpty(t, text, "empty description for column %q", spec.Name)
	}
	assert.Len(t, table, len(power.Fields()))
}

func TestLoadFrom_Malformed(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json": {Data: []byte(`{"PowerName": `)},
	}
	_, err := LoadFrom(fsys, "bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding description resource")
}

func TestLoadFrom_Missing(t *testing.T) {
	_, err := LoadFrom(fstest.MapFS{}, "gone.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading description resource")
}
