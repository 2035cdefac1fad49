package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldran/powerdesk/internal/power"
	"github.com/veldran/powerdesk/internal/swz"
)

// defaultRow renders one data row with every cell at its canonical
// default, overridden by name.
func defaultRow(overrides map[string]string) string {
	cells := make([]string, 0, len(power.Fields()))
	for _, spec := range power.Fields() {
		v, ok := overrides[spec.Name]
		if !ok {
			switch spec.Kind {
			case power.KindInt, power.KindScalar:
				v = "0"
			case power.KindFlag:
				v = "False"
			}
		}
		cells = append(cells, v)
	}
	return strings.Join(cells, ",")
}

// writeCanonicalFixture saves records through the codec, so the file on
// disk is in canonical form.
func writeCanonicalFixture(t *testing.T, records []power.Power) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "powers.csv")
	require.NoError(t, swz.WriteFile(path, records))
	return path
}

// writeRawFixture writes raw lines, for fixtures that are deliberately
// not canonical.
func writeRawFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "powers.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}
