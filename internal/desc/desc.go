// Package desc serves the bundled column-description table.
package desc

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed power_desc.json
var resource embed.FS

const resourceName = "power_desc.json"

// Load decodes the bundled description table, mapping column names to
// human-readable descriptions. The resource is re-read on every call; the
// table is small and there is no cache to invalidate.
func Load() (map[string]string, error) {
	return LoadFrom(resource, resourceName)
}

// LoadFrom decodes a description table from fsys. The decode is
// all-or-nothing: malformed content fails the whole call with no partial
// result.
func LoadFrom(fsys fs.FS, name string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading description resource %s: %w", name, err)
	}
	table := make(map[string]string)
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding description resource %s: %w", name, err)
	}
	return table, nil
}
