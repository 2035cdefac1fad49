package power

import (
	"reflect"
	"strings"
)

// SentinelLine is the fixed first line marking a file as belonging to the
// powerTypes format family. Readers tolerate its absence; the writer
// always emits it.
const SentinelLine = "powerTypes"

// ColumnSpec describes one canonical column.
type ColumnSpec struct {
	Name     string // on-disk column name
	Kind     Kind
	Position int // zero-based canonical position
}

var (
	columns   []ColumnSpec
	columnIdx map[string]int
)

func init() {
	t := reflect.TypeOf(Power{})
	columns = make([]ColumnSpec, 0, t.NumField())
	columnIdx = make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("csv")
		if !ok {
			continue
		}
		columnIdx[name] = len(columns)
		columns = append(columns, ColumnSpec{
			Name:     name,
			Kind:     kindOf(f.Type),
			Position: len(columns),
		})
	}
}

func kindOf(t reflect.Type) Kind {
	switch t {
	case reflect.TypeOf(Flag(false)):
		return KindFlag
	case reflect.TypeOf(Scalar(0)):
		return KindScalar
	case reflect.TypeOf(Int(0)):
		return KindInt
	case reflect.TypeOf(Enum("")):
		return KindEnum
	default:
		return KindText
	}
}

// Fields returns the canonical column table in on-disk order. The slice is
// shared; callers must not mutate it.
func Fields() []ColumnSpec {
	return columns
}

// ColumnNames returns the canonical column names in on-disk order.
func ColumnNames() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}

// CanonicalHeader returns the fixed header line naming every column.
func CanonicalHeader() string {
	return strings.Join(ColumnNames(), ",")
}

// Lookup returns the spec for a column name.
func Lookup(name string) (ColumnSpec, bool) {
	i, ok := columnIdx[name]
	if !ok {
		return ColumnSpec{}, false
	}
	return columns[i], true
}
