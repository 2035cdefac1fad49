package power

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies the semantic type of a column.
type Kind int

const (
	KindText Kind = iota
	KindEnum
	KindInt
	KindScalar
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEnum:
		return "enum"
	case KindInt:
		return "int"
	case KindScalar:
		return "scalar"
	case KindFlag:
		return "flag"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Flag is a boolean cell. Canonical spelling on disk is "True" / "False".
type Flag bool

// MarshalCSV implements csvutil.Marshaler.
func (f Flag) MarshalCSV() ([]byte, error) {
	if f {
		return []byte("True"), nil
	}
	return []byte("False"), nil
}

// UnmarshalCSV accepts True/False in any casing plus the legacy 1/0
// spellings. Anything else becomes the default false; a stray flag cell
// must not discard the whole row.
func (f *Flag) UnmarshalCSV(data []byte) error {
	switch strings.ToLower(string(data)) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Scalar is a floating-point cell. Written in shortest form that parses
// back exactly, so canonical output is stable under round trip.
type Scalar float64

// MarshalCSV implements csvutil.Marshaler.
func (s Scalar) MarshalCSV() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(s), 'g', -1, 64), nil
}

// UnmarshalCSV implements csvutil.Unmarshaler. An empty cell is the
// default 0; malformed non-empty text is a row decode error.
func (s *Scalar) UnmarshalCSV(data []byte) error {
	if len(data) == 0 {
		*s = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("malformed scalar cell %q", string(data))
	}
	*s = Scalar(v)
	return nil
}

// Int is a base-10 integer cell.
type Int int

// MarshalCSV implements csvutil.Marshaler.
func (i Int) MarshalCSV() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}

// UnmarshalCSV implements csvutil.Unmarshaler. An empty cell is the
// default 0; malformed non-empty text is a row decode error.
func (i *Int) UnmarshalCSV(data []byte) error {
	if len(data) == 0 {
		*i = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("malformed integer cell %q", string(data))
	}
	*i = Int(v)
	return nil
}

// Enum is an enumerated-string cell. The value sets are game data, not
// schema, so values are carried verbatim and never fail to decode.
type Enum string
