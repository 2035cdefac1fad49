// Package power defines the record schema for the powerTypes tabular format.
//
// A Power is one row of the file, mapped 1:1 to the fixed canonical column
// set. Field order in the struct IS the on-disk column order; the csv tags
// carry the exact on-disk column names, including the dotted Gfx sub-columns.
//
// Cell values use a small set of semantic kinds with canonical wire
// formatting:
//   - Flag: boolean, written as literal "True" / "False"
//   - Scalar: float64, written in shortest stable form
//   - Int: base-10 integer
//   - Enum: enumerated game string, carried verbatim
//   - plain string: free text
//
// The canonical formatting is idempotent under round trip: loading a
// canonically written file and writing it again reproduces the same bytes.
package power
