// Package swz reads and writes the powerTypes tabular file format.
//
// On disk a file is plain comma-delimited text with a two-line header
// convention: an optional sentinel line naming the format family, then the
// canonical column header, then one record per line. The reader trusts
// positional mapping and never validates the header contents; the writer
// always emits both header lines.
//
// Load follows a partial-success policy: a row that fails to decode is
// skipped with a logged warning so one malformed row cannot block the rest
// of the file. File-level failures (missing file, I/O, bad encoding) abort
// the whole operation.
//
// Save is atomic: records are written to a sibling temp file which is then
// renamed over the destination, so a failure part way leaves the original
// file untouched.
package swz
