package swz

import (
	"errors"
	"fmt"
)

// CodecError represents a file-level failure during load or save.
// Row-level decode failures never surface as CodecError; they are
// reported through Result.Skipped instead.
type CodecError struct {
	// Code identifies the failure category.
	Code CodecErrorCode

	// Message is a human-readable description, suitable for showing to
	// the editor user as-is.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// CodecErrorCode categorizes codec failures.
type CodecErrorCode string

const (
	// ErrCodeNotFound indicates the input file does not exist.
	ErrCodeNotFound CodecErrorCode = "FILE_NOT_FOUND"

	// ErrCodeEncoding indicates the input is not decodable text.
	ErrCodeEncoding CodecErrorCode = "BAD_ENCODING"

	// ErrCodeRead indicates an I/O failure while reading.
	ErrCodeRead CodecErrorCode = "READ_FAILED"

	// ErrCodeWrite indicates an I/O failure while writing the temp file.
	ErrCodeWrite CodecErrorCode = "WRITE_FAILED"

	// ErrCodeRename indicates the final rename over the destination failed.
	ErrCodeRename CodecErrorCode = "RENAME_FAILED"
)

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodecError) Unwrap() error { return e.Err }

// IsNotFound returns true if the error is a missing-file error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNotFound
	}
	return false
}
