package export

import (
	"errors"
	"fmt"
)

// ErrNoWebsite is returned when Export is called without a content model.
var ErrNoWebsite = errors.New("no website to export")

// FileError identifies the output file whose generation failed. Any
// FileError aborts the export; no partial file set is returned.
type FileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "generating file"
	}
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %s: %v", e.Path, msg, e.Cause)
	}
	return fmt.Sprintf("export error: %s: %s", e.Path, msg)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}
