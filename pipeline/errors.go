package pipeline

import "fmt"

// NotFoundError reports an input path that did not exist at invocation time.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found at %q", e.Path)
}

// ReadError reports a failure while streaming or decoding the input after
// the existence check passed. The message carries the encoding hint because
// a wrong declared encoding is the most common cause on legacy game files.
type ReadError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %q: %v (the declared encoding %q may be wrong; try %q)",
		e.Path, e.Err, e.Encoding, "windows-1252")
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure while persisting the report.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing CSV file %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
