/*
Package textfile loads UTF-8 text files into gap buffers.

Files are read fragment by fragment, with fragment sizes scaled to the
file size. Reading runs on a background goroutine and broadcasts
progress events, so a UI can show load progress for large documents
while the synchronous Load API stays trivial for the common case.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FileError is an error type for the textfile package.
type FileError string

func (e FileError) Error() string {
	return string(e)
}

// ErrNotRegular signals an attempt to load something other than a
// regular file.
const ErrNotRegular = FileError("not a regular file")

// ErrShortRead signals that a fragment read returned fewer bytes than
// the file size promised.
const ErrShortRead = FileError("short read of text fragment")
