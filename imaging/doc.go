/*
Package imaging is a filesystem-backed image service for the document
model: it resolves image paths relative to a document directory, reads
pixel dimensions from image headers, and converts pixel aspect ratios
into terminal cell rows.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package imaging

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ImageError is an error type for the imaging package.
type ImageError string

func (e ImageError) Error() string {
	return string(e)
}

// ErrUnsupported signals an image format without a registered decoder.
const ErrUnsupported = ImageError("unsupported image format")
