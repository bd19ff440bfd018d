/*
Package buffer implements a gap buffer for UTF-8 text.

Gap buffers

A gap buffer stores text in a single byte array with a movable empty
region (the gap) at the active edit position. Insertions and deletions
at that position are amortized O(1); editing elsewhere first moves the
gap, which costs O(distance). This matches the access pattern of an
interactive editor, where consecutive edits cluster around one cursor.

All positions in this package are byte offsets. Byte positions are
stable between mutations; callers must not retain positions across an
edit. A Generation counter is bumped on every mutation so that derived
caches can cheaply detect staleness.

Beyond raw byte access the buffer offers Unicode-aware iteration:
decoding a rune at a position, stepping over grapheme clusters together
with their terminal display width, measuring display width of a range,
and finding wrap points for a given column budget. Grapheme segmentation
and width measurement follow UAX#29 via github.com/rivo/uniseg, with
github.com/mattn/go-runewidth as fallback for clusters uniseg reports
as zero-width.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package buffer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BufError is an error type for the buffer package.
type BufError string

func (e BufError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a buffer position is
// greater than the length of the buffer.
const ErrIndexOutOfBounds = BufError("index out of bounds")
