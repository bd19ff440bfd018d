package buffer

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

// minGap is the initial gap size and the minimum gap created on grow.
const minGap = 64

// Buffer is a gap buffer over UTF-8 text.
//
// A Buffer created by
//
//	&Buffer{}
//
// or by New() is a valid object and behaves like the empty string.
// Buffers are not safe for concurrent use; they are meant to be owned
// by a single editing thread (see the tidemark package for the
// ownership discipline).
type Buffer struct {
	data       []byte // text bytes with a gap at [gapStart, gapEnd)
	gapStart   int
	gapEnd     int
	generation uint64
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		data:   make([]byte, minGap),
		gapEnd: minGap,
	}
}

// NewSized creates an empty buffer with room for n bytes of text, for
// callers which know the final size up front (e.g. file loading).
func NewSized(n int) *Buffer {
	if n < minGap {
		n = minGap
	}
	return &Buffer{
		data:   make([]byte, n),
		gapEnd: n,
	}
}

// FromString creates a buffer holding s, with the gap at the end.
func FromString(s string) *Buffer {
	return FromBytes([]byte(s))
}

// FromBytes creates a buffer holding a copy of b, with the gap at the end.
func FromBytes(b []byte) *Buffer {
	data := make([]byte, len(b)+minGap)
	copy(data, b)
	return &Buffer{
		data:     data,
		gapStart: len(b),
		gapEnd:   len(data),
	}
}

// Len returns the text length in bytes, excluding the gap.
func (b *Buffer) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// Generation returns a counter which is bumped on every mutation.
// Derived caches compare generations to detect stale positions.
func (b *Buffer) Generation() uint64 {
	return b.generation
}

// ByteAt returns the byte at position pos, or 0 if pos is out of range.
func (b *Buffer) ByteAt(pos int) byte {
	if pos < 0 || pos >= b.Len() {
		return 0
	}
	if pos < b.gapStart {
		return b.data[pos]
	}
	return b.data[pos+(b.gapEnd-b.gapStart)]
}

// Substring copies the text in [i,j) into a new string. The range is
// clamped to the buffer bounds.
func (b *Buffer) Substring(i, j int) string {
	n := b.Len()
	if i < 0 {
		i = 0
	}
	if j > n {
		j = n
	}
	if i >= j {
		return ""
	}
	out := make([]byte, j-i)
	b.copyRange(out, i, j)
	return string(out)
}

// String returns the complete buffer content as a Go string.
func (b *Buffer) String() string {
	return b.Substring(0, b.Len())
}

// copyRange fills out with the bytes of [i,j). Callers guarantee
// 0 <= i <= j <= Len and len(out) == j-i.
func (b *Buffer) copyRange(out []byte, i, j int) {
	gap := b.gapEnd - b.gapStart
	switch {
	case j <= b.gapStart:
		copy(out, b.data[i:j])
	case i >= b.gapStart:
		copy(out, b.data[i+gap:j+gap])
	default:
		k := copy(out, b.data[i:b.gapStart])
		copy(out[k:], b.data[b.gapEnd:j+gap])
	}
}

// moveGap moves the gap so that it starts at pos.
func (b *Buffer) moveGap(pos int) {
	if pos == b.gapStart {
		return
	}
	gap := b.gapEnd - b.gapStart
	if pos < b.gapStart {
		copy(b.data[pos+gap:b.gapEnd], b.data[pos:b.gapStart])
	} else {
		copy(b.data[b.gapStart:], b.data[b.gapEnd:pos+gap])
	}
	b.gapStart = pos
	b.gapEnd = pos + gap
}

// grow enlarges the gap to hold at least need more bytes.
func (b *Buffer) grow(need int) {
	gap := b.gapEnd - b.gapStart
	if gap >= need {
		return
	}
	newGap := need + minGap + b.Len()/2
	data := make([]byte, b.Len()+newGap)
	copy(data, b.data[:b.gapStart])
	copy(data[b.gapStart+newGap:], b.data[b.gapEnd:])
	b.data = data
	b.gapEnd = b.gapStart + newGap
}

// Insert inserts s at byte position pos. Positions outside [0,Len] are
// clamped. Insertion at the active edit position is amortized O(1);
// inserting elsewhere moves the gap first.
func (b *Buffer) Insert(pos int, s string) {
	b.InsertBytes(pos, []byte(s))
}

// InsertBytes inserts raw bytes at byte position pos.
func (b *Buffer) InsertBytes(pos int, s []byte) {
	if len(s) == 0 {
		return
	}
	n := b.Len()
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	b.grow(len(s))
	b.moveGap(pos)
	copy(b.data[b.gapStart:], s)
	b.gapStart += len(s)
	b.generation++
}

// Append inserts s at the end of the buffer.
func (b *Buffer) Append(s string) {
	b.Insert(b.Len(), s)
}

// AppendBytes inserts raw bytes at the end of the buffer.
func (b *Buffer) AppendBytes(s []byte) {
	b.InsertBytes(b.Len(), s)
}

// Delete removes n bytes starting at pos. The range is clamped to the
// buffer bounds.
func (b *Buffer) Delete(pos, n int) {
	length := b.Len()
	if pos < 0 {
		n += pos
		pos = 0
	}
	if pos >= length || n <= 0 {
		return
	}
	if pos+n > length {
		n = length - pos
	}
	b.moveGap(pos)
	b.gapEnd += n
	b.generation++
}
