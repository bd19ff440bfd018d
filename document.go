package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"github.com/mvickers/tidemark/buffer"
	"github.com/mvickers/tidemark/inline"
)

// Document owns a text buffer together with its parsed block cache and
// all derived layout state. It is exclusively owned by one thread;
// other threads must only read buffer snapshots through accessors
// outside this core and never mutate the block cache.
type Document struct {
	buf        *buffer.Buffer
	svc        Services
	wrapWidth  int
	textHeight int
	cache      BlockCache
	extras     []blockExtra
	truncated  bool
}

// blockExtra is the mutable side cache of one block slot: the lazily
// computed fields of a logically read-only Block live here, keyed by
// block index, cleared on invalidation.
type blockExtra struct {
	imagePath string
	imageRows int
	sketch    Sketch
	hl        highlightCache
	unclosed  []inline.Delim
}

type highlightCache struct {
	text string
	done bool
}

// NewDocument creates a document over the given text. Any service in
// svc may be nil; layout then falls back to single-row placeholders.
func NewDocument(text string, svc Services) *Document {
	return &Document{
		buf:        buffer.FromString(text),
		svc:        svc,
		wrapWidth:  DefaultWrapWidth,
		textHeight: DefaultTextHeight,
	}
}

// Buffer exposes the underlying gap buffer. Mutating it directly
// bypasses invalidation; use Insert/Delete instead.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// WrapWidth returns the current wrap width in terminal columns.
func (d *Document) WrapWidth() int {
	return d.wrapWidth
}

// TextHeight returns the current text height in terminal rows.
func (d *Document) TextHeight() int {
	return d.textHeight
}

// SetWrapWidth changes the wrap width and invalidates the cache.
func (d *Document) SetWrapWidth(w int) {
	if w < 1 {
		w = 1
	}
	if w != d.wrapWidth {
		d.wrapWidth = w
		d.Invalidate()
	}
}

// SetTextHeight changes the text height and invalidates the cache.
func (d *Document) SetTextHeight(h int) {
	if h < 1 {
		h = 1
	}
	if h != d.textHeight {
		d.textHeight = h
		d.Invalidate()
	}
}

// Insert inserts text at a byte position and invalidates the cache.
// All previously obtained byte positions are stale afterwards.
func (d *Document) Insert(pos int, s string) {
	d.buf.Insert(pos, s)
	d.Invalidate()
}

// Delete removes n bytes at a byte position and invalidates the cache.
func (d *Document) Delete(pos, n int) {
	d.buf.Delete(pos, n)
	d.Invalidate()
}

// Invalidate drops the block cache and every nested per-block
// allocation. Math sketches are released back to their renderer.
func (d *Document) Invalidate() {
	for i := range d.extras {
		if d.extras[i].sketch != nil {
			d.extras[i].sketch.Release()
			d.extras[i].sketch = nil
		}
	}
	d.extras = nil
	d.cache = BlockCache{}
	d.truncated = false
}

// Valid reports whether the block cache reflects the buffer content.
func (d *Document) Valid() bool {
	return d.cache.valid
}

// Truncated reports whether the last parse stopped at a growth ceiling
// and therefore covers only a prefix of the document.
func (d *Document) Truncated() bool {
	return d.truncated
}

// Blocks returns the parsed block array, or nil when the cache is
// invalid. Callers must not mutate the returned slice.
func (d *Document) Blocks() []Block {
	if !d.cache.valid {
		return nil
	}
	return d.cache.blocks
}

// TotalVRows returns the document's wrapped row total, or -1 when the
// cache is invalid.
func (d *Document) TotalVRows() int {
	return d.cache.TotalVRows()
}

// HighlightedCode returns the highlighted text of code block i,
// computing and caching it on first use. The second return is false
// when i is not a code block, no highlighter is configured, or the
// cache is invalid.
func (d *Document) HighlightedCode(i int) (string, bool) {
	if !d.cache.valid || i < 0 || i >= len(d.cache.blocks) {
		return "", false
	}
	code, ok := d.cache.blocks[i].Payload.(Code)
	if !ok || d.svc.Code == nil {
		return "", false
	}
	extra := &d.extras[i]
	if extra.hl.done {
		return extra.hl.text, true
	}
	lang := code.Lang.Text(d.buf)
	text, err := d.svc.Code.Highlight(lang, code.Content.Text(d.buf))
	if err != nil {
		T().Errorf("highlighting failed: %v", err)
		text = code.Content.Text(d.buf)
	}
	extra.hl = highlightCache{text: text, done: true}
	return text, true
}

// MathSketch returns the rendered sketch of math block i, if one was
// produced during layout.
func (d *Document) MathSketch(i int) (Sketch, bool) {
	if !d.cache.valid || i < 0 || i >= len(d.extras) {
		return nil, false
	}
	if d.extras[i].sketch == nil {
		return nil, false
	}
	return d.extras[i].sketch, true
}

// ResolvedImagePath returns the cached resolved path of image block i.
func (d *Document) ResolvedImagePath(i int) (string, bool) {
	if !d.cache.valid || i < 0 || i >= len(d.extras) {
		return "", false
	}
	if d.extras[i].imagePath == "" {
		return "", false
	}
	return d.extras[i].imagePath, true
}

// UnclosedStyles returns the delimiters left open in block i, as
// reported by the inline tokenizer. Purely diagnostic.
func (d *Document) UnclosedStyles(i int) []inline.Delim {
	if !d.cache.valid || i < 0 || i >= len(d.extras) {
		return nil
	}
	return d.extras[i].unclosed
}
