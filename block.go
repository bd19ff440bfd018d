package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"github.com/mvickers/tidemark/inline"
	"github.com/mvickers/tidemark/syntax"
)

// Kind discriminates block variants.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeader
	KindCode
	KindMath
	KindTable
	KindRule
	KindImage
	KindQuote
	KindList
	KindFootnote
)

func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeader:
		return "header"
	case KindCode:
		return "code"
	case KindMath:
		return "math"
	case KindTable:
		return "table"
	case KindRule:
		return "rule"
	case KindImage:
		return "image"
	case KindQuote:
		return "quote"
	case KindList:
		return "list"
	case KindFootnote:
		return "footnote"
	}
	return "unknown"
}

// Block is one top-level markdown element occupying the byte range
// [Start,End). BlankStart <= Start marks the leading blank-line bytes
// attributed to this block, LeadingBlanks counts those lines.
//
// VRowStart/VRowCount position the block in wrapped terminal rows; see
// the package documentation for the blank-row accounting. Runs is
// populated for block kinds carrying inline content (paragraph, list
// item, blockquote, footnote definition).
type Block struct {
	Kind          Kind
	BlankStart    int
	Start         int
	End           int
	LeadingBlanks int
	VRowStart     int
	VRowCount     int
	Runs          []inline.Run
	Payload       Payload
}

// Payload is the sealed sum of block-specific data. Paragraph blocks
// carry a nil payload.
type Payload interface {
	isBlockPayload()
}

// Header is the payload of an ATX or setext header.
type Header struct {
	Level   int
	Content syntax.Span
	ID      syntax.Span
	Setext  bool
}

// Code is the payload of a fenced code block. Highlighted text is not
// stored here: it lives in the Document's per-generation side cache.
type Code struct {
	Lang    syntax.Span
	Content syntax.Span
}

// Math is the payload of a display math block. The rendered sketch
// handle lives in the Document's side cache.
type Math struct {
	Content syntax.Span
}

// Table is the payload of a pipe table. Cells is a flat row-major
// slice of exactly Rows*Cols spans (one allocation instead of per-row
// arrays); row 0 is the header row.
type Table struct {
	Align []syntax.Alignment
	Rows  int
	Cols  int
	Cells []syntax.Span
}

// Cell returns the span of the cell at (row, col).
func (t Table) Cell(row, col int) syntax.Span {
	return t.Cells[row*t.Cols+col]
}

// Rule is the payload of a horizontal rule.
type Rule struct{}

// Image is the payload of a standalone image. Width/Height follow the
// size spec semantics of syntax.ImageSpec. The resolved path and the
// computed display-row count live in the Document's side cache.
type Image struct {
	Alt    syntax.Span
	Path   syntax.Span
	Title  syntax.Span
	Width  int
	Height int
}

// Quote is the payload of a blockquote.
type Quote struct {
	Level int
}

// List is the payload of a list item.
type List struct {
	Kind        syntax.ListKind
	Indent      int
	MarkerWidth int
	Ordinal     int
	Task        syntax.TaskState
}

// Footnote is the payload of a footnote definition.
type Footnote struct {
	ID syntax.Span
}

func (Header) isBlockPayload()   {}
func (Code) isBlockPayload()     {}
func (Math) isBlockPayload()     {}
func (Table) isBlockPayload()    {}
func (Rule) isBlockPayload()     {}
func (Image) isBlockPayload()    {}
func (Quote) isBlockPayload()    {}
func (List) isBlockPayload()     {}
func (Footnote) isBlockPayload() {}

// hasInlineContent reports whether a block kind owns inline runs.
func (k Kind) hasInlineContent() bool {
	switch k {
	case KindParagraph, KindList, KindQuote, KindFootnote:
		return true
	}
	return false
}

// BlockCache holds the ordered block array of one parse generation.
type BlockCache struct {
	blocks     []Block
	textLen    int
	wrapWidth  int
	textHeight int
	totalVRows int
	valid      bool
}

// Valid reports whether the cache reflects the current buffer content.
func (c *BlockCache) Valid() bool {
	return c.valid
}

// Blocks returns the block array. Callers must not mutate it.
func (c *BlockCache) Blocks() []Block {
	return c.blocks
}

// TotalVRows returns the total wrapped row count of the document, or
// -1 on an invalid cache.
func (c *BlockCache) TotalVRows() int {
	if !c.valid {
		return -1
	}
	return c.totalVRows
}
