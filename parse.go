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

// MaxBlocks bounds block-array growth for one parse pass. Hitting the
// ceiling stops the scan; the prefix built so far stays valid and is
// reported as the result (partial document, not an error).
const MaxBlocks = 65536

// Parse (re)builds the block cache from byte 0. It is a no-op while
// the cache is valid; a previous parse is never diffed against — every
// block and all of its nested allocations are created fresh.
func (d *Document) Parse() error {
	if d.cache.valid {
		return nil
	}
	d.Invalidate() // release any stale side-cache entries
	p := parser{doc: d, buf: d.buf}
	p.run()
	d.cache = BlockCache{
		blocks:     p.blocks,
		textLen:    d.buf.Len(),
		wrapWidth:  d.wrapWidth,
		textHeight: d.textHeight,
		totalVRows: p.row,
		valid:      true,
	}
	d.extras = p.extras
	d.truncated = p.truncated
	T().Debugf("parsed %d blocks, %d vrows", len(p.blocks), p.row)
	return nil
}

type parser struct {
	doc       *Document
	buf       syntax.Source
	blocks    []Block
	extras    []blockExtra
	row       int
	truncated bool
}

func (p *parser) run() {
	n := p.buf.Len()
	pos := 0
	for pos < n {
		blankStart := pos
		blanks := 0
		for pos < n && syntax.IsBlankLine(p.buf, pos) {
			_, next := syntax.LineEnd(p.buf, pos)
			if next == pos { // unterminated blank tail
				pos = n
				blanks++
				break
			}
			pos = next
			blanks++
		}
		if pos >= n {
			p.attachTrailing(blankStart, blanks, n)
			return
		}
		if len(p.blocks) >= MaxBlocks {
			p.truncated = true
			return
		}
		// blank rows between blocks are accounted to the predecessor;
		// the document's own leading blanks shift the first block's
		// VRowStart instead
		if blanks > 0 && len(p.blocks) > 0 {
			p.blocks[len(p.blocks)-1].VRowCount += blanks
		}
		p.row += blanks

		b := Block{BlankStart: blankStart, Start: pos, LeadingBlanks: blanks}
		var unclosed []inline.Delim
		if !p.detect(&b) {
			p.accumulateParagraph(&b)
		}
		if b.Kind.hasInlineContent() {
			b.Runs, unclosed = inline.Tokenize(p.buf, b.Start, b.End)
		}
		b.VRowStart = p.row
		p.extras = append(p.extras, blockExtra{unclosed: unclosed})
		b.VRowCount = p.doc.computeRows(&b, &p.extras[len(p.extras)-1])
		p.row += b.VRowCount
		p.blocks = append(p.blocks, b)
		pos = b.End
	}
}

// attachTrailing accounts for blank lines running into the end of the
// buffer: they extend the last block. An all-blank document yields a
// single empty paragraph block carrying them.
func (p *parser) attachTrailing(blankStart, blanks, n int) {
	if blanks == 0 {
		return
	}
	if len(p.blocks) > 0 {
		last := &p.blocks[len(p.blocks)-1]
		if last.Kind.hasInlineContent() && n > last.End {
			// the block was tokenized up to its old end; the added
			// bytes get one text run so run coverage stays exhaustive
			last.Runs = append(last.Runs, inline.Run{
				Start: last.End, End: n, Kind: inline.KindText})
		}
		last.End = n
		last.VRowCount += blanks
		p.row += blanks
		return
	}
	p.row += blanks
	p.blocks = append(p.blocks, Block{
		Kind:          KindParagraph,
		BlankStart:    blankStart,
		Start:         n,
		End:           n,
		LeadingBlanks: blanks,
		VRowStart:     p.row,
	})
	p.extras = append(p.extras, blockExtra{})
}

// detect tries the block detectors in strict priority order. On a
// match it fills the block's kind, payload and end and returns true.
func (p *parser) detect(b *Block) bool {
	src, pos := p.buf, b.Start
	if spec, n, ok := syntax.Image(src, pos); ok {
		b.Kind = KindImage
		b.End = pos + n
		b.Payload = Image{Alt: spec.Alt, Path: spec.Path, Title: spec.Title,
			Width: spec.Width, Height: spec.Height}
		return true
	}
	if spec, n, ok := syntax.Fence(src, pos); ok {
		b.Kind = KindCode
		b.End = pos + n
		b.Payload = Code{Lang: spec.Lang, Content: spec.Content}
		return true
	}
	if spec, n, ok := syntax.MathBlock(src, pos); ok {
		b.Kind = KindMath
		b.End = pos + n
		b.Payload = Math{Content: spec.Content}
		return true
	}
	if spec, n, ok := syntax.Table(src, pos); ok {
		b.Kind = KindTable
		b.End = pos + n
		b.Payload = Table{Align: spec.Align, Rows: spec.Rows, Cols: spec.Cols,
			Cells: spec.Cells}
		return true
	}
	if n, ok := syntax.Rule(src, pos); ok {
		b.Kind = KindRule
		b.End = pos + n
		b.Payload = Rule{}
		return true
	}
	if spec, n, ok := syntax.ATXHeader(src, pos); ok {
		b.Kind = KindHeader
		b.End = pos + n
		b.Payload = Header{Level: spec.Level, Content: spec.Content, ID: spec.ID}
		return true
	}
	if spec, n, ok := syntax.FootnoteDef(src, pos); ok {
		b.Kind = KindFootnote
		b.End = p.lazyContinuation(pos + n)
		b.Payload = Footnote{ID: spec.ID}
		return true
	}
	if spec, n, ok := syntax.Blockquote(src, pos); ok {
		b.Kind = KindQuote
		b.End = p.quoteContinuation(pos + n)
		b.Payload = Quote{Level: spec.Level}
		return true
	}
	if spec, n, ok := syntax.ListItem(src, pos); ok {
		b.Kind = KindList
		b.End = p.listContinuation(pos+n, spec.Indent+spec.MarkerWidth)
		b.Payload = List{Kind: spec.Kind, Indent: spec.Indent,
			MarkerWidth: spec.MarkerWidth, Ordinal: spec.Ordinal, Task: spec.Task}
		return true
	}
	return false
}

// startsNewBlock probes whether any block construct begins at pos.
// Detectors are side-effect free, so probing is cheap and safe.
func (p *parser) startsNewBlock(pos int) bool {
	src := p.buf
	if _, _, ok := syntax.Image(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.Fence(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.MathBlock(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.Table(src, pos); ok {
		return true
	}
	if _, ok := syntax.Rule(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.ATXHeader(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.FootnoteDef(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.Blockquote(src, pos); ok {
		return true
	}
	if _, _, ok := syntax.ListItem(src, pos); ok {
		return true
	}
	return false
}

// lazyContinuation extends a block over subsequent lines until a blank
// line, a line opening a new block construct, or the buffer end.
func (p *parser) lazyContinuation(end int) int {
	n := p.buf.Len()
	for end < n {
		if syntax.IsBlankLine(p.buf, end) || p.startsNewBlock(end) {
			break
		}
		_, next := syntax.LineEnd(p.buf, end)
		if next == end {
			return n
		}
		end = next
	}
	return end
}

// quoteContinuation extends a blockquote over subsequent '>' lines.
// Continuation is line-prefix based only; the quoted content is not
// re-parsed into nested blocks.
func (p *parser) quoteContinuation(end int) int {
	n := p.buf.Len()
	for end < n {
		if _, _, ok := syntax.Blockquote(p.buf, end); !ok {
			break
		}
		_, next := syntax.LineEnd(p.buf, end)
		if next == end {
			return n
		}
		end = next
	}
	return end
}

// listContinuation extends a list item over lines indented at least to
// the item's content column.
func (p *parser) listContinuation(end, contentCol int) int {
	n := p.buf.Len()
	for end < n {
		if syntax.IsBlankLine(p.buf, end) {
			break
		}
		indent := 0
		for end+indent < n && p.buf.ByteAt(end+indent) == ' ' {
			indent++
		}
		if indent < contentCol {
			break
		}
		_, next := syntax.LineEnd(p.buf, end)
		if next == end {
			return n
		}
		end = next
	}
	return end
}

// accumulateParagraph consumes lines into a paragraph until a blank
// line, a line opening a new block construct, or the buffer end. At
// every line boundary a setext underline reclassifies the accumulated
// text into a header ending at the underline.
func (p *parser) accumulateParagraph(b *Block) {
	b.Kind = KindParagraph
	n := p.buf.Len()
	_, end := syntax.LineEnd(p.buf, b.Start)
	if end == b.Start { // unterminated single line
		b.End = n
		return
	}
	for end < n {
		if syntax.IsBlankLine(p.buf, end) {
			break
		}
		if level, length, ok := syntax.SetextUnderline(p.buf, end); ok {
			b.Kind = KindHeader
			b.Payload = Header{
				Level:   level,
				Content: syntax.Span{Start: b.Start, End: end - 1},
				Setext:  true,
			}
			b.End = end + length
			return
		}
		if p.startsNewBlock(end) {
			break
		}
		_, next := syntax.LineEnd(p.buf, end)
		if next == end {
			end = n
			break
		}
		end = next
	}
	b.End = end
}
