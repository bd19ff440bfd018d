package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"github.com/mvickers/tidemark/syntax"
)

// Virtual-row layout. Each block kind maps its byte content onto
// wrapped terminal rows; the cursor index in index.go mirrors these
// algorithms per kind, so the two can never disagree about a block's
// row count.

// DefaultWrapWidth is the wrap width used before a terminal geometry
// is known.
const DefaultWrapWidth = 80

// DefaultTextHeight is the text height used before a terminal geometry
// is known.
const DefaultTextHeight = 24

// computeRows returns the wrapped row count of a block's own content,
// excluding leading blank lines (those are accounted separately).
// Expensive sub-results (resolved image path, math sketch) land in the
// block's side-cache slot.
func (d *Document) computeRows(b *Block, extra *blockExtra) int {
	switch b.Kind {
	case KindRule:
		return 1
	case KindHeader:
		return d.headerRows(b.Payload.(Header))
	case KindCode:
		return d.codeRows(b.Payload.(Code))
	case KindMath:
		return d.mathRows(b.Payload.(Math), extra)
	case KindImage:
		return d.imageRows(b.Payload.(Image), extra)
	case KindTable:
		return d.tableRows(b.Payload.(Table))
	}
	return d.wrappedRows(b.Start, b.End, d.wrapWidth)
}

// wrappedRows wraps each newline-delimited logical line in [start,end)
// independently against width and sums the row counts. An empty line
// still occupies one row; the result is never less than 1.
func (d *Document) wrappedRows(start, end, width int) int {
	rows := 0
	pos := start
	for pos < end {
		textEnd, next := syntax.LineEnd(d.buf, pos)
		if textEnd > end {
			textEnd = end
		}
		rows += d.packedSegments(pos, textEnd, width)
		if next <= pos || next >= end {
			break
		}
		pos = next
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// packedSegments counts the visual rows of one newline-free text span
// under greedy grapheme packing. Empty spans count as one row.
func (d *Document) packedSegments(start, end, width int) int {
	if start >= end {
		return 1
	}
	segs := 0
	pos := start
	for pos < end {
		next, _ := d.buf.FindWrapPoint(pos, end, width)
		if next <= pos {
			break
		}
		pos = next
		segs++
	}
	if segs < 1 {
		segs = 1
	}
	return segs
}

// headerRows scales level-1 headers to double-height cells: the content
// wraps against half the width and every wrapped line occupies two
// terminal rows.
func (d *Document) headerRows(h Header) int {
	scale := 1
	if h.Level == 1 {
		scale = 2
	}
	avail := d.wrapWidth / scale
	if avail < 1 {
		avail = 1
	}
	w := d.buf.WidthBetween(h.Content.Start, h.Content.End)
	lines := (w + avail - 1) / avail
	if lines < 1 {
		lines = 1
	}
	return lines * scale
}

// codeRows counts literal lines; code is never wrapped.
func (d *Document) codeRows(c Code) int {
	rows := 1
	for i := c.Content.Start; i < c.Content.End; i++ {
		if d.buf.ByteAt(i) == '\n' {
			rows++
		}
	}
	return rows
}

func (d *Document) mathRows(m Math, extra *blockExtra) int {
	if extra.sketch != nil {
		return max(1, extra.sketch.Height())
	}
	if d.svc.Math == nil {
		return 1
	}
	sketch, err := d.svc.Math.Render(m.Content.Text(d.buf))
	if err != nil {
		T().Infof("math rendering failed: %v", err)
		return 1
	}
	extra.sketch = sketch
	return max(1, sketch.Height())
}

// imageRows resolves the image and derives its cell-row count from the
// pixel aspect ratio. Any failure along the way degrades to a single
// placeholder row.
func (d *Document) imageRows(img Image, extra *blockExtra) int {
	if extra.imageRows > 0 {
		return extra.imageRows
	}
	if d.svc.Images == nil {
		return 1
	}
	path, err := d.svc.Images.Resolve(img.Path.Text(d.buf))
	if err != nil {
		T().Infof("image resolution failed: %v", err)
		return 1
	}
	extra.imagePath = path
	if !d.svc.Images.IsSupported(path) {
		return 1
	}
	pxW, pxH, err := d.svc.Images.Size(path)
	if err != nil {
		T().Infof("image sizing failed: %v", err)
		return 1
	}
	cols := d.targetColumns(img.Width)
	targetRows := 0
	if img.Height > 0 {
		targetRows = min(img.Height, d.textHeight)
	}
	rows := d.svc.Images.CalcRows(pxW, pxH, cols, targetRows)
	if rows < 1 {
		rows = 1
	}
	extra.imageRows = rows
	return rows
}

// targetColumns maps a width spec onto terminal columns: negative is a
// percentage of the wrap width, positive is literal columns clamped to
// the wrap width, zero defaults to half the wrap width.
func (d *Document) targetColumns(width int) int {
	cols := d.wrapWidth / 2
	switch {
	case width < 0:
		cols = d.wrapWidth * -width / 100
	case width > 0:
		cols = min(width, d.wrapWidth)
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// tableColWidth divides the wrap width evenly among columns, reserving
// one column per border/divider character.
func (d *Document) tableColWidth(cols int) int {
	w := (d.wrapWidth - (cols + 1)) / cols
	if w < 1 {
		w = 1
	}
	return w
}

// tableRows sums per-row heights plus borders. A row is as tall as its
// tallest wrapped cell; divider rows separate consecutive body rows but
// never follow the header or the last row.
func (d *Document) tableRows(t Table) int {
	colWidth := d.tableColWidth(t.Cols)
	total := 1 // top border
	for r := 0; r < t.Rows; r++ {
		total += d.tableRowHeight(t, r, colWidth)
		if r >= 1 && r < t.Rows-1 {
			total++
		}
	}
	return total + 1 // bottom border
}

func (d *Document) tableRowHeight(t Table, row, colWidth int) int {
	h := 1
	for c := 0; c < t.Cols; c++ {
		cell := t.Cell(row, c)
		if ch := d.packedSegments(cell.Start, cell.End, colWidth); ch > h {
			h = ch
		}
	}
	return h
}
