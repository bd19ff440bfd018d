package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"sort"

	"github.com/mvickers/tidemark/syntax"
)

// Position queries over the block cache. All lookups are binary
// searches with a clamp-to-neighbor policy on miss; queries against an
// invalid cache return sentinels (-1, nil) instead of failing.

// BlockAt returns the index and block containing byte position pos. A
// position inside the blank-line gap before a block belongs to that
// block, not its predecessor; positions past the last block clamp to
// the last block. Returns (-1, nil) while the cache is invalid.
func (d *Document) BlockAt(pos int) (int, *Block) {
	if !d.cache.valid || len(d.cache.blocks) == 0 {
		return -1, nil
	}
	blocks := d.cache.blocks
	i := sort.Search(len(blocks), func(k int) bool {
		return blocks[k].End > pos
	})
	if i >= len(blocks) {
		i = len(blocks) - 1
	}
	return i, &blocks[i]
}

// BlockAtVRow returns the index and block covering virtual row v,
// clamped at both document ends. Returns (-1, nil) while the cache is
// invalid.
func (d *Document) BlockAtVRow(v int) (int, *Block) {
	if !d.cache.valid || len(d.cache.blocks) == 0 {
		return -1, nil
	}
	blocks := d.cache.blocks
	i := sort.Search(len(blocks), func(k int) bool {
		return blocks[k].VRowStart+blocks[k].VRowCount > v
	})
	if i >= len(blocks) {
		i = len(blocks) - 1
	}
	return i, &blocks[i]
}

// CursorVRow returns the absolute virtual row of a cursor byte
// position, or -1 while the cache is invalid.
func (d *Document) CursorVRow(cursor int) int {
	_, b := d.BlockAt(cursor)
	if b == nil {
		return -1
	}
	return b.VRowStart + d.CursorVRowInBlock(b, cursor)
}

// CursorVRowInBlock returns the cursor's row offset within a block.
// Cursor positions inside the block's leading blank-line region yield a
// non-positive offset (the blank-line index minus the blank count), so
// VRowStart plus the offset stays an absolute row. The per-kind
// arithmetic mirrors computeRows exactly.
func (d *Document) CursorVRowInBlock(b *Block, cursor int) int {
	if cursor < b.Start {
		idx := d.countNewlines(b.BlankStart, max(cursor, b.BlankStart))
		return idx - b.LeadingBlanks
	}
	row := 0
	switch b.Kind {
	case KindRule, KindMath, KindImage:
		// single cells; the cursor sits on the block as a whole
	case KindHeader:
		row = d.headerCursorRow(b.Payload.(Header), cursor)
	case KindCode:
		row = d.countNewlines(b.Start, min(cursor, b.End))
	case KindTable:
		row = d.tableCursorRow(b, b.Payload.(Table), cursor)
	default:
		row = d.wrappedCursorRow(b, cursor, d.wrapWidth)
	}
	if row > b.VRowCount-1 {
		row = b.VRowCount - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}

// wrappedCursorRow walks logical lines and their greedy wrap segments
// until the segment holding the cursor is reached.
func (d *Document) wrappedCursorRow(b *Block, cursor, width int) int {
	row := 0
	pos := b.Start
	for pos < b.End {
		textEnd, next := syntax.LineEnd(d.buf, pos)
		if textEnd > b.End {
			textEnd = b.End
		}
		if cursor <= textEnd {
			p := pos
			for {
				np, _ := d.buf.FindWrapPoint(p, textEnd, width)
				if np <= p || cursor < np || np >= textEnd {
					break
				}
				p = np
				row++
			}
			return row
		}
		row += d.packedSegments(pos, textEnd, width)
		if next <= pos || next >= b.End {
			break
		}
		pos = next
	}
	return row
}

// headerCursorRow mirrors headerRows: the display width consumed up to
// the cursor, divided by the scaled available width, gives the wrapped
// line, which then scales back to terminal rows.
func (d *Document) headerCursorRow(h Header, cursor int) int {
	scale := 1
	if h.Level == 1 {
		scale = 2
	}
	avail := d.wrapWidth / scale
	if avail < 1 {
		avail = 1
	}
	upto := min(max(cursor, h.Content.Start), h.Content.End)
	w := d.buf.WidthBetween(h.Content.Start, upto)
	line := w / avail
	if upto == h.Content.End && w > 0 && w%avail == 0 {
		line-- // cursor at the very end stays on the last line
	}
	return line * scale
}

// tableCursorRow locates the cursor's source line, maps it onto the
// table's display rows (borders and dividers included) and adds the
// wrapped offset inside the cursor's cell. A cursor on the delimiter
// source line clamps to the header's last display row.
func (d *Document) tableCursorRow(b *Block, t Table, cursor int) int {
	colWidth := d.tableColWidth(t.Cols)
	row := 1 // below the top border
	line := 0
	pos := b.Start
	for pos < b.End {
		textEnd, next := syntax.LineEnd(d.buf, pos)
		tr := tableRowOfLine(line)
		if cursor <= textEnd {
			if tr < 0 || tr >= t.Rows {
				return row - 1
			}
			return row + d.cellCursorOffset(t, tr, cursor, colWidth)
		}
		if tr >= 0 && tr < t.Rows {
			row += d.tableRowHeight(t, tr, colWidth)
			if tr >= 1 && tr < t.Rows-1 {
				row++
			}
		}
		line++
		if next <= pos {
			break
		}
		pos = next
	}
	return row
}

// tableRowOfLine maps a source line index onto a table row index: line
// 0 is the header row, line 1 the delimiter row (-1), later lines are
// body rows.
func tableRowOfLine(line int) int {
	switch {
	case line == 0:
		return 0
	case line == 1:
		return -1
	}
	return line - 1
}

// cellCursorOffset returns the wrapped row offset of the cursor inside
// its cell of table row tr, or 0 when the cursor sits on cell markup.
func (d *Document) cellCursorOffset(t Table, tr, cursor, colWidth int) int {
	for c := 0; c < t.Cols; c++ {
		cell := t.Cell(tr, c)
		if cursor >= cell.Start && cursor <= cell.End {
			return d.packedSegments(cell.Start, max(cursor, cell.Start), colWidth) - 1
		}
	}
	return 0
}

func (d *Document) countNewlines(i, j int) int {
	n := 0
	for ; i < j; i++ {
		if d.buf.ByteAt(i) == '\n' {
			n++
		}
	}
	return n
}
