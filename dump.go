package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Debug output of a parsed document, one line per block, with the
// block kinds colorized for quick visual scanning.

var kindColors = map[Kind]*color.Color{
	KindParagraph: color.New(color.FgWhite),
	KindHeader:    color.New(color.FgYellow, color.Bold),
	KindCode:      color.New(color.FgGreen),
	KindMath:      color.New(color.FgCyan),
	KindTable:     color.New(color.FgBlue),
	KindRule:      color.New(color.FgHiBlack),
	KindImage:     color.New(color.FgMagenta),
	KindQuote:     color.New(color.FgHiBlue),
	KindList:      color.New(color.FgHiGreen),
	KindFootnote:  color.New(color.FgHiMagenta),
}

// Dump writes a human-readable listing of the block cache to w. With
// an invalid cache it notes that and returns.
func (d *Document) Dump(w io.Writer) {
	if !d.cache.valid {
		fmt.Fprintln(w, "document: cache invalid, no blocks")
		return
	}
	fmt.Fprintf(w, "document: %d bytes, %d blocks, %d vrows\n",
		d.buf.Len(), len(d.cache.blocks), d.cache.totalVRows)
	for i, b := range d.cache.blocks {
		c := kindColors[b.Kind]
		if c == nil {
			c = color.New(color.FgWhite)
		}
		c.Fprintf(w, "%3d %-10s", i, b.Kind)
		fmt.Fprintf(w, " bytes [%d,%d)", b.BlankStart, b.End)
		if b.LeadingBlanks > 0 {
			fmt.Fprintf(w, " blanks %d", b.LeadingBlanks)
		}
		fmt.Fprintf(w, " vrows [%d,%d)", b.VRowStart, b.VRowStart+b.VRowCount)
		if len(b.Runs) > 0 {
			fmt.Fprintf(w, " runs %d", len(b.Runs))
		}
		fmt.Fprintln(w)
	}
}
