package syntax

import "testing"

const simpleTable = "| Name | Qty | Price |\n" +
	"|:-----|:---:|------:|\n" +
	"| Tea  | 2   | 3.50  |\n" +
	"| Rice | 1   | 1.20  |\n"

func TestTable(t *testing.T) {
	src := text(simpleTable + "after")
	spec, n, ok := Table(src, 0)
	if !ok {
		t.Fatalf("expected table to match")
	}
	if spec.Rows != 3 || spec.Cols != 3 {
		t.Fatalf("expected 3x3, got %dx%d", spec.Rows, spec.Cols)
	}
	if n != len(simpleTable) {
		t.Errorf("consumed %d, want %d", n, len(simpleTable))
	}
	want := []Alignment{AlignLeft, AlignCenter, AlignRight}
	for i, a := range want {
		if spec.Align[i] != a {
			t.Errorf("column %d alignment %v, want %v", i, spec.Align[i], a)
		}
	}
	if len(spec.Cells) != spec.Rows*spec.Cols {
		t.Fatalf("flat cell array holds %d spans", len(spec.Cells))
	}
	if got := spec.Cells[0].Text(src); got != "Name" {
		t.Errorf("header cell reads %q", got)
	}
	if got := spec.Cells[1*spec.Cols+2].Text(src); got != "3.50" {
		t.Errorf("body cell reads %q", got)
	}
}

func TestTableMissingCellsBecomeEmpty(t *testing.T) {
	src := text("| a | b |\n|---|---|\n| c |\n")
	spec, _, ok := Table(src, 0)
	if !ok {
		t.Fatalf("expected table to match")
	}
	if spec.Rows != 2 || spec.Cols != 2 {
		t.Fatalf("expected 2x2, got %dx%d", spec.Rows, spec.Cols)
	}
	if got := spec.Cells[3]; !got.IsEmpty() {
		t.Errorf("missing trailing cell should be empty, reads %q", got.Text(src))
	}
}

func TestTableSurplusCellsVoidTable(t *testing.T) {
	src := text("| a | b |\n|---|---|\n| c | d | e |\n")
	if _, _, ok := Table(src, 0); ok {
		t.Errorf("a row with surplus cells must void the whole table")
	}
}

func TestTableNeedsDelimiterRow(t *testing.T) {
	if _, _, ok := Table(text("| a | b |\n| c | d |\n"), 0); ok {
		t.Errorf("no delimiter row, no table")
	}
	if _, _, ok := Table(text("| a | b |\n"), 0); ok {
		t.Errorf("a lone header row is not a table")
	}
}

func TestTableStopsAtNonPipeLine(t *testing.T) {
	src := text("| a |\n|---|\n| b |\nplain text\n")
	spec, n, ok := Table(src, 0)
	if !ok {
		t.Fatalf("expected table to match")
	}
	if spec.Rows != 2 {
		t.Errorf("expected 2 rows, got %d", spec.Rows)
	}
	if src.Substring(n, n+5) != "plain" {
		t.Errorf("table consumed wrong length %d", n)
	}
}

func TestTableEscapedPipeStaysInCell(t *testing.T) {
	src := text("| a\\|b | c |\n|---|---|\n| d | e |\n")
	spec, _, ok := Table(src, 0)
	if !ok {
		t.Fatalf("expected table to match")
	}
	if got := spec.Cells[0].Text(src); got != "a\\|b" {
		t.Errorf("escaped pipe split the cell: %q", got)
	}
}
