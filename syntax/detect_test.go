package syntax

import (
	"testing"
)

// text is a minimal Source over a plain string, for detector tests.
type text string

func (t text) Len() int { return len(t) }

func (t text) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(t) {
		return 0
	}
	return t[pos]
}

func (t text) Substring(i, j int) string {
	if i < 0 {
		i = 0
	}
	if j > len(t) {
		j = len(t)
	}
	if i >= j {
		return ""
	}
	return string(t[i:j])
}

func TestLineEnd(t *testing.T) {
	src := text("ab\ncd")
	textEnd, next := LineEnd(src, 0)
	if textEnd != 2 || next != 3 {
		t.Errorf("expected (2,3), got (%d,%d)", textEnd, next)
	}
	textEnd, next = LineEnd(src, 3)
	if textEnd != 5 || next != 5 {
		t.Errorf("unterminated line: expected (5,5), got (%d,%d)", textEnd, next)
	}
}

func TestIsBlankLine(t *testing.T) {
	if !IsBlankLine(text("  \t \nx"), 0) {
		t.Errorf("spaces and tabs make a blank line")
	}
	if IsBlankLine(text(" x\n"), 0) {
		t.Errorf("line with content is not blank")
	}
	if !IsBlankLine(text(""), 0) {
		t.Errorf("empty input reads as a blank line")
	}
}

func TestImage(t *testing.T) {
	src := text(`![a cat](img/cat.png "Cat" =50x10)` + "\n")
	spec, n, ok := Image(src, 0)
	if !ok {
		t.Fatalf("expected image to match")
	}
	if n != src.Len() {
		t.Errorf("expected %d bytes consumed, got %d", src.Len(), n)
	}
	if spec.Alt.Text(src) != "a cat" {
		t.Errorf("alt reads %q", spec.Alt.Text(src))
	}
	if spec.Path.Text(src) != "img/cat.png" {
		t.Errorf("path reads %q", spec.Path.Text(src))
	}
	if spec.Title.Text(src) != "Cat" {
		t.Errorf("title reads %q", spec.Title.Text(src))
	}
	if spec.Width != 50 || spec.Height != 10 {
		t.Errorf("expected size 50x10, got %dx%d", spec.Width, spec.Height)
	}
}

func TestImagePercentWidth(t *testing.T) {
	src := text("![x](a.png =80%)\n")
	spec, _, ok := Image(src, 0)
	if !ok {
		t.Fatalf("expected image to match")
	}
	if spec.Width != -80 {
		t.Errorf("percentage widths are negative, got %d", spec.Width)
	}
}

func TestImageRejectsTrailingText(t *testing.T) {
	if _, _, ok := Image(text("![x](a.png) and more\n"), 0); ok {
		t.Errorf("inline image use is not a standalone image block")
	}
}

func TestFence(t *testing.T) {
	src := text("```go\nfmt.Println()\n```\nafter")
	spec, n, ok := Fence(src, 0)
	if !ok {
		t.Fatalf("expected fence to match")
	}
	if spec.Lang.Text(src) != "go" {
		t.Errorf("lang reads %q", spec.Lang.Text(src))
	}
	if spec.Content.Text(src) != "fmt.Println()\n" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
	if src.Substring(n, n+5) != "after" {
		t.Errorf("fence consumed wrong length %d", n)
	}
}

func TestFenceUnterminatedRunsToEOF(t *testing.T) {
	src := text("~~~\ncode")
	spec, n, ok := Fence(src, 0)
	if !ok {
		t.Fatalf("expected unterminated fence to match")
	}
	if n != src.Len() {
		t.Errorf("expected fence to run to EOF, consumed %d", n)
	}
	if spec.Content.Text(src) != "code" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
}

func TestFenceNeedsThreeMarkers(t *testing.T) {
	if _, _, ok := Fence(text("``\nx\n``\n"), 0); ok {
		t.Errorf("two backticks are not a fence")
	}
}

func TestMathBlockSingleLine(t *testing.T) {
	src := text("$$e=mc^2$$\n")
	spec, n, ok := MathBlock(src, 0)
	if !ok {
		t.Fatalf("expected math block to match")
	}
	if spec.Content.Text(src) != "e=mc^2" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
	if n != src.Len() {
		t.Errorf("consumed %d", n)
	}
}

func TestMathBlockMultiLine(t *testing.T) {
	src := text("$$\n\\frac{a}{b}\n$$\n")
	spec, n, ok := MathBlock(src, 0)
	if !ok {
		t.Fatalf("expected math block to match")
	}
	if spec.Content.Text(src) != "\\frac{a}{b}\n" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
	if n != src.Len() {
		t.Errorf("consumed %d", n)
	}
}

func TestRule(t *testing.T) {
	for _, line := range []string{"---\n", "***\n", "___\n", "- - -\n", "-----\n"} {
		if _, ok := Rule(text(line), 0); !ok {
			t.Errorf("expected %q to be a rule", line)
		}
	}
	for _, line := range []string{"--\n", "-*-\n", "--- x\n"} {
		if _, ok := Rule(text(line), 0); ok {
			t.Errorf("expected %q not to be a rule", line)
		}
	}
}

func TestATXHeader(t *testing.T) {
	src := text("## Results {#results}\n")
	spec, n, ok := ATXHeader(src, 0)
	if !ok {
		t.Fatalf("expected header to match")
	}
	if spec.Level != 2 {
		t.Errorf("level %d", spec.Level)
	}
	if spec.Content.Text(src) != "Results" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
	if spec.ID.Text(src) != "results" {
		t.Errorf("id reads %q", spec.ID.Text(src))
	}
	if n != src.Len() {
		t.Errorf("consumed %d", n)
	}
}

func TestATXHeaderNeedsSpace(t *testing.T) {
	if _, _, ok := ATXHeader(text("#hashtag\n"), 0); ok {
		t.Errorf("'#hashtag' is not a header")
	}
	if _, _, ok := ATXHeader(text("####### seven\n"), 0); ok {
		t.Errorf("level 7 does not exist")
	}
}

func TestSetextUnderline(t *testing.T) {
	if level, _, ok := SetextUnderline(text("====\n"), 0); !ok || level != 1 {
		t.Errorf("expected level 1, got (%d,%v)", level, ok)
	}
	if level, _, ok := SetextUnderline(text("--\n"), 0); !ok || level != 2 {
		t.Errorf("expected level 2, got (%d,%v)", level, ok)
	}
	if _, _, ok := SetextUnderline(text("=\n"), 0); ok {
		t.Errorf("a single marker is not an underline")
	}
	if _, _, ok := SetextUnderline(text("== x\n"), 0); ok {
		t.Errorf("trailing content disqualifies the underline")
	}
}

func TestFootnoteDef(t *testing.T) {
	src := text("[^note-1]: the details\n")
	spec, _, ok := FootnoteDef(src, 0)
	if !ok {
		t.Fatalf("expected footnote definition to match")
	}
	if spec.ID.Text(src) != "note-1" {
		t.Errorf("id reads %q", spec.ID.Text(src))
	}
	if spec.Content.Text(src) != "the details" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
}

func TestBlockquoteLevels(t *testing.T) {
	src := text("> > deep\n")
	spec, _, ok := Blockquote(src, 0)
	if !ok {
		t.Fatalf("expected blockquote to match")
	}
	if spec.Level != 2 {
		t.Errorf("level %d", spec.Level)
	}
	if spec.Content.Text(src) != "deep" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
}

func TestListItemUnordered(t *testing.T) {
	src := text("  - item text\n")
	spec, _, ok := ListItem(src, 0)
	if !ok {
		t.Fatalf("expected list item to match")
	}
	if spec.Kind != ListUnordered || spec.Indent != 2 {
		t.Errorf("kind %v indent %d", spec.Kind, spec.Indent)
	}
	if spec.Content.Text(src) != "item text" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
}

func TestListItemOrdered(t *testing.T) {
	src := text("12. twelfth\n")
	spec, _, ok := ListItem(src, 0)
	if !ok {
		t.Fatalf("expected list item to match")
	}
	if spec.Kind != ListOrdered || spec.Ordinal != 12 {
		t.Errorf("kind %v ordinal %d", spec.Kind, spec.Ordinal)
	}
}

func TestListItemTask(t *testing.T) {
	src := text("- [x] done\n")
	spec, _, ok := ListItem(src, 0)
	if !ok {
		t.Fatalf("expected task item to match")
	}
	if spec.Task != TaskDone {
		t.Errorf("task state %v", spec.Task)
	}
	if spec.Content.Text(src) != "done" {
		t.Errorf("content reads %q", spec.Content.Text(src))
	}
	spec, _, ok = ListItem(text("- [ ] open\n"), 0)
	if !ok || spec.Task != TaskOpen {
		t.Errorf("expected open task, got (%v,%v)", spec.Task, ok)
	}
}
