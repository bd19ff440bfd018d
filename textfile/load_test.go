package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWholeFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	content := "# Title\n\nsome text\n"
	path := writeTestFile(t, content)
	buf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if buf.String() != content {
		t.Errorf("buffer reads %q", buf.String())
	}
}

func TestLoadLargeFileInFragments(t *testing.T) {
	content := strings.Repeat("0123456789abcdef\n", 5000) // ~85KB
	path := writeTestFile(t, content)
	buf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if buf.Len() != len(content) {
		t.Fatalf("loaded %d bytes, want %d", buf.Len(), len(content))
	}
	if buf.Substring(0, 16) != content[:16] {
		t.Errorf("content head diverged")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTestFile(t, "")
	buf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected an empty buffer, got %d bytes", buf.Len())
	}
}

func TestLoadRejectsDirectories(t *testing.T) {
	if _, err := Load(t.TempDir()); err != ErrNotRegular {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestProgressEvents(t *testing.T) {
	content := strings.Repeat("x", 2000)
	path := writeTestFile(t, content)
	l, err := Start(path, 512)
	if err != nil {
		t.Fatal(err)
	}
	events := l.Progress()
	var last Progress
	count := 0
	for m := range events {
		last = m.(Progress)
		count++
	}
	if _, err := l.Wait(); err != nil {
		t.Fatal(err)
	}
	if count == 0 {
		t.Fatalf("expected progress events")
	}
	if last.Loaded != last.Total || last.Total != 2000 {
		t.Errorf("final progress %+v", last)
	}
}
