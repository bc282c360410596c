package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/model"
)

// textOperand returns s as it appears in an uncompressed content stream:
// a PDF literal string with backslashes and parentheses escaped.
func textOperand(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return "(" + s + ")"
}

// buildUncompressed builds the project report with readable content streams.
func buildUncompressed(t *testing.T) []byte {
	t.Helper()

	b := Build(model.ProjectReport(), config.DefaultLayout(), WithCompression(false))
	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return data
}

// TestBuild tests the fixed assembly sequence.
func TestBuild(t *testing.T) {
	t.Parallel()

	data := buildUncompressed(t)
	content := string(data)

	t.Run("has PDF header", func(t *testing.T) {
		t.Parallel()
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("expected %%PDF- header, got %q", data[:8])
		}
	})

	t.Run("has EOF trailer", func(t *testing.T) {
		t.Parallel()
		if !bytes.HasSuffix(bytes.TrimSpace(data), []byte("%%EOF")) {
			t.Errorf("expected %s trailer", "%%EOF")
		}
	})

	t.Run("writes the document title", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(content, textOperand(model.DocumentTitle)) {
			t.Error("expected document title in content stream")
		}
	})

	t.Run("writes seven headings in order", func(t *testing.T) {
		t.Parallel()
		last := -1
		for _, heading := range model.ProjectReport().Headings() {
			op := textOperand(heading)
			if n := strings.Count(content, op); n != 1 {
				t.Errorf("heading %q appears %d times, expected 1", heading, n)
				continue
			}
			pos := strings.Index(content, op)
			if pos < last {
				t.Errorf("heading %q is out of order", heading)
			}
			last = pos
		}
	})

	t.Run("no eighth heading", func(t *testing.T) {
		t.Parallel()
		if strings.Contains(content, "(8. ") {
			t.Error("unexpected eighth heading")
		}
	})
}

// TestBuild_Deterministic tests that repeated builds are byte-identical.
func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Build(model.ProjectReport(), config.DefaultLayout()).Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Build(model.ProjectReport(), config.DefaultLayout()).Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("expected byte-identical output across builds")
	}
}

// TestBuilder tests Builder state handling.
func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("counts sections", func(t *testing.T) {
		t.Parallel()
		b := Build(model.ProjectReport(), config.DefaultLayout())
		if b.SectionCount() != 7 {
			t.Errorf("got %d sections, expected 7", b.SectionCount())
		}
	})

	t.Run("content spans several pages", func(t *testing.T) {
		t.Parallel()
		b := Build(model.ProjectReport(), config.DefaultLayout())
		if b.PageCount() < 2 {
			t.Errorf("expected automatic page breaks, got %d page(s)", b.PageCount())
		}
	})

	t.Run("empty document has one page", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder(config.DefaultLayout())
		if b.PageCount() != 1 {
			t.Errorf("got %d pages, expected 1", b.PageCount())
		}
	})

	t.Run("Bytes is repeatable", func(t *testing.T) {
		t.Parallel()
		b := Build(model.ProjectReport(), config.DefaultLayout())
		first, err := b.Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := b.Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) == 0 || !bytes.Equal(first, second) {
			t.Error("expected the same non-empty bytes on every call")
		}
	})

	t.Run("appends after serialization are ignored", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder(config.DefaultLayout())
		b.AppendSection(model.Section{Title: "One", Body: "\nbody\n"})
		if _, err := b.Bytes(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b.AppendSection(model.Section{Title: "Two", Body: "\nbody\n"})
		if b.SectionCount() != 1 {
			t.Errorf("got %d sections, expected 1", b.SectionCount())
		}
	})

	t.Run("transcodes text for core fonts", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder(config.DefaultLayout(), WithCompression(false))
		b.AppendSection(model.Section{Title: "Café", Body: "\nx\n"})
		data, err := b.Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Contains(data, []byte("(1. Caf\xe9)")) {
			t.Error("expected cp1252-encoded heading")
		}
	})

	t.Run("landscape letter layout builds", func(t *testing.T) {
		t.Parallel()
		layout := config.DefaultLayout()
		layout.PageSize = "Letter"
		layout.Orientation = "L"
		data, err := Build(model.ProjectReport(), layout).Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Error("expected PDF output")
		}
	})
}

// TestBuilder_Finalize tests writing the document to disk.
func TestBuilder_Finalize(t *testing.T) {
	t.Parallel()

	t.Run("writes file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultOutputFile)
		b := Build(model.ProjectReport(), config.DefaultLayout())
		if err := b.Finalize(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		want, _ := b.Bytes()
		if !bytes.Equal(got, want) {
			t.Error("file contents differ from serialized document")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.pdf")
		if err := os.WriteFile(path, []byte("stale content that is much longer than nothing"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		if err := Build(model.ProjectReport(), config.DefaultLayout()).Finalize(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !bytes.HasPrefix(got, []byte("%PDF-")) {
			t.Error("expected file to be replaced by the report")
		}
	})

	t.Run("returns error for unwritable path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "report.pdf")
		err := Build(model.ProjectReport(), config.DefaultLayout()).Finalize(path)
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("expected no file to be created")
		}
	})
}

// TestBuilder_WriteTo tests serializing to an io.Writer.
func TestBuilder_WriteTo(t *testing.T) {
	t.Parallel()

	b := Build(model.ProjectReport(), config.DefaultLayout())

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
	}

	want, err := b.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("WriteTo output differs from Bytes")
	}
}
