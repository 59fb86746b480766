package writer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appgen/pkg/writer"
)

func TestFormat(t *testing.T) {
	got, err := writer.Format("a.ts", []byte("const a = 1;   \r\nconst b = 2;\t\n\n\n"))
	if err != nil {
		t.Fatalf("format ts: %v", err)
	}
	if want := "const a = 1;\nconst b = 2;\n"; string(got) != want {
		t.Fatalf("format ts = %q, want %q", got, want)
	}

	got, err = writer.Format("a.go", []byte("package a\nvar  x=1\n"))
	if err != nil {
		t.Fatalf("format go: %v", err)
	}
	if want := "package a\n\nvar x = 1\n"; string(got) != want {
		t.Fatalf("format go = %q, want %q", got, want)
	}

	if _, err := writer.Format("a.go", []byte("package {")); err == nil {
		t.Fatalf("expected go format error")
	}
}

func TestFileWriter_CreatesDirectoriesAndOverwrites(t *testing.T) {
	root := t.TempDir()
	w := writer.NewFileWriter(writer.WithRoot(root))
	path := "./src/apps/my-app/my-app.definition.ts"

	if err := w.Write(context.Background(), path, []byte("first\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(context.Background(), path, []byte("second\n")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	target := filepath.Join(root, "src", "apps", "my-app", "my-app.definition.ts")
	if got := w.Resolve(path); got != target {
		t.Fatalf("Resolve = %q, want %q", got, target)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second\n" {
		t.Fatalf("unexpected content %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(target))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileWriter_FormatFailureWritesNothing(t *testing.T) {
	root := t.TempDir()
	w := writer.NewFileWriter(writer.WithRoot(root))

	err := w.Write(context.Background(), "src/apps/bad/bad.definition.go", []byte("package {"))
	var writeErr *writer.WriteError
	if !errors.As(err, &writeErr) || writeErr.Op != "format" {
		t.Fatalf("expected format WriteError, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "src")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing to be written, stat err = %v", err)
	}
}

func TestFileWriter_WithoutFormatting(t *testing.T) {
	root := t.TempDir()
	w := writer.NewFileWriter(writer.WithRoot(root), writer.WithoutFormatting())

	if err := w.Write(context.Background(), "raw.go", []byte("not go")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "raw.go"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "not go" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestFileWriter_MkdirFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "src")
	if err := os.WriteFile(blocker, []byte("file"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := writer.NewFileWriter(writer.WithRoot(root))
	err := w.Write(context.Background(), "src/apps/x/x.definition.ts", []byte("x"))
	var writeErr *writer.WriteError
	if !errors.As(err, &writeErr) || writeErr.Op != "mkdir" {
		t.Fatalf("expected mkdir WriteError, got %v", err)
	}
}

func TestFileWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := writer.NewFileWriter(writer.WithRoot(t.TempDir()))
	if err := w.Write(ctx, "a.ts", []byte("a")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryWriter(t *testing.T) {
	w := writer.NewMemoryWriter()
	ctx := context.Background()

	if err := w.Write(ctx, "b.ts", []byte("b  \n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(ctx, "a.go", []byte("package a")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if diff := cmp.Diff([]string{"a.go", "b.ts"}, w.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	data, ok := w.File("b.ts")
	if !ok || string(data) != "b\n" {
		t.Fatalf("unexpected content %q (ok=%v)", data, ok)
	}
	if _, ok := w.File("missing"); ok {
		t.Fatalf("expected missing file")
	}
}
