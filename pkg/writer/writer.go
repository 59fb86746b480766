// Package writer formats rendered declarations and writes them to disk.
package writer

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Writer persists generated content at path.
type Writer interface {
	Write(ctx context.Context, path string, content []byte) error
}

// WriteError reports a failure to format or persist a generated file.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writer: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Format normalises content for the language implied by path's extension.
// Go sources go through go/format; everything else has trailing whitespace
// removed, line endings normalised and exactly one final newline.
func Format(path string, content []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return format.Source(content)
	default:
		return normalizeWhitespace(content), nil
	}
}

func normalizeWhitespace(content []byte) []byte {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	return []byte(out + "\n")
}

// Option configures a FileWriter.
type Option func(*FileWriter)

// WithRoot resolves relative output paths against dir.
func WithRoot(dir string) Option {
	return func(w *FileWriter) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			w.root = trimmed
		}
	}
}

// WithPerm sets the permission bits of written files.
func WithPerm(perm os.FileMode) Option {
	return func(w *FileWriter) {
		if perm != 0 {
			w.perm = perm
		}
	}
}

// WithoutFormatting writes content exactly as rendered.
func WithoutFormatting() Option {
	return func(w *FileWriter) {
		w.format = false
	}
}

// FileWriter formats content, creates missing parent directories and replaces
// the target file atomically. Existing files are overwritten.
type FileWriter struct {
	root   string
	perm   os.FileMode
	format bool
}

var _ Writer = (*FileWriter)(nil)

// NewFileWriter constructs a FileWriter rooted at the working directory.
func NewFileWriter(options ...Option) *FileWriter {
	w := &FileWriter{
		root:   ".",
		perm:   0o644,
		format: true,
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Resolve returns the filesystem location path is written to.
func (w *FileWriter) Resolve(path string) string {
	native := filepath.FromSlash(path)
	if filepath.IsAbs(native) {
		return filepath.Clean(native)
	}
	return filepath.Join(w.root, native)
}

// Write formats content and stores it at path.
func (w *FileWriter) Write(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := content
	if w.format {
		formatted, err := Format(path, content)
		if err != nil {
			return &WriteError{Op: "format", Path: path, Err: err}
		}
		data = formatted
	}

	target := w.Resolve(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &WriteError{Op: "mkdir", Path: path, Err: err}
	}
	if err := writeFileAtomic(target, data, w.perm); err != nil {
		return &WriteError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it over path, leaving any previous file intact on failure.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".appgen-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// MemoryWriter keeps formatted output in memory. It backs dry runs and tests.
type MemoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

var _ Writer = (*MemoryWriter)(nil)

// NewMemoryWriter returns an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string][]byte)}
}

// Write formats content and records it under path.
func (w *MemoryWriter) Write(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	formatted, err := Format(path, content)
	if err != nil {
		return &WriteError{Op: "format", Path: path, Err: err}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = formatted
	return nil
}

// File returns the content recorded for path.
func (w *MemoryWriter) File(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[path]
	return bytes.Clone(data), ok
}

// Paths lists recorded paths in sorted order.
func (w *MemoryWriter) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
