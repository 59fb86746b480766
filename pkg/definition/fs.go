package definition

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-appgen/pkg/app"
)

// Document pairs a decoded definition with the path it was read from.
type Document struct {
	Path       string
	Definition app.Definition
}

// LoadFS walks fsys in lexical order and decodes every JSON/YAML file it
// finds.
// A nil fsys yields no documents.
func LoadFS(ctx context.Context, fsys fs.FS) ([]Document, error) {
	if fsys == nil {
		return nil, nil
	}

	var docs []Document
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !IsDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		format, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		def, err := Decode(data, format)
		if err != nil {
			return fmt.Errorf("definition: %s: %w", path, err)
		}
		docs = append(docs, Document{Path: path, Definition: def})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}
