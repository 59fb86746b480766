package render

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-appgen/pkg/app"
)

// Renderer turns an app definition into the source text of one target
// language.
type Renderer interface {
	Name() string
	// Extension is the output file extension without the leading dot.
	Extension() string
	Render(ctx context.Context, def app.Definition) ([]byte, error)
}

// Output is a rendered declaration and the path it belongs at.
type Output struct {
	Path     string
	Content  []byte
	Renderer string
}

// OutputPath derives the conventional location of a definition file:
// ./src/apps/<id>/<id>.definition.<ext>.
func OutputPath(id, ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	return "./" + path.Join("src", "apps", id, id+".definition."+ext)
}

// Render runs renderer against def and pairs the content with its output
// path. The definition is validated before the renderer sees it.
func Render(ctx context.Context, renderer Renderer, def app.Definition) (Output, error) {
	if renderer == nil {
		return Output{}, fmt.Errorf("render: renderer is required")
	}
	if err := def.Validate(); err != nil {
		return Output{}, err
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}

	content, err := renderer.Render(ctx, def)
	if err != nil {
		return Output{}, err
	}
	return Output{
		Path:     OutputPath(def.ID, renderer.Extension()),
		Content:  content,
		Renderer: renderer.Name(),
	}, nil
}
