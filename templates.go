package appgen

import (
	"fmt"
	"io/fs"

	"github.com/goliatone/go-appgen/pkg/renderers/golang"
	"github.com/goliatone/go-appgen/pkg/renderers/typescript"
)

// EmbeddedTemplates exposes the built-in template bundle of a target so
// callers can copy and customise it, then pass it back with the renderer's
// WithTemplatesFS option.
func EmbeddedTemplates(target string) (fs.FS, error) {
	switch target {
	case typescript.Name:
		return typescript.TemplatesFS(), nil
	case golang.Name:
		return golang.TemplatesFS(), nil
	default:
		return nil, fmt.Errorf("appgen: no embedded templates for %q", target)
	}
}
