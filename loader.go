package appgen

import (
	internalLoader "github.com/goliatone/go-appgen/internal/definition/loader"
	"github.com/goliatone/go-appgen/pkg/definition"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...definition.LoaderOption) definition.Loader {
	cfg := definition.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
