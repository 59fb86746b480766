package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appgen/internal/definition/loader"
	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/definition"
)

// SampleDefinition returns a fully populated definition covering every field
// the renderers emit. Each call returns a fresh value so tests may mutate it.
func SampleDefinition() app.Definition {
	return app.Definition{
		ID:          "my-app",
		Name:        "My App",
		Description: "Pools and farms on My App",
		URL:         "https://my-app.example",
		Groups: app.Groups{
			{Key: "pool", Group: app.Group{ID: "pool", Type: app.GroupTypeToken, Label: "Pools"}},
			{Key: "farm", Group: app.Group{ID: "farm", Type: app.GroupTypePosition, Label: "Farms"}},
		},
		Tags:     []app.AppTag{app.AppTagLiquidityPool, app.AppTagFarming},
		Keywords: []string{"amm", "yield"},
		Links: app.Object{
			{Key: "github", Value: "https://github.com/my-app"},
			{Key: "twitter", Value: "https://twitter.com/my-app"},
		},
		SupportedNetworks: app.SupportedNetworks{
			{Network: app.NetworkEthereumMainnet, Actions: []app.AppAction{app.AppActionView, app.AppActionTransact}},
			{Network: app.NetworkPolygonMainnet, Actions: []app.AppAction{app.AppActionView}},
		},
		PrimaryColor: "#1d1d1d",
	}
}

// MinimalDefinition returns the smallest definition that validates: the
// optional fields are left unset.
func MinimalDefinition(id string) app.Definition {
	return app.Definition{
		ID:                id,
		Name:              id,
		Groups:            app.Groups{},
		Tags:              []app.AppTag{},
		SupportedNetworks: app.SupportedNetworks{},
	}
}

// MustLoadDefinition loads a definition fixture from disk.
func MustLoadDefinition(t *testing.T, path string) app.Definition {
	t.Helper()

	def, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("load definition: %v", err)
	}
	return def
}

// LoadDefinition reads a definition fixture without requiring testing.T.
func LoadDefinition(path string) (app.Definition, error) {
	if path == "" {
		return app.Definition{}, errors.New("testsupport: definition path is required")
	}
	def, err := loader.New(definition.NewLoaderOptions()).Load(context.Background(), definition.SourceFromFile(path))
	if err != nil {
		return app.Definition{}, fmt.Errorf("testsupport: load definition: %w", err)
	}
	return def, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
