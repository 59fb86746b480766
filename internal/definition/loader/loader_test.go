package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appgen/internal/definition/loader"
	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/definition"
)

func TestLoader_File(t *testing.T) {
	l := loader.New(definition.NewLoaderOptions())

	def, err := l.Load(context.Background(), definition.SourceFromFile(filepath.Join("testdata", "zapper.yaml")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if def.ID != "zapper" || def.URL != "https://zapper.xyz" {
		t.Fatalf("unexpected identity: %+v", def)
	}
	if diff := cmp.Diff([]string{"zlp", "farm"}, def.Groups.Keys()); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}
	wantLinks := app.Object{{Key: "github", Value: "https://github.com/Zapper-fi"}}
	if diff := cmp.Diff(wantLinks, def.Links); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("fixture should validate: %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"apps/pool.json": {Data: []byte(`{"id":"pool","groups":{},"tags":[],"supportedNetworks":{"ethereum":["view"]}}`)},
	}
	l := loader.New(definition.NewLoaderOptions(definition.WithFileSystem(fsys)))

	def, err := l.Load(context.Background(), definition.SourceFromFS("apps/pool.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.SupportedNetworks{{Network: app.NetworkEthereumMainnet, Actions: []app.AppAction{app.AppActionView}}}
	if diff := cmp.Diff(want, def.SupportedNetworks); diff != "" {
		t.Fatalf("networks mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_FSWithoutFileSystem(t *testing.T) {
	l := loader.New(definition.NewLoaderOptions())
	_, err := l.Load(context.Background(), definition.SourceFromFS("apps/pool.json"))
	if err == nil || !strings.Contains(err.Error(), "filesystem is not configured") {
		t.Fatalf("expected filesystem error, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "zapper.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/definitions/zapper.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer server.Close()

	offline := loader.New(definition.NewLoaderOptions())
	src := definition.SourceFromURL(server.URL + "/definitions/zapper.yaml")
	if _, err := offline.Load(context.Background(), src); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}

	online := loader.New(definition.NewLoaderOptions(definition.WithHTTPClient(server.Client())))
	def, err := online.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if def.ID != "zapper" {
		t.Fatalf("id = %q", def.ID)
	}

	_, err = online.Load(context.Background(), definition.SourceFromURL(server.URL+"/definitions/missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoader_UnsupportedExtension(t *testing.T) {
	l := loader.New(definition.NewLoaderOptions())
	_, err := l.Load(context.Background(), definition.SourceFromFile("zapper.toml"))
	if !errors.Is(err, definition.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := loader.New(definition.NewLoaderOptions())
	_, err := l.Load(ctx, definition.SourceFromFile(filepath.Join("testdata", "zapper.yaml")))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
