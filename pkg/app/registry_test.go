package app_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/testsupport"
)

type embeddedDefinition struct {
	app.Definition
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := app.NewRegistry()
	def := testsupport.SampleDefinition()

	if err := registry.Register(def.ID, func() app.Provider { return &embeddedDefinition{Definition: def} }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(def.ID, func() app.Provider { return def }); err == nil {
		t.Fatalf("expected duplicate registration error")
	}

	provider, ok := registry.Lookup(def.ID)
	if !ok {
		t.Fatalf("lookup %q failed", def.ID)
	}
	if diff := cmp.Diff(def, provider.AppDefinition()); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}

	if _, ok := registry.Lookup("missing"); ok {
		t.Fatalf("unexpected provider for missing id")
	}
	if diff := cmp.Diff([]string{"my-app"}, registry.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	registry := app.NewRegistry()
	factory := func() app.Provider { return testsupport.MinimalDefinition("zapper") }
	registry.MustRegister("zapper", factory)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	registry.MustRegister("zapper", factory)
}
