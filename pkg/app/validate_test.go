package app_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/testsupport"
)

func TestValidate_SampleDefinition(t *testing.T) {
	if err := testsupport.SampleDefinition().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := testsupport.MinimalDefinition("zapper").Validate(); err != nil {
		t.Fatalf("validate minimal: %v", err)
	}
}

func TestValidate_MissingMappings(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*app.Definition)
		field string
	}{
		{name: "groups", edit: func(d *app.Definition) { d.Groups = nil }, field: "groups"},
		{name: "tags", edit: func(d *app.Definition) { d.Tags = nil }, field: "tags"},
		{name: "supported networks", edit: func(d *app.Definition) { d.SupportedNetworks = nil }, field: "supportedNetworks"},
		{name: "empty id", edit: func(d *app.Definition) { d.ID = "" }, field: "id"},
		{name: "path in id", edit: func(d *app.Definition) { d.ID = "../etc" }, field: "id"},
		{name: "digit id", edit: func(d *app.Definition) { d.ID = "1inch" }, field: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testsupport.SampleDefinition()
			tt.edit(&def)

			err := def.Validate()
			if !errors.Is(err, app.ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
			var malformed *app.MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedInputError, got %T", err)
			}
			if malformed.Field != tt.field {
				t.Fatalf("field = %q, want %q", malformed.Field, tt.field)
			}
		})
	}
}

func TestValidate_UnknownEnumValues(t *testing.T) {
	def := testsupport.SampleDefinition()
	def.Groups[1].Group.Type = "vault"
	def.Tags = append(def.Tags, "memecoin")
	def.SupportedNetworks = append(def.SupportedNetworks, app.NetworkActions{
		Network: "solana",
		Actions: []app.AppAction{app.AppActionView},
	})
	def.SupportedNetworks[0].Actions = append(def.SupportedNetworks[0].Actions, "bridge")

	err := def.Validate()
	if !errors.Is(err, app.ErrUnknownEnumValue) {
		t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
	}
	if errors.Is(err, app.ErrMalformedInput) {
		t.Fatalf("did not expect ErrMalformedInput: %v", err)
	}

	msg := err.Error()
	for _, want := range []string{
		`groups.farm.type: "vault" is not a GroupType`,
		`tags[2]: "memecoin" is not a AppTag`,
		`supportedNetworks: "solana" is not a Network`,
		`supportedNetworks.ethereum[2]: "bridge" is not a AppAction`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestValidate_DuplicateKeys(t *testing.T) {
	def := testsupport.SampleDefinition()
	def.Groups = append(def.Groups, def.Groups[0])

	err := def.Validate()
	if !errors.Is(err, app.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "groups.pool: is declared more than once") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	def := testsupport.MinimalDefinition("zapper").WithDefaults()

	if def.PrimaryColor != app.DefaultPrimaryColor {
		t.Fatalf("primary color = %q, want %q", def.PrimaryColor, app.DefaultPrimaryColor)
	}
	if def.Keywords == nil || len(def.Keywords) != 0 {
		t.Fatalf("keywords = %#v, want empty non-nil slice", def.Keywords)
	}

	custom := testsupport.SampleDefinition().WithDefaults()
	if custom.PrimaryColor != "#1d1d1d" {
		t.Fatalf("primary color overwritten: %q", custom.PrimaryColor)
	}
}
