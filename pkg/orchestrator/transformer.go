package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-appgen/pkg/app"
)

// Transformer mutates a definition before it is validated and rendered.
type Transformer interface {
	Transform(ctx context.Context, def *app.Definition) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, def *app.Definition) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, def *app.Definition) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, def)
}

// PresetTransformer fills fields a definition leaves empty from a JSON
// preset, so a team can share defaults across many definitions:
//
//	{
//	  "primaryColor": "#1d1d1d",
//	  "keywords": ["defi"],
//	  "links": {"discord": "https://discord.gg/example"},
//	  "groupLabels": {"pool": "Liquidity Pools"}
//	}
//
// Values already present on the definition always win.
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Description  string            `json:"description"`
	URL          string            `json:"url"`
	PrimaryColor string            `json:"primaryColor"`
	Keywords     []string          `json:"keywords"`
	Links        app.Object        `json:"links"`
	GroupLabels  map[string]string `json:"groupLabels"`
}

// NewPresetTransformer constructs a transformer from raw JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the preset to def.
func (t *PresetTransformer) Transform(ctx context.Context, def *app.Definition) error {
	if def == nil {
		return errors.New("preset transformer: definition is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := t.document
	if def.Description == "" {
		def.Description = doc.Description
	}
	if def.URL == "" {
		def.URL = doc.URL
	}
	if def.PrimaryColor == "" {
		def.PrimaryColor = doc.PrimaryColor
	}
	if len(def.Keywords) == 0 && len(doc.Keywords) > 0 {
		def.Keywords = append([]string{}, doc.Keywords...)
	}
	if len(doc.Links) > 0 {
		def.Links = mergeLinks(def.Links, doc.Links)
	}
	for i := range def.Groups {
		entry := &def.Groups[i]
		if label, ok := doc.GroupLabels[entry.Key]; ok && entry.Group.Label == "" {
			entry.Group.Label = label
		}
	}
	return nil
}

// mergeLinks appends preset links the definition does not set, after the
// definition's own. Links that are not a JSON object are left untouched.
func mergeLinks(current any, preset app.Object) any {
	var links app.Object
	switch value := current.(type) {
	case nil:
	case app.Object:
		links = value
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(value)) {
			links = append(links, app.Member{Key: key, Value: value[key]})
		}
	default:
		return current
	}

	out := make(app.Object, 0, len(links)+len(preset))
	out = append(out, links...)
	for _, member := range preset {
		if _, exists := out.Get(member.Key); !exists {
			out = append(out, member)
		}
	}
	return out
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

func markupPolicy() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// MarkupStripper removes HTML from the human readable fields of a definition:
// name, description and group labels. Entities are decoded afterwards so
// "Pools &amp; Farms" reads "Pools & Farms".
type MarkupStripper struct{}

var _ Transformer = MarkupStripper{}

// Transform strips markup in place.
func (MarkupStripper) Transform(ctx context.Context, def *app.Definition) error {
	if def == nil {
		return errors.New("markup stripper: definition is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	def.Name = StripMarkup(def.Name)
	def.Description = StripMarkup(def.Description)
	for i := range def.Groups {
		def.Groups[i].Group.Label = StripMarkup(def.Groups[i].Group.Label)
	}
	return nil
}

// StripMarkup returns s with every HTML element removed.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(markupPolicy().Sanitize(s)))
}
