// Package typescript renders app definitions as TypeScript modules: an
// appDefinition constant plus a registered AppDefinition subclass.
package typescript

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-appgen/internal/naming"
	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/render"
	rendertemplate "github.com/goliatone/go-appgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-appgen/pkg/render/template/gotemplate"
)

const (
	// Name identifies the renderer inside the registry.
	Name = "typescript"

	templateName = "templates/definition.tpl"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	header           string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/definition.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// embedded bundle. The directory must contain templates/definition.tpl.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithHeader prepends a header rendered from the given template text, for
// example "// Code generated by appgen from {{ id }}. DO NOT EDIT.". The
// template sees the same values as the definition template plus the
// "target" and "generator" globals.
func WithHeader(text string) Option {
	return func(cfg *config) {
		cfg.header = strings.TrimSpace(text)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits <id>.definition.ts sources.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	header    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TypeScript renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		files := cfg.templateFS
		if cfg.templateDir != "" {
			source = gotemplate.WithBaseDir(cfg.templateDir)
			files = os.DirFS(cfg.templateDir)
		}
		if err := ensureTemplate(files, templateName); err != nil {
			return nil, err
		}
		engine, err := gotemplate.New(source)
		if err != nil {
			return nil, fmt.Errorf("typescript renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}
	if err := templateRenderer.GlobalContext(map[string]any{"target": Name, "generator": "appgen"}); err != nil {
		return nil, fmt.Errorf("typescript renderer: set template globals: %w", err)
	}

	return &Renderer{templates: templateRenderer, header: cfg.header}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return Name
}

// Extension is the file extension of generated sources.
func (r *Renderer) Extension() string {
	return "ts"
}

// Render produces the TypeScript declaration for def.
func (r *Renderer) Render(ctx context.Context, def app.Definition) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("typescript renderer: template renderer is nil")
	}
	decl, err := render.NewDeclaration(def)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := templateData(decl)
	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("typescript renderer: render template: %w", err)
	}
	body := strings.TrimSpace(rendered) + "\n"

	if r.header != "" {
		header, err := r.templates.RenderString(gotemplate.Unescaped(r.header), data)
		if err != nil {
			return nil, fmt.Errorf("typescript renderer: render header: %w", err)
		}
		if header = strings.TrimSpace(header); header != "" {
			body = header + "\n\n" + body
		}
	}
	return []byte(body), nil
}

func templateData(decl render.Declaration) map[string]any {
	return map[string]any{
		"id":                decl.ID,
		"constantName":      decl.ConstantName,
		"className":         decl.ClassName,
		"name":              decl.Name,
		"description":       decl.Description,
		"url":               decl.URL,
		"primaryColor":      decl.PrimaryColor,
		"groups":            groupsLiteral(decl.Groups),
		"tags":              tagsLiteral(decl.Tags),
		"keywords":          decl.KeywordsJSON(),
		"links":             string(decl.Links),
		"supportedNetworks": networksLiteral(decl.Networks),
	}
}

func groupsLiteral(groups []render.GroupDeclaration) string {
	entries := make([]string, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, fmt.Sprintf("%s: { id: %s, type: GroupType.%s, label: %s }",
			propertyKey(group.Key), gotemplate.QuoteTS(group.ID), group.Type, gotemplate.QuoteTS(group.Label)))
	}
	return objectLiteral(entries)
}

func tagsLiteral(tags []string) string {
	entries := make([]string, 0, len(tags))
	for _, tag := range tags {
		entries = append(entries, "AppTag."+tag)
	}
	return "[" + strings.Join(entries, ", ") + "]"
}

func networksLiteral(networks []render.NetworkDeclaration) string {
	entries := make([]string, 0, len(networks))
	for _, network := range networks {
		actions := make([]string, 0, len(network.Actions))
		for _, action := range network.Actions {
			actions = append(actions, "AppAction."+action)
		}
		entries = append(entries, fmt.Sprintf("[Network.%s]: [%s]", network.Network, strings.Join(actions, ", ")))
	}
	return objectLiteral(entries)
}

// objectLiteral lays entries out one per line at the nesting depth of a
// property of the appDefinition argument.
func objectLiteral(entries []string) string {
	if len(entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, entry := range entries {
		b.WriteString("    ")
		b.WriteString(entry)
		b.WriteString(",\n")
	}
	b.WriteString("  }")
	return b.String()
}

func propertyKey(key string) string {
	if naming.IsIdentifier(key) {
		return key
	}
	return gotemplate.QuoteTS(key)
}

func ensureTemplate(files fs.FS, name string) error {
	if files == nil {
		return fmt.Errorf("typescript renderer: template fs is nil")
	}
	if _, err := fs.Stat(files, name); err != nil {
		return fmt.Errorf("typescript renderer: template %q not found: %w", name, err)
	}
	return nil
}
