// Package golang renders app definitions as Go sources that register
// themselves with the app registry from an init function.
package golang

import (
	"context"
	"fmt"
	"go/format"
	"go/token"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/render"
	rendertemplate "github.com/goliatone/go-appgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-appgen/pkg/render/template/gotemplate"
)

const (
	// Name identifies the renderer inside the registry.
	Name = "go"

	// DefaultAppImport is the import path generated files use for the app
	// package.
	DefaultAppImport = "github.com/goliatone/go-appgen/pkg/app"

	templateName = "templates/definition.tpl"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	header           string
	appImport        string
	packageName      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
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

// WithAppImport overrides the import path of the app package, for projects
// that vendor or fork it.
func WithAppImport(path string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			cfg.appImport = trimmed
		}
	}
}

// WithPackageName forces the package clause of every generated file instead
// of deriving it from the app id.
func WithPackageName(name string) Option {
	return func(cfg *config) {
		cfg.packageName = strings.TrimSpace(name)
	}
}

// Renderer emits gofmt-formatted <id>.definition.go sources.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	appImport   string
	packageName string
	header      string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a Go renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		appImport:  DefaultAppImport,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.packageName != "" && !token.IsIdentifier(cfg.packageName) {
		return nil, fmt.Errorf("go renderer: invalid package name %q", cfg.packageName)
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		files := cfg.templateFS
		if cfg.templateDir != "" {
			source = gotemplate.WithBaseDir(cfg.templateDir)
			files = os.DirFS(cfg.templateDir)
		}
		if files == nil {
			return nil, fmt.Errorf("go renderer: template fs is nil")
		}
		if _, err := fs.Stat(files, templateName); err != nil {
			return nil, fmt.Errorf("go renderer: template %q not found: %w", templateName, err)
		}
		engine, err := gotemplate.New(source)
		if err != nil {
			return nil, fmt.Errorf("go renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}
	if err := templateRenderer.GlobalContext(map[string]any{"target": Name, "generator": "appgen"}); err != nil {
		return nil, fmt.Errorf("go renderer: set template globals: %w", err)
	}

	return &Renderer{
		templates:   templateRenderer,
		appImport:   cfg.appImport,
		packageName: cfg.packageName,
		header:      cfg.header,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return Name
}

// Extension is the file extension of generated sources.
func (r *Renderer) Extension() string {
	return "go"
}

// Render produces the Go declaration for def, formatted with go/format. A
// template that yields invalid Go is reported as an error.
func (r *Renderer) Render(ctx context.Context, def app.Definition) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("go renderer: template renderer is nil")
	}
	decl, err := render.NewDeclaration(def)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := r.templateData(decl)
	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("go renderer: render template: %w", err)
	}

	if r.header != "" {
		header, err := r.templates.RenderString(gotemplate.Unescaped(r.header), data)
		if err != nil {
			return nil, fmt.Errorf("go renderer: render header: %w", err)
		}
		if header = strings.TrimSpace(header); header != "" {
			rendered = header + "\n\n" + rendered
		}
	}

	formatted, err := format.Source([]byte(rendered))
	if err != nil {
		return nil, fmt.Errorf("go renderer: format %s: %w", decl.ID, err)
	}
	return formatted, nil
}

func (r *Renderer) templateData(decl render.Declaration) map[string]any {
	pkg := decl.PackageName
	if r.packageName != "" {
		pkg = r.packageName
	} else if token.IsKeyword(pkg) {
		pkg += "app"
	}
	links := string(decl.Links)
	return map[string]any{
		"id":                decl.ID,
		"packageName":       pkg,
		"appImport":         r.appImport,
		"constantName":      decl.ConstantName,
		"className":         decl.ClassName,
		"name":              decl.Name,
		"description":       decl.Description,
		"url":               decl.URL,
		"primaryColor":      decl.PrimaryColor,
		"groups":            groupsLiteral(decl.Groups),
		"tags":              tagsLiteral(decl.Tags),
		"keywords":          keywordsLiteral(decl.Keywords),
		"hasLinks":          links != "null",
		"links":             links,
		"supportedNetworks": networksLiteral(decl.Networks),
	}
}

func groupsLiteral(groups []render.GroupDeclaration) string {
	entries := make([]string, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, fmt.Sprintf("{Key: %s, Group: app.Group{ID: %s, Type: app.%s, Label: %s}}",
			strconv.Quote(group.Key), strconv.Quote(group.ID), render.GoEnumName("GroupType", group.Type), strconv.Quote(group.Label)))
	}
	return compositeLiteral("app.Groups", entries)
}

func tagsLiteral(tags []string) string {
	entries := make([]string, 0, len(tags))
	for _, tag := range tags {
		entries = append(entries, "app."+render.GoEnumName("AppTag", tag))
	}
	return "[]app.AppTag{" + strings.Join(entries, ", ") + "}"
}

func keywordsLiteral(keywords []string) string {
	entries := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		entries = append(entries, strconv.Quote(keyword))
	}
	return "[]string{" + strings.Join(entries, ", ") + "}"
}

func networksLiteral(networks []render.NetworkDeclaration) string {
	entries := make([]string, 0, len(networks))
	for _, network := range networks {
		actions := make([]string, 0, len(network.Actions))
		for _, action := range network.Actions {
			actions = append(actions, "app."+render.GoEnumName("AppAction", action))
		}
		entries = append(entries, fmt.Sprintf("{Network: app.%s, Actions: []app.AppAction{%s}}",
			render.GoEnumName("Network", network.Network), strings.Join(actions, ", ")))
	}
	return compositeLiteral("app.SupportedNetworks", entries)
}

func compositeLiteral(typ string, entries []string) string {
	if len(entries) == 0 {
		return typ + "{}"
	}
	var b strings.Builder
	b.WriteString(typ)
	b.WriteString("{\n")
	for _, entry := range entries {
		b.WriteString("\t\t")
		b.WriteString(entry)
		b.WriteString(",\n")
	}
	b.WriteString("\t}")
	return b.String()
}
