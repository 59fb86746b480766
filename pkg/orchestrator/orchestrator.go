package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	internalLoader "github.com/goliatone/go-appgen/internal/definition/loader"
	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/definition"
	"github.com/goliatone/go-appgen/pkg/render"
	"github.com/goliatone/go-appgen/pkg/renderers/golang"
	"github.com/goliatone/go-appgen/pkg/renderers/typescript"
	"github.com/goliatone/go-appgen/pkg/writer"
)

const defaultRendererName = typescript.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom definition loader.
func WithLoader(loader definition.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWriter sets where rendered files go. Defaults to a FileWriter rooted at
// the working directory.
func WithWriter(w writer.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = w
	}
}

// WithTransformers registers transformers that run, in order, on every
// definition before validation.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		for _, t := range transformers {
			if t != nil {
				o.transformers = append(o.transformers, t)
			}
		}
	}
}

// WithLogger sets the structured logger. Defaults to discarding output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency bounds how many definitions GenerateAll renders at once.
// Zero or negative means unbounded.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		o.concurrency = n
	}
}

// Orchestrator coordinates the pipeline from definition to written file. The
// zero configuration loads JSON/YAML files, renders TypeScript and writes
// relative to the working directory.
type Orchestrator struct {
	loader          definition.Loader
	registry        *render.Registry
	defaultRenderer string
	writer          writer.Writer
	transformers    []Transformer
	logger          *slog.Logger
	concurrency     int
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one definition to generate.
type Request struct {
	// Definition is used as-is when set.
	Definition *app.Definition

	// Source identifies a definition document to load. Optional when
	// Definition is supplied.
	Source definition.Source

	// Renderer names the target. If empty, the orchestrator falls back to the
	// configured default renderer.
	Renderer string

	// DryRun renders and formats without touching the writer.
	DryRun bool
}

// Result is the outcome of a successful Generate call.
type Result struct {
	ID       string
	Path     string
	Content  []byte
	Renderer string
	Written  bool
}

// Generate resolves, transforms, validates and renders one definition, then
// writes it unless the request is a dry run.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	result, err := o.prepare(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if req.DryRun {
		o.logger.Info("dry run", "id", result.ID, "path", result.Path, "renderer", result.Renderer)
		return result, nil
	}
	if err := o.write(ctx, &result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// prepare runs every stage short of writing.
func (o *Orchestrator) prepare(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	def, err := o.resolveDefinition(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if err := o.applyTransformers(ctx, &def); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	o.logger.Debug("rendering definition", "id", def.ID, "renderer", renderer.Name())
	out, err := render.Render(ctx, renderer, def)
	if err != nil {
		o.logger.Warn("definition rejected", "id", def.ID, "error", err)
		return Result{}, fmt.Errorf("orchestrator: render %q: %w", def.ID, err)
	}

	return Result{
		ID:       def.ID,
		Path:     out.Path,
		Content:  out.Content,
		Renderer: out.Renderer,
	}, nil
}

func (o *Orchestrator) write(ctx context.Context, result *Result) error {
	if o.writer == nil {
		return errors.New("orchestrator: writer is nil")
	}
	if err := o.writer.Write(ctx, result.Path, result.Content); err != nil {
		o.logger.Error("write failed", "id", result.ID, "path", result.Path, "error", err)
		return err
	}
	result.Written = true
	o.logger.Info("wrote definition", "id", result.ID, "path", result.Path, "renderer", result.Renderer)
	return nil
}

func (o *Orchestrator) resolveDefinition(ctx context.Context, req Request) (app.Definition, error) {
	if req.Definition != nil {
		return cloneDefinition(*req.Definition), nil
	}
	if req.Source == nil {
		return app.Definition{}, errors.New("orchestrator: source or definition is required")
	}
	if o.loader == nil {
		return app.Definition{}, errors.New("orchestrator: loader is nil")
	}
	def, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return app.Definition{}, fmt.Errorf("orchestrator: load definition: %w", err)
	}
	return def, nil
}

// cloneDefinition copies the slices transformers may edit in place so the
// caller's value is left alone.
func cloneDefinition(def app.Definition) app.Definition {
	if def.Groups != nil {
		def.Groups = append(app.Groups{}, def.Groups...)
	}
	if def.Keywords != nil {
		def.Keywords = append([]string{}, def.Keywords...)
	}
	return def
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, def *app.Definition) error {
	for _, transformer := range o.transformers {
		if err := transformer.Transform(ctx, def); err != nil {
			return fmt.Errorf("orchestrator: transform definition: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = internalLoader.New(definition.NewLoaderOptions())
	}
	if o.writer == nil {
		o.writer = writer.NewFileWriter()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		if err := registerBuiltins(o.registry); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

// NewDefaultRegistry returns a registry holding the built-in "typescript" and
// "go" renderers.
func NewDefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	if err := registerBuiltins(registry); err != nil {
		return nil, err
	}
	return registry, nil
}

func registerBuiltins(registry *render.Registry) error {
	ts, err := typescript.New()
	if err != nil {
		return err
	}
	if err := registry.Register(ts); err != nil {
		return err
	}
	goRenderer, err := golang.New()
	if err != nil {
		return err
	}
	return registry.Register(goRenderer)
}
