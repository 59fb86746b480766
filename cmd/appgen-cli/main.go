package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	appgen "github.com/goliatone/go-appgen"
	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/definition"
	"github.com/goliatone/go-appgen/pkg/orchestrator"
	"github.com/goliatone/go-appgen/pkg/prompt"
	"github.com/goliatone/go-appgen/pkg/render"
	"github.com/goliatone/go-appgen/pkg/renderers/golang"
	"github.com/goliatone/go-appgen/pkg/renderers/typescript"
	"github.com/goliatone/go-appgen/pkg/writer"
)

type config struct {
	definition  string
	dir         string
	target      string
	root        string
	preset      string
	templates   string
	header      string
	dryRun      bool
	interactive bool
	stripMarkup bool
	verbose     bool
	concurrency int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and generates the requested definitions. driver replaces
// the terminal prompt driver when non-nil.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithLoader(appgen.NewLoader()),
		orchestrator.WithWriter(writer.NewFileWriter(writer.WithRoot(cfg.root))),
		orchestrator.WithConcurrency(cfg.concurrency),
	}
	if cfg.templates != "" || cfg.header != "" {
		registry, err := buildRegistry(cfg)
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithRegistry(registry))
	}
	if cfg.preset != "" {
		data, err := os.ReadFile(cfg.preset)
		if err != nil {
			return fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithTransformers(preset))
	}
	if cfg.stripMarkup {
		options = append(options, orchestrator.WithTransformers(orchestrator.MarkupStripper{}))
	}
	gen := appgen.NewOrchestrator(options...)

	reqs, err := buildRequests(ctx, cfg, driver)
	if err != nil {
		return err
	}

	results, err := gen.GenerateAll(ctx, reqs)
	if err != nil {
		return err
	}
	for _, result := range results {
		if cfg.dryRun {
			fmt.Fprintf(stdout, "// %s\n%s", result.Path, result.Content)
			continue
		}
		fmt.Fprintf(stdout, "Definition written to %s\n", result.Path)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("appgen-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.definition, "definition", "", "definition document path or URL (.json, .yaml)")
	fs.StringVar(&cfg.dir, "dir", "", "directory of definition documents to generate in one batch")
	fs.StringVar(&cfg.target, "target", "typescript", "renderer to use (typescript, go)")
	fs.StringVar(&cfg.root, "root", ".", "project root the src/apps tree is written under")
	fs.StringVar(&cfg.preset, "preset", "", "JSON preset filling fields definitions leave empty")
	fs.StringVar(&cfg.templates, "templates", "", "directory overriding the built-in templates (templates/definition.tpl)")
	fs.StringVar(&cfg.header, "header", "", "template text rendered at the top of every generated file")
	fs.BoolVar(&cfg.dryRun, "dry-run", false, "print generated sources instead of writing them")
	fs.BoolVar(&cfg.interactive, "interactive", false, "prompt for the definition, seeded from -definition when given")
	fs.BoolVar(&cfg.stripMarkup, "strip-markup", false, "remove HTML from names, descriptions and labels")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.IntVar(&cfg.concurrency, "concurrency", 4, "definitions rendered in parallel with -dir")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: appgen-cli [flags]\n\nGenerate app definition sources.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.definition == "" && cfg.dir == "" && !cfg.interactive {
		fs.Usage()
		return config{}, errors.New("one of -definition, -dir or -interactive is required")
	}
	if cfg.dir != "" && (cfg.definition != "" || cfg.interactive) {
		return config{}, errors.New("-dir cannot be combined with -definition or -interactive")
	}
	return cfg, nil
}

// buildRegistry returns the built-in renderers configured with the template
// overrides from cfg.
func buildRegistry(cfg config) (*render.Registry, error) {
	var tsOpts []typescript.Option
	var goOpts []golang.Option
	if cfg.templates != "" {
		tsOpts = append(tsOpts, typescript.WithTemplatesDir(cfg.templates))
		goOpts = append(goOpts, golang.WithTemplatesDir(cfg.templates))
	}
	if cfg.header != "" {
		tsOpts = append(tsOpts, typescript.WithHeader(cfg.header))
		goOpts = append(goOpts, golang.WithHeader(cfg.header))
	}

	registry := render.NewRegistry()
	ts, err := typescript.New(tsOpts...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(ts); err != nil {
		return nil, err
	}
	goRenderer, err := golang.New(goOpts...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(goRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}

func buildRequests(ctx context.Context, cfg config, driver prompt.Driver) ([]orchestrator.Request, error) {
	base := orchestrator.Request{Renderer: cfg.target, DryRun: cfg.dryRun}

	switch {
	case cfg.dir != "":
		docs, err := definition.LoadFS(ctx, os.DirFS(cfg.dir))
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("no definition documents found in %s", cfg.dir)
		}
		reqs := make([]orchestrator.Request, 0, len(docs))
		for _, doc := range docs {
			req := base
			def := doc.Definition
			req.Definition = &def
			reqs = append(reqs, req)
		}
		return reqs, nil

	case cfg.interactive:
		var seed app.Definition
		if cfg.definition != "" {
			src, err := parseSource(cfg.definition)
			if err != nil {
				return nil, err
			}
			loaded, err := appgen.NewLoader().Load(ctx, src)
			if err != nil {
				return nil, err
			}
			seed = loaded
		}
		def, err := prompt.New(prompt.WithDriver(driver)).Collect(ctx, seed)
		if err != nil {
			return nil, err
		}
		base.Definition = &def
		return []orchestrator.Request{base}, nil

	default:
		src, err := parseSource(cfg.definition)
		if err != nil {
			return nil, err
		}
		base.Source = src
		return []orchestrator.Request{base}, nil
	}
}

func parseSource(raw string) (definition.Source, error) {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return definition.ParseURLSource(path)
	}
	return definition.SourceFromFile(path), nil
}
