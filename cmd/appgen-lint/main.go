package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/definition"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run lints every definition under args and returns the process exit code:
// 0 when clean, 1 on violations, 2 on usage or I/O errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("appgen-lint", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flags.Output(), "\nLint app definition documents (files or directories).\n")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var (
		violations []violation
		checked    int
	)
	for _, path := range paths {
		linted, count, err := lintPath(ctx, path)
		if err != nil {
			fmt.Fprintf(stderr, "lint %s: %v\n", path, err)
			return 2
		}
		checked += count
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		return 1
	}

	fmt.Fprintf(stdout, "%d definition(s) OK\n", checked)
	return 0
}

func lintPath(ctx context.Context, path string) ([]violation, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if !info.IsDir() {
		result, err := lintFile(path)
		return result, 1, err
	}

	var (
		result []violation
		count  int
	)
	fsys := os.DirFS(path)
	err = fs.WalkDir(fsys, ".", func(rel string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !definition.IsDefinitionFile(rel) {
			return nil
		}
		linted, err := lintFile(filepath.Join(path, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		count++
		result = append(result, linted...)
		return nil
	})
	return result, count, err
}

func lintFile(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	format, err := definition.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	def, err := definition.Decode(raw, format)
	if err != nil {
		return []violation{{file: path, location: "document", message: err.Error()}}, nil
	}
	return lintDefinition(path, def), nil
}

func lintDefinition(file string, def app.Definition) []violation {
	var result []violation
	for _, err := range flatten(def.Validate()) {
		var (
			malformed *app.MalformedInputError
			unknown   *app.UnknownEnumValueError
		)
		switch {
		case errors.As(err, &malformed):
			result = append(result, violation{file: file, location: malformed.Field, message: malformed.Reason})
		case errors.As(err, &unknown):
			result = append(result, violation{
				file:     file,
				location: unknown.Field,
				message:  fmt.Sprintf("unknown %s %q (supported: %s)", unknown.Kind, unknown.Value, supported(unknown.Kind)),
			})
		default:
			result = append(result, violation{file: file, location: "definition", message: err.Error()})
		}
	}
	return result
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, inner := range joined.Unwrap() {
			out = append(out, flatten(inner)...)
		}
		return out
	}
	return []error{err}
}

func supported(kind string) string {
	var values []string
	switch kind {
	case app.Networks.Kind():
		values = stringsOf(app.Networks.Values())
	case app.AppTags.Kind():
		values = stringsOf(app.AppTags.Values())
	case app.AppActions.Kind():
		values = stringsOf(app.AppActions.Values())
	case app.GroupTypes.Kind():
		values = stringsOf(app.GroupTypes.Values())
	}
	return strings.Join(values, ", ")
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
