package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/prompt"
)

func TestRun_Definition(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"-definition", filepath.Join("testdata", "apps", "curve.yaml"),
		"-root", root,
		"-target", "go",
	}, &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "apps", "curve", "curve.definition.go"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "package curve") {
		t.Fatalf("unexpected output:\n%s", data)
	}
	if !strings.Contains(stdout.String(), "Definition written to ./src/apps/curve/curve.definition.go") {
		t.Fatalf("unexpected stdout: %s", stdout.String())
	}
}

func TestRun_DirDryRunWithStripMarkup(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"-dir", filepath.Join("testdata", "apps"),
		"-root", root,
		"-dry-run",
		"-strip-markup",
	}, &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"// ./src/apps/curve/curve.definition.ts",
		"// ./src/apps/yearn/yearn.definition.ts",
		"name: 'Yearn Finance',",
		"[Network.FANTOM_OPERA_MAINNET]: [AppAction.VIEW],",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if entries, _ := os.ReadDir(root); len(entries) != 0 {
		t.Fatalf("dry run should not write files")
	}
}

func TestRun_HeaderAndTemplates(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-definition", filepath.Join("testdata", "apps", "curve.yaml"),
		"-dry-run",
		"-header", "// {{ id }} via {{ target }}",
	}, &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "// curve via typescript\n\nimport ") {
		t.Fatalf("header missing from output:\n%s", stdout.String())
	}

	stdout.Reset()
	err = run(context.Background(), []string{
		"-definition", filepath.Join("testdata", "apps", "curve.yaml"),
		"-dry-run",
		"-templates", t.TempDir(),
	}, &stdout, &stderr, nil)
	if err == nil || !strings.Contains(err.Error(), "typescript renderer") {
		t.Fatalf("expected templates dir without definition.tpl to fail, got %v", err)
	}
}

func TestRun_Interactive(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer
	driver := &answerDriver{inputs: []string{"my-app", "My App", "", "", "#000", ""}}

	err := run(context.Background(), []string{"-interactive", "-root", root}, &stdout, &stderr, driver)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(root, "src", "apps", "my-app", "my-app.definition.ts")); err != nil {
		t.Fatalf("expected generated file: %v", err)
	}
}

func TestRun_InteractiveAborted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	driver := &answerDriver{abort: true}

	err := run(context.Background(), []string{"-interactive", "-root", t.TempDir()}, &stdout, &stderr, driver)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRun_InvalidDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	doc := `{"id":"bad","groups":{},"tags":["nope"],"supportedNetworks":{}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-definition", path, "-root", dir}, &stdout, &stderr, nil)
	if !errors.Is(err, app.ErrUnknownEnumValue) {
		t.Fatalf("expected unknown enum error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "src")); !os.IsNotExist(statErr) {
		t.Fatalf("nothing should be written")
	}
}

func TestRun_MalformedURLIsAnError(t *testing.T) {
	for _, raw := range []string{"http://%zz", "https://", "http:// spaced"} {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-definition", raw, "-root", t.TempDir()}, &stdout, &stderr, nil)
		if err == nil || !strings.Contains(err.Error(), "invalid URL") {
			t.Fatalf("%q: expected invalid URL error, got %v", raw, err)
		}
	}
}

func TestParseFlags_Errors(t *testing.T) {
	var stderr bytes.Buffer
	if _, err := parseFlags(nil, &stderr); err == nil {
		t.Fatalf("expected error without inputs")
	}
	if _, err := parseFlags([]string{"-dir", "x", "-definition", "y"}, &stderr); err == nil {
		t.Fatalf("expected error combining -dir and -definition")
	}
}

// answerDriver answers text prompts in order, accepts defaults when an answer
// is empty and declines everything else.
type answerDriver struct {
	inputs []string
	abort  bool
}

func (d *answerDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.abort {
		return "", prompt.ErrAborted
	}
	if len(d.inputs) == 0 {
		return "", errors.New("unexpected input prompt: " + cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if answer == "" {
		answer = cfg.Default
	}
	return answer, nil
}

func (d *answerDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *answerDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, nil
}

func (d *answerDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return nil, nil
}

func (d *answerDriver) Info(context.Context, string) error {
	return nil
}
