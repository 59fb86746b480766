package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/prompt"
)

func TestCollector_Collect(t *testing.T) {
	driver := &scriptedDriver{
		t:        t,
		inputs:   []string{"my-app", "", "Pools and farms", "https://my-app.example", "", "amm, yield ,", "farm", ""},
		confirms: []bool{true, false},
		selects:  []int{1},
		// Picks arrive out of declaration order and are reported in it.
		multi: [][]int{
			{tagIndex(t, app.AppTagLiquidityPool), tagIndex(t, app.AppTagFarming), tagIndex(t, app.AppTagLiquidityPool)},
			{0, 1},
			{0, 1},
			{0},
		},
	}

	def, err := prompt.New(prompt.WithDriver(driver)).Collect(context.Background(), app.Definition{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := app.Definition{
		ID:           "my-app",
		Name:         "My App",
		Description:  "Pools and farms",
		URL:          "https://my-app.example",
		PrimaryColor: "#fff",
		Tags:         []app.AppTag{app.AppTagFarming, app.AppTagLiquidityPool},
		Keywords:     []string{"amm", "yield"},
		SupportedNetworks: app.SupportedNetworks{
			{Network: app.NetworkEthereumMainnet, Actions: []app.AppAction{app.AppActionView, app.AppActionTransact}},
			{Network: app.NetworkPolygonMainnet, Actions: []app.AppAction{app.AppActionView}},
		},
		Groups: app.Groups{
			{Key: "farm", Group: app.Group{ID: "farm", Type: app.GroupTypePosition, Label: "Farm"}},
		},
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("collected definition should validate: %v", err)
	}
	driver.assertDrained()
}

func TestCollector_SeedProvidesDefaults(t *testing.T) {
	seed := app.Definition{
		ID:    "zapper",
		Name:  "Zapper",
		Links: map[string]any{"github": "https://github.com/zapper"},
		Groups: app.Groups{
			{Key: "pool", Group: app.Group{ID: "pool", Type: app.GroupTypeToken, Label: "Pools"}},
		},
		SupportedNetworks: app.SupportedNetworks{
			{Network: app.NetworkPolygonMainnet, Actions: []app.AppAction{app.AppActionTransact}},
		},
	}

	driver := &scriptedDriver{
		t:        t,
		inputs:   []string{"", "", "", "", "#123456", ""},
		confirms: []bool{true, false},
		multi:    [][]int{nil, nil, nil},
		// Echo the defaults offered for networks and actions.
		echoMultiDefaults: true,
	}

	def, err := prompt.New(prompt.WithDriver(driver)).Collect(context.Background(), seed)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	if def.ID != "zapper" || def.Name != "Zapper" || def.PrimaryColor != "#123456" {
		t.Fatalf("unexpected scalar fields: %+v", def)
	}
	if diff := cmp.Diff(seed.Groups, def.Groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seed.SupportedNetworks, def.SupportedNetworks); diff != "" {
		t.Fatalf("networks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seed.Links, def.Links); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
	if def.Keywords != nil {
		t.Fatalf("expected no keywords, got %v", def.Keywords)
	}
}

func TestCollector_RejectsInvalidAnswers(t *testing.T) {
	driver := &scriptedDriver{t: t, inputs: []string{"1inch"}}

	_, err := prompt.New(prompt.WithDriver(driver)).Collect(context.Background(), app.Definition{})
	if !errors.Is(err, app.ErrMalformedInput) {
		t.Fatalf("expected id validation error, got %v", err)
	}
}

func TestCollector_PrimaryColorNotations(t *testing.T) {
	for _, color := range []string{"#1d1d1d", "#fffa", "red", "rgb(29, 29, 29)", "hsl(210 40% 50%)"} {
		t.Run(color, func(t *testing.T) {
			driver := &scriptedDriver{
				t:        t,
				inputs:   []string{"my-app", "", "", "", color, ""},
				confirms: []bool{false},
				multi:    [][]int{{tagIndex(t, app.AppTagFarming)}, nil},
			}

			def, err := prompt.New(prompt.WithDriver(driver)).Collect(context.Background(), app.Definition{})
			if err != nil {
				t.Fatalf("collect: %v", err)
			}
			if def.PrimaryColor != color {
				t.Fatalf("expected primary color %q, got %q", color, def.PrimaryColor)
			}
			driver.assertDrained()
		})
	}

	for _, color := range []string{"#12345", "red; x", "rgb('1')", "url(x)"} {
		t.Run("reject "+color, func(t *testing.T) {
			driver := &scriptedDriver{t: t, inputs: []string{"my-app", "", "", "", color}}

			if _, err := prompt.New(prompt.WithDriver(driver)).Collect(context.Background(), app.Definition{}); err == nil {
				t.Fatalf("expected %q to be rejected", color)
			}
		})
	}
}

func TestCollector_Aborted(t *testing.T) {
	driver := &scriptedDriver{t: t, abort: true}

	_, err := prompt.New(prompt.WithDriver(driver)).Collect(context.Background(), app.Definition{})
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func tagIndex(t *testing.T, tag app.AppTag) int {
	t.Helper()
	for i, value := range app.AppTags.Values() {
		if value == tag {
			return i
		}
	}
	t.Fatalf("tag %q not declared", tag)
	return -1
}

// scriptedDriver answers prompts from queues. An empty input answer accepts
// the prompt default.
type scriptedDriver struct {
	t                 *testing.T
	inputs            []string
	confirms          []bool
	selects           []int
	multi             [][]int
	echoMultiDefaults bool
	abort             bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.abort {
		return "", prompt.ErrAborted
	}
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected input prompt %q", cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected confirm prompt %q", cfg.Message)
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected select prompt %q", cfg.Message)
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg prompt.SelectConfig) ([]int, error) {
	if len(d.multi) == 0 {
		d.t.Fatalf("unexpected multi-select prompt %q", cfg.Message)
	}
	answer := d.multi[0]
	d.multi = d.multi[1:]
	if answer == nil && d.echoMultiDefaults {
		return cfg.Defaults, nil
	}
	return answer, nil
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func (d *scriptedDriver) assertDrained() {
	d.t.Helper()
	remaining := len(d.inputs) + len(d.confirms) + len(d.selects) + len(d.multi)
	if remaining != 0 {
		d.t.Fatalf("%d scripted answers unused", remaining)
	}
}

var _ prompt.Driver = (*scriptedDriver)(nil)
