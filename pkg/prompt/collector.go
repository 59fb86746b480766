// Package prompt collects app definitions interactively. Every enumerated
// field is offered as a choice from the app enum tables, so answers are always
// in-domain.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/goliatone/go-appgen/internal/naming"
	"github.com/goliatone/go-appgen/pkg/app"
)

var (
	hexColor   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]+$`)
	funcColor  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla|hwb|lab|lch|oklab|oklch|color)\([^()'"\\]*\)$`)
)

// Option configures a Collector.
type Option func(*Collector)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithPageSize sets how many options long lists show at once.
func WithPageSize(size int) Option {
	return func(c *Collector) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// Collector walks a user through every field of an app definition.
type Collector struct {
	driver   Driver
	pageSize int
}

// New constructs a Collector using the survey driver unless overridden.
func New(options ...Option) *Collector {
	c := &Collector{pageSize: 12}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver()
	}
	return c
}

// Collect prompts for a definition. Values already present in seed become the
// defaults of their prompts. The result is not validated; callers run
// Definition.Validate before rendering.
func (c *Collector) Collect(ctx context.Context, seed app.Definition) (app.Definition, error) {
	def := app.Definition{Links: seed.Links}
	var err error

	if def.ID, err = c.driver.Input(ctx, InputConfig{
		Message:   "App id",
		Default:   seed.ID,
		Help:      "Slug used for the output path and generated identifiers, e.g. my-app",
		Validator: app.ValidateID,
	}); err != nil {
		return app.Definition{}, err
	}

	name := seed.Name
	if name == "" {
		name = naming.Label(def.ID)
	}
	if def.Name, err = c.driver.Input(ctx, InputConfig{Message: "App name", Default: name}); err != nil {
		return app.Definition{}, err
	}
	if def.Description, err = c.driver.Input(ctx, InputConfig{Message: "Description", Default: seed.Description}); err != nil {
		return app.Definition{}, err
	}
	if def.URL, err = c.driver.Input(ctx, InputConfig{Message: "Website URL", Default: seed.URL}); err != nil {
		return app.Definition{}, err
	}

	color := seed.PrimaryColor
	if color == "" {
		color = app.DefaultPrimaryColor
	}
	if def.PrimaryColor, err = c.driver.Input(ctx, InputConfig{
		Message:   "Primary color",
		Default:   color,
		Validator: validateColor,
	}); err != nil {
		return app.Definition{}, err
	}
	def.PrimaryColor = strings.TrimSpace(def.PrimaryColor)

	if def.Tags, err = multiSelect(ctx, c, "Tags", app.AppTags.Values(), seed.Tags); err != nil {
		return app.Definition{}, err
	}

	keywords, err := c.driver.Input(ctx, InputConfig{
		Message: "Keywords",
		Default: strings.Join(seed.Keywords, ", "),
		Help:    "Comma separated",
	})
	if err != nil {
		return app.Definition{}, err
	}
	def.Keywords = splitList(keywords)

	if def.SupportedNetworks, err = c.collectNetworks(ctx, seed.SupportedNetworks); err != nil {
		return app.Definition{}, err
	}
	if def.Groups, err = c.collectGroups(ctx, seed.Groups); err != nil {
		return app.Definition{}, err
	}

	return def, nil
}

func (c *Collector) collectNetworks(ctx context.Context, seed app.SupportedNetworks) (app.SupportedNetworks, error) {
	var seeded []app.Network
	for _, entry := range seed {
		seeded = append(seeded, entry.Network)
	}
	networks, err := multiSelect(ctx, c, "Supported networks", app.Networks.Values(), seeded)
	if err != nil {
		return nil, err
	}

	out := app.SupportedNetworks{}
	for _, network := range networks {
		defaults, ok := seed.Actions(network)
		if !ok {
			defaults = []app.AppAction{app.AppActionView}
		}
		actions, err := multiSelect(ctx, c, fmt.Sprintf("Actions on %s", network), app.AppActions.Values(), defaults)
		if err != nil {
			return nil, err
		}
		out = append(out, app.NetworkActions{Network: network, Actions: actions})
	}
	return out, nil
}

func (c *Collector) collectGroups(ctx context.Context, seed app.Groups) (app.Groups, error) {
	out := app.Groups{}
	for _, entry := range seed {
		keep, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep group %q?", entry.Key),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, entry)
		}
	}

	types := app.GroupTypes.Values()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = string(t)
	}

	for {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Add a group?", Default: len(out) == 0})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		key, err := c.driver.Input(ctx, InputConfig{
			Message: "Group key",
			Help:    "Also used as the group id",
			Validator: func(value string) error {
				if !naming.IsIdentifier(value) {
					return fmt.Errorf("%q is not a valid key", value)
				}
				if _, exists := out.Get(value); exists {
					return fmt.Errorf("group %q already exists", value)
				}
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
		label, err := c.driver.Input(ctx, InputConfig{Message: "Group label", Default: naming.Label(key)})
		if err != nil {
			return nil, err
		}
		idx, err := c.driver.Select(ctx, SelectConfig{Message: "Group type", Options: options})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(types) {
			return nil, errors.New("prompt: no group type selected")
		}

		out = append(out, app.GroupEntry{
			Key:   key,
			Group: app.Group{ID: key, Type: types[idx], Label: label},
		})
	}
}

func multiSelect[T ~string](ctx context.Context, c *Collector, message string, values, defaults []T) ([]T, error) {
	options := make([]string, len(values))
	var defaultIdx []int
	for i, value := range values {
		options[i] = string(value)
		for _, d := range defaults {
			if d == value {
				defaultIdx = append(defaultIdx, i)
				break
			}
		}
	}

	picked, err := c.driver.MultiSelect(ctx, SelectConfig{
		Message:  message,
		Options:  options,
		Defaults: defaultIdx,
		PageSize: c.pageSize,
	})
	if err != nil {
		return nil, err
	}

	// Declaration order, whatever order the driver reports picks in.
	picked = slices.Clone(picked)
	slices.Sort(picked)

	out := make([]T, 0, len(picked))
	for _, idx := range slices.Compact(picked) {
		if idx >= 0 && idx < len(values) {
			out = append(out, values[idx])
		}
	}
	return out, nil
}

// validateColor accepts hex, named and functional CSS color notations.
func validateColor(value string) error {
	value = strings.TrimSpace(value)
	if value == "" || hexColor.MatchString(value) || namedColor.MatchString(value) || funcColor.MatchString(value) {
		return nil
	}
	return fmt.Errorf("%q is not a CSS color (hex, name or function such as rgb(...))", value)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
