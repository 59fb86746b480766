// Package definition reads app definitions from JSON or YAML documents.
// Mapping fields (groups, supportedNetworks) keep the key order of the source
// document.
package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-appgen/pkg/app"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("definition: unsupported document format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// IsDefinitionFile reports whether path has a supported extension.
func IsDefinitionFile(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

// Decode parses a definition document. Links keep their document order as
// app.Object values. It does not validate the result; see
// app.Definition.Validate.
func Decode(data []byte, format Format) (app.Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return app.Definition{}, errors.New("definition: document is empty")
	}

	var def app.Definition
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return app.Definition{}, fmt.Errorf("definition: decode json: %w", err)
		}
		var doc struct {
			Links json.RawMessage `json:"links"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return app.Definition{}, fmt.Errorf("definition: decode json: %w", err)
		}
		if len(doc.Links) > 0 {
			links, err := app.DecodeJSONValue(doc.Links)
			if err != nil {
				return app.Definition{}, &app.MalformedInputError{Field: "links", Reason: err.Error()}
			}
			def.Links = links
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return app.Definition{}, fmt.Errorf("definition: decode yaml: %w", err)
		}
		var doc struct {
			Links yaml.Node `yaml:"links"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return app.Definition{}, fmt.Errorf("definition: decode yaml: %w", err)
		}
		if doc.Links.Kind != 0 {
			links, err := app.DecodeYAMLValue(&doc.Links)
			if err != nil {
				return app.Definition{}, &app.MalformedInputError{Field: "links", Reason: err.Error()}
			}
			def.Links = links
		}
	default:
		return app.Definition{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return def, nil
}

// Encode serialises def in the requested format, keeping mapping order.
func Encode(def app.Definition, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("definition: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return nil, fmt.Errorf("definition: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("definition: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
