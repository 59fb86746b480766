package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON decodes a JSON object keeping key order.
func (g *Groups) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*g = nil
		return nil
	}
	out := Groups{}
	err := decodeOrderedJSON(data, "groups", func(key string, dec *json.Decoder) error {
		var group Group
		if err := dec.Decode(&group); err != nil {
			return err
		}
		out = append(out, GroupEntry{Key: key, Group: group})
		return nil
	})
	if err != nil {
		return err
	}
	*g = out
	return nil
}

// MarshalJSON encodes the groups as a JSON object in declaration order.
func (g Groups) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	return encodeOrderedJSON(len(g), func(i int) (string, any) {
		return g[i].Key, g[i].Group
	})
}

// UnmarshalYAML decodes a YAML mapping keeping key order.
func (g *Groups) UnmarshalYAML(node *yaml.Node) error {
	out := Groups{}
	err := decodeOrderedYAML(node, "groups", func(key string, value *yaml.Node) error {
		var group Group
		if err := value.Decode(&group); err != nil {
			return err
		}
		out = append(out, GroupEntry{Key: key, Group: group})
		return nil
	})
	if err != nil {
		return err
	}
	*g = out
	return nil
}

// MarshalYAML encodes the groups as a YAML mapping in declaration order.
func (g Groups) MarshalYAML() (any, error) {
	if g == nil {
		return nil, nil
	}
	return encodeOrderedYAML(len(g), func(i int) (string, any) {
		return g[i].Key, g[i].Group
	})
}

// UnmarshalJSON decodes a JSON object of network -> actions keeping key order.
func (s *SupportedNetworks) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*s = nil
		return nil
	}
	out := SupportedNetworks{}
	err := decodeOrderedJSON(data, "supportedNetworks", func(key string, dec *json.Decoder) error {
		var actions []AppAction
		if err := dec.Decode(&actions); err != nil {
			return err
		}
		out = append(out, NetworkActions{Network: Network(key), Actions: actions})
		return nil
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON encodes the networks as a JSON object in declaration order.
func (s SupportedNetworks) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return encodeOrderedJSON(len(s), func(i int) (string, any) {
		return string(s[i].Network), s[i].Actions
	})
}

// UnmarshalYAML decodes a YAML mapping of network -> actions keeping key order.
func (s *SupportedNetworks) UnmarshalYAML(node *yaml.Node) error {
	out := SupportedNetworks{}
	err := decodeOrderedYAML(node, "supportedNetworks", func(key string, value *yaml.Node) error {
		var actions []AppAction
		if err := value.Decode(&actions); err != nil {
			return err
		}
		out = append(out, NetworkActions{Network: Network(key), Actions: actions})
		return nil
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML encodes the networks as a YAML mapping in declaration order.
func (s SupportedNetworks) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return encodeOrderedYAML(len(s), func(i int) (string, any) {
		return string(s[i].Network), s[i].Actions
	})
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func decodeOrderedJSON(data []byte, field string, each func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("app: decode %s: %w", field, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return malformed(field, "must be an object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("app: decode %s: %w", field, err)
		}
		key, ok := tok.(string)
		if !ok {
			return malformed(field, "has a non-string key")
		}
		if err := each(key, dec); err != nil {
			return fmt.Errorf("app: decode %s.%s: %w", field, key, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("app: decode %s: %w", field, err)
	}
	return nil
}

func encodeOrderedJSON(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		key, value := entry(i)
		if i > 0 {
			buf.WriteByte(',')
		}
		rawKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		rawValue, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(rawKey)
		buf.WriteByte(':')
		buf.Write(rawValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeOrderedYAML(node *yaml.Node, field string, each func(key string, value *yaml.Node) error) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return malformed(field, fmt.Sprintf("must be a mapping (line %d)", node.Line))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return malformed(field, fmt.Sprintf("has a non-scalar key (line %d)", keyNode.Line))
		}
		if err := each(keyNode.Value, valueNode); err != nil {
			return fmt.Errorf("app: decode %s.%s: %w", field, keyNode.Value, err)
		}
	}
	return nil
}

func encodeOrderedYAML(n int, entry func(i int) (string, any)) (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < n; i++ {
		key, value := entry(i)
		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return nil, err
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valueNode,
		)
	}
	return out, nil
}
