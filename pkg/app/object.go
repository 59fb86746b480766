package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its keys in document order. Definition
// documents decode links into Object values so the generated declaration
// lists them the way the author wrote them.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, member := range o {
		if member.Key == key {
			return member.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the object with its keys in order.
func (o Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	return encodeOrderedJSON(len(o), func(i int) (string, any) {
		return o[i].Key, o[i].Value
	})
}

// UnmarshalJSON decodes a JSON object, nesting Object values for inner
// objects.
func (o *Object) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = nil
		return nil
	}
	value, err := DecodeJSONValue(data)
	if err != nil {
		return err
	}
	obj, ok := value.(Object)
	if !ok {
		return malformed("object", "must be a JSON object")
	}
	*o = obj
	return nil
}

// MarshalYAML encodes the object as a mapping with its keys in order.
func (o Object) MarshalYAML() (any, error) {
	if o == nil {
		return nil, nil
	}
	return encodeOrderedYAML(len(o), func(i int) (string, any) {
		return o[i].Key, o[i].Value
	})
}

// UnmarshalYAML decodes a YAML mapping, nesting Object values for inner
// mappings.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	value, err := DecodeYAMLValue(node)
	if err != nil {
		return err
	}
	obj, ok := value.(Object)
	if !ok && value != nil {
		return malformed("object", fmt.Sprintf("must be a mapping (line %d)", node.Line))
	}
	*o = obj
	return nil
}

// DecodeJSONValue decodes any JSON value. Objects become Object, arrays
// []any, and numbers json.Number so their text survives re-encoding.
func DecodeJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	value, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("app: decode value: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("app: decode value: trailing data")
	}
	return value, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", keyTok)
			}
			if _, dup := obj.Get(key); dup {
				return nil, fmt.Errorf("duplicate key %q", key)
			}
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := []any{}
		for dec.More() {
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// DecodeYAMLValue decodes any YAML node. Mappings become Object and
// sequences []any; scalars decode to their natural Go type.
func DecodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return DecodeYAMLValue(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, nil
		}
		return DecodeYAMLValue(node.Alias)
	case yaml.MappingNode:
		obj := Object{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("app: decode value: non-scalar key (line %d)", keyNode.Line)
			}
			if _, dup := obj.Get(keyNode.Value); dup {
				return nil, fmt.Errorf("app: decode value: duplicate key %q (line %d)", keyNode.Value, keyNode.Line)
			}
			value, err := DecodeYAMLValue(valueNode)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: keyNode.Value, Value: value})
		}
		return obj, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := DecodeYAMLValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("app: decode value (line %d): %w", node.Line, err)
		}
		return value, nil
	}
}
