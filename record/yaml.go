package record

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a YAML sequence of mappings. Mapping key order is
// preserved; scalar values are decoded to their natural Go types.
func ParseYAML(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: "yaml", Index: -1, Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, &ParseError{Source: "yaml", Index: -1, Err: ErrNotArray}
	}

	out := make([]Record, 0, len(root.Content))
	for i, elem := range root.Content {
		elem = resolveAlias(elem)
		if elem.Kind == yaml.ScalarNode && elem.ShortTag() == "!!null" {
			out = append(out, Record{})
			continue
		}
		if elem.Kind != yaml.MappingNode {
			return nil, &ParseError{Source: "yaml", Index: i, Err: ErrNotObject}
		}

		var r Record
		for j := 0; j+1 < len(elem.Content); j += 2 {
			k, v := elem.Content[j], elem.Content[j+1]
			val, err := yamlValue(v)
			if err != nil {
				return nil, &ParseError{Source: "yaml", Index: i, Err: fmt.Errorf("key %q: %w", k.Value, err)}
			}
			r.Set(k.Value, val)
		}
		out = append(out, r)
	}
	return out, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlValue(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if n.Kind == yaml.ScalarNode {
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	// Nested collections render as flow-style YAML text.
	flow := *n
	flow.Style = yaml.FlowStyle
	b, err := yaml.Marshal(&flow)
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(string(b)), nil
}
