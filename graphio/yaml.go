// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML adjacency mapping, preserving key order.
// An empty input yields an empty document.
func DecodeYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	doc := &Document{}
	if root.Kind == 0 {
		return doc, nil
	}
	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = top.Content[0]
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformedDocument)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		id := top.Content[i].Value
		val := top.Content[i+1]

		entry := Entry{ID: id, Neighbors: []Neighbor{}}
		if val.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: neighbors of %q must be a mapping", ErrMalformedDocument, id)
		}
		for j := 0; j+1 < len(val.Content); j += 2 {
			nb := val.Content[j].Value
			wn := val.Content[j+1]
			if wn.Kind != yaml.ScalarNode || wn.ShortTag() == "!!null" {
				return nil, fmt.Errorf("%w: weight %q-%q must be a number", ErrMalformedDocument, id, nb)
			}
			var w float64
			if err := wn.Decode(&w); err != nil {
				return nil, fmt.Errorf("%w: weight %q-%q: %v", ErrMalformedDocument, id, nb, err)
			}
			entry.Neighbors = append(entry.Neighbors, Neighbor{ID: nb, Weight: w})
		}
		doc.appendEntry(entry)
	}

	return doc, nil
}

// EncodeYAML writes d as a block-style YAML mapping in document order.
func EncodeYAML(d *Document) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range d.Entries {
		nbrs := &yaml.Node{Kind: yaml.MappingNode}
		if len(e.Neighbors) == 0 {
			nbrs.Style = yaml.FlowStyle
		}
		for _, nb := range e.Neighbors {
			nbrs.Content = append(nbrs.Content, strNode(nb.ID), weightNode(nb.Weight))
		}
		top.Content = append(top.Content, strNode(e.ID), nbrs)
	}
	if len(d.Entries) == 0 {
		top.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		return nil, fmt.Errorf("graphio: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("graphio: encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// strNode forces string keys, so IDs like "1" or "yes" are quoted.
func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func weightNode(w float64) *yaml.Node {
	var v string
	switch {
	case math.IsInf(w, 1):
		v = ".inf"
	case math.IsInf(w, -1):
		v = "-.inf"
	case math.IsNaN(w):
		v = ".nan"
	default:
		v = strconv.FormatFloat(w, 'g', -1, 64)
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}
