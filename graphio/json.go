// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

const jsonIndent = "    "

// DecodeJSON parses a JSON adjacency document, preserving key order.
// The whole input must be exactly one JSON value.
func DecodeJSON(data []byte) (*Document, error) {
	// sonic.Get reads lazily and stops after the first value.
	if !sonic.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
	}
	root, err := sonic.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if root.TypeSafe() != ast.V_OBJECT {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformedDocument)
	}

	doc := &Document{}
	var inner error
	err = root.ForEach(func(path ast.Sequence, node *ast.Node) bool {
		entry, err := decodeJSONEntry(*path.Key, node)
		if err != nil {
			inner = err
			return false
		}
		doc.appendEntry(entry)

		return true
	})
	if inner != nil {
		return nil, inner
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return doc, nil
}

func decodeJSONEntry(id string, node *ast.Node) (Entry, error) {
	if node.TypeSafe() != ast.V_OBJECT {
		return Entry{}, fmt.Errorf("%w: neighbors of %q must be an object", ErrMalformedDocument, id)
	}

	entry := Entry{ID: id, Neighbors: []Neighbor{}}
	var inner error
	err := node.ForEach(func(path ast.Sequence, w *ast.Node) bool {
		nb := *path.Key
		if w.TypeSafe() != ast.V_NUMBER {
			inner = fmt.Errorf("%w: weight %q-%q must be a number", ErrMalformedDocument, id, nb)
			return false
		}
		f, err := w.Float64()
		if err != nil {
			inner = fmt.Errorf("%w: weight %q-%q: %v", ErrMalformedDocument, id, nb, err)
			return false
		}
		entry.Neighbors = append(entry.Neighbors, Neighbor{ID: nb, Weight: f})

		return true
	})
	if inner != nil {
		return Entry{}, inner
	}
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrMalformedDocument, id, err)
	}

	return entry, nil
}

// EncodeJSON writes d as an indented JSON object in document order.
// Non-finite weights cannot be represented and make encoding fail.
func EncodeJSON(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if len(d.Entries) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, e := range d.Entries {
		if err := writeJSONKey(&buf, jsonIndent, e.ID); err != nil {
			return nil, err
		}
		if len(e.Neighbors) == 0 {
			buf.WriteString("{}")
		} else {
			buf.WriteString("{\n")
			for j, nb := range e.Neighbors {
				if err := writeJSONKey(&buf, jsonIndent+jsonIndent, nb.ID); err != nil {
					return nil, err
				}
				w, err := sonic.Marshal(nb.Weight)
				if err != nil {
					return nil, fmt.Errorf("graphio: weight %q-%q: %w", e.ID, nb.ID, err)
				}
				buf.Write(w)
				writeSeparator(&buf, j, len(e.Neighbors))
			}
			buf.WriteString(jsonIndent + "}")
		}
		writeSeparator(&buf, i, len(d.Entries))
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, indent, key string) error {
	k, err := sonic.Marshal(key)
	if err != nil {
		return fmt.Errorf("graphio: key %q: %w", key, err)
	}
	buf.WriteString(indent)
	buf.Write(k)
	buf.WriteString(": ")

	return nil
}

func writeSeparator(buf *bytes.Buffer, i, n int) {
	if i < n-1 {
		buf.WriteByte(',')
	}
	buf.WriteByte('\n')
}
