// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

var (
	// ErrMalformedDocument indicates input that is not a vertex → neighbor → weight object.
	ErrMalformedDocument = errors.New("graphio: malformed graph document")

	// ErrUnsupportedFormat indicates a file extension with no known codec.
	ErrUnsupportedFormat = errors.New("graphio: unsupported document format")
)

// Neighbor is one weighted adjacency entry.
type Neighbor struct {
	ID     string
	Weight float64
}

// Entry is a vertex with its neighbors in document order.
type Entry struct {
	ID        string
	Neighbors []Neighbor
}

// Document is an ordered adjacency document. Lookups maintain an internal
// index, so a Document is not safe for concurrent use.
type Document struct {
	Entries []Entry

	index map[string]int // ID → position in Entries; rebuilt when stale
}

// Len returns the number of top-level vertices.
func (d *Document) Len() int { return len(d.Entries) }

// VertexIDs returns top-level vertex IDs in document order.
func (d *Document) VertexIDs() []string {
	ids := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		ids[i] = e.ID
	}

	return ids
}

// Has reports whether id is a top-level vertex of d.
func (d *Document) Has(id string) bool {
	_, ok := d.position(id)

	return ok
}

// position looks id up in the index. A hit is checked against Entries; a miss
// rebuilds the index first, since Entries may have been edited directly.
func (d *Document) position(id string) (int, bool) {
	if i, ok := d.index[id]; ok && i < len(d.Entries) && d.Entries[i].ID == id {
		return i, true
	}
	d.reindex()
	i, ok := d.index[id]

	return i, ok
}

func (d *Document) reindex() {
	d.index = make(map[string]int, len(d.Entries))
	for i, e := range d.Entries {
		if _, dup := d.index[e.ID]; !dup {
			d.index[e.ID] = i
		}
	}
}

// FromGraph captures g as a document: vertices in insertion order, each with
// its neighbors in neighbor insertion order. Every undirected edge therefore
// appears under both endpoints.
func FromGraph(g *core.Graph[string]) *Document {
	verts := g.Vertices()
	doc := &Document{Entries: make([]Entry, 0, len(verts))}
	for _, v := range verts {
		entry := Entry{ID: v, Neighbors: []Neighbor{}}
		g.ForEachNeighbor(v, func(nb string, w float64) {
			entry.Neighbors = append(entry.Neighbors, Neighbor{ID: nb, Weight: w})
		})
		doc.Entries = append(doc.Entries, entry)
	}

	return doc
}

// Graph builds a graph from d.
//
// All top-level vertices are added first, in document order, so that isolated
// and later-listed vertices keep their position. Edges are then added entry by
// entry. When the two directions of a pair disagree, the one listed later in
// the document wins. Neighbors that are not top-level keys are created on
// demand after the listed vertices.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph[string], error) {
	g := core.NewGraph[string](opts...)

	for _, e := range d.Entries {
		if err := g.AddVertex(e.ID); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", e.ID, err)
		}
	}
	for _, e := range d.Entries {
		for _, nb := range e.Neighbors {
			if err := g.AddEdge(e.ID, nb.ID, nb.Weight); err != nil {
				return nil, fmt.Errorf("graphio: edge %q-%q: %w", e.ID, nb.ID, err)
			}
		}
	}

	return g, nil
}

// appendEntry adds an entry, merging neighbors into an existing entry with the
// same ID so that a repeated key keeps its first position.
//
// Decoders own the document while they build it, so the index is trusted here.
func (d *Document) appendEntry(e Entry) {
	if d.index == nil {
		d.reindex()
	}
	if i, ok := d.index[e.ID]; ok {
		d.Entries[i].Neighbors = append(d.Entries[i].Neighbors, e.Neighbors...)
		return
	}
	d.Entries = append(d.Entries, e)
	d.index[e.ID] = len(d.Entries) - 1
}
