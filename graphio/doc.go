// SPDX-License-Identifier: MIT

// Package graphio reads and writes graph documents.
//
// A document is an adjacency object mapping each vertex to its neighbors and
// edge weights:
//
//	{
//	    "A": {"B": 4, "C": 2},
//	    "B": {"A": 4},
//	    "C": {"A": 2}
//	}
//
// The same shape is accepted as YAML. Key order is significant: vertices are
// inserted into the graph in document order, and the engine breaks distance
// ties by insertion order, so decoding and encoding never reorder keys.
//
// JSON goes through github.com/bytedance/sonic (ast for ordered decoding);
// YAML goes through gopkg.in/yaml.v3 node trees.
//
// Errors:
//
//	ErrMalformedDocument   not an object of objects of numbers
//	ErrUnsupportedFormat   Load/Save on an extension other than .json/.yaml/.yml
package graphio
