// SPDX-License-Identifier: MIT

// Package render draws a graph document and an optional distance mapping as SVG.
//
// Layout is circular: vertex i of n sits at angle i·2π/n on a circle of
// Options.LayoutRadius around the canvas centre, in document order. Each
// undirected edge is drawn once as a line with its weight at the midpoint.
// Vertices with a finite distance are filled along a green→red gradient by
// distance/max, where max is the largest finite distance; vertices without a
// distance, or with an infinite one, are drawn lightblue.
//
// Errors:
//
//	ErrEmptyGraph     the document has no vertices
//	ErrUnknownVertex  a distance key is not a vertex of the document
package render
