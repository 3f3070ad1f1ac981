// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"log/slog"
)

var (
	// ErrEmptyGraph indicates a document with no vertices to draw.
	ErrEmptyGraph = errors.New("render: graph has no vertices")

	// ErrUnknownVertex indicates a distance entry for a vertex absent from the document.
	ErrUnknownVertex = errors.New("render: distance vertex not in graph")
)

// Canvas defaults.
const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultLayoutRadius = 200
	DefaultNodeRadius   = 20

	// UnreachedFill is used for vertices without a finite distance.
	UnreachedFill = "lightblue"
)

// Options configures a drawing.
//
// Width, Height – canvas size in pixels.
// LayoutRadius  – radius of the circle vertices are placed on.
// NodeRadius    – radius of each vertex circle.
// Title         – text of the SVG <title> element.
// Logger        – diagnostic sink (discarded when nil).
type Options struct {
	Width        float64
	Height       float64
	LayoutRadius float64
	NodeRadius   float64
	Title        string
	Logger       *slog.Logger
}

// Option represents a functional option for configuring a drawing.
type Option func(*Options)

// DefaultOptions returns the 800×600 canvas used when no option is given.
func DefaultOptions() Options {
	return Options{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		LayoutRadius: DefaultLayoutRadius,
		NodeRadius:   DefaultNodeRadius,
		Title:        "Graph Visualization",
	}
}

// WithCanvas sets the canvas size. Non-positive values keep the default.
func WithCanvas(width, height float64) Option {
	return func(o *Options) {
		if width > 0 {
			o.Width = width
		}
		if height > 0 {
			o.Height = height
		}
	}
}

// WithLayoutRadius sets the radius of the layout circle.
func WithLayoutRadius(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.LayoutRadius = r
		}
	}
}

// WithNodeRadius sets the radius of each vertex circle.
func WithNodeRadius(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.NodeRadius = r
		}
	}
}

// WithTitle sets the SVG title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithLogger sets the diagnostic sink.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
