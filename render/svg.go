// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/graphio"
)

// point is a vertex position on the canvas.
type point struct{ x, y float64 }

// SVG draws doc, coloured by dist, and writes the document to w.
// dist may be nil. Nothing is written when validation fails.
func SVG(w io.Writer, doc *graphio.Document, dist map[string]float64, opts ...Option) error {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log.Info("starting graph visualization", "vertices", doc.Len(), "distances", len(dist))

	// 2) Validate.
	if doc.Len() == 0 {
		log.Error("nothing to draw")
		return ErrEmptyGraph
	}
	for v := range dist {
		if !doc.Has(v) {
			log.Error("vertex in distances not found in the graph", "vertex", v)
			return fmt.Errorf("%w: %q", ErrUnknownVertex, v)
		}
	}

	// 3) Lay out vertices on a circle.
	ids := doc.VertexIDs()
	pos := make(map[string]point, len(ids))
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := float64(i) * step
		pos[id] = point{
			x: cfg.Width/2 + cfg.LayoutRadius*math.Cos(angle),
			y: cfg.Height/2 + cfg.LayoutRadius*math.Sin(angle),
		}
	}

	// 4) Emit SVG: edges beneath nodes.
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(cfg.Width), num(cfg.Height), num(cfg.Width), num(cfg.Height))
	fmt.Fprintf(&buf, "<title>%s</title>\n", escape(cfg.Title))
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	buf.WriteString(`<g class="edges" stroke="black">` + "\n")
	drawn := make(map[[2]string]bool)
	for _, e := range doc.Entries {
		for _, nb := range e.Neighbors {
			to, ok := pos[nb.ID]
			if !ok {
				continue // neighbor without its own entry has no position
			}
			key := [2]string{e.ID, nb.ID}
			if nb.ID < e.ID {
				key = [2]string{nb.ID, e.ID}
			}
			if drawn[key] {
				continue
			}
			drawn[key] = true

			from := pos[e.ID]
			fmt.Fprintf(&buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", num(from.x), num(from.y), num(to.x), num(to.y))
			fmt.Fprintf(&buf, `<text x="%s" y="%s" font-family="Arial" font-size="10" text-anchor="middle" stroke="none">%s</text>`+"\n",
				num((from.x+to.x)/2), num((from.y+to.y)/2), escape(humanize.Ftoa(nb.Weight)))
			log.Debug("drew edge", "u", e.ID, "v", nb.ID, "weight", nb.Weight)
		}
	}
	buf.WriteString("</g>\n")

	maxDist := finiteMax(dist)
	buf.WriteString(`<g class="nodes">` + "\n")
	for _, id := range ids {
		p := pos[id]
		fill := UnreachedFill
		d, has := dist[id]
		if has && !math.IsInf(d, 0) && !math.IsNaN(d) {
			fill = NodeColor(d, maxDist)
		}
		fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="black"/>`+"\n", num(p.x), num(p.y), num(cfg.NodeRadius), fill)
		fmt.Fprintf(&buf, `<text x="%s" y="%s" font-family="Arial" font-size="12" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			num(p.x), num(p.y), escape(id))
		if has {
			fmt.Fprintf(&buf, `<text x="%s" y="%s" font-family="Arial" font-size="10" text-anchor="middle">%s</text>`+"\n",
				num(p.x), num(p.y+cfg.NodeRadius+12), escape(DistanceLabel(d)))
		}
		log.Log(context.Background(), core.LevelTrace, "drew node", "vertex", id, "x", p.x, "y", p.y, "fill", fill)
	}
	buf.WriteString("</g>\n</svg>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}
	log.Info("graph visualization written", "bytes", buf.Len(), "edges", len(drawn))

	return nil
}

// Graph is SVG for a graph value: it draws graphio.FromGraph(g).
func Graph(w io.Writer, g *core.Graph[string], dist map[string]float64, opts ...Option) error {
	return SVG(w, graphio.FromGraph(g), dist, opts...)
}

// NodeColor maps d on [0, maxDist] to a green→red "#rrgg00" colour.
// A zero maxDist maps everything to green.
func NodeColor(d, maxDist float64) string {
	n := 0.0
	if maxDist != 0 {
		n = d / maxDist
	}
	n = math.Max(0, math.Min(1, n))
	red := int(255 * n)
	green := int(255 * (1 - n))

	return fmt.Sprintf("#%02x%02x%02x", red, green, 0)
}

// DistanceLabel formats a distance for display; unreachable is "∞".
func DistanceLabel(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}

	return humanize.Ftoa(d)
}

func finiteMax(dist map[string]float64) float64 {
	m := 0.0
	for _, d := range dist {
		if !math.IsInf(d, 0) && !math.IsNaN(d) && d > m {
			m = d
		}
	}

	return m
}

func num(f float64) string {
	return humanize.FtoaWithDigits(f, 2)
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}
