// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/internal/archive"
	"github.com/katalvlaran/shortpath/render"
)

// vertexJSON is one row of the JSON report. Distance is null when the vertex
// is unreachable; Predecessor is null for the source and unreachable vertices.
type vertexJSON struct {
	Vertex      string   `json:"vertex"`
	Distance    *float64 `json:"distance"`
	Predecessor *string  `json:"predecessor"`
}

type resultJSON struct {
	Source   string       `json:"source"`
	Strategy string       `json:"strategy"`
	Vertices []vertexJSON `json:"vertices"`
}

func writeJSON(w io.Writer, order []string, strategy dijkstra.Strategy, results []dijkstra.Result[string]) error {
	out := make([]resultJSON, 0, len(results))
	for _, r := range results {
		rj := resultJSON{Source: r.Source, Strategy: strategy.String(), Vertices: make([]vertexJSON, 0, len(order))}
		for _, v := range order {
			row := vertexJSON{Vertex: v}
			if d := r.Dist[v]; !math.IsInf(d, 1) {
				row.Distance = &d
			}
			if p, ok := r.Prev[v]; ok {
				row.Predecessor = &p
			}
			rj.Vertices = append(rj.Vertices, row)
		}
		out = append(out, rj)
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

func writeText(w io.Writer, order []string, strategy dijkstra.Strategy, results []dijkstra.Result[string]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		reachable := 0
		for _, d := range r.Dist {
			if !math.IsInf(d, 1) {
				reachable++
			}
		}
		fmt.Fprintf(tw, "source %s (%s): %s of %s vertices reachable\n",
			r.Source, strategy, humanize.Comma(int64(reachable)), humanize.Comma(int64(len(order))))
		fmt.Fprintln(tw, "VERTEX\tDISTANCE\tPREDECESSOR")
		for _, v := range order {
			p, ok := r.Prev[v]
			if !ok {
				p = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v, render.DistanceLabel(r.Dist[v]), p)
		}
	}

	return tw.Flush()
}

func writeHistory(w io.Writer, runs []archive.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOURCE\tSTRATEGY\tREACHABLE\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%s\n",
			r.ID, r.Source, r.Strategy, r.Reachable, r.Vertices, humanize.Time(r.CreatedAt))
	}

	return tw.Flush()
}
