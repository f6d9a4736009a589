// Package scene turns a clustering result into a renderer-neutral scatter
// plot description: one trace per non-empty cluster plus a centroid trace.
package scene

import (
	"fmt"

	"github.com/hupe1980/clusterviz"
	"github.com/hupe1980/clusterviz/model"
)

// Palette colors clusters by label modulo its length.
var Palette = []string{
	"red", "blue", "green", "orange", "purple",
	"brown", "pink", "gray", "olive", "cyan",
}

// CentroidLabel marks the centroid trace.
const CentroidLabel = -1

// Marker describes how a trace's points are drawn.
type Marker struct {
	Size    int     `json:"size" yaml:"size" msgpack:"size"`
	Color   string  `json:"color" yaml:"color" msgpack:"color"`
	Symbol  string  `json:"symbol,omitempty" yaml:"symbol,omitempty" msgpack:"symbol,omitempty"`
	Opacity float64 `json:"opacity,omitempty" yaml:"opacity,omitempty" msgpack:"opacity,omitempty"`
}

// Trace is one group of markers. Columns holds one slice per axis.
type Trace struct {
	Name    string      `json:"name" yaml:"name" msgpack:"name"`
	Label   int         `json:"label" yaml:"label" msgpack:"label"`
	Indices []uint32    `json:"indices,omitempty" yaml:"indices,omitempty" msgpack:"indices,omitempty"`
	Columns [][]float64 `json:"columns" yaml:"columns" msgpack:"columns"`
	Marker  Marker      `json:"marker" yaml:"marker" msgpack:"marker"`
}

// Len returns the number of points in the trace.
func (t Trace) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Stats summarizes the run a scene was built from.
type Stats struct {
	K          int     `json:"k" yaml:"k" msgpack:"k"`
	Points     int     `json:"points" yaml:"points" msgpack:"points"`
	Iterations int     `json:"iterations" yaml:"iterations" msgpack:"iterations"`
	Converged  bool    `json:"converged" yaml:"converged" msgpack:"converged"`
	Inertia    float64 `json:"inertia" yaml:"inertia" msgpack:"inertia"`
	Seed       int64   `json:"seed" yaml:"seed" msgpack:"seed"`
}

// Scene is everything a front end needs to draw a clustering.
type Scene struct {
	Axes   []string `json:"axes" yaml:"axes" msgpack:"axes"`
	Traces []Trace  `json:"traces" yaml:"traces" msgpack:"traces"`
	Stats  Stats    `json:"stats" yaml:"stats" msgpack:"stats"`
}

// Build creates the scene for r.
func Build(r *clusterviz.Result) Scene {
	dim := r.Dim()
	s := Scene{
		Axes: AxisTitles(dim),
		Stats: Stats{
			K:          r.K(),
			Points:     len(r.Points),
			Iterations: r.Iterations,
			Converged:  r.Converged,
			Inertia:    r.Inertia(),
			Seed:       r.Seed,
		},
	}

	for l := 0; l < r.K(); l++ {
		members := r.Members(model.Label(l))
		if members.IsEmpty() {
			continue
		}

		idx := members.ToArray()
		pts := make(model.PointSet, len(idx))
		for i, id := range idx {
			pts[i] = r.Points[id]
		}

		s.Traces = append(s.Traces, Trace{
			Name:    fmt.Sprintf("Cluster %d", l),
			Label:   l,
			Indices: idx,
			Columns: columns(pts, dim),
			Marker:  Marker{Size: 5, Color: Palette[l%len(Palette)]},
		})
	}

	s.Traces = append(s.Traces, Trace{
		Name:    "Centroids",
		Label:   CentroidLabel,
		Columns: columns(r.Centroids, dim),
		Marker:  Marker{Size: 10, Color: "white", Symbol: "x", Opacity: 0.7},
	})

	return s
}

// AxisTitles names the axes: X, Y, Z for up to three dimensions, D0..Dn-1
// otherwise.
func AxisTitles(dim int) []string {
	if dim <= 3 {
		return []string{"X", "Y", "Z"}[:dim]
	}
	titles := make([]string, dim)
	for i := range titles {
		titles[i] = fmt.Sprintf("D%d", i)
	}
	return titles
}

// columns transposes points into one slice per axis.
func columns(points []model.Point, dim int) [][]float64 {
	cols := make([][]float64, dim)
	for d := range cols {
		cols[d] = make([]float64, len(points))
		for i, p := range points {
			cols[d][i] = p[d]
		}
	}
	return cols
}
