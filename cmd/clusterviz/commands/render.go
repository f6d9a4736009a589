package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hupe1980/clusterviz"
	"github.com/hupe1980/clusterviz/codec"
	"github.com/hupe1980/clusterviz/model"
	"github.com/hupe1980/clusterviz/scene"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaf00"))
)

// colorFor maps a palette name to a terminal color.
var colorFor = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#ff5f5f"),
	"blue":   lipgloss.Color("#5f87ff"),
	"green":  lipgloss.Color("#5fd75f"),
	"orange": lipgloss.Color("#ffaf00"),
	"purple": lipgloss.Color("#af5fff"),
	"brown":  lipgloss.Color("#af875f"),
	"pink":   lipgloss.Color("#ff87d7"),
	"gray":   lipgloss.Color("#8a8a8a"),
	"olive":  lipgloss.Color("#afaf00"),
	"cyan":   lipgloss.Color("#00d7d7"),
}

// renderResult writes a cluster table and a one-line summary.
func renderResult(w io.Writer, res *clusterviz.Result, runID string) error {
	sizes := res.Sizes()
	rows := make([][]string, 0, res.K())
	for l, c := range res.Centroids {
		rows = append(rows, []string{
			strconv.Itoa(l),
			strconv.Itoa(sizes[l]),
			formatPoint(c),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("CLUSTER", "POINTS", "CENTROID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				color := scene.Palette[row%len(scene.Palette)]
				return cellStyle.Foreground(colorFor[color])
			}
			return cellStyle
		})

	status := "converged"
	if !res.Converged {
		status = "iteration limit reached"
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("k-means: %d points, k=%d", len(res.Points), res.K())),
		t.Render(),
		dimStyle.Render(fmt.Sprintf("%s after %d iterations | inertia %.6g | seed %d | run %s",
			status, res.Iterations, res.Inertia(), res.Seed, runID)),
	)
	return err
}

// renderNearest mirrors "nearest point: index i -> [x, y, z]".
func renderNearest(w io.Writer, q model.QueryResult, label *model.Label) error {
	line := fmt.Sprintf("Nearest point: index %d -> %s (distance %.6g)", q.Index, formatPoint(q.Point), q.Distance)
	if label != nil {
		line += fmt.Sprintf(", cluster %d", *label)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func renderWarning(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, warnStyle.Render(msg))
	return err
}

// writeScene encodes the scene for res with the named codec.
func writeScene(w io.Writer, res *clusterviz.Result, format string) error {
	c, ok := codec.ByName(format)
	if !ok {
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return scene.Write(w, scene.Build(res), c, scene.CompressionNone)
}

func formatPoint(p model.Point) string {
	s := "["
	for i, v := range p {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatFloat(v, 'f', 4, 64)
	}
	return s + "]"
}
