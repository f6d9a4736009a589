// Package pointio parses points from free text.
//
// Each non-blank line holds one point as comma-separated numbers:
//
//	1,2,3
//	4.5, 5, -6
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/clusterviz/model"
)

// ParseError reports the line a parse failure occurred on.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads one point per line from r.
//
// Every point must have dim coordinates; a line with a different count
// fails with a *ParseError wrapping *model.ErrDimensionMismatch. If dim <= 0
// the dimension of the first point is used for the rest. Blank lines are
// skipped.
func Parse(r io.Reader, dim int) (model.PointSet, error) {
	var points model.PointSet

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		p, err := parseCoords(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		if dim <= 0 {
			dim = len(p)
		}
		if len(p) != dim {
			return nil, &ParseError{
				Line: line,
				Text: text,
				Err:  &model.ErrDimensionMismatch{Expected: dim, Actual: len(p), Index: len(points)},
			}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}

	return points, nil
}

// ParseString is Parse over a string.
func ParseString(s string, dim int) (model.PointSet, error) {
	return Parse(strings.NewReader(s), dim)
}

// ParsePoint parses a single comma-separated point, e.g. a query.
// dim <= 0 accepts any dimension.
func ParsePoint(s string, dim int) (model.Point, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return nil, fmt.Errorf("empty point")
	}
	p, err := parseCoords(text)
	if err != nil {
		return nil, err
	}
	if dim > 0 && len(p) != dim {
		return nil, &model.ErrDimensionMismatch{Expected: dim, Actual: len(p), Index: -1}
	}
	return p, nil
}

func parseCoords(text string) (model.Point, error) {
	fields := strings.Split(text, ",")
	p := make(model.Point, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		p[i] = v
	}
	return p, nil
}

// Format writes points in the format Parse reads.
func Format(w io.Writer, points model.PointSet) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		for i, v := range p {
			if i > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
