package pointio

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterviz/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dim   int
		want  model.PointSet
	}{
		{"Simple", "1,2,3\n4,5,6\n7,8,9", 3, model.PointSet{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"Whitespace", "  1, 2 ,3 \n\n 4.5,-5,6e1\n", 3, model.PointSet{{1, 2, 3}, {4.5, -5, 60}}},
		{"CRLF", "1,2,3\r\n4,5,6\r\n", 3, model.PointSet{{1, 2, 3}, {4, 5, 6}}},
		{"InferDim", "1,2\n3,4", 0, model.PointSet{{1, 2}, {3, 4}}},
		{"Empty", "   \n\n", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input, tt.dim)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_WrongArity(t *testing.T) {
	_, err := ParseString("1,2,3\n\n4,5\n", 3)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "4,5", pe.Text)

	var dm *model.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
	assert.Equal(t, 1, dm.Index)
}

func TestParse_InferredDimIsEnforced(t *testing.T) {
	_, err := ParseString("1,2\n3,4,5", 0)
	var dm *model.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestParse_NotANumber(t *testing.T) {
	_, err := ParseString("1,2,3\n1,x,3", 3)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 2.1, 2.1,2.1 ", 3)
	require.NoError(t, err)
	assert.Equal(t, model.Point{2.1, 2.1, 2.1}, p)

	_, err = ParsePoint("1,2", 3)
	assert.IsType(t, &model.ErrDimensionMismatch{}, err)

	_, err = ParsePoint("", 3)
	assert.Error(t, err)

	p, err = ParsePoint("1,2", 0)
	require.NoError(t, err)
	assert.Equal(t, model.Point{1, 2}, p)
}

func TestFormat(t *testing.T) {
	points := model.PointSet{{1, 2, 3}, {-0.5, 1e-3, 10}}

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, points))
	assert.Equal(t, "1,2,3\n-0.5,0.001,10\n", buf.String())

	back, err := Parse(&buf, 3)
	require.NoError(t, err)
	assert.Equal(t, points, back)
}
