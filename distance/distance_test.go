package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterviz/model"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Point
		expected float64
	}{
		{"Simple", model.Point{1, 2, 3}, model.Point{4, 6, 3}, 5},
		{"Zero", model.Point{0, 0, 0}, model.Point{0, 0, 0}, 0},
		{"Identical", model.Point{1, 2, 3}, model.Point{1, 2, 3}, 0},
		{"Mixed", model.Point{1, -1}, model.Point{-1, 1}, math.Sqrt(8)},
		{"Single", model.Point{2}, model.Point{-3}, 5},
		{"Empty", model.Point{}, model.Point{}, 0},
		{"FiveDims", model.Point{1, 1, 1, 1, 1}, model.Point{0, 0, 0, 0, 0}, math.Sqrt(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
			// Symmetric
			assert.InDelta(t, got, Euclidean(tt.b, tt.a), 1e-12)
		})
	}
}

func TestEuclideanMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Euclidean(model.Point{1, 2, 3}, model.Point{1, 2})
	})
}

func TestEuclideanChecked(t *testing.T) {
	d, err := EuclideanChecked(model.Point{0, 0, 0}, model.Point{0, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	_, err = EuclideanChecked(model.Point{0, 0, 0}, model.Point{0, 3})
	var dm *model.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
}

func TestSquaredEuclidean(t *testing.T) {
	assert.InDelta(t, 27.0, SquaredEuclidean(model.Point{1, 2, 3}, model.Point{4, 5, 6}), 1e-12)
	assert.Equal(t, 0.0, SquaredEuclidean(model.Point{}, model.Point{}))

	a, b := model.Point{1.5, -2, 7}, model.Point{0, 4, 1}
	e := Euclidean(a, b)
	assert.InDelta(t, e*e, SquaredEuclidean(a, b), 1e-9)
}
