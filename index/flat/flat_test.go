package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterviz/distance"
	"github.com/hupe1980/clusterviz/model"
	"github.com/hupe1980/clusterviz/testutil"
)

func TestNearest(t *testing.T) {
	points := model.PointSet{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}

	tests := []struct {
		name  string
		query model.Point
		index int
	}{
		{"CloseToSecond", model.Point{2.1, 2.1, 2.1}, 1},
		{"ExactFirst", model.Point{1, 1, 1}, 0},
		{"FarBeyondLast", model.Point{100, 100, 100}, 2},
		{"TieGoesToLowestIndex", model.Point{1.5, 1.5, 1.5}, 0},
		{"TieBetweenLaterPoints", model.Point{2.5, 2.5, 2.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Nearest(points, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.index, res.Index)
			assert.Equal(t, points[tt.index], res.Point)
			assert.InDelta(t, distance.Euclidean(tt.query, points[tt.index]), res.Distance, 1e-12)
		})
	}
}

func TestNearest_DuplicatePoints(t *testing.T) {
	points := model.PointSet{{5, 5}, {0, 0}, {0, 0}, {0, 0}}

	res, err := Nearest(points, model.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, 0.0, res.Distance)
}

func TestNearest_Empty(t *testing.T) {
	_, err := Nearest(model.PointSet{}, model.Point{1, 2, 3})
	assert.ErrorIs(t, err, model.ErrEmptyInput)

	_, err = Nearest(nil, model.Point{1, 2, 3})
	assert.ErrorIs(t, err, model.ErrEmptyInput)
}

func TestNearest_DimensionMismatch(t *testing.T) {
	_, err := Nearest(model.PointSet{{1, 1, 1}}, model.Point{1, 1})
	var dm *model.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
}

func TestNearest_MatchesBruteForceMinimum(t *testing.T) {
	rng := testutil.NewRNG(99)
	points := rng.UniformPoints(500, 3, 0, 1)

	for q := 0; q < 50; q++ {
		query := rng.UniformPoint(3, 0, 1)
		res, err := Nearest(points, query)
		require.NoError(t, err)
		assert.Equal(t, testutil.ExactNearest(points, query), res.Index)

		for i, p := range points {
			d := distance.Euclidean(query, p)
			assert.GreaterOrEqual(t, d, res.Distance)
			if i < res.Index {
				assert.Greater(t, d, res.Distance, "earlier point %d must be strictly farther", i)
			}
		}
	}
}

func TestFlat(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		f, err := New(model.PointSet{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
		assert.Equal(t, "Flat", f.Name())
		assert.Equal(t, 2, f.Len())
		assert.Equal(t, 3, f.Dim())

		_, err = New(model.PointSet{{1, 2, 3}, {4, 5}})
		assert.IsType(t, &model.ErrDimensionMismatch{}, err)
	})

	t.Run("Nearest", func(t *testing.T) {
		f, err := New(model.PointSet{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}})
		require.NoError(t, err)

		res, err := f.Nearest(model.Point{2.1, 2.1, 2.1})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Index)
		assert.Equal(t, model.Point{2, 2, 2}, res.Point)

		_, err = f.Nearest(model.Point{2, 2})
		assert.IsType(t, &model.ErrDimensionMismatch{}, err)
	})

	t.Run("Empty", func(t *testing.T) {
		f, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, f.Len())

		_, err = f.Nearest(model.Point{0, 0, 0})
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})
}
