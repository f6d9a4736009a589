package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterviz/model"
)

func TestRNG(t *testing.T) {
	rng := NewRNG(42)
	assert.Equal(t, int64(42), rng.Seed())

	a := rng.UniformPoints(10, 3, -1, 1)
	rng.Reset()
	b := rng.UniformPoints(10, 3, -1, 1)
	assert.Equal(t, a, b)

	for _, p := range a {
		require.Len(t, p, 3)
		for _, v := range p {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}

	perm := rng.Perm(5)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, perm)
}

func TestClusteredPoints(t *testing.T) {
	centers := []model.Point{{0, 0}, {100, 100}}

	points, truth := NewRNG(1).ClusteredPoints(centers, 5, 0.5)

	require.Len(t, points, 10)
	require.Len(t, truth, 10)
	for i, p := range points {
		c := centers[truth[i]]
		assert.InDelta(t, c[0], p[0], 5)
		assert.InDelta(t, c[1], p[1], 5)
	}
}

func TestExactNearest(t *testing.T) {
	points := model.PointSet{{0}, {2}, {2}, {5}}

	assert.Equal(t, 1, ExactNearest(points, model.Point{2.2}))
	assert.Equal(t, 0, ExactNearest(points, model.Point{-3}))
	assert.Equal(t, -1, ExactNearest(nil, model.Point{1}))
}

func TestSamePartition(t *testing.T) {
	assert.True(t, SamePartition(model.Labels{0, 0, 1}, []int{1, 1, 0}))
	assert.False(t, SamePartition(model.Labels{0, 0, 1}, []int{0, 1, 1}))
	assert.False(t, SamePartition(model.Labels{0, 1, 1}, []int{0, 0, 0}))
	assert.False(t, SamePartition(model.Labels{0}, []int{0, 0}))
}
