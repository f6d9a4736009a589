package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p := Point{1, 2.5, -3}
	assert.Equal(t, 3, p.Dim())
	assert.Equal(t, "[1, 2.5, -3]", p.String())

	c := p.Clone()
	c[0] = 42
	assert.Equal(t, 1.0, p[0])
	assert.Nil(t, Point(nil).Clone())
}

func TestPointSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		ps      PointSet
		wantErr bool
		index   int
	}{
		{"Empty", PointSet{}, false, 0},
		{"Uniform", PointSet{{0, 0, 0}, {1, 1, 1}}, false, 0},
		{"Mismatch", PointSet{{0, 0, 0}, {1, 1, 1}, {2, 2}}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ps.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var dm *ErrDimensionMismatch
			require.True(t, errors.As(err, &dm))
			assert.Equal(t, tt.index, dm.Index)
			assert.Equal(t, 3, dm.Expected)
			assert.Equal(t, 2, dm.Actual)
		})
	}
}

func TestValidateK(t *testing.T) {
	assert.NoError(t, ValidateK(1, 1))
	assert.NoError(t, ValidateK(3, 5))

	for _, k := range []int{0, -1, 6} {
		err := ValidateK(k, 5)
		var ik *ErrInvalidK
		require.ErrorAs(t, err, &ik)
		assert.Equal(t, k, ik.K)
		assert.Equal(t, 5, ik.N)
	}
}

func TestLabelsCount(t *testing.T) {
	ls := Labels{0, 1, 1, 2, 1}
	assert.Equal(t, []int{1, 3, 1}, ls.Count(3))
	assert.Equal(t, []int{1, 3}, ls.Count(2))
}

func TestErrDimensionMismatchMessage(t *testing.T) {
	assert.Equal(t, "dimension mismatch: expected 3, got 2",
		(&ErrDimensionMismatch{Expected: 3, Actual: 2, Index: -1}).Error())
	assert.Equal(t, "dimension mismatch at point 4: expected 3, got 2",
		(&ErrDimensionMismatch{Expected: 3, Actual: 2, Index: 4}).Error())
}
