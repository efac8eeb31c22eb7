// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavGolCoeffs(t *testing.T) {
	// window 5 with a cubic has the same coefficients as with a quadratic
	want := []float64{-3.0 / 35, 12.0 / 35, 17.0 / 35, 12.0 / 35, -3.0 / 35}
	for _, order := range []int{2, 3} {
		c, err := SavGolCoeffs(5, order)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, c, 1e-12)
	}

	c, err := SavGolCoeffs(5, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.2, 0.2, 0.2, 0.2}, c, 1e-12)

	_, err = SavGolCoeffs(4, 2)
	assert.Error(t, err)
	_, err = SavGolCoeffs(5, 5)
	assert.Error(t, err)
}

func TestSavGolCubic(t *testing.T) {
	vals := make([]float64, 12)
	for i := range vals {
		x := float64(i)
		vals[i] = 0.5*x*x*x - 2*x*x + x + 7
	}
	sm, err := SavGol(vals, 5, 3)
	require.NoError(t, err)
	require.Len(t, sm, len(vals))
	for i := 2; i < len(vals)-2; i++ {
		assert.InDelta(t, vals[i], sm[i], 1e-9, "interior sample %d", i)
	}
}

func TestSavGolNearestEdges(t *testing.T) {
	sm, err := SavGol([]float64{5, 5, 5, 5, 5, 5}, 5, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 5, 5, 5, 5, 5}, sm, 1e-12)

	// first sample pads as [1, 1, 1, 2, 3]
	sm, err = SavGol([]float64{1, 2, 3, 4, 5, 6}, 5, 3)
	require.NoError(t, err)
	assert.InDelta(t, (-3*1+12*1+17*1+12*2-3*3)/35.0, sm[0], 1e-12)

	sm, err = SavGol(nil, 5, 3)
	require.NoError(t, err)
	assert.Empty(t, sm)
}

func TestSavGolValid(t *testing.T) {
	nan := math.NaN()
	vals := []float64{nan, 1, 2, nan, 3, 4, 5, 6, nan}
	sm, n, err := SavGolValid(vals, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	want, err := SavGol([]float64{1, 2, 3, 4, 5, 6}, 5, 3)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(sm[0]))
	assert.True(t, math.IsNaN(sm[3]))
	assert.True(t, math.IsNaN(sm[8]))
	assert.Equal(t, []float64{want[0], want[1]}, []float64{sm[1], sm[2]})
	assert.Equal(t, want[2:], sm[4:8])
	assert.Equal(t, 1.0, vals[1], "input is not modified")
}
