// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smooth provides smoothing filters for noisy sampled data,
// such as well log curves.
package smooth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SavGolCoeffs returns the coefficients of a centered Savitzky-Golay
// filter with the given odd window length and polynomial order.
// The smoothed value at sample i is the sum over j of
// coeffs[j] * x[i+j-window/2]. The coefficients are the first row of the
// pseudo-inverse of the Vandermonde matrix of the window offsets,
// computed as a least squares solution.
func SavGolCoeffs(window, order int) ([]float64, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("smooth.SavGolCoeffs: window length %d must be a positive odd number", window)
	}
	if order < 0 || order >= window {
		return nil, fmt.Errorf("smooth.SavGolCoeffs: polynomial order %d must be in [0, %d)", order, window)
	}
	half := window / 2
	vm := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		p := 1.0
		for j := 0; j <= order; j++ {
			vm.Set(i, j, p)
			p *= x
		}
	}
	ones := make([]float64, window)
	for i := range ones {
		ones[i] = 1
	}
	var pinv mat.Dense
	if err := pinv.Solve(vm, mat.NewDiagDense(window, ones)); err != nil {
		return nil, fmt.Errorf("smooth.SavGolCoeffs: %w", err)
	}
	return mat.Row(nil, 0, &pinv), nil
}

// SavGol applies a Savitzky-Golay filter of the given window length and
// polynomial order to vals, returning a new slice. Samples beyond the ends
// are taken to be equal to the nearest end sample. vals must not contain
// missing values; see [SavGolValid].
func SavGol(vals []float64, window, order int) ([]float64, error) {
	coeffs, err := SavGolCoeffs(window, order)
	if err != nil {
		return nil, err
	}
	n := len(vals)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}
	half := window / 2
	for i := 0; i < n; i++ {
		sum := 0.0
		for j, c := range coeffs {
			k := min(max(i+j-half, 0), n-1)
			sum += c * vals[k]
		}
		out[i] = sum
	}
	return out, nil
}

// SavGolValid applies [SavGol] to the contiguous sequence of the
// non-missing (non-NaN) values in vals, and returns a new slice with
// the smoothed values at their original positions and NaN elsewhere.
// It also returns the number of non-missing values.
func SavGolValid(vals []float64, window, order int) ([]float64, int, error) {
	idx := make([]int, 0, len(vals))
	valid := make([]float64, 0, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		idx = append(idx, i)
		valid = append(valid, v)
	}
	sm, err := SavGol(valid, window, order)
	if err != nil {
		return nil, len(valid), err
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	for i, r := range idx {
		out[r] = sm[i]
	}
	return out, len(valid), nil
}
