/*
* Autocorrelation test module
* Copyright (C) 2025  Håkan Blomqvist
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package ent

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// DefaultMaxLag bounds the autocorrelation scan; lags beyond 50 add little
// for byte streams.
const DefaultMaxLag = 50

// Autocorrelation generalizes the serial correlation test to longer lags:
// it computes the Pearson autocorrelation of the mean-centered byte values
// for every lag in 1..maxLag and returns the mean of their absolute values.
// Random data scores near zero; periodic or structured data scores higher.
// maxLag is capped at len(data)-1. Degenerate input (constant bytes, fewer
// than 2 bytes) yields an error.
func Autocorrelation(data []byte, maxLag int) (float64, error) {
	if len(data) < 2 {
		return 0, ErrShortInput
	}
	if maxLag < 1 || maxLag > len(data)-1 {
		maxLag = len(data) - 1
	}

	mean := meanBytes(data)
	centered := make([]float64, len(data))
	for i, b := range data {
		centered[i] = float64(b) - mean
	}

	perLag := make([]float64, 0, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		correlation, err := stats.Correlation(centered[lag:], centered[:len(centered)-lag])
		if err != nil {
			return 0, fmt.Errorf("autocorrelation at lag %d: %w", lag, err)
		}
		if math.IsNaN(correlation) {
			return 0, fmt.Errorf("autocorrelation at lag %d: zero variance", lag)
		}
		perLag = append(perLag, math.Abs(correlation))
	}

	meanAbs, err := stats.Mean(perLag)
	if err != nil {
		return 0, fmt.Errorf("autocorrelation mean: %w", err)
	}
	return meanAbs, nil
}
