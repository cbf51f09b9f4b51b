/*
* Pearson chi-squared test module
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
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// chiSquareUniform computes the Pearson chi-square statistic of the symbol
// counts against the uniform null hypothesis, plus two tail probabilities:
// the classical normal approximation 1 - Phi(sqrt(chisq - df)) and the
// exact chi-square survival function. The approximation requires
// chisq >= df; below that the square root argument is negative and the
// approximate p-value is reported as not valid instead of NaN.
func chiSquareUniform(counts []uint64, samples int) (chisq float64, approxP NullFloat, exactP float64) {
	expected := float64(samples) / float64(len(counts))
	for _, observed := range counts {
		diff := float64(observed) - expected
		chisq += diff * diff / expected
	}

	df := float64(len(counts) - 1)
	if chisq >= df {
		z := math.Sqrt(chisq - df)
		approxP = NullFloat{Float64: 1.0 - normCDF(z), Valid: true}
	}

	dist := distuv.ChiSquared{K: df}
	exactP = dist.Survival(chisq)
	return chisq, approxP, exactP
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
