/*
* Kolmogorov-Smirnov uniformity test module
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

import "math"

// KSResult reports a Kolmogorov-Smirnov comparison of the observed symbol
// distribution against the uniform one.
type KSResult struct {
	// Statistic is the largest absolute difference between the empirical
	// and the uniform cumulative distribution functions.
	Statistic float64
	// Position is the symbol value where that largest difference occurs.
	Position int
	// Critical01 and Critical05 are the rejection thresholds for the
	// statistic at significance levels 0.01 and 0.05.
	Critical01 float64
	Critical05 float64
}

// UniformKS runs the Kolmogorov-Smirnov uniformity test over symbol counts
// produced by Counts. The uniform CDF climbs by 1/len(counts) per symbol;
// the empirical CDF follows the observed counts.
func UniformKS(counts []uint64, samples int) KSResult {
	var empiricalCumSum, uniformCumSum float64
	uniformStep := 1.0 / float64(len(counts))

	statistic := 0.0
	position := 0
	for symbol, count := range counts {
		empiricalCumSum += float64(count) / float64(samples)
		uniformCumSum += uniformStep
		diff := math.Abs(empiricalCumSum - uniformCumSum)
		if diff > statistic {
			statistic = diff
			position = symbol
		}
	}

	return KSResult{
		Statistic:  statistic,
		Position:   position,
		Critical01: 1.63 / math.Sqrt(float64(samples)),
		Critical05: 1.36 / math.Sqrt(float64(samples)),
	}
}
