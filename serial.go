/*
* Serial correlation module
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

// serialCorrelation computes the Pearson correlation between each byte and
// its predecessor. The five sums are accumulated in uint64: every term is
// at most 255*255, so buffers stay safely below overflow into the tens of
// billions of bytes. A constant buffer has zero variance and no defined
// coefficient, reported with Valid set to false.
func serialCorrelation(data []byte) NullFloat {
	var sumX, sumY, sumXY, sumX2, sumY2 uint64
	for i := 1; i < len(data); i++ {
		x := uint64(data[i-1])
		y := uint64(data[i])
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	n := float64(len(data) - 1)
	varX := n*float64(sumX2) - float64(sumX)*float64(sumX)
	varY := n*float64(sumY2) - float64(sumY)*float64(sumY)
	if varX <= 0 || varY <= 0 {
		return NullFloat{}
	}
	r := (n*float64(sumXY) - float64(sumX)*float64(sumY)) / math.Sqrt(varX*varY)
	return NullFloat{Float64: r, Valid: true}
}
