/*
* Monte Carlo pi estimation module
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

// Consecutive non-overlapping 6-byte groups form one (x, y) point each:
// three bytes per 24-bit coordinate, big-endian. A point is a hit when it
// falls inside the quarter circle of squared radius 2^48. Coordinates are
// below 2^24, so x*x+y*y stays below 2^49 and fits a uint64.
const piGroupSize = 6

const piRadiusSquared = uint64(1) << 48

// monteCarloPi estimates pi as 4 * hits / groups. Trailing bytes that do
// not fill a whole group are discarded. The caller guarantees at least one
// full group.
func monteCarloPi(data []byte) float64 {
	var hits, total uint64
	for i := 0; i+piGroupSize <= len(data); i += piGroupSize {
		x := uint64(data[i])<<16 | uint64(data[i+1])<<8 | uint64(data[i+2])
		y := uint64(data[i+3])<<16 | uint64(data[i+4])<<8 | uint64(data[i+5])
		if x*x+y*y < piRadiusSquared {
			hits++
		}
		total++
	}
	return 4.0 * float64(hits) / float64(total)
}
