/*
* Symbol frequency counting module
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

import "math/bits"

// Counts tallies symbol occurrences over the mode's alphabet. The returned
// slice has AlphabetSize entries indexed by symbol value: 2 for BitMode,
// 256 for ByteMode. In BitMode every one of the 8 bits of each byte is a
// sample. The counts sum to SampleCount(len(data)).
func Counts(data []byte, mode SampleMode) []uint64 {
	if mode == BitMode {
		counts := make([]uint64, 2)
		for _, b := range data {
			ones := uint64(bits.OnesCount8(b))
			counts[0] += 8 - ones
			counts[1] += ones
		}
		return counts
	}
	counts := make([]uint64, byteValCount)
	for _, b := range data {
		counts[b]++
	}
	return counts
}
