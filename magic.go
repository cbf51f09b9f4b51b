/*
* Container signature detection module
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
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/rure-go"
)

// containerScanLimit bounds how much of the buffer head is hex-encoded for
// signature matching. All known magics sit at the start of the stream.
const containerScanLimit = 4096

type containerSignature struct {
	name    string
	pattern string
}

var containerSignatures = []containerSignature{
	{"gzip", "(?i)^1f8b08"},
	{"zstd", "(?i)^28b52ffd"},
	{"xz", "(?i)^fd377a585a00"},
	{"bzip2", "(?i)^425a68"},
	{"7-Zip", "(?i)^377abcaf271c"},
	{"ZIP", "(?i)^504b0304"},
	{"PNG", "(?i)^89504e470d0a1a0a"},
	{"JPEG", "(?i)^ffd8ff"},
	{"LUKSv1", "(?i)^4c554b53babe0001"},
	{"LUKSv2", "(?i)^4c554b53babe0002"},
}

// DetectContainers scans the start of data for the magic signatures of
// known compressed or encrypted container formats. A match means a high
// entropy reading is likely explained by the format rather than by a
// random source. The returned names are in signature-table order; nil when
// nothing matched.
func DetectContainers(data []byte) ([]string, error) {
	head := data
	if len(head) > containerScanLimit {
		head = head[:containerScanLimit]
	}
	hexData := hex.EncodeToString(head)

	var found []string
	for _, sig := range containerSignatures {
		regex, err := rure.Compile(sig.pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling signature for %s: %w", sig.name, err)
		}
		if len(regex.FindAll(hexData)) > 0 {
			found = append(found, sig.name)
		}
	}
	return found, nil
}
