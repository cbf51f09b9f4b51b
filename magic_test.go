/*
* Container signature detection tests
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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectContainers(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want []string
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, []string{"gzip"}},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd}, []string{"zstd"}},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, []string{"PNG"}},
		{"luks1", append([]byte("LUKS"), 0xba, 0xbe, 0x00, 0x01), []string{"LUKSv1"}},
		{"plain text", []byte("just regular text, no magic here"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(bytes.Clone(tt.head), bytes.Repeat([]byte{0x55}, 64)...)
			found, err := DetectContainers(data)
			require.NoError(t, err)
			require.Equal(t, tt.want, found)
		})
	}
}

func TestDetectContainersIgnoresDeepMatches(t *testing.T) {
	// A gzip magic buried past the start of the stream is not a container
	// header.
	data := append(bytes.Repeat([]byte{0x55}, 64), 0x1f, 0x8b, 0x08)
	found, err := DetectContainers(data)
	require.NoError(t, err)
	require.Empty(t, found)
}
