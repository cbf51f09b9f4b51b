/*
* Autocorrelation test tests
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutocorrelationPeriodicData(t *testing.T) {
	// Period-2 data correlates perfectly at every lag: -1 at odd lags,
	// +1 at even ones, so the mean absolute value is 1.
	data := bytes.Repeat([]byte{0x00, 0xff}, 64)
	meanAbs, err := Autocorrelation(data, 2)
	require.NoError(t, err)
	require.InDelta(t, 1.0, meanAbs, 1e-9)
}

func TestAutocorrelationRandomDataIsLow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(rng.Intn(256))
	}

	meanAbs, err := Autocorrelation(data, DefaultMaxLag)
	require.NoError(t, err)
	require.Less(t, meanAbs, 0.05)
}

func TestAutocorrelationDegenerateInput(t *testing.T) {
	_, err := Autocorrelation([]byte{0x01}, 10)
	require.ErrorIs(t, err, ErrShortInput)

	_, err = Autocorrelation(bytes.Repeat([]byte{0x2a}, 128), 10)
	require.Error(t, err)
}
