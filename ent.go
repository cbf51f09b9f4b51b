/*
* Randomness analysis core module
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

// Package ent measures the statistical randomness of a byte sequence. It
// computes Shannon entropy, a chi-square goodness-of-fit test against the
// uniform distribution, the arithmetic mean, a Monte Carlo estimate of pi
// and the serial correlation coefficient, either over whole bytes or over
// individual bits. The results are useful for evaluating pseudorandom
// number generators, estimating compression potential and spotting
// anomalies in data streams.
package ent

import "errors"

const byteValCount = 256

var (
	// ErrEmptyInput is returned when the buffer to analyze has length zero.
	ErrEmptyInput = errors.New("ent: empty input")
	// ErrShortInput is returned when the buffer is shorter than one 6-byte
	// Monte Carlo group, leaving the pi estimate with nothing to sample.
	ErrShortInput = errors.New("ent: input shorter than 6 bytes")
)

// SampleMode selects the sampling alphabet: whole bytes (256 symbols) or
// individual bits (2 symbols, enumerated least-significant-bit first).
type SampleMode int

const (
	ByteMode SampleMode = iota
	BitMode
)

func (m SampleMode) String() string {
	if m == BitMode {
		return "bit"
	}
	return "byte"
}

// AlphabetSize returns the number of distinct symbols in the mode's alphabet.
func (m SampleMode) AlphabetSize() int {
	if m == BitMode {
		return 2
	}
	return byteValCount
}

// MaxEntropy returns the entropy of a perfectly uniform source in bits per
// sample: 1 for bits, 8 for bytes.
func (m SampleMode) MaxEntropy() float64 {
	if m == BitMode {
		return 1.0
	}
	return 8.0
}

// SampleCount returns how many samples a buffer of byteLen bytes yields.
func (m SampleMode) SampleCount(byteLen int) int {
	if m == BitMode {
		return 8 * byteLen
	}
	return byteLen
}

// NullFloat holds a statistic that can be undefined for degenerate input,
// such as the serial correlation of a constant buffer. Valid is false when
// the value carries no meaning; Float64 is then zero, not a sentinel.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Result is an immutable snapshot of one analysis run. A fresh Result is
// produced by every Calculate call; it is never updated in place.
type Result struct {
	Mode    SampleMode
	Samples int // bits in BitMode, bytes in ByteMode

	Entropy     float64 // bits per sample
	Compression float64 // percent of the ideal size reduction
	ChiSquare   float64
	// PValue is the normal-approximation tail probability of the chi-square
	// statistic. The approximation breaks down when the statistic falls
	// below its degrees of freedom; Valid is false in that case.
	PValue NullFloat
	// ExactPValue is the tail probability from the exact chi-square
	// distribution, meaningful over the whole range of the statistic.
	ExactPValue float64
	// Mean is the arithmetic mean of the raw byte values, regardless of
	// sampling mode (127.5 = random).
	Mean float64
	Pi   float64
	// SerialCorrelation is undefined when every byte value is identical.
	SerialCorrelation NullFloat
}

// Calculate runs all measurements over data and returns their snapshot.
// The buffer is read-only for the duration of the call and the same buffer
// and mode always yield bit-identical results. Buffers shorter than one
// Monte Carlo group are rejected with ErrEmptyInput or ErrShortInput.
func Calculate(data []byte, mode SampleMode) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrEmptyInput
	}
	if len(data) < piGroupSize {
		return Result{}, ErrShortInput
	}

	counts := Counts(data, mode)
	samples := mode.SampleCount(len(data))

	entropy := entropyBits(counts, samples)
	chisq, approxP, exactP := chiSquareUniform(counts, samples)

	return Result{
		Mode:              mode,
		Samples:           samples,
		Entropy:           entropy,
		Compression:       100.0 * (1.0 - entropy/mode.MaxEntropy()),
		ChiSquare:         chisq,
		PValue:            approxP,
		ExactPValue:       exactP,
		Mean:              meanBytes(data),
		Pi:                monteCarloPi(data),
		SerialCorrelation: serialCorrelation(data),
	}, nil
}

// FoldCase returns a copy of data with every ASCII upper case letter mapped
// to lower case. Analyzing the folded copy instead of the original changes
// the observed alphabet and therefore all measurements. The input buffer is
// left untouched.
func FoldCase(data []byte) []byte {
	folded := make([]byte, len(data))
	for i, b := range data {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		folded[i] = b
	}
	return folded
}

func meanBytes(data []byte) float64 {
	var sum uint64
	for _, b := range data {
		sum += uint64(b)
	}
	return float64(sum) / float64(len(data))
}
