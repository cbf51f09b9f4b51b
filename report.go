/*
* Result formatting module
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
	"io"
	"math"
)

// WriteReport prints the verbose human-readable summary of a Result. The
// chi-square sentence words the exact tail probability, which unlike the
// normal approximation is meaningful for every value of the statistic.
func WriteReport(w io.Writer, res Result) {
	samp := res.Mode.String()

	fmt.Fprintf(w, "Entropy = %f bits per %s.\n\n", res.Entropy, samp)
	fmt.Fprintf(w, "Optimum compression would reduce the size\nof this %d %s file by %d percent.\n\n",
		res.Samples, samp, int(res.Compression))

	fmt.Fprintf(w, "Chi square distribution for %d samples is %f, and randomly\n", res.Samples, res.ChiSquare)
	switch p := res.ExactPValue; {
	case p < 0.0001:
		fmt.Fprint(w, "would exceed this value less than 0.01 percent of the times.\n\n")
	case p > 0.9999:
		fmt.Fprint(w, "would exceed this value more than 99.99 percent of the times.\n\n")
	default:
		fmt.Fprintf(w, "would exceed this value %f percent of the times.\n\n", p*100)
	}

	random := 127.5
	if res.Mode == BitMode {
		random = 0.5
	}
	fmt.Fprintf(w, "Arithmetic mean value of data bytes is %f (%.1f = random).\n", res.Mean, random)
	fmt.Fprintf(w, "Monte Carlo value for Pi is %f (error %f percent).\n",
		res.Pi, math.Abs(res.Pi-math.Pi)/math.Pi*100.0)

	if scc := res.SerialCorrelation; scc.Valid {
		fmt.Fprintf(w, "Serial correlation coefficient is %f (totally uncorrelated = 0.0).\n", scc.Float64)
	} else {
		fmt.Fprint(w, "Serial correlation coefficient is undefined (all values equal!).\n")
	}
}

// WriteTerseReport prints the summary in the line-prefixed CSV format:
// record marker 0 carries the column names, marker 1 the values. An
// undefined serial correlation is written as the word "undefined" rather
// than a numeric sentinel.
func WriteTerseReport(w io.Writer, res Result) {
	fmt.Fprintf(w, "0,File-%ss,Entropy,Chi-square,Mean,Monte-Carlo-Pi,Serial-Correlation\n", res.Mode)
	scc := "undefined"
	if res.SerialCorrelation.Valid {
		scc = fmt.Sprintf("%f", res.SerialCorrelation.Float64)
	}
	fmt.Fprintf(w, "1,%d,%f,%f,%f,%f,%s\n",
		res.Samples, res.Entropy, res.ChiSquare, res.Mean, res.Pi, scc)
}

// WriteTable prints the occurrence table for counts as produced by Counts.
// Byte mode includes the printable character column; byteLen is the buffer
// length in bytes and feeds the trailing Total line.
func WriteTable(w io.Writer, counts []uint64, mode SampleMode, byteLen int) {
	samples := float64(mode.SampleCount(byteLen))
	if mode == BitMode {
		for value, count := range counts {
			fmt.Fprintf(w, "Value: %d Occurrences: %d Fraction: %g\n", value, count, float64(count)/samples)
		}
	} else {
		for value, count := range counts {
			char := byte(' ')
			if value >= 0x20 && value <= 0x7e {
				char = byte(value)
			}
			fmt.Fprintf(w, "Value: %d Char: %c Occurrences: %d Fraction: %g\n",
				value, char, count, float64(count)/samples)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d 1.0\n\n", byteLen)
}

// WriteTerseTable prints the occurrence table in the line-prefixed CSV
// format: record marker 2 carries the column names, marker 3 one row per
// symbol value.
func WriteTerseTable(w io.Writer, counts []uint64, samples int) {
	fmt.Fprint(w, "2,Value,Occurrences,Fraction\n")
	for value, count := range counts {
		fmt.Fprintf(w, "3,%d,%d,%g\n", value, count, float64(count)/float64(samples))
	}
}
