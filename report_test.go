/*
* Result formatting tests
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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleResult() Result {
	return Result{
		Mode:              ByteMode,
		Samples:           100,
		Entropy:           4.0,
		Compression:       50.0,
		ChiSquare:         300.0,
		PValue:            NullFloat{Float64: 0.03, Valid: true},
		ExactPValue:       0.025,
		Mean:              127.5,
		Pi:                3.2,
		SerialCorrelation: NullFloat{Float64: 0.05, Valid: true},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, sampleResult())
	out := buf.String()

	require.Contains(t, out, "Entropy = 4.000000 bits per byte.")
	require.Contains(t, out, "of this 100 byte file by 50 percent.")
	require.Contains(t, out, "Chi square distribution for 100 samples is 300.000000")
	require.Contains(t, out, "would exceed this value 2.500000 percent of the times.")
	require.Contains(t, out, "Arithmetic mean value of data bytes is 127.500000 (127.5 = random).")
	require.Contains(t, out, "Monte Carlo value for Pi is 3.200000")
	require.Contains(t, out, "Serial correlation coefficient is 0.050000 (totally uncorrelated = 0.0).")
}

func TestWriteReportExtremePValues(t *testing.T) {
	res := sampleResult()

	res.ExactPValue = 1e-6
	var buf bytes.Buffer
	WriteReport(&buf, res)
	require.Contains(t, buf.String(), "less than 0.01 percent of the times.")

	res.ExactPValue = 0.99999
	buf.Reset()
	WriteReport(&buf, res)
	require.Contains(t, buf.String(), "more than 99.99 percent of the times.")
}

func TestWriteReportUndefinedSerialCorrelation(t *testing.T) {
	res := sampleResult()
	res.SerialCorrelation = NullFloat{}

	var buf bytes.Buffer
	WriteReport(&buf, res)
	require.Contains(t, buf.String(), "Serial correlation coefficient is undefined (all values equal!).")
}

func TestWriteReportBitMode(t *testing.T) {
	res := sampleResult()
	res.Mode = BitMode
	res.Samples = 800

	var buf bytes.Buffer
	WriteReport(&buf, res)
	out := buf.String()
	require.Contains(t, out, "bits per bit.")
	require.Contains(t, out, "of this 800 bit file")
	require.Contains(t, out, "(0.5 = random).")
}

func TestWriteTerseReport(t *testing.T) {
	var buf bytes.Buffer
	WriteTerseReport(&buf, sampleResult())

	want := "0,File-bytes,Entropy,Chi-square,Mean,Monte-Carlo-Pi,Serial-Correlation\n" +
		"1,100,4.000000,300.000000,127.500000,3.200000,0.050000\n"
	require.Equal(t, want, buf.String())
}

func TestWriteTerseReportUndefinedSerialCorrelation(t *testing.T) {
	res := sampleResult()
	res.SerialCorrelation = NullFloat{}

	var buf bytes.Buffer
	WriteTerseReport(&buf, res)
	require.True(t, strings.HasSuffix(buf.String(), ",undefined\n"))
}

func TestWriteTable(t *testing.T) {
	data := []byte("aabb")
	var buf bytes.Buffer
	WriteTable(&buf, Counts(data, ByteMode), ByteMode, len(data))
	out := buf.String()

	require.Contains(t, out, "Value: 97 Char: a Occurrences: 2 Fraction: 0.5\n")
	require.Contains(t, out, "Value: 98 Char: b Occurrences: 2 Fraction: 0.5\n")
	require.Contains(t, out, "Value: 0 Char:   Occurrences: 0 Fraction: 0\n")
	require.Contains(t, out, "\nTotal: 4 1.0\n")
}

func TestWriteTerseTableBitMode(t *testing.T) {
	data := []byte{0x0f, 0xf0}
	var buf bytes.Buffer
	WriteTerseTable(&buf, Counts(data, BitMode), BitMode.SampleCount(len(data)))

	want := "2,Value,Occurrences,Fraction\n" +
		"3,0,8,0.5\n" +
		"3,1,8,0.5\n"
	require.Equal(t, want, buf.String())
}
