/*
* Command line interface module
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

// ent analyzes the statistical randomness of a file or of standard input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chbtoys/ent"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage: ent [options] [file]

Analyze the randomness of file, or of standard input when no file is given.

Options:
  -a    print the mean absolute autocorrelation up to lag 50
  -b    treat input as a stream of bits
  -c    print the occurrence count table
  -f    fold upper case letters to lower case before analysis
  -k    print the Kolmogorov-Smirnov uniformity statistic
  -s    scan for known compressed/encrypted container signatures
  -t    terse output in CSV format
  -u    print this summary
`)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ent: ")

	autoCorr := flag.Bool("a", false, "print the mean absolute autocorrelation up to lag 50")
	bitMode := flag.Bool("b", false, "treat input as a stream of bits")
	printTable := flag.Bool("c", false, "print the occurrence count table")
	foldCase := flag.Bool("f", false, "fold upper case letters to lower case before analysis")
	ksTest := flag.Bool("k", false, "print the Kolmogorov-Smirnov uniformity statistic")
	scanMagic := flag.Bool("s", false, "scan for known compressed/encrypted container signatures")
	terse := flag.Bool("t", false, "terse output in CSV format")
	wantUsage := flag.Bool("u", false, "print a usage summary")
	flag.Usage = usage
	flag.Parse()

	if *wantUsage {
		usage()
		return
	}

	var data []byte
	var err error
	switch flag.NArg() {
	case 0:
		data, err = ent.Load(os.Stdin)
	case 1:
		data, err = ent.LoadFile(flag.Arg(0))
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *foldCase {
		data = ent.FoldCase(data)
	}

	mode := ent.ByteMode
	if *bitMode {
		mode = ent.BitMode
	}

	result, err := ent.Calculate(data, mode)
	if err != nil {
		log.Fatal(err)
	}
	counts := ent.Counts(data, mode)

	if *terse {
		ent.WriteTerseReport(os.Stdout, result)
		if *printTable {
			ent.WriteTerseTable(os.Stdout, counts, result.Samples)
		}
	} else {
		if *printTable {
			ent.WriteTable(os.Stdout, counts, mode, len(data))
		}
		ent.WriteReport(os.Stdout, result)
	}

	if *ksTest {
		ks := ent.UniformKS(counts, result.Samples)
		fmt.Printf("Kolmogorov-Smirnov statistic is %f at value %d (critical %f at 0.05, %f at 0.01).\n",
			ks.Statistic, ks.Position, ks.Critical05, ks.Critical01)
	}

	if *autoCorr {
		meanAbs, err := ent.Autocorrelation(data, ent.DefaultMaxLag)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Mean absolute autocorrelation through lag %d is %f.\n", ent.DefaultMaxLag, meanAbs)
	}

	if *scanMagic {
		found, err := ent.DetectContainers(data)
		if err != nil {
			log.Fatal(err)
		}
		if len(found) > 0 {
			fmt.Printf("Known container signature detected: %s.\n", strings.Join(found, ", "))
		} else {
			fmt.Print("No known container signature detected.\n")
		}
	}
}
