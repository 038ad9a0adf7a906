// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var errNoRows = errors.New("no input rows")

// readSample parses labelled rows. Blank lines and lines starting
// with '#' are ignored.
func readSample(r io.Reader) (*mat.Dense, []int, error) {
	var (
		data   []float64
		labels []int
		width  = -1
		line   = 0
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: need coordinates and a label", line)
		}
		if width < 0 {
			width = len(fields) - 1
		} else if len(fields)-1 != width {
			return nil, nil, fmt.Errorf("line %d: got %d coordinates, want %d", line, len(fields)-1, width)
		}
		for _, f := range fields[:width] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			data = append(data, v)
		}
		label, err := strconv.Atoi(fields[width])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: label: %w", line, err)
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(labels) == 0 {
		return nil, nil, errNoRows
	}
	return mat.NewDense(len(labels), width, data), labels, nil
}

// readInput reads from the named file, or from stdin if args is
// empty or "-".
func readInput(args []string, stdin io.Reader) (*mat.Dense, []int, error) {
	if len(args) == 0 || args[0] == "-" {
		return readSample(stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return readSample(f)
}
