// genocrab: a tool for assembling short DNA reads.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/jllpons/genocrab/blob/master/LICENSE.txt>.

// Package overlap builds overlap graphs: directed graphs that connect
// read A to read B when the suffix of A equals the prefix of B.
package overlap

import (
	"strings"

	"github.com/exascience/pargo/parallel"

	"github.com/jllpons/genocrab/dna"
)

// A Read is a sequence together with its label, for example a FASTA
// header. Labels are expected to be unique within one batch.
type Read struct {
	Label string
	Seq   string
}

// An Edge connects two reads by label.
type Edge struct {
	From, To string
}

// A Graph is the list of edges of an overlap graph, in the order
// they were discovered.
type Graph []Edge

// MinReads is the smallest batch BuildGraph accepts.
const MinReads = 2

// Detect reports whether the last k bases of s equal the first k
// bases of p.
//
// k must not exceed the length of either sequence, otherwise Detect
// panics. Use CheckLength to validate k for a whole batch.
func Detect(s, p string, k int) bool {
	return s[len(s)-k:] == p[:k]
}

// CheckLength verifies that k is positive and that no read is
// shorter than k.
func CheckLength(reads []Read, k int) error {
	if k < 1 {
		return dna.InvalidInputf("overlap length must be at least 1, got %d", k)
	}
	for _, read := range reads {
		if len(read.Seq) < k {
			return dna.InvalidInputf("sequence %v is shorter than the overlap length %d", read.Label, k)
		}
	}
	return nil
}

func buildRow(reads []Read, i, k int) (row Graph) {
	from := reads[i]
	for _, to := range reads {
		if from.Label != to.Label && Detect(from.Seq, to.Seq, k) {
			row = append(row, Edge{From: from.Label, To: to.Label})
		}
	}
	return row
}

// BuildGraph tests every ordered pair of reads with distinct labels
// for an overlap of length k.
//
// Edges are ordered by the position of the source read in the input,
// then by the position of the target read. Rows are computed in
// parallel, but the result is identical to a sequential run.
func BuildGraph(reads []Read, k int) (Graph, error) {
	if len(reads) < MinReads {
		return nil, dna.InvalidInputf("insufficient input: at least %d sequences required, got %d", MinReads, len(reads))
	}
	if err := CheckLength(reads, k); err != nil {
		return nil, err
	}
	rows := make([]Graph, len(reads))
	parallel.Range(0, len(reads), 0, func(low, high int) {
		for i := low; i < high; i++ {
			rows[i] = buildRow(reads, i, k)
		}
	})
	var graph Graph
	for _, row := range rows {
		graph = append(graph, row...)
	}
	return graph, nil
}

// Format renders one "from to" line per edge. Lines are separated,
// not terminated, by newlines.
func (graph Graph) Format() string {
	var b strings.Builder
	for i, edge := range graph {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(edge.From)
		b.WriteByte(' ')
		b.WriteString(edge.To)
	}
	return b.String()
}
