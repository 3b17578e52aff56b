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

// Package kmer computes the k-mer composition of a sequence.
package kmer

import (
	"strconv"
	"strings"

	"github.com/shenwei356/kmers"

	"github.com/jllpons/genocrab/dna"
)

// MaxK bounds k so that the table of 4^k counts stays small.
const MaxK = 12

// A Composition counts the occurrences of every k-mer over A, C, G
// and T. Counts is indexed by the 2-bit encoding of the k-mer, which
// orders k-mers lexicographically.
type Composition struct {
	K      int
	Counts []int
}

// Count slides a window of length k over seq. Every window must
// consist of A, C, G and T only.
func Count(seq string, k int) (Composition, error) {
	if k < 1 || k > MaxK {
		return Composition{}, dna.InvalidInputf("k-mer length must be between 1 and %d, got %d", MaxK, k)
	}
	if len(seq) < k {
		return Composition{}, dna.InvalidInputf("sequence of length %d is shorter than k-mer length %d", len(seq), k)
	}
	counts := make([]int, 1<<(2*uint(k)))
	for i := 0; i+k <= len(seq); i++ {
		mer := seq[i : i+k]
		for j := 0; j < k; j++ {
			if !dna.IsCanonical(mer[j]) {
				return Composition{}, dna.InvalidInputf("uncanonical kmer found: %v", mer)
			}
		}
		code, err := kmers.Encode([]byte(mer))
		if err != nil {
			return Composition{}, dna.InvalidInputf("uncanonical kmer found: %v (%v)", mer, err)
		}
		counts[code]++
	}
	return Composition{K: k, Counts: counts}, nil
}

// Kmer returns the k-mer counted at index code.
func (c Composition) Kmer(code int) string {
	return string(kmers.MustDecode(uint64(code), c.K))
}

// Total is the number of windows that were counted.
func (c Composition) Total() (total int) {
	for _, n := range c.Counts {
		total += n
	}
	return
}

// Format renders the counts separated by single spaces.
func (c Composition) Format() string {
	var b strings.Builder
	for i, n := range c.Counts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// FormatTable renders one "kmer<TAB>count" line per k-mer with a
// non-zero count, in lexicographic order.
func (c Composition) FormatTable() string {
	var b strings.Builder
	for code, n := range c.Counts {
		if n == 0 {
			continue
		}
		b.WriteString(c.Kmer(code))
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(n))
		b.WriteByte('\n')
	}
	return b.String()
}
