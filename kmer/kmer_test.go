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

package kmer

import (
	"errors"
	"strings"
	"testing"

	"github.com/jllpons/genocrab/dna"
)

const rosalindSeq = "CTTCGAAAGTTTGGGCCGAGTCTTACAGTCGGTCTTGAAGCAAAGTAACGAACTCCACGGCCCTGACTACCGAACCAGTTGTGAGTACTCAACTGGGTGAGAGTGCAGTCCCTATTGAGTTTCCGAGACTCACCGGGATTTTCGATCCAGCCTCAGTCCAGTCTTGTGGCCAACTCACCAAATGACGTTGGAATATCCCTGTCTAGCTCACGCAGTACTTAGTAAGAGGTCGCTGCAGCGGGGCAAGGAGATCGGAAAATGTGCTCTATATGCGACTAAAGCTCCTAACTTACACGTAGACTTGCCCGTGTTAAAAACTCGGCTCACATGCTGTCTGCGGCTGGCTGTATACAGTATCTACCTAATACCCTTCAGTTCGCCGCACAAAAGCTGGGAGTTACCGCGGAAATCACAG"

const rosalindCounts = "4 1 4 3 0 1 1 5 1 3 1 2 2 1 2 0 1 1 3 1 " +
	"2 1 3 1 1 1 1 2 2 5 1 3 0 2 2 1 1 1 1 3 1 " +
	"0 0 1 5 5 1 5 0 2 0 2 1 2 1 1 1 2 0 1 0 0 " +
	"1 1 3 2 1 0 3 2 3 0 0 2 0 8 0 0 1 0 2 1 3 " +
	"0 0 0 1 4 3 2 1 1 3 1 2 1 3 1 2 1 2 1 1 1 " +
	"2 3 2 1 1 0 1 1 3 2 1 2 6 2 1 1 1 2 3 3 3 " +
	"2 3 0 3 2 1 1 0 0 1 4 3 0 1 5 0 2 0 1 2 1 " +
	"3 0 1 2 2 1 1 0 3 0 0 4 5 0 3 0 2 1 1 3 0 " +
	"3 2 2 1 1 0 2 1 0 2 2 1 2 0 2 2 5 2 2 1 1 " +
	"2 1 2 2 2 2 1 1 3 4 0 2 1 1 0 1 2 2 1 1 1 " +
	"5 2 0 3 2 1 1 2 2 3 0 3 0 1 3 1 2 3 0 2 1 " +
	"2 2 1 2 3 0 1 2 3 1 1 3 1 0 1 1 3 0 2 1 2 " +
	"2 0 2 1 1"

func TestCount(t *testing.T) {
	c, err := Count(rosalindSeq, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Format(); got != rosalindCounts {
		t.Errorf("Count produced\n%v\nwant\n%v", got, rosalindCounts)
	}
	if total := c.Total(); total != len(rosalindSeq)-4+1 {
		t.Errorf("Total() = %d, want %d", total, len(rosalindSeq)-3)
	}
}

func TestCountOrder(t *testing.T) {
	c, err := Count("ACGT", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Counts) != 16 {
		t.Fatalf("expected 16 counts, got %d", len(c.Counts))
	}
	if c.Kmer(0) != "AA" || c.Kmer(15) != "TT" || c.Kmer(6) != "CG" {
		t.Errorf("unexpected k-mer order %v %v %v", c.Kmer(0), c.Kmer(6), c.Kmer(15))
	}
	want := "AC\t1\nCG\t1\nGT\t1\n"
	if got := c.FormatTable(); got != want {
		t.Errorf("FormatTable produced\n%vwant\n%v", got, want)
	}
}

func TestCountErrors(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		k    int
		msg  string
	}{
		{"k too small", "ACGT", 0, "k-mer length"},
		{"k too large", "ACGT", MaxK + 1, "k-mer length"},
		{"sequence too short", "AC", 3, "sequence of length 2"},
		{"uncanonical", "ACNGT", 2, "uncanonical kmer found: CN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Count(tt.seq, tt.k)
			if !errors.Is(err, dna.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), tt.msg) {
				t.Errorf("got message %q, want prefix %q", err.Error(), tt.msg)
			}
		})
	}
}
