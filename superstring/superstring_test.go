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

package superstring

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/jllpons/genocrab/dna"
)

func TestJoinFragment(t *testing.T) {
	tests := []struct {
		seq1, seq2, want string
	}{
		{"ATC", "TCA", "A"},
		{"ATC", "CAT", "AT"},
		{"ACGT", "GGGG", "GGGG"},
		{"AAAA", "AA", ""},
		{"ATTAGACCTG", "CCTGCCGGAA", "CCGGAA"},
	}
	for _, tt := range tests {
		if got := JoinFragment(tt.seq1, tt.seq2); got != tt.want {
			t.Errorf("JoinFragment(%q, %q) = %q, want %q", tt.seq1, tt.seq2, got, tt.want)
		}
	}
}

func TestBuildTables(t *testing.T) {
	tables := BuildTables([]string{"ATC", "CAT", "TCA"})
	want := [][]int{
		{-1, 2, 1},
		{1, -1, 2},
		{2, 1, -1},
	}
	for i := range want {
		for j := range want[i] {
			if got := tables.Lengths[i][j]; got != want[i][j] {
				t.Errorf("Lengths[%d][%d] = %d, want %d", i, j, got, want[i][j])
			}
		}
	}
	if tables.Fragments[2][1] != "T" {
		t.Errorf("Fragments[2][1] = %q, want T", tables.Fragments[2][1])
	}
}

func TestAssembleRotationFamily(t *testing.T) {
	seqs := []string{"ATC", "CAT", "TCA"}
	got, err := Assemble(seqs)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ATCAT" {
		t.Errorf("Assemble = %v, want ATCAT", got)
	}
	if len(got) > len(strings.Join(seqs, "")) {
		t.Errorf("superstring %v is longer than the concatenation", got)
	}
	for _, seq := range seqs {
		if !strings.Contains(got, seq) {
			t.Errorf("superstring %v does not contain %v", got, seq)
		}
	}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		seqs []string
		want string
	}{
		{"rosalind", []string{"ATTAGACCTG", "CCTGCCGGAA", "AGACCTGCCG", "GCCGGAATAC"}, "ATTAGACCTGCCGGAATAC"},
		{"shared prefix", []string{"AAC", "AAG", "AAT"}, "AATAACAAG"},
		{"single sequence", []string{"ACGT"}, "ACGT"},
		{"two sequences", []string{"AC", "CA"}, "ACA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assemble(tt.seqs)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Assemble = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssembleNoCandidate(t *testing.T) {
	seqs := []string{"TC", "CT", "CA", "CC"}
	_, err := Assemble(seqs)
	if !errors.Is(err, dna.ErrIncomplete) {
		t.Fatalf("expected incomplete error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "no full-coverage path found") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAssembleEmpty(t *testing.T) {
	if _, err := Assemble(nil); !errors.Is(err, dna.ErrInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestWalk(t *testing.T) {
	tables := BuildTables([]string{"ATC", "CAT", "TCA"})
	path, err := tables.Walk(0)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(path) != "[0 2 1]" {
		t.Errorf("Walk(0) = %v, want [0 2 1]", path)
	}
	if _, err := tables.Walk(3); !errors.Is(err, dna.ErrInternal) {
		t.Errorf("expected internal error for unknown node, got %v", err)
	}
}

func TestWalkStuck(t *testing.T) {
	tables := BuildTables([]string{"TC", "CT", "CA", "CC"})
	for start := range tables.Lengths {
		path, err := tables.Walk(start)
		if !errors.Is(err, dna.ErrIncomplete) {
			t.Errorf("Walk(%d): expected incomplete error, got %v", start, err)
		}
		if len(path) == 0 || path[0] != start || len(path) >= 4 {
			t.Errorf("Walk(%d) returned unexpected path %v", start, path)
		}
	}
}

func TestAssembleContainsAllReads(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	genome := make([]byte, 60)
	for i := range genome {
		genome[i] = dna.Bases[rng.Intn(4)]
	}
	var seqs []string
	for i := 0; i+12 <= len(genome); i += 6 {
		seqs = append(seqs, string(genome[i:i+12]))
	}
	got, err := Assemble(seqs)
	if err != nil {
		t.Skipf("greedy walk found no full-coverage path: %v", err)
	}
	for _, seq := range seqs {
		if !strings.Contains(got, seq) {
			t.Errorf("superstring %v does not contain %v", got, seq)
		}
	}
	if len(got) > len(strings.Join(seqs, "")) {
		t.Errorf("superstring is longer than the concatenation")
	}
}

func BenchmarkBuildTables(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	seqs := make([]string, 500)
	for i := range seqs {
		s := make([]byte, 100)
		for j := range s {
			s[j] = dna.Bases[rng.Intn(4)]
		}
		seqs[i] = string(s)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildTables(seqs)
	}
}
