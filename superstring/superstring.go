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

// Package superstring approximates the shortest common superstring
// of a set of reads with a greedy chaining heuristic.
//
// Computing the shortest common superstring exactly is NP-hard. The
// heuristic implemented here chains reads by always appending the
// read that adds the fewest bases. It is not guaranteed to find the
// shortest superstring, and for some inputs it finds none at all.
package superstring

import (
	"errors"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/exascience/pargo/parallel"

	"github.com/jllpons/genocrab/dna"
)

// noJoin marks the diagonal of the length table.
const noJoin = -1

// JoinFragment returns the part of seq2 that remains after removing
// the longest prefix of seq2 that is also a suffix of seq1. If there
// is no such overlap, all of seq2 is returned.
func JoinFragment(seq1, seq2 string) string {
	n := len(seq1)
	if len(seq2) < n {
		n = len(seq2)
	}
	for t := n; t >= 1; t-- {
		if seq1[len(seq1)-t:] == seq2[:t] {
			return seq2[t:]
		}
	}
	return seq2
}

// Tables holds the join fragments for every ordered pair of reads.
// Lengths[i][j] is len(Fragments[i][j]), except on the diagonal
// where it is -1.
type Tables struct {
	Lengths   [][]int
	Fragments [][]string
}

// BuildTables computes the join fragments of all ordered pairs.
// Rows are independent and computed in parallel.
func BuildTables(seqs []string) Tables {
	n := len(seqs)
	tables := Tables{
		Lengths:   make([][]int, n),
		Fragments: make([][]string, n),
	}
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			lengths := make([]int, n)
			fragments := make([]string, n)
			for j, seq := range seqs {
				if i == j {
					lengths[j] = noJoin
					continue
				}
				fragment := JoinFragment(seqs[i], seq)
				fragments[j] = fragment
				lengths[j] = len(fragment)
			}
			tables.Lengths[i] = lengths
			tables.Fragments[i] = fragments
		}
	})
	return tables
}

// A Path is a sequence of distinct read indices.
type Path []int

func (tables Tables) next(node int) (int, error) {
	if node < 0 || node >= len(tables.Lengths) {
		return -1, dna.Internalf("node not found in overlaps: %d", node)
	}
	lengths := tables.Lengths[node]
	best := -1
	for j, length := range lengths {
		if length == noJoin {
			continue
		}
		if best == -1 || length < lengths[best] {
			best = j
		}
	}
	if best == -1 {
		return -1, errNoNextNode
	}
	return best, nil
}

var errNoNextNode = errors.New("no valid next node found")

// Walk chains reads greedily, starting at start. From each read it
// moves to the read with the shortest join fragment, preferring the
// lowest index on ties. The walk ends when that read was already
// visited, or when there is no read to move to.
//
// The path is always returned. The error is non-nil if the path does
// not cover every read.
func (tables Tables) Walk(start int) (Path, error) {
	n := len(tables.Lengths)
	if start < 0 || start >= n {
		return nil, dna.Internalf("node not found in overlaps: %d", start)
	}
	visited := bitset.New(uint(n))
	visited.Set(uint(start))
	path := Path{start}
	for {
		next, err := tables.next(path[len(path)-1])
		if err == errNoNextNode {
			break
		} else if err != nil {
			return path, err
		}
		if visited.Test(uint(next)) {
			break
		}
		visited.Set(uint(next))
		path = append(path, next)
	}
	if len(path) != n {
		return path, dna.Incompletef("no valid next node found: walk from %d covers %d of %d sequences", start, len(path), n)
	}
	return path, nil
}

// Candidates returns every greedy walk that covers all reads, in
// order of their start index.
func (tables Tables) Candidates() ([]Path, error) {
	var candidates []Path
	for start := range tables.Lengths {
		path, err := tables.Walk(start)
		if err != nil {
			if errors.Is(err, dna.ErrIncomplete) {
				continue
			}
			return nil, err
		}
		candidates = append(candidates, path)
	}
	return candidates, nil
}

// Superstring concatenates the first read of path with the join
// fragments along the rest of the path.
func (tables Tables) Superstring(seqs []string, path Path) string {
	var b strings.Builder
	b.WriteString(seqs[path[0]])
	for i := 1; i < len(path); i++ {
		b.WriteString(tables.Fragments[path[i-1]][path[i]])
	}
	return b.String()
}

// Assemble returns the lexicographically smallest superstring among
// all greedy walks that cover every read.
func Assemble(seqs []string) (string, error) {
	if len(seqs) == 0 {
		return "", dna.InvalidInputf("no sequences provided")
	}
	tables := BuildTables(seqs)
	candidates, err := tables.Candidates()
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", dna.Incompletef("no full-coverage path found: no start sequence leads to a walk over all %d sequences", len(seqs))
	}
	best := tables.Superstring(seqs, candidates[0])
	for _, path := range candidates[1:] {
		if s := tables.Superstring(seqs, path); s < best {
			best = s
		}
	}
	return best, nil
}
