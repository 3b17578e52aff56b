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

// Package eulerian reconstructs a circular genome from reads with
// perfect coverage, by walking the Eulerian circuit of their De
// Bruijn graph.
package eulerian

import (
	"sort"
	"strings"

	"github.com/jllpons/genocrab/debruijn"
	"github.com/jllpons/genocrab/dna"
)

// successors maps each node to the single node its edge leads to.
type successors map[string]string

func buildSuccessors(nodes debruijn.NodeSet) (successors, error) {
	succ := make(successors, len(nodes))
	for _, pair := range nodes.Sorted() {
		if other, ok := succ[pair.Prefix]; ok {
			return nil, dna.Incompletef("ambiguous De Bruijn graph: node %v has successors %v and %v", pair.Prefix, other, pair.Suffix)
		}
		succ[pair.Prefix] = pair.Suffix
	}
	return succ, nil
}

func (succ successors) sortedKeys() []string {
	keys := make([]string, 0, len(succ))
	for key := range succ {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// walkFrom follows successors from start until it reaches a node it
// has already seen, appending the last base of every new node.
func (succ successors) walkFrom(start string) (linear string, visited int) {
	var b strings.Builder
	b.WriteString(start)
	seen := map[string]bool{start: true}
	next, ok := succ[start]
	for ok && !seen[next] {
		seen[next] = true
		b.WriteByte(next[len(next)-1])
		next, ok = succ[next]
	}
	return b.String(), len(seen)
}

// CheckCircuit verifies that the node set can describe an Eulerian
// circuit: every node has as many incoming as outgoing edges, and
// all nodes belong to one weakly connected component.
func CheckCircuit(nodes debruijn.NodeSet) error {
	names := nodes.Nodes()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	in := make([]int, len(names))
	out := make([]int, len(names))
	f := newForest(len(names))
	for pair := range nodes {
		from, to := index[pair.Prefix], index[pair.Suffix]
		out[from]++
		in[to]++
		f.join(from, to)
	}
	for i, name := range names {
		if in[i] != out[i] {
			return dna.Incompletef("not Eulerian: node %v has in-degree %d and out-degree %d", name, in[i], out[i])
		}
	}
	if n := f.components(); n > 1 {
		return dna.Incompletef("not Eulerian: graph has %d connected components", n)
	}
	return nil
}

// Walk returns the linear string spelled by a walk that visits every
// node of the set exactly once. Start nodes are tried in
// lexicographic order, so the result is deterministic.
func Walk(nodes debruijn.NodeSet) (string, error) {
	succ, err := buildSuccessors(nodes)
	if err != nil {
		return "", err
	}
	if err := CheckCircuit(nodes); err != nil {
		return "", err
	}
	total := len(nodes.Nodes())
	for _, start := range succ.sortedKeys() {
		if linear, visited := succ.walkFrom(start); visited == total {
			return linear, nil
		}
	}
	return "", dna.Incompletef("not all nodes visited")
}

// MinimalPeriod returns the shortest prefix p of linear such that
// linear starts over with p after it. This removes the bases that a
// walk repeats when it closes its cycle.
func MinimalPeriod(linear string) (string, error) {
	for i := 1; i <= len(linear); i++ {
		if strings.HasPrefix(linear, linear[i:]) {
			return linear[:i], nil
		}
	}
	return "", dna.Internalf("no circular string found")
}

// Reconstruct assembles the circular genome the sequences were read
// from. The result is one rotation of that genome.
func Reconstruct(seqs []string) (string, error) {
	nodes, err := debruijn.BuildNodes(seqs, false)
	if err != nil {
		return "", err
	}
	linear, err := Walk(nodes)
	if err != nil {
		return "", err
	}
	return MinimalPeriod(linear)
}
