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

// Package debruijn decomposes reads into De Bruijn graph edges.
//
// A read of length L is an edge between the node made of its first
// L-1 bases and the node made of its last L-1 bases. Edges are kept
// in a set, so reads that yield the same edge are only counted once.
package debruijn

import (
	"sort"
	"strings"

	"github.com/jllpons/genocrab/dna"
)

// A NodePair is a De Bruijn edge from Prefix to Suffix.
type NodePair struct {
	Prefix, Suffix string
}

// PairOf splits seq into its prefix and suffix node.
// seq must contain at least two bases.
func PairOf(seq string) NodePair {
	n := len(seq)
	return NodePair{Prefix: seq[:n-1], Suffix: seq[1:]}
}

// Read returns the sequence the pair was derived from.
func (pair NodePair) Read() string {
	return pair.Prefix + pair.Suffix[len(pair.Suffix)-1:]
}

func (pair NodePair) String() string {
	return "(" + pair.Prefix + ", " + pair.Suffix + ")"
}

func pairLess(x, y NodePair) bool {
	if x.Prefix < y.Prefix {
		return true
	}
	if x.Prefix > y.Prefix {
		return false
	}
	return x.Suffix < y.Suffix
}

// A NodeSet is a set of node pairs, keyed on their contents.
type NodeSet map[NodePair]struct{}

// Add inserts pair and reports whether it was not yet present.
func (set NodeSet) Add(pair NodePair) bool {
	if _, ok := set[pair]; ok {
		return false
	}
	set[pair] = struct{}{}
	return true
}

// Contains reports whether pair is in the set.
func (set NodeSet) Contains(pair NodePair) bool {
	_, ok := set[pair]
	return ok
}

// Sorted returns the pairs ordered by prefix, then suffix.
func (set NodeSet) Sorted() []NodePair {
	pairs := make([]NodePair, 0, len(set))
	for pair := range set {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairLess(pairs[i], pairs[j])
	})
	return pairs
}

// Nodes returns every distinct node that occurs as a prefix or a
// suffix, in lexicographic order.
func (set NodeSet) Nodes() []string {
	seen := make(map[string]bool, 2*len(set))
	for pair := range set {
		seen[pair.Prefix] = true
		seen[pair.Suffix] = true
	}
	nodes := make([]string, 0, len(seen))
	for node := range seen {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

// BuildNodes derives the node pair of every sequence, and of its
// reverse complement if rc is set.
//
// An empty batch, a sequence shorter than two bases, or (with rc) a
// base without complement fail the whole batch.
func BuildNodes(seqs []string, rc bool) (NodeSet, error) {
	if len(seqs) == 0 {
		return nil, dna.InvalidInputf("no sequences provided")
	}
	nodes := make(NodeSet, len(seqs))
	for _, seq := range seqs {
		if len(seq) < 2 {
			return nil, dna.InvalidInputf("sequence too short: %v", seq)
		}
		nodes.Add(PairOf(seq))
		if rc {
			rcSeq, err := dna.ReverseComplement(seq)
			if err != nil {
				return nil, err
			}
			nodes.Add(PairOf(rcSeq))
		}
	}
	return nodes, nil
}

// Run builds the node set and returns its pairs in sorted order.
func Run(seqs []string, rc bool) ([]NodePair, error) {
	nodes, err := BuildNodes(seqs, rc)
	if err != nil {
		return nil, err
	}
	return nodes.Sorted(), nil
}

// FormatPairs renders one "(prefix, suffix)" line per pair. Every
// line, including the last, is terminated by a newline.
func FormatPairs(pairs []NodePair) string {
	var b strings.Builder
	for _, pair := range pairs {
		b.WriteString(pair.String())
		b.WriteByte('\n')
	}
	return b.String()
}
