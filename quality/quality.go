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

// Package quality reports contiguity statistics for a set of contigs.
package quality

import (
	"fmt"
	"sort"
)

// Stats holds the N50 and N75 contig lengths.
type Stats struct {
	N50, N75 int
}

// NStats sorts the contigs by length and accumulates their lengths
// from the longest down. N50 is the length of the contig at which the
// running total first reaches half of the total length, N75 where it
// reaches three quarters. An empty set yields zero for both.
func NStats(contigs []string) Stats {
	lengths := make([]int, len(contigs))
	total := 0
	for i, c := range contigs {
		lengths[i] = len(c)
		total += len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	half, threeQuarters := total/2, total*3/4
	var stats Stats
	current := 0
	for _, l := range lengths {
		current += l
		if stats.N50 == 0 && current >= half {
			stats.N50 = l
		}
		if stats.N75 == 0 && current >= threeQuarters {
			stats.N75 = l
		}
	}
	return stats
}

func (s Stats) String() string {
	return fmt.Sprintf("%d %d", s.N50, s.N75)
}
