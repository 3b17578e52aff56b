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

package eulerian

// A forest of union-find trees over node indices, used to count the
// weakly connected components of a De Bruijn graph.
type forest []int

func newForest(size int) forest {
	f := make(forest, size)
	for i := range f {
		f[i] = i
	}
	return f
}

func (f forest) find(node int) int {
	root := node
	for root != f[root] {
		root = f[root]
	}
	for node != root {
		next := f[node]
		f[node] = root
		node = next
	}
	return root
}

func (f forest) join(node1, node2 int) {
	root1 := f.find(node1)
	root2 := f.find(node2)
	if root1 == root2 {
		return
	}
	f[root1] = root2
}

func (f forest) components() (n int) {
	for i := range f {
		if f.find(i) == i {
			n++
		}
	}
	return
}
