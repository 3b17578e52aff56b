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

package debruijn

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

const dotGraphName = "debruijn"

// Dot converts the node set into a Graphviz graph. Nodes are the
// (L-1)-mers, and each edge is labeled with the read it stands for.
func (set NodeSet) Dot() (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	for _, node := range set.Nodes() {
		if err := g.AddNode(dotGraphName, strconv.Quote(node), nil); err != nil {
			return nil, err
		}
	}
	for _, pair := range set.Sorted() {
		attrs := map[string]string{"label": strconv.Quote(pair.Read())}
		if err := g.AddEdge(strconv.Quote(pair.Prefix), strconv.Quote(pair.Suffix), true, attrs); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// WriteDot writes the node set in DOT format.
func (set NodeSet) WriteDot(w io.Writer) error {
	g, err := set.Dot()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}
