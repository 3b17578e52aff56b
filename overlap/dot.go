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

package overlap

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

const dotGraphName = "overlap"

// Dot converts the graph into a Graphviz graph. Every read in reads
// becomes a node, including reads without edges.
func (graph Graph) Dot(reads []Read) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	for _, read := range reads {
		attrs := map[string]string{"tooltip": strconv.Quote(read.Seq)}
		if err := g.AddNode(dotGraphName, strconv.Quote(read.Label), attrs); err != nil {
			return nil, err
		}
	}
	for _, edge := range graph {
		if err := g.AddEdge(strconv.Quote(edge.From), strconv.Quote(edge.To), true, nil); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// WriteDot writes the graph in DOT format.
func (graph Graph) WriteDot(w io.Writer, reads []Read) error {
	g, err := graph.Dot(reads)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}
