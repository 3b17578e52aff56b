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

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jllpons/genocrab/fasta"
	"github.com/jllpons/genocrab/overlap"
)

func (a *app) overlapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlap [input]",
		Short: "Build the overlap graph of a set of reads",
		Long: `Build the overlap graph of the reads in a multi-FASTA file.

An edge "s t" is printed when the last k bases of read s equal the
first k bases of read t.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []fasta.Record
			err := readInput(cmd, args, func(r io.Reader) (err error) {
				records, err = fasta.ParseRecords(r)
				return
			})
			if err != nil {
				return err
			}
			reads := make([]overlap.Read, len(records))
			for i, r := range records {
				reads[i] = overlap.Read{Label: r.Label, Seq: r.Seq}
			}
			var graph overlap.Graph
			err = timedRun(a.cfg.Timed, "Building overlap graph.", func() (err error) {
				graph, err = overlap.BuildGraph(reads, a.cfg.K)
				return
			})
			if err != nil {
				return err
			}
			if a.cfg.Dot != "" {
				if err := writeDot(a.cfg.Dot, func(w io.Writer) error {
					return graph.WriteDot(w, reads)
				}); err != nil {
					return err
				}
			}
			return writeOutput(cmd, a.cfg.Output, graph.Format()+"\n")
		},
	}
	cmd.Flags().IntP("k", "k", 0, "minimum overlap length")
	cmd.Flags().String("dot", "", "also write the graph in DOT format to the specified file")
	return cmd
}
