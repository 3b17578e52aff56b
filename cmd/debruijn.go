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

	"github.com/jllpons/genocrab/debruijn"
	"github.com/jllpons/genocrab/eulerian"
	"github.com/jllpons/genocrab/fasta"
)

func readLines(cmd *cobra.Command, args []string) (seqs []string, err error) {
	err = readInput(cmd, args, func(r io.Reader) (err error) {
		seqs, err = fasta.ParseLines(r)
		return
	})
	return
}

func (a *app) debruijnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debruijn [input]",
		Short: "Build the De Bruijn graph of a set of reads",
		Long: `Build the De Bruijn graph of reads given one per line.

Every read contributes the edge (prefix, suffix), where prefix and
suffix are the read without its last and first base. With --rc the
reverse complement of every read is added as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := readLines(cmd, args)
			if err != nil {
				return err
			}
			var nodes debruijn.NodeSet
			err = timedRun(a.cfg.Timed, "Building De Bruijn graph.", func() (err error) {
				nodes, err = debruijn.BuildNodes(seqs, a.cfg.RC)
				return
			})
			if err != nil {
				return err
			}
			if a.cfg.Dot != "" {
				if err := writeDot(a.cfg.Dot, nodes.WriteDot); err != nil {
					return err
				}
			}
			return writeOutput(cmd, a.cfg.Output, debruijn.FormatPairs(nodes.Sorted()))
		},
	}
	cmd.Flags().Bool("rc", false, "add the reverse complement of every read")
	cmd.Flags().String("dot", "", "also write the graph in DOT format to the specified file")
	return cmd
}

func (a *app) perfectAssemblyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perfect-assembly [input]",
		Short: "Reconstruct a circular genome from perfect-coverage reads",
		Long: `Reconstruct a circular genome from error-free reads given one per
line, by walking the Eulerian circuit of their De Bruijn graph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := readLines(cmd, args)
			if err != nil {
				return err
			}
			var genome string
			err = timedRun(a.cfg.Timed, "Reconstructing circular genome.", func() (err error) {
				genome, err = eulerian.Reconstruct(seqs)
				return
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, a.cfg.Output, genome+"\n")
		},
	}
}
