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
	"github.com/jllpons/genocrab/kmer"
)

func (a *app) kmerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmer [input]",
		Short: "Count the k-mers of a sequence",
		Long: `Count every k-mer of a single FASTA sequence.

The counts are printed on one line, in lexicographic order of the
k-mers, or as a table of the k-mers that occur with --table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var record fasta.Record
			err := readInput(cmd, args, func(r io.Reader) (err error) {
				record, err = fasta.ParseSingle(r)
				return
			})
			if err != nil {
				return err
			}
			var composition kmer.Composition
			err = timedRun(a.cfg.Timed, "Counting k-mers.", func() (err error) {
				composition, err = kmer.Count(record.Seq, a.cfg.K)
				return
			})
			if err != nil {
				return err
			}
			if a.cfg.Table {
				return writeOutput(cmd, a.cfg.Output, composition.FormatTable())
			}
			return writeOutput(cmd, a.cfg.Output, composition.Format()+"\n")
		},
	}
	cmd.Flags().IntP("k", "k", 0, "k-mer length")
	cmd.Flags().Bool("table", false, "print a table of the k-mers that occur")
	return cmd
}
