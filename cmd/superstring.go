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
	"github.com/jllpons/genocrab/quality"
	"github.com/jllpons/genocrab/superstring"
)

func (a *app) superstringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "superstring [input]",
		Short: "Greedily assemble a short superstring of a set of reads",
		Long: `Greedily assemble a short common superstring of the reads in a
multi-FASTA file, by following maximal overlaps from every read.`,
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
			var result string
			err = timedRun(a.cfg.Timed, "Assembling superstring.", func() (err error) {
				result, err = superstring.Assemble(fasta.Seqs(records))
				return
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, a.cfg.Output, result+"\n")
		},
	}
}

func (a *app) assemblyQualityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assembly-quality [input]",
		Short: "Report the N50 and N75 of a set of contigs",
		Long: `Report the N50 and N75 of a set of contigs, given either as a
multi-FASTA file or one per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var contigs []string
			err := readInput(cmd, args, func(r io.Reader) (err error) {
				contigs, err = fasta.ParseSequences(r)
				return
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, a.cfg.Output, quality.NStats(contigs).String()+"\n")
		},
	}
}
