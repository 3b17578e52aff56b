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

// Package cmd is the genocrab command line interface.
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jllpons/genocrab/config"
	"github.com/jllpons/genocrab/utils"
)

// app carries the settings of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
}

// NewRootCmd builds the genocrab command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           utils.ProgramName,
		Short:         "Assemble short DNA reads",
		Long:          "genocrab assembles short DNA reads using overlap graphs, De Bruijn graphs and greedy superstrings.",
		Version:       utils.ProgramVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./genocrab.yaml or $HOME/.genocrab/genocrab.yaml)")
	flags.String("log-path", "", "write log files to the specified directory")
	flags.Bool("timed", false, "log the elapsed time of each phase")
	flags.StringP("output", "o", "-", "write results to the specified file")

	root.AddCommand(
		a.kmerCmd(),
		a.overlapCmd(),
		a.debruijnCmd(),
		a.perfectAssemblyCmd(),
		a.superstringCmd(),
		a.assemblyQualityCmd(),
	)
	return root
}

// load merges flags, environment and config file into a.cfg.
func (a *app) load(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := config.Setup(a.v, a.configFile); err != nil {
		return err
	}
	cfg, err := config.New(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.LogPath != "" {
		if err := setLogOutput(cfg.LogPath); err != nil {
			return err
		}
	}
	if cfg.Timed {
		log.Println(ProgramMessage)
	}
	return nil
}

// Execute runs the command tree on os.Args. It is called by
// main.main and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatal(describe(err))
	}
}
