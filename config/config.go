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

// Package config holds the settings shared by all genocrab commands.
// They are unmarshalled from Viper, which merges command line flags,
// environment variables and an optional genocrab.yaml file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables, so that the log-path
// setting can be given as GENOCRAB_LOG_PATH.
const EnvPrefix = "GENOCRAB"

// Config is the root-level settings struct.
type Config struct {
	// k-mer or minimum overlap length
	K int `mapstructure:"k"`

	// whether to add reverse complements to De Bruijn graphs
	RC bool `mapstructure:"rc"`

	// print k-mer counts as a table instead of a single line
	Table bool `mapstructure:"table"`

	// file to write a Graphviz rendering of the graph to
	Dot string `mapstructure:"dot"`

	// file to write results to, stdout when empty or "-"
	Output string `mapstructure:"output"`

	// directory for log files; logging goes to stderr only when empty
	LogPath string `mapstructure:"log-path"`

	// log the elapsed time of each phase
	Timed bool `mapstructure:"timed"`
}

// Setup prepares v to read the given config file, or genocrab.yaml
// from the working directory or $HOME/.genocrab when file is empty,
// and to consult GENOCRAB_ environment variables. A missing default
// config file is not an error.
func Setup(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("genocrab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".genocrab"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// New returns a Config populated from the settings known to v.
func New(v *viper.Viper) (c Config, err error) {
	err = v.Unmarshal(&c)
	return
}
