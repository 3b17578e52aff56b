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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/jllpons/genocrab/dna"
	"github.com/jllpons/genocrab/internal"
	"github.com/jllpons/genocrab/utils"
)

// ProgramMessage is the first line written to every log file.
var ProgramMessage string

func init() {
	ProgramMessage = fmt.Sprint(
		"\n", utils.ProgramName, " version ", utils.ProgramVersion,
		" compiled with ", runtime.Version(),
		" - see ", utils.ProgramURL, " for more information.\n",
	)
}

var errNoInput = errors.New("no input provided")

// describe prefixes categorized errors with their category.
func describe(err error) string {
	if kind := dna.Category(err); kind != nil {
		return fmt.Sprintf("%v: %v", kind, err)
	}
	return err.Error()
}

func createLogFilename(runID string) string {
	t := time.Now()
	zone, _ := t.Zone()
	return fmt.Sprintf("logs/genocrab/genocrab-%d-%02d-%02d-%02d-%02d-%02d-%09d-%v-%v.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone, runID)
}

// setLogOutput duplicates stderr into a fresh log file below path.
func setLogOutput(path string) (err error) {
	runID := uuid.New().String()
	fullPath, err := internal.FullPathname(filepath.Join(path, createLogFilename(runID)))
	if err != nil {
		return err
	}
	f, err := internal.CreateOutput(fullPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(f, ProgramMessage)

	file, ok := f.(*os.File)
	if !ok {
		return fmt.Errorf("log file %v is not a regular file", fullPath)
	}
	orgStderr, err := unix.Dup(2)
	if err != nil {
		return err
	}
	ferr := os.NewFile(uintptr(orgStderr), "/dev/stderr")
	if err := unix.Dup2(int(file.Fd()), 2); err != nil {
		return err
	}

	log.SetOutput(io.MultiWriter(file, ferr))
	log.Println("Created log file at", fullPath)
	log.Println("Run id:", runID)
	log.Println("Command line:", os.Args)
	return nil
}

func timedRun(timed bool, msg string, f func() error) error {
	if timed {
		log.Println(msg)
		start := time.Now()
		defer func() {
			log.Println("Elapsed time: ", time.Since(start))
		}()
	}
	return f()
}

// openInput opens the first positional argument, or the command's
// input stream when there is none or it is "-". Reading from an
// interactive terminal is refused.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	if !internal.IsStandardStream(name) {
		return internal.OpenInput(name)
	}
	in := cmd.InOrStdin()
	if in == os.Stdin && internal.StdinIsTerminal() {
		return nil, errNoInput
	}
	return io.NopCloser(in), nil
}

// readInput opens the input and hands it to parse.
func readInput(cmd *cobra.Command, args []string, parse func(io.Reader) error) (err error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer internal.Close(in, &err)
	return parse(in)
}

// writeOutput writes result to the configured output file, or to the
// command's output stream.
func writeOutput(cmd *cobra.Command, output, result string) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if !internal.IsStandardStream(output) {
		f, ferr := internal.CreateOutput(output)
		if ferr != nil {
			return ferr
		}
		defer internal.Close(f, &err)
		w = f
	}
	_, err = io.WriteString(w, result)
	return err
}

// writeDot creates the named file and lets write fill it.
func writeDot(name string, write func(io.Writer) error) (err error) {
	f, err := internal.CreateOutput(name)
	if err != nil {
		return err
	}
	defer internal.Close(f, &err)
	log.Println("Writing graph to", name)
	return write(f)
}
