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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jllpons/genocrab/dna"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

const grphInput = `>Rosalind_0498
AAATAAA
>Rosalind_2391
AAATTTT
>Rosalind_2323
TTTTCCC
>Rosalind_0442
AAATCCC
>Rosalind_5013
GGGTGGG
`

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			"kmer",
			">seq\nACGT\n",
			[]string{"kmer", "-k", "2"},
			"0 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0\n",
		},
		{
			"kmer table",
			">seq\nACGT\n",
			[]string{"kmer", "-k", "2", "--table"},
			"AC\t1\nCG\t1\nGT\t1\n",
		},
		{
			"overlap",
			grphInput,
			[]string{"overlap", "-k", "3"},
			"Rosalind_0498 Rosalind_2391\nRosalind_0498 Rosalind_0442\nRosalind_2391 Rosalind_2323\n",
		},
		{
			"debruijn",
			"TGAT\nCATG\nTCAT\nATGC\nCATC\nCATC\n",
			[]string{"debruijn", "--rc", "-"},
			"(ATC, TCA)\n(ATG, TGA)\n(ATG, TGC)\n(CAT, ATC)\n(CAT, ATG)\n(GAT, ATG)\n(GCA, CAT)\n(TCA, CAT)\n(TGA, GAT)\n",
		},
		{
			"perfect assembly",
			"ATTAC\nTACAG\nGATTA\nACAGA\nCAGAT\nTTACA\nAGATT\n",
			[]string{"perfect-assembly"},
			"ACAGATT\n",
		},
		{
			"superstring",
			">r1\nATTAGACCTG\n>r2\nCCTGCCGGAA\n>r3\nAGACCTGCCG\n>r4\nGCCGGAATAC\n",
			[]string{"superstring"},
			"ATTAGACCTGCCGGAATAC\n",
		},
		{
			"assembly quality",
			"ATGCG\nGCATG\nCATGC\nAGGCA\nGGCAT\n",
			[]string{"assembly-quality"},
			"5 5\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("%v produced\n%q\nwant\n%q", tt.args, got, tt.want)
			}
		})
	}
}

func TestInputFile(t *testing.T) {
	input := writeFile(t, "reads.fa", grphInput)
	got, err := run(t, "", "overlap", "-k", "3", input)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(got, "\n"); lines != 3 {
		t.Errorf("expected 3 edges, got %q", got)
	}
}

func TestOutputAndDotFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "edges.txt")
	dot := filepath.Join(dir, "graph.dot")

	stdout, err := run(t, grphInput, "overlap", "-k", "3", "-o", output, "--dot", dot)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" {
		t.Errorf("expected nothing on stdout, got %q", stdout)
	}
	edges, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(edges), "Rosalind_0498 Rosalind_2391\n") {
		t.Errorf("unexpected output file content %q", edges)
	}
	graph, err := os.ReadFile(dot)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(graph), "->"); n != 3 {
		t.Errorf("expected 3 edges in DOT output, got %d", n)
	}
}

func TestConfigFile(t *testing.T) {
	settings := writeFile(t, "genocrab.yaml", "k: 3\n")
	got, err := run(t, grphInput, "overlap", "--config", settings)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "Rosalind_0498 Rosalind_2391\n") {
		t.Errorf("k from config file not applied: %q", got)
	}

	got, err = run(t, grphInput, "overlap", "--config", settings, "-k", "4")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Rosalind_2391 Rosalind_2323\n" {
		t.Errorf("flag should override config file, got %q", got)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		kind  error
		msg   string
	}{
		{"single read", ">only\nACGT\n", []string{"overlap", "-k", "2"}, dna.ErrInvalidInput, "invalid input: insufficient input"},
		{"missing k", ">seq\nACGT\n", []string{"kmer"}, dna.ErrInvalidInput, "invalid input: k-mer length"},
		{"not eulerian", "ATGCG\nGCATG\nCATGC\nAGGCA\nGGCAT\n", []string{"perfect-assembly"}, dna.ErrIncomplete, "input cannot be assembled: not Eulerian"},
		{"empty superstring input", "", []string{"superstring"}, dna.ErrInvalidInput, "invalid input: no sequences provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			if msg := describe(err); !strings.HasPrefix(msg, tt.msg) {
				t.Errorf("got %q, want prefix %q", msg, tt.msg)
			}
		})
	}
}

func TestMissingInputFile(t *testing.T) {
	_, err := run(t, "", "superstring", filepath.Join(t.TempDir(), "missing.fa"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
	if dna.Category(err) != nil {
		t.Errorf("file errors are not categorized, got %v", dna.Category(err))
	}
}
