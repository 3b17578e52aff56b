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

// Package fasta reads DNA reads from FASTA files and from plain files
// with one sequence per line.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/jllpons/genocrab/dna"
	"github.com/jllpons/genocrab/utils"
)

// A Record is a labeled sequence.
type Record struct {
	Label string
	Seq   string
}

// Seqs returns the sequences of the given records, in order.
func Seqs(records []Record) []string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}
	return seqs
}

const maxLineLength = 64 * 1024 * 1024

func newScanner(r io.Reader) (*bufio.Scanner, error) {
	in, err := utils.HandleCompression(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return scanner, nil
}

func labelFromHeader(b []byte) string {
	return string(bytes.TrimSpace(bytes.TrimLeft(b, ">")))
}

// ParseRecords sequentially parses a multi-FASTA stream.
//
// Sequence lines are concatenated and converted to upper case.
// Records without sequence data are dropped, and lines before the
// first header are attributed to a record with an empty label.
func ParseRecords(r io.Reader) (records []Record, err error) {
	scanner, err := newScanner(r)
	if err != nil {
		return nil, err
	}

	var label string
	var seq []byte
	flush := func() {
		if len(seq) > 0 {
			records = append(records, Record{Label: label, Seq: string(seq)})
		}
		seq = nil
	}

	for scanner.Scan() {
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		if b[0] == '>' {
			flush()
			label = labelFromHeader(b)
			continue
		}
		dna.ToUpper(b)
		seq = append(seq, b...)
	}
	flush()

	return records, scanner.Err()
}

// ParseLines parses a stream with one sequence per line. Blank lines
// are skipped.
func ParseLines(r io.Reader) (seqs []string, err error) {
	scanner, err := newScanner(r)
	if err != nil {
		return nil, err
	}
	for scanner.Scan() {
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		dna.ToUpper(b)
		seqs = append(seqs, string(b))
	}
	return seqs, scanner.Err()
}

// ParseSingle parses a stream holding a single sequence. An optional
// header line becomes the label; all other lines are joined.
func ParseSingle(r io.Reader) (record Record, err error) {
	scanner, err := newScanner(r)
	if err != nil {
		return Record{}, err
	}
	var seq []byte
	first := true
	for scanner.Scan() {
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		if first && b[0] == '>' {
			record.Label = labelFromHeader(b)
			first = false
			continue
		}
		first = false
		dna.ToUpper(b)
		seq = append(seq, b...)
	}
	record.Seq = string(seq)
	return record, scanner.Err()
}

// ParseSequences parses either a multi-FASTA stream or a stream with
// one sequence per line, depending on whether the first non-blank line
// is a header.
func ParseSequences(r io.Reader) ([]string, error) {
	in, err := utils.HandleCompression(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(in)
	for {
		c, err := buf.ReadByte()
		if err == io.EOF {
			return nil, nil
		} else if err != nil {
			return nil, err
		}
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		if err := buf.UnreadByte(); err != nil {
			return nil, err
		}
		if c == '>' {
			records, err := ParseRecords(buf)
			return Seqs(records), err
		}
		return ParseLines(buf)
	}
}
