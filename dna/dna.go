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

// Package dna holds the nucleotide alphabet shared by the assembly
// packages, together with the error categories they report.
package dna

// Bases is the canonical alphabet in lexicographic order.
const Bases = "ACGT"

var complementTable = map[byte]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
	'N': 'N',
}

// Complement returns the Watson-Crick partner of base.
// ok is false if base is not one of A, C, G, T or N.
func Complement(base byte) (c byte, ok bool) {
	c, ok = complementTable[base]
	return
}

// IsBase reports whether b is one of A, C, G, T or N.
func IsBase(b byte) bool {
	_, ok := complementTable[b]
	return ok
}

// IsCanonical reports whether b is one of A, C, G or T.
func IsCanonical(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	default:
		return false
	}
}

// ReverseComplement reads seq backwards and substitutes each base
// with its complement. N is its own complement; any other character
// is an input-validation error.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		base := seq[n-1-i]
		c, ok := complementTable[base]
		if !ok {
			return "", InvalidInputf("invalid character in sequence: %c", base)
		}
		result[i] = c
	}
	return string(result), nil
}

// Validate checks that seq only contains A, C, G, T or N.
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		if !IsBase(seq[i]) {
			return InvalidInputf("invalid character in sequence: %c", seq[i])
		}
	}
	return nil
}

// ToUpper converts lower-case bases to upper case and leaves
// everything else untouched.
func ToUpper(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}
