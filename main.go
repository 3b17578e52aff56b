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

// genocrab is a small toolkit for assembling short DNA reads.
//
// It builds overlap graphs and De Bruijn graphs from reads, reconstructs
// circular genomes from perfect-coverage reads, assembles greedy
// superstrings, counts k-mers and reports N50/N75 of contigs. Run
// "genocrab help" for the list of commands.
package main

import "github.com/jllpons/genocrab/cmd"

func main() {
	cmd.Execute()
}
