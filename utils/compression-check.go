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

package utils

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func hasMagic(buf *bufio.Reader, magic []byte) (bool, error) {
	b, err := buf.Peek(len(magic))
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(b, magic), nil
}

// IsGzip checks whether the buffered input starts with the gzip magic
// bytes. It only peeks, so nothing is consumed from buf.
func IsGzip(buf *bufio.Reader) (bool, error) {
	return hasMagic(buf, gzipMagic)
}

// IsZstd checks whether the buffered input starts with a zstd frame.
func IsZstd(buf *bufio.Reader) (bool, error) {
	return hasMagic(buf, zstdMagic)
}

// HandleCompression checks if the given reader produces a gzip or
// zstd stream by looking at the initial bytes. It then either returns
// a decompressing reader, or returns the given reader unchanged.
func HandleCompression(buf *bufio.Reader) (io.Reader, error) {
	if ok, err := IsGzip(buf); err != nil {
		return nil, err
	} else if ok {
		return gzip.NewReader(buf)
	}
	if ok, err := IsZstd(buf); err != nil {
		return nil, err
	} else if ok {
		d, err := zstd.NewReader(buf, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	return buf, nil
}
