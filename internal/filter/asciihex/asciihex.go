// seehuhn.de/go/pdfobj - a mutable model of PDF document objects
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package asciihex implements the ASCIIHexDecode stream filter.
package asciihex

import (
	"bufio"
	"fmt"
	"io"
)

// Decode returns a reader which decodes ASCII hexadecimal data read
// from r.  Whitespace between digits is ignored, and the data may end
// with the ">" end-of-data marker.  An odd number of digits is allowed;
// the missing final digit is taken to be zero.
func Decode(r io.Reader) io.ReadCloser {
	return &reader{r: bufio.NewReader(r)}
}

type reader struct {
	r    *bufio.Reader
	err  error
	high byte
	have bool
}

func (r *reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}

	for n < len(p) {
		c, err := r.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				// missing ">" is tolerated
				err = r.finish(p, &n)
			}
			r.err = err
			return n, r.err
		}

		var digit byte
		switch {
		case c >= '0' && c <= '9':
			digit = c - '0'
		case c >= 'A' && c <= 'F':
			digit = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			digit = c - 'a' + 10
		case c == '>':
			r.err = r.finish(p, &n)
			return n, r.err
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0:
			continue
		default:
			r.err = fmt.Errorf("invalid character %q in ASCIIHex stream", c)
			return n, r.err
		}

		if !r.have {
			r.high = digit
			r.have = true
		} else {
			p[n] = r.high<<4 | digit
			n++
			r.have = false
		}
	}

	return n, nil
}

// finish emits the pending half byte, if any, and returns io.EOF.
func (r *reader) finish(p []byte, n *int) error {
	if r.have && *n < len(p) {
		p[*n] = r.high << 4
		*n++
		r.have = false
	}
	return io.EOF
}

func (r *reader) Close() error {
	return nil
}

// Encode returns a writer which stores data in ASCII hexadecimal form
// in w.  Close writes the ">" end-of-data marker without closing w.
func Encode(w io.Writer) io.WriteCloser {
	return &writer{w: w}
}

const lineWidth = 36 // bytes per output line, 72 characters

type writer struct {
	w      io.Writer
	err    error
	inLine int
}

const hexDigits = "0123456789abcdef"

func (w *writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}

	var buf []byte
	for _, c := range p {
		buf = append(buf, hexDigits[c>>4], hexDigits[c&15])
		w.inLine++
		if w.inLine >= lineWidth {
			buf = append(buf, '\n')
			w.inLine = 0
		}
	}
	_, w.err = w.w.Write(buf)
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

func (w *writer) Close() error {
	if w.err != nil {
		return w.err
	}
	_, w.err = w.w.Write([]byte(">"))
	if w.err == nil {
		w.err = io.ErrClosedPipe
		return nil
	}
	return w.err
}
