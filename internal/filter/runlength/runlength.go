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

// Package runlength implements the RunLengthDecode stream filter.
package runlength

import (
	"bufio"
	"io"
)

const eod = 128

// Decode returns a reader which decodes run-length encoded data read
// from r.
func Decode(r io.Reader) io.ReadCloser {
	return &reader{r: bufio.NewReader(r)}
}

type reader struct {
	r *bufio.Reader

	err     error
	literal bool
	count   int
	value   byte
}

func (r *reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}

	for n < len(p) {
		if r.count == 0 {
			length, err := r.r.ReadByte()
			if err == io.EOF {
				// missing end-of-data marker is tolerated
				r.err = io.EOF
				break
			} else if err != nil {
				r.err = err
				break
			}

			switch {
			case length < eod:
				r.literal = true
				r.count = int(length) + 1
			case length > eod:
				r.literal = false
				r.count = 257 - int(length)
				r.value, err = r.r.ReadByte()
				if err != nil {
					if err == io.EOF {
						err = io.ErrUnexpectedEOF
					}
					r.err = err
					goto done
				}
			default: // length == eod
				r.err = io.EOF
				goto done
			}
		}

		if r.literal {
			m, err := r.r.Read(p[n : n+min(r.count, len(p)-n)])
			n += m
			r.count -= m
			if err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				r.err = err
				break
			}
		} else {
			for r.count > 0 && n < len(p) {
				p[n] = r.value
				n++
				r.count--
			}
		}
	}

done:
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

func (r *reader) Close() error {
	return nil
}

// Encode returns a writer which stores data in run-length encoded form
// in w.  Close writes the end-of-data marker without closing w.
func Encode(w io.Writer) io.WriteCloser {
	return &writer{w: w}
}

type writer struct {
	w   io.Writer
	buf []byte // pending input bytes, at most maxChunk
	err error
}

const maxChunk = 128

func (w *writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}

	for _, c := range p {
		w.buf = append(w.buf, c)
		if len(w.buf) >= maxChunk {
			w.flushChunk()
			if w.err != nil {
				return n, w.err
			}
		}
		n++
	}
	return n, nil
}

// flushChunk encodes the buffered bytes.  The buffer is emitted as a
// sequence of runs and literal chunks; a run pays off once it is three
// bytes long.
func (w *writer) flushChunk() {
	buf := w.buf
	w.buf = w.buf[:0]

	i := 0
	for i < len(buf) {
		// find the end of the run starting at i
		j := i + 1
		for j < len(buf) && buf[j] == buf[i] {
			j++
		}
		if j-i >= 3 {
			w.emitRun(buf[i], j-i)
			i = j
			continue
		}

		// find the start of the next run of three or more
		k := j
		for k < len(buf) {
			if k+2 < len(buf) && buf[k] == buf[k+1] && buf[k] == buf[k+2] {
				break
			}
			k++
		}
		w.emitLiteral(buf[i:k])
		i = k
	}
}

func (w *writer) emitRun(value byte, count int) {
	if w.err != nil {
		return
	}
	for count > 0 {
		m := min(count, maxChunk)
		if m < 2 {
			w.emitLiteral([]byte{value})
			return
		}
		_, w.err = w.w.Write([]byte{byte(257 - m), value})
		if w.err != nil {
			return
		}
		count -= m
	}
}

func (w *writer) emitLiteral(data []byte) {
	for len(data) > 0 && w.err == nil {
		m := min(len(data), maxChunk)
		_, w.err = w.w.Write([]byte{byte(m - 1)})
		if w.err != nil {
			return
		}
		_, w.err = w.w.Write(data[:m])
		data = data[m:]
	}
}

func (w *writer) Close() error {
	if w.err != nil {
		return w.err
	}
	w.flushChunk()
	if w.err != nil {
		return w.err
	}
	_, w.err = w.w.Write([]byte{eod})
	if w.err != nil {
		return w.err
	}
	w.err = io.ErrClosedPipe
	return nil
}
