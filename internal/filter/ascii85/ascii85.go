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

// Package ascii85 implements the ASCII85Decode stream filter.
//
// The byte encoding itself is the one implemented by encoding/ascii85
// from the standard library; this package adds the "~>" end-of-data
// marker used in PDF streams.
package ascii85

import (
	"bufio"
	"encoding/ascii85"
	"errors"
	"io"
)

// Decode returns a reader which decodes ASCII85 data read from r.
// Reading stops at the "~>" end-of-data marker; a stream ending without
// the marker is tolerated.
func Decode(r io.Reader) io.ReadCloser {
	body := &bodyReader{r: bufio.NewReader(r)}
	return &reader{r: ascii85.NewDecoder(body)}
}

type reader struct {
	r io.Reader
}

func (r *reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func (r *reader) Close() error {
	return nil
}

// bodyReader passes through the encoded bytes before the "~" which
// starts the end-of-data marker.
type bodyReader struct {
	r   *bufio.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (n int, err error) {
	if b.err != nil {
		return 0, b.err
	}
	for n < len(p) {
		c, err := b.r.ReadByte()
		if err != nil {
			b.err = err
			break
		}
		if c == '~' {
			next, err := b.r.ReadByte()
			if err == nil && next != '>' {
				b.err = errors.New("invalid end marker in ASCII85 stream")
			} else {
				b.err = io.EOF
			}
			break
		}
		p[n] = c
		n++
	}
	if n > 0 {
		return n, nil
	}
	return 0, b.err
}

// Encode returns a writer which stores data in ASCII85 form in w.
// Close flushes the encoding and writes the "~>" end-of-data marker,
// without closing w.
func Encode(w io.Writer) io.WriteCloser {
	return &writer{
		w:   w,
		enc: ascii85.NewEncoder(w),
	}
}

type writer struct {
	w   io.Writer
	enc io.WriteCloser
	err error
}

func (w *writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.enc.Write(p)
	w.err = err
	return n, err
}

func (w *writer) Close() error {
	if w.err != nil {
		return w.err
	}
	err := w.enc.Close()
	if err == nil {
		_, err = w.w.Write([]byte("~>"))
	}
	if err != nil {
		w.err = err
		return err
	}
	w.err = io.ErrClosedPipe
	return nil
}
