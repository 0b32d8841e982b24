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

package pdfobj

import (
	"compress/lzw"
	"compress/zlib"
	"io"

	"seehuhn.de/go/pdfobj/internal/filter/ascii85"
	"seehuhn.de/go/pdfobj/internal/filter/asciihex"
	"seehuhn.de/go/pdfobj/internal/filter/runlength"
)

// The standard stream filters defined by the PDF specification.
const (
	FilterASCIIHex  Name = "ASCIIHexDecode"
	FilterASCII85   Name = "ASCII85Decode"
	FilterLZW       Name = "LZWDecode"
	FilterFlate     Name = "FlateDecode"
	FilterRunLength Name = "RunLengthDecode"
	FilterCCITTFax  Name = "CCITTFaxDecode"
	FilterJBIG2     Name = "JBIG2Decode"
	FilterDCT       Name = "DCTDecode"
	FilterJPX       Name = "JPXDecode"
	FilterCrypt     Name = "Crypt"
)

// A Codec encodes and decodes stream data for one filter.
//
// The WriteCloser returned by Encode finalises the encoded output on
// Close without closing the underlying writer, so that codecs can be
// chained.
type Codec interface {
	Encode(w io.Writer) io.WriteCloser
	Decode(r io.Reader) io.ReadCloser
}

// LookupCodec returns the codec for the given filter name.  For the
// image compression filters and the Crypt filter, which this library
// treats as external, an [UnsupportedFilterError] is returned.
func LookupCodec(name Name) (Codec, error) {
	if c, ok := codecs[name]; ok {
		return c, nil
	}
	return nil, &UnsupportedFilterError{Filter: name}
}

var codecs = map[Name]Codec{
	FilterASCIIHex:  asciiHexCodec{},
	FilterASCII85:   ascii85Codec{},
	FilterLZW:       lzwCodec{},
	FilterFlate:     flateCodec{},
	FilterRunLength: runLengthCodec{},
}

type asciiHexCodec struct{}

func (asciiHexCodec) Encode(w io.Writer) io.WriteCloser { return asciihex.Encode(w) }
func (asciiHexCodec) Decode(r io.Reader) io.ReadCloser  { return asciihex.Decode(r) }

type ascii85Codec struct{}

func (ascii85Codec) Encode(w io.Writer) io.WriteCloser { return ascii85.Encode(w) }
func (ascii85Codec) Decode(r io.Reader) io.ReadCloser  { return ascii85.Decode(r) }

type runLengthCodec struct{}

func (runLengthCodec) Encode(w io.Writer) io.WriteCloser { return runlength.Encode(w) }
func (runLengthCodec) Decode(r io.Reader) io.ReadCloser  { return runlength.Decode(r) }

type flateCodec struct{}

func (flateCodec) Encode(w io.Writer) io.WriteCloser {
	return zlib.NewWriter(w)
}

func (flateCodec) Decode(r io.Reader) io.ReadCloser {
	return &lazyReader{open: func() (io.ReadCloser, error) {
		return zlib.NewReader(r)
	}}
}

// lzwCodec uses compress/lzw, which does not implement the early
// code-width change of the default PDF variant.  Streams written by this
// library therefore declare EarlyChange 0 in their DecodeParms.
type lzwCodec struct{}

func (lzwCodec) Encode(w io.Writer) io.WriteCloser {
	return lzw.NewWriter(w, lzw.MSB, 8)
}

func (lzwCodec) Decode(r io.Reader) io.ReadCloser {
	return lzw.NewReader(r, lzw.MSB, 8)
}

// lazyReader defers the construction of a reader until the first call
// to Read, for decoders which consume header bytes on creation.
type lazyReader struct {
	open func() (io.ReadCloser, error)
	r    io.ReadCloser
	err  error
}

func (l *lazyReader) Read(p []byte) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if l.r == nil {
		l.r, l.err = l.open()
		if l.err != nil {
			return 0, l.err
		}
	}
	return l.r.Read(p)
}

func (l *lazyReader) Close() error {
	if l.r == nil {
		return nil
	}
	return l.r.Close()
}
