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
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestLookupCodec(t *testing.T) {
	supported := []Name{
		FilterASCIIHex,
		FilterASCII85,
		FilterLZW,
		FilterFlate,
		FilterRunLength,
	}
	for _, name := range supported {
		codec, err := LookupCodec(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		} else if codec == nil {
			t.Errorf("%s: no codec", name)
		}
	}

	external := []Name{
		FilterCCITTFax,
		FilterJBIG2,
		FilterDCT,
		FilterJPX,
		FilterCrypt,
		Name("NoSuchFilter"),
	}
	for _, name := range external {
		_, err := LookupCodec(name)
		var filterErr *UnsupportedFilterError
		if !errors.As(err, &filterErr) {
			t.Errorf("%s: got %v, want UnsupportedFilterError", name, err)
		} else if filterErr.Filter != name {
			t.Errorf("%s: wrong filter name %q", name, filterErr.Filter)
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("x"),
		[]byte("some ordinary text, long enough to span several lines " +
			"of encoded output when a line-based encoding is used"),
		bytes.Repeat([]byte{0}, 1000),
		{0x00, 0xff, 0x80, 0x7f},
	}
	for name := range codecs {
		codec, err := LookupCodec(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, in := range inputs {
			buf := &bytes.Buffer{}
			w := codec.Encode(buf)
			_, err := w.Write(in)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			err = w.Close()
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}

			out, err := io.ReadAll(codec.Decode(buf))
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if len(out) == 0 {
				out = nil
			}
			var want []byte
			if len(in) > 0 {
				want = in
			}
			if !bytes.Equal(out, want) {
				t.Errorf("%s: round trip changed %d bytes to %d bytes",
					name, len(in), len(out))
			}
		}
	}
}
