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

package ascii85

import (
	"bytes"
	"io"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"~>", ""},
		{"87cUR~>", "Hell"},
		{"z~>", "\x00\x00\x00\x00"},
		{"87cUR\n87cUR~>", "HellHell"},
	}
	for _, c := range cases {
		got, err := io.ReadAll(Decode(bytes.NewReader([]byte(c.in))))
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.in, err)
			continue
		}
		if string(got) != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeBadMarker(t *testing.T) {
	_, err := io.ReadAll(Decode(bytes.NewReader([]byte("87cUR~x"))))
	if err == nil {
		t.Error("invalid end marker not detected")
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0},
		{0, 0, 0, 0},
		[]byte("easy"),
		[]byte("Hello, World!"),
		bytes.Repeat([]byte{1, 2, 3}, 1000),
	}
	for i, data := range cases {
		buf := &bytes.Buffer{}
		enc := Encode(buf)
		_, err := enc.Write(data)
		if err != nil {
			t.Fatalf("case %d: encode write: %v", i, err)
		}
		err = enc.Close()
		if err != nil {
			t.Fatalf("case %d: encode close: %v", i, err)
		}

		out, err := io.ReadAll(Decode(bytes.NewReader(buf.Bytes())))
		if err != nil {
			t.Fatalf("case %d: decode: %v", i, err)
		}
		if !bytes.Equal(data, out) {
			t.Errorf("case %d: round trip failed", i)
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("Hello, World!"))
	f.Add([]byte{0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		buf := &bytes.Buffer{}
		enc := Encode(buf)
		_, err := enc.Write(data)
		if err != nil {
			t.Fatal(err)
		}
		err = enc.Close()
		if err != nil {
			t.Fatal(err)
		}

		out, err := io.ReadAll(Decode(bytes.NewReader(buf.Bytes())))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, out) {
			t.Error("round trip failed")
		}
	})
}
