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
	"testing"
	"time"
)

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"Größenwahn",
		"€ 3.50",
		"日本語",
		"mixed ascii and ελληνικά",
	}
	for _, s := range cases {
		enc := TextString(s)
		if got := enc.AsTextString(); got != s {
			t.Errorf("%q: got %q", s, got)
		}
	}
}

func TestTextStringEncoding(t *testing.T) {
	// strings expressible in PDFDocEncoding use the single-byte form
	enc := TextString("façade")
	if isUTF16(enc) {
		t.Error("unexpected UTF-16 encoding")
	}
	if len(enc) != 6 {
		t.Errorf("wrong length %d", len(enc))
	}

	// the euro sign maps to the PDFDocEncoding code 0xA0
	enc = TextString("€")
	if !bytes.Equal(enc, []byte{0xA0}) {
		t.Errorf("got % 02x", []byte(enc))
	}

	// characters outside PDFDocEncoding switch to UTF-16BE with BOM
	enc = TextString("日")
	if !isUTF16(enc) {
		t.Error("missing UTF-16 byte order mark")
	}
}

func TestAsTextStringRaw(t *testing.T) {
	// strings without BOM decode as PDFDocEncoding
	x := String{0x80, 'a'}
	if got := x.AsTextString(); got != "•a" {
		t.Errorf("got %q", got)
	}

	// unused code points decode to the replacement character
	x = String{0x7F}
	if got := x.AsTextString(); got != "�" {
		t.Errorf("got %q", got)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("", -5*60*60)
	in := time.Date(2010, 2, 3, 4, 5, 6, 0, loc)

	enc := Date(in)
	if string(enc) != "D:20100203040506-05'00" {
		t.Errorf("got %q", enc)
	}

	out, err := enc.AsDate()
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Errorf("got %v, want %v", out, in)
	}
}

func TestAsDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"D:20060102150405-07'00", time.Date(2006, 1, 2, 15, 4, 5, 0,
			time.FixedZone("", -7*60*60))},
		{"D:20060102150405Z", time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"D:20060102", time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"D:2006", time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"D:", time.Time{}},
	}
	for _, c := range cases {
		got, err := String(c.in).AsDate()
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}

	_, err := String("not a date").AsDate()
	if err == nil {
		t.Error("invalid date parsed without error")
	}
}
