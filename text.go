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
	"errors"
	"strings"
	"time"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
)

// TextString creates a String object using the "text string" encoding,
// i.e. using either PDFDocEncoding or UTF-16BE with a byte order mark.
func TextString(s string) String {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := pdfDocEncode(r)
		if !ok {
			enc, err := utf16TextEncoding.NewEncoder().Bytes([]byte(s))
			if err != nil {
				// unpaired surrogates only; fall back to the
				// replacement character form
				enc, _ = utf16TextEncoding.NewEncoder().Bytes(
					[]byte(strings.ToValidUTF8(s, "�")))
			}
			return String(enc)
		}
		buf = append(buf, c)
	}
	return String(buf)
}

// AsTextString interprets x as a PDF "text string" and returns the
// corresponding utf-8 encoded string.
func (x String) AsTextString() string {
	if isUTF16(x) {
		dec, err := utf16TextEncoding.NewDecoder().Bytes(x)
		if err == nil {
			return string(dec)
		}
	}
	return pdfDocDecode(x)
}

var utf16TextEncoding = xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM)

func isUTF16(x String) bool {
	return len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// AsDate converts a PDF date string to a time.Time value.
// If the string does not have the correct format, an error is returned.
func (x String) AsDate() (time.Time, error) {
	s := x.AsTextString()
	if s == "D:" {
		return time.Time{}, nil
	}
	s = strings.ReplaceAll(s, "'", "")

	formats := []string{
		"D:20060102150405-0700",
		"D:20060102150405-07",
		"D:20060102150405Z0000",
		"D:20060102150405Z00",
		"D:20060102150405Z",
		"D:20060102150405",
		"D:200601021504",
		"D:2006010215",
		"D:20060102",
		"D:200601",
		"D:2006",
		time.ANSIC,
	}
	for _, format := range formats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNoDate
}

var errNoDate = errors.New("not a valid PDF date string")

// pdfDocDiff lists the code points where PDFDocEncoding differs from
// Latin-1.
var pdfDocDiff = map[byte]rune{
	0x18: '˘', // breve
	0x19: 'ˇ', // caron
	0x1A: 'ˆ', // circumflex accent
	0x1B: '˙', // dot above
	0x1C: '˝', // double acute accent
	0x1D: '˛', // ogonek
	0x1E: '˚', // ring above
	0x1F: '˜', // small tilde
	0x80: '•', // bullet
	0x81: '†', // dagger
	0x82: '‡', // double dagger
	0x83: '…', // horizontal ellipsis
	0x84: '—', // em dash
	0x85: '–', // en dash
	0x86: 'ƒ', // latin small letter f with hook
	0x87: '⁄', // fraction slash
	0x88: '‹', // single left-pointing angle quotation mark
	0x89: '›', // single right-pointing angle quotation mark
	0x8A: '−', // minus sign
	0x8B: '‰', // per mille sign
	0x8C: '„', // double low-9 quotation mark
	0x8D: '“', // left double quotation mark
	0x8E: '”', // right double quotation mark
	0x8F: '‘', // left single quotation mark
	0x90: '’', // right single quotation mark
	0x91: '‚', // single low-9 quotation mark
	0x92: '™', // trade mark sign
	0x93: 'ﬁ', // latin small ligature fi
	0x94: 'ﬂ', // latin small ligature fl
	0x95: 'Ł', // latin capital letter l with stroke
	0x96: 'Œ', // latin capital ligature oe
	0x97: 'Š', // latin capital letter s with caron
	0x98: 'Ÿ', // latin capital letter y with diaeresis
	0x99: 'Ž', // latin capital letter z with caron
	0x9A: 'ı', // latin small letter dotless i
	0x9B: 'ł', // latin small letter l with stroke
	0x9C: 'œ', // latin small ligature oe
	0x9D: 'š', // latin small letter s with caron
	0x9E: 'ž', // latin small letter z with caron
	0xA0: '€', // euro sign
}

var (
	pdfDocToRune [256]rune
	runeToPDFDoc map[rune]byte
)

func init() {
	runeToPDFDoc = make(map[rune]byte)
	for i := 0; i < 256; i++ {
		c := byte(i)
		var r rune
		switch {
		case c == 0x7F || c == 0x9F || c == 0xAD:
			// unused code points
			r = unicode.ReplacementChar
		default:
			r = rune(c)
			if d, ok := pdfDocDiff[c]; ok {
				r = d
			}
		}
		pdfDocToRune[i] = r
		if r != unicode.ReplacementChar {
			runeToPDFDoc[r] = c
		}
	}
}

func pdfDocEncode(r rune) (byte, bool) {
	c, ok := runeToPDFDoc[r]
	return c, ok
}

func pdfDocDecode(x String) string {
	for _, c := range x {
		if pdfDocToRune[c] != rune(c) {
			goto decode
		}
	}
	return string(x)

decode:
	r := make([]rune, len(x))
	for i, c := range x {
		r[i] = pdfDocToRune[c]
	}
	return string(r)
}
