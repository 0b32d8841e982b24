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

package pagelabel

import "testing"

func TestFormatRoman(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "I"},
		{2, "II"},
		{3, "III"},
		{4, "IV"},
		{5, "V"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{900, "CM"},
		{1666, "MDCLXVI"},
		{1994, "MCMXCIV"},
		{3999, "MMMCMXCIX"},
		{4000, "MMMM"},
		{4321, "MMMMCCCXXI"},
	}
	for _, c := range cases {
		if got := formatRoman(c.n); got != c.want {
			t.Errorf("formatRoman(%d): got %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatLetters(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "BB"},
		{52, "ZZ"},
		{53, "AAA"},
		{78, "ZZZ"},
	}
	for _, c := range cases {
		if got := formatLetters(c.n); got != c.want {
			t.Errorf("formatLetters(%d): got %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		style Style
		n     int
		want  string
	}{
		{None, 7, ""},
		{Decimal, 7, "7"},
		{Decimal, 1234, "1234"},
		{RomanUpper, 7, "VII"},
		{RomanLower, 7, "vii"},
		{AlphaUpper, 27, "AA"},
		{AlphaLower, 27, "aa"},
		{Decimal, 0, ""},
		{Decimal, -3, ""},
	}
	for _, c := range cases {
		if got := formatNumber(c.style, c.n); got != c.want {
			t.Errorf("formatNumber(%v, %d): got %q, want %q",
				c.style, c.n, got, c.want)
		}
	}
}
