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

import (
	"strconv"
	"strings"
)

// formatNumber renders the numeric portion of a page label.  Values
// below 1 and the style [None] yield the empty string.
func formatNumber(style Style, n int) string {
	if n < 1 {
		return ""
	}
	switch style {
	case Decimal:
		return strconv.Itoa(n)
	case RomanUpper:
		return formatRoman(n)
	case RomanLower:
		return strings.ToLower(formatRoman(n))
	case AlphaUpper:
		return formatLetters(n)
	case AlphaLower:
		return strings.ToLower(formatLetters(n))
	default:
		return ""
	}
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// formatRoman renders n as an upper-case roman numeral, using the
// subtractive forms IV, IX, XL, XC, CD and CM.  Numbers above 3999,
// which have no classical representation, continue with repeated "M"
// symbols.
func formatRoman(n int) string {
	b := &strings.Builder{}
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String()
}

// formatLetters renders n using upper-case letters: A to Z for the
// first 26 numbers, then a doubled letter AA to ZZ for the next 26,
// and so on with one more repetition every 26 numbers.
func formatLetters(n int) string {
	letter := byte('A' + (n-1)%26)
	count := (n-1)/26 + 1
	return strings.Repeat(string(letter), count)
}
