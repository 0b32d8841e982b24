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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfobj"
)

func TestSetOnEmpty(t *testing.T) {
	l := New()
	l.Set(5, Range{Style: Decimal, Start: 1})

	// a default range must have been inserted at index 0
	r, ok := l.Get(0)
	if !ok {
		t.Fatal("no range at index 0")
	}
	if d := cmp.Diff(Range{Style: None, Prefix: "", Start: 1}, r); d != "" {
		t.Errorf("wrong default range (-want +got):\n%s", d)
	}

	cases := []struct {
		page int
		want string
	}{
		{4, ""},
		{5, "1"},
		{7, "3"},
	}
	for _, c := range cases {
		if got := l.Label(c.page); got != c.want {
			t.Errorf("Label(%d): got %q, want %q", c.page, got, c.want)
		}
	}
}

func TestSetAtZero(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: RomanUpper, Start: 1})
	l.Set(5, Range{Style: Decimal, Start: 1})

	if l.Len() != 2 {
		t.Fatalf("wrong number of ranges %d", l.Len())
	}

	cases := []struct {
		page int
		want string
	}{
		{0, "I"},
		{4, "V"},
		{5, "1"},
		{6, "2"},
	}
	for _, c := range cases {
		if got := l.Label(c.page); got != c.want {
			t.Errorf("Label(%d): got %q, want %q", c.page, got, c.want)
		}
	}
}

func TestDeleteMergesWithPredecessor(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: RomanUpper, Start: 1})
	l.Set(5, Range{Style: Decimal, Start: 1})

	l.Delete(5)

	if got := l.Label(6); got != "VII" {
		t.Errorf("Label(6): got %q, want %q", got, "VII")
	}
	if l.Has(5) {
		t.Error("range at 5 still present")
	}
}

func TestDeleteAtZero(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: Decimal, Start: 1})
	l.Set(3, Range{Style: Decimal, Start: 10})

	l.Delete(0)

	if got := l.Label(1); got != "" {
		t.Errorf("Label(1): got %q, want empty", got)
	}
	if got := l.Label(3); got != "10" {
		t.Errorf("Label(3): got %q, want %q", got, "10")
	}
}

func TestOverwrite(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: Decimal, Start: 1})
	l.Set(0, Range{Style: AlphaUpper, Start: 3, Prefix: "x"})

	if l.Len() != 1 {
		t.Fatalf("wrong number of ranges %d", l.Len())
	}
	if got := l.Label(0); got != "xC" {
		t.Errorf("Label(0): got %q, want %q", got, "xC")
	}
}

func TestStartClamping(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: Decimal, Start: -5})

	r, _ := l.Get(0)
	if r.Start != 1 {
		t.Errorf("Start not clamped: %d", r.Start)
	}
	if got := l.Label(0); got != "1" {
		t.Errorf("Label(0): got %q, want %q", got, "1")
	}
}

func TestLetterOverflow(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: AlphaUpper, Start: 1})

	cases := []struct {
		page int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "BB"},
	}
	for _, c := range cases {
		if got := l.Label(c.page); got != c.want {
			t.Errorf("Label(%d): got %q, want %q", c.page, got, c.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: Decimal, Prefix: "A-", Start: 7})

	if got := l.Label(2); got != "A-9" {
		t.Errorf("Label(2): got %q, want %q", got, "A-9")
	}

	// prefix-only labels
	l.Set(10, Range{Style: None, Prefix: "Appendix"})
	if got := l.Label(12); got != "Appendix" {
		t.Errorf("Label(12): got %q, want %q", got, "Appendix")
	}
}

func TestEmbedExtract(t *testing.T) {
	l := New()
	l.Set(0, Range{Style: RomanLower, Start: 1})
	l.Set(8, Range{Style: Decimal, Start: 1})
	l.Set(100, Range{Style: Decimal, Prefix: "B-", Start: 17})

	doc := pdfobj.NewDocument()
	root, err := l.Embed(doc)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Extract(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != l.Len() {
		t.Fatalf("got %d ranges, want %d", got.Len(), l.Len())
	}
	for _, idx := range []int{0, 8, 100} {
		want, _ := l.Get(idx)
		r, ok := got.Get(idx)
		if !ok {
			t.Fatalf("no range at index %d", idx)
		}
		if d := cmp.Diff(want, r); d != "" {
			t.Errorf("index %d: wrong range (-want +got):\n%s", idx, d)
		}
	}
	for _, page := range []int{0, 7, 8, 50, 99, 100, 110} {
		if a, b := l.Label(page), got.Label(page); a != b {
			t.Errorf("Label(%d): %q != %q", page, a, b)
		}
	}
}

func TestExtractNil(t *testing.T) {
	l, err := Extract(pdfobj.NewDocument(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("got %d ranges, want 0", l.Len())
	}
	if got := l.Label(0); got != "" {
		t.Errorf("Label(0): got %q, want empty", got)
	}
}
