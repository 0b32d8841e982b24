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

// Package pagelabel implements PDF page labels.
//
// Page labels assign display names like "iii", "42" or "A-7" to the
// pages of a document.  They are stored in the `PageLabels` number tree
// of the document catalog: each key is the index of the first page of a
// labelling range, and the corresponding value describes the numbering
// style of all pages up to the start of the next range.
package pagelabel

import (
	"seehuhn.de/go/pdfobj"
	"seehuhn.de/go/pdfobj/numtree"
)

// Style selects the numbering style of a labelling range.
type Style int

// The page numbering styles defined by the PDF specification.
const (
	None       Style = iota // no numeric portion, prefix only
	Decimal                 // 1, 2, 3, ...
	RomanUpper              // I, II, III, ...
	RomanLower              // i, ii, iii, ...
	AlphaUpper              // A to Z, then AA to ZZ, ...
	AlphaLower              // a to z, then aa to zz, ...
)

var styleNames = map[Style]pdfobj.Name{
	Decimal:    "D",
	RomanUpper: "R",
	RomanLower: "r",
	AlphaUpper: "A",
	AlphaLower: "a",
}

// A Range describes the labelling of the pages from one range start to
// the next.
type Range struct {
	// Style is the numbering style for the numeric portion of the
	// labels.
	Style Style

	// Prefix is prepended to the numeric portion.  It may be empty.
	Prefix string

	// Start is the value of the numeric portion for the first page of
	// the range.  Valid values are 1 or larger.
	Start int
}

// Labels holds the page labelling information of a document.  Keys are
// zero-based page indices; each key starts a labelling [Range].
//
// A document should always have a range starting at page index 0.
// [Labels.Set] maintains this by inserting a default range when needed,
// but [Labels.Delete] can remove it again.
type Labels struct {
	tree *numtree.Tree
}

// New creates an empty page labelling.
func New() *Labels {
	return &Labels{tree: numtree.New()}
}

// Len returns the number of labelling ranges.
func (l *Labels) Len() int {
	return l.tree.Len()
}

// Set stores the labelling range starting at the given page index,
// replacing any range previously starting there.  If the page index is
// negative, the range is stored at index 0 instead.  A Start value
// below 1 is treated as 1.
//
// If no range starts at index 0 after adding the new range, the default
// range {None, "", 1} is inserted there.
func (l *Labels) Set(pageIndex int, r Range) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if r.Start < 1 {
		r.Start = 1
	}

	l.tree.Set(pdfobj.Integer(pageIndex), rangeDict(r))
	if !l.tree.Has(0) {
		l.tree.Set(0, rangeDict(Range{Start: 1}))
	}
}

// Has reports whether a labelling range starts at the given page index.
func (l *Labels) Has(pageIndex int) bool {
	return l.tree.Has(pdfobj.Integer(pageIndex))
}

// Get returns the labelling range starting at the given page index.
// The second return value reports whether such a range exists; pages
// which are only covered by a range starting earlier yield false.
func (l *Labels) Get(pageIndex int) (Range, bool) {
	obj, err := l.tree.Lookup(pdfobj.Integer(pageIndex))
	if err != nil {
		return Range{}, false
	}
	return rangeFromDict(obj), true
}

// Delete removes the labelling range starting at the given page index,
// if any.  The pages of the removed range are absorbed by the preceding
// range.
//
// Deleting the range at index 0 is possible, but leaves a labelling
// which violates the PDF specification; pages before the first
// remaining range start have no label.
func (l *Labels) Delete(pageIndex int) {
	l.tree.Delete(pdfobj.Integer(pageIndex))
}

// Clear removes all labelling ranges.
func (l *Labels) Clear() {
	l.tree.Clear()
}

// Label computes the label of the page with the given index.  The label
// is determined by the range with the greatest start index not after
// pageIndex.  If no such range exists, the label is the empty string.
func (l *Labels) Label(pageIndex int) string {
	start, obj, ok := l.tree.Floor(pdfobj.Integer(pageIndex))
	if !ok {
		return ""
	}
	r := rangeFromDict(obj)
	return r.Prefix + formatNumber(r.Style, r.Start+pageIndex-int(start))
}

// rangeDict converts a Range to its stored dictionary form.
func rangeDict(r Range) *pdfobj.Dict {
	dict := pdfobj.NewDict()
	if name, ok := styleNames[r.Style]; ok {
		dict.Set("S", name)
	}
	if r.Prefix != "" {
		dict.SetText("P", r.Prefix)
	}
	if r.Start != 1 {
		dict.SetInteger("St", int64(r.Start))
	}
	return dict
}

// rangeFromDict reads a Range from its stored dictionary form.
// Missing or malformed entries take their default values.
func rangeFromDict(obj pdfobj.Object) Range {
	r := Range{Start: 1}
	dict, ok := obj.(*pdfobj.Dict)
	if !ok {
		return r
	}
	if s, ok := dict.Get("S").(pdfobj.Name); ok {
		for style, name := range styleNames {
			if name == s {
				r.Style = style
				break
			}
		}
	}
	if p, ok := dict.Get("P").(pdfobj.String); ok {
		r.Prefix = p.AsTextString()
	}
	if st, ok := dict.Get("St").(pdfobj.Integer); ok && st >= 1 {
		r.Start = int(st)
	}
	return r
}

// Extract reads page labelling information from its stored form.  The
// argument root is the root of the PageLabels number tree, or a
// reference to it.  If root is nil, an empty labelling is returned.
//
// Range dictionaries stored as references are resolved through r.
func Extract(r pdfobj.Getter, root pdfobj.Object) (*Labels, error) {
	tree, err := numtree.Extract(r, root)
	if err != nil {
		return nil, err
	}

	res := New()
	for key, val := range tree.All() {
		if key < 0 {
			continue
		}
		dict, err := pdfobj.GetDict(r, val)
		if err != nil {
			continue
		}
		res.tree.Set(key, dict)
	}
	return res, nil
}

// Embed stores the labelling as a number tree in the document and
// returns the reference to the tree's root node, suitable for use as
// the PageLabels entry of the document catalog.  For an empty
// labelling the returned reference is zero.
func (l *Labels) Embed(w pdfobj.Putter) (pdfobj.Reference, error) {
	return numtree.Write(w, l.tree)
}
