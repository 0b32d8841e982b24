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

// Package numtree implements PDF number trees.
//
// Number trees map integers to PDF objects.  In PDF files these trees
// are used in two different contexts:
//   - The `PageLabels` entry in the document catalog is a number tree
//     defining page labels for the pages in the document.
//   - The `ParentTree` entry in the structure tree root dictionary
//     is a number tree used in finding the structure elements
//     to which content items belong.
//
// In a PDF file a number tree is stored as a balanced tree of node
// dictionaries, with flat `Nums` arrays of key-value pairs in the
// leaves and `Kids` arrays in the intermediate nodes.  The [Tree] type
// hides this layout behind an ordered map: [Extract] reads the stored
// form, [Write] produces it, and all other operations work on keys in
// ascending order.
package numtree

import (
	"errors"
	"iter"
	"slices"
	"sort"

	"seehuhn.de/go/pdfobj"
)

// ErrKeyNotFound is returned by lookup operations when the given key is
// not present in the tree.
var ErrKeyNotFound = errors.New("key not found")

// Tree is an in-memory number tree: a map from integers to PDF objects,
// ordered by key.
//
// The zero value of Tree is an empty tree, ready for use.
type Tree struct {
	entries []entry
}

type entry struct {
	key   pdfobj.Integer
	value pdfobj.Object
}

// New creates an empty number tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// search returns the position of the first entry with key >= key.
func (t *Tree) search(key pdfobj.Integer) int {
	return sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].key >= key
	})
}

// Has reports whether the tree contains the given key.
func (t *Tree) Has(key pdfobj.Integer) bool {
	if t == nil {
		return false
	}
	idx := t.search(key)
	return idx < len(t.entries) && t.entries[idx].key == key
}

// Lookup returns the value stored for the given key.  If the key is not
// present, the function returns [ErrKeyNotFound].
func (t *Tree) Lookup(key pdfobj.Integer) (pdfobj.Object, error) {
	if t == nil {
		return nil, ErrKeyNotFound
	}
	idx := t.search(key)
	if idx == len(t.entries) || t.entries[idx].key != key {
		return nil, ErrKeyNotFound
	}
	return t.entries[idx].value, nil
}

// Set stores a value for the given key, replacing any previous value.
func (t *Tree) Set(key pdfobj.Integer, value pdfobj.Object) {
	idx := t.search(key)
	if idx < len(t.entries) && t.entries[idx].key == key {
		t.entries[idx].value = value
		return
	}
	t.entries = slices.Insert(t.entries, idx, entry{key: key, value: value})
}

// Delete removes the entry for the given key.  The function reports
// whether the key was present; the tree is unchanged otherwise.
func (t *Tree) Delete(key pdfobj.Integer) bool {
	if t == nil {
		return false
	}
	idx := t.search(key)
	if idx == len(t.entries) || t.entries[idx].key != key {
		return false
	}
	t.entries = slices.Delete(t.entries, idx, idx+1)
	return true
}

// Clear removes all entries from the tree.
func (t *Tree) Clear() {
	t.entries = t.entries[:0]
}

// First returns the smallest key in the tree.  For an empty tree the
// function returns [ErrKeyNotFound].
func (t *Tree) First() (pdfobj.Integer, error) {
	if t.Len() == 0 {
		return 0, ErrKeyNotFound
	}
	return t.entries[0].key, nil
}

// Next returns the smallest key greater than after, or [ErrKeyNotFound]
// if after is at or past the end of the tree.
func (t *Tree) Next(after pdfobj.Integer) (pdfobj.Integer, error) {
	if t == nil {
		return 0, ErrKeyNotFound
	}
	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].key > after
	})
	if idx == len(t.entries) {
		return 0, ErrKeyNotFound
	}
	return t.entries[idx].key, nil
}

// Prev returns the largest key smaller than before, or [ErrKeyNotFound]
// if before is at or ahead of the start of the tree.
func (t *Tree) Prev(before pdfobj.Integer) (pdfobj.Integer, error) {
	if t == nil {
		return 0, ErrKeyNotFound
	}
	idx := t.search(before)
	if idx == 0 {
		return 0, ErrKeyNotFound
	}
	return t.entries[idx-1].key, nil
}

// Floor returns the largest key not greater than key, together with its
// value.  The last return value reports whether such a key exists.
func (t *Tree) Floor(key pdfobj.Integer) (pdfobj.Integer, pdfobj.Object, bool) {
	if t == nil {
		return 0, nil, false
	}
	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].key > key
	})
	if idx == 0 {
		return 0, nil, false
	}
	e := t.entries[idx-1]
	return e.key, e.value, true
}

// All iterates over the entries of the tree in ascending key order.
// The tree must not be modified during the iteration.
func (t *Tree) All() iter.Seq2[pdfobj.Integer, pdfobj.Object] {
	return func(yield func(pdfobj.Integer, pdfobj.Object) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
