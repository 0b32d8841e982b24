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
	"sort"

	"golang.org/x/exp/maps"
)

// Document holds the object table of a PDF document: the mapping from
// object numbers to indirect objects.  All indirect objects are owned by
// the document; containers elsewhere store [Reference] values pointing
// into the table.
type Document struct {
	objects map[Reference]Object
	lastRef uint32
}

// NewDocument creates a document with an empty object table.
func NewDocument() *Document {
	return &Document{
		objects: map[Reference]Object{},
	}
}

// Alloc allocates a new object number for an indirect object.
func (d *Document) Alloc() Reference {
	for {
		d.lastRef++
		ref := NewReference(d.lastRef, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Get returns the indirect object stored for ref.  Unused references
// yield the null object.
func (d *Document) Get(ref Reference) (Object, error) {
	return d.objects[ref], nil
}

// Put stores an indirect object in the object table.  Storing nil
// removes the table entry.
func (d *Document) Put(ref Reference, obj Object) error {
	if obj == nil {
		delete(d.objects, ref)
	} else {
		d.objects[ref] = obj
	}
	return nil
}

// Add stores obj as a new indirect object and returns a reference to
// it.
func (d *Document) Add(obj Object) Reference {
	ref := d.Alloc()
	d.objects[ref] = obj
	return ref
}

// Len returns the number of indirect objects in the document.
func (d *Document) Len() int {
	return len(d.objects)
}

// Refs returns the references of all indirect objects, sorted by object
// number.
func (d *Document) Refs() []Reference {
	refs := maps.Keys(d.objects)
	sort.Slice(refs, func(i, j int) bool {
		ri := refs[i]
		rj := refs[j]
		if ri.Number() != rj.Number() {
			return ri.Number() < rj.Number()
		}
		return ri.Generation() < rj.Generation()
	})
	return refs
}
