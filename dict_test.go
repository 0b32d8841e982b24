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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDictSetGet(t *testing.T) {
	d := NewDict()
	if !d.Set("Type", Name("Page")) {
		t.Error("Set failed")
	}
	if d.Set("", Integer(1)) {
		t.Error("Set accepted the empty key")
	}
	if d.Len() != 1 {
		t.Fatalf("wrong length %d", d.Len())
	}
	if got := d.Get("Type"); got != Name("Page") {
		t.Errorf("got %v", got)
	}
	if got := d.Get("Missing"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if !d.Has("Type") || d.Has("Missing") {
		t.Error("wrong Has results")
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	d.SetName("Type", "Catalog")
	d.SetInteger("Count", 3)
	d.SetBool("Open", true)

	want := []Name{"Type", "Count", "Open"}
	if diff := cmp.Diff(want, d.Keys()); diff != "" {
		t.Errorf("wrong key order (-want +got):\n%s", diff)
	}

	// overwriting keeps the original position
	d.SetInteger("Count", 4)
	if diff := cmp.Diff(want, d.Keys()); diff != "" {
		t.Errorf("wrong key order after overwrite (-want +got):\n%s", diff)
	}
	if d.Get("Count") != Integer(4) {
		t.Error("overwrite did not take")
	}

	// All visits entries in the same order
	var visited []Name
	for key := range d.All() {
		visited = append(visited, key)
	}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("wrong iteration order (-want +got):\n%s", diff)
	}

	got := Format(d)
	wantPDF := "<<\n/Type /Catalog\n/Count 4\n/Open true\n>>"
	if got != wantPDF {
		t.Errorf("got %q, want %q", got, wantPDF)
	}
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.SetInteger("A", 1)
	d.SetInteger("B", 2)
	d.SetInteger("C", 3)

	d.Delete("B")
	d.Delete("Missing")

	if diff := cmp.Diff([]Name{"A", "C"}, d.Keys()); diff != "" {
		t.Errorf("wrong keys (-want +got):\n%s", diff)
	}

	// re-adding a deleted key appends at the end
	d.SetInteger("B", 2)
	if diff := cmp.Diff([]Name{"A", "C", "B"}, d.Keys()); diff != "" {
		t.Errorf("wrong keys (-want +got):\n%s", diff)
	}
}

func TestDictClone(t *testing.T) {
	d := NewDict()
	d.SetName("Type", "Page")
	inner := NewDict()
	inner.SetInteger("N", 1)
	d.Set("Res", inner)

	c := d.Clone()
	c.SetName("Type", "Pages")
	if d.Get("Type") != Name("Page") {
		t.Error("clone shares the key table")
	}

	// Clone is shallow, stored containers are shared
	inner.SetInteger("N", 2)
	if c.Get("Res").(*Dict).Get("N") != Integer(2) {
		t.Error("clone copied the stored values")
	}
}

func TestDictReference(t *testing.T) {
	doc := NewDocument()
	ref := doc.Add(Integer(42))

	d := NewDict()
	d.SetReference("Value", ref)

	// the dictionary stores the reference, not the object
	if d.Get("Value") != ref {
		t.Error("wrong stored value")
	}

	obj, err := GetInt(doc, d.Get("Value"))
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(42) {
		t.Errorf("got %v", obj)
	}

	// updating the document is visible through the reference
	err = doc.Put(ref, Integer(7))
	if err != nil {
		t.Fatal(err)
	}
	obj, err = GetInt(doc, d.Get("Value"))
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(7) {
		t.Errorf("got %v", obj)
	}
}

func TestDictNil(t *testing.T) {
	var d *Dict
	if d.Len() != 0 {
		t.Error("wrong length")
	}
	if d.Get("A") != nil || d.Has("A") {
		t.Error("lookup on nil dict")
	}
	if d.Set("A", Integer(1)) {
		t.Error("Set on nil dict succeeded")
	}
	d.Delete("A")
	for range d.All() {
		t.Error("iteration on nil dict yielded entries")
	}
	if d.Clone() != nil {
		t.Error("Clone of nil dict is not nil")
	}
}
