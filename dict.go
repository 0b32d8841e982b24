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
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Dict represents a dictionary object in a PDF document.  Keys are
// non-empty names and are unique; setting an existing key again replaces
// the value in place, keeping the key's original position.  Iteration
// visits entries in insertion order.
type Dict struct {
	keys   []Name
	values map[Name]Object
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{
		values: map[Name]Object{},
	}
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Has reports whether the dictionary contains the given key.
func (d *Dict) Has(key Name) bool {
	if d == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

// Get returns the value stored for the given key, or nil if the key is
// absent.
func (d *Dict) Get(key Name) Object {
	if d == nil {
		return nil
	}
	return d.values[key]
}

// Set stores a value for the given key, replacing any previous value.
// The empty key is invalid; Set reports whether the entry was stored.
func (d *Dict) Set(key Name, obj Object) bool {
	if d == nil || key == "" {
		return false
	}
	if d.values == nil {
		d.values = map[Name]Object{}
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = obj
	return true
}

// SetReference stores a reference to an indirect object.  The
// dictionary holds only the reference; the object itself stays in the
// object table of its document.
func (d *Dict) SetReference(key Name, ref Reference) bool {
	return d.Set(key, ref)
}

// SetInteger stores an [Integer] value.
func (d *Dict) SetInteger(key Name, v int64) bool {
	return d.Set(key, Integer(v))
}

// SetReal stores a [Real] value.
func (d *Dict) SetReal(key Name, v float64) bool {
	return d.Set(key, Real(v))
}

// SetBool stores a [Bool] value.
func (d *Dict) SetBool(key Name, v bool) bool {
	return d.Set(key, Bool(v))
}

// SetName stores a [Name] value.
func (d *Dict) SetName(key Name, v Name) bool {
	return d.Set(key, v)
}

// SetString stores a [String] value.
func (d *Dict) SetString(key Name, v String) bool {
	return d.Set(key, v)
}

// SetText stores a text string, encoded as described for [TextString].
func (d *Dict) SetText(key Name, s string) bool {
	return d.Set(key, TextString(s))
}

// SetDate stores a date string, encoded as described for [Date].
func (d *Dict) SetDate(key Name, t time.Time) bool {
	return d.Set(key, Date(t))
}

// SetMatrix stores a six-element matrix array.
func (d *Dict) SetMatrix(key Name, m matrix.Matrix) bool {
	return d.Set(key, FromMatrix(m))
}

// SetRect stores a four-element rectangle array.
func (d *Dict) SetRect(key Name, r rect.Rect) bool {
	return d.Set(key, FromRect(r))
}

// Delete removes the entry for the given key.  Deleting an absent key
// is a no-op.
func (d *Dict) Delete(key Name) {
	if d == nil {
		return
	}
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	idx := slices.Index(d.keys, key)
	d.keys = slices.Delete(d.keys, idx, idx+1)
}

// Keys returns the dictionary keys in insertion order.  The returned
// slice is a copy and can be modified by the caller.
func (d *Dict) Keys() []Name {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// All iterates over the dictionary entries in insertion order.
func (d *Dict) All() iter.Seq2[Name, Object] {
	return func(yield func(Name, Object) bool) {
		if d == nil {
			return
		}
		for _, key := range d.keys {
			if !yield(key, d.values[key]) {
				return
			}
		}
	}
}

// Clone returns a copy of the dictionary sharing the stored values.
func (d *Dict) Clone() *Dict {
	if d == nil {
		return nil
	}
	res := &Dict{
		keys:   slices.Clone(d.keys),
		values: make(map[Name]Object, len(d.values)),
	}
	for k, v := range d.values {
		res.values[k] = v
	}
	return res
}

func (d *Dict) String() string {
	res := []string{}
	if tp, ok := d.Get("Type").(Name); ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	if d.Len() == 1 {
		res = append(res, "1 entry")
	} else {
		res = append(res, strconv.Itoa(d.Len())+" entries")
	}
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	for _, key := range d.keys {
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = writeObject(w, d.values[key])
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}
