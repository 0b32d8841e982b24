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
	"slices"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Array represents an array of objects in a PDF document.  Elements form
// a dense, zero-based sequence; all mutating methods preserve this.
//
// The zero value of Array is an empty array, ready for use.
type Array []Object

// NewArray creates an array holding the given elements.
func NewArray(elements ...Object) *Array {
	a := Array(elements)
	return &a
}

// FromMatrix creates a six-element array holding the coefficients of a
// transformation matrix.
func FromMatrix(m matrix.Matrix) *Array {
	a := make(Array, 6)
	for i, v := range m {
		a[i] = Real(v)
	}
	return &a
}

// FromRect creates a four-element array describing a rectangle in
// default user space units.
func FromRect(r rect.Rect) *Array {
	return NewArray(Real(r.LLx), Real(r.LLy), Real(r.URx), Real(r.URy))
}

// Len returns the number of elements in the array.
func (x *Array) Len() int {
	if x == nil {
		return 0
	}
	return len(*x)
}

// Get returns the element at the given index.  For indices outside
// [0, Len()) the function returns nil.
func (x *Array) Get(i int) Object {
	if x == nil || i < 0 || i >= len(*x) {
		return nil
	}
	return (*x)[i]
}

// Append adds the given objects to the end of the array.
func (x *Array) Append(objects ...Object) {
	*x = append(*x, objects...)
}

// AppendInteger appends an [Integer] element.
func (x *Array) AppendInteger(v int64) {
	x.Append(Integer(v))
}

// AppendReal appends a [Real] element.
func (x *Array) AppendReal(v float64) {
	x.Append(Real(v))
}

// AppendBool appends a [Bool] element.
func (x *Array) AppendBool(v bool) {
	x.Append(Bool(v))
}

// AppendName appends a [Name] element.
func (x *Array) AppendName(v Name) {
	x.Append(v)
}

// AppendString appends a [String] element.
func (x *Array) AppendString(v String) {
	x.Append(v)
}

// AppendText appends a text string, encoded as described for
// [TextString].
func (x *Array) AppendText(s string) {
	x.Append(TextString(s))
}

// AppendDate appends a date string, encoded as described for [Date].
func (x *Array) AppendDate(t time.Time) {
	x.Append(Date(t))
}

// InsertAt inserts obj before the element at index i, shifting later
// elements up by one.  An index below zero inserts at the front, an
// index of Len() or above appends.
func (x *Array) InsertAt(i int, obj Object) {
	if i < 0 {
		i = 0
	} else if i > len(*x) {
		i = len(*x)
	}
	*x = slices.Insert(*x, i, obj)
}

// SetAt replaces the element at index i, dropping the previous occupant.
// The function reports whether i was inside [0, Len()); the array is
// unchanged otherwise.
func (x *Array) SetAt(i int, obj Object) bool {
	if x == nil || i < 0 || i >= len(*x) {
		return false
	}
	(*x)[i] = obj
	return true
}

// RemoveAt removes the element at index i and closes the gap.  The
// function reports whether i was inside [0, Len()); the array is
// unchanged otherwise.
func (x *Array) RemoveAt(i int) bool {
	if x == nil || i < 0 || i >= len(*x) {
		return false
	}
	*x = slices.Delete(*x, i, i+1)
	return true
}

// AsMatrix interprets the array as a transformation matrix.  The second
// return value reports whether the array has exactly six numeric
// elements; otherwise the zero matrix is returned.
func (x *Array) AsMatrix() (matrix.Matrix, bool) {
	var m matrix.Matrix
	if x.Len() != 6 {
		return matrix.Matrix{}, false
	}
	for i := range m {
		v, ok := asNumber((*x)[i])
		if !ok {
			return matrix.Matrix{}, false
		}
		m[i] = v
	}
	return m, true
}

// AsRect interprets the array as a rectangle.  The second return value
// reports whether the array has exactly four numeric elements;
// otherwise the zero rectangle is returned.
func (x *Array) AsRect() (rect.Rect, bool) {
	if x.Len() != 4 {
		return rect.Rect{}, false
	}
	var v [4]float64
	for i := range v {
		f, ok := asNumber((*x)[i])
		if !ok {
			return rect.Rect{}, false
		}
		v[i] = f
	}
	return rect.Rect{LLx: v[0], LLy: v[1], URx: v[2], URy: v[3]}, true
}

func asNumber(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Integer:
		return float64(v), true
	case Real:
		return float64(v), true
	default:
		return 0, false
	}
}

func (x *Array) String() string {
	res := []string{}
	res = append(res, "Array")
	res = append(res, strconv.Itoa(x.Len())+" elements")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (x *Array) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range *x {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}
