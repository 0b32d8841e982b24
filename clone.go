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

import "slices"

// Clone returns an independent copy of obj.  Containers are copied
// recursively, but references to indirect objects are kept as
// references, so the copy is only self-contained within the same
// document.  Use [DeepClone] for a copy which can be moved to a
// different document.
func Clone(obj Object) Object {
	switch x := obj.(type) {
	case *Array:
		res := make(Array, len(*x))
		for i, elem := range *x {
			res[i] = Clone(elem)
		}
		return &res
	case *Dict:
		res := NewDict()
		for key, val := range x.All() {
			res.Set(key, Clone(val))
		}
		return res
	case *Stream:
		res := &Stream{
			dict: Clone(x.dict).(*Dict),
			raw:  slices.Clone(x.raw),
		}
		return res
	default:
		// scalar variants are value types
		return obj
	}
}

// DeepClone returns a copy of obj in which all references have been
// replaced by copies of the objects they point to.  The result does not
// depend on the object table of r any more.
//
// Objects with reference cycles cannot be converted to direct form;
// for these the function returns [ErrReferenceLoop].
func DeepClone(r Getter, obj Object) (Object, error) {
	return deepClone(r, obj, 0)
}

func deepClone(r Getter, obj Object, depth int) (Object, error) {
	if depth > 32 {
		return nil, ErrReferenceLoop
	}

	obj, err := Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	switch x := obj.(type) {
	case *Array:
		res := make(Array, len(*x))
		for i, elem := range *x {
			res[i], err = deepClone(r, elem, depth+1)
			if err != nil {
				return nil, err
			}
		}
		return &res, nil
	case *Dict:
		res := NewDict()
		for key, val := range x.All() {
			repl, err := deepClone(r, val, depth+1)
			if err != nil {
				return nil, err
			}
			res.Set(key, repl)
		}
		return res, nil
	case *Stream:
		dict, err := deepClone(r, x.dict, depth+1)
		if err != nil {
			return nil, err
		}
		return &Stream{
			dict: dict.(*Dict),
			raw:  slices.Clone(x.raw),
		}, nil
	default:
		return obj, nil
	}
}

// A Copier is used to copy objects from one document to another.  The
// Copier keeps track of the indirect objects which have already been
// copied and ensures that each object is copied only once.
//
// Indirect objects are allocated in the target document as needed, and
// references are translated accordingly.
type Copier struct {
	trans map[Reference]Reference
	r     Getter
	w     Putter
}

// NewCopier creates a new Copier which copies objects from r to w.
func NewCopier(w Putter, r Getter) *Copier {
	return &Copier{
		trans: make(map[Reference]Reference),
		w:     w,
		r:     r,
	}
}

// Copy copies an object from the source document to the target
// document, recursively.
func (c *Copier) Copy(obj Object) (Object, error) {
	switch x := obj.(type) {
	case *Array:
		res := make(Array, len(*x))
		for i, elem := range *x {
			repl, err := c.Copy(elem)
			if err != nil {
				return nil, err
			}
			res[i] = repl
		}
		return &res, nil
	case *Dict:
		return c.copyDict(x)
	case *Stream:
		dict, err := c.copyDict(x.dict)
		if err != nil {
			return nil, err
		}
		return &Stream{
			dict: dict,
			raw:  slices.Clone(x.raw),
		}, nil
	case Reference:
		return c.CopyReference(x)
	default:
		return obj, nil
	}
}

func (c *Copier) copyDict(obj *Dict) (*Dict, error) {
	res := NewDict()
	for key, val := range obj.All() {
		repl, err := c.Copy(val)
		if err != nil {
			return nil, err
		}
		res.Set(key, repl)
	}
	return res, nil
}

// CopyReference copies the indirect object obj points to into the
// target document and returns the translated reference.  Chains of
// references are shortened; the returned reference always points to a
// direct object.
func (c *Copier) CopyReference(obj Reference) (Reference, error) {
	newRef, ok := c.trans[obj]
	if ok {
		return newRef, nil
	}
	newRef = c.w.Alloc()
	c.trans[obj] = newRef

	val, err := Resolve(c.r, obj)
	if err != nil {
		return 0, err
	}
	trans, err := c.Copy(val)
	if err != nil {
		return 0, err
	}
	err = c.w.Put(newRef, trans)
	if err != nil {
		return 0, err
	}

	return newRef, nil
}

// Redirect maps an indirect object in the source document to an
// already existing object in the target document.
func (c *Copier) Redirect(origRef, newRef Reference) {
	c.trans[origRef] = newRef
}
