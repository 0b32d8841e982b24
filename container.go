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

import "fmt"

// Getter resolves references to indirect objects.  [*Document]
// implements this interface.
type Getter interface {
	Get(Reference) (Object, error)
}

// Putter allows to add indirect objects to a document.  [*Document]
// implements this interface.
type Putter interface {
	Alloc() Reference
	Put(ref Reference, obj Object) error
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function looks up the corresponding
// object in r and returns the result.  If obj is not a Reference, it is
// returned unchanged.  The function recursively follows chains of
// references until it resolves to a non-reference object.
//
// If a reference loop is encountered, the function returns
// [ErrReferenceLoop].
func Resolve(r Getter, obj Object) (Object, error) {
	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			break
		}
		count++
		if count > 16 {
			return nil, ErrReferenceLoop
		}

		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	var isCorrectType bool
	x, isCorrectType = obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, &TypeError{Expected: fmt.Sprintf("%T", x), Got: obj}
}

// Helper functions for getting objects of a specific type.  Each of
// these functions calls [Resolve] on the object before attempting to
// convert it to the desired type.  If the object is `null`, a zero
// object is returned without error.  If the object is of the wrong
// type, a [TypeError] is returned.
//
// The signature of these functions is
//
//	func GetT(r Getter, obj Object) (x T, err error)
//
// where T is the type of the object to be returned.
var (
	GetArray  = resolveAndCast[*Array]
	GetBool   = resolveAndCast[Bool]
	GetDict   = resolveAndCast[*Dict]
	GetInt    = resolveAndCast[Integer]
	GetName   = resolveAndCast[Name]
	GetReal   = resolveAndCast[Real]
	GetStream = resolveAndCast[*Stream]
	GetString = resolveAndCast[String]
)
