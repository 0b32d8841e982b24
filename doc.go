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

// Package pdfobj implements a mutable, in-memory model of the objects
// which make up a PDF document.
//
// The nine native PDF object types are represented by Go types
// implementing the [Object] interface: [Bool], [Integer], [Real],
// [String], [Name], [*Array], [*Dict], [*Stream], and [Reference].
// The null object is represented by a nil [Object].
//
// Objects are either direct or indirect.  Direct objects are plain Go
// values, owned by whichever array, dictionary or stream they are stored
// in.  Indirect objects live in the object table of a [Document] and are
// referred to from elsewhere using [Reference] values, which store the
// object number only and never own the object they point to.
//
// The library is not safe for concurrent use.  Callers who share a
// Document between goroutines must serialise access themselves; a single
// lock around the whole document is the recommended discipline, since
// all containers in a document ultimately share its object table.
package pdfobj
