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

import "errors"

var (
	// ErrReferenceLoop is returned when following a chain of references
	// does not terminate.
	ErrReferenceLoop = errors.New("reference loop")

	// ErrBufferTooSmall is returned by [Stream.ReadData] when the
	// caller-supplied buffer cannot hold the requested data.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// UnsupportedFilterError indicates that stream data could not be encoded
// or decoded because no codec is available for the declared filter.
// The codecs for image compression filters and for the Crypt filter are
// external to this library.
type UnsupportedFilterError struct {
	Filter Name
}

func (err *UnsupportedFilterError) Error() string {
	return "unsupported stream filter " + Format(err.Filter)
}

// TypeError indicates that an object did not have the expected native
// PDF type.
type TypeError struct {
	Expected string
	Got      Object
}

func (err *TypeError) Error() string {
	return "expected " + err.Expected + " but got " + Format(err.Got)
}
