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
	"bytes"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Stream represents a stream object in a PDF document: a dictionary
// describing the stream, together with the raw (possibly encoded) bytes
// of its content.  The stream owns its dictionary.
//
// The filter entries of the dictionary must be direct objects; indirect
// /Filter and /DecodeParms entries are not resolved.
type Stream struct {
	dict *Dict
	raw  []byte
}

// NewStream creates a stream using the given dictionary, taking
// ownership of it.  If dict is nil, a new empty dictionary is created.
func NewStream(dict *Dict) *Stream {
	if dict == nil {
		dict = NewDict()
	}
	s := &Stream{dict: dict}
	if !dict.Has("Length") {
		dict.SetInteger("Length", 0)
	}
	return s
}

// NewStreamFrom creates a stream by reading content from r and encoding
// it with the given filters.  The filters are listed in the order in
// which a reader would have to decode them, the same order used in the
// /Filter entry.
func NewStreamFrom(r io.Reader, filters ...Name) (*Stream, error) {
	s := NewStream(nil)
	err := s.setData(r, filters)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Dict returns the stream dictionary.  The dictionary is owned by the
// stream; mutating it mutates the stream.
func (s *Stream) Dict() *Dict {
	return s.dict
}

// Filters returns the declared filter chain of the stream, in decoding
// order.  Malformed /Filter entries yield a nil slice.
func (s *Stream) Filters() []Name {
	names, _, err := s.filterChain()
	if err != nil {
		return nil
	}
	return names
}

func (s *Stream) filterChain() ([]Name, []*Dict, error) {
	var names []Name
	var parms []*Dict

	switch f := s.dict.Get("Filter").(type) {
	case nil:
		// unfiltered
	case Name:
		names = []Name{f}
	case *Array:
		for i := 0; i < f.Len(); i++ {
			name, ok := f.Get(i).(Name)
			if !ok {
				return nil, nil, &TypeError{Expected: "Name", Got: f.Get(i)}
			}
			names = append(names, name)
		}
	default:
		return nil, nil, &TypeError{Expected: "Name or Array", Got: f}
	}

	parms = make([]*Dict, len(names))
	switch p := s.dict.Get("DecodeParms").(type) {
	case nil:
	case *Dict:
		if len(parms) > 0 {
			parms[0] = p
		}
	case *Array:
		for i := range parms {
			if d, ok := p.Get(i).(*Dict); ok {
				parms[i] = d
			}
		}
	}

	return names, parms, nil
}

// Raw returns the stored stream bytes without decoding.  The returned
// slice is owned by the stream and must not be modified.
func (s *Stream) Raw() []byte {
	return s.raw
}

// SetRaw replaces the stream content verbatim, leaving the declared
// filters untouched.  The caller is responsible for keeping the filter
// entries consistent with the new bytes.
func (s *Stream) SetRaw(data []byte) {
	s.raw = slices.Clone(data)
	s.dict.SetInteger("Length", int64(len(s.raw)))
}

// OpenRaw returns a reader for the stored stream bytes.
func (s *Stream) OpenRaw() io.Reader {
	return bytes.NewReader(s.raw)
}

// Open returns a reader which decodes the stream content through the
// declared filter chain.
func (s *Stream) Open() (io.Reader, error) {
	names, parms, err := s.filterChain()
	if err != nil {
		return nil, err
	}

	var r io.Reader = bytes.NewReader(s.raw)
	for i, name := range names {
		err := checkParms(name, parms[i])
		if err != nil {
			return nil, err
		}
		codec, err := LookupCodec(name)
		if err != nil {
			return nil, err
		}
		r = codec.Decode(r)
	}
	return r, nil
}

// checkParms rejects decode parameters this library cannot honour.
func checkParms(name Name, parms *Dict) error {
	if pred, ok := parms.Get("Predictor").(Integer); ok && pred > 1 {
		return &UnsupportedFilterError{Filter: name}
	}
	if name == FilterLZW {
		early := Integer(1)
		if e, ok := parms.Get("EarlyChange").(Integer); ok {
			early = e
		}
		if early != 0 {
			return &UnsupportedFilterError{Filter: name}
		}
	}
	return nil
}

// Data returns the decoded stream content.
func (s *Stream) Data() ([]byte, error) {
	r, err := s.Open()
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// Size returns the length of the stream content in bytes.  If raw is
// true this is the stored length; otherwise the content is decoded
// first.
func (s *Stream) Size(raw bool) (int, error) {
	if raw {
		return len(s.raw), nil
	}
	data, err := s.Data()
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// ReadData copies the stream content into the caller-supplied buffer p.
// If raw is true the stored bytes are copied verbatim, otherwise the
// decoded content.  If p is too small for the content, ReadData returns
// [ErrBufferTooSmall] and p is left unspecified.
func (s *Stream) ReadData(p []byte, raw bool) (int, error) {
	var data []byte
	if raw {
		data = s.raw
	} else {
		var err error
		data, err = s.Data()
		if err != nil {
			return 0, err
		}
	}
	if len(p) < len(data) {
		return 0, ErrBufferTooSmall
	}
	return copy(p, data), nil
}

// SetData replaces the stream content.  The given bytes are encoded
// using the filters, which are listed in decoding order, and the
// /Filter, /DecodeParms and /Length entries are updated to match.
func (s *Stream) SetData(data []byte, filters ...Name) error {
	return s.setData(bytes.NewReader(data), filters)
}

func (s *Stream) setData(r io.Reader, filters []Name) error {
	for _, name := range filters {
		_, err := LookupCodec(name)
		if err != nil {
			return err
		}
	}

	buf := &bytes.Buffer{}
	w := io.Writer(buf)
	var closers []io.Closer
	for _, name := range filters {
		codec, _ := LookupCodec(name)
		wc := codec.Encode(w)
		closers = append(closers, wc)
		w = wc
	}

	_, err := io.Copy(w, r)
	if err != nil {
		return err
	}
	for i := len(closers) - 1; i >= 0; i-- {
		err = closers[i].Close()
		if err != nil {
			return err
		}
	}

	s.raw = buf.Bytes()
	s.dict.SetInteger("Length", int64(len(s.raw)))
	s.setFilterEntries(filters)
	return nil
}

func (s *Stream) setFilterEntries(filters []Name) {
	switch len(filters) {
	case 0:
		s.dict.Delete("Filter")
		s.dict.Delete("DecodeParms")
		return
	case 1:
		s.dict.Set("Filter", filters[0])
	default:
		arr := NewArray()
		for _, name := range filters {
			arr.Append(name)
		}
		s.dict.Set("Filter", arr)
	}

	parms := make([]Object, len(filters))
	needed := false
	for i, name := range filters {
		if name == FilterLZW {
			p := NewDict()
			p.SetInteger("EarlyChange", 0)
			parms[i] = p
			needed = true
		}
	}
	switch {
	case !needed:
		s.dict.Delete("DecodeParms")
	case len(parms) == 1:
		s.dict.Set("DecodeParms", parms[0])
	default:
		s.dict.Set("DecodeParms", NewArray(parms...))
	}
}

func (s *Stream) String() string {
	res := []string{}
	if tp, ok := s.dict.Get("Type").(Name); ok {
		res = append(res, string(tp)+" Stream")
	} else {
		res = append(res, "Stream")
	}
	if length, ok := s.dict.Get("Length").(Integer); ok {
		res = append(res, strconv.FormatInt(int64(length), 10)+" bytes")
	}
	for _, name := range s.Filters() {
		res = append(res, string(name))
	}
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (s *Stream) PDF(w io.Writer) error {
	err := s.dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(s.raw)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}
