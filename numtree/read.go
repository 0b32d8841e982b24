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

package numtree

import (
	"seehuhn.de/go/pdfobj"
)

// Extract reads a number tree from its stored form in a document.  The
// argument root is the root node of the tree, or a reference to it.  If
// root is nil, an empty tree is returned.
//
// Values are kept as stored, so they may be references into r.  Keys
// which violate the ascending key order of the stored tree are dropped.
func Extract(r pdfobj.Getter, root pdfobj.Object) (*Tree, error) {
	res := New()
	if root == nil {
		return res, nil
	}

	todo := []pdfobj.Object{root}
	for len(todo) > 0 {
		node := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		dict, _ := pdfobj.GetDict(r, node)

		nums, _ := pdfobj.GetArray(r, dict.Get("Nums"))
		for i := 0; i+1 < nums.Len(); i += 2 {
			key, err := pdfobj.GetInt(r, nums.Get(i))
			if err != nil {
				return nil, err
			}
			value := nums.Get(i + 1)
			n := len(res.entries)
			if n == 0 || key > res.entries[n-1].key {
				res.entries = append(res.entries, entry{key: key, value: value})
			}
		}

		kids, _ := pdfobj.GetArray(r, dict.Get("Kids"))
		for i := kids.Len() - 1; i >= 0; i-- {
			todo = append(todo, kids.Get(i))
		}
	}

	return res, nil
}
