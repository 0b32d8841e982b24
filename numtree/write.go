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
	"errors"

	"seehuhn.de/go/pdfobj"
)

// maxChildren is the maximum number of entries per leaf and of children
// per intermediate node in the stored tree.
const maxChildren = 64

type nodeInfo struct {
	ref    pdfobj.Reference
	depth  int
	minKey pdfobj.Integer
	maxKey pdfobj.Integer
}

type treeWriter struct {
	w           pdfobj.Putter
	tail        []*nodeInfo // completed nodes, shallowest first
	pendingLeaf []entry
	lastKey     pdfobj.Integer
	hasEntries  bool
}

// Write stores the tree in its balanced on-file form: leaf nodes with
// flat Nums arrays, intermediate nodes with Kids, and Limits entries on
// every node below the root.  The returned reference points to the root
// node; for an empty tree the reference is zero.
func Write(w pdfobj.Putter, t *Tree) (pdfobj.Reference, error) {
	tw := &treeWriter{w: w}
	for key, value := range t.All() {
		err := tw.addEntry(key, value)
		if err != nil {
			return 0, err
		}
	}
	return tw.finish()
}

func (w *treeWriter) addEntry(key pdfobj.Integer, value pdfobj.Object) error {
	if w.hasEntries && key <= w.lastKey {
		return errors.New("keys must be in sorted order")
	}
	w.lastKey = key
	w.hasEntries = true

	w.pendingLeaf = append(w.pendingLeaf, entry{key: key, value: value})
	if len(w.pendingLeaf) >= maxChildren {
		return w.completePendingLeaf()
	}
	return nil
}

func numsArray(entries []entry) *pdfobj.Array {
	nums := pdfobj.NewArray()
	for _, e := range entries {
		nums.Append(e.key, e.value)
	}
	return nums
}

func limitsArray(min, max pdfobj.Integer) *pdfobj.Array {
	return pdfobj.NewArray(min, max)
}

func (w *treeWriter) completePendingLeaf() error {
	if len(w.pendingLeaf) == 0 {
		return nil
	}

	ref := w.w.Alloc()
	node := pdfobj.NewDict()
	node.Set("Nums", numsArray(w.pendingLeaf))
	node.Set("Limits", limitsArray(
		w.pendingLeaf[0].key,
		w.pendingLeaf[len(w.pendingLeaf)-1].key))

	err := w.w.Put(ref, node)
	if err != nil {
		return err
	}

	w.tail = append(w.tail, &nodeInfo{
		ref:    ref,
		depth:  0,
		minKey: w.pendingLeaf[0].key,
		maxKey: w.pendingLeaf[len(w.pendingLeaf)-1].key,
	})
	w.pendingLeaf = nil

	return w.mergeTail()
}

// mergeTail combines runs of maxChildren complete nodes of equal depth
// into one intermediate node.
func (w *treeWriter) mergeTail() error {
	for {
		n := len(w.tail)
		if n < maxChildren || w.tail[n-1].depth != w.tail[n-maxChildren].depth {
			break
		}
		err := w.mergeNodes(n-maxChildren, n)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *treeWriter) mergeNodes(start, end int) error {
	if start >= end {
		return nil
	}

	children := w.tail[start:end]
	ref := w.w.Alloc()

	kids := pdfobj.NewArray()
	for _, child := range children {
		kids.Append(child.ref)
	}

	node := pdfobj.NewDict()
	node.Set("Kids", kids)
	node.Set("Limits", limitsArray(
		children[0].minKey,
		children[len(children)-1].maxKey))

	err := w.w.Put(ref, node)
	if err != nil {
		return err
	}

	merged := &nodeInfo{
		ref:    ref,
		depth:  children[0].depth + 1,
		minKey: children[0].minKey,
		maxKey: children[len(children)-1].maxKey,
	}
	w.tail = append(w.tail[:start], append([]*nodeInfo{merged}, w.tail[end:]...)...)

	return nil
}

func (w *treeWriter) finish() (pdfobj.Reference, error) {
	if len(w.pendingLeaf) > 0 {
		// if this is the only leaf, it becomes the root and needs no
		// Limits entry
		if len(w.tail) == 0 {
			return w.writeRootWithNums()
		}
		err := w.completePendingLeaf()
		if err != nil {
			return 0, err
		}
	}

	if len(w.tail) == 0 {
		return 0, nil
	}

	if len(w.tail) == 1 && w.tail[0].depth == 0 {
		return w.writeRootWithKids([]*nodeInfo{w.tail[0]})
	}

	// collapse the remaining nodes, deepest runs first, until a single
	// root is left
	for len(w.tail) > 1 {
		start := len(w.tail) - 1
		depth := w.tail[start].depth
		for start > 0 && w.tail[start-1].depth == depth {
			start--
		}
		if start == 0 && w.tail[len(w.tail)-1].depth == w.tail[0].depth {
			break
		}
		err := w.mergeNodes(start, len(w.tail))
		if err != nil {
			return 0, err
		}
	}
	if len(w.tail) > 1 {
		return w.writeRootWithKids(w.tail)
	}

	root := w.tail[0]
	if root.depth > 0 {
		return w.writeRootWithKids([]*nodeInfo{root})
	}
	return root.ref, nil
}

// writeRootWithNums writes a tree which consists of a single leaf; the
// root node holds the Nums array directly and has no Limits entry.
func (w *treeWriter) writeRootWithNums() (pdfobj.Reference, error) {
	ref := w.w.Alloc()
	node := pdfobj.NewDict()
	node.Set("Nums", numsArray(w.pendingLeaf))
	err := w.w.Put(ref, node)
	return ref, err
}

// writeRootWithKids writes the root node for the given children.  The
// root has no Limits entry.
func (w *treeWriter) writeRootWithKids(children []*nodeInfo) (pdfobj.Reference, error) {
	ref := w.w.Alloc()
	kids := pdfobj.NewArray()
	for _, child := range children {
		kids.Append(child.ref)
	}
	node := pdfobj.NewDict()
	node.Set("Kids", kids)
	err := w.w.Put(ref, node)
	return ref, err
}
