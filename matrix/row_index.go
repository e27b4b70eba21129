// SPDX-License-Identifier: MIT

package matrix

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// rowIndex is the structural index of a Sparse: row -> bitmap of stored columns.
// Rows without entries have no bitmap. Columns iterate in ascending order.
type rowIndex map[int]*roaring.Bitmap

// add marks (row, col) as stored.
func (ri rowIndex) add(row, col int) {
	bm, ok := ri[row]
	if !ok {
		bm = roaring.New()
		ri[row] = bm
	}
	bm.Add(uint32(col))
}

// remove clears (row, col); an emptied row drops its bitmap.
func (ri rowIndex) remove(row, col int) {
	bm, ok := ri[row]
	if !ok {
		return
	}
	bm.Remove(uint32(col))
	if bm.IsEmpty() {
		delete(ri, row)
	}
}

// columns returns the ascending stored columns of row, or nil.
func (ri rowIndex) columns(row int) []int {
	bm, ok := ri[row]
	if !ok {
		return nil
	}
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// forEach calls fn for every stored column of row in ascending order.
func (ri rowIndex) forEach(row int, fn func(col int)) {
	bm, ok := ri[row]
	if !ok {
		return
	}
	it := bm.Iterator()
	for it.HasNext() {
		fn(int(it.Next()))
	}
}

// count returns the number of stored columns in row.
func (ri rowIndex) count(row int) int {
	bm, ok := ri[row]
	if !ok {
		return 0
	}

	return int(bm.GetCardinality())
}

// sortedRows returns the rows holding at least one entry, ascending.
func (ri rowIndex) sortedRows() []int {
	rows := make([]int, 0, len(ri))
	for r := range ri {
		rows = append(rows, r)
	}
	slices.Sort(rows)

	return rows
}

// clone deep-copies every bitmap.
func (ri rowIndex) clone() rowIndex {
	out := make(rowIndex, len(ri))
	for r, bm := range ri {
		out[r] = bm.Clone()
	}

	return out
}
