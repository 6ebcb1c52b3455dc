package cuts

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/femtodream/femtotables/table"
)

// Index accelerates "which rows passed these cuts" queries.
//
// It is an inverted index: one bitmap per cut bit, holding the ids of the
// rows whose mask has that bit set. Rows enter the index when the producing
// stage appends them and are never removed; tables are append-only.
type Index struct {
	bits [MaskBits]*roaring.Bitmap
}

// NewIndex creates an empty cut index.
func NewIndex() *Index {
	return &Index{}
}

// Add records the mask of the row at the given index.
func (ix *Index) Add(row table.Index, m Mask) {
	if !row.Valid() {
		return
	}
	for bit := uint(0); bit < MaskBits; bit++ {
		if !m.Has(bit) {
			continue
		}
		if ix.bits[bit] == nil {
			ix.bits[bit] = roaring.New()
		}
		ix.bits[bit].Add(uint32(row))
	}
}

// Passing returns the ids of all rows whose mask has every given bit set.
// With no bits it returns an empty bitmap. Bits outside the mask width are
// never set on any row, so they yield an empty bitmap too.
func (ix *Index) Passing(bitIdxs ...uint) *roaring.Bitmap {
	if len(bitIdxs) == 0 {
		return roaring.New()
	}
	var out *roaring.Bitmap
	for _, bit := range bitIdxs {
		if bit >= MaskBits {
			return roaring.New()
		}
		b := ix.bits[bit]
		if b == nil {
			return roaring.New()
		}
		if out == nil {
			out = b.Clone()
			continue
		}
		out.And(b)
	}
	return out
}

// Cardinality returns the number of rows recorded under the given bit.
// Bits outside the mask width hold no rows.
func (ix *Index) Cardinality(bit uint) uint64 {
	if bit >= MaskBits {
		return 0
	}
	b := ix.bits[bit]
	if b == nil {
		return 0
	}
	return b.GetCardinality()
}

// Rows iterates the row ids of a bitmap in ascending order.
func Rows(b *roaring.Bitmap) iter.Seq[table.Index] {
	return func(yield func(table.Index) bool) {
		it := b.Iterator()
		for it.HasNext() {
			if !yield(table.Index(it.Next())) {
				return
			}
		}
	}
}
