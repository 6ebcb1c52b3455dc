package mixing

import (
	"iter"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/femtodream/femtotables/table"
)

// HashTag is the tag of the event-mixing hash table.
var HashTag = table.Tag{Origin: table.OriginAOD, Description: "HASH"}

// Hash assigns a collision to an event-mixing bin.
type Hash struct {
	Bin int32
}

// Validate implements table.Row. Bin ids are defined by the external
// binning stage; any value is a valid bin.
func (h Hash) Validate(self table.Index, size int) error {
	return nil
}

// Pools groups collision rows by mixing bin.
//
// One roaring bitmap per bin holds the collision row ids; bitmaps stay cheap
// for the dense, low-cardinality id ranges a processing session produces.
// Pools is not safe for concurrent mutation.
type Pools struct {
	bins map[int32]*roaring.Bitmap
}

// NewPools creates empty mixing pools.
func NewPools() *Pools {
	return &Pools{bins: make(map[int32]*roaring.Bitmap)}
}

// Add records a collision row under its bin.
func (p *Pools) Add(bin int32, collision table.Index) {
	if !collision.Valid() {
		return
	}
	b, ok := p.bins[bin]
	if !ok {
		b = roaring.New()
		p.bins[bin] = b
	}
	b.Add(uint32(collision))
}

// Size returns the number of collisions pooled under the bin.
func (p *Pools) Size(bin int32) uint64 {
	b, ok := p.bins[bin]
	if !ok {
		return 0
	}
	return b.GetCardinality()
}

// Bins returns the populated bin ids in ascending order.
func (p *Pools) Bins() []int32 {
	out := make([]int32, 0, len(p.bins))
	for bin := range p.bins {
		out = append(out, bin)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Pool iterates the collision rows pooled under the bin in ascending order.
func (p *Pools) Pool(bin int32) iter.Seq[table.Index] {
	return func(yield func(table.Index) bool) {
		b, ok := p.bins[bin]
		if !ok {
			return
		}
		it := b.Iterator()
		for it.HasNext() {
			if !yield(table.Index(it.Next())) {
				return
			}
		}
	}
}

// Partners iterates the collisions sharing the bin with the probe collision,
// excluding the probe itself.
func (p *Pools) Partners(bin int32, probe table.Index) iter.Seq[table.Index] {
	return func(yield func(table.Index) bool) {
		for c := range p.Pool(bin) {
			if c == probe {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func init() {
	table.Register(table.Descriptor{
		Name:    "Hashes",
		Origin:  HashTag.Origin,
		Tag:     HashTag.Description,
		Columns: []string{"bin"},
	})
}
