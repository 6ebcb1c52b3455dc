package cuts

import "math/bits"

// Mask is a bit-wise container for selection criteria. Each bit means
// "passed this specific cut"; bit semantics are defined by the producer.
type Mask uint32

// MaskBits is the fixed width of a Mask.
const MaskBits = 32

// Set returns the mask with the given bit set.
func (m Mask) Set(bit uint) Mask {
	return m | Mask(1)<<bit
}

// Clear returns the mask with the given bit cleared.
func (m Mask) Clear(bit uint) Mask {
	return m &^ (Mask(1) << bit)
}

// Has reports whether the given bit is set.
func (m Mask) Has(bit uint) bool {
	return m&(Mask(1)<<bit) != 0
}

// Passes reports whether every bit of the required mask is set.
func (m Mask) Passes(required Mask) bool {
	return m&required == required
}

// Count returns the number of passed criteria.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}
