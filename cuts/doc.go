// Package cuts provides the bit-wise selection containers attached to
// particle rows and a bitmap index over them.
//
// # Masks
//
// A Mask is a fixed-width 32-bit set in which every bit means "passed this
// specific selection criterion". Which criterion a bit encodes is defined by
// the producing stage; this package only manipulates the bits. Particle rows
// carry two masks, one for track/V0 selections and one for PID selections.
//
// # Index
//
// Index is a Roaring-Bitmap-based inverted index mapping each cut bit to the
// set of row ids whose mask has that bit set. The downstream selection stage
// uses it to intersect criteria over full tables without rescanning rows.
package cuts
