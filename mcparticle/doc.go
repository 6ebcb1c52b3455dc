// Package mcparticle declares the Monte-Carlo-truth rows of the derived data
// model: one generator-level particle per truth-matched reconstructed
// particle, its origin classification, and the label tables linking
// reconstructed rows to truth rows.
//
// Label indices are nullable: a reconstructed particle without a truth match
// carries table.NullIndex.
package mcparticle
