// Package hf declares the heavy-flavor-candidate rows of the derived data
// model: reconstructed 2- and 3-prong decay candidates with their
// machine-learning discriminant scores, the Monte-Carlo companions carrying
// truth matching, and the flattened correlation results intended as the
// final analysis output.
package hf
