// Package particle declares the track-level rows of the derived data model:
// reconstructed tracks, V0s and their children, cascades and their bachelor
// tracks, and heavy-flavor decay daughters, all stored in a single table
// discriminated by Kind.
//
// # Derived quantities
//
// Only (pt, eta, phi) are stored. The polar angle and the Cartesian momentum
// components are computed lazily on every access through the kinematics
// package; they are never materialized as columns.
//
// # Children
//
// A particle may own child rows (the daughter tracks of a V0, the V0 and
// bachelor of a cascade) referentially: Children holds row indices into the
// same table. The list exists purely to exclude auto-correlated pairs in
// downstream pairwise analyses; child rows are not structurally owned.
//
// # Diagnostics
//
// ExtParticle is the joinable companion carrying track-quality and PID
// diagnostics (cluster counts, DCA, per-detector nSigma, decay-vertex
// geometry). Producers fill it row-parallel to the particle table.
package particle
