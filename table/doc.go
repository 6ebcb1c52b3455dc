// Package table provides the typed append-only arenas backing the derived
// analysis tables.
//
// # Identity
//
// Rows have positional identity: the Index returned by Append is the row's
// identity for the lifetime of the table, and cross-table references are
// plain Index columns. NullIndex marks an absent reference (for example a
// reconstructed particle without a truth match).
//
// # Tags
//
// Every table is identified to the host framework by a Tag pair: the origin
// tag (always "AOD") and a description tag unique per table, e.g.
// "FDCOLLISION" for the collision table. The package-level Registry maps
// description tags to schema Descriptors for framework identification and
// histogram naming.
//
// # Validation
//
// Rows are validated on Append, never after: enum ranges, child-index bounds
// and self-references are rejected before the row enters the arena. Rows are
// immutable once appended.
package table
