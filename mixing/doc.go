// Package mixing declares the event-mixing hash table and the pool
// bookkeeping built on it.
//
// Each collision receives one integer bin id computed by the external
// binning stage from its multiplicity/centrality estimators (see
// collision.BinningPolicy for the declared strategies). Pools groups the
// collision rows sharing a bin so the mixing layer can pair particles from
// different but similar events.
package mixing
