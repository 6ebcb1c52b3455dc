// Package femtotables declares the derived data model used by heavy-ion
// femtoscopy and heavy-flavor correlation analyses.
//
// The model is a set of typed tables grouped by physics entity: collisions,
// particles (tracks, V0s, cascades and their children), Monte-Carlo truth
// particles, heavy-flavor candidates, and the event-mixing hash. Tables are
// append-only arenas with positional row identity; relationships are plain
// integer index columns, including the self-referential child lists used to
// exclude auto-correlated pairs. Derived quantities (polar angle, Cartesian
// momentum components, the crossed-rows ratio) are computed lazily on read
// and never stored.
//
// # Quick Start
//
//	ds := femtotables.New().
//	    WithLogger(femtotables.NewTextLogger(slog.LevelInfo)).
//	    Build()
//
//	col, _ := ds.AddCollision(collision.Collision{PosZ: 2.1, MultNtr: 57})
//	idx, _ := ds.AddParticle(particle.Particle{
//	    CollisionID: col,
//	    Pt:          1.2,
//	    Eta:         -0.3,
//	    Phi:         2.7,
//	    Kind:        particle.KindTrack,
//	})
//
//	p, _ := ds.Particles().Row(idx)
//	pz := p.Pz() // derived on read, never stored
//
// # Division of Labor
//
// The producing stage, the join/iteration machinery of the host framework,
// and the downstream analysis all live outside this module. Femtotables
// constrains field names, types and construction-time invariants, exposes
// the lazy derived accessors, and keeps the mixing-pool and cut-index
// bookkeeping those external stages hook into. Persisted file layout belongs
// to the host storage engine.
//
// # Tables
//
// Every table carries an "AOD" origin tag and a unique description tag
// (table.Registry lists them all); the host framework uses the pair for
// file-format identification and cross-table joins.
package femtotables
