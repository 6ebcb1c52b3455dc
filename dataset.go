package femtotables

import (
	"context"
	"iter"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/femtodream/femtotables/collision"
	"github.com/femtodream/femtotables/cuts"
	"github.com/femtodream/femtotables/hf"
	"github.com/femtodream/femtotables/mcparticle"
	"github.com/femtodream/femtotables/mixing"
	"github.com/femtodream/femtotables/particle"
	"github.com/femtodream/femtotables/table"
)

// Dataset holds one instance of every declared table plus the mixing-pool
// and cut-index bookkeeping built on top of them.
//
// The producing stage fills it through the Add* hooks; once an event is
// complete the dataset is read-only and any number of analysis stages may
// iterate it. Mutation is single-writer by design - the framework runs one
// producer per event-processing task.
type Dataset struct {
	logger  *Logger
	metrics MetricsCollector

	collisions  *table.Table[collision.Collision]
	colMasks    *table.Table[collision.Mask]
	downsamples *table.Table[collision.DownSample]

	particles    *table.Table[particle.Particle]
	extParticles *table.Table[particle.ExtParticle]

	mcParticles    *table.Table[mcparticle.MCParticle]
	extMCParticles *table.Table[mcparticle.ExtMCParticle]
	mcLabels       *table.Table[mcparticle.Label]
	extMCLabels    *table.Table[mcparticle.ExtLabel]

	candidates      *table.Table[hf.Candidate]
	candidateMC     *table.Table[hf.CandidateMC]
	candidateMCGen  *table.Table[hf.CandidateMCGen]
	particleIndexes *table.Table[hf.ParticleIndex]
	results         *table.Table[hf.Result]

	hashes *table.Table[mixing.Hash]

	pools    *mixing.Pools
	cutIndex *cuts.Index
	pidIndex *cuts.Index
}

// numTables is the number of declared tables a dataset holds.
const numTables = 15

// Table accessors for the read side.

// Collisions returns the event-level table.
func (ds *Dataset) Collisions() *table.Table[collision.Collision] { return ds.collisions }

// ColMasks returns the event-mixing occupancy companion table.
func (ds *Dataset) ColMasks() *table.Table[collision.Mask] { return ds.colMasks }

// DownSamples returns the downsampling-flag companion table.
func (ds *Dataset) DownSamples() *table.Table[collision.DownSample] { return ds.downsamples }

// Particles returns the track-level table.
func (ds *Dataset) Particles() *table.Table[particle.Particle] { return ds.particles }

// ExtParticles returns the track-diagnostics companion table.
func (ds *Dataset) ExtParticles() *table.Table[particle.ExtParticle] { return ds.extParticles }

// MCParticles returns the truth-particle table.
func (ds *Dataset) MCParticles() *table.Table[mcparticle.MCParticle] { return ds.mcParticles }

// ExtMCParticles returns the extended truth companion table.
func (ds *Dataset) ExtMCParticles() *table.Table[mcparticle.ExtMCParticle] { return ds.extMCParticles }

// Candidates returns the heavy-flavor candidate table.
func (ds *Dataset) Candidates() *table.Table[hf.Candidate] { return ds.candidates }

// CandidateMCs returns the candidate truth companion table.
func (ds *Dataset) CandidateMCs() *table.Table[hf.CandidateMC] { return ds.candidateMC }

// CandidateMCGens returns the generator-level candidate table.
func (ds *Dataset) CandidateMCGens() *table.Table[hf.CandidateMCGen] { return ds.candidateMCGen }

// ParticleIndexes returns the candidate-daughter track link table.
func (ds *Dataset) ParticleIndexes() *table.Table[hf.ParticleIndex] { return ds.particleIndexes }

// Results returns the flat correlation-output table.
func (ds *Dataset) Results() *table.Table[hf.Result] { return ds.results }

// Hashes returns the event-mixing hash table.
func (ds *Dataset) Hashes() *table.Table[mixing.Hash] { return ds.hashes }

// Pools returns the event-mixing pools.
func (ds *Dataset) Pools() *mixing.Pools { return ds.pools }

// Producer hooks.

// AddCollision appends one processed event.
func (ds *Dataset) AddCollision(c collision.Collision) (table.Index, error) {
	i, err := ds.collisions.Append(c)
	ds.metrics.RecordAppend(collision.Tag.Description, err)
	ds.logger.LogAppend(collision.Tag, i, err)
	return i, err
}

// AddColMask appends the mixing-occupancy companion of the latest collision.
func (ds *Dataset) AddColMask(m collision.Mask) (table.Index, error) {
	if err := ds.companionFits(ds.colMasks.Len(), collision.MaskTag); err != nil {
		ds.metrics.RecordAppend(collision.MaskTag.Description, err)
		ds.logger.LogAppend(collision.MaskTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.colMasks.Append(m)
	ds.metrics.RecordAppend(collision.MaskTag.Description, err)
	ds.logger.LogAppend(collision.MaskTag, i, err)
	return i, err
}

// AddDownSample appends the downsampling flag of the latest collision.
func (ds *Dataset) AddDownSample(d collision.DownSample) (table.Index, error) {
	if err := ds.companionFits(ds.downsamples.Len(), collision.DownSampleTag); err != nil {
		ds.metrics.RecordAppend(collision.DownSampleTag.Description, err)
		ds.logger.LogAppend(collision.DownSampleTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.downsamples.Append(d)
	ds.metrics.RecordAppend(collision.DownSampleTag.Description, err)
	ds.logger.LogAppend(collision.DownSampleTag, i, err)
	return i, err
}

// AddHash appends the mixing-bin hash of the latest collision and registers
// the collision in its pool.
func (ds *Dataset) AddHash(h mixing.Hash) (table.Index, error) {
	if err := ds.companionFits(ds.hashes.Len(), mixing.HashTag); err != nil {
		ds.metrics.RecordAppend(mixing.HashTag.Description, err)
		ds.logger.LogAppend(mixing.HashTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.hashes.Append(h)
	ds.metrics.RecordAppend(mixing.HashTag.Description, err)
	ds.logger.LogAppend(mixing.HashTag, i, err)
	if err == nil {
		ds.pools.Add(h.Bin, i)
	}
	return i, err
}

// AddParticle appends one reconstructed particle and records its masks in
// the cut indexes. The collision reference is optional (NullIndex) but must
// resolve when set.
func (ds *Dataset) AddParticle(p particle.Particle) (table.Index, error) {
	if err := ds.collisions.CheckBounds(p.CollisionID, true); err != nil {
		err = &ErrDanglingReference{
			From: particle.Tag, To: collision.Tag,
			Row: table.Index(ds.particles.Len()), Ref: p.CollisionID,
			cause: err,
		}
		ds.metrics.RecordAppend(particle.Tag.Description, err)
		ds.logger.LogAppend(particle.Tag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.particles.Append(p)
	ds.metrics.RecordAppend(particle.Tag.Description, err)
	ds.logger.LogAppend(particle.Tag, i, err)
	if err == nil {
		ds.cutIndex.Add(i, p.Cut)
		ds.pidIndex.Add(i, p.PIDCut)
	}
	return i, err
}

// AddExtParticle appends the diagnostics companion of the latest particle.
func (ds *Dataset) AddExtParticle(e particle.ExtParticle) (table.Index, error) {
	if ds.extParticles.Len() >= ds.particles.Len() {
		err := &ErrMisalignedCompanion{
			Base: particle.Tag, Companion: particle.ExtTag,
			BaseLen: ds.particles.Len(), CompLen: ds.extParticles.Len() + 1,
		}
		ds.metrics.RecordAppend(particle.ExtTag.Description, err)
		ds.logger.LogAppend(particle.ExtTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.extParticles.Append(e)
	ds.metrics.RecordAppend(particle.ExtTag.Description, err)
	ds.logger.LogAppend(particle.ExtTag, i, err)
	return i, err
}

// AddMCParticle appends one truth particle.
func (ds *Dataset) AddMCParticle(p mcparticle.MCParticle) (table.Index, error) {
	i, err := ds.mcParticles.Append(p)
	ds.metrics.RecordAppend(mcparticle.Tag.Description, err)
	ds.logger.LogAppend(mcparticle.Tag, i, err)
	return i, err
}

// AddExtMCParticle appends one extended truth record.
func (ds *Dataset) AddExtMCParticle(p mcparticle.ExtMCParticle) (table.Index, error) {
	i, err := ds.extMCParticles.Append(p)
	ds.metrics.RecordAppend(mcparticle.ExtTag.Description, err)
	ds.logger.LogAppend(mcparticle.ExtTag, i, err)
	return i, err
}

// AddMCLabel appends the truth label of the latest particle. The label may
// be NullIndex (no truth match) but must resolve when set.
func (ds *Dataset) AddMCLabel(l mcparticle.Label) (table.Index, error) {
	if ds.mcLabels.Len() >= ds.particles.Len() {
		err := &ErrMisalignedCompanion{
			Base: particle.Tag, Companion: mcparticle.LabelTag,
			BaseLen: ds.particles.Len(), CompLen: ds.mcLabels.Len() + 1,
		}
		ds.metrics.RecordAppend(mcparticle.LabelTag.Description, err)
		ds.logger.LogAppend(mcparticle.LabelTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	if err := ds.mcParticles.CheckBounds(l.MCParticleID, true); err != nil {
		err = &ErrDanglingReference{
			From: mcparticle.LabelTag, To: mcparticle.Tag,
			Row: table.Index(ds.mcLabels.Len()), Ref: l.MCParticleID,
			cause: err,
		}
		ds.metrics.RecordAppend(mcparticle.LabelTag.Description, err)
		ds.logger.LogAppend(mcparticle.LabelTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.mcLabels.Append(l)
	ds.metrics.RecordAppend(mcparticle.LabelTag.Description, err)
	ds.logger.LogAppend(mcparticle.LabelTag, i, err)
	return i, err
}

// AddExtMCLabel appends the extended truth label of the latest particle.
func (ds *Dataset) AddExtMCLabel(l mcparticle.ExtLabel) (table.Index, error) {
	if ds.extMCLabels.Len() >= ds.particles.Len() {
		err := &ErrMisalignedCompanion{
			Base: particle.Tag, Companion: mcparticle.ExtLabelTag,
			BaseLen: ds.particles.Len(), CompLen: ds.extMCLabels.Len() + 1,
		}
		ds.metrics.RecordAppend(mcparticle.ExtLabelTag.Description, err)
		ds.logger.LogAppend(mcparticle.ExtLabelTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	if err := ds.extMCParticles.CheckBounds(l.ExtMCParticleID, true); err != nil {
		err = &ErrDanglingReference{
			From: mcparticle.ExtLabelTag, To: mcparticle.ExtTag,
			Row: table.Index(ds.extMCLabels.Len()), Ref: l.ExtMCParticleID,
			cause: err,
		}
		ds.metrics.RecordAppend(mcparticle.ExtLabelTag.Description, err)
		ds.logger.LogAppend(mcparticle.ExtLabelTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.extMCLabels.Append(l)
	ds.metrics.RecordAppend(mcparticle.ExtLabelTag.Description, err)
	ds.logger.LogAppend(mcparticle.ExtLabelTag, i, err)
	return i, err
}

// AddCandidate appends one heavy-flavor candidate. Prong ids reference the
// producer's track table and are not resolvable here; only the collision
// reference is bounds-checked.
func (ds *Dataset) AddCandidate(c hf.Candidate) (table.Index, error) {
	if err := ds.collisions.CheckBounds(c.CollisionID, false); err != nil {
		err = &ErrDanglingReference{
			From: hf.Tag, To: collision.Tag,
			Row: table.Index(ds.candidates.Len()), Ref: c.CollisionID,
			cause: err,
		}
		ds.metrics.RecordAppend(hf.Tag.Description, err)
		ds.logger.LogAppend(hf.Tag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.candidates.Append(c)
	ds.metrics.RecordAppend(hf.Tag.Description, err)
	ds.logger.LogAppend(hf.Tag, i, err)
	return i, err
}

// AddCandidateMC appends the truth companion of the latest candidate.
func (ds *Dataset) AddCandidateMC(c hf.CandidateMC) (table.Index, error) {
	if ds.candidateMC.Len() >= ds.candidates.Len() {
		err := &ErrMisalignedCompanion{
			Base: hf.Tag, Companion: hf.MCTag,
			BaseLen: ds.candidates.Len(), CompLen: ds.candidateMC.Len() + 1,
		}
		ds.metrics.RecordAppend(hf.MCTag.Description, err)
		ds.logger.LogAppend(hf.MCTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.candidateMC.Append(c)
	ds.metrics.RecordAppend(hf.MCTag.Description, err)
	ds.logger.LogAppend(hf.MCTag, i, err)
	return i, err
}

// AddCandidateMCGen appends one generator-level candidate record.
func (ds *Dataset) AddCandidateMCGen(c hf.CandidateMCGen) (table.Index, error) {
	if err := ds.collisions.CheckBounds(c.CollisionID, false); err != nil {
		err = &ErrDanglingReference{
			From: hf.MCGenTag, To: collision.Tag,
			Row: table.Index(ds.candidateMCGen.Len()), Ref: c.CollisionID,
			cause: err,
		}
		ds.metrics.RecordAppend(hf.MCGenTag.Description, err)
		ds.logger.LogAppend(hf.MCGenTag, table.NullIndex, err)
		return table.NullIndex, err
	}
	i, err := ds.candidateMCGen.Append(c)
	ds.metrics.RecordAppend(hf.MCGenTag.Description, err)
	ds.logger.LogAppend(hf.MCGenTag, i, err)
	return i, err
}

// AddParticleIndex appends one candidate-daughter track link.
func (ds *Dataset) AddParticleIndex(p hf.ParticleIndex) (table.Index, error) {
	i, err := ds.particleIndexes.Append(p)
	ds.metrics.RecordAppend(hf.ParticleIndexTag.Description, err)
	ds.logger.LogAppend(hf.ParticleIndexTag, i, err)
	return i, err
}

// AddResult appends one flat correlation-output row.
func (ds *Dataset) AddResult(r hf.Result) (table.Index, error) {
	i, err := ds.results.Append(r)
	ds.metrics.RecordAppend(hf.ResultTag.Description, err)
	ds.logger.LogAppend(hf.ResultTag, i, err)
	return i, err
}

// companionFits rejects a per-collision companion row appended before its
// collision exists.
func (ds *Dataset) companionFits(compLen int, companion table.Tag) error {
	if ds.collisions.Len() == 0 {
		return ErrNoCollision
	}
	if compLen >= ds.collisions.Len() {
		return &ErrMisalignedCompanion{
			Base: collision.Tag, Companion: companion,
			BaseLen: ds.collisions.Len(), CompLen: compLen + 1,
		}
	}
	return nil
}

// Join hooks.

// ParticlesOf iterates the particles of one collision.
func (ds *Dataset) ParticlesOf(col table.Index) iter.Seq2[table.Index, particle.Particle] {
	return func(yield func(table.Index, particle.Particle) bool) {
		for i, p := range ds.particles.All() {
			if p.CollisionID != col {
				continue
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// CandidatesOf iterates the heavy-flavor candidates of one collision.
func (ds *Dataset) CandidatesOf(col table.Index) iter.Seq2[table.Index, hf.Candidate] {
	return func(yield func(table.Index, hf.Candidate) bool) {
		for i, c := range ds.candidates.All() {
			if c.CollisionID != col {
				continue
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

// ChildrenOf resolves a particle's child-index list into rows.
func (ds *Dataset) ChildrenOf(p particle.Particle) iter.Seq2[table.Index, particle.Particle] {
	return func(yield func(table.Index, particle.Particle) bool) {
		for _, ci := range p.Children {
			child, err := ds.particles.Row(ci)
			if err != nil {
				continue
			}
			if !yield(ci, child) {
				return
			}
		}
	}
}

// IsChild reports whether candidate is one of p's children, the check the
// pairing stage runs to exclude auto-correlated combinations.
func (ds *Dataset) IsChild(p particle.Particle, candidate table.Index) bool {
	for _, ci := range p.Children {
		if ci == candidate {
			return true
		}
	}
	return false
}

// CandidateTruthOf resolves the truth companion of a candidate row.
// The second return is false when the candidate has no truth companion yet.
func (ds *Dataset) CandidateTruthOf(row table.Index) (hf.CandidateMC, bool, error) {
	if err := ds.candidates.CheckBounds(row, false); err != nil {
		return hf.CandidateMC{}, false, err
	}
	if int(row) >= ds.candidateMC.Len() {
		return hf.CandidateMC{}, false, nil
	}
	mc, err := ds.candidateMC.Row(row)
	if err != nil {
		return hf.CandidateMC{}, false, err
	}
	return mc, true, nil
}

// TruthOf resolves the truth particle of a reconstructed particle row.
// The second return is false when the particle has no truth match.
func (ds *Dataset) TruthOf(row table.Index) (mcparticle.MCParticle, bool, error) {
	l, err := ds.mcLabels.Row(row)
	if err != nil {
		return mcparticle.MCParticle{}, false, err
	}
	if !l.MCParticleID.Valid() {
		return mcparticle.MCParticle{}, false, nil
	}
	mc, err := ds.mcParticles.Row(l.MCParticleID)
	if err != nil {
		return mcparticle.MCParticle{}, false, err
	}
	return mc, true, nil
}

// ExtTruthOf resolves the extended truth record of a reconstructed particle.
func (ds *Dataset) ExtTruthOf(row table.Index) (mcparticle.ExtMCParticle, bool, error) {
	l, err := ds.extMCLabels.Row(row)
	if err != nil {
		return mcparticle.ExtMCParticle{}, false, err
	}
	if !l.ExtMCParticleID.Valid() {
		return mcparticle.ExtMCParticle{}, false, nil
	}
	mc, err := ds.extMCParticles.Row(l.ExtMCParticleID)
	if err != nil {
		return mcparticle.ExtMCParticle{}, false, err
	}
	return mc, true, nil
}

// ParticlesPassing returns the particle rows whose selection mask has every
// given cut bit set.
func (ds *Dataset) ParticlesPassing(bits ...uint) *roaring.Bitmap {
	return ds.cutIndex.Passing(bits...)
}

// ParticlesPassingPID returns the particle rows whose PID mask has every
// given cut bit set.
func (ds *Dataset) ParticlesPassingPID(bits ...uint) *roaring.Bitmap {
	return ds.pidIndex.Passing(bits...)
}

// Validate re-checks the cross-table consistency of the whole dataset: the
// companion tables may not run ahead of their base tables and every index
// column must resolve. Table groups are checked concurrently.
func (ds *Dataset) Validate(ctx context.Context) error {
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ds.validateCollisionGroup(ctx) })
	g.Go(func() error { return ds.validateParticleGroup(ctx) })
	g.Go(func() error { return ds.validateHFGroup(ctx) })

	err := g.Wait()
	ds.metrics.RecordValidate(time.Since(start), err)
	ds.logger.LogValidate(numTables, err)
	return err
}

func (ds *Dataset) validateCollisionGroup(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base := ds.collisions.Len()
	for _, comp := range []struct {
		tag table.Tag
		len int
	}{
		{collision.MaskTag, ds.colMasks.Len()},
		{collision.DownSampleTag, ds.downsamples.Len()},
		{mixing.HashTag, ds.hashes.Len()},
	} {
		if comp.len > base {
			return &ErrMisalignedCompanion{
				Base: collision.Tag, Companion: comp.tag,
				BaseLen: base, CompLen: comp.len,
			}
		}
	}
	return nil
}

func (ds *Dataset) validateParticleGroup(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base := ds.particles.Len()
	for _, comp := range []struct {
		tag table.Tag
		len int
	}{
		{particle.ExtTag, ds.extParticles.Len()},
		{mcparticle.LabelTag, ds.mcLabels.Len()},
		{mcparticle.ExtLabelTag, ds.extMCLabels.Len()},
	} {
		if comp.len > base {
			return &ErrMisalignedCompanion{
				Base: particle.Tag, Companion: comp.tag,
				BaseLen: base, CompLen: comp.len,
			}
		}
	}

	for i, p := range ds.particles.All() {
		if err := ds.collisions.CheckBounds(p.CollisionID, true); err != nil {
			return &ErrDanglingReference{
				From: particle.Tag, To: collision.Tag,
				Row: i, Ref: p.CollisionID, cause: err,
			}
		}
	}
	for i, l := range ds.mcLabels.All() {
		if err := ds.mcParticles.CheckBounds(l.MCParticleID, true); err != nil {
			return &ErrDanglingReference{
				From: mcparticle.LabelTag, To: mcparticle.Tag,
				Row: i, Ref: l.MCParticleID, cause: err,
			}
		}
	}
	for i, l := range ds.extMCLabels.All() {
		if err := ds.extMCParticles.CheckBounds(l.ExtMCParticleID, true); err != nil {
			return &ErrDanglingReference{
				From: mcparticle.ExtLabelTag, To: mcparticle.ExtTag,
				Row: i, Ref: l.ExtMCParticleID, cause: err,
			}
		}
	}
	return nil
}

func (ds *Dataset) validateHFGroup(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ds.candidateMC.Len() > ds.candidates.Len() {
		return &ErrMisalignedCompanion{
			Base: hf.Tag, Companion: hf.MCTag,
			BaseLen: ds.candidates.Len(), CompLen: ds.candidateMC.Len(),
		}
	}
	for i, c := range ds.candidates.All() {
		if err := ds.collisions.CheckBounds(c.CollisionID, false); err != nil {
			return &ErrDanglingReference{
				From: hf.Tag, To: collision.Tag,
				Row: i, Ref: c.CollisionID, cause: err,
			}
		}
	}
	for i, c := range ds.candidateMCGen.All() {
		if err := ds.collisions.CheckBounds(c.CollisionID, false); err != nil {
			return &ErrDanglingReference{
				From: hf.MCGenTag, To: collision.Tag,
				Row: i, Ref: c.CollisionID, cause: err,
			}
		}
	}
	return nil
}
