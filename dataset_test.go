package femtotables

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/femtodream/femtotables/collision"
	"github.com/femtodream/femtotables/hf"
	"github.com/femtodream/femtotables/mcparticle"
	"github.com/femtodream/femtotables/mixing"
	"github.com/femtodream/femtotables/particle"
	"github.com/femtodream/femtotables/table"
)

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	return New().WithCapacity(8).Build()
}

func addCollision(t *testing.T, ds *Dataset, posZ float32) table.Index {
	t.Helper()
	i, err := ds.AddCollision(collision.Collision{
		PosZ:    posZ,
		MultV0M: 1500,
		MultNtr: 42,
	})
	require.NoError(t, err)
	return i
}

func TestDataset_CollisionCompanions(t *testing.T) {
	ds := newTestDataset(t)

	_, err := ds.AddColMask(collision.Mask{})
	require.ErrorIs(t, err, ErrNoCollision)

	col := addCollision(t, ds, 2.5)
	assert.Equal(t, table.Index(0), col)

	mi, err := ds.AddColMask(collision.Mask{TrackOne: 0b101})
	require.NoError(t, err)
	assert.Equal(t, col, mi)

	// One companion row per collision, never more.
	_, err = ds.AddColMask(collision.Mask{})
	var misaligned *ErrMisalignedCompanion
	require.ErrorAs(t, err, &misaligned)
	assert.Equal(t, collision.MaskTag, misaligned.Companion)

	_, err = ds.AddDownSample(collision.DownSample{Keep: true})
	require.NoError(t, err)

	hi, err := ds.AddHash(mixing.Hash{Bin: 7})
	require.NoError(t, err)
	assert.Equal(t, col, hi)
	assert.Equal(t, []int32{7}, ds.Pools().Bins())
}

func TestDataset_AddParticle(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 0)

	t.Run("dangling collision reference", func(t *testing.T) {
		_, err := ds.AddParticle(particle.Particle{
			CollisionID: 99,
			Kind:        particle.KindTrack,
		})
		var dangling *ErrDanglingReference
		require.ErrorAs(t, err, &dangling)
		assert.Equal(t, collision.Tag, dangling.To)
		assert.Equal(t, table.Index(99), dangling.Ref)
	})

	t.Run("null collision reference accepted", func(t *testing.T) {
		_, err := ds.AddParticle(particle.Particle{
			CollisionID: table.NullIndex,
			Kind:        particle.KindTrack,
		})
		require.NoError(t, err)
	})

	t.Run("cut masks indexed", func(t *testing.T) {
		i, err := ds.AddParticle(particle.Particle{
			CollisionID: col,
			Pt:          1.2,
			Kind:        particle.KindTrack,
			Cut:         0b110,
			PIDCut:      0b001,
		})
		require.NoError(t, err)

		passing := ds.ParticlesPassing(1, 2)
		assert.True(t, passing.Contains(uint32(i)))
		assert.False(t, ds.ParticlesPassing(0).Contains(uint32(i)))
		assert.True(t, ds.ParticlesPassingPID(0).Contains(uint32(i)))
	})
}

func TestDataset_ExtParticleAlignment(t *testing.T) {
	ds := newTestDataset(t)

	_, err := ds.AddExtParticle(particle.ExtParticle{Sign: 1})
	var misaligned *ErrMisalignedCompanion
	require.ErrorAs(t, err, &misaligned)
	assert.Equal(t, particle.Tag, misaligned.Base)
	assert.Equal(t, particle.ExtTag, misaligned.Companion)

	col := addCollision(t, ds, 0)
	_, err = ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack})
	require.NoError(t, err)

	_, err = ds.AddExtParticle(particle.ExtParticle{Sign: -1, TPCNClsCrossedRows: 120, TPCNClsFindable: 150})
	require.NoError(t, err)
}

func TestDataset_TruthResolution(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 0)

	p0, err := ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack})
	require.NoError(t, err)
	p1, err := ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack})
	require.NoError(t, err)

	mc, err := ds.AddMCParticle(mcparticle.MCParticle{
		Origin: mcparticle.OriginPrimary,
		PDG:    2212,
		Pt:     1.4,
	})
	require.NoError(t, err)

	// p0 matched, p1 unmatched.
	_, err = ds.AddMCLabel(mcparticle.Label{MCParticleID: mc})
	require.NoError(t, err)
	_, err = ds.AddMCLabel(mcparticle.Label{MCParticleID: table.NullIndex})
	require.NoError(t, err)

	truth, ok, err := ds.TruthOf(p0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(2212), truth.PDG)

	_, ok, err = ds.TruthOf(p1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ds.AddMCLabel(mcparticle.Label{MCParticleID: 42})
	var dangling *ErrDanglingReference
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, mcparticle.Tag, dangling.To)
}

func TestDataset_Children(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 0)

	pos, err := ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindV0Child})
	require.NoError(t, err)
	neg, err := ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindV0Child})
	require.NoError(t, err)

	v0 := particle.Particle{
		CollisionID: col,
		Kind:        particle.KindV0,
		Children:    []table.Index{pos, neg},
		MLambda:     1.1157,
	}
	vi, err := ds.AddParticle(v0)
	require.NoError(t, err)

	var got []table.Index
	for ci := range ds.ChildrenOf(v0) {
		got = append(got, ci)
	}
	assert.Equal(t, []table.Index{pos, neg}, got)

	assert.True(t, ds.IsChild(v0, pos))
	assert.False(t, ds.IsChild(v0, vi))
}

func TestDataset_Candidates(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 0)

	prong := func(id table.Index) hf.Prong {
		return hf.Prong{ID: id, Pt: 1, Eta: 0.2, Phi: 0.3}
	}

	_, err := ds.AddCandidate(hf.Candidate{
		CollisionID: table.NullIndex,
		Prongs:      [hf.MaxProngs]hf.Prong{prong(0), prong(1)},
	})
	var dangling *ErrDanglingReference
	require.ErrorAs(t, err, &dangling)

	ci, err := ds.AddCandidate(hf.Candidate{
		CollisionID: col,
		Charge:      1,
		Prongs:      [hf.MaxProngs]hf.Prong{prong(0), prong(1)},
		M:           1.8648,
	})
	require.NoError(t, err)

	_, err = ds.AddCandidateMC(hf.CandidateMC{FlagMC: 1})
	require.NoError(t, err)
	_, err = ds.AddCandidateMC(hf.CandidateMC{})
	var misaligned *ErrMisalignedCompanion
	require.ErrorAs(t, err, &misaligned)

	var found []table.Index
	for i := range ds.CandidatesOf(col) {
		found = append(found, i)
	}
	assert.Equal(t, []table.Index{ci}, found)
}

func TestDataset_CandidateTruthReadback(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 0)

	prongs := [hf.MaxProngs]hf.Prong{{ID: 0, Pt: 1}, {ID: 1, Pt: 0.8}}
	first, err := ds.AddCandidate(hf.Candidate{CollisionID: col, Prongs: prongs})
	require.NoError(t, err)
	_, err = ds.AddCandidateMC(hf.CandidateMC{FlagMC: 2, OriginRec: 1})
	require.NoError(t, err)

	// Second candidate has no truth companion yet.
	second, err := ds.AddCandidate(hf.Candidate{CollisionID: col, Prongs: prongs})
	require.NoError(t, err)

	require.Equal(t, 1, ds.CandidateMCs().Len())
	mc, err := ds.CandidateMCs().Row(first)
	require.NoError(t, err)
	assert.Equal(t, int8(2), mc.FlagMC)

	truth, ok, err := ds.CandidateTruthOf(first)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int8(1), truth.OriginRec)

	_, ok, err = ds.CandidateTruthOf(second)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ds.CandidateTruthOf(99)
	var oor *table.ErrOutOfRange
	require.ErrorAs(t, err, &oor)

	gi, err := ds.AddCandidateMCGen(hf.CandidateMCGen{CollisionID: col, Pt: 2.5})
	require.NoError(t, err)
	gen, err := ds.CandidateMCGens().Row(gi)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, float64(gen.Pt), 1e-6)

	li, err := ds.AddParticleIndex(hf.ParticleIndex{TrackID: 77})
	require.NoError(t, err)
	link, err := ds.ParticleIndexes().Row(li)
	require.NoError(t, err)
	assert.Equal(t, int32(77), link.TrackID)
}

func TestDataset_RejectionLogging(t *testing.T) {
	var buf bytes.Buffer
	ds := New().
		WithLogger(NewLogger(slog.NewTextHandler(&buf, nil))).
		Build()

	_, err := ds.AddColMask(collision.Mask{})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "append rejected")
	assert.Contains(t, buf.String(), collision.MaskTag.Description)

	buf.Reset()
	addCollision(t, ds, 0)
	_, err = ds.AddParticle(particle.Particle{CollisionID: 5, Kind: particle.KindTrack})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "append rejected")
	assert.Contains(t, buf.String(), particle.Tag.Description)
}

func TestDataset_Validate(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 1.0)
	_, err := ds.AddColMask(collision.Mask{})
	require.NoError(t, err)
	_, err = ds.AddHash(mixing.Hash{Bin: 3})
	require.NoError(t, err)
	_, err = ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack})
	require.NoError(t, err)
	_, err = ds.AddMCLabel(mcparticle.Label{MCParticleID: table.NullIndex})
	require.NoError(t, err)

	require.NoError(t, ds.Validate(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ds.Validate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDataset_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	ds := New().WithMetrics(metrics).Build()

	_, err := ds.AddColMask(collision.Mask{})
	require.Error(t, err)
	addCollision(t, ds, 0)
	require.NoError(t, ds.Validate(context.Background()))

	assert.Equal(t, int64(2), metrics.AppendCount.Load())
	assert.Equal(t, int64(1), metrics.AppendErrors.Load())
	assert.Equal(t, int64(1), metrics.ValidateCount.Load())
	assert.Equal(t, int64(0), metrics.ValidateErrors.Load())
}

func TestBuilder_Immutable(t *testing.T) {
	base := New()
	withCap := base.WithCapacity(1)

	assert.NotEqual(t, base, withCap)
	assert.NotNil(t, base.Build())
	assert.NotNil(t, withCap.Build())
}

func TestDataset_DerivedColumnsEndToEnd(t *testing.T) {
	ds := newTestDataset(t)
	col := addCollision(t, ds, 0)

	i, err := ds.AddParticle(particle.Particle{
		CollisionID: col,
		Pt:          2.0,
		Eta:         0.5,
		Phi:         float32(math.Pi / 4),
		Kind:        particle.KindTrack,
	})
	require.NoError(t, err)

	p, err := ds.Particles().Row(i)
	require.NoError(t, err)
	assert.InDelta(t, 2.0*math.Cosh(0.5), float64(p.P()), 1e-6)
	assert.InDelta(t, 2.0*math.Sinh(0.5), float64(p.Pz()), 1e-6)
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ErrDanglingReference{
		From: particle.Tag, To: collision.Tag,
		Row: 3, Ref: 9, cause: cause,
	}
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), particle.Tag.Description)

	m := &ErrMisalignedCompanion{
		Base: collision.Tag, Companion: mixing.HashTag,
		BaseLen: 1, CompLen: 2,
	}
	assert.Contains(t, m.Error(), mixing.HashTag.Description)
}
