// This file implements the fluent builder API for assembling datasets.
// Builders are immutable - each method returns a new builder with the
// updated configuration.
package femtotables

import (
	"github.com/femtodream/femtotables/collision"
	"github.com/femtodream/femtotables/cuts"
	"github.com/femtodream/femtotables/hf"
	"github.com/femtodream/femtotables/mcparticle"
	"github.com/femtodream/femtotables/mixing"
	"github.com/femtodream/femtotables/particle"
	"github.com/femtodream/femtotables/table"
)

// defaultCapacity is the initial per-table row capacity: roughly one
// mid-multiplicity event's worth of tracks.
const defaultCapacity = 256

// New creates a dataset builder with default configuration.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	ds := femtotables.New().
//	    WithLogger(femtotables.NewTextLogger(slog.LevelDebug)).
//	    WithCapacity(1024).
//	    Build()
func New() Builder {
	return Builder{
		capacity: defaultCapacity,
	}
}

// Builder is an immutable fluent builder for creating Dataset instances.
type Builder struct {
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

// WithCapacity sets the initial row capacity of every table.
// Larger values avoid re-allocation when producing high-multiplicity events.
func (b Builder) WithCapacity(n int) Builder {
	if n > 0 {
		b.capacity = n
	}
	return b
}

// WithLogger sets the logger used by the dataset's producer hooks.
func (b Builder) WithLogger(l *Logger) Builder {
	b.logger = l
	return b
}

// WithMetrics sets the metrics collector notified on appends and validation.
func (b Builder) WithMetrics(m MetricsCollector) Builder {
	b.metrics = m
	return b
}

// Build assembles an empty dataset with one instance of every declared table.
func (b Builder) Build() *Dataset {
	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := b.metrics
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	return &Dataset{
		logger:  logger,
		metrics: metrics,

		collisions:  table.New[collision.Collision](collision.Tag, b.capacity),
		colMasks:    table.New[collision.Mask](collision.MaskTag, b.capacity),
		downsamples: table.New[collision.DownSample](collision.DownSampleTag, b.capacity),

		particles:    table.New[particle.Particle](particle.Tag, b.capacity),
		extParticles: table.New[particle.ExtParticle](particle.ExtTag, b.capacity),

		mcParticles:    table.New[mcparticle.MCParticle](mcparticle.Tag, b.capacity),
		extMCParticles: table.New[mcparticle.ExtMCParticle](mcparticle.ExtTag, b.capacity),
		mcLabels:       table.New[mcparticle.Label](mcparticle.LabelTag, b.capacity),
		extMCLabels:    table.New[mcparticle.ExtLabel](mcparticle.ExtLabelTag, b.capacity),

		candidates:      table.New[hf.Candidate](hf.Tag, b.capacity),
		candidateMC:     table.New[hf.CandidateMC](hf.MCTag, b.capacity),
		candidateMCGen:  table.New[hf.CandidateMCGen](hf.MCGenTag, b.capacity),
		particleIndexes: table.New[hf.ParticleIndex](hf.ParticleIndexTag, b.capacity),
		results:         table.New[hf.Result](hf.ResultTag, b.capacity),

		hashes: table.New[mixing.Hash](mixing.HashTag, b.capacity),

		pools:    mixing.NewPools(),
		cutIndex: cuts.NewIndex(),
		pidIndex: cuts.NewIndex(),
	}
}
