package particle

import (
	"github.com/femtodream/femtotables/kinematics"
	"github.com/femtodream/femtotables/table"
)

// NSigma holds the per-species separation between the measured detector
// response and the expected one, in standard deviations.
type NSigma struct {
	Electron float32
	Pion     float32
	Kaon     float32
	Proton   float32
	Deuteron float32
}

// ExtParticle carries the track-quality and PID diagnostics joinable to the
// particle table. Producers append it row-parallel to Particle.
type ExtParticle struct {
	// Sign is the charge sign of the track.
	Sign int8
	// TPCNClsFound is the number of TPC clusters found.
	TPCNClsFound uint8
	// TPCNClsFindable is the number of findable TPC clusters.
	TPCNClsFindable uint8
	// TPCNClsCrossedRows is the number of crossed TPC pad rows.
	TPCNClsCrossedRows uint8
	// TPCNClsShared is the number of TPC clusters shared with other tracks.
	TPCNClsShared uint8
	// TPCInnerParam is the momentum at the inner wall of the TPC in GeV/c.
	TPCInnerParam float32
	// ITSNCls is the number of ITS clusters.
	ITSNCls uint8
	// ITSNClsInnerBarrel is the number of ITS clusters in the inner barrel.
	ITSNClsInnerBarrel uint8
	// DCAxy is the transverse distance of closest approach in cm.
	DCAxy float32
	// DCAz is the longitudinal distance of closest approach in cm.
	DCAz float32
	// TPCSignal is the specific energy loss measured in the TPC.
	TPCSignal float32
	// TPC holds the TPC nSigma values per species hypothesis.
	TPC NSigma
	// TOF holds the TOF nSigma values per species hypothesis.
	TOF NSigma
	// DaughDCA is the DCA between the V0 daughters in cm.
	DaughDCA float32
	// TransRadius is the transverse radius of the decay vertex in cm.
	TransRadius float32
	// DecayVtxX, DecayVtxY, DecayVtxZ locate the decay vertex in cm.
	DecayVtxX float32
	DecayVtxY float32
	DecayVtxZ float32
	// MKaon is the invariant mass under the kaon hypothesis.
	MKaon float32
}

// Validate implements table.Row. Diagnostic rows carry no enums or index
// columns; row-parallel alignment with the particle table is checked at the
// dataset level.
func (e ExtParticle) Validate(self table.Index, size int) error {
	return nil
}

// CrossedRowsOverFindable returns the ratio of crossed TPC pad rows over
// findable clusters, computed on read. Zero findable clusters yields +Inf
// (or NaN for 0/0) per IEEE float32 division.
func (e ExtParticle) CrossedRowsOverFindable() float32 {
	return kinematics.CrossedRowsOverFindable(e.TPCNClsCrossedRows, e.TPCNClsFindable)
}
