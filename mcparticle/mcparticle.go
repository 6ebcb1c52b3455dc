package mcparticle

import (
	"github.com/femtodream/femtotables/kinematics"
	"github.com/femtodream/femtotables/table"
)

// Table tags of the MC-truth tables.
var (
	Tag         = table.Tag{Origin: table.OriginAOD, Description: "FDMCPARTICLE"}
	ExtTag      = table.Tag{Origin: table.OriginAOD, Description: "FDEXTMCPARTICLE"}
	LabelTag    = table.Tag{Origin: table.OriginAOD, Description: "FDMCLabel"}
	ExtLabelTag = table.Tag{Origin: table.OriginAOD, Description: "FDExtMCLabel"}
)

// MCParticle is one generator-level particle referenced by a reconstructed
// particle.
type MCParticle struct {
	// Origin classifies the production mechanism.
	Origin Origin
	// PDG is the Particle Data Group code.
	PDG int32
	// Pt, Eta, Phi are the generated kinematics.
	Pt  float32
	Eta float32
	Phi float32
}

// Validate implements table.Row: the origin must be declared.
func (p MCParticle) Validate(self table.Index, size int) error {
	return p.Origin.Check()
}

// Theta returns the generated polar angle, computed on read.
func (p MCParticle) Theta() float32 {
	return kinematics.Theta(p.Eta)
}

// Px returns the generated momentum along x in GeV/c.
func (p MCParticle) Px() float32 {
	return kinematics.Px(p.Pt, p.Phi)
}

// Py returns the generated momentum along y in GeV/c.
func (p MCParticle) Py() float32 {
	return kinematics.Py(p.Pt, p.Phi)
}

// Pz returns the generated momentum along the beam axis in GeV/c.
func (p MCParticle) Pz() float32 {
	return kinematics.Pz(p.Pt, p.Eta)
}

// P returns the generated total momentum in GeV/c.
func (p MCParticle) P() float32 {
	return kinematics.P(p.Pt, p.Eta)
}

// ExtMCParticle is the debug companion carrying the PDG code of the
// top-level mother of the decay chain.
type ExtMCParticle struct {
	MotherPDG int32
}

// Validate implements table.Row.
func (p ExtMCParticle) Validate(self table.Index, size int) error {
	return nil
}

// Label links a reconstructed particle row to its truth row. The table is
// row-parallel to the particle table; MCParticleID is NullIndex when no
// truth match exists.
type Label struct {
	MCParticleID table.Index
}

// Validate implements table.Row. Bounds against the MC-particle table are
// checked at the dataset level, where both tables are visible.
func (l Label) Validate(self table.Index, size int) error {
	return nil
}

// ExtLabel links a reconstructed particle row to its extended truth row.
type ExtLabel struct {
	ExtMCParticleID table.Index
}

// Validate implements table.Row.
func (l ExtLabel) Validate(self table.Index, size int) error {
	return nil
}

func init() {
	table.Register(table.Descriptor{
		Name:   "FDMCParticles",
		Origin: Tag.Origin,
		Tag:    Tag.Description,
		Columns: []string{
			"partOriginMCTruth", "pdgMCTruth", "pt", "eta", "phi",
		},
	})
	table.Register(table.Descriptor{
		Name:    "FDExtMCParticles",
		Origin:  ExtTag.Origin,
		Tag:     ExtTag.Description,
		Columns: []string{"motherPDG"},
	})
	table.Register(table.Descriptor{
		Name:    "FDMCLabels",
		Origin:  LabelTag.Origin,
		Tag:     LabelTag.Description,
		Columns: []string{"fdMCParticleId"},
	})
	table.Register(table.Descriptor{
		Name:    "FDExtMCLabels",
		Origin:  ExtLabelTag.Origin,
		Tag:     ExtLabelTag.Description,
		Columns: []string{"fdExtMCParticleId"},
	})
}
