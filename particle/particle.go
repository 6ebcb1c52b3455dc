package particle

import (
	"github.com/femtodream/femtotables/cuts"
	"github.com/femtodream/femtotables/kinematics"
	"github.com/femtodream/femtotables/table"
)

// Table tags of the track-level tables.
var (
	Tag    = table.Tag{Origin: table.OriginAOD, Description: "FDPARTICLE"}
	ExtTag = table.Tag{Origin: table.OriginAOD, Description: "FDEXTPARTICLE"}
)

// Particle is one reconstructed track, V0, cascade or heavy-flavor decay
// daughter. Base kinematics are stored; everything else is derived on read.
type Particle struct {
	// CollisionID references the parent collision row, NullIndex if the
	// particle is not associated to a collision.
	CollisionID table.Index
	// Pt is the transverse momentum in GeV/c.
	Pt float32
	// Eta is the pseudorapidity.
	Eta float32
	// Phi is the azimuthal angle.
	Phi float32
	// Kind discriminates the particle type.
	Kind Kind
	// Cut is the bit-wise container of passed selection criteria.
	Cut cuts.Mask
	// PIDCut is the bit-wise container of passed PID criteria. Kept
	// separate from Cut so the two can be filtered independently.
	PIDCut cuts.Mask
	// TempFitVar is the template-fitting observable; DCA_xy for tracks,
	// the cosine of the pointing angle for V0s and cascades.
	TempFitVar float32
	// Children holds row indices of owned child particles within the same
	// table, used to exclude auto-correlated combinations.
	Children []table.Index
	// MLambda is the invariant mass under the lambda hypothesis.
	MLambda float32
	// MAntiLambda is the invariant mass under the antilambda hypothesis.
	MAntiLambda float32
}

// Validate implements table.Row: the kind must be declared and the child
// list may only reference existing rows, never the row itself.
func (p Particle) Validate(self table.Index, size int) error {
	if err := p.Kind.Check(); err != nil {
		return err
	}
	return table.ValidateChildren(p.Children, self, size)
}

// Theta returns the polar angle, computed from the stored pseudorapidity.
func (p Particle) Theta() float32 {
	return kinematics.Theta(p.Eta)
}

// Px returns the momentum along x in GeV/c.
func (p Particle) Px() float32 {
	return kinematics.Px(p.Pt, p.Phi)
}

// Py returns the momentum along y in GeV/c.
func (p Particle) Py() float32 {
	return kinematics.Py(p.Pt, p.Phi)
}

// Pz returns the momentum along the beam axis in GeV/c.
func (p Particle) Pz() float32 {
	return kinematics.Pz(p.Pt, p.Eta)
}

// P returns the total momentum in GeV/c.
func (p Particle) P() float32 {
	return kinematics.P(p.Pt, p.Eta)
}

func init() {
	table.Register(table.Descriptor{
		Name:   "FDParticles",
		Origin: Tag.Origin,
		Tag:    Tag.Description,
		Columns: []string{
			"fdCollisionId", "pt", "eta", "phi", "partType",
			"cut", "pidcut", "tempFitVar", "childrenIds",
			"mLambda", "mAntiLambda",
		},
	})
	table.Register(table.Descriptor{
		Name:   "FDExtParticles",
		Origin: ExtTag.Origin,
		Tag:    ExtTag.Description,
		Columns: []string{
			"sign",
			"tpcNClsFound", "tpcNClsFindable", "tpcNClsCrossedRows", "tpcNClsShared",
			"tpcInnerParam",
			"itsNCls", "itsNClsInnerBarrel",
			"dcaXY", "dcaZ", "tpcSignal",
			"tpcNSigmaPi", "tpcNSigmaKa", "tpcNSigmaPr",
			"tofNSigmaPi", "tofNSigmaKa", "tofNSigmaPr",
			"tpcNSigmaEl", "tpcNSigmaDe", "tofNSigmaEl", "tofNSigmaDe",
			"daughDCA", "transRadius",
			"decayVtxX", "decayVtxY", "decayVtxZ",
			"mKaon",
		},
	})
}
