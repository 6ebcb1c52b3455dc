package particle

import "fmt"

// Kind distinguishes the particle types sharing the particle table.
type Kind uint8

const (
	// KindTrack is a primary track.
	KindTrack Kind = iota
	// KindV0 is a V0 candidate.
	KindV0
	// KindV0Child is a daughter track of a V0.
	KindV0Child
	// KindCascade is a cascade candidate.
	KindCascade
	// KindCascadeBachelor is the bachelor track of a cascade.
	KindCascadeBachelor
	// KindCharmHadron is a heavy-flavor decay daughter.
	KindCharmHadron

	numKinds
)

// NumKinds is the number of declared particle kinds.
const NumKinds = int(numKinds)

// kindNames are the histogram-directory names of the particle kinds.
var kindNames = [NumKinds]string{
	"Tracks",
	"V0",
	"V0Child",
	"Cascade",
	"CascadeBachelor",
	"CharmHadron",
}

// tempFitVarNames are the histogram paths of the template-fit observable per
// kind: DCA_xy for track-like kinds, the cosine of the pointing angle for
// V0s and cascades. Charm hadrons carry no template-fit histogram.
var tempFitVarNames = [NumKinds - 1]string{
	"/hDCAxy",
	"/hCPA",
	"/hDCAxy",
	"/hCPA",
	"/hDCAxy",
}

// String returns the histogram-directory name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// TempFitVarName returns the histogram path of the kind's template-fit
// observable. The second return is false for kinds without one.
func (k Kind) TempFitVarName() (string, bool) {
	if int(k) < len(tempFitVarNames) {
		return tempFitVarNames[k], true
	}
	return "", false
}

// ErrInvalidKind indicates a particle type outside the declared enumeration.
type ErrInvalidKind struct {
	Kind Kind
}

func (e *ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid particle kind: %d", e.Kind)
}

// Check rejects values outside the declared enumeration.
func (k Kind) Check() error {
	if k >= numKinds {
		return &ErrInvalidKind{Kind: k}
	}
	return nil
}

// ChildKind distinguishes V0 children when naming histograms.
type ChildKind uint8

const (
	// ChildNone marks a track that is not a V0 child.
	ChildNone ChildKind = iota
	// ChildPos marks the positive V0 child.
	ChildPos
	// ChildNeg marks the negative V0 child.
	ChildNeg

	numChildKinds
)

// NumChildKinds is the number of declared child kinds.
const NumChildKinds = int(numChildKinds)

var childKindNames = [NumChildKinds]string{"Trk", "Pos", "Neg"}

// String returns the histogram name fragment of the child kind.
func (k ChildKind) String() string {
	if int(k) < len(childKindNames) {
		return childKindNames[k]
	}
	return "Unknown"
}

// MomentumKind names the momentum definition used when filling PID plots.
type MomentumKind uint8

const (
	// MomentumPt is the transverse momentum.
	MomentumPt MomentumKind = iota
	// MomentumPReco is the reconstructed momentum propagated to the vertex.
	MomentumPReco
	// MomentumPTPC is the momentum at the inner wall of the TPC.
	MomentumPTPC
)
