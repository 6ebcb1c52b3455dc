package hf

import (
	"fmt"

	"github.com/femtodream/femtotables/table"
)

// Table tags of the heavy-flavor tables.
var (
	Tag              = table.Tag{Origin: table.OriginAOD, Description: "FDHFCAND"}
	MCTag            = table.Tag{Origin: table.OriginAOD, Description: "FDHFCANDMC"}
	MCGenTag         = table.Tag{Origin: table.OriginAOD, Description: "FDHFCANDMCGEN"}
	ParticleIndexTag = table.Tag{Origin: table.OriginAOD, Description: "FDPARTICLEINDEX"}
	ResultTag        = table.Tag{Origin: table.OriginAOD, Description: "FDRESULTSHF"}
)

// MaxProngs is the largest prong multiplicity of a declared decay candidate.
const MaxProngs = 3

// Prong is one decay daughter of a candidate: the producer-track reference
// plus its stored kinematics. A 2-prong candidate leaves the third prong's
// ID at table.NullIndex.
type Prong struct {
	ID  table.Index
	Pt  float32
	Eta float32
	Phi float32
}

// Candidate is one reconstructed heavy-flavor decay candidate.
type Candidate struct {
	// CollisionID references the parent collision row.
	CollisionID table.Index
	// Charge is the net charge of the candidate.
	Charge int32
	// Prongs are the decay daughters; 2-prong candidates use the first two.
	Prongs [MaxProngs]Prong
	// SelFlag is the candidate selection-flag byte set by the selector.
	SelFlag int8
	// BDTBkg, BDTPrompt, BDTFD are the machine-learning discriminant scores
	// for the background, prompt and feed-down hypotheses.
	BDTBkg    float32
	BDTPrompt float32
	BDTFD     float32
	// M is the invariant mass in GeV/c^2.
	M float32
	// Pt is the transverse momentum in GeV/c.
	Pt float32
	// P is the total momentum in GeV/c.
	P float32
	// Eta is the pseudorapidity.
	Eta float32
	// Phi is the azimuthal angle.
	Phi float32
	// Y is the rapidity.
	Y float32
}

// Validate implements table.Row. Prong and collision references cross into
// other tables and are bounds-checked at the dataset level; a candidate must
// still carry at least its first two prongs.
func (c Candidate) Validate(self table.Index, size int) error {
	if !c.Prongs[0].ID.Valid() || !c.Prongs[1].ID.Valid() {
		return &ErrMissingProng{Candidate: self}
	}
	return nil
}

// NProngs returns the prong multiplicity of the candidate.
func (c Candidate) NProngs() int {
	n := 0
	for _, p := range c.Prongs {
		if p.ID.Valid() {
			n++
		}
	}
	return n
}

// ErrMissingProng indicates a candidate without its two leading prongs.
type ErrMissingProng struct {
	Candidate table.Index
}

func (e *ErrMissingProng) Error() string {
	return fmt.Sprintf("candidate %d: fewer than two prongs", e.Candidate)
}

// CandidateMC is the per-candidate truth companion.
type CandidateMC struct {
	// FlagMC is the decay-channel truth-matching flag.
	FlagMC int8
	// OriginRec is the reconstructed-origin code (prompt vs feed-down).
	OriginRec int8
}

// Validate implements table.Row.
func (c CandidateMC) Validate(self table.Index, size int) error {
	return nil
}

// CandidateMCGen is the generator-level companion of a candidate.
type CandidateMCGen struct {
	CollisionID table.Index
	Pt          float32
	Eta         float32
	Phi         float32
	Y           float32
	FlagMC      int8
	OriginGen   int8
}

// Validate implements table.Row.
func (c CandidateMCGen) Validate(self table.Index, size int) error {
	return nil
}

// ParticleIndex links a candidate daughter back to its producer track.
type ParticleIndex struct {
	TrackID int32
}

// Validate implements table.Row.
func (p ParticleIndex) Validate(self table.Index, size int) error {
	return nil
}

// Result is one row of the flat correlation output: a candidate paired with
// an associated particle, with the pair observables and event multiplicity
// flattened in.
type Result struct {
	// M, Pt are the candidate invariant mass and transverse momentum.
	M  float32
	Pt float32
	// PtAssoc is the associated particle's transverse momentum.
	PtAssoc float32
	// BDTBkg, BDTPrompt, BDTFD are the candidate's discriminant scores.
	BDTBkg    float32
	BDTPrompt float32
	BDTFD     float32
	// Correlation is the correlation observable of the pair.
	Correlation float32
	// KT and MT are the pair transverse-momentum-difference observables.
	KT float32
	MT float32
	// Mult and MultPercentile describe the event multiplicity.
	Mult           int32
	MultPercentile float32
	// PairSign is the charge-sign combination of the pair.
	PairSign int8
	// ProcessType tags the generator process of the pair.
	ProcessType int64
}

// Validate implements table.Row.
func (r Result) Validate(self table.Index, size int) error {
	return nil
}

func init() {
	table.Register(table.Descriptor{
		Name:   "FDHfCand",
		Origin: Tag.Origin,
		Tag:    Tag.Description,
		Columns: []string{
			"fdCollisionId", "charge",
			"prong0Id", "prong1Id", "prong2Id",
			"prong0Pt", "prong1Pt", "prong2Pt",
			"prong0Eta", "prong1Eta", "prong2Eta",
			"prong0Phi", "prong1Phi", "prong2Phi",
			"candidateSelFlag", "bdtBkg", "bdtPrompt", "bdtFD",
			"m", "pt", "p", "eta", "phi", "y",
		},
	})
	table.Register(table.Descriptor{
		Name:    "FDHfCandMC",
		Origin:  MCTag.Origin,
		Tag:     MCTag.Description,
		Columns: []string{"flagMc", "originMcRec"},
	})
	table.Register(table.Descriptor{
		Name:   "FDHfCandMCGen",
		Origin: MCGenTag.Origin,
		Tag:    MCGenTag.Description,
		Columns: []string{
			"fdCollisionId", "pt", "eta", "phi", "y", "flagMc", "originMcGen",
		},
	})
	table.Register(table.Descriptor{
		Name:    "FDParticlesIndex",
		Origin:  ParticleIndexTag.Origin,
		Tag:     ParticleIndexTag.Description,
		Columns: []string{"trackId"},
	})
	table.Register(table.Descriptor{
		Name:   "FDResultsHF",
		Origin: ResultTag.Origin,
		Tag:    ResultTag.Description,
		Columns: []string{
			"m", "pt", "ptAssoc", "bdtBkg", "bdtPrompt", "bdtFD",
			"correlation", "kT", "mT", "mult", "multPercentile",
			"partPairSign", "processType",
		},
	})
}
