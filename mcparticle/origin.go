package mcparticle

import "fmt"

// Origin classifies how a truth-matched particle was produced.
type Origin uint8

const (
	// OriginPrimary is a primary track or V0.
	OriginPrimary Origin = iota
	// OriginSecondary is a particle from a decay.
	OriginSecondary
	// OriginMaterial is a particle produced in detector material.
	OriginMaterial
	// OriginNotPrimary is any non-primary particle. Kept for compatibility
	// with producers that do not classify non-primaries differentially.
	OriginNotPrimary
	// OriginFake is a particle without the PDG code of the analysed species.
	OriginFake
	// OriginWrongCollision is a particle associated to the wrong collision.
	OriginWrongCollision
	// OriginSecondaryDaughterLambda is a daughter from a Lambda decay.
	OriginSecondaryDaughterLambda
	// OriginSecondaryDaughterSigmaPlus is a daughter from a Sigma+ decay.
	OriginSecondaryDaughterSigmaPlus
	// OriginElse catches everything the producer could not classify.
	OriginElse

	numOrigins
)

// NumOrigins is the number of declared origin classifications.
const NumOrigins = int(numOrigins)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginPrimary:
		return "Primary"
	case OriginSecondary:
		return "Secondary"
	case OriginMaterial:
		return "Material"
	case OriginNotPrimary:
		return "NotPrimary"
	case OriginFake:
		return "Fake"
	case OriginWrongCollision:
		return "WrongCollision"
	case OriginSecondaryDaughterLambda:
		return "SecondaryDaughterLambda"
	case OriginSecondaryDaughterSigmaPlus:
		return "SecondaryDaughterSigmaPlus"
	case OriginElse:
		return "Else"
	default:
		return "Unknown"
	}
}

// originSuffixes are the histogram-name suffixes of the origins binned by
// the downstream monitoring stage.
var originSuffixes = []string{
	"_Primary",
	"_Secondary",
	"_Material",
	"_NotPrimary",
	"_Fake",
	"_SecondaryDaughterLambda",
	"_SecondaryDaughterSigmaPlus",
}

// HistogramSuffix returns the histogram-name suffix of the origin. The
// second return is false for origins without a monitoring histogram.
func (o Origin) HistogramSuffix() (string, bool) {
	if int(o) < len(originSuffixes) {
		return originSuffixes[o], true
	}
	return "", false
}

// ErrInvalidOrigin indicates an origin outside the declared enumeration.
type ErrInvalidOrigin struct {
	Origin Origin
}

func (e *ErrInvalidOrigin) Error() string {
	return fmt.Sprintf("invalid MC origin: %d", e.Origin)
}

// Check rejects values outside the declared enumeration.
func (o Origin) Check() error {
	if o >= numOrigins {
		return &ErrInvalidOrigin{Origin: o}
	}
	return nil
}

// MCKind distinguishes reconstructed from truth-level quantities when naming
// histograms; Recon doubles as the default for real data.
type MCKind uint8

const (
	// Recon marks reconstructed-level quantities.
	Recon MCKind = iota
	// Truth marks generator-level quantities.
	Truth

	numMCKinds
)

// NumMCKinds is the number of declared MC kinds.
const NumMCKinds = int(numMCKinds)

var mcKindSuffixes = [NumMCKinds]string{"", "_MC"}

// HistogramSuffix returns the histogram-name suffix of the MC kind.
func (k MCKind) HistogramSuffix() string {
	if int(k) < len(mcKindSuffixes) {
		return mcKindSuffixes[k]
	}
	return ""
}
