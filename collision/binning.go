package collision

import "fmt"

// BinningPolicy selects how collisions are binned into event-mixing pools.
// The binning itself happens in the mixing layer; the policy only names the
// estimator combination it uses.
type BinningPolicy uint8

const (
	// BinningMult bins collisions by the number of charged tracks.
	BinningMult BinningPolicy = iota
	// BinningMultPercentile bins collisions by multiplicity percentile.
	BinningMultPercentile
	// BinningMultMultPercentile bins collisions by both charged-track count
	// and multiplicity percentile.
	BinningMultMultPercentile

	numBinningPolicies
)

// NumBinningPolicies is the number of declared binning policies.
const NumBinningPolicies = int(numBinningPolicies)

// String returns the policy name.
func (p BinningPolicy) String() string {
	switch p {
	case BinningMult:
		return "Mult"
	case BinningMultPercentile:
		return "MultPercentile"
	case BinningMultMultPercentile:
		return "MultMultPercentile"
	default:
		return "Unknown"
	}
}

// ErrInvalidBinningPolicy indicates a policy outside the declared set.
type ErrInvalidBinningPolicy struct {
	Policy BinningPolicy
}

func (e *ErrInvalidBinningPolicy) Error() string {
	return fmt.Sprintf("invalid collision binning policy: %d", e.Policy)
}

// Check rejects values outside the declared enumeration.
func (p BinningPolicy) Check() error {
	if p >= numBinningPolicies {
		return &ErrInvalidBinningPolicy{Policy: p}
	}
	return nil
}
