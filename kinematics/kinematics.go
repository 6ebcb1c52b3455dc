package kinematics

import "math"

// Theta returns the polar angle computed from the pseudorapidity,
// 2*atan(exp(-eta)). It lies in (0, pi) for all finite eta and equals pi/2
// at midrapidity.
func Theta(eta float32) float32 {
	e := float32(math.Exp(-float64(eta)))
	return 2 * float32(math.Atan(float64(e)))
}

// Px returns the momentum component along x in GeV/c, pt*sin(phi).
func Px(pt, phi float32) float32 {
	return pt * float32(math.Sin(float64(phi)))
}

// Py returns the momentum component along y in GeV/c, pt*cos(phi).
func Py(pt, phi float32) float32 {
	return pt * float32(math.Cos(float64(phi)))
}

// Pz returns the momentum component along the beam axis in GeV/c,
// pt*sinh(eta).
func Pz(pt, eta float32) float32 {
	return pt * float32(math.Sinh(float64(eta)))
}

// P returns the total momentum in GeV/c, pt*cosh(eta).
func P(pt, eta float32) float32 {
	return pt * float32(math.Cosh(float64(eta)))
}

// CrossedRowsOverFindable returns the ratio of crossed TPC pad rows over
// findable TPC clusters. The division is plain IEEE float32 division: a zero
// findable count yields +Inf (or NaN for 0/0), which propagates to the
// caller unchanged.
func CrossedRowsOverFindable(crossedRows, findable uint8) float32 {
	return float32(crossedRows) / float32(findable)
}
