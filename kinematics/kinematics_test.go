package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/femtodream/femtotables/util"
)

func TestThetaMidrapidity(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Theta(0), 1e-6)
}

func TestThetaRange(t *testing.T) {
	for _, eta := range []float32{-5, -1.2, -0.3, 0, 0.3, 1.2, 5} {
		th := float64(Theta(eta))
		assert.Greater(t, th, 0.0, "eta=%v", eta)
		assert.Less(t, th, math.Pi, "eta=%v", eta)
	}
}

func TestMomentumFixedPoints(t *testing.T) {
	tests := []struct {
		name          string
		pt, eta, phi  float32
		px, py, pz, p float64
		tol           float64
	}{
		{
			name: "UnitAtMidrapidity",
			pt:   1, eta: 0, phi: 0,
			px: 0, py: 1, pz: 0, p: 1,
			tol: 1e-7,
		},
		{
			name: "ForwardQuarterTurn",
			pt:   2, eta: 1, phi: math.Pi / 2,
			px: 2, py: 0, pz: 2 * math.Sinh(1), p: 2 * math.Cosh(1),
			tol: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.px, float64(Px(tt.pt, tt.phi)), tt.tol)
			assert.InDelta(t, tt.py, float64(Py(tt.pt, tt.phi)), tt.tol)
			assert.InDelta(t, tt.pz, float64(Pz(tt.pt, tt.eta)), tt.tol)
			assert.InDelta(t, tt.p, float64(P(tt.pt, tt.eta)), tt.tol)
		})
	}
}

// The derived momentum vector must close: px^2 + py^2 + pz^2 == p^2.
func TestMomentumClosure(t *testing.T) {
	rng := util.NewRNG(42)
	for i := 0; i < 1000; i++ {
		pt, eta, phi := rng.Triple()

		px := float64(Px(pt, phi))
		py := float64(Py(pt, phi))
		pz := float64(Pz(pt, eta))
		p := float64(P(pt, eta))

		require.InEpsilon(t, p*p, px*px+py*py+pz*pz, 1e-5,
			"pt=%v eta=%v phi=%v", pt, eta, phi)
	}
}

func TestCrossedRowsOverFindable(t *testing.T) {
	assert.Equal(t, float32(1.0), CrossedRowsOverFindable(100, 100))
	assert.InDelta(t, 0.8, float64(CrossedRowsOverFindable(120, 150)), 1e-6)

	// Zero denominator follows IEEE float32 division.
	assert.True(t, math.IsInf(float64(CrossedRowsOverFindable(70, 0)), 1))
	assert.True(t, math.IsNaN(float64(CrossedRowsOverFindable(0, 0))))
}

func BenchmarkDerivedMomentum(b *testing.B) {
	rng := util.NewRNG(7)
	pt, eta, phi := rng.Triple()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = Px(pt, phi) + Py(pt, phi) + Pz(pt, eta) + P(pt, eta) + Theta(eta)
	}
}

var sink float32
