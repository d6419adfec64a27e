package activation

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-nofpu/fpu"
	"github.com/ajroetker/go-nofpu/fpu/contrib/softfp"
)

var p = fpu.Custom{}

// sweep returns n+1 evenly spaced points on [lo, hi].
func sweep(lo, hi float32, n int) []float32 {
	xs := make([]float32, n+1)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float32(i)/float32(n)
	}
	return xs
}

func TestReLU(t *testing.T) {
	for _, x := range sweep(-10, 10, 200) {
		want := x
		if x < 0 {
			want = 0
		}
		if got := BaseReLU(x); got != want {
			t.Errorf("BaseReLU(%v) = %v, want %v", x, got, want)
		}
		if got := SoftReLU(x); got != want {
			t.Errorf("SoftReLU(%v) = %v, want %v", x, got, want)
		}
	}
	if got := BaseReLU(float32(stdmath.Copysign(0, -1))); fpu.Bits(got) != 0 {
		t.Errorf("BaseReLU(-0) bits = %#08x, want +0", fpu.Bits(got))
	}
}

func TestLeakyReLU(t *testing.T) {
	for _, alpha := range []float32{0.01, 0.1, 0.2} {
		for _, x := range sweep(-10, 10, 200) {
			want := x
			if x < 0 {
				want = alpha * x
			}
			if got := BaseLeakyReLU(p, x, alpha); got != want {
				t.Errorf("BaseLeakyReLU(%v, %v) = %v, want %v", x, alpha, got, want)
			}
			if got := SoftLeakyReLU(x, alpha); got != want {
				t.Errorf("SoftLeakyReLU(%v, %v) = %v, want %v", x, alpha, got, want)
			}
		}
	}
}

func TestELU(t *testing.T) {
	tests := []struct {
		name  string
		x     float32
		alpha float32
		tol   float64
	}{
		{"positive passthrough", 2.5, 1, 0},
		{"zero", 0, 1, 0},
		{"x=-0.5", -0.5, 1, 0.01},
		{"x=-2", -2, 1, 0.01},
		{"x=-4", -4, 0.5, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseELU(p, tt.x, tt.alpha)
			want := SoftELU(tt.x, tt.alpha)
			if stdmath.Abs(float64(got-want)) > tt.tol {
				t.Errorf("BaseELU(%v, %v) = %v, oracle %v", tt.x, tt.alpha, got, want)
			}
		})
	}

	// Below -4 exp saturates at 0.05.
	if got, want := BaseELU(p, -10, 1), float32(0.05-1); stdmath.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("BaseELU(-10, 1) = %v, want %v", got, want)
	}
}

func TestSigmoidAgainstOracle(t *testing.T) {
	for _, x := range sweep(-4, 4, 800) {
		got := BaseSigmoid(p, x)
		want := SoftSigmoid(x)
		if d := stdmath.Abs(float64(got - want)); d >= 0.05 {
			t.Errorf("BaseSigmoid(%v) = %v, oracle %v (diff %v)", x, got, want, d)
		}
	}
}

func TestSigmoidValues(t *testing.T) {
	if got := BaseSigmoid(p, 0); stdmath.Abs(float64(got)-0.5) > 1e-4 {
		t.Errorf("BaseSigmoid(0) = %v, want 0.5", got)
	}
	if got := SoftSigmoid(0); got != 0.5 {
		t.Errorf("SoftSigmoid(0) = %v, want 0.5", got)
	}
	// Saturated exp: 1/(1+0.05) and 1/(1+20).
	if got := BaseSigmoid(p, 10); stdmath.Abs(float64(got)-1/1.05) > 1e-3 {
		t.Errorf("BaseSigmoid(10) = %v, want %v", got, 1/1.05)
	}
	if got := BaseSigmoid(p, -10); stdmath.Abs(float64(got)-1.0/21) > 1e-3 {
		t.Errorf("BaseSigmoid(-10) = %v, want %v", got, 1.0/21)
	}
}

func TestSiLU(t *testing.T) {
	for _, x := range sweep(-4, 4, 80) {
		got := BaseSiLU(p, x)
		want := SoftSiLU(x)
		// |x| * sigmoid error.
		if d := stdmath.Abs(float64(got - want)); d > 0.05*stdmath.Max(1, stdmath.Abs(float64(x))) {
			t.Errorf("BaseSiLU(%v) = %v, oracle %v", x, got, want)
		}
	}
}

func TestTanhAgainstOracle(t *testing.T) {
	for _, x := range sweep(-2, 2, 200) {
		got := BaseTanh(p, x)
		want := SoftTanh(x)
		if d := stdmath.Abs(float64(got - want)); d > 0.02 {
			t.Errorf("BaseTanh(%v) = %v, oracle %v", x, got, want)
		}
	}
}

func TestGELU(t *testing.T) {
	tests := []struct {
		x   float32
		tol float64
	}{
		{0, 1e-6},
		{0.5, 0.01},
		{1, 0.01},
		{-1, 0.01},
		{2, 0.05},
		{-2, 0.05},
	}
	for _, tt := range tests {
		got := BaseGELU(p, tt.x)
		want := SoftGELU(tt.x)
		if d := stdmath.Abs(float64(got - want)); d > tt.tol {
			t.Errorf("BaseGELU(%v) = %v, oracle %v", tt.x, got, want)
		}
	}

	// Exact-formula reference for the oracle itself.
	for _, x := range []float64{-3, -1, 0, 0.5, 2} {
		want := 0.5 * x * (1 + stdmath.Tanh(0.7978845608*(x+0.044715*x*x*x)))
		if got := SoftGELU(float32(x)); stdmath.Abs(float64(got)-want) > 1e-5 {
			t.Errorf("SoftGELU(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestMish(t *testing.T) {
	// The custom rendition is a fixed closed form; check it exactly.
	tests := []struct {
		x    float32
		want float32
	}{
		{3, 3},
		{0, 0},
		{-0.5, 0.8 * -0.5 * -0.25},
		{-1, 0.8 * -1 * -0.5},
		{-4, 0.8 * -4 * -0.5},
	}
	for _, tt := range tests {
		if got := BaseMish(p, tt.x); stdmath.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("BaseMish(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	for _, x := range []float64{-3, -1, 0, 0.5, 2} {
		want := x * stdmath.Tanh(stdmath.Log1p(stdmath.Exp(x)))
		if got := SoftMish(float32(x)); stdmath.Abs(float64(got)-want) > 1e-5 {
			t.Errorf("SoftMish(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestMishBackendsDiverge(t *testing.T) {
	// For negative x the custom rendition has the opposite sign to mish.
	x := float32(-1)
	if BaseMish(p, x) <= 0 || SoftMish(x) >= 0 {
		t.Errorf("BaseMish(-1) = %v, SoftMish(-1) = %v; want opposite signs", BaseMish(p, x), SoftMish(x))
	}
}

func TestKernelsOnSoftProvider(t *testing.T) {
	// The Base kernels run unchanged on the emulated primitives and give
	// identical bits, since both round each add and multiply once.
	s := softfp.Provider{}
	for _, x := range sweep(-5, 5, 50) {
		pairs := []struct {
			name      string
			got, want float32
		}{
			{"sigmoid", BaseSigmoid(s, x), BaseSigmoid(p, x)},
			{"gelu", BaseGELU(s, x), BaseGELU(p, x)},
			{"elu", BaseELU(s, x, 1), BaseELU(p, x, 1)},
		}
		for _, pr := range pairs {
			if fpu.Bits(pr.got) != fpu.Bits(pr.want) {
				t.Errorf("%s(%v): soft provider %v, custom %v", pr.name, x, pr.got, pr.want)
			}
		}
	}
}

func TestForBackend(t *testing.T) {
	for _, b := range []fpu.Backend{fpu.BackendCustom, fpu.BackendSoft} {
		t.Run(b.String(), func(t *testing.T) {
			k := ForBackend(b)
			if k.Backend != b {
				t.Errorf("Backend = %v, want %v", k.Backend, b)
			}
			if got := k.ReLU(-1); got != 0 {
				t.Errorf("ReLU(-1) = %v", got)
			}
			if got := k.LeakyReLU(-2, 0.5); got != -1 {
				t.Errorf("LeakyReLU(-2, 0.5) = %v", got)
			}
			if got := k.Sigmoid(0); stdmath.Abs(float64(got)-0.5) > 1e-4 {
				t.Errorf("Sigmoid(0) = %v", got)
			}
			out := make([]float32, 3)
			k.Softmax([]float32{1, 2, 3}, out)
			if out[2] <= out[1] || out[1] <= out[0] {
				t.Errorf("Softmax order lost: %v", out)
			}
		})
	}
}

func TestDispatchedMatchesBackend(t *testing.T) {
	k := ForBackend(fpu.CurrentBackend())
	for _, x := range []float32{-3, -0.5, 0, 1.25} {
		if got, want := Sigmoid(x), k.Sigmoid(x); fpu.Bits(got) != fpu.Bits(want) {
			t.Errorf("Sigmoid(%v) = %v, want %v", x, got, want)
		}
		if got, want := Mish(x), k.Mish(x); fpu.Bits(got) != fpu.Bits(want) {
			t.Errorf("Mish(%v) = %v, want %v", x, got, want)
		}
	}
	if Provider() == nil {
		t.Errorf("Provider() = nil")
	}
}

func BenchmarkKernels(b *testing.B) {
	for _, backend := range []fpu.Backend{fpu.BackendCustom, fpu.BackendSoft} {
		k := ForBackend(backend)
		unary := []struct {
			name string
			fn   func(float32) float32
		}{
			{"ReLU", k.ReLU},
			{"Sigmoid", k.Sigmoid},
			{"SiLU", k.SiLU},
			{"Tanh", k.Tanh},
			{"GELU", k.GELU},
			{"Mish", k.Mish},
		}
		for _, u := range unary {
			b.Run(fmt.Sprintf("%s/%s", backend, u.name), func(b *testing.B) {
				var sink float32
				for b.Loop() {
					sink = u.fn(-1)
				}
				_ = sink
			})
		}
	}
}
