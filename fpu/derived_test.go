package fpu

import (
	stdmath "math"
	"testing"
)

func TestCustomPrimitives(t *testing.T) {
	p := Custom{}
	tests := []struct {
		name string
		got  float32
		want uint32
	}{
		{"add(1, 2)", p.Add(1, 2), 0x40400000},
		{"mul(2, 3)", p.Mul(2, 3), 0x40C00000},
		{"mul(-1, 0.5)", p.Mul(-1, 0.5), 0xBF000000},
		{"sub(3, 1)", Sub(p, 3, 1), 0x40000000},
		{"sub(1, 3)", Sub(p, 1, 3), 0xC0000000},
		{"sub(x, x)", Sub(p, 1.25, 1.25), 0x00000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bits(tt.got); got != tt.want {
				t.Errorf("%s = %#08x (%v), want %#08x", tt.name, got, tt.got, tt.want)
			}
		})
	}
}

func TestDivHalf(t *testing.T) {
	got := Div(Custom{}, 1, 2)
	if stdmath.Abs(float64(got)-0.5) > 1e-3 {
		t.Errorf("Div(1, 2) = %v, want 0.5 within 1e-3", got)
	}
}

// countingProvider counts primitive operations to check that division cost
// does not depend on the input.
type countingProvider struct {
	adds, muls *int
}

func (c countingProvider) Add(a, b float32) float32 { *c.adds++; return float32(a + b) }
func (c countingProvider) Mul(a, b float32) float32 { *c.muls++; return float32(a * b) }

func TestDivFixedCost(t *testing.T) {
	var wantAdds, wantMuls int
	for i, b := range []float32{2, 3.7, -0.001, 1e20, 1.3333, 0.75} {
		var adds, muls int
		Div(countingProvider{&adds, &muls}, 1, b)
		if adds != NewtonIterations {
			t.Errorf("Div(1, %v) used %d adds, want %d", b, adds, NewtonIterations)
		}
		if i == 0 {
			wantAdds, wantMuls = adds, muls
			continue
		}
		if adds != wantAdds || muls != wantMuls {
			t.Errorf("Div(1, %v) cost %d adds/%d muls, want %d/%d", b, adds, muls, wantAdds, wantMuls)
		}
	}
}

func TestRecipAccuracy(t *testing.T) {
	p := Custom{}
	// (1/3)^8 relative bound plus a few ulps of rounding.
	const relTol = 2e-4
	divisors := []float32{1, 1.5, 2, 3, 3.7182817, 10, 21, 54.6, 1000, 1e-3, 1e10, 1e-30, 1e30, 3e38, 1.2e-38}
	for _, b := range divisors {
		for _, sign := range []float32{1, -1} {
			d := sign * b
			got := float64(Recip(p, d))
			want := 1 / float64(d)
			if rel := stdmath.Abs(got-want) / stdmath.Abs(want); rel > relTol {
				t.Errorf("Recip(%v) = %v, want %v (rel err %.2e)", d, got, want, rel)
			}
		}
	}

	// Sweep mantissas across the normalization split at 4/3.
	for u := uint32(0x3F800000); u < 0x40000000; u += 0x1357 {
		b := FromBits(u)
		got := float64(Recip(p, b))
		want := 1 / float64(b)
		if rel := stdmath.Abs(got-want) / want; rel > relTol {
			t.Fatalf("Recip(%v) = %v, want %v (rel err %.2e)", b, got, want, rel)
		}
	}
}

func TestDiv(t *testing.T) {
	p := Custom{}
	tests := []struct {
		a, b float32
	}{
		{1, 2},
		{1, 3},
		{-7, 2.5},
		{1.718, 3.718},
		{0, 5},
		{100, -0.25},
	}
	for _, tt := range tests {
		got := float64(Div(p, tt.a, tt.b))
		want := float64(tt.a) / float64(tt.b)
		if stdmath.Abs(got-want) > 2e-4*stdmath.Abs(want)+1e-7 {
			t.Errorf("Div(%v, %v) = %v, want %v", tt.a, tt.b, got, want)
		}
	}
}

func TestRecipZeroIsFinite(t *testing.T) {
	// The recurrence on b=0 doubles x every step: 1 -> 2 -> 4 -> 8.
	if got := Recip(Custom{}, 0); got != 8 {
		t.Errorf("Recip(0) = %v, want 8", got)
	}
}

func TestDivSubnormalDivisor(t *testing.T) {
	// Subnormals take the raw recurrence like zero does.
	for _, b := range []float32{1e-38, -1e-40, FromBits(1)} {
		if Bits(b)&ExpMask != 0 {
			t.Fatalf("%v is not subnormal", b)
		}
		if got := Div(Custom{}, 1, b); got != 8 {
			t.Errorf("Div(1, %v) = %v, want 8", b, got)
		}
	}
}

func TestRecipNaNPropagates(t *testing.T) {
	nan := float32(stdmath.NaN())
	if got := Recip(Custom{}, nan); !stdmath.IsNaN(float64(got)) {
		t.Errorf("Recip(NaN) = %v, want NaN", got)
	}
}

func BenchmarkDiv(b *testing.B) {
	p := Custom{}
	x := float32(3.7)
	var sink float32
	for b.Loop() {
		sink = Div(p, 1, x)
	}
	_ = sink
}
