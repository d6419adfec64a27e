package softfp

import (
	"errors"
	stdmath "math"
	"syscall"
	"testing"

	"github.com/ajroetker/go-nofpu/fpu"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want uint32
	}{
		{"add(1, 2)", OpAdd(1, 2), 0x40400000},
		{"mul(2, 3)", OpMul(2, 3), 0x40C00000},
		{"mul(-1, 0.5)", OpMul(-1, 0.5), 0xBF000000},
		{"sub(3, 1)", Sub(3, 1), 0x40000000},
		{"div(1, 2)", OpDiv(1, 2), 0x3F000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fpu.Bits(tt.got); got != tt.want {
				t.Errorf("%s = %#08x, want %#08x", tt.name, got, tt.want)
			}
		})
	}

	if !Less(-1, 0) || Less(0, 0) || Less(float32(stdmath.NaN()), 1) {
		t.Errorf("Less misbehaves")
	}
}

func TestProviderMatchesCustom(t *testing.T) {
	// Both backends round each primitive once to nearest-even, so they must
	// agree bit for bit.
	var p fpu.Provider = Provider{}
	c := fpu.Custom{}
	values := []float32{0, 1, -1, 0.1, 3.3333333, -7.25e-3, 1e20, -6e-39}
	for _, a := range values {
		for _, b := range values {
			if got, want := fpu.Bits(p.Add(a, b)), fpu.Bits(c.Add(a, b)); got != want {
				t.Errorf("Add(%v, %v) = %#08x, custom %#08x", a, b, got, want)
			}
			if got, want := fpu.Bits(p.Mul(a, b)), fpu.Bits(c.Mul(a, b)); got != want {
				t.Errorf("Mul(%v, %v) = %#08x, custom %#08x", a, b, got, want)
			}
		}
	}
}

func TestTranscendentals(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float64
	}{
		{"exp(0)", OpExp(0), 1},
		{"exp(1)", OpExp(1), stdmath.E},
		{"exp(-1)", OpExp(-1), 1 / stdmath.E},
		{"log(e)", OpLog(float32(stdmath.E)), 1},
		{"log(1)", OpLog(1), 0},
		{"pow(2, 10)", OpPow(2, 10), 1024},
		{"pow(9, 0.5)", OpPow(9, 0.5), 3},
		{"tanh(0.5)", Tanh(0.5), stdmath.Tanh(0.5)},
		{"tanh(-3)", Tanh(-3), stdmath.Tanh(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if stdmath.Abs(float64(tt.got)-tt.want) > 1e-5*stdmath.Max(1, stdmath.Abs(tt.want)) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestErrno(t *testing.T) {
	tests := []struct {
		name string
		call func() float32
		want syscall.Errno
	}{
		{"log of negative", func() float32 { return Log(-1) }, errDomain},
		{"log of zero", func() float32 { return Log(0) }, errRange},
		{"exp overflow", func() float32 { return Exp(100) }, errRange},
		{"pow negative base", func() float32 { return Pow(-8, 1.0/3) }, errDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ClearErrno()
			tt.call()
			err := Errno()
			if !errors.Is(err, tt.want) {
				t.Errorf("Errno() = %v, want %v", err, tt.want)
			}
		})
	}

	ClearErrno()
	Exp(1)
	Log(2)
	Pow(-2, 3)
	if err := Errno(); err != nil {
		t.Errorf("Errno() after successful calls = %v, want nil", err)
	}
}

func TestErrnoIsSticky(t *testing.T) {
	ClearErrno()
	Log(-1)
	Exp(1)
	if err := Errno(); !errors.Is(err, errDomain) {
		t.Errorf("Errno() = %v, want %v to survive a successful call", err, errDomain)
	}
	ClearErrno()
	if err := Errno(); err != nil {
		t.Errorf("Errno() after ClearErrno = %v", err)
	}
}
