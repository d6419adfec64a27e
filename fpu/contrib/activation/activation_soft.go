package activation

import "github.com/ajroetker/go-nofpu/fpu/contrib/softfp"

// SoftReLU returns x if x > 0, else 0.
func SoftReLU(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// SoftLeakyReLU returns x if x >= 0, else negativeSlope*x.
func SoftLeakyReLU(x, negativeSlope float32) float32 {
	if x >= 0 {
		return x
	}
	return softfp.Mul(negativeSlope, x)
}

// SoftELU returns x if x >= 0, else alpha*(e^x - 1).
func SoftELU(x, alpha float32) float32 {
	if x >= 0 {
		return x
	}
	return softfp.Mul(alpha, softfp.Sub(softfp.Exp(x), 1))
}

// SoftSigmoid returns 1 / (1 + e^-x).
func SoftSigmoid(x float32) float32 {
	return softfp.Div(1, softfp.Add(1, softfp.Exp(-x)))
}

// SoftSiLU returns x * sigmoid(x).
func SoftSiLU(x float32) float32 {
	return softfp.Mul(x, SoftSigmoid(x))
}

// SoftTanh returns the library tanh(x).
func SoftTanh(x float32) float32 {
	return softfp.Tanh(x)
}

// SoftGELU returns 0.5*x*(1 + tanh(sqrt(2/pi)*(x + 0.044715*x^3))).
func SoftGELU(x float32) float32 {
	x3 := softfp.Mul(softfp.Mul(x, x), x)
	t := softfp.Add(x, softfp.Mul(geluCubic_f32, x3))
	th := softfp.Tanh(softfp.Mul(geluSqrt2OverPi_f32, t))
	return softfp.Mul(softfp.Mul(geluHalf_f32, x), softfp.Add(1, th))
}

// SoftMish returns x * tanh(ln(1 + e^x)).
func SoftMish(x float32) float32 {
	sp := softfp.Log(softfp.Add(1, softfp.Exp(x)))
	return softfp.Mul(x, softfp.Tanh(sp))
}
