package math

// Taylor coefficients of e^x. Only the terms through x^4 are used.
var (
	expC2_f32 float32 = 0.5
	expC3_f32 float32 = 0.16666667
	expC4_f32 float32 = 0.04166667

	// expReduce_f32 scales the argument into [-1, 1] before the polynomial;
	// the result is squared expSquarings times to undo it.
	expReduce_f32 float32 = 0.25

	expOne_f32 float32 = 1.0
)

const expSquarings = 2

// Values Exp returns for inputs with magnitude above 4: ExpSaturationHigh
// for positive x, ExpSaturationLow for negative x. They are tuned
// substitutes, not limits of e^x.
const (
	ExpSaturationHigh float32 = 20.0
	ExpSaturationLow  float32 = 0.05
)
