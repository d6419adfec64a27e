package softfp

// Standalone operations for timing a single library call in isolation.
// Each is exactly one call into the emulated library.

// OpExp returns e^x.
func OpExp(x float32) float32 { return Exp(x) }

// OpLog returns ln(x).
func OpLog(x float32) float32 { return Log(x) }

// OpPow returns x**y.
func OpPow(x, y float32) float32 { return Pow(x, y) }

// OpDiv returns x / y.
func OpDiv(x, y float32) float32 { return Div(x, y) }

// OpMul returns x * y.
func OpMul(x, y float32) float32 { return Mul(x, y) }

// OpAdd returns x + y.
func OpAdd(x, y float32) float32 { return Add(x, y) }
