//go:build !(riscv64 && nofpu_custom)

package fpu

const hasCustomInsn = false

// The explicit conversions keep the compiler from fusing a multiply and a
// following add into one FMA after inlining; the custom instructions round
// every operation.

func customAdd(a, b float32) float32 {
	return float32(a + b)
}

func customMul(a, b float32) float32 {
	return float32(a * b)
}
