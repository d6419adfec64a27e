//go:build riscv64 && nofpu_custom

package fpu

const hasCustomInsn = true

// customAdd executes `.insn r 0x0B, 0, 0, rd, rs1, rs2`. Operands and the
// result travel in integer registers as on the soft-float ABI.
//
//go:noescape
func customAdd(a, b float32) float32

// customMul executes `.insn r 0x2B, 0, 0, rd, rs1, rs2`.
//
//go:noescape
func customMul(a, b float32) float32
