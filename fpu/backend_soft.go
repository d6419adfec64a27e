//go:build nofpu_soft

package fpu

// Builds tagged nofpu_soft default to the emulated backend, for targets
// that lack the custom instructions altogether.
const defaultBackend = BackendSoft
