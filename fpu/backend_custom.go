//go:build !nofpu_soft

package fpu

const defaultBackend = BackendCustom
