package fpu

import (
	"os"
	"strings"
)

// Backend identifies which floating-point implementation the dispatched
// kernels run on. Exactly one backend is active per process; it is fixed
// at build time and may be overridden once at start-up through the
// NOFPU_BACKEND environment variable.
type Backend int

const (
	// BackendCustom builds everything from the custom add and multiply
	// instructions plus bit manipulation.
	BackendCustom Backend = iota

	// BackendSoft uses a full software floating-point library, including
	// its transcendental functions. It is the accuracy oracle and the
	// portable path for cores without the custom instructions.
	BackendSoft
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendCustom:
		return "custom"
	case BackendSoft:
		return "soft"
	default:
		return "unknown"
	}
}

// ParseBackend maps a backend name ("custom", "soft"; case-insensitive) to
// a Backend.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "custom", "hw", "hardware":
		return BackendCustom, true
	case "soft", "softfp", "emulated":
		return BackendSoft, true
	default:
		return 0, false
	}
}

// BackendEnvVar names the environment variable read once at start-up to
// override the build-time backend.
const BackendEnvVar = "NOFPU_BACKEND"

// currentBackend is the backend selected for this process.
// Set by init() from the build default and the environment.
var currentBackend Backend

// CurrentBackend returns the backend selected for this process.
func CurrentBackend() Backend {
	return currentBackend
}

// CurrentName returns the name of the selected backend, e.g. "custom".
func CurrentName() string {
	return currentBackend.String()
}

// BackendEnv returns the backend requested through NOFPU_BACKEND, if any.
// Unknown values are ignored.
func BackendEnv() (Backend, bool) {
	val := os.Getenv(BackendEnvVar)
	if val == "" {
		return 0, false
	}
	return ParseBackend(val)
}

func init() {
	currentBackend = defaultBackend
	if b, ok := BackendEnv(); ok {
		currentBackend = b
	}
}
