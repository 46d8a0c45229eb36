package kernel

import (
	"os"
	"strings"
)

// Kind identifies a kernel implementation.
type Kind uint8

const (
	// Generic multiplies and adds with two roundings.
	Generic Kind = iota
	// FMA uses fused multiply-add.
	FMA
)

// EnvOverride is the environment variable that forces a kernel.
const EnvOverride = "HEPVEC_KERNEL"

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case FMA:
		return "fma"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "fma":
		return FMA, true
	default:
		return Generic, false
	}
}

// Set once at init by the platform files.
var (
	active      Kind
	hasOverride bool
	hasFMA      bool
)

// initKernels selects the active kernel after CPU features are detected.
func initKernels() {
	active = Generic
	if hasFMA {
		active = FMA
	}

	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKind(override); ok && available(k) {
			hasOverride = true
			active = k
		}
	}
	bind(active)
}

func available(k Kind) bool {
	switch k {
	case Generic:
		return true
	case FMA:
		return hasFMA
	default:
		return false
	}
}

// Active returns the currently active kernel.
func Active() Kind {
	return active
}

// IsOverridden reports whether HEPVEC_KERNEL selected the active kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA reports whether the CPU has fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
