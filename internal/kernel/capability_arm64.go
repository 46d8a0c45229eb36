//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	// FMADD is part of the base ARMv8 floating point set.
	hasFMA = cpu.ARM64.HasFP
	initKernels()
}
