// Package kernel provides the element-wise multiply-accumulate loops behind
// the columnar dot products.
//
// # Kernels
//
//   - generic: separate multiply and add, identical to the scalar engine
//   - fma: fused multiply-add (one rounding per element)
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects fma when the
// hardware has it. Set HEPVEC_KERNEL=generic or HEPVEC_KERNEL=fma to force a
// kernel; an override the CPU cannot honor is ignored.
package kernel
