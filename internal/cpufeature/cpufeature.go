// Package cpufeature detects the CPU capability the Wide (8-wide) kernel
// wants, so the dispatcher can silently fall back to a narrower kernel
// instead of failing when the running machine lacks it.
package cpufeature

import "golang.org/x/sys/cpu"

// HasWideSIMD reports whether this process is running on a CPU with
// 8-wide-or-better integer SIMD available (AVX2 on x86-64, Advanced SIMD
// on arm64). cpu.X86 and cpu.ARM64 are always safe to read: their fields
// are zero-valued on architectures where they don't apply, so this needs
// no build tags.
func HasWideSIMD() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}
