package bench

import (
	"fmt"

	"github.com/klauspost/cpuid"
)

// CPUFeatures returns a short human-readable summary of CPU features
// relevant to a compression benchmark. It exists purely to annotate bench
// output; arith's core coder has no SIMD fast path and never consults it.
func CPUFeatures() string {
	c := cpuid.CPU
	return fmt.Sprintf("%s (%s) sse2=%t avx=%t avx2=%t",
		c.BrandName, c.VendorID.String(), c.SSE2(), c.AVX(), c.AVX2())
}
