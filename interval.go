package arith

// maxUnderflow bounds the encoder's underflow counter. Exceeding it can
// only happen on a programmer error (a corrupted model) since spec-valid
// 32-bit interval arithmetic forces a top-bit match well before this many
// consecutive near-midpoint iterations accumulate.
const maxUnderflow = 1 << 20

// narrow computes the interval [low, high] narrowed to the sub-interval
// [sLo, sHi) of [0, total), per the interval-narrowing rule shared by the
// encoder and decoder: range = (high-low)+1, new_high = low +
// sHi*range/total - 1, new_low = low + sLo*range/total. The products are
// carried out in 64-bit arithmetic to avoid overflow before the division.
func narrow(low, high, total, sLo, sHi uint32) (newLow, newHigh uint32) {
	rng := uint64(high-low) + 1
	newHigh = low + uint32((uint64(sHi)*rng)/uint64(total)) - 1
	newLow = low + uint32((uint64(sLo)*rng)/uint64(total))
	return newLow, newHigh
}
