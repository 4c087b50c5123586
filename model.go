package arith

// numSymbols is the size of the coder's alphabet: the 256 byte values plus
// the reserved end-of-stream symbol.
const numSymbols = 257

// eofSymbol is the reserved end-of-stream symbol, written only by
// Encoder.Finalize and never passed by a caller to Encode.
const eofSymbol = 256

// model is an order-0 adaptive cumulative-frequency table over numSymbols
// symbols. cum[s] holds the cumulative count of all symbols strictly less
// than s, so the half-open interval [cum[s], cum[s+1]) is symbol s's share
// of [0, total). Every symbol starts with a count of one.
type model struct {
	cum   [numSymbols + 1]uint32
	total uint32
}

// init resets the model to its uniform initial state: cum[i] = i for every
// i, giving every symbol a count of exactly one and total = numSymbols.
func (m *model) init() {
	for i := range m.cum {
		m.cum[i] = uint32(i)
	}
	m.total = numSymbols
}

// interval returns the half-open cumulative interval [lo, hi) assigned to
// symbol s, out of m.total.
func (m *model) interval(s int) (lo, hi uint32) {
	return m.cum[s], m.cum[s+1]
}

// find locates the unique symbol s such that cum[s] <= v < cum[s+1], for v
// in [0, m.total). Because every symbol's count is at least one, the
// intervals are contiguous and non-empty, so no tie-breaking is needed.
//
// A linear scan from the top is sufficient for an alphabet of this size,
// so no binary search is used.
func (m *model) find(v uint32) (s int, lo, hi uint32) {
	s = numSymbols - 1
	for m.cum[s] > v {
		s--
	}
	return s, m.cum[s], m.cum[s+1]
}

// increment records one more occurrence of symbol s, bumping every
// cumulative entry past s (and the running total) by one.
func (m *model) increment(s int) {
	for i := s + 1; i <= numSymbols; i++ {
		m.cum[i]++
	}
	m.total++
}
