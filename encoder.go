package arith

import "io"

// Encoder adaptively arithmetic-codes a sequence of byte symbols to an
// underlying io.Writer. The zero value is not usable; construct one with
// NewEncoder.
//
// An Encoder is a strictly sequential, non-reentrant state machine: zero or
// more calls to Encode, followed by exactly one call to Finalize. Encoding
// without a matching Finalize produces a truncated stream that will not
// decode.
type Encoder struct {
	bw        bitWriter
	m         model
	low, high uint32
	underflow uint32
	err       error
	closed    bool
}

// NewEncoder returns an Encoder that writes its arithmetic-coded output to
// w. A nil conf is equivalent to &EncoderConfig{}.
func NewEncoder(w io.Writer, conf *EncoderConfig) *Encoder {
	enc := new(Encoder)
	enc.Reset(w)
	return enc
}

// Reset discards any in-progress state and reconfigures enc to write to w,
// as if freshly returned by NewEncoder.
func (enc *Encoder) Reset(w io.Writer) {
	*enc = Encoder{}
	enc.bw.init(w)
	enc.m.init()
	enc.high = 0xFFFFFFFF
}

// Encode codes one symbol, which must be a byte value in [0, 255]. Symbol
// 256 is reserved for Finalize's internal use.
func (enc *Encoder) Encode(sym int) error {
	if enc.err != nil {
		return enc.err
	}
	if enc.closed {
		return ErrClosed
	}
	if sym < 0 || sym > 255 {
		return Error("symbol out of range")
	}
	func() {
		defer errRecover(&enc.err)
		enc.encodeSymbol(sym)
	}()
	return enc.err
}

// Finalize writes the end-of-stream symbol and the interval-flush tail that
// lets the decoder resolve the last interval unambiguously, then flushes
// the bit writer. After Finalize, enc is spent: further calls to Encode or
// Finalize return ErrClosed.
func (enc *Encoder) Finalize() error {
	if enc.err != nil {
		return enc.err
	}
	if enc.closed {
		return ErrClosed
	}
	func() {
		defer errRecover(&enc.err)
		enc.encodeSymbol(eofSymbol)

		enc.underflow++
		tailBit := enc.low&0x40000000 != 0
		enc.mustWriteBit(tailBit)
		for enc.underflow > 0 {
			enc.underflow--
			enc.mustWriteBit(!tailBit)
		}
		enc.mustFlush()
	}()
	enc.closed = true
	return enc.err
}

func (enc *Encoder) encodeSymbol(sym int) {
	sLo, sHi := enc.m.interval(sym)
	newLow, newHigh := narrow(enc.low, enc.high, enc.m.total, sLo, sHi)
	if newLow >= newHigh {
		panic(ErrCorrupt)
	}
	enc.low, enc.high = newLow, newHigh
	enc.renormalize()
	enc.m.increment(sym)
}

// renormalize shifts out leading bits that low and high already agree on,
// emitting them (plus any suppressed underflow bits), and handles the E3
// near-midpoint straddle by counting it as underflow instead of stalling.
func (enc *Encoder) renormalize() {
	for {
		switch {
		case (enc.high & 0x80000000) == (enc.low & 0x80000000):
			bit := enc.high&0x80000000 != 0
			enc.mustWriteBit(bit)
			for enc.underflow > 0 {
				enc.underflow--
				enc.mustWriteBit(!bit)
			}
		case (enc.high&0xC0000000) == 0x80000000 && (enc.low&0x40000000) == 0x40000000:
			enc.underflow++
			if enc.underflow > maxUnderflow {
				panic(ErrCorrupt)
			}
			enc.low &= 0x3FFFFFFF
			enc.high |= 0x40000000
		default:
			return
		}
		enc.low <<= 1
		enc.high = (enc.high << 1) | 1
	}
}

func (enc *Encoder) mustWriteBit(bit bool) {
	if err := enc.bw.writeBit(bit); err != nil {
		panic(err)
	}
}

func (enc *Encoder) mustFlush() {
	if err := enc.bw.flush(); err != nil {
		panic(err)
	}
}
