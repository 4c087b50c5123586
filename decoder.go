package arith

import "io"

// Decoder is the dual of Encoder: it arithmetic-decodes a sequence of byte
// symbols from an underlying io.Reader. The zero value is not usable;
// construct one with NewDecoder.
//
// A Decoder is a strictly sequential, non-reentrant state machine: repeated
// calls to Decode until one returns the end-of-stream symbol (256), after
// which dec is spent and further calls return ErrClosed.
type Decoder struct {
	br              bitReader
	m               model
	low, high, code uint32
	err             error
	closed          bool
}

// NewDecoder returns a Decoder that reads its arithmetic-coded input from
// r, having prefilled its 32-bit code register. A nil conf is equivalent to
// &DecoderConfig{}.
func NewDecoder(r io.Reader, conf *DecoderConfig) (*Decoder, error) {
	dec := new(Decoder)
	if err := dec.Reset(r); err != nil {
		return nil, err
	}
	return dec, nil
}

// Reset discards any in-progress state and reconfigures dec to read from r,
// as if freshly returned by NewDecoder, including the 32-bit prefill.
func (dec *Decoder) Reset(r io.Reader) error {
	*dec = Decoder{}
	dec.br.init(r)
	dec.m.init()
	dec.high = 0xFFFFFFFF
	for i := 0; i < 32; i++ {
		bit, eof, err := dec.br.readBit()
		if err != nil {
			return err
		}
		dec.code <<= 1
		if eof || bit {
			dec.code |= 1
		}
	}
	return nil
}

// Decode returns the next symbol, a byte value in [0, 255], or 256 to
// signal the end of the stream. Calling Decode again after it has returned
// 256 is undefined; dec reports ErrClosed instead of decoding garbage.
func (dec *Decoder) Decode() (int, error) {
	if dec.err != nil {
		return 0, dec.err
	}
	if dec.closed {
		return 0, ErrClosed
	}
	var sym int
	func() {
		defer errRecover(&dec.err)
		sym = dec.decodeSymbol()
	}()
	if dec.err != nil {
		return 0, dec.err
	}
	if sym == eofSymbol {
		dec.closed = true
	}
	return sym, nil
}

func (dec *Decoder) decodeSymbol() int {
	total := dec.m.total
	rng := uint64(dec.high-dec.low) + 1
	v := uint32(((uint64(dec.code-dec.low)+1)*uint64(total) - 1) / rng)
	if v >= total {
		panic(ErrCorrupt)
	}

	sym, sLo, sHi := dec.m.find(v)
	newLow, newHigh := narrow(dec.low, dec.high, total, sLo, sHi)
	if newLow >= newHigh {
		panic(ErrCorrupt)
	}
	dec.low, dec.high = newLow, newHigh
	dec.renormalize()
	dec.m.increment(sym)
	return sym
}

// renormalize mirrors Encoder.renormalize but shifts bits in from the bit
// reader instead of emitting them, treating end-of-source as a synthetic 1
// bit per spec: the decoder must be able to keep requesting bits past the
// true end of stream without failing.
func (dec *Decoder) renormalize() {
	for {
		switch {
		case (dec.high & 0x80000000) == (dec.low & 0x80000000):
			// Nothing to emit; just shift.
		case (dec.high&0xC0000000) == 0x80000000 && (dec.low&0x40000000) == 0x40000000:
			dec.low &= 0x3FFFFFFF
			dec.high |= 0x40000000
			dec.code -= 0x40000000
		default:
			return
		}
		dec.low <<= 1
		dec.high = (dec.high << 1) | 1

		bit, eof, err := dec.br.readBit()
		if err != nil {
			panic(err)
		}
		dec.code <<= 1
		if eof || bit {
			dec.code |= 1
		}
	}
}
