// Package arith implements an adaptive order-0 arithmetic coder.
//
// The coder operates over a 257-symbol alphabet: the 256 byte values plus
// one reserved end-of-stream symbol. Symbol frequencies start out uniform
// and adapt as each symbol is coded, so the encoder and decoder must stay
// in lockstep — every Encode call on one side must be matched by exactly
// one Decode call on the other, in the same order.
//
// The wire format has no header, length prefix, or checksum: the stream is
// self-delimiting by virtue of the embedded end-of-stream symbol and the
// finalize tail written after it. See Encoder.Finalize for how the stream is
// terminated.
package arith
