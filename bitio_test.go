package arith

import (
	"bytes"
	"io"
	"testing"

	"github.com/dsnet/arith/internal/testutil"
)

func TestBitReader(t *testing.T) {
	src := []byte{0b11110000, 0b00001111}
	want := []bool{
		true, true, true, true, false, false, false, false,
		false, false, false, false, true, true, true, true,
	}

	var br bitReader
	br.init(bytes.NewReader(src))
	for i, w := range want {
		bit, eof, err := br.readBit()
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
		if eof {
			t.Fatalf("bit %d: unexpected eof", i)
		}
		if bit != w {
			t.Fatalf("bit %d = %v, want %v", i, bit, w)
		}
	}

	for i := 0; i < 2; i++ {
		if _, eof, err := br.readBit(); err != nil || !eof {
			t.Fatalf("read past end: (eof=%v, err=%v), want (true, nil)", eof, err)
		}
	}
}

func TestBitWriter(t *testing.T) {
	bits := []bool{
		true, true, true, true, false, false, false, false,
		false, false, false, false, true, true, true, true,
	}

	var buf bytes.Buffer
	var bw bitWriter
	bw.init(&buf)
	for i, b := range bits {
		if err := bw.writeBit(b); err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
	}
	if err := bw.flush(); err != nil {
		t.Fatalf("flush: unexpected error: %v", err)
	}

	want := []byte{0b11110000, 0b00001111}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("output = %08b, want %08b", buf.Bytes(), want)
	}
}

// TestBitWriterFlushIdempotent checks that flushing with nothing buffered
// (including a second consecutive flush) emits no extra bytes.
func TestBitWriterFlushIdempotent(t *testing.T) {
	var buf bytes.Buffer
	var bw bitWriter
	bw.init(&buf)

	if err := bw.flush(); err != nil {
		t.Fatalf("flush on empty writer: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("flush on empty writer emitted %d bytes, want 0", buf.Len())
	}

	if err := bw.writeBit(true); err != nil {
		t.Fatal(err)
	}
	if err := bw.flush(); err != nil {
		t.Fatal(err)
	}
	if err := bw.flush(); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	if got, want := buf.Bytes(), []byte{0b10000000}; !bytes.Equal(got, want) {
		t.Fatalf("output = %08b, want %08b", got, want)
	}
}

// TestBitRoundTrip checks that a bitWriter fed a pseudo-random bit stream
// and flushed produces bytes that a bitReader plays back identically,
// reporting eof only once the buffer is fully drained.
func TestBitRoundTrip(t *testing.T) {
	const numBits = 32768 * 8
	rnd := testutil.NewRand(0)

	bits := make([]bool, numBits)
	for i := range bits {
		bits[i] = rnd.Intn(2) == 1
	}

	var buf bytes.Buffer
	var bw bitWriter
	bw.init(&buf)
	for _, b := range bits {
		if err := bw.writeBit(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := bw.flush(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != numBits/8 {
		t.Fatalf("output length = %d, want %d", buf.Len(), numBits/8)
	}

	var br bitReader
	br.init(bytes.NewReader(buf.Bytes()))
	for i, want := range bits {
		bit, eof, err := br.readBit()
		if err != nil || eof {
			t.Fatalf("bit %d: (eof=%v, err=%v)", i, eof, err)
		}
		if bit != want {
			t.Fatalf("bit %d = %v, want %v", i, bit, want)
		}
	}
	if _, eof, err := br.readBit(); err != nil || !eof {
		t.Fatalf("final read: (eof=%v, err=%v), want (true, nil)", eof, err)
	}
}

func TestBitWriterShortWrite(t *testing.T) {
	bw := bitWriter{}
	bw.init(zeroByteWriter{})
	for i := 0; i < 7; i++ {
		if err := bw.writeBit(true); err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
	}
	if err := bw.writeBit(true); err != io.ErrShortWrite {
		t.Fatalf("flushing byte = %v, want io.ErrShortWrite", err)
	}
}

// zeroByteWriter reports success without writing anything, to exercise the
// short-write defense in bitWriter.flushByte.
type zeroByteWriter struct{}

func (zeroByteWriter) Write(p []byte) (int, error) { return 0, nil }
