// Package bench compares this module's arithmetic coder against other
// entropy and general-purpose compression codecs already reachable from the
// module's dependency graph, reporting throughput and compression ratio
// side by side. It is consulted only by cmd/arithc; the core arith package
// never imports it.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dsnet/arith"
)

// EncodeFunc compresses src, writing the compressed form to w.
type EncodeFunc func(w io.Writer, src []byte) error

// DecodeFunc decompresses all of r.
type DecodeFunc func(r io.Reader) ([]byte, error)

type codec struct {
	name   string
	encode EncodeFunc
	decode DecodeFunc
}

var registry []codec

// RegisterCodec adds a comparison codec to the bench report. It is called
// from init functions in this package and may also be called by cmd/arithc
// to register additional codecs.
func RegisterCodec(name string, enc EncodeFunc, dec DecodeFunc) {
	registry = append(registry, codec{name, enc, dec})
}

func init() {
	RegisterCodec("arith", encodeArith, decodeArith)
}

func encodeArith(w io.Writer, src []byte) error {
	enc := arith.NewEncoder(w, nil)
	for _, b := range src {
		if err := enc.Encode(int(b)); err != nil {
			return err
		}
	}
	return enc.Finalize()
}

func decodeArith(r io.Reader) ([]byte, error) {
	dec, err := arith.NewDecoder(r, nil)
	if err != nil {
		return nil, err
	}
	var out []byte
	for {
		sym, err := dec.Decode()
		if err != nil {
			return nil, err
		}
		if sym == 256 {
			return out, nil
		}
		out = append(out, byte(sym))
	}
}

// Result holds one codec's measurements against a single input.
type Result struct {
	Name          string
	InputBytes    int
	OutputBytes   int
	Ratio         float64       // InputBytes / OutputBytes
	EncodeRate    float64       // MB/s
	DecodeRate    float64       // MB/s
	EncodeElapsed time.Duration
	DecodeElapsed time.Duration
}

// Report is the result of running every registered codec over one input.
type Report struct {
	CPU     string
	Results []Result
}

// Run encodes and decodes input with every registered codec and returns a
// Report comparing them. Repeat controls how many times each codec's
// encode/decode pass is repeated to average out measurement noise; a value
// below 1 is treated as 1.
func Run(input []byte, repeat int) (Report, error) {
	if repeat < 1 {
		repeat = 1
	}

	rep := Report{CPU: CPUFeatures()}
	for _, c := range registry {
		r, err := runCodec(c, input, repeat)
		if err != nil {
			return Report{}, fmt.Errorf("bench: codec %q: %w", c.name, err)
		}
		rep.Results = append(rep.Results, r)
	}
	return rep, nil
}

func runCodec(c codec, input []byte, repeat int) (Result, error) {
	var buf bytes.Buffer
	start := time.Now()
	for i := 0; i < repeat; i++ {
		buf.Reset()
		if err := c.encode(&buf, input); err != nil {
			return Result{}, fmt.Errorf("encode: %w", err)
		}
	}
	encodeElapsed := time.Since(start) / time.Duration(repeat)
	compressed := append([]byte(nil), buf.Bytes()...)

	start = time.Now()
	var decoded []byte
	for i := 0; i < repeat; i++ {
		var err error
		decoded, err = c.decode(bytes.NewReader(compressed))
		if err != nil {
			return Result{}, fmt.Errorf("decode: %w", err)
		}
	}
	decodeElapsed := time.Since(start) / time.Duration(repeat)

	if !bytes.Equal(decoded, input) {
		return Result{}, fmt.Errorf("round trip mismatch: got %d bytes, want %d", len(decoded), len(input))
	}

	r := Result{
		Name:          c.name,
		InputBytes:    len(input),
		OutputBytes:   len(compressed),
		EncodeElapsed: encodeElapsed,
		DecodeElapsed: decodeElapsed,
	}
	if len(compressed) > 0 {
		r.Ratio = float64(len(input)) / float64(len(compressed))
	}
	r.EncodeRate = rate(len(input), encodeElapsed)
	r.DecodeRate = rate(len(input), decodeElapsed)
	return r, nil
}

func rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return (float64(n) / (1 << 20)) / d.Seconds()
}
