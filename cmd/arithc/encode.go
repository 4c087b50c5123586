package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dsnet/arith"
)

var errInvalidArgCount = errors.New("expected exactly one argument: file path (or - for stdin)")

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "arithmetic-encode a file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file path (- for stdout)",
			},
		},
		Action: runEncode,
	}
}

func runEncode(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	in, err := openInput(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	data, err := readAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := createOutput(cmd.String("output"))
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	enc := arith.NewEncoder(out, nil)
	for _, b := range data {
		if err := enc.Encode(int(b)); err != nil {
			return fmt.Errorf("encoding: %w", err)
		}
	}
	if err := enc.Finalize(); err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}
	return nil
}

func readAll(f *os.File) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, 32*1024)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			return buf, err
		}
	}
}
