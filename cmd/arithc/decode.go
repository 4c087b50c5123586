package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dsnet/arith"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "arithmetic-decode a file produced by encode",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file path (- for stdout)",
			},
		},
		Action: runDecode,
	}
}

func runDecode(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	in, err := openInput(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	dec, err := arith.NewDecoder(in, nil)
	if err != nil {
		return fmt.Errorf("constructing decoder: %w", err)
	}

	out, err := createOutput(cmd.String("output"))
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	for {
		sym, err := dec.Decode()
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}
		if sym == 256 {
			return nil
		}
		if _, err := out.Write([]byte{byte(sym)}); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}
