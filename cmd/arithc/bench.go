package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dsnet/arith/internal/bench"
	"github.com/dsnet/arith/internal/testutil"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "compare the coder against other codecs on a file (or generated data)",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "repeat",
				Value: 1,
				Usage: "number of encode/decode passes to average over",
			},
			&cli.IntFlag{
				Name:  "size",
				Value: 1 << 20,
				Usage: "size of the generated input when no file is given",
			},
		},
		Action: runBench,
	}
}

func runBench(_ context.Context, cmd *cli.Command) error {
	var input []byte
	if cmd.NArg() == 1 {
		in, err := openInput(cmd.Args().First())
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer in.Close()

		input, err = readAll(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	} else {
		input = testutil.NewRand(0).Bytes(cmd.Int("size"))
	}

	report, err := bench.Run(input, cmd.Int("repeat"))
	if err != nil {
		return fmt.Errorf("running bench: %w", err)
	}

	fmt.Printf("cpu: %s\n", report.CPU)
	fmt.Printf("%-8s %10s %10s %8s %12s %12s\n", "codec", "in", "out", "ratio", "enc MB/s", "dec MB/s")
	for _, r := range report.Results {
		fmt.Printf("%-8s %10d %10d %8.2f %12.2f %12.2f\n",
			r.Name, r.InputBytes, r.OutputBytes, r.Ratio, r.EncodeRate, r.DecodeRate)
	}
	return nil
}
