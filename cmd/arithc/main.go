// Command arithc is a small reference driver around the arith package: it
// encodes and decodes files with the adaptive arithmetic coder, and can
// compare the coder's throughput and ratio against other codecs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()

	app := &cli.Command{
		Name:  "arithc",
		Usage: "adaptive arithmetic coder reference driver",
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			benchCommand(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "arithc: %v\n", err)
		os.Exit(1)
	}
}

// openInput opens path for reading, treating "-" as stdin.
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path) //nolint:gosec // CLI tool opens user-specified files.
}

// createOutput opens path for writing, treating "-" as stdout.
func createOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path) //nolint:gosec // CLI tool creates user-specified files.
}
