package main

import (
	"context"
	"os"

	"github.com/thalib/ulidgen/cmd/ulidgen/internal/cli"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/logging"
)

func main() {
	// Correlates every log line of this run
	ctx := logging.SetInvocationID(context.Background(), logging.NewInvocationID())

	err := cli.Execute(ctx, os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		cli.ReportError(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}
