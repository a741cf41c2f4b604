package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chynaenye/microinsurance-predictor/internal/presentation/cli"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Run(ctx, os.Args, version); err != nil {
		fmt.Fprintf(os.Stderr, "predictord: %v\n", err)
		os.Exit(1)
	}
}
