package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge-barreto/cex/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "cex",
		Usage:       "Query CITE Exchange (CEX) documents",
		Description: "Run 'cex docs' for documentation on the format, queries, and configuration.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to a YAML config file (default $CEX_CONFIG or .cex.yaml)"},
			&cli.BoolFlag{Name: "verbose", Usage: "Log debug diagnostics to stderr"},
			&cli.BoolFlag{Name: "quiet", Usage: "Suppress warnings about malformed blocks"},
			&cli.BoolFlag{Name: "snapshot", Usage: "Treat the source as a snapshot written by 'cex export'"},
		},
		Commands: []*cli.Command{
			infoCmd(),
			labelsCmd(),
			blocksCmd(),
			tableCmd(),
			valuesCmd(),
			modelsCmd(),
			collectionsCmd(),
			relationsCmd(),
			exportCmd(),
			serveCmd(),
			docsCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		stop()
		os.Exit(1)
	}
}
