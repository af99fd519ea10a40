package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jorge-barreto/cex/internal/cex"
	"github.com/jorge-barreto/cex/internal/config"
	"github.com/jorge-barreto/cex/internal/loader"
	"github.com/jorge-barreto/cex/internal/snapshot"
	"github.com/jorge-barreto/cex/internal/ux"
	cli "github.com/urfave/cli/v3"
)

// env is what every document command needs before it can run.
type env struct {
	cfg *config.Config
	log *slog.Logger
	doc *loader.Document
}

func newLogger(cmd *cli.Command) *slog.Logger {
	if cmd.Bool("quiet") {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setup loads the config and the document named by the first argument.
func setup(ctx context.Context, cmd *cli.Command, log *slog.Logger) (*env, error) {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if log == nil {
		log = newLogger(cmd)
	}

	source := cmd.Args().First()
	if source == "" {
		return nil, fmt.Errorf("document source argument is required (file, URL, or -)")
	}

	var doc *loader.Document
	if cmd.Bool("snapshot") {
		snap, err := snapshot.Load(source)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		doc = snap.Document(cex.WithLogger(log.With("source", source)))
	} else {
		doc, err = loader.Load(ctx, source, loader.NewFetcher(cfg.Fetch, log), log)
		if err != nil {
			return nil, err
		}
	}

	return &env{cfg: cfg, log: log, doc: doc}, nil
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   ux.FormatText,
		Usage:   "Output format: text, json, or yaml",
		Validator: func(v string) error {
			if !ux.ValidFormat(v) {
				return fmt.Errorf("unknown format %q (want text, json or yaml)", v)
			}
			return nil
		},
	}
}

// emit writes v in the requested structured format, or calls text for the
// default human-readable output.
func emit(cmd *cli.Command, v any, text func()) error {
	format := cmd.String("format")
	if format == "" || format == ux.FormatText {
		text()
		return nil
	}
	return ux.Encode(os.Stdout, format, v)
}
