package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jorge-barreto/cex/internal/api"
	"github.com/jorge-barreto/cex/internal/cex"
	"github.com/jorge-barreto/cex/internal/docs"
	"github.com/jorge-barreto/cex/internal/snapshot"
	"github.com/jorge-barreto/cex/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Summarize a document",
		ArgsUsage: "<src>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			ux.RenderDocument(os.Stdout, e.doc, e.cfg.DataModels.Label, e.cfg.DataModels.ModelColumn)
			return nil
		},
	}
}

func labelsCmd() *cli.Command {
	return &cli.Command{
		Name:      "labels",
		Usage:     "List block labels in discovery order",
		ArgsUsage: "<src>",
		Flags:     []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			st := e.doc.Store
			return emit(cmd, st.Labels(), func() { ux.RenderLabels(os.Stdout, st) })
		},
	}
}

func blocksCmd() *cli.Command {
	return &cli.Command{
		Name:      "blocks",
		Usage:     "Print the raw bodies stored under a label",
		ArgsUsage: "<src> <label>",
		Flags:     []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			label := cmd.Args().Get(1)
			if label == "" {
				return fmt.Errorf("label argument is required")
			}
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			bodies := e.doc.Store.Bodies(label)
			return emit(cmd, bodies, func() { ux.RenderBodies(os.Stdout, label, bodies) })
		},
	}
}

func tableCmd() *cli.Command {
	return &cli.Command{
		Name:      "table",
		Usage:     "Concatenate the pipe-delimited rows of every block under a label",
		ArgsUsage: "<src> <label>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-header", Usage: "Omit the header line"},
			&cli.BoolFlag{Name: "rows", Usage: "Render each block as an aligned table"},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			label := cmd.Args().Get(1)
			if label == "" {
				return fmt.Errorf("label argument is required")
			}
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			st := e.doc.Store

			if cmd.Bool("rows") {
				tables := st.Tables(label)
				return emit(cmd, tables, func() {
					for i, t := range tables {
						if i > 0 {
							fmt.Println()
						}
						ux.RenderTable(os.Stdout, t)
					}
				})
			}

			data := st.DelimitedData(label, !cmd.Bool("no-header"))
			return emit(cmd, map[string]string{"label": label, "data": data}, func() {
				if data != "" {
					fmt.Println(data)
				}
			})
		},
	}
}

func valuesCmd() *cli.Command {
	return &cli.Command{
		Name:      "values",
		Usage:     "List the distinct values of a column",
		ArgsUsage: "<src>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "column", Aliases: []string{"c"}, Usage: "Column to collect values from", Required: true},
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "Only rows where this column..."},
			&cli.StringFlag{Name: "value", Aliases: []string{"v"}, Usage: "...equals this value"},
			&cli.StringFlag{Name: "label", Aliases: []string{"l"}, Usage: "Block label (default: configured datamodels label)"},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("value") && cmd.String("key") == "" {
				return fmt.Errorf("--value requires --key")
			}
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			label := cmd.String("label")
			if label == "" {
				label = e.cfg.DataModels.Label
			}
			values := e.doc.Store.UniqueColumnValues(cex.ColumnQuery{
				Label:       label,
				ValueColumn: cmd.String("column"),
				KeyColumn:   cmd.String("key"),
				KeyValue:    cmd.String("value"),
			})
			return emit(cmd, values, func() { ux.RenderValues(os.Stdout, values) })
		},
	}
}

func modelsCmd() *cli.Command {
	return &cli.Command{
		Name:      "models",
		Usage:     "List the data models declared in datamodels blocks",
		ArgsUsage: "<src>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "column", Usage: "Model column (default from config)"},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			dm := e.cfg.DataModels
			column := cmd.String("column")
			if column == "" {
				column = dm.ModelColumn
			}
			models := e.doc.Store.UniqueColumnValues(cex.ColumnQuery{Label: dm.Label, ValueColumn: column})
			return emit(cmd, models, func() { ux.RenderValues(os.Stdout, models) })
		},
	}
}

func collectionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "collections",
		Usage:     "List the collections that implement a data model",
		ArgsUsage: "<src> <model>",
		Flags:     []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			model := cmd.Args().Get(1)
			if model == "" {
				return fmt.Errorf("model argument is required")
			}
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			dm := e.cfg.DataModels
			collections := e.doc.Store.UniqueColumnValues(cex.ColumnQuery{
				Label:       dm.Label,
				ValueColumn: dm.CollectionColumn,
				KeyColumn:   dm.ModelColumn,
				KeyValue:    model,
			})
			return emit(cmd, collections, func() { ux.RenderValues(os.Stdout, collections) })
		},
	}
}

func relationsCmd() *cli.Command {
	return &cli.Command{
		Name:      "relations",
		Usage:     "Extract citerelationset blocks",
		ArgsUsage: "<src>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-header", Usage: "Omit the data header of each relation set"},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			includeHeader := e.cfg.IncludeRelationHeader()
			if cmd.Bool("no-header") {
				includeHeader = false
			}
			sets := e.doc.Store.RelationSets(includeHeader)
			return emit(cmd, sets, func() { ux.RenderRelationSets(os.Stdout, sets) })
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write a JSON or YAML snapshot of the parsed blocks",
		ArgsUsage: "<src> <out.json|out.yaml>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Args().Get(1)
			if out == "" {
				return fmt.Errorf("output path argument is required")
			}
			e, err := setup(ctx, cmd, nil)
			if err != nil {
				return err
			}
			if err := snapshot.New(e.doc).Save(out); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fmt.Printf("%s✓%s wrote %d labels to %s (%s)\n",
				ux.Green, ux.Reset, e.doc.Store.Len(), out, snapshot.FormatFor(out))
			return nil
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve queries over one document via HTTP",
		ArgsUsage: "<src>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			e, err := setup(ctx, cmd, log)
			if err != nil {
				return err
			}
			addr := cmd.String("addr")
			if addr == "" {
				addr = e.cfg.Serve.Addr
			}

			httpServer := &http.Server{
				Addr:         addr,
				Handler:      api.NewServer(e.doc, log, e.cfg),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting cex", "addr", addr, "source", e.doc.Source, "id", e.doc.ID)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'cex docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
