package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/barcart/barcart/internal"
	"github.com/barcart/barcart/internal/library"
	"github.com/barcart/barcart/internal/mcpserver"
	"github.com/barcart/barcart/internal/report"
	"github.com/barcart/barcart/internal/schema"
	"github.com/barcart/barcart/internal/storage"
	pkgconfig "github.com/barcart/barcart/pkg/config"
)

// errValidationFailed signals a non-zero exit after the report has already
// been written; main must not log it again.
var errValidationFailed = errors.New("validation failed")

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	workers := cfg.Validation.Workers
	if cmd.IsSet("workers") {
		workers = int(cmd.Int("workers"))
	}
	strict := cmd.Bool("strict") || cfg.Validation.WarningsAsErrors

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{cfg.Library.Path}
	}

	var results []library.FileResult
	for _, p := range paths {
		info, statErr := os.Stat(p)
		switch {
		case statErr != nil:
			results = append(results, library.FileResult{Path: p, Failure: statErr.Error()})

		case info.IsDir():
			store, fsErr := storage.NewFS(p)
			if fsErr != nil {
				results = append(results, library.FileResult{Path: p, Failure: fsErr.Error()})
				continue
			}
			batch, batchErr := library.NewService(store).ValidateAll(ctx, workers)
			if batchErr != nil {
				return batchErr
			}
			// Paths come back relative to the scanned directory.
			for i := range batch {
				batch[i].Path = filepath.Join(p, batch[i].Path)
			}
			results = append(results, batch...)

		default:
			data, readErr := os.ReadFile(p)
			if readErr != nil {
				results = append(results, library.FileResult{Path: p, Failure: readErr.Error()})
				continue
			}
			results = append(results, library.ValidateData(p, data))
		}
	}

	if cmd.String("format") == "json" {
		if err := report.JSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		writer := report.NewWriter(os.Stdout)
		for _, fr := range results {
			writer.File(fr)
		}
		writer.Summary(results)
	}

	for _, fr := range results {
		if !fr.Valid() {
			return errValidationFailed
		}
		if strict {
			if _, warnings := fr.Result.Counts(); warnings > 0 {
				return errValidationFailed
			}
		}
	}
	return nil
}

func runSchema(_ context.Context, cmd *cli.Command) error {
	out, err := schema.Generate()
	if err != nil {
		return err
	}
	if path := cmd.String("output"); path != "" {
		return os.WriteFile(path, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if dir := cmd.Args().First(); dir != "" {
		cfg.Library.Path = dir
	}
	return internal.RunWatch(ctx, internal.WithConfig(cfg))
}

func runMCP(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := storage.NewFS(cfg.Library.Path)
	if err != nil {
		return fmt.Errorf("init library: %w", err)
	}
	return mcpserver.New(library.NewService(store)).ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:  "barcart",
		Usage: "Validate cocktail recipe files against the recipe schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "barcart.yaml",
				Value:       "barcart.yaml",
				Sources:     cli.EnvVars("BARCART_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate recipe files or directories; exits non-zero when any file fails",
				ArgsUsage: "[path ...]",
				Action:    runValidate,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: text or json",
						Value: "text",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Treat warnings as failures",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Maximum files validated concurrently",
					},
				},
			},
			{
				Name:   "schema",
				Usage:  "Emit the recipe JSON Schema artifact",
				Action: runSchema,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to a file instead of stdout",
					},
				},
			},
			{
				Name:      "watch",
				Usage:     "Validate the library, then revalidate files as they change",
				ArgsUsage: "[dir]",
				Action:    runWatch,
			},
			{
				Name:   "mcp",
				Usage:  "Serve recipe tools over MCP stdio for editor and LLM integration",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errValidationFailed) {
			os.Exit(1)
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
