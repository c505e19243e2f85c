package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/chatsafety/sentinel/internal/ai"
	"github.com/chatsafety/sentinel/internal/export"
	"github.com/chatsafety/sentinel/internal/runner"
	"github.com/chatsafety/sentinel/internal/setup"
)

var ErrNoInputFiles = errors.New("no input files to analyze")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:      "analyzer",
		Usage:     "Analyze chat transcripts for grooming indicators",
		ArgsUsage: "[files...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "analysis",
				Usage:   "Output directory for analysis results",
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "Glob pattern matching additional input files",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			paths, err := collectInputs(c)
			if err != nil {
				return err
			}

			app, err := setup.InitializeApp("analyzer")
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.Cleanup()

			catalog := ai.DefaultCatalog()
			analyzer := ai.NewConversationAnalyzer(
				app.Oracle, catalog, app.Config.Worker.Questions, app.Logger,
			)

			results, summary := runner.New(
				analyzer, app.Config.Worker.Conversations, app.Logger,
			).Run(ctx, paths)

			outDir := c.String("output")
			if err := export.New(outDir, catalog, app.Logger).ExportAll(results); err != nil {
				return err
			}

			fmt.Printf("Analysis complete:\n")
			fmt.Printf("  Files processed: %d\n", summary.Processed)
			fmt.Printf("  Files failed: %d\n", summary.Failed)
			fmt.Printf("  Files skipped: %d\n", summary.Skipped)
			fmt.Printf("  Conversations analyzed: %d\n", summary.Conversations)
			fmt.Printf("  Results written to: %s\n", outDir)

			return nil
		},
	}

	return app.Run(context.Background(), os.Args)
}

// collectInputs merges positional arguments with pattern matches, in that
// order.
func collectInputs(c *cli.Command) ([]string, error) {
	paths := c.Args().Slice()

	if pattern := c.String("pattern"); pattern != "" {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		return nil, ErrNoInputFiles
	}

	return paths, nil
}
