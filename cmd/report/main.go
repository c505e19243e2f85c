package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/chatsafety/sentinel/internal/ai"
	"github.com/chatsafety/sentinel/internal/scoring"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "report",
		Usage: "Score prediction files against labeled ground truth",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "labeled-data",
				Aliases:  []string{"l"},
				Usage:    "Path to the labeled ground-truth CSV file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "pattern",
				Aliases:  []string{"p"},
				Usage:    "Glob pattern matching prediction CSV files",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "results.csv",
				Usage:   "Base path for output CSV files",
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			return report(c.String("labeled-data"), c.String("pattern"), c.String("output"))
		},
	}

	return app.Run(context.Background(), os.Args)
}

func report(labeledPath, pattern, output string) error {
	catalog := ai.DefaultCatalog()

	columns := make(map[string]string, catalog.Len())
	for _, question := range catalog.Questions() {
		columns[question.ID] = question.Label
	}

	labeled, err := scoring.LoadLabels(labeledPath, columns)
	if err != nil {
		return err
	}

	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	if len(files) == 0 {
		log.Printf("Warning: no files found matching pattern: %s", pattern)
		return nil
	}

	rep := scoring.NewReport(catalog.QuestionIDs())

	for _, file := range files {
		rows, err := scoring.LoadPredictions(file, catalog.QuestionIDs())
		if err != nil {
			log.Printf("Error processing file %s: %v", file, err)
			continue
		}

		matched := 0

		for _, row := range rows {
			labels, ok := labeled[row.ID]
			if !ok {
				continue
			}

			rep.ObserveRow(row.ID, labels.Values, row.Values)
			matched++
		}

		fmt.Printf("Processed %s: %d of %d rows matched labeled data\n", file, matched, len(rows))
	}

	if rep.Rows() == 0 {
		log.Printf("Warning: no prediction rows matched the labeled data")
		return nil
	}

	paths, err := rep.WriteFiles(output)
	if err != nil {
		return err
	}

	printSummary(rep)

	fmt.Printf("\nResults written to:\n")

	for _, path := range paths {
		fmt.Printf("  %s\n", path)
	}

	return nil
}

func printSummary(rep *scoring.Report) {
	fmt.Printf("\n%-10s %12s %12s %12s %12s %14s\n",
		"Question", "Total", "Accuracy", "Precision", "Recall", "Yes-Only Acc")

	for _, questionID := range rep.QuestionIDs() {
		counts := rep.Counts(questionID)
		metrics := counts.AllCases()

		fmt.Printf("%-10s %12d %11.2f%% %11.2f%% %11.2f%% %13.2f%%\n",
			questionID, counts.TotalCases,
			metrics.Accuracy, metrics.Precision, metrics.Recall,
			counts.YesOnlyAccuracy())
	}
}
