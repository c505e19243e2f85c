package runner

import (
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/chatsafety/sentinel/internal/ai"
	"github.com/chatsafety/sentinel/internal/conversation"
)

// FileResult bundles the conversations of one input file with their analysis
// results, index-aligned.
type FileResult struct {
	Path          string
	Conversations []*conversation.Conversation
	Results       []*ai.AnalysisResult
}

// Summary counts how the batch's input files fared.
type Summary struct {
	Processed     int
	Failed        int
	Skipped       int
	Conversations int
}

// Runner fans the analyzer over a batch of input files.
type Runner struct {
	analyzer *ai.ConversationAnalyzer
	workers  int
	logger   *zap.Logger
}

// New creates a runner that analyzes up to workers files concurrently.
func New(analyzer *ai.ConversationAnalyzer, workers int, logger *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}

	return &Runner{
		analyzer: analyzer,
		workers:  workers,
		logger:   logger.Named("runner"),
	}
}

type fileStatus int

const (
	statusProcessed fileStatus = iota
	statusFailed
	statusSkipped
)

// Run analyzes every path and returns one FileResult per successfully loaded
// file, in input order regardless of completion order. Files with an
// unsupported extension are skipped, files that fail to load are dropped
// with an error log, and the batch continues either way.
func (r *Runner) Run(ctx context.Context, paths []string) ([]*FileResult, Summary) {
	results := make([]*FileResult, len(paths))
	statuses := make([]fileStatus, len(paths))

	p := pool.New().WithMaxGoroutines(r.workers)

	for i, path := range paths {
		p.Go(func() {
			results[i], statuses[i] = r.runFile(ctx, path)
		})
	}

	p.Wait()

	var summary Summary

	ordered := make([]*FileResult, 0, len(paths))

	for i, result := range results {
		switch statuses[i] {
		case statusProcessed:
			summary.Processed++
			summary.Conversations += len(result.Conversations)
			ordered = append(ordered, result)
		case statusFailed:
			summary.Failed++
		case statusSkipped:
			summary.Skipped++
		}
	}

	r.logger.Info("Batch finished",
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("conversations", summary.Conversations))

	return ordered, summary
}

func (r *Runner) runFile(ctx context.Context, path string) (*FileResult, fileStatus) {
	conversations, err := conversation.LoadFile(path)
	if err != nil {
		if errors.Is(err, conversation.ErrUnsupportedFormat) {
			r.logger.Warn("Skipping file with unsupported format", zap.String("path", path))
			return nil, statusSkipped
		}

		r.logger.Error("Failed to load file", zap.String("path", path), zap.Error(err))

		return nil, statusFailed
	}

	result := &FileResult{
		Path:          path,
		Conversations: conversations,
		Results:       make([]*ai.AnalysisResult, len(conversations)),
	}

	for i, conv := range conversations {
		result.Results[i] = r.analyzer.Analyze(ctx, conv)
	}

	return result, statusProcessed
}
