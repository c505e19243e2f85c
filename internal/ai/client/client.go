package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/chatsafety/sentinel/internal/setup/config"
	"github.com/chatsafety/sentinel/pkg/utils"
)

var (
	// ErrOracleUnavailable wraps transport and process failures of the backing model.
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrEmptyResponse is returned when the model produces no choices.
	ErrEmptyResponse = errors.New("empty model response")
)

// OracleClient implements Oracle on top of an OpenAI-compatible chat
// completions endpoint (Ollama serves one at /v1). A shared semaphore caps
// concurrent outstanding calls and a circuit breaker sheds load when the
// backend degrades.
type OracleClient struct {
	client    *openai.Client
	breaker   *gobreaker.CircuitBreaker
	semaphore *semaphore.Weighted
	model     string
	retryOpts utils.RetryOptions
	logger    *zap.Logger
}

// NewOracleClient creates a new OracleClient from config.
func NewOracleClient(cfg *config.Oracle, logger *zap.Logger) *OracleClient {
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithRequestTimeout(time.Duration(cfg.RequestTimeout) * time.Second),
		option.WithMaxRetries(0),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	client := openai.NewClient(opts...)

	// Create circuit breaker settings
	settings := gobreaker.Settings{
		Name:        "oracle",
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
		OnStateChange: func(_ string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	retryOpts := utils.GetOracleRetryOptions()
	retryOpts.MaxRetries = cfg.MaxRetries

	return &OracleClient{
		client:    &client,
		breaker:   gobreaker.NewCircuitBreaker(settings),
		semaphore: semaphore.NewWeighted(cfg.MaxConcurrent),
		model:     cfg.Model,
		retryOpts: retryOpts,
		logger:    logger.Named("oracle"),
	}
}

// Generate sends a single-prompt completion request and returns the raw model text.
// Failures surface as ErrOracleUnavailable; retry is disabled unless configured.
func (c *OracleClient) Generate(ctx context.Context, prompt string) (string, error) {
	// Cap concurrent outstanding calls across all workers
	if err := c.semaphore.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}
	defer c.semaphore.Release(1)

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       c.model,
		Temperature: openai.Float(0.0),
	}

	operation := func() (string, error) {
		result, err := c.breaker.Execute(func() (any, error) {
			resp, err := c.client.Chat.Completions.New(ctx, params)
			if err != nil {
				return nil, err
			}

			if len(resp.Choices) == 0 {
				return nil, ErrEmptyResponse
			}

			return resp.Choices[0].Message.Content, nil
		})
		if err != nil {
			c.logger.Warn("Oracle request failed",
				zap.String("model", c.model),
				zap.Error(err))

			return "", err
		}

		return result.(string), nil
	}

	content, err := utils.WithRetry(ctx, operation, c.retryOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	return content, nil
}
