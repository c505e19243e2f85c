package client

import "context"

// Oracle is the minimal contract the analysis layers depend on: a prompt in,
// raw model text out. Implementations may block on network I/O and must be
// safe for concurrent use.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
