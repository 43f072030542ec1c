package generator

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyCompletion = errors.New("model returned an empty completion")

// Chunk is one fragment of a streamed completion. A chunk with Err set is
// the last one sent on the channel.
type Chunk struct {
	Text string
	Err  error
}

//go:generate mockery --name Generator --output ../../mocks
type Generator interface {
	// Stream starts a completion for prompt. The returned channel is closed
	// when the completion ends, fails or ctx is done.
	Stream(ctx context.Context, prompt string) (<-chan Chunk, error)
}

// Collect drains a stream into one string, calling onChunk for every
// non-empty fragment in order. It returns ctx.Err() if ctx ends first.
func Collect(ctx context.Context, chunks <-chan Chunk, onChunk func(text string)) (string, error) {
	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				if err := ctx.Err(); err != nil {
					return "", err
				}
				if strings.TrimSpace(b.String()) == "" {
					return "", ErrEmptyCompletion
				}
				return b.String(), nil
			}
			if chunk.Err != nil {
				return "", chunk.Err
			}
			if chunk.Text == "" {
				continue
			}
			b.WriteString(chunk.Text)
			if onChunk != nil {
				onChunk(chunk.Text)
			}
		}
	}
}

// send delivers c unless ctx ends first.
func send(ctx context.Context, out chan<- Chunk, c Chunk) bool {
	select {
	case out <- c:
		return true
	case <-ctx.Done():
		return false
	}
}
