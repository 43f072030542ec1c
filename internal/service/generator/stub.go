package generator

import (
	"context"
	"strings"
	"time"
)

const stubCompletion = `Hi there,

I noticed your team is growing quickly and wanted to reach out with something that could help.

We work with teams like yours to remove the busywork that slows them down, so they can focus on the work that matters. Most see results within the first month.

Would you be open to a 15 minute call next week to see if it is a fit?

Best,
`

// StubGenerator streams a fixed completion word by word. It is used for
// local development without model credentials and in tests.
type StubGenerator struct {
	Completion string
	Delay      time.Duration
	Err        error
}

func NewStubGenerator(delay time.Duration) *StubGenerator {
	return &StubGenerator{Completion: stubCompletion, Delay: delay}
}

func (s *StubGenerator) Stream(ctx context.Context, prompt string) (<-chan Chunk, error) {
	out := make(chan Chunk)
	completion := s.Completion

	go func() {
		defer close(out)
		if s.Err != nil {
			send(ctx, out, Chunk{Err: s.Err})
			return
		}
		for _, word := range strings.SplitAfter(completion, " ") {
			if s.Delay > 0 {
				timer := time.NewTimer(s.Delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return
				case <-timer.C:
				}
			}
			if !send(ctx, out, Chunk{Text: word}) {
				return
			}
		}
	}()

	return out, nil
}
