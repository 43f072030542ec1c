package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const (
	defaultMaxMessages = 10 // SQS upper bound per receive
	defaultWaitTime    = 20 // long polling, seconds
)

// ErrPermanent marks a message that will never succeed. It is deleted
// instead of being left for redelivery.
var ErrPermanent = errors.New("permanent message failure")

// MessageQueue is the part of queue.SQSService a poller needs.
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// Handler processes one decoded message.
type Handler interface {
	Name() string
	Handle(ctx context.Context, msg queue.Message) error
}

// SQSWorker runs workerCount goroutines that poll one queue and hand each
// message to the handler. A message is deleted after it is handled, or when
// it fails permanently; anything else becomes visible again after the
// queue's visibility timeout.
type SQSWorker struct {
	queue        MessageQueue
	queueURL     string
	handler      Handler
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	waitGroup    sync.WaitGroup
}

func NewSQSWorker(
	q MessageQueue,
	queueURL string,
	handler Handler,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *SQSWorker {
	if workerCount < 1 {
		workerCount = 1
	}
	return &SQSWorker{
		queue:        q,
		queueURL:     queueURL,
		handler:      handler,
		logger:       logger.With(zap.String("worker", handler.Name())),
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  defaultMaxMessages,
		waitTime:     defaultWaitTime,
		shutdownChan: make(chan struct{}),
	}
}

func (w *SQSWorker) Start() {
	w.logger.Info("Starting workers", zap.Int("count", w.workerCount), zap.String("queue", w.queueURL))

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

// Stop is safe to call more than once.
func (w *SQSWorker) Stop() {
	w.logger.Info("Stopping workers...")
	w.shutdownOnce.Do(func() { close(w.shutdownChan) })
	w.waitGroup.Wait()
	w.logger.Info("All workers stopped")
}

func (w *SQSWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-w.shutdownChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	w.logger.Infof("Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if _, err := w.ProcessMessages(ctx); err != nil && ctx.Err() == nil {
				w.logger.Errorf("Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

// ProcessMessages runs one receive cycle and returns how many messages were
// handled successfully.
func (w *SQSWorker) ProcessMessages(ctx context.Context) (int, error) {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return 0, fmt.Errorf("failed to receive messages: %w", err)
	}

	handled := 0
	for _, msg := range messages {
		err := msg.DecodeErr
		if err == nil {
			err = w.handler.Handle(ctx, msg.Message)
		} else {
			err = fmt.Errorf("%w: %w", ErrPermanent, err)
		}

		switch {
		case err == nil:
			handled++
		case errors.Is(err, ErrPermanent):
			w.logger.Error("Discarding message", err)
		default:
			// left on the queue for redelivery
			w.logger.Error("Failed to process message", err)
			continue
		}

		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Error("Failed to delete message", err)
		}
	}

	return handled, nil
}

func permanent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPermanent, fmt.Sprintf(format, args...))
}
