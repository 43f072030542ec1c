package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const (
	channelPrefix = "pitch_chunks:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // owner id to subscription
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func ChannelName(ownerID string) string {
	return channelPrefix + ownerID
}

// PublishChunk publishes a streamed fragment to the owner's channel.
func (ps *RedisPubSub) PublishChunk(ctx context.Context, chunk domain.PitchChunk) error {
	message, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to marshal pitch chunk: %w", err)
	}

	channel := ChannelName(chunk.OwnerID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe delivers every chunk published for ownerID to callback until ctx
// is done or Unsubscribe is called. A second Subscribe for the same owner is
// a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, ownerID string, callback func(*domain.PitchChunk)) error {
	channel := ChannelName(ownerID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[ownerID]; exists {
		ps.subscriberMu.Unlock()
		return nil
	}
	pubsub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[ownerID] = pubsub
	ps.subscriberMu.Unlock()

	// Wait for the subscription to be confirmed so no chunk published right
	// after Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		ps.subscriberMu.Lock()
		delete(ps.subscribers, ownerID)
		ps.subscriberMu.Unlock()
		pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	go func() {
		defer func() {
			ps.logger.Debug("Closing chunk subscription")
			pubsub.Close()
			ps.subscriberMu.Lock()
			if ps.subscribers[ownerID] == pubsub {
				delete(ps.subscribers, ownerID)
			}
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var chunk domain.PitchChunk
				if err := json.Unmarshal([]byte(msg.Payload), &chunk); err != nil {
					ps.logger.Errorf("Failed to unmarshal pitch chunk from channel %s: %v", channel, err)
					continue
				}
				callback(&chunk)

			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (ps *RedisPubSub) Unsubscribe(ownerID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[ownerID]; exists {
		pubsub.Close()
		delete(ps.subscribers, ownerID)
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for ownerID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, ownerID)
	}
}
