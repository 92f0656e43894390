package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const publishTimeout = 2 * time.Second

var ErrSubscriptionClosed = errors.New("subscription closed")

// Client - publishes session snapshots so another process can mirror the board.
// Nothing is stored: snapshots only go through PUBLISH.
type Client struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
}

// New - connects to redis and checks the connection.
func New(ctx context.Context, logger *slog.Logger, addr, channel string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(logger, rdb, channel), nil
}

func NewWithClient(logger *slog.Logger, rdb *redis.Client, channel string) *Client {
	return &Client{
		logger:  logger.With("component", "redis_broadcaster"),
		client:  rdb,
		channel: channel + ":events",
	}
}

func (that *Client) Channel() string {
	return that.channel
}

// Render - publishes the snapshot.
func (that *Client) Render(ctx context.Context, session entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	receivers, err := that.client.Publish(ctx, that.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish session: %w", err)
	}

	that.logger.Debug("session published", "session", session.ID, "receivers", receivers)

	return nil
}

// Watch - calls fn for every snapshot published on the channel until ctx is done or fn fails.
func (that *Client) Watch(ctx context.Context, fn func(entity.Session) error) error {
	log := that.logger.With("method", "Watch")

	pubsub := that.client.Subscribe(ctx, that.channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			log.Error("failed to close subscription", "error", err)
		}
	}()

	// wait for the subscription to be confirmed so no message is missed after Watch starts
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return ErrSubscriptionClosed
			}

			var session entity.Session
			if err := json.Unmarshal([]byte(msg.Payload), &session); err != nil {
				log.Error("failed to unmarshal session", "error", err)
				continue
			}

			if err := fn(session); err != nil {
				return err
			}
		}
	}
}

func (that *Client) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
