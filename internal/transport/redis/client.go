package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/fourinarow/internal/event"
)

// Client - publishes match events on a Redis channel so a renderer in another process can follow along.
type Client struct {
	client  *redis.Client
	channel string
}

// New - connects to Redis and checks the connection.
func New(ctx context.Context, addr, channel string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(rdb, channel), nil
}

func NewWithClient(client *redis.Client, channel string) *Client {
	return &Client{
		client:  client,
		channel: channel,
	}
}

// Publish - sends the event as JSON to the channel.
func (that *Client) Publish(ctx context.Context, evt event.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscribe - listens on the channel; the subscription is active once this returns.
func (that *Client) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := that.client.Subscribe(ctx, that.channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", that.channel, err)
	}

	return &Subscription{pubsub: pubsub}, nil
}

func (that *Client) Close() error {
	return that.client.Close()
}

type Subscription struct {
	pubsub *redis.PubSub
}

// Next - blocks until the next event arrives or ctx is done.
func (that *Subscription) Next(ctx context.Context) (event.Event, error) {
	msg, err := that.pubsub.ReceiveMessage(ctx)
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to receive event: %w", err)
	}

	var evt event.Event
	if err = json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
		return event.Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return evt, nil
}

func (that *Subscription) Close() error {
	return that.pubsub.Close()
}
