package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	EventMatchRequest = "match.request"
	EventMatchCreated = "match.created"
)

type Event struct {
	EventType   string `json:"event_type"`
	RecipientID int    `json:"recipient_id"`
	ActorID     int    `json:"actor_id"`
	MatchID     int    `json:"match_id,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// RedisPublisher publishes events to a channel and to a per-recipient channel
// so a websocket gateway can subscribe to either.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisPublisher(rdb *redis.Client, channel string, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel, logger: logger}
}

func (p *RedisPublisher) MatchRequest(ctx context.Context, recipientID, actorID int) error {
	return p.publish(ctx, &Event{EventType: EventMatchRequest, RecipientID: recipientID, ActorID: actorID})
}

func (p *RedisPublisher) MatchCreated(ctx context.Context, recipientID, actorID, matchID int) error {
	return p.publish(ctx, &Event{EventType: EventMatchCreated, RecipientID: recipientID, ActorID: actorID, MatchID: matchID})
}

func (p *RedisPublisher) publish(ctx context.Context, event *Event) error {
	event.Timestamp = time.Now().Unix()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.EventType, err)
	}
	userChannel := fmt.Sprintf("%s:user:%d", p.channel, event.RecipientID)
	if err := p.rdb.Publish(ctx, userChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to user channel: %w", event.EventType, err)
	}

	p.logger.Debug("event published",
		zap.String("event_type", event.EventType),
		zap.Int("recipient_id", event.RecipientID))
	return nil
}

// LogPublisher only logs events. Used when Redis is disabled.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) MatchRequest(_ context.Context, recipientID, actorID int) error {
	p.logger.Info("match request", zap.Int("recipient_id", recipientID), zap.Int("actor_id", actorID))
	return nil
}

func (p *LogPublisher) MatchCreated(_ context.Context, recipientID, actorID, matchID int) error {
	p.logger.Info("match created",
		zap.Int("recipient_id", recipientID),
		zap.Int("actor_id", actorID),
		zap.Int("match_id", matchID))
	return nil
}
