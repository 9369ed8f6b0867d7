// Package events announces wizard lifecycle changes so other tabs or
// services can react to them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Event names.
const (
	DraftStarted   = "draft.started"
	DraftSubmitted = "draft.submitted"
	DraftCancelled = "draft.cancelled"
	SubmitFailed   = "draft.submit_failed"
)

type Publisher interface {
	Publish(ctx context.Context, channel, event string, payload map[string]interface{}) error
}

// Message is what subscribers receive on a channel.
type Message struct {
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload"`
}

// RedisPublisher fans events out over Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (r *RedisPublisher) Publish(ctx context.Context, channel, event string, payload map[string]interface{}) error {
	data, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := r.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}
	return nil
}

// Nop discards events; used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, map[string]interface{}) error {
	return nil
}

// Recorder keeps published events in memory.
type Recorder struct {
	Messages []Message
	Channels []string
}

func (r *Recorder) Publish(_ context.Context, channel, event string, payload map[string]interface{}) error {
	r.Channels = append(r.Channels, channel)
	r.Messages = append(r.Messages, Message{Event: event, Payload: payload})
	return nil
}

// UserChannel is the channel carrying one user's wizard events.
func UserChannel(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

// PublishUserEvent publishes on the user's channel and only logs failures;
// events never block the wizard.
func PublishUserEvent(ctx context.Context, p Publisher, userID, event string, payload map[string]interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, UserChannel(userID), event, payload); err != nil {
		log.Printf("Warning: failed to publish %s for user %s: %v", event, userID, err)
	}
}

// Event payloads
func DraftStartedPayload(draftID uuid.UUID, mode string) map[string]interface{} {
	return map[string]interface{}{
		"draft_id": draftID.String(),
		"mode":     mode,
	}
}

func DraftSubmittedPayload(draftID uuid.UUID, caseStudyID string) map[string]interface{} {
	return map[string]interface{}{
		"draft_id":      draftID.String(),
		"case_study_id": caseStudyID,
		"status":        "submitted",
	}
}

func DraftCancelledPayload(draftID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"draft_id": draftID.String(),
		"status":   "cancelled",
	}
}

func SubmitFailedPayload(draftID uuid.UUID, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"draft_id": draftID.String(),
		"status":   "failed",
		"error":    errorMsg,
	}
}
