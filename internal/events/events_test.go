package events_test

import (
	"context"
	"errors"
	"testing"

	"designfoli-web/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failing struct{}

func (failing) Publish(context.Context, string, string, map[string]interface{}) error {
	return errors.New("broker down")
}

func TestPublishUserEvent(t *testing.T) {
	rec := &events.Recorder{}
	id := uuid.New()

	events.PublishUserEvent(context.Background(), rec, "user-1", events.DraftSubmitted, events.DraftSubmittedPayload(id, "cs-1"))

	require.Len(t, rec.Messages, 1)
	assert.Equal(t, "user:user-1", rec.Channels[0])
	assert.Equal(t, events.DraftSubmitted, rec.Messages[0].Event)
	assert.Equal(t, "cs-1", rec.Messages[0].Payload["case_study_id"])
}

func TestPublishUserEvent_IgnoresFailures(t *testing.T) {
	assert.NotPanics(t, func() {
		events.PublishUserEvent(context.Background(), failing{}, "u", events.DraftCancelled, events.DraftCancelledPayload(uuid.New()))
		events.PublishUserEvent(context.Background(), nil, "u", events.DraftCancelled, nil)
	})
}

func TestNop(t *testing.T) {
	assert.NoError(t, events.Nop{}.Publish(context.Background(), "c", "e", nil))
}
