package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RealtimeClient broadcasts events through the Supabase Realtime REST API, so
// browser tabs subscribed to a channel see them without a Redis broker.
type RealtimeClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewRealtimeClient(supabaseURL, apiKey string) *RealtimeClient {
	return &RealtimeClient{
		endpoint:   strings.TrimSuffix(supabaseURL, "/") + "/realtime/v1/api/broadcast",
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type broadcastMessage struct {
	Topic   string                 `json:"topic"`
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload"`
}

type broadcastRequest struct {
	Messages []broadcastMessage `json:"messages"`
}

// Publish implements events.Publisher.
func (r *RealtimeClient) Publish(ctx context.Context, channel, event string, payload map[string]interface{}) error {
	body, err := json.Marshal(broadcastRequest{Messages: []broadcastMessage{{
		Topic:   channel,
		Event:   event,
		Payload: payload,
	}}})
	if err != nil {
		return fmt.Errorf("failed to encode broadcast: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create broadcast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to broadcast %s: %w", event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("failed to broadcast %s: status %d: %s", event, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
