// Package notifications delivers the user's in-app notifications, live over
// a WebSocket when the server offers one, otherwise by polling the REST
// endpoint.
package notifications

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
)

// WSMessage is the WebSocket message envelope.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

const eventNotification = "notification"

// Streamer pushes notifications into a channel until its context ends.
type Streamer struct {
	streamURL    string // empty disables the socket; polling only
	pollInterval time.Duration
	client       *api.Client
	tokens       api.TokenSource
	logger       *zap.Logger

	dialBackoffMax time.Duration
}

// NewStreamer creates a streamer. streamURL may be empty to force polling.
func NewStreamer(streamURL string, pollInterval time.Duration, client *api.Client, tokens api.TokenSource, logger *zap.Logger) *Streamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &Streamer{
		streamURL:      streamURL,
		pollInterval:   pollInterval,
		client:         client,
		tokens:         tokens,
		logger:         logger,
		dialBackoffMax: 30 * time.Second,
	}
}

// Run blocks, delivering notifications to out until ctx is cancelled. The
// channel is not closed; the caller owns it.
func (s *Streamer) Run(ctx context.Context, out chan<- models.Notification) error {
	if s.streamURL == "" {
		return s.poll(ctx, out)
	}
	return s.stream(ctx, out)
}

// stream dials the socket and re-dials with backoff after any failure.
func (s *Streamer) stream(ctx context.Context, out chan<- models.Notification) error {
	backoff := time.Second
	for {
		if err := s.readOnce(ctx, out); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("notification stream dropped", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > s.dialBackoffMax {
			backoff = s.dialBackoffMax
		}
	}
}

// readOnce dials the socket and reads until the connection fails.
func (s *Streamer) readOnce(ctx context.Context, out chan<- models.Notification) error {
	dialURL := s.streamURL
	if s.tokens != nil {
		if token := s.tokens.Token(); token != "" {
			q := url.Values{"token": []string{token}}
			dialURL += "?" + q.Encode()
		}
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, dialURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	s.logger.Info("notification stream connected")

	// Unblock ReadMessage when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}
		if msg.Event != eventNotification {
			continue
		}
		var n models.Notification
		if err := json.Unmarshal(msg.Data, &n); err != nil {
			s.logger.Warn("bad notification payload", zap.Error(err))
			continue
		}
		select {
		case out <- n:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// poll fetches the notification list on an interval and delivers records not
// seen before.
func (s *Streamer) poll(ctx context.Context, out chan<- models.Notification) error {
	seen := make(map[models.ID]struct{})
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		list, err := s.client.ListNotifications(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("notification poll failed", zap.String("error", api.ErrorMessage(err)))
		}
		for _, n := range list {
			if _, ok := seen[n.ID]; ok {
				continue
			}
			seen[n.ID] = struct{}{}
			select {
			case out <- n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
