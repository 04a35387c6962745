// Package webhook delivers visibility notifications to an external
// coach-messaging endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
)

var _ datasources.VisibilityNotifier = (*Notifier)(nil)

type Notifier struct {
	endpoint string
	secret   string
	client   *http.Client
}

func New(endpoint, secret string) *Notifier {
	return &Notifier{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type notification struct {
	Type    string  `json:"type"`
	CoachID string  `json:"coach_id"`
	SentAt  string  `json:"sent_at"`
	Payload payload `json:"payload"`
}

type payload struct {
	Scores       []float64 `json:"scores,omitempty"`
	FromStanding string    `json:"from_standing,omitempty"`
	ToStanding   string    `json:"to_standing,omitempty"`
}

func (n *Notifier) NotifyVisibilityDeclining(ctx context.Context, coachID string, scores []float64) error {
	return n.send(ctx, notification{
		Type:    "visibility_declining",
		CoachID: coachID,
		Payload: payload{Scores: scores},
	})
}

func (n *Notifier) NotifyStandingChanged(ctx context.Context, coachID string, from, to domain.Standing) error {
	return n.send(ctx, notification{
		Type:    "standing_changed",
		CoachID: coachID,
		Payload: payload{FromStanding: string(from), ToStanding: string(to)},
	})
}

func (n *Notifier) send(ctx context.Context, note notification) error {
	note.SentAt = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.secret != "" {
		req.Header.Set("Authorization", "Bearer "+n.secret)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
