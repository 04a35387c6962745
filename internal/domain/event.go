package domain

import (
	"errors"
	"time"
)

// ActivityEventType enumerates the activity feed events the engine
// consumes from the booking, review, community, and payment systems.
type ActivityEventType string

const (
	EventSessionCompleted  ActivityEventType = "session_completed"
	EventReviewSubmitted   ActivityEventType = "review_submitted"
	EventPostPublished     ActivityEventType = "post_published"
	EventReactionAdded     ActivityEventType = "reaction_added"
	EventFreeCallConverted ActivityEventType = "free_call_converted"
	EventRequestReceived   ActivityEventType = "request_received"
)

// IsValid reports whether the type is a known activity event.
func (t ActivityEventType) IsValid() bool {
	switch t {
	case EventSessionCompleted, EventReviewSubmitted, EventPostPublished,
		EventReactionAdded, EventFreeCallConverted, EventRequestReceived:
		return true
	default:
		return false
	}
}

// ActivityEvent is one entry from the activity feed.
type ActivityEvent struct {
	CoachID   string            `json:"coach_id"`
	Type      ActivityEventType `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
}

// Validate checks the event's required fields.
func (e ActivityEvent) Validate() error {
	if e.CoachID == "" {
		return ErrEventMissingCoachID
	}
	if !e.Type.IsValid() {
		return ErrEventUnknownType
	}
	if e.Timestamp.IsZero() {
		return ErrEventMissingTimestamp
	}
	return nil
}

// PointsPolicy maps activity events to reputation point awards.
type PointsPolicy struct {
	SessionCompleted  int
	ReviewSubmitted   int
	PostPublished     int
	ReactionAdded     int
	FreeCallConverted int
}

// DefaultPointsPolicy returns the default point awards.
func DefaultPointsPolicy() PointsPolicy {
	return PointsPolicy{
		SessionCompleted:  20,
		ReviewSubmitted:   15,
		PostPublished:     10,
		ReactionAdded:     2,
		FreeCallConverted: 25,
	}
}

// PointsFor returns the point award for an event type. Incoming
// requests carry no points; they only reset rotation compensation.
func (p PointsPolicy) PointsFor(t ActivityEventType) int {
	switch t {
	case EventSessionCompleted:
		return p.SessionCompleted
	case EventReviewSubmitted:
		return p.ReviewSubmitted
	case EventPostPublished:
		return p.PostPublished
	case EventReactionAdded:
		return p.ReactionAdded
	case EventFreeCallConverted:
		return p.FreeCallConverted
	default:
		return 0
	}
}

var (
	ErrEventMissingCoachID   = errors.New("activity event missing coach id")
	ErrEventUnknownType      = errors.New("unknown activity event type")
	ErrEventMissingTimestamp = errors.New("activity event missing timestamp")

	// ErrStaleWrite is returned when a write loses last-write-wins
	// timestamp comparison against stored state.
	ErrStaleWrite = errors.New("write is stale, newer state already stored")
)
