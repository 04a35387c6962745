package domain

import (
	"errors"
	"time"
)

// ErrCoachNotFound is returned when no coach profile exists for an ID.
var ErrCoachNotFound = errors.New("coach not found")

// CoachStatus is the moderation state of a coach profile.
type CoachStatus string

const (
	CoachStatusPending   CoachStatus = "pending"
	CoachStatusApproved  CoachStatus = "approved"
	CoachStatusSuspended CoachStatus = "suspended"
	CoachStatusHidden    CoachStatus = "hidden"
)

// IsValid reports whether the status is a known moderation state.
func (s CoachStatus) IsValid() bool {
	switch s {
	case CoachStatusPending, CoachStatusApproved, CoachStatusSuspended, CoachStatusHidden:
		return true
	default:
		return false
	}
}

// CoachProfile is a read-only snapshot of a coach as published by the
// profile-management system. Optional fields are pointers; scoring
// treats absent fields as contributing zero rather than erroring.
type CoachProfile struct {
	ID                string        `json:"id"`
	DisplayName       string        `json:"display_name"`
	Specializations   []LifeArea    `json:"specializations"`
	FocusTopics       []string      `json:"focus_topics"`
	AddressedProblems []string      `json:"addressed_problems"`
	TargetAudience    []string      `json:"target_audience"`
	Style             CoachingStyle `json:"style"`
	Archetype         Archetype     `json:"archetype"`
	Mission           string        `json:"mission"`
	SessionModes      []SessionMode `json:"session_modes"`
	ChatChannels      []string      `json:"chat_channels"`
	Location          *string       `json:"location,omitempty"`
	HourlyRate        *float64      `json:"hourly_rate,omitempty"`
	Rating            float64       `json:"rating"`
	ReviewCount       int           `json:"review_count"`
	YearsExperience   int           `json:"years_experience"`
	Certifications    []string      `json:"certifications"`
	Status            CoachStatus   `json:"status"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// HasIdentity reports whether the snapshot carries the fields required
// to participate in ranking at all. Profiles failing this are skipped
// individually; they never abort a whole ranking computation.
func (p CoachProfile) HasIdentity() bool {
	return p.ID != ""
}

// SupportsMode reports whether the coach offers the given session mode.
// A hybrid coach satisfies both online and in-person preferences.
func (p CoachProfile) SupportsMode(mode SessionMode) bool {
	for _, m := range p.SessionModes {
		if m == mode || m == SessionModeHybrid {
			return true
		}
	}
	return false
}
