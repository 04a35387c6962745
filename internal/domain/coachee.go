package domain

import (
	"errors"
	"sort"
)

// ErrCoacheeRequestNotFound is returned when a coachee has no stored
// assessment to rank against.
var ErrCoacheeRequestNotFound = errors.New("coachee request not found")

// CoacheeRequest is one coachee's matching request: their life-area
// self-assessment plus stated preferences. It is immutable for the
// duration of a single ranking computation.
type CoacheeRequest struct {
	CoacheeID          string                `json:"coachee_id"`
	AreaScores         map[LifeArea]float64  `json:"area_scores"`
	SelectedObjectives map[LifeArea][]string `json:"selected_objectives"`
	Archetype          Archetype             `json:"archetype"`
	Values             []string              `json:"values"`
	Budget             *float64              `json:"budget,omitempty"`
	PreferredLocation  *string               `json:"preferred_location,omitempty"`
	PreferredMode      *SessionMode          `json:"preferred_mode,omitempty"`
	PreferredChannel   *string               `json:"preferred_channel,omitempty"`
}

// priorityAreaCount is how many of the lowest-scoring areas count as
// the coachee's priority areas.
const priorityAreaCount = 3

// PriorityAreas returns the coachee's priority areas: the lowest-scored
// life areas from the self-assessment. Ties break by the canonical area
// order so the result is deterministic. Areas without a score are not
// considered. Returns fewer than three areas when fewer were assessed.
func (r CoacheeRequest) PriorityAreas() []LifeArea {
	scored := make([]LifeArea, 0, len(r.AreaScores))
	for _, area := range AllLifeAreas {
		if _, ok := r.AreaScores[area]; ok {
			scored = append(scored, area)
		}
	}

	// Stable sort keeps canonical order between equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return r.AreaScores[scored[i]] < r.AreaScores[scored[j]]
	})

	if len(scored) > priorityAreaCount {
		scored = scored[:priorityAreaCount]
	}
	return scored
}

// SecondaryAreas returns assessed areas with selected objectives that
// did not make the priority cut.
func (r CoacheeRequest) SecondaryAreas() []LifeArea {
	priority := make(map[LifeArea]struct{}, priorityAreaCount)
	for _, area := range r.PriorityAreas() {
		priority[area] = struct{}{}
	}

	var secondary []LifeArea
	for _, area := range AllLifeAreas {
		if _, isPriority := priority[area]; isPriority {
			continue
		}
		if len(r.SelectedObjectives[area]) > 0 {
			secondary = append(secondary, area)
		}
	}
	return secondary
}

// ObjectiveKeywords flattens all selected objectives into a single
// keyword list, in canonical area order.
func (r CoacheeRequest) ObjectiveKeywords() []string {
	var keywords []string
	for _, area := range AllLifeAreas {
		keywords = append(keywords, r.SelectedObjectives[area]...)
	}
	return keywords
}
