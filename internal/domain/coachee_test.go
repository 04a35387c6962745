package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoacheeRequest_PriorityAreas(t *testing.T) {
	cases := []struct {
		name     string
		scores   map[LifeArea]float64
		expected []LifeArea
	}{
		{
			name: "three_lowest",
			scores: map[LifeArea]float64{
				LifeAreaCareer:        20,
				LifeAreaFinance:       30,
				LifeAreaGrowth:        40,
				LifeAreaHealth:        80,
				LifeAreaRelationships: 90,
			},
			expected: []LifeArea{LifeAreaCareer, LifeAreaFinance, LifeAreaGrowth},
		},
		{
			name: "ties_break_by_canonical_order",
			scores: map[LifeArea]float64{
				LifeAreaSpirituality: 50,
				LifeAreaFun:          50,
				LifeAreaCareer:       50,
				LifeAreaHealth:       50,
			},
			expected: []LifeArea{LifeAreaCareer, LifeAreaHealth, LifeAreaSpirituality},
		},
		{
			name:     "fewer_than_three_assessed",
			scores:   map[LifeArea]float64{LifeAreaFinance: 10},
			expected: []LifeArea{LifeAreaFinance},
		},
		{
			name:     "no_assessment",
			scores:   nil,
			expected: []LifeArea{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CoacheeRequest{AreaScores: tc.scores}
			assert.Equal(t, tc.expected, req.PriorityAreas())
		})
	}
}

func TestCoacheeRequest_SecondaryAreas(t *testing.T) {
	req := CoacheeRequest{
		AreaScores: map[LifeArea]float64{
			LifeAreaCareer:  10,
			LifeAreaFinance: 20,
			LifeAreaGrowth:  30,
			LifeAreaHealth:  90,
		},
		SelectedObjectives: map[LifeArea][]string{
			LifeAreaCareer: {"promotion"},
			LifeAreaHealth: {"sleep"},
			LifeAreaFun:    {"hobbies"},
		},
	}

	// Career is priority; health and fun have objectives but missed the
	// priority cut.
	assert.Equal(t, []LifeArea{LifeAreaHealth, LifeAreaFun}, req.SecondaryAreas())
}

func TestCoacheeRequest_ObjectiveKeywords(t *testing.T) {
	req := CoacheeRequest{
		SelectedObjectives: map[LifeArea][]string{
			LifeAreaFinance: {"budgeting"},
			LifeAreaCareer:  {"promotion", "leadership"},
		},
	}

	// Canonical area order: career before finance.
	assert.Equal(t, []string{"promotion", "leadership", "budgeting"}, req.ObjectiveKeywords())
}
