package domain

import "sort"

// FormulaWeights holds the final combination weights. They are
// fractions, not percentages, and should sum to 1.
type FormulaWeights struct {
	Match      float64
	Engagement float64
	Rotation   float64
}

// DefaultFormulaWeights returns the product-defined 70/20/10 split.
func DefaultFormulaWeights() FormulaWeights {
	return FormulaWeights{Match: 0.70, Engagement: 0.20, Rotation: 0.10}
}

// RankingResult is one coach's scores for one coachee request. It is
// ephemeral: computed on demand and kept only in the response cache.
type RankingResult struct {
	CoachID         string   `json:"coach_id"`
	DisplayName     string   `json:"display_name"`
	MatchScore      float64  `json:"match_score"`
	EngagementScore float64  `json:"engagement_score"`
	RotationScore   float64  `json:"rotation_score"`
	FinalScore      float64  `json:"final_score"`
	ReviewCount     int      `json:"review_count"`
	MatchReasons    []string `json:"match_reasons"`
}

// CombineScores applies the weighted formula to the three component
// scores. Each input is independently clamped to [0,100] before
// combination, and the result is clamped again.
func CombineScores(match, engagement, rotation float64, w FormulaWeights) float64 {
	match = Clamp(match, 0, 100)
	engagement = Clamp(engagement, 0, 100)
	rotation = Clamp(rotation, 0, 100)

	final := w.Match*match + w.Engagement*engagement + w.Rotation*rotation
	return Clamp(final, 0, 100)
}

// SortRanking orders results into the canonical total order: final
// score descending, then review count descending, then coach ID
// ascending. The order is total, so repeated rankings over identical
// inputs agree exactly.
func SortRanking(results []RankingResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		if results[i].ReviewCount != results[j].ReviewCount {
			return results[i].ReviewCount > results[j].ReviewCount
		}
		return results[i].CoachID < results[j].CoachID
	})
}
