package domain

import (
	"fmt"
	"sort"
	"strings"
)

// MatchWeights holds the point budget of every compatibility sub-bucket.
// The defaults sum to 100; all weights are admin-tunable through the
// engine configuration.
type MatchWeights struct {
	// Area & specialization bucket.
	PriorityArea  float64
	SecondaryArea float64
	RelatedArea   float64
	FocusTopics   float64
	Problems      float64

	// Quality-of-profile bucket.
	Rating         float64
	Reviews        float64
	Experience     float64
	Certifications float64

	// Personal compatibility bucket.
	StyleFit     float64
	MissionFit   float64
	ArchetypeFit float64

	// Practicality bucket.
	Location    float64
	Price       float64
	SessionMode float64
	ChatChannel float64

	// Saturation points for quality sub-scores.
	ReviewsFull    int
	ExperienceFull int
	CertsFull      int
}

// DefaultMatchWeights returns the product-defined 40/25/20/15 split.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		PriorityArea:  15,
		SecondaryArea: 8,
		RelatedArea:   5,
		FocusTopics:   7,
		Problems:      5,

		Rating:         10,
		Reviews:        5,
		Experience:     5,
		Certifications: 5,

		StyleFit:     8,
		MissionFit:   5,
		ArchetypeFit: 7,

		Location:    5,
		Price:       5,
		SessionMode: 3,
		ChatChannel: 2,

		ReviewsFull:    20,
		ExperienceFull: 10,
		CertsFull:      3,
	}
}

// styleCompatibility scores how well a coaching style suits a coachee
// archetype, in [0,1].
var styleCompatibility = map[CoachingStyle]map[Archetype]float64{
	CoachingStyleDirective: {
		ArchetypeAchiever: 1.0, ArchetypeAnalyst: 0.7, ArchetypeExplorer: 0.4, ArchetypeHarmonizer: 0.3,
	},
	CoachingStyleFacilitative: {
		ArchetypeHarmonizer: 1.0, ArchetypeExplorer: 0.8, ArchetypeAchiever: 0.5, ArchetypeAnalyst: 0.5,
	},
	CoachingStyleHolistic: {
		ArchetypeHarmonizer: 0.9, ArchetypeExplorer: 1.0, ArchetypeAnalyst: 0.4, ArchetypeAchiever: 0.4,
	},
	CoachingStyleStructured: {
		ArchetypeAnalyst: 1.0, ArchetypeAchiever: 0.8, ArchetypeHarmonizer: 0.4, ArchetypeExplorer: 0.3,
	},
}

// archetypeAffinity scores coach/coachee archetype pairings, in [0,1].
var archetypeAffinity = map[Archetype]map[Archetype]float64{
	ArchetypeAchiever: {
		ArchetypeAchiever: 1.0, ArchetypeAnalyst: 0.8, ArchetypeExplorer: 0.6, ArchetypeHarmonizer: 0.5,
	},
	ArchetypeExplorer: {
		ArchetypeExplorer: 1.0, ArchetypeHarmonizer: 0.8, ArchetypeAchiever: 0.6, ArchetypeAnalyst: 0.5,
	},
	ArchetypeHarmonizer: {
		ArchetypeHarmonizer: 1.0, ArchetypeExplorer: 0.8, ArchetypeAnalyst: 0.6, ArchetypeAchiever: 0.5,
	},
	ArchetypeAnalyst: {
		ArchetypeAnalyst: 1.0, ArchetypeAchiever: 0.8, ArchetypeHarmonizer: 0.6, ArchetypeExplorer: 0.5,
	},
}

// maxMatchReasons caps how many contributing reasons are surfaced.
const maxMatchReasons = 3

// MatchResult is the outcome of scoring one coach against one coachee.
type MatchResult struct {
	Score   float64
	Reasons []string
}

// matchReason pairs a human-readable explanation with the points that
// earned it, so the strongest reasons surface first.
type matchReason struct {
	points float64
	text   string
}

// ScoreMatch computes the 0-100 compatibility score between a coach and
// a coachee request. Missing profile fields contribute zero to their
// sub-bucket; the function never fails. A coachee without a budget or
// location preference skips those sub-buckets entirely; their weight is
// not redistributed.
func ScoreMatch(coach CoachProfile, req CoacheeRequest, w MatchWeights) MatchResult {
	var score float64
	var reasons []matchReason

	add := func(points float64, text string) {
		score += points
		if points > 0 && text != "" {
			reasons = append(reasons, matchReason{points: points, text: text})
		}
	}

	// Area & specialization.
	priority := req.PriorityAreas()
	if pts := w.PriorityArea * overlapFraction(priority, coach.Specializations); pts > 0 {
		add(pts, "specializes in your priority areas")
	}
	if pts := w.SecondaryArea * overlapFraction(req.SecondaryAreas(), coach.Specializations); pts > 0 {
		add(pts, "covers your secondary focus areas")
	}
	if pts := w.RelatedArea * relatedOverlapFraction(priority, coach.Specializations); pts > 0 {
		add(pts, "experienced in closely related areas")
	}
	objectives := req.ObjectiveKeywords()
	if pts := w.FocusTopics * keywordOverlapFraction(objectives, coach.FocusTopics); pts > 0 {
		add(pts, "focus topics match your objectives")
	}
	if pts := w.Problems * keywordOverlapFraction(objectives, coach.AddressedProblems); pts > 0 {
		add(pts, "works on the problems you selected")
	}

	// Quality of profile.
	if coach.Rating > 0 {
		text := ""
		if coach.Rating >= 4 {
			text = fmt.Sprintf("highly rated (%.1f/5)", coach.Rating)
		}
		add(w.Rating*clamp01(coach.Rating/5), text)
	}
	if coach.ReviewCount > 0 && w.ReviewsFull > 0 {
		add(w.Reviews*clamp01(float64(coach.ReviewCount)/float64(w.ReviewsFull)), "")
	}
	if coach.YearsExperience > 0 && w.ExperienceFull > 0 {
		add(w.Experience*clamp01(float64(coach.YearsExperience)/float64(w.ExperienceFull)),
			fmt.Sprintf("%d years of coaching experience", coach.YearsExperience))
	}
	if len(coach.Certifications) > 0 && w.CertsFull > 0 {
		add(w.Certifications*clamp01(float64(len(coach.Certifications))/float64(w.CertsFull)), "")
	}

	// Personal compatibility.
	if fit, ok := styleCompatibility[coach.Style][req.Archetype]; ok {
		add(w.StyleFit*fit, "coaching style suits you")
	}
	if pts := w.MissionFit * missionOverlapFraction(coach.Mission, req.Values); pts > 0 {
		add(pts, "shares your values")
	}
	if fit, ok := archetypeAffinity[coach.Archetype][req.Archetype]; ok {
		add(w.ArchetypeFit*fit, "")
	}

	// Practicality.
	if req.PreferredLocation != nil && coach.Location != nil &&
		strings.EqualFold(*req.PreferredLocation, *coach.Location) {
		add(w.Location, "based in your preferred location")
	}
	if req.Budget != nil && coach.HourlyRate != nil {
		add(w.Price*priceFit(*coach.HourlyRate, *req.Budget), "fits your budget")
	}
	if modeFits(coach, req.PreferredMode) {
		add(w.SessionMode, "")
	}
	if channelFits(coach.ChatChannels, req.PreferredChannel) {
		add(w.ChatChannel, "")
	}

	return MatchResult{
		Score:   Clamp(score, 0, 100),
		Reasons: topReasons(reasons, maxMatchReasons),
	}
}

// overlapFraction returns the fraction of wanted areas present in the
// coach's specializations.
func overlapFraction(wanted, offered []LifeArea) float64 {
	if len(wanted) == 0 {
		return 0
	}
	offeredSet := make(map[LifeArea]struct{}, len(offered))
	for _, area := range offered {
		offeredSet[area] = struct{}{}
	}

	matched := 0
	for _, area := range wanted {
		if _, ok := offeredSet[area]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

// relatedOverlapFraction gives partial credit for priority areas the
// coach does not cover directly but neighbours via the adjacency table.
func relatedOverlapFraction(priority, offered []LifeArea) float64 {
	if len(priority) == 0 {
		return 0
	}
	offeredSet := make(map[LifeArea]struct{}, len(offered))
	for _, area := range offered {
		offeredSet[area] = struct{}{}
	}

	matched := 0
	for _, area := range priority {
		if _, direct := offeredSet[area]; direct {
			continue
		}
		for _, related := range RelatedLifeAreas(area) {
			if _, ok := offeredSet[related]; ok {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(priority))
}

// keywordOverlapFraction returns the fraction of the coachee's keywords
// found among the coach's tags, case-insensitively.
func keywordOverlapFraction(wanted, offered []string) float64 {
	if len(wanted) == 0 || len(offered) == 0 {
		return 0
	}
	offeredSet := make(map[string]struct{}, len(offered))
	for _, kw := range offered {
		offeredSet[strings.ToLower(strings.TrimSpace(kw))] = struct{}{}
	}

	matched := 0
	for _, kw := range wanted {
		if _, ok := offeredSet[strings.ToLower(strings.TrimSpace(kw))]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

// missionOverlapFraction matches the coachee's stated values against
// words of the coach's mission statement.
func missionOverlapFraction(mission string, values []string) float64 {
	if mission == "" || len(values) == 0 {
		return 0
	}
	words := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(mission)) {
		words[strings.Trim(word, ".,!?;:")] = struct{}{}
	}

	matched := 0
	for _, value := range values {
		if _, ok := words[strings.ToLower(strings.TrimSpace(value))]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(values))
}

// priceFit is 1 when the rate is within budget and falls off linearly
// to 0 as the rate approaches double the budget.
func priceFit(rate, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	if rate <= budget {
		return 1
	}
	return clamp01(1 - (rate-budget)/budget)
}

// modeFits awards the session-mode points. Without a stated preference
// any offered mode counts as available.
func modeFits(coach CoachProfile, preferred *SessionMode) bool {
	if preferred == nil {
		return len(coach.SessionModes) > 0
	}
	return coach.SupportsMode(*preferred)
}

// channelFits awards the chat-channel points, mirroring modeFits.
func channelFits(channels []string, preferred *string) bool {
	if preferred == nil {
		return len(channels) > 0
	}
	for _, ch := range channels {
		if strings.EqualFold(ch, *preferred) {
			return true
		}
	}
	return false
}

// topReasons orders reasons by contribution and keeps the strongest.
func topReasons(reasons []matchReason, limit int) []string {
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].points > reasons[j].points
	})
	if len(reasons) > limit {
		reasons = reasons[:limit]
	}

	texts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		texts = append(texts, r.text)
	}
	return texts
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
