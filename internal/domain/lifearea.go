package domain

// LifeArea is one of the fixed life domains used for coachee
// self-assessment and coach specialization tagging.
type LifeArea string

const (
	LifeAreaCareer        LifeArea = "career"
	LifeAreaFinance       LifeArea = "finance"
	LifeAreaHealth        LifeArea = "health"
	LifeAreaRelationships LifeArea = "relationships"
	LifeAreaGrowth        LifeArea = "growth"
	LifeAreaSpirituality  LifeArea = "spirituality"
	LifeAreaFun           LifeArea = "fun"
	LifeAreaEnvironment   LifeArea = "environment"
)

// AllLifeAreas lists every area in canonical order. The order is part of
// the scoring contract: priority-area ties break by this order.
var AllLifeAreas = []LifeArea{
	LifeAreaCareer,
	LifeAreaFinance,
	LifeAreaHealth,
	LifeAreaRelationships,
	LifeAreaGrowth,
	LifeAreaSpirituality,
	LifeAreaFun,
	LifeAreaEnvironment,
}

// IsValid reports whether the area is one of the known life areas.
func (a LifeArea) IsValid() bool {
	for _, known := range AllLifeAreas {
		if a == known {
			return true
		}
	}
	return false
}

// relatedAreas maps each life area to areas considered adjacent for
// partial-credit matching. Relations are symmetric.
var relatedAreas = map[LifeArea][]LifeArea{
	LifeAreaCareer:        {LifeAreaFinance, LifeAreaGrowth},
	LifeAreaFinance:       {LifeAreaCareer, LifeAreaEnvironment},
	LifeAreaHealth:        {LifeAreaFun, LifeAreaEnvironment},
	LifeAreaRelationships: {LifeAreaFun, LifeAreaSpirituality},
	LifeAreaGrowth:        {LifeAreaCareer, LifeAreaSpirituality},
	LifeAreaSpirituality:  {LifeAreaGrowth, LifeAreaRelationships},
	LifeAreaFun:           {LifeAreaHealth, LifeAreaRelationships},
	LifeAreaEnvironment:   {LifeAreaFinance, LifeAreaHealth},
}

// RelatedLifeAreas returns the areas adjacent to the given area.
func RelatedLifeAreas(a LifeArea) []LifeArea {
	return relatedAreas[a]
}

// SessionMode is how a coaching session is delivered.
type SessionMode string

const (
	SessionModeOnline   SessionMode = "online"
	SessionModeInPerson SessionMode = "in_person"
	SessionModeHybrid   SessionMode = "hybrid"
)

// CoachingStyle is a coach's self-declared working style.
type CoachingStyle string

const (
	CoachingStyleDirective    CoachingStyle = "directive"
	CoachingStyleFacilitative CoachingStyle = "facilitative"
	CoachingStyleHolistic     CoachingStyle = "holistic"
	CoachingStyleStructured   CoachingStyle = "structured"
)

// Archetype is a coachee personality archetype derived from onboarding.
type Archetype string

const (
	ArchetypeAchiever   Archetype = "achiever"
	ArchetypeExplorer   Archetype = "explorer"
	ArchetypeHarmonizer Archetype = "harmonizer"
	ArchetypeAnalyst    Archetype = "analyst"
)
