package preferences

import (
	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

// Business rule thresholds
const (
	AgeRangeMaxSpan          = 20
	HeightRangeMaxSpan       = 50
	IncomeRangeMaxMultiplier = 10

	MaxHobbies     = 10
	MaxInterests   = 10
	MaxProfessions = 8

	// ReferenceAge stands in for the user's own age, which the original
	// flow never threads through to this check. Kept as-is pending a
	// product decision.
	ReferenceAge          = 25
	AgePreferenceDistance = 15
)

// essentialFields in the order the "missing essentials" rule reports them
var essentialFields = []string{"genderPreference", "minAge", "maxAge", "locationPreference"}

// diversityFields feed the "incomplete preferences" rule
var diversityFields = []string{"relationshipGoals", "personalityTraits", "hobbies", "interests"}

// ValidateBusinessRules produces soft quality hints. Results are always
// warnings and never block saving.
func ValidateBusinessRules(in *PreferencesInput) []*validation.Error {
	var results []*validation.Error

	// One aggregated warning pointing at the first missing essential
	for _, field := range essentialFields {
		if isEmpty(in.fieldValue(field)) {
			results = append(results, validation.NewWarning(field,
				"Set your gender, age and location preferences to get matched",
				"MISSING_ESSENTIAL_PREFERENCES", validation.PriorityHigh))
			break
		}
	}

	// Fewer than 2 of the personality/interest sections filled
	filled := 0
	for _, field := range diversityFields {
		if !isEmpty(in.fieldValue(field)) {
			filled++
		}
	}
	if filled < 2 {
		results = append(results, validation.NewWarning("hobbies",
			"Fill in more preference sections to improve match quality",
			"INCOMPLETE_PREFERENCES", validation.PriorityMedium))
	}

	// A single hobby reads as low effort
	if len(in.Hobbies) == 1 {
		results = append(results, validation.NewWarning("hobbies",
			"Add a few more hobbies to show your range",
			"LIMITED_HOBBY_DIVERSITY", validation.PriorityLow))
	}

	// Either age bound more than AgePreferenceDistance years from the
	// reference age, in either direction. Needs both bounds set.
	if in.MinAge != nil && in.MaxAge != nil {
		if absInt(*in.MinAge-ReferenceAge) > AgePreferenceDistance || absInt(*in.MaxAge-ReferenceAge) > AgePreferenceDistance {
			results = append(results, validation.NewWarning("minAge",
				"Your age preference is far from the typical member age",
				"AGE_PREFERENCE_DISTANT", validation.PriorityLow))
		}
	}

	return results
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
