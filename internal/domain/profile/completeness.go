package profile

import (
	"database/sql"
	"math"
	"strings"
)

// RequiredFields must all be filled for a profile to count as complete
var RequiredFields = []string{
	"firstName", "lastName", "gender", "dob", "currentCity", "lookingFor",
}

// OptionalFields improve the completion percentage but never block completeness
var OptionalFields = []string{
	"bio", "images", "height", "hometown", "exercise", "educationLevel",
	"drinking", "smoking", "settleDownInMonths", "haveKids", "wantsKids",
	"starSign", "religion", "pronoun", "favInterest", "causesYouSupport",
	"qualityYouValue", "prompts", "education",
}

// Profile strength labels by completion percentage
const (
	StrengthComplete = "complete"
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

// Completeness is derived from the current profile snapshot, never stored
type Completeness struct {
	IsComplete           bool     `json:"isComplete"`
	CompletionPercentage int      `json:"completionPercentage"`
	MissingFields        []string `json:"missingFields"`
	ProfileStrength      string   `json:"profileStrength"`
	Recommendations      []string `json:"recommendations"`
}

type recommendationRule struct {
	field   string
	message string
}

// Ordered by impact; only the top 3 applicable ones are surfaced
var recommendationRules = []recommendationRule{
	{"images", "Add profile photos to increase your visibility by 300%"},
	{"bio", "Write a compelling bio to attract compatible matches"},
	{"favInterest", "Add your interests to help us find better matches"},
	{"height", "Add your height for better match filtering"},
	{"education", "Share your education background"},
}

// CalculateCompleteness computes the completion percentage, strength label
// and recommendations for a profile snapshot.
func CalculateCompleteness(p *Profile) *Completeness {
	total := len(RequiredFields) + len(OptionalFields)
	filled := 0
	missing := []string{}
	missingRequired := false
	missingSet := make(map[string]bool)

	for _, field := range RequiredFields {
		if isFieldFilled(fieldValue(p, field)) {
			filled++
		} else {
			missing = append(missing, field)
			missingSet[field] = true
			missingRequired = true
		}
	}
	for _, field := range OptionalFields {
		if isFieldFilled(fieldValue(p, field)) {
			filled++
		} else {
			missing = append(missing, field)
			missingSet[field] = true
		}
	}

	percentage := int(math.Round(float64(filled) / float64(total) * 100))

	recommendations := []string{}
	for _, rule := range recommendationRules {
		if missingSet[rule.field] {
			recommendations = append(recommendations, rule.message)
		}
	}
	if !p.IsOfficialEmailVerified {
		recommendations = append(recommendations, "Verify your email address to build trust")
	}
	if !p.IsPhoneVerified {
		recommendations = append(recommendations, "Verify your phone number to build trust")
	}
	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}

	return &Completeness{
		IsComplete:           !missingRequired,
		CompletionPercentage: percentage,
		MissingFields:        missing,
		ProfileStrength:      strengthFor(percentage),
		Recommendations:      recommendations,
	}
}

func strengthFor(percentage int) string {
	switch {
	case percentage >= 95:
		return StrengthComplete
	case percentage >= 80:
		return StrengthStrong
	case percentage >= 60:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// fieldValue maps a checklist field name to its current value.
// A nil return means the field is not set.
func fieldValue(p *Profile, field string) interface{} {
	switch field {
	case "firstName":
		return nullStringValue(p.FirstName)
	case "lastName":
		return nullStringValue(p.LastName)
	case "gender":
		return nullStringValue(p.Gender)
	case "dob":
		if !p.Dob.Valid {
			return nil
		}
		return p.Dob.Time
	case "currentCity":
		return nullStringValue(p.CurrentCity)
	case "lookingFor":
		return nullStringValue(p.LookingFor)
	case "bio":
		return nullStringValue(p.Bio)
	case "images":
		return p.GetImages()
	case "height":
		if !p.Height.Valid {
			return nil
		}
		return int(p.Height.Int32)
	case "hometown":
		return nullStringValue(p.Hometown)
	case "exercise":
		return nullStringValue(p.Exercise)
	case "educationLevel":
		return nullStringValue(p.EducationLevel)
	case "drinking":
		return nullStringValue(p.Drinking)
	case "smoking":
		return nullStringValue(p.Smoking)
	case "settleDownInMonths":
		return nullStringValue(p.SettleDownInMonths)
	case "haveKids":
		if !p.HaveKids.Valid {
			return nil
		}
		return p.HaveKids.Bool
	case "wantsKids":
		if !p.WantsKids.Valid {
			return nil
		}
		return p.WantsKids.Bool
	case "starSign":
		return nullStringValue(p.StarSign)
	case "religion":
		return nullStringValue(p.Religion)
	case "pronoun":
		return nullStringValue(p.Pronoun)
	case "favInterest":
		return p.GetFavInterest()
	case "causesYouSupport":
		return p.GetCausesYouSupport()
	case "qualityYouValue":
		return p.GetQualityYouValue()
	case "prompts":
		if n := p.PromptCount(); n > 0 {
			return n
		}
		return nil
	case "education":
		if n := p.EducationCount(); n > 0 {
			return n
		}
		return nil
	}
	return nil
}

// isFieldFilled: non-nil, trimmed non-empty string, non-empty array,
// any boolean, any non-NaN number.
func isFieldFilled(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []string:
		return len(v) > 0
	case bool:
		return true
	case int:
		return true
	case float64:
		return !math.IsNaN(v)
	default:
		return true
	}
}

func nullStringValue(ns sql.NullString) interface{} {
	if !ns.Valid {
		return nil
	}
	return ns.String
}
