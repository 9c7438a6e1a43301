package preferences

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

var prefEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldValidator checks individual preference fields against the form
// configuration. Each instance owns its result cache, constructed per
// validation session.
type FieldValidator struct {
	cache *validation.Cache
}

// NewFieldValidator creates a validator with a fresh cache
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{cache: validation.NewCache(0)}
}

// ValidateField checks one field value. The first failing rule wins: at most
// one result per field per call. Unchanged values are served from the cache.
func (v *FieldValidator) ValidateField(field string, value interface{}) *validation.Error {
	if cached, ok := v.cache.Lookup(field, value); ok {
		return cached
	}

	result := v.check(field, value)
	v.cache.Store(field, value, result)
	return result
}

func (v *FieldValidator) check(field string, value interface{}) *validation.Error {
	cfg, ok := fieldByName(field)
	if !ok {
		return nil
	}

	if isEmpty(value) {
		if cfg.Required {
			return validation.NewError(field, fmt.Sprintf("%s is required", field), "REQUIRED_FIELD", validation.PriorityHigh)
		}
		return nil
	}

	switch cfg.Kind {
	case FieldText, FieldSelect, FieldCitySearch:
		return checkTextValue(cfg, value)
	case FieldEmail:
		return checkEmailValue(cfg, value)
	case FieldTextarea:
		return checkTextareaValue(cfg, value)
	case FieldNumber, FieldSliderRange:
		return checkNumericValue(cfg, value)
	case FieldMultiSelect, FieldMultiSelectText:
		return checkListValue(cfg, value)
	case FieldToggle:
		return checkToggleValue(cfg, value)
	}
	return nil
}

func checkTextValue(cfg FormField, value interface{}) *validation.Error {
	if _, ok := value.(string); !ok {
		return invalidType(cfg.Name, "text")
	}
	return nil
}

func checkEmailValue(cfg FormField, value interface{}) *validation.Error {
	s, ok := value.(string)
	if !ok || !prefEmailRegex.MatchString(s) {
		return validation.NewError(cfg.Name, "Please enter a valid email address", "INVALID_EMAIL", validation.PriorityHigh)
	}
	return nil
}

func checkTextareaValue(cfg FormField, value interface{}) *validation.Error {
	s, ok := value.(string)
	if !ok {
		return invalidType(cfg.Name, "text")
	}
	length := len(strings.TrimSpace(s))
	if cfg.MaxLength > 0 && length > cfg.MaxLength {
		return validation.NewError(cfg.Name,
			fmt.Sprintf("Keep it under %d characters", cfg.MaxLength),
			"DESCRIPTION_TOO_LONG", validation.PriorityMedium)
	}
	if cfg.WarnBelow > 0 && length < cfg.WarnBelow {
		return validation.NewWarning(cfg.Name,
			fmt.Sprintf("Add at least %d characters so matches know you better", cfg.WarnBelow),
			"DESCRIPTION_TOO_SHORT", validation.PriorityLow)
	}
	return nil
}

func checkNumericValue(cfg FormField, value interface{}) *validation.Error {
	n, ok := toFloat(value)
	if !ok {
		return invalidType(cfg.Name, "a number")
	}

	switch cfg.Name {
	case "minAge":
		if n < PrefMinAge || n > PrefMinAgeCeiling {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("Minimum age must be between %d and %d", PrefMinAge, PrefMinAgeCeiling),
				"AGE_OUT_OF_RANGE", validation.PriorityHigh)
		}
	case "maxAge":
		if n < PrefMinAge || n > PrefMaxAgeCeiling {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("Maximum age must be between %d and %d", PrefMinAge, PrefMaxAgeCeiling),
				"AGE_OUT_OF_RANGE", validation.PriorityHigh)
		}
	case "minHeight", "maxHeight":
		if n < PrefHeightMin || n > PrefHeightMax {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("Height must be between %d and %d cm", PrefHeightMin, PrefHeightMax),
				"HEIGHT_OUT_OF_RANGE", validation.PriorityMedium)
		}
	case "minIncome", "maxIncome":
		if n < 0 {
			return validation.NewError(cfg.Name, "Income cannot be negative", "NEGATIVE_INCOME", validation.PriorityMedium)
		}
	case "locationPreferenceRadius":
		if n < RadiusMin || n > RadiusMax {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("Search radius must be between %d and %d km", RadiusMin, RadiusMax),
				"RADIUS_OUT_OF_RANGE", validation.PriorityMedium)
		}
	default:
		if cfg.Max > 0 && (n < float64(cfg.Min) || n > float64(cfg.Max)) {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("Value must be between %d and %d", cfg.Min, cfg.Max),
				"OUT_OF_RANGE", validation.PriorityMedium)
		}
	}
	return nil
}

func checkListValue(cfg FormField, value interface{}) *validation.Error {
	items, ok := value.([]string)
	if !ok {
		return invalidType(cfg.Name, "a list")
	}
	n := len(items)

	switch cfg.Name {
	case "hobbies":
		if n > MaxHobbies {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("You can select up to %d hobbies", MaxHobbies),
				"TOO_MANY_HOBBIES", validation.PriorityMedium)
		}
	case "interests":
		if n > MaxInterests {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("You can select up to %d interests", MaxInterests),
				"TOO_MANY_INTERESTS", validation.PriorityMedium)
		}
	case "profession":
		// The business rule caps at 8 even though the form config allows 10
		if n > MaxProfessions {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("You can select up to %d professions", MaxProfessions),
				"TOO_MANY_PROFESSIONS", validation.PriorityMedium)
		}
	case "educationLevel":
		if n > MaxEducationLevels {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("You can select up to %d education levels", MaxEducationLevels),
				"TOO_MANY_EDUCATION_LEVELS", validation.PriorityMedium)
		}
	case "personalityTraits":
		if n > MaxPersonalityTraits {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("You can select up to %d personality traits", MaxPersonalityTraits),
				"TOO_MANY_TRAITS", validation.PriorityMedium)
		}
	default:
		if cfg.MaxItems > 0 && n > cfg.MaxItems {
			return validation.NewError(cfg.Name,
				fmt.Sprintf("You can select up to %d items", cfg.MaxItems),
				"TOO_MANY_ITEMS", validation.PriorityLow)
		}
	}
	return nil
}

func checkToggleValue(cfg FormField, value interface{}) *validation.Error {
	if _, ok := value.(bool); !ok {
		return invalidType(cfg.Name, "a boolean")
	}
	return nil
}

func invalidType(field, expected string) *validation.Error {
	return validation.NewError(field, fmt.Sprintf("%s must be %s", field, expected), "INVALID_TYPE", validation.PriorityMedium)
}

// isEmpty: null, empty/whitespace string, or empty array
func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	}
	return false
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
