package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

// Field-level limits. HeightMin differs from the partner-preference form's
// lower bound (120cm) on purpose: the two surfaces shipped with different
// constants and product has not reconciled them.
const (
	NameMinLength = 2
	NameMaxLength = 50
	BioMaxLength  = 500
	BioWarnBelow  = 10
	HeightMin     = 100
	HeightMax     = 250
	MaxImages     = 6
	MaxListItems  = 10
	MinProfileAge = 18
	MaxProfileAge = 100
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requiredProfileFields fail with an error when submitted empty
var requiredProfileFields = map[string]bool{
	"firstName":     true,
	"lastName":      true,
	"gender":        true,
	"dob":           true,
	"currentCity":   true,
	"lookingFor":    true,
	"officialEmail": true,
}

// FieldValidator checks individual profile fields. Each instance owns its
// result cache, constructed per form session.
type FieldValidator struct {
	cache *validation.Cache
	now   func() time.Time
}

// NewFieldValidator creates a validator with a fresh cache
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{
		cache: validation.NewCache(0),
		now:   time.Now,
	}
}

// ValidateField checks one field value. Returns at most one result per call:
// the first failing rule wins. Results for unchanged values are served from
// the cache.
func (v *FieldValidator) ValidateField(field string, value interface{}) *validation.Error {
	if cached, ok := v.cache.Lookup(field, value); ok {
		return cached
	}

	result := v.check(field, value)
	v.cache.Store(field, value, result)
	return result
}

// ValidateFields runs ValidateField over a field map in stable key order
func (v *FieldValidator) ValidateFields(fields map[string]interface{}) []*validation.Error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []*validation.Error
	for _, name := range names {
		if res := v.ValidateField(name, fields[name]); res != nil {
			results = append(results, res)
		}
	}
	return results
}

func (v *FieldValidator) check(field string, value interface{}) *validation.Error {
	if isEmptyValue(value) {
		if requiredProfileFields[field] {
			return validation.NewError(field, fmt.Sprintf("%s is required", field), "REQUIRED_FIELD", validation.PriorityHigh)
		}
		// Empty image list deserves a nudge, not a block
		if field == "images" {
			return validation.NewWarning(field, "Adding photos increases profile views by 300%", "NO_IMAGES", validation.PriorityMedium)
		}
		return nil
	}

	switch field {
	case "firstName", "lastName":
		return checkName(field, value)
	case "officialEmail":
		return checkEmail(field, value)
	case "dob":
		return v.checkDob(field, value)
	case "bio":
		return checkBio(field, value)
	case "height":
		return checkHeight(field, value)
	case "images":
		return checkImages(field, value)
	case "favInterest":
		return checkListCap(field, value, "TOO_MANY_INTERESTS", "You can select up to 10 interests")
	case "causesYouSupport":
		return checkListCap(field, value, "TOO_MANY_CAUSES", "You can select up to 10 causes")
	case "qualityYouValue":
		return checkListCap(field, value, "TOO_MANY_QUALITIES", "You can select up to 10 qualities")
	}

	return nil
}

func checkName(field string, value interface{}) *validation.Error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError(field, "Name must be text", "INVALID_TYPE", validation.PriorityHigh)
	}
	length := len(strings.TrimSpace(s))
	if length < NameMinLength {
		return validation.NewError(field, fmt.Sprintf("Name must be at least %d characters", NameMinLength), "NAME_TOO_SHORT", validation.PriorityHigh)
	}
	if length > NameMaxLength {
		return validation.NewError(field, fmt.Sprintf("Name must be at most %d characters", NameMaxLength), "NAME_TOO_LONG", validation.PriorityHigh)
	}
	return nil
}

func checkEmail(field string, value interface{}) *validation.Error {
	s, ok := value.(string)
	if !ok || !emailRegex.MatchString(s) {
		return validation.NewError(field, "Please enter a valid email address", "INVALID_EMAIL", validation.PriorityHigh)
	}
	return nil
}

// checkDob derives age via calendar-aware subtraction and bounds it
func (v *FieldValidator) checkDob(field string, value interface{}) *validation.Error {
	var dob time.Time
	switch d := value.(type) {
	case time.Time:
		dob = d
	case string:
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return validation.NewError(field, "Date of birth must be in YYYY-MM-DD format", "INVALID_DOB", validation.PriorityHigh)
		}
		dob = parsed
	default:
		return validation.NewError(field, "Date of birth must be a date", "INVALID_DOB", validation.PriorityHigh)
	}

	age := ageAt(dob, v.now())
	if age < MinProfileAge {
		return validation.NewError(field, "You must be at least 18 years old", "AGE_OUT_OF_RANGE", validation.PriorityHigh)
	}
	if age > MaxProfileAge {
		return validation.NewError(field, "Please enter a valid date of birth", "AGE_OUT_OF_RANGE", validation.PriorityHigh)
	}
	return nil
}

func checkBio(field string, value interface{}) *validation.Error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError(field, "Bio must be text", "INVALID_TYPE", validation.PriorityMedium)
	}
	length := len(strings.TrimSpace(s))
	if length > BioMaxLength {
		return validation.NewError(field, fmt.Sprintf("Bio must be at most %d characters", BioMaxLength), "DESCRIPTION_TOO_LONG", validation.PriorityMedium)
	}
	if length < BioWarnBelow {
		return validation.NewWarning(field, "Add at least 10 characters for better matches", "DESCRIPTION_TOO_SHORT", validation.PriorityLow)
	}
	return nil
}

func checkHeight(field string, value interface{}) *validation.Error {
	h, ok := toInt(value)
	if !ok {
		return validation.NewError(field, "Height must be a number", "INVALID_TYPE", validation.PriorityMedium)
	}
	if h < HeightMin || h > HeightMax {
		return validation.NewError(field, fmt.Sprintf("Height must be between %d and %d cm", HeightMin, HeightMax), "HEIGHT_OUT_OF_RANGE", validation.PriorityMedium)
	}
	return nil
}

func checkImages(field string, value interface{}) *validation.Error {
	images, ok := value.([]string)
	if !ok {
		return validation.NewError(field, "Images must be a list of URLs", "INVALID_TYPE", validation.PriorityMedium)
	}
	if len(images) > MaxImages {
		return validation.NewError(field, fmt.Sprintf("You can upload at most %d photos", MaxImages), "TOO_MANY_IMAGES", validation.PriorityMedium)
	}
	return nil
}

func checkListCap(field string, value interface{}, code, message string) *validation.Error {
	items, ok := value.([]string)
	if !ok {
		return validation.NewError(field, "Value must be a list", "INVALID_TYPE", validation.PriorityLow)
	}
	if len(items) > MaxListItems {
		return validation.NewError(field, message, code, validation.PriorityMedium)
	}
	return nil
}

// isEmptyValue: null, empty/whitespace string, or empty array
func isEmptyValue(value interface{}) bool {
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

func toInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
