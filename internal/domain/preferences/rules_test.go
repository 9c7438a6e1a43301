package preferences

import (
	"testing"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

func TestBusinessRulesAreAlwaysWarnings(t *testing.T) {
	in := &PreferencesInput{Hobbies: []string{"chess"}}

	for _, res := range ValidateBusinessRules(in) {
		if res.Type != validation.TypeWarning {
			t.Fatalf("business rule produced a non-warning: %+v", res)
		}
	}
}

func TestMissingEssentialsReportsFirstMissingField(t *testing.T) {
	in := &PreferencesInput{
		GenderPreference: strPtr("Female"),
		MaxAge:           intPtr(35),
	}

	res := findByCode(ValidateBusinessRules(in), "MISSING_ESSENTIAL_PREFERENCES")
	if res == nil {
		t.Fatal("expected MISSING_ESSENTIAL_PREFERENCES")
	}
	// genderPreference is set, so minAge is the first missing essential
	if res.Field != "minAge" {
		t.Fatalf("expected the first missing essential (minAge), got %s", res.Field)
	}
}

func TestMissingEssentialsSingleWarning(t *testing.T) {
	in := &PreferencesInput{}

	count := 0
	for _, res := range ValidateBusinessRules(in) {
		if res.Code == "MISSING_ESSENTIAL_PREFERENCES" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one essentials warning, got %d", count)
	}
}

func TestIncompletePreferencesBelowTwoSections(t *testing.T) {
	in := &PreferencesInput{Hobbies: []string{"chess", "running"}}

	res := findByCode(ValidateBusinessRules(in), "INCOMPLETE_PREFERENCES")
	if res == nil || res.Field != "hobbies" {
		t.Fatalf("expected INCOMPLETE_PREFERENCES on hobbies, got %+v", res)
	}

	in.Interests = []string{"jazz"}
	if findByCode(ValidateBusinessRules(in), "INCOMPLETE_PREFERENCES") != nil {
		t.Fatal("expected two filled sections to satisfy the rule")
	}
}

func TestLimitedHobbyDiversityExactlyOne(t *testing.T) {
	in := &PreferencesInput{Hobbies: []string{"chess"}}
	if findByCode(ValidateBusinessRules(in), "LIMITED_HOBBY_DIVERSITY") == nil {
		t.Fatal("expected LIMITED_HOBBY_DIVERSITY for a single hobby")
	}

	in.Hobbies = []string{"chess", "running"}
	if findByCode(ValidateBusinessRules(in), "LIMITED_HOBBY_DIVERSITY") != nil {
		t.Fatal("expected no diversity warning for two hobbies")
	}

	in.Hobbies = nil
	if findByCode(ValidateBusinessRules(in), "LIMITED_HOBBY_DIVERSITY") != nil {
		t.Fatal("expected no diversity warning for zero hobbies")
	}
}

func TestAgePreferenceDistantFromReference(t *testing.T) {
	cases := []struct {
		name    string
		minAge  int
		maxAge  int
		distant bool
	}{
		{"lower bound far above", 41, 45, true},
		{"upper bound far below", 5, 9, true},
		{"upper bound far above", 20, 45, true},
		{"lower bound far below", 9, 20, true},
		{"both near reference", 20, 35, false},
		{"exactly 15 either side", 10, 40, false},
	}

	for _, tc := range cases {
		in := &PreferencesInput{MinAge: intPtr(tc.minAge), MaxAge: intPtr(tc.maxAge)}
		res := findByCode(ValidateBusinessRules(in), "AGE_PREFERENCE_DISTANT")
		if tc.distant && (res == nil || res.Field != "minAge") {
			t.Fatalf("%s: expected AGE_PREFERENCE_DISTANT on minAge for %d-%d, got %+v", tc.name, tc.minAge, tc.maxAge, res)
		}
		if !tc.distant && res != nil {
			t.Fatalf("%s: expected no warning for %d-%d, got %+v", tc.name, tc.minAge, tc.maxAge, res)
		}
	}
}

func TestAgePreferenceDistantNeedsBothBounds(t *testing.T) {
	in := &PreferencesInput{MinAge: intPtr(41)}
	if findByCode(ValidateBusinessRules(in), "AGE_PREFERENCE_DISTANT") != nil {
		t.Fatal("expected no warning with only minAge set")
	}

	in = &PreferencesInput{MaxAge: intPtr(60)}
	if findByCode(ValidateBusinessRules(in), "AGE_PREFERENCE_DISTANT") != nil {
		t.Fatal("expected no warning with only maxAge set")
	}
}
