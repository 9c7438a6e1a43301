package preferences

import (
	"testing"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

// completeInput fills every required field with sane values plus enough
// optional sections to dodge the quality warnings.
func completeInput() *PreferencesInput {
	return &PreferencesInput{
		GenderPreference:          strPtr("Female"),
		MinAge:                    intPtr(25),
		MaxAge:                    intPtr(35),
		LocationPreference:        strPtr("Bangalore"),
		RelationshipGoals:         strPtr("Long-term"),
		Hobbies:                   []string{"chess", "running", "cooking"},
		Interests:                 []string{"jazz", "cinema", "travel"},
		PersonalityTraits:         []string{"kind", "curious", "funny"},
		WhatOtherPersonShouldKnow: strPtr("I take weekends offline and love long train journeys."),
	}
}

func TestEngineValidInput(t *testing.T) {
	result := NewEngine().Validate(completeInput())

	if !result.IsValid {
		t.Fatalf("expected valid result, errors=%+v", result.Errors)
	}
	if result.Summary.TotalErrors != 0 {
		t.Fatalf("expected zero errors, got %d", result.Summary.TotalErrors)
	}
	if len(result.Summary.MissingRequiredFields) != 0 {
		t.Fatalf("expected no missing required fields, got %v", result.Summary.MissingRequiredFields)
	}
}

func TestEngineEmptyInputReportsRequiredFields(t *testing.T) {
	result := NewEngine().Validate(&PreferencesInput{})

	if result.IsValid {
		t.Fatal("expected empty input to be invalid")
	}
	want := []string{"genderPreference", "minAge", "maxAge", "locationPreference", "relationshipGoals"}
	if len(result.Summary.MissingRequiredFields) != len(want) {
		t.Fatalf("expected %d missing required fields, got %v", len(want), result.Summary.MissingRequiredFields)
	}
	for i, name := range want {
		if result.Summary.MissingRequiredFields[i] != name {
			t.Fatalf("expected %s at position %d, got %v", name, i, result.Summary.MissingRequiredFields)
		}
	}
	if result.Summary.CompletionScore != 0 {
		t.Fatalf("expected 0%% completion, got %d", result.Summary.CompletionScore)
	}
}

func TestEnginePartitionsErrorsAndWarnings(t *testing.T) {
	in := completeInput()
	in.MinAge = intPtr(17)                      // error
	in.WhatOtherPersonShouldKnow = strPtr("hi") // warning

	result := NewEngine().Validate(in)
	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if findByCode(result.Errors, "AGE_OUT_OF_RANGE") == nil {
		t.Fatalf("expected AGE_OUT_OF_RANGE among errors, got %+v", result.Errors)
	}
	if findByCode(result.Warnings, "DESCRIPTION_TOO_SHORT") == nil {
		t.Fatalf("expected DESCRIPTION_TOO_SHORT among warnings, got %+v", result.Warnings)
	}
	for _, w := range result.Warnings {
		if w.Type != validation.TypeWarning {
			t.Fatalf("non-warning in warnings: %+v", w)
		}
	}
}

func TestEngineFieldErrorsErrorWins(t *testing.T) {
	in := completeInput()
	// maxAge=9 trips the field-level range error and then the inverted-range
	// error against the same field. The first error must stick. The range
	// also triggers the distant-age warning, which reports on minAge and
	// takes that otherwise-empty slot.
	in.MinAge = intPtr(20)
	in.MaxAge = intPtr(9)

	result := NewEngine().Validate(in)
	res, ok := result.FieldErrors["maxAge"]
	if !ok {
		t.Fatalf("expected a maxAge entry, got %+v", result.FieldErrors)
	}
	if res.Type != validation.TypeError || res.Code != "AGE_OUT_OF_RANGE" {
		t.Fatalf("expected the first error to win the field slot, got %+v", res)
	}
	if w, ok := result.FieldErrors["minAge"]; !ok || w.Code != "AGE_PREFERENCE_DISTANT" {
		t.Fatalf("expected the distant-age warning on minAge, got %+v", result.FieldErrors)
	}
}

func TestEngineCompletionScore(t *testing.T) {
	in := &PreferencesInput{
		GenderPreference: strPtr("Female"),
		MinAge:           intPtr(25),
		MaxAge:           intPtr(35),
	}

	result := NewEngine().Validate(in)
	// 3 of 30 configured fields filled
	if result.Summary.CompletionScore != 10 {
		t.Fatalf("expected 10%% completion, got %d", result.Summary.CompletionScore)
	}
}

func TestEngineCriticalErrorsCountsHighPriority(t *testing.T) {
	in := completeInput()
	in.MinIncome = floatPtr(50000) // missing currency: high-priority error

	result := NewEngine().Validate(in)
	if result.Summary.CriticalErrors != 1 {
		t.Fatalf("expected 1 critical error, got %d (errors=%+v)", result.Summary.CriticalErrors, result.Errors)
	}
}

func TestEngineRecommendationsCap(t *testing.T) {
	result := NewEngine().Validate(&PreferencesInput{})

	recs := result.Summary.Recommendations
	if len(recs) > maxRecommendations {
		t.Fatalf("expected at most %d recommendations, got %d", maxRecommendations, len(recs))
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations for an empty record")
	}
	if recs[0] != "Add at least 3 hobbies to help us find your kind of people" {
		t.Fatalf("expected the hobby nudge first, got %s", recs[0])
	}
}

func TestEngineWideAgeRangeRecommendation(t *testing.T) {
	in := completeInput()
	in.MinAge = intPtr(20)
	in.MaxAge = intPtr(45)

	result := NewEngine().Validate(in)
	found := false
	for _, rec := range result.Summary.Recommendations {
		if rec == "Consider narrowing your age range for better matches" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the narrow-range suggestion, got %v", result.Summary.Recommendations)
	}
}

func TestFieldKindStringsExhaustive(t *testing.T) {
	kinds := []FieldKind{
		FieldText, FieldEmail, FieldNumber, FieldSelect, FieldMultiSelect,
		FieldMultiSelectText, FieldCitySearch, FieldTextarea, FieldSliderRange, FieldToggle,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "" || seen[s] {
			t.Fatalf("kind %d has empty or duplicate name %q", int(k), s)
		}
		seen[s] = true
	}
	if got := FieldKind(99).String(); got != "FieldKind(99)" {
		t.Fatalf("unexpected fallback name: %s", got)
	}
}
