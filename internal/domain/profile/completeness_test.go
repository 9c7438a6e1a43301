package profile

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestProfile() *Profile {
	now := time.Now()
	p := &Profile{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		OfficialEmail: "jess@example.com",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.SetImages(nil)
	p.SetFavInterest(nil)
	p.SetCausesYouSupport(nil)
	p.SetQualityYouValue(nil)
	return p
}

func fillRequired(p *Profile) {
	p.FirstName = sql.NullString{String: "Jess", Valid: true}
	p.LastName = sql.NullString{String: "Lee", Valid: true}
	p.Gender = sql.NullString{String: "Female", Valid: true}
	p.Dob = sql.NullTime{Time: time.Date(1996, 4, 12, 0, 0, 0, 0, time.UTC), Valid: true}
	p.CurrentCity = sql.NullString{String: "Bangalore", Valid: true}
	p.LookingFor = sql.NullString{String: "Relationship", Valid: true}
}

func TestCompletenessEmptyProfile(t *testing.T) {
	p := newTestProfile()

	c := CalculateCompleteness(p)
	if c.IsComplete {
		t.Fatal("expected empty profile to be incomplete")
	}
	if c.CompletionPercentage != 0 {
		t.Fatalf("expected 0%%, got %d", c.CompletionPercentage)
	}
	if c.ProfileStrength != StrengthWeak {
		t.Fatalf("expected weak strength, got %s", c.ProfileStrength)
	}
	if len(c.MissingFields) != len(RequiredFields)+len(OptionalFields) {
		t.Fatalf("expected every field missing, got %d", len(c.MissingFields))
	}
}

func TestCompletenessRequiredOnly(t *testing.T) {
	p := newTestProfile()
	fillRequired(p)

	c := CalculateCompleteness(p)
	if !c.IsComplete {
		t.Fatalf("expected profile with all required fields to be complete, missing=%v", c.MissingFields)
	}
	// 6 of 25 fields filled
	if c.CompletionPercentage != 24 {
		t.Fatalf("expected 24%%, got %d", c.CompletionPercentage)
	}
	for _, field := range c.MissingFields {
		for _, required := range RequiredFields {
			if field == required {
				t.Fatalf("required field %s reported missing", field)
			}
		}
	}
}

func TestCompletenessPercentageMonotonicity(t *testing.T) {
	p := newTestProfile()
	before := CalculateCompleteness(p).CompletionPercentage

	p.Bio = sql.NullString{String: "Coffee person, weekend trekker.", Valid: true}
	after := CalculateCompleteness(p).CompletionPercentage

	if after <= before {
		t.Fatalf("expected percentage to rise after filling a field: %d -> %d", before, after)
	}
	if after < 0 || after > 100 {
		t.Fatalf("percentage out of range: %d", after)
	}
}

func TestCompletenessStrengthThresholds(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, StrengthComplete},
		{95, StrengthComplete},
		{94, StrengthStrong},
		{80, StrengthStrong},
		{79, StrengthModerate},
		{60, StrengthModerate},
		{59, StrengthWeak},
		{0, StrengthWeak},
	}
	for _, tc := range cases {
		if got := strengthFor(tc.percentage); got != tc.want {
			t.Errorf("strengthFor(%d) = %s, want %s", tc.percentage, got, tc.want)
		}
	}
}

func TestCompletenessRecommendationsOrderAndCap(t *testing.T) {
	p := newTestProfile()
	fillRequired(p)

	c := CalculateCompleteness(p)
	if len(c.Recommendations) != 3 {
		t.Fatalf("expected recommendations capped at 3, got %d", len(c.Recommendations))
	}
	// Images is the highest-impact nudge and must come first
	if c.Recommendations[0] != "Add profile photos to increase your visibility by 300%" {
		t.Fatalf("unexpected first recommendation: %s", c.Recommendations[0])
	}
}

func TestCompletenessVerificationNudges(t *testing.T) {
	p := newTestProfile()
	fillRequired(p)
	p.SetImages([]string{"https://cdn.example.com/a.jpg"})
	p.Bio = sql.NullString{String: "Here for something real.", Valid: true}
	p.SetFavInterest([]string{"hiking", "jazz"})
	p.Height = sql.NullInt32{Int32: 168, Valid: true}
	p.Education = []byte(`[{"degree":"BSc"}]`)

	c := CalculateCompleteness(p)
	found := false
	for _, rec := range c.Recommendations {
		if rec == "Verify your email address to build trust" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected email verification nudge once field nudges are exhausted, got %v", c.Recommendations)
	}
}

func TestIsFieldFilled(t *testing.T) {
	cases := []struct {
		value interface{}
		want  bool
	}{
		{nil, false},
		{"", false},
		{"   ", false},
		{"x", true},
		{[]string{}, false},
		{[]string{"a"}, true},
		{false, true},
		{true, true},
		{0, true},
		{170, true},
	}
	for _, tc := range cases {
		if got := isFieldFilled(tc.value); got != tc.want {
			t.Errorf("isFieldFilled(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestAgeCalendarAware(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	before := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	if got := ageAt(dob, before); got != 23 {
		t.Fatalf("expected 23 the day before the birthday, got %d", got)
	}

	onDay := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := ageAt(dob, onDay); got != 24 {
		t.Fatalf("expected 24 on the birthday, got %d", got)
	}
}
