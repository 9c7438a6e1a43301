package profile

import (
	"fmt"
	"testing"
	"time"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

func fixedNowValidator(now time.Time) *FieldValidator {
	v := NewFieldValidator()
	v.now = func() time.Time { return now }
	return v
}

func TestValidateFieldRequiredEmpty(t *testing.T) {
	v := NewFieldValidator()

	res := v.ValidateField("firstName", "")
	if res == nil {
		t.Fatal("expected error for empty required field")
	}
	if res.Code != "REQUIRED_FIELD" || res.Type != validation.TypeError {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestValidateFieldOptionalEmptyPasses(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("bio", ""); res != nil {
		t.Fatalf("expected empty optional field to pass, got %+v", res)
	}
}

func TestValidateFieldEmptyImagesWarns(t *testing.T) {
	v := NewFieldValidator()

	res := v.ValidateField("images", []string{})
	if res == nil || res.Code != "NO_IMAGES" || res.Type != validation.TypeWarning {
		t.Fatalf("expected NO_IMAGES warning, got %+v", res)
	}
}

func TestValidateFieldName(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("firstName", "J"); res == nil || res.Code != "NAME_TOO_SHORT" {
		t.Fatalf("expected NAME_TOO_SHORT, got %+v", res)
	}
	if res := v.ValidateField("firstName", "Jess"); res != nil {
		t.Fatalf("expected valid name to pass, got %+v", res)
	}
}

func TestValidateFieldDobAgeBoundary(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	v := fixedNowValidator(now)

	// 18th birthday is tomorrow: still 17
	res := v.ValidateField("dob", "2008-08-30")
	if res == nil || res.Code != "AGE_OUT_OF_RANGE" || res.Type != validation.TypeError {
		t.Fatalf("expected AGE_OUT_OF_RANGE for a 17-year-old, got %+v", res)
	}
	if res.Message != "You must be at least 18 years old" {
		t.Fatalf("unexpected message: %s", res.Message)
	}

	// 18th birthday is today: passes
	if res := v.ValidateField("dob", "2008-08-29"); res != nil {
		t.Fatalf("expected an 18-year-old to pass, got %+v", res)
	}
}

func TestValidateFieldDobFormat(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("dob", "29/08/2000"); res == nil || res.Code != "INVALID_DOB" {
		t.Fatalf("expected INVALID_DOB for a malformed date, got %+v", res)
	}
}

func TestValidateFieldBio(t *testing.T) {
	v := NewFieldValidator()

	long := make([]byte, BioMaxLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if res := v.ValidateField("bio", string(long)); res == nil || res.Code != "DESCRIPTION_TOO_LONG" || res.Type != validation.TypeError {
		t.Fatalf("expected DESCRIPTION_TOO_LONG error, got %+v", res)
	}

	if res := v.ValidateField("bio", "short"); res == nil || res.Code != "DESCRIPTION_TOO_SHORT" || res.Type != validation.TypeWarning {
		t.Fatalf("expected DESCRIPTION_TOO_SHORT warning, got %+v", res)
	}
}

func TestValidateFieldHeightBounds(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("height", 99); res == nil || res.Code != "HEIGHT_OUT_OF_RANGE" {
		t.Fatalf("expected HEIGHT_OUT_OF_RANGE below 100, got %+v", res)
	}
	// The profile floor is 100cm, lower than the preference form's 120cm
	if res := v.ValidateField("height", 100); res != nil {
		t.Fatalf("expected 100cm to pass, got %+v", res)
	}
	if res := v.ValidateField("height", 251); res == nil || res.Code != "HEIGHT_OUT_OF_RANGE" {
		t.Fatalf("expected HEIGHT_OUT_OF_RANGE above 250, got %+v", res)
	}
}

func TestValidateFieldImagesCap(t *testing.T) {
	v := NewFieldValidator()

	images := make([]string, MaxImages+1)
	for i := range images {
		images[i] = fmt.Sprintf("https://cdn.example.com/%d.jpg", i)
	}
	if res := v.ValidateField("images", images); res == nil || res.Code != "TOO_MANY_IMAGES" {
		t.Fatalf("expected TOO_MANY_IMAGES, got %+v", res)
	}
	if res := v.ValidateField("images", images[:MaxImages]); res != nil {
		t.Fatalf("expected %d images to pass, got %+v", MaxImages, res)
	}
}

func TestValidateFieldCacheIdempotence(t *testing.T) {
	v := NewFieldValidator()

	first := v.ValidateField("firstName", "J")
	second := v.ValidateField("firstName", "J")
	if first == nil || second != first {
		t.Fatal("expected the cached result instance for an unchanged value")
	}

	third := v.ValidateField("firstName", "Jess")
	if third != nil {
		t.Fatalf("expected changed value to revalidate cleanly, got %+v", third)
	}
}

func TestValidateFieldsStableOrder(t *testing.T) {
	v := NewFieldValidator()

	fields := map[string]interface{}{
		"lastName":  "",
		"firstName": "",
	}
	results := v.ValidateFields(fields)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Field != "firstName" || results[1].Field != "lastName" {
		t.Fatalf("expected sorted field order, got %s then %s", results[0].Field, results[1].Field)
	}
}
