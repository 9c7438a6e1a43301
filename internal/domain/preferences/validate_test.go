package preferences

import (
	"fmt"
	"testing"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

func manyItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	return items
}

func TestValidateFieldRequiredEmpty(t *testing.T) {
	v := NewFieldValidator()

	res := v.ValidateField("genderPreference", "")
	if res == nil || res.Code != "REQUIRED_FIELD" || res.Type != validation.TypeError {
		t.Fatalf("expected REQUIRED_FIELD error, got %+v", res)
	}
}

func TestValidateFieldOptionalEmptyPasses(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("minHeight", nil); res != nil {
		t.Fatalf("expected empty optional field to pass, got %+v", res)
	}
}

func TestValidateFieldUnknownFieldIgnored(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("notAField", "whatever"); res != nil {
		t.Fatalf("expected unknown field to be ignored, got %+v", res)
	}
}

func TestValidateMinAgeBounds(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("minAge", 17); res == nil || res.Code != "AGE_OUT_OF_RANGE" {
		t.Fatalf("expected AGE_OUT_OF_RANGE below 18, got %+v", res)
	}
	if res := v.ValidateField("minAge", 81); res == nil || res.Code != "AGE_OUT_OF_RANGE" {
		t.Fatalf("expected AGE_OUT_OF_RANGE above 80, got %+v", res)
	}
	if res := v.ValidateField("minAge", 80); res != nil {
		t.Fatalf("expected 80 to pass for minAge, got %+v", res)
	}
}

func TestValidateMaxAgeBounds(t *testing.T) {
	v := NewFieldValidator()

	// maxAge allows up to 100, unlike minAge's 80 ceiling
	if res := v.ValidateField("maxAge", 100); res != nil {
		t.Fatalf("expected 100 to pass for maxAge, got %+v", res)
	}
	if res := v.ValidateField("maxAge", 101); res == nil || res.Code != "AGE_OUT_OF_RANGE" {
		t.Fatalf("expected AGE_OUT_OF_RANGE above 100, got %+v", res)
	}
}

func TestValidateHeightBounds(t *testing.T) {
	v := NewFieldValidator()

	// The preference floor is 120cm, higher than the profile form's 100cm
	if res := v.ValidateField("minHeight", 119); res == nil || res.Code != "HEIGHT_OUT_OF_RANGE" {
		t.Fatalf("expected HEIGHT_OUT_OF_RANGE below 120, got %+v", res)
	}
	if res := v.ValidateField("minHeight", 120); res != nil {
		t.Fatalf("expected 120 to pass, got %+v", res)
	}
	if res := v.ValidateField("maxHeight", 251); res == nil || res.Code != "HEIGHT_OUT_OF_RANGE" {
		t.Fatalf("expected HEIGHT_OUT_OF_RANGE above 250, got %+v", res)
	}
}

func TestValidateIncomeNonNegative(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("minIncome", -1.0); res == nil || res.Code != "NEGATIVE_INCOME" {
		t.Fatalf("expected NEGATIVE_INCOME, got %+v", res)
	}
	if res := v.ValidateField("minIncome", 50000.0); res != nil {
		t.Fatalf("expected positive income to pass, got %+v", res)
	}
}

func TestValidateRadiusBounds(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("locationPreferenceRadius", 0); res == nil || res.Code != "RADIUS_OUT_OF_RANGE" {
		t.Fatalf("expected RADIUS_OUT_OF_RANGE below 1, got %+v", res)
	}
	if res := v.ValidateField("locationPreferenceRadius", 1001); res == nil || res.Code != "RADIUS_OUT_OF_RANGE" {
		t.Fatalf("expected RADIUS_OUT_OF_RANGE above 1000, got %+v", res)
	}
	if res := v.ValidateField("locationPreferenceRadius", 50); res != nil {
		t.Fatalf("expected 50km to pass, got %+v", res)
	}
}

func TestValidateListCaps(t *testing.T) {
	v := NewFieldValidator()

	cases := []struct {
		field string
		limit int
		code  string
	}{
		{"hobbies", MaxHobbies, "TOO_MANY_HOBBIES"},
		{"interests", MaxInterests, "TOO_MANY_INTERESTS"},
		{"educationLevel", MaxEducationLevels, "TOO_MANY_EDUCATION_LEVELS"},
		{"personalityTraits", MaxPersonalityTraits, "TOO_MANY_TRAITS"},
	}
	for _, tc := range cases {
		if res := v.ValidateField(tc.field, manyItems(tc.limit+1)); res == nil || res.Code != tc.code {
			t.Errorf("%s: expected %s over the cap, got %+v", tc.field, tc.code, res)
		}
		if res := v.ValidateField(tc.field, manyItems(tc.limit)); res != nil {
			t.Errorf("%s: expected %d items to pass, got %+v", tc.field, tc.limit, res)
		}
	}
}

func TestValidateProfessionUsesBusinessCap(t *testing.T) {
	v := NewFieldValidator()

	// 9 professions sit inside the form config's cap of 10 but over the
	// enforced business cap of 8
	res := v.ValidateField("profession", manyItems(MaxProfessions+1))
	if res == nil || res.Code != "TOO_MANY_PROFESSIONS" {
		t.Fatalf("expected TOO_MANY_PROFESSIONS at 9 items, got %+v", res)
	}
	if res := v.ValidateField("profession", manyItems(MaxProfessions)); res != nil {
		t.Fatalf("expected 8 professions to pass, got %+v", res)
	}
}

func TestValidateNoteLength(t *testing.T) {
	v := NewFieldValidator()

	long := make([]byte, NoteMaxLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if res := v.ValidateField("whatOtherPersonShouldKnow", string(long)); res == nil || res.Code != "DESCRIPTION_TOO_LONG" || res.Type != validation.TypeError {
		t.Fatalf("expected DESCRIPTION_TOO_LONG error, got %+v", res)
	}

	res := v.ValidateField("whatOtherPersonShouldKnow", "hi there")
	if res == nil || res.Code != "DESCRIPTION_TOO_SHORT" || res.Type != validation.TypeWarning {
		t.Fatalf("expected DESCRIPTION_TOO_SHORT warning, got %+v", res)
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	v := NewFieldValidator()

	if res := v.ValidateField("minAge", "twenty"); res == nil || res.Code != "INVALID_TYPE" {
		t.Fatalf("expected INVALID_TYPE for text in a number field, got %+v", res)
	}
}

func TestValidateFieldCached(t *testing.T) {
	v := NewFieldValidator()

	first := v.ValidateField("minAge", 17)
	second := v.ValidateField("minAge", 17)
	if first == nil || second != first {
		t.Fatal("expected the cached result instance for an unchanged value")
	}
}
