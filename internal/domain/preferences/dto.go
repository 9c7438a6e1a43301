package preferences

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

// PreferencesInput is the update/validate payload. All fields are optional;
// absent fields are left untouched on update. Unknown fields are rejected
// at decode time.
type PreferencesInput struct {
	GenderPreference *string `json:"genderPreference" validate:"omitempty,gender_preference"`
	MinAge           *int    `json:"minAge"`
	MaxAge           *int    `json:"maxAge"`
	MinHeight        *int    `json:"minHeight"`
	MaxHeight        *int    `json:"maxHeight"`

	LocationPreference       *string `json:"locationPreference" validate:"omitempty,max=100"`
	LocationPreferenceRadius *int    `json:"locationPreferenceRadius"`

	EducationLevel []string `json:"educationLevel"`
	Profession     []string `json:"profession"`
	MinIncome      *float64 `json:"minIncome"`
	MaxIncome      *float64 `json:"maxIncome"`
	Currency       *string  `json:"currency" validate:"omitempty,len=3"`

	SmokingPreference       *string `json:"smokingPreference" validate:"omitempty,habit_frequency"`
	DrinkingPreference      *string `json:"drinkingPreference" validate:"omitempty,habit_frequency"`
	MaritalStatusPreference *string `json:"maritalStatusPreference" validate:"omitempty,max=50"`
	ChildrenPreference      *string `json:"childrenPreference" validate:"omitempty,max=50"`

	Hobbies      []string `json:"hobbies"`
	Interests    []string `json:"interests"`
	BooksReading []string `json:"booksReading"`
	Music        []string `json:"music"`
	Movies       []string `json:"movies"`
	Travel       []string `json:"travel"`
	Sports       []string `json:"sports"`

	PersonalityTraits   []string `json:"personalityTraits"`
	RelationshipGoals   *string  `json:"relationshipGoals" validate:"omitempty,max=50"`
	ActivityLevel       *string  `json:"activityLevel" validate:"omitempty,max=50"`
	PetPreference       *string  `json:"petPreference" validate:"omitempty,max=50"`
	LifestylePreference []string `json:"lifestylePreference"`

	WhatOtherPersonShouldKnow *string `json:"whatOtherPersonShouldKnow"`
	Religion                  *string `json:"religion" validate:"omitempty,max=100"`
	Ethnicity                 *string `json:"ethnicity" validate:"omitempty,max=100"`
	Caste                     *string `json:"caste" validate:"omitempty,max=100"`
}

// fieldValue maps a configured field name to the submitted value.
// nil means the field was not submitted (or submitted empty).
func (in *PreferencesInput) fieldValue(name string) interface{} {
	switch name {
	case "genderPreference":
		return strValue(in.GenderPreference)
	case "minAge":
		return intValue(in.MinAge)
	case "maxAge":
		return intValue(in.MaxAge)
	case "minHeight":
		return intValue(in.MinHeight)
	case "maxHeight":
		return intValue(in.MaxHeight)
	case "locationPreference":
		return strValue(in.LocationPreference)
	case "locationPreferenceRadius":
		return intValue(in.LocationPreferenceRadius)
	case "educationLevel":
		return listValue(in.EducationLevel)
	case "profession":
		return listValue(in.Profession)
	case "minIncome":
		return floatValue(in.MinIncome)
	case "maxIncome":
		return floatValue(in.MaxIncome)
	case "currency":
		return strValue(in.Currency)
	case "smokingPreference":
		return strValue(in.SmokingPreference)
	case "drinkingPreference":
		return strValue(in.DrinkingPreference)
	case "maritalStatusPreference":
		return strValue(in.MaritalStatusPreference)
	case "childrenPreference":
		return strValue(in.ChildrenPreference)
	case "hobbies":
		return listValue(in.Hobbies)
	case "interests":
		return listValue(in.Interests)
	case "booksReading":
		return listValue(in.BooksReading)
	case "music":
		return listValue(in.Music)
	case "movies":
		return listValue(in.Movies)
	case "travel":
		return listValue(in.Travel)
	case "sports":
		return listValue(in.Sports)
	case "personalityTraits":
		return listValue(in.PersonalityTraits)
	case "relationshipGoals":
		return strValue(in.RelationshipGoals)
	case "activityLevel":
		return strValue(in.ActivityLevel)
	case "petPreference":
		return strValue(in.PetPreference)
	case "lifestylePreference":
		return listValue(in.LifestylePreference)
	case "whatOtherPersonShouldKnow":
		return strValue(in.WhatOtherPersonShouldKnow)
	case "religion":
		return strValue(in.Religion)
	}
	return nil
}

// Apply copies the submitted fields onto the entity
func (in *PreferencesInput) Apply(p *PartnerPreferences) {
	if in.GenderPreference != nil {
		p.GenderPreference = sql.NullString{String: *in.GenderPreference, Valid: true}
	}
	if in.MinAge != nil {
		p.MinAge = sql.NullInt32{Int32: int32(*in.MinAge), Valid: true}
	}
	if in.MaxAge != nil {
		p.MaxAge = sql.NullInt32{Int32: int32(*in.MaxAge), Valid: true}
	}
	if in.MinHeight != nil {
		p.MinHeight = sql.NullInt32{Int32: int32(*in.MinHeight), Valid: true}
	}
	if in.MaxHeight != nil {
		p.MaxHeight = sql.NullInt32{Int32: int32(*in.MaxHeight), Valid: true}
	}
	if in.LocationPreference != nil {
		p.LocationPreference = sql.NullString{String: *in.LocationPreference, Valid: true}
	}
	if in.LocationPreferenceRadius != nil {
		p.LocationPreferenceRadius = sql.NullInt32{Int32: int32(*in.LocationPreferenceRadius), Valid: true}
	}
	if in.EducationLevel != nil {
		p.EducationLevel = encodeList(in.EducationLevel)
	}
	if in.Profession != nil {
		p.Profession = encodeList(in.Profession)
	}
	if in.MinIncome != nil {
		p.MinIncome = sql.NullFloat64{Float64: *in.MinIncome, Valid: true}
	}
	if in.MaxIncome != nil {
		p.MaxIncome = sql.NullFloat64{Float64: *in.MaxIncome, Valid: true}
	}
	if in.Currency != nil {
		p.Currency = sql.NullString{String: *in.Currency, Valid: true}
	}
	if in.SmokingPreference != nil {
		p.SmokingPreference = sql.NullString{String: *in.SmokingPreference, Valid: true}
	}
	if in.DrinkingPreference != nil {
		p.DrinkingPreference = sql.NullString{String: *in.DrinkingPreference, Valid: true}
	}
	if in.MaritalStatusPreference != nil {
		p.MaritalStatusPreference = sql.NullString{String: *in.MaritalStatusPreference, Valid: true}
	}
	if in.ChildrenPreference != nil {
		p.ChildrenPreference = sql.NullString{String: *in.ChildrenPreference, Valid: true}
	}
	if in.Hobbies != nil {
		p.Hobbies = encodeList(in.Hobbies)
	}
	if in.Interests != nil {
		p.Interests = encodeList(in.Interests)
	}
	if in.BooksReading != nil {
		p.BooksReading = encodeList(in.BooksReading)
	}
	if in.Music != nil {
		p.Music = encodeList(in.Music)
	}
	if in.Movies != nil {
		p.Movies = encodeList(in.Movies)
	}
	if in.Travel != nil {
		p.Travel = encodeList(in.Travel)
	}
	if in.Sports != nil {
		p.Sports = encodeList(in.Sports)
	}
	if in.PersonalityTraits != nil {
		p.PersonalityTraits = encodeList(in.PersonalityTraits)
	}
	if in.RelationshipGoals != nil {
		p.RelationshipGoals = sql.NullString{String: *in.RelationshipGoals, Valid: true}
	}
	if in.ActivityLevel != nil {
		p.ActivityLevel = sql.NullString{String: *in.ActivityLevel, Valid: true}
	}
	if in.PetPreference != nil {
		p.PetPreference = sql.NullString{String: *in.PetPreference, Valid: true}
	}
	if in.LifestylePreference != nil {
		p.LifestylePreference = encodeList(in.LifestylePreference)
	}
	if in.WhatOtherPersonShouldKnow != nil {
		p.WhatOtherPersonShouldKnow = sql.NullString{String: *in.WhatOtherPersonShouldKnow, Valid: true}
	}
	if in.Religion != nil {
		p.ReligionPreference = sql.NullString{String: *in.Religion, Valid: true}
	}
	if in.Ethnicity != nil {
		p.EthnicityPreference = sql.NullString{String: *in.Ethnicity, Valid: true}
	}
	if in.Caste != nil {
		p.CastePreference = sql.NullString{String: *in.Caste, Valid: true}
	}
}

// InputFromEntity rebuilds the full field set from a stored row, so the
// aggregate pass can score a saved record merged with an update.
func InputFromEntity(p *PartnerPreferences) *PreferencesInput {
	in := &PreferencesInput{
		GenderPreference:          nullStrPtr(p.GenderPreference),
		MinAge:                    nullIntPtr(p.MinAge),
		MaxAge:                    nullIntPtr(p.MaxAge),
		MinHeight:                 nullIntPtr(p.MinHeight),
		MaxHeight:                 nullIntPtr(p.MaxHeight),
		LocationPreference:        nullStrPtr(p.LocationPreference),
		LocationPreferenceRadius:  nullIntPtr(p.LocationPreferenceRadius),
		EducationLevel:            p.GetEducationLevel(),
		Profession:                p.GetProfession(),
		MinIncome:                 nullFloatPtr(p.MinIncome),
		MaxIncome:                 nullFloatPtr(p.MaxIncome),
		Currency:                  nullStrPtr(p.Currency),
		SmokingPreference:         nullStrPtr(p.SmokingPreference),
		DrinkingPreference:        nullStrPtr(p.DrinkingPreference),
		MaritalStatusPreference:   nullStrPtr(p.MaritalStatusPreference),
		ChildrenPreference:        nullStrPtr(p.ChildrenPreference),
		Hobbies:                   p.GetHobbies(),
		Interests:                 p.GetInterests(),
		BooksReading:              p.GetBooksReading(),
		Music:                     p.GetMusic(),
		Movies:                    p.GetMovies(),
		Travel:                    p.GetTravel(),
		Sports:                    p.GetSports(),
		PersonalityTraits:         p.GetPersonalityTraits(),
		RelationshipGoals:         nullStrPtr(p.RelationshipGoals),
		ActivityLevel:             nullStrPtr(p.ActivityLevel),
		PetPreference:             nullStrPtr(p.PetPreference),
		LifestylePreference:       p.GetLifestylePreference(),
		WhatOtherPersonShouldKnow: nullStrPtr(p.WhatOtherPersonShouldKnow),
		Religion:                  nullStrPtr(p.ReligionPreference),
		Ethnicity:                 nullStrPtr(p.EthnicityPreference),
		Caste:                     nullStrPtr(p.CastePreference),
	}
	return in
}

// PreferencesResponse is the API shape of stored preferences
type PreferencesResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	GenderPreference *string `json:"genderPreference"`
	MinAge           *int    `json:"minAge"`
	MaxAge           *int    `json:"maxAge"`
	MinHeight        *int    `json:"minHeight"`
	MaxHeight        *int    `json:"maxHeight"`

	LocationPreference       *string `json:"locationPreference"`
	LocationPreferenceRadius *int    `json:"locationPreferenceRadius"`

	EducationLevel []string `json:"educationLevel"`
	Profession     []string `json:"profession"`
	MinIncome      *float64 `json:"minIncome"`
	MaxIncome      *float64 `json:"maxIncome"`
	Currency       *string  `json:"currency"`

	SmokingPreference       *string `json:"smokingPreference"`
	DrinkingPreference      *string `json:"drinkingPreference"`
	MaritalStatusPreference *string `json:"maritalStatusPreference"`
	ChildrenPreference      *string `json:"childrenPreference"`

	Hobbies      []string `json:"hobbies"`
	Interests    []string `json:"interests"`
	BooksReading []string `json:"booksReading"`
	Music        []string `json:"music"`
	Movies       []string `json:"movies"`
	Travel       []string `json:"travel"`
	Sports       []string `json:"sports"`

	PersonalityTraits   []string `json:"personalityTraits"`
	RelationshipGoals   *string  `json:"relationshipGoals"`
	ActivityLevel       *string  `json:"activityLevel"`
	PetPreference       *string  `json:"petPreference"`
	LifestylePreference []string `json:"lifestylePreference"`

	WhatOtherPersonShouldKnow *string `json:"whatOtherPersonShouldKnow"`
	Religion                  *string `json:"religion"`
	Ethnicity                 *string `json:"ethnicity"`
	Caste                     *string `json:"caste"`

	CompatibilityScore *int `json:"compatibilityScore"`
	MatchScore         *int `json:"matchScore"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PreferencesResponseFromEntity converts entity to response DTO
func PreferencesResponseFromEntity(p *PartnerPreferences) *PreferencesResponse {
	return &PreferencesResponse{
		ID:                        p.ID,
		UserID:                    p.UserID,
		GenderPreference:          nullStrPtr(p.GenderPreference),
		MinAge:                    nullIntPtr(p.MinAge),
		MaxAge:                    nullIntPtr(p.MaxAge),
		MinHeight:                 nullIntPtr(p.MinHeight),
		MaxHeight:                 nullIntPtr(p.MaxHeight),
		LocationPreference:        nullStrPtr(p.LocationPreference),
		LocationPreferenceRadius:  nullIntPtr(p.LocationPreferenceRadius),
		EducationLevel:            p.GetEducationLevel(),
		Profession:                p.GetProfession(),
		MinIncome:                 nullFloatPtr(p.MinIncome),
		MaxIncome:                 nullFloatPtr(p.MaxIncome),
		Currency:                  nullStrPtr(p.Currency),
		SmokingPreference:         nullStrPtr(p.SmokingPreference),
		DrinkingPreference:        nullStrPtr(p.DrinkingPreference),
		MaritalStatusPreference:   nullStrPtr(p.MaritalStatusPreference),
		ChildrenPreference:        nullStrPtr(p.ChildrenPreference),
		Hobbies:                   p.GetHobbies(),
		Interests:                 p.GetInterests(),
		BooksReading:              p.GetBooksReading(),
		Music:                     p.GetMusic(),
		Movies:                    p.GetMovies(),
		Travel:                    p.GetTravel(),
		Sports:                    p.GetSports(),
		PersonalityTraits:         p.GetPersonalityTraits(),
		RelationshipGoals:         nullStrPtr(p.RelationshipGoals),
		ActivityLevel:             nullStrPtr(p.ActivityLevel),
		PetPreference:             nullStrPtr(p.PetPreference),
		LifestylePreference:       p.GetLifestylePreference(),
		WhatOtherPersonShouldKnow: nullStrPtr(p.WhatOtherPersonShouldKnow),
		Religion:                  nullStrPtr(p.ReligionPreference),
		Ethnicity:                 nullStrPtr(p.EthnicityPreference),
		Caste:                     nullStrPtr(p.CastePreference),
		CompatibilityScore:        nullIntPtr(p.CompatibilityScore),
		MatchScore:                nullIntPtr(p.MatchScore),
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

// UpdateResult pairs the saved preferences with the validation outcome
type UpdateResult struct {
	Preferences *PreferencesResponse `json:"preferences"`
	Warnings    []*validation.Error  `json:"warnings"`
	Summary     *Summary             `json:"summary"`
}

func strValue(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func intValue(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func floatValue(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func listValue(items []string) interface{} {
	if items == nil {
		return nil
	}
	return items
}

func nullStrPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullIntPtr(ni sql.NullInt32) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int32)
	return &n
}

func nullFloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
