package preferences

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PartnerPreferences represents a user's matching criteria
// (matches partner_preferences table)
type PartnerPreferences struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Basic
	GenderPreference sql.NullString `db:"gender_preference"`
	MinAge           sql.NullInt32  `db:"min_age"`
	MaxAge           sql.NullInt32  `db:"max_age"`
	MinHeight        sql.NullInt32  `db:"min_height"`
	MaxHeight        sql.NullInt32  `db:"max_height"`

	// Location
	LocationPreference       sql.NullString `db:"location_preference"`
	LocationPreferenceRadius sql.NullInt32  `db:"location_preference_radius"`

	// Education & career
	EducationLevel json.RawMessage `db:"education_level"`
	Profession     json.RawMessage `db:"profession"`
	MinIncome      sql.NullFloat64 `db:"min_income"`
	MaxIncome      sql.NullFloat64 `db:"max_income"`
	Currency       sql.NullString  `db:"currency"`

	// Lifestyle
	SmokingPreference       sql.NullString `db:"smoking_preference"`
	DrinkingPreference      sql.NullString `db:"drinking_preference"`
	MaritalStatusPreference sql.NullString `db:"marital_status_preference"`
	ChildrenPreference      sql.NullString `db:"children_preference"`

	// Interests
	Hobbies      json.RawMessage `db:"hobbies"`
	Interests    json.RawMessage `db:"interests"`
	BooksReading json.RawMessage `db:"books_reading"`
	Music        json.RawMessage `db:"music"`
	Movies       json.RawMessage `db:"movies"`
	Travel       json.RawMessage `db:"travel"`
	Sports       json.RawMessage `db:"sports"`

	// Personality
	PersonalityTraits   json.RawMessage `db:"personality_traits"`
	RelationshipGoals   sql.NullString  `db:"relationship_goals"`
	ActivityLevel       sql.NullString  `db:"activity_level"`
	PetPreference       sql.NullString  `db:"pet_preference"`
	LifestylePreference json.RawMessage `db:"lifestyle_preference"`

	// Additional
	WhatOtherPersonShouldKnow sql.NullString `db:"what_other_person_should_know"`
	ReligionPreference        sql.NullString `db:"religion_preference"`
	EthnicityPreference       sql.NullString `db:"ethnicity_preference"`
	CastePreference           sql.NullString `db:"caste_preference"`

	// Derived elsewhere, read-only through this API
	CompatibilityScore sql.NullInt32 `db:"compatibility_score"`
	MatchScore         sql.NullInt32 `db:"match_score"`
}

func (p *PartnerPreferences) getList(raw json.RawMessage) []string {
	if raw == nil {
		return []string{}
	}
	var items []string
	_ = json.Unmarshal(raw, &items)
	if items == nil {
		items = []string{}
	}
	return items
}

func (p *PartnerPreferences) GetEducationLevel() []string { return p.getList(p.EducationLevel) }
func (p *PartnerPreferences) GetProfession() []string     { return p.getList(p.Profession) }
func (p *PartnerPreferences) GetHobbies() []string        { return p.getList(p.Hobbies) }
func (p *PartnerPreferences) GetInterests() []string      { return p.getList(p.Interests) }
func (p *PartnerPreferences) GetBooksReading() []string   { return p.getList(p.BooksReading) }
func (p *PartnerPreferences) GetMusic() []string          { return p.getList(p.Music) }
func (p *PartnerPreferences) GetMovies() []string         { return p.getList(p.Movies) }
func (p *PartnerPreferences) GetTravel() []string         { return p.getList(p.Travel) }
func (p *PartnerPreferences) GetSports() []string         { return p.getList(p.Sports) }
func (p *PartnerPreferences) GetPersonalityTraits() []string {
	return p.getList(p.PersonalityTraits)
}
func (p *PartnerPreferences) GetLifestylePreference() []string {
	return p.getList(p.LifestylePreference)
}

func encodeList(items []string) json.RawMessage {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return raw
}
