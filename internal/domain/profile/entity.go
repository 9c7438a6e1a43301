package profile

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile represents a user's dating profile (matches user_profiles table)
type Profile struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Identity
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	Gender    sql.NullString `db:"gender"`
	Dob       sql.NullTime   `db:"dob"`
	Pronoun   sql.NullString `db:"pronoun"`

	// Account email shown on the profile; immutable through profile updates
	OfficialEmail string `db:"official_email"`

	// Verification flags
	IsOfficialEmailVerified bool `db:"is_official_email_verified"`
	IsPhoneVerified         bool `db:"is_phone_verified"`
	IsAadharVerified        bool `db:"is_aadhar_verified"`

	// Free-form
	Bio    sql.NullString  `db:"bio"`
	Images json.RawMessage `db:"images"`

	// Physical / lifestyle
	Height             sql.NullInt32  `db:"height"`
	Exercise           sql.NullString `db:"exercise"`
	EducationLevel     sql.NullString `db:"education_level"`
	Drinking           sql.NullString `db:"drinking"`
	Smoking            sql.NullString `db:"smoking"`
	LookingFor         sql.NullString `db:"looking_for"`
	SettleDownInMonths sql.NullString `db:"settle_down_in_months"`
	StarSign           sql.NullString `db:"star_sign"`
	Religion           sql.NullString `db:"religion"`

	// Location
	CurrentCity sql.NullString `db:"current_city"`
	Hometown    sql.NullString `db:"hometown"`

	// Kids
	HaveKids  sql.NullBool `db:"have_kids"`
	WantsKids sql.NullBool `db:"wants_kids"`

	// JSON arrays
	FavInterest      json.RawMessage `db:"fav_interest"`
	CausesYouSupport json.RawMessage `db:"causes_you_support"`
	QualityYouValue  json.RawMessage `db:"quality_you_value"`
	Prompts          json.RawMessage `db:"prompts"`
	Education        json.RawMessage `db:"education"`

	// Soft delete
	IsDeleted bool `db:"is_deleted"`
}

// GetImages parses images JSON
func (p *Profile) GetImages() []string {
	return decodeStringArray(p.Images)
}

// SetImages serializes images to JSON
func (p *Profile) SetImages(images []string) {
	p.Images = encodeStringArray(images)
}

// GetFavInterest parses interests JSON
func (p *Profile) GetFavInterest() []string {
	return decodeStringArray(p.FavInterest)
}

// SetFavInterest serializes interests to JSON
func (p *Profile) SetFavInterest(interests []string) {
	p.FavInterest = encodeStringArray(interests)
}

// GetCausesYouSupport parses causes JSON
func (p *Profile) GetCausesYouSupport() []string {
	return decodeStringArray(p.CausesYouSupport)
}

// SetCausesYouSupport serializes causes to JSON
func (p *Profile) SetCausesYouSupport(causes []string) {
	p.CausesYouSupport = encodeStringArray(causes)
}

// GetQualityYouValue parses qualities JSON
func (p *Profile) GetQualityYouValue() []string {
	return decodeStringArray(p.QualityYouValue)
}

// SetQualityYouValue serializes qualities to JSON
func (p *Profile) SetQualityYouValue(qualities []string) {
	p.QualityYouValue = encodeStringArray(qualities)
}

// PromptCount returns the number of answered prompts
func (p *Profile) PromptCount() int {
	return countJSONArray(p.Prompts)
}

// EducationCount returns the number of education entries
func (p *Profile) EducationCount() int {
	return countJSONArray(p.Education)
}

// Age derives age from dob with calendar-aware subtraction: the year
// difference is decremented when the birth month/day has not occurred yet.
// Returns -1 when dob is not set.
func (p *Profile) Age(now time.Time) int {
	if !p.Dob.Valid {
		return -1
	}
	return ageAt(p.Dob.Time, now)
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// GetDisplayName returns the user-facing name
func (p *Profile) GetDisplayName() string {
	first := ""
	if p.FirstName.Valid {
		first = p.FirstName.String
	}
	last := ""
	if p.LastName.Valid {
		last = p.LastName.String
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return "Member"
	}
}

func decodeStringArray(raw json.RawMessage) []string {
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

func encodeStringArray(items []string) json.RawMessage {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return raw
}

func countJSONArray(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}
	var items []json.RawMessage
	_ = json.Unmarshal(raw, &items)
	return len(items)
}
