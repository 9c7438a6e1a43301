package profile

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProfileResponse is the API shape of a profile
type ProfileResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Gender    *string `json:"gender"`
	Dob       *string `json:"dob"`
	Age       *int    `json:"age"`
	Pronoun   *string `json:"pronoun"`

	OfficialEmail           string `json:"officialEmail"`
	IsOfficialEmailVerified bool   `json:"isOfficialEmailVerified"`
	IsPhoneVerified         bool   `json:"isPhoneVerified"`
	IsAadharVerified        bool   `json:"isAadharVerified"`

	Bio    *string  `json:"bio"`
	Images []string `json:"images"`

	Height             *int    `json:"height"`
	Exercise           *string `json:"exercise"`
	EducationLevel     *string `json:"educationLevel"`
	Drinking           *string `json:"drinking"`
	Smoking            *string `json:"smoking"`
	LookingFor         *string `json:"lookingFor"`
	SettleDownInMonths *string `json:"settleDownInMonths"`
	StarSign           *string `json:"starSign"`
	Religion           *string `json:"religion"`

	CurrentCity *string `json:"currentCity"`
	Hometown    *string `json:"hometown"`

	HaveKids  *bool `json:"haveKids"`
	WantsKids *bool `json:"wantsKids"`

	FavInterest      []string        `json:"favInterest"`
	CausesYouSupport []string        `json:"causesYouSupport"`
	QualityYouValue  []string        `json:"qualityYouValue"`
	Prompts          json.RawMessage `json:"prompts,omitempty"`
	Education        json.RawMessage `json:"education,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileResponseFromEntity converts entity to response DTO
func ProfileResponseFromEntity(p *Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:                      p.ID,
		UserID:                  p.UserID,
		FirstName:               nullStringPtr(p.FirstName),
		LastName:                nullStringPtr(p.LastName),
		Gender:                  nullStringPtr(p.Gender),
		Pronoun:                 nullStringPtr(p.Pronoun),
		OfficialEmail:           p.OfficialEmail,
		IsOfficialEmailVerified: p.IsOfficialEmailVerified,
		IsPhoneVerified:         p.IsPhoneVerified,
		IsAadharVerified:        p.IsAadharVerified,
		Bio:                     nullStringPtr(p.Bio),
		Images:                  p.GetImages(),
		Exercise:                nullStringPtr(p.Exercise),
		EducationLevel:          nullStringPtr(p.EducationLevel),
		Drinking:                nullStringPtr(p.Drinking),
		Smoking:                 nullStringPtr(p.Smoking),
		LookingFor:              nullStringPtr(p.LookingFor),
		SettleDownInMonths:      nullStringPtr(p.SettleDownInMonths),
		StarSign:                nullStringPtr(p.StarSign),
		Religion:                nullStringPtr(p.Religion),
		CurrentCity:             nullStringPtr(p.CurrentCity),
		Hometown:                nullStringPtr(p.Hometown),
		HaveKids:                nullBoolPtr(p.HaveKids),
		WantsKids:               nullBoolPtr(p.WantsKids),
		FavInterest:             p.GetFavInterest(),
		CausesYouSupport:        p.GetCausesYouSupport(),
		QualityYouValue:         p.GetQualityYouValue(),
		Prompts:                 p.Prompts,
		Education:               p.Education,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}

	if p.Dob.Valid {
		dob := p.Dob.Time.Format("2006-01-02")
		resp.Dob = &dob
		age := p.Age(time.Now())
		resp.Age = &age
	}
	if p.Height.Valid {
		h := int(p.Height.Int32)
		resp.Height = &h
	}

	return resp
}

// UpdateProfileRequest carries a partial profile update. Absent fields are
// left untouched. OfficialEmail is accepted but stripped: the account email
// cannot be changed through a profile update.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Gender    *string `json:"gender" validate:"omitempty,gender"`
	Dob       *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Pronoun   *string `json:"pronoun" validate:"omitempty,pronoun"`

	OfficialEmail *string `json:"officialEmail"`

	Bio    *string   `json:"bio" validate:"omitempty,max=500"`
	Images *[]string `json:"images" validate:"omitempty,max=6,dive,url"`

	Height             *int    `json:"height" validate:"omitempty,min=100,max=250"`
	Exercise           *string `json:"exercise" validate:"omitempty,exercise_level"`
	EducationLevel     *string `json:"educationLevel" validate:"omitempty,education_level"`
	Drinking           *string `json:"drinking" validate:"omitempty,habit_frequency"`
	Smoking            *string `json:"smoking" validate:"omitempty,habit_frequency"`
	LookingFor         *string `json:"lookingFor" validate:"omitempty,looking_for"`
	SettleDownInMonths *string `json:"settleDownInMonths" validate:"omitempty,settle_down"`
	StarSign           *string `json:"starSign" validate:"omitempty,star_sign"`
	Religion           *string `json:"religion" validate:"omitempty,max=100"`

	CurrentCity *string `json:"currentCity" validate:"omitempty,min=2,max=100"`
	Hometown    *string `json:"hometown" validate:"omitempty,min=2,max=100"`

	HaveKids  *bool `json:"haveKids"`
	WantsKids *bool `json:"wantsKids"`

	FavInterest      *[]string `json:"favInterest" validate:"omitempty,max=10"`
	CausesYouSupport *[]string `json:"causesYouSupport" validate:"omitempty,max=10"`
	QualityYouValue  *[]string `json:"qualityYouValue" validate:"omitempty,max=10"`

	Prompts   json.RawMessage `json:"prompts"`
	Education json.RawMessage `json:"education"`
}

// Fields returns the submitted values keyed by field name, for the
// field-level validation pass. Stripped fields are excluded.
func (req *UpdateProfileRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if req.FirstName != nil {
		fields["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["lastName"] = *req.LastName
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Dob != nil {
		fields["dob"] = *req.Dob
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Images != nil {
		fields["images"] = *req.Images
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.CurrentCity != nil {
		fields["currentCity"] = *req.CurrentCity
	}
	if req.LookingFor != nil {
		fields["lookingFor"] = *req.LookingFor
	}
	if req.FavInterest != nil {
		fields["favInterest"] = *req.FavInterest
	}
	if req.CausesYouSupport != nil {
		fields["causesYouSupport"] = *req.CausesYouSupport
	}
	if req.QualityYouValue != nil {
		fields["qualityYouValue"] = *req.QualityYouValue
	}
	return fields
}

// Apply copies the submitted fields onto the entity
func (req *UpdateProfileRequest) Apply(p *Profile) {
	if req.FirstName != nil {
		p.FirstName = sql.NullString{String: *req.FirstName, Valid: true}
	}
	if req.LastName != nil {
		p.LastName = sql.NullString{String: *req.LastName, Valid: true}
	}
	if req.Gender != nil {
		p.Gender = sql.NullString{String: *req.Gender, Valid: true}
	}
	if req.Dob != nil {
		if dob, err := time.Parse("2006-01-02", *req.Dob); err == nil {
			p.Dob = sql.NullTime{Time: dob, Valid: true}
		}
	}
	if req.Pronoun != nil {
		p.Pronoun = sql.NullString{String: *req.Pronoun, Valid: true}
	}
	if req.Bio != nil {
		p.Bio = sql.NullString{String: *req.Bio, Valid: true}
	}
	if req.Images != nil {
		p.SetImages(*req.Images)
	}
	if req.Height != nil {
		p.Height = sql.NullInt32{Int32: int32(*req.Height), Valid: true}
	}
	if req.Exercise != nil {
		p.Exercise = sql.NullString{String: *req.Exercise, Valid: true}
	}
	if req.EducationLevel != nil {
		p.EducationLevel = sql.NullString{String: *req.EducationLevel, Valid: true}
	}
	if req.Drinking != nil {
		p.Drinking = sql.NullString{String: *req.Drinking, Valid: true}
	}
	if req.Smoking != nil {
		p.Smoking = sql.NullString{String: *req.Smoking, Valid: true}
	}
	if req.LookingFor != nil {
		p.LookingFor = sql.NullString{String: *req.LookingFor, Valid: true}
	}
	if req.SettleDownInMonths != nil {
		p.SettleDownInMonths = sql.NullString{String: *req.SettleDownInMonths, Valid: true}
	}
	if req.StarSign != nil {
		p.StarSign = sql.NullString{String: *req.StarSign, Valid: true}
	}
	if req.Religion != nil {
		p.Religion = sql.NullString{String: *req.Religion, Valid: true}
	}
	if req.CurrentCity != nil {
		p.CurrentCity = sql.NullString{String: *req.CurrentCity, Valid: true}
	}
	if req.Hometown != nil {
		p.Hometown = sql.NullString{String: *req.Hometown, Valid: true}
	}
	if req.HaveKids != nil {
		p.HaveKids = sql.NullBool{Bool: *req.HaveKids, Valid: true}
	}
	if req.WantsKids != nil {
		p.WantsKids = sql.NullBool{Bool: *req.WantsKids, Valid: true}
	}
	if req.FavInterest != nil {
		p.SetFavInterest(*req.FavInterest)
	}
	if req.CausesYouSupport != nil {
		p.SetCausesYouSupport(*req.CausesYouSupport)
	}
	if req.QualityYouValue != nil {
		p.SetQualityYouValue(*req.QualityYouValue)
	}
	if req.Prompts != nil {
		p.Prompts = req.Prompts
	}
	if req.Education != nil {
		p.Education = req.Education
	}
}

// UpdateAvatarRequest sets the primary profile photo
type UpdateAvatarRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

// AvatarUploadURLRequest asks for a presigned upload slot
type AvatarUploadURLRequest struct {
	ContentType string `json:"contentType" validate:"required,oneof=image/jpeg image/png image/webp"`
}

// AvatarUploadURLResponse carries the presigned URL and the final public URL
type AvatarUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
}

// StatsResponse summarizes profile health
type StatsResponse struct {
	CompletionPercentage int      `json:"completionPercentage"`
	ProfileStrength      string   `json:"profileStrength"`
	IsComplete           bool     `json:"isComplete"`
	MissingFields        []string `json:"missingFields"`
	Recommendations      []string `json:"recommendations"`
	TotalImages          int      `json:"totalImages"`
	PromptCount          int      `json:"promptCount"`
	EmailVerified        bool     `json:"emailVerified"`
	PhoneVerified        bool     `json:"phoneVerified"`
	AadharVerified       bool     `json:"aadharVerified"`
	MemberSince          string   `json:"memberSince"`
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullBoolPtr(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	b := nb.Bool
	return &b
}
