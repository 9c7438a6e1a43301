package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines profile data access interface
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	UpdateImages(ctx context.Context, userID uuid.UUID, images []string) error
	SoftDelete(ctx context.Context, userID uuid.UUID) error
	EnqueueAvatarUpload(ctx context.Context, userID uuid.UUID, storageKey, mimeType string) error
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new profile repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const profileColumns = `
	id, user_id, first_name, last_name, gender, dob, pronoun,
	official_email, is_official_email_verified, is_phone_verified, is_aadhar_verified,
	bio, images, height, exercise, education_level, drinking, smoking,
	looking_for, settle_down_in_months, star_sign, religion,
	current_city, hometown, have_kids, wants_kids,
	fav_interest, causes_you_support, quality_you_value, prompts, education,
	is_deleted, created_at, updated_at
`

// Create creates a new profile
func (r *repository) Create(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO user_profiles (
			id, user_id, first_name, last_name, gender, dob, pronoun,
			official_email, is_official_email_verified, is_phone_verified, is_aadhar_verified,
			bio, images, height, exercise, education_level, drinking, smoking,
			looking_for, settle_down_in_months, star_sign, religion,
			current_city, hometown, have_kids, wants_kids,
			fav_interest, causes_you_support, quality_you_value, prompts, education,
			is_deleted
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Gender, p.Dob, p.Pronoun,
		p.OfficialEmail, p.IsOfficialEmailVerified, p.IsPhoneVerified, p.IsAadharVerified,
		p.Bio, p.Images, p.Height, p.Exercise, p.EducationLevel, p.Drinking, p.Smoking,
		p.LookingFor, p.SettleDownInMonths, p.StarSign, p.Religion,
		p.CurrentCity, p.Hometown, p.HaveKids, p.WantsKids,
		p.FavInterest, p.CausesYouSupport, p.QualityYouValue, p.Prompts, p.Education,
		p.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("profile repository create: %w", err)
	}

	return nil
}

// GetByUserID returns the profile for a user
func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1 AND is_deleted = false`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

// Update rewrites the full row inside a single-row transaction. The
// transaction covers atomicity of one update only, not cross-request
// coordination: concurrent edits stay last-write-wins.
func (r *repository) Update(ctx context.Context, p *Profile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("profile repository update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE user_profiles SET
			first_name = $2, last_name = $3, gender = $4, dob = $5, pronoun = $6,
			bio = $7, images = $8, height = $9, exercise = $10, education_level = $11,
			drinking = $12, smoking = $13, looking_for = $14, settle_down_in_months = $15,
			star_sign = $16, religion = $17, current_city = $18, hometown = $19,
			have_kids = $20, wants_kids = $21, fav_interest = $22, causes_you_support = $23,
			quality_you_value = $24, prompts = $25, education = $26, updated_at = NOW()
		WHERE user_id = $1 AND is_deleted = false
	`

	res, err := tx.ExecContext(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Gender, p.Dob, p.Pronoun,
		p.Bio, p.Images, p.Height, p.Exercise, p.EducationLevel,
		p.Drinking, p.Smoking, p.LookingFor, p.SettleDownInMonths,
		p.StarSign, p.Religion, p.CurrentCity, p.Hometown,
		p.HaveKids, p.WantsKids, p.FavInterest, p.CausesYouSupport,
		p.QualityYouValue, p.Prompts, p.Education,
	)
	if err != nil {
		return fmt.Errorf("profile repository update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}

	return tx.Commit()
}

// UpdateImages replaces only the images column
func (r *repository) UpdateImages(ctx context.Context, userID uuid.UUID, images []string) error {
	raw := encodeStringArray(images)
	query := `UPDATE user_profiles SET images = $2, updated_at = NOW() WHERE user_id = $1 AND is_deleted = false`

	res, err := r.db.ExecContext(ctx, query, userID, raw)
	if err != nil {
		return fmt.Errorf("profile repository update images: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// EnqueueAvatarUpload records a pending processing job for an uploaded photo.
// Re-enqueueing the same key is a no-op.
func (r *repository) EnqueueAvatarUpload(ctx context.Context, userID uuid.UUID, storageKey, mimeType string) error {
	query := `
		INSERT INTO avatar_uploads (id, user_id, storage_key, mime_type, process_status, process_attempts)
		VALUES ($1, $2, $3, $4, 'pending', 0)
		ON CONFLICT (storage_key) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), userID, storageKey, mimeType)
	if err != nil {
		return fmt.Errorf("profile repository enqueue avatar upload: %w", err)
	}
	return nil
}

// SoftDelete flags the profile deleted without removing the row
func (r *repository) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE user_profiles SET is_deleted = true, updated_at = NOW() WHERE user_id = $1 AND is_deleted = false`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("profile repository soft delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}
