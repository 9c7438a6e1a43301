package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines partner-preferences data access interface
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*PartnerPreferences, error)
	Upsert(ctx context.Context, p *PartnerPreferences) error
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new preferences repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const preferencesColumns = `
	id, user_id, gender_preference, min_age, max_age, min_height, max_height,
	location_preference, location_preference_radius,
	education_level, profession, min_income, max_income, currency,
	smoking_preference, drinking_preference, marital_status_preference, children_preference,
	hobbies, interests, books_reading, music, movies, travel, sports,
	personality_traits, relationship_goals, activity_level, pet_preference, lifestyle_preference,
	what_other_person_should_know, religion_preference, ethnicity_preference, caste_preference,
	compatibility_score, match_score, created_at, updated_at
`

// GetByUserID returns stored preferences for a user
func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*PartnerPreferences, error) {
	query := `SELECT ` + preferencesColumns + ` FROM partner_preferences WHERE user_id = $1`

	var p PartnerPreferences
	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

// Upsert writes the full preference row, inserting on first save.
// One statement keeps the write atomic; concurrent saves are
// last-write-wins by design of the API.
func (r *repository) Upsert(ctx context.Context, p *PartnerPreferences) error {
	query := `
		INSERT INTO partner_preferences (
			id, user_id, gender_preference, min_age, max_age, min_height, max_height,
			location_preference, location_preference_radius,
			education_level, profession, min_income, max_income, currency,
			smoking_preference, drinking_preference, marital_status_preference, children_preference,
			hobbies, interests, books_reading, music, movies, travel, sports,
			personality_traits, relationship_goals, activity_level, pet_preference, lifestyle_preference,
			what_other_person_should_know, religion_preference, ethnicity_preference, caste_preference
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34
		)
		ON CONFLICT (user_id) DO UPDATE SET
			gender_preference = EXCLUDED.gender_preference,
			min_age = EXCLUDED.min_age,
			max_age = EXCLUDED.max_age,
			min_height = EXCLUDED.min_height,
			max_height = EXCLUDED.max_height,
			location_preference = EXCLUDED.location_preference,
			location_preference_radius = EXCLUDED.location_preference_radius,
			education_level = EXCLUDED.education_level,
			profession = EXCLUDED.profession,
			min_income = EXCLUDED.min_income,
			max_income = EXCLUDED.max_income,
			currency = EXCLUDED.currency,
			smoking_preference = EXCLUDED.smoking_preference,
			drinking_preference = EXCLUDED.drinking_preference,
			marital_status_preference = EXCLUDED.marital_status_preference,
			children_preference = EXCLUDED.children_preference,
			hobbies = EXCLUDED.hobbies,
			interests = EXCLUDED.interests,
			books_reading = EXCLUDED.books_reading,
			music = EXCLUDED.music,
			movies = EXCLUDED.movies,
			travel = EXCLUDED.travel,
			sports = EXCLUDED.sports,
			personality_traits = EXCLUDED.personality_traits,
			relationship_goals = EXCLUDED.relationship_goals,
			activity_level = EXCLUDED.activity_level,
			pet_preference = EXCLUDED.pet_preference,
			lifestyle_preference = EXCLUDED.lifestyle_preference,
			what_other_person_should_know = EXCLUDED.what_other_person_should_know,
			religion_preference = EXCLUDED.religion_preference,
			ethnicity_preference = EXCLUDED.ethnicity_preference,
			caste_preference = EXCLUDED.caste_preference,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.GenderPreference, p.MinAge, p.MaxAge, p.MinHeight, p.MaxHeight,
		p.LocationPreference, p.LocationPreferenceRadius,
		p.EducationLevel, p.Profession, p.MinIncome, p.MaxIncome, p.Currency,
		p.SmokingPreference, p.DrinkingPreference, p.MaritalStatusPreference, p.ChildrenPreference,
		p.Hobbies, p.Interests, p.BooksReading, p.Music, p.Movies, p.Travel, p.Sports,
		p.PersonalityTraits, p.RelationshipGoals, p.ActivityLevel, p.PetPreference, p.LifestylePreference,
		p.WhatOtherPersonShouldKnow, p.ReligionPreference, p.EthnicityPreference, p.CastePreference,
	)
	if err != nil {
		return fmt.Errorf("preferences repository upsert: %w", err)
	}

	return nil
}
