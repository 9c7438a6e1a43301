package trustscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines trust-score data access interface
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*TrustScore, error)
	Create(ctx context.Context, ts *TrustScore) error
	Update(ctx context.Context, ts *TrustScore) error
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new trust-score repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const trustScoreColumns = `
	id, user_id, overall_score, attendance_score, punctuality_score,
	feedback_score, profile_completeness_score,
	total_dates_attended, total_dates_cancelled, total_dates_no_show,
	last_minute_cancellations, warning_level, is_on_probation, probation_until,
	can_book_dates, max_dates_per_week, created_at, updated_at
`

// GetByUserID returns the trust score for a user
func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*TrustScore, error) {
	query := `SELECT ` + trustScoreColumns + ` FROM user_trust_scores WHERE user_id = $1`

	var ts TrustScore
	err := r.db.GetContext(ctx, &ts, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &ts, nil
}

// Create inserts a new trust-score row
func (r *repository) Create(ctx context.Context, ts *TrustScore) error {
	query := `
		INSERT INTO user_trust_scores (
			id, user_id, overall_score, attendance_score, punctuality_score,
			feedback_score, profile_completeness_score,
			total_dates_attended, total_dates_cancelled, total_dates_no_show,
			last_minute_cancellations, warning_level, is_on_probation, probation_until,
			can_book_dates, max_dates_per_week
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.ExecContext(ctx, query,
		ts.ID, ts.UserID, ts.OverallScore, ts.AttendanceScore, ts.PunctualityScore,
		ts.FeedbackScore, ts.ProfileCompletenessScore,
		ts.TotalDatesAttended, ts.TotalDatesCancelled, ts.TotalDatesNoShow,
		ts.LastMinuteCancellations, ts.WarningLevel, ts.IsOnProbation, ts.ProbationUntil,
		ts.CanBookDates, ts.MaxDatesPerWeek,
	)
	if err != nil {
		return fmt.Errorf("trust score repository create: %w", err)
	}

	return nil
}

// Update rewrites the full trust-score row
func (r *repository) Update(ctx context.Context, ts *TrustScore) error {
	query := `
		UPDATE user_trust_scores SET
			overall_score = $2, attendance_score = $3, punctuality_score = $4,
			feedback_score = $5, profile_completeness_score = $6,
			total_dates_attended = $7, total_dates_cancelled = $8, total_dates_no_show = $9,
			last_minute_cancellations = $10, warning_level = $11, is_on_probation = $12,
			probation_until = $13, can_book_dates = $14, max_dates_per_week = $15,
			updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		ts.UserID, ts.OverallScore, ts.AttendanceScore, ts.PunctualityScore,
		ts.FeedbackScore, ts.ProfileCompletenessScore,
		ts.TotalDatesAttended, ts.TotalDatesCancelled, ts.TotalDatesNoShow,
		ts.LastMinuteCancellations, ts.WarningLevel, ts.IsOnProbation,
		ts.ProbationUntil, ts.CanBookDates, ts.MaxDatesPerWeek,
	)
	if err != nil {
		return fmt.Errorf("trust score repository update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTrustScoreNotFound
	}

	return nil
}
