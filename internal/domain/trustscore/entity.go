package trustscore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Warning levels escalate as the overall score drops
const (
	WarningNone = iota
	WarningNotice
	WarningSerious
	WarningFinal
)

// TrustScore represents a user's reliability record
// (matches user_trust_scores table)
type TrustScore struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Component scores, 0-100
	OverallScore             int `db:"overall_score"`
	AttendanceScore          int `db:"attendance_score"`
	PunctualityScore         int `db:"punctuality_score"`
	FeedbackScore            int `db:"feedback_score"`
	ProfileCompletenessScore int `db:"profile_completeness_score"`

	// Attendance counters
	TotalDatesAttended      int `db:"total_dates_attended"`
	TotalDatesCancelled     int `db:"total_dates_cancelled"`
	TotalDatesNoShow        int `db:"total_dates_no_show"`
	LastMinuteCancellations int `db:"last_minute_cancellations"`

	// Moderation state
	WarningLevel   int          `db:"warning_level"`
	IsOnProbation  bool         `db:"is_on_probation"`
	ProbationUntil sql.NullTime `db:"probation_until"`

	// Booking permissions
	CanBookDates    bool `db:"can_book_dates"`
	MaxDatesPerWeek int  `db:"max_dates_per_week"`
}

// NewDefault returns the trust score a fresh account starts with
func NewDefault(userID uuid.UUID) *TrustScore {
	now := time.Now()
	return &TrustScore{
		ID:                       uuid.New(),
		UserID:                   userID,
		OverallScore:             100,
		AttendanceScore:          100,
		PunctualityScore:         100,
		FeedbackScore:            100,
		ProfileCompletenessScore: 0,
		WarningLevel:             WarningNone,
		CanBookDates:             true,
		MaxDatesPerWeek:          3,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}
