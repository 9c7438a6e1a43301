package trustscore

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Component weights for the overall score
const (
	weightAttendance   = 0.35
	weightPunctuality  = 0.25
	weightFeedback     = 0.25
	weightCompleteness = 0.15
)

// Attendance penalties per incident
const (
	penaltyNoShow     = 15
	penaltyLastMinute = 10
	penaltyCancelled  = 5
)

// Service handles trust-score business logic
type Service struct {
	repo Repository
}

// NewService creates trust-score service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate returns the trust score for a user, seeding defaults for a
// fresh account.
func (s *Service) GetOrCreate(ctx context.Context, userID uuid.UUID) (*TrustScore, error) {
	ts, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ts != nil {
		return ts, nil
	}

	ts = NewDefault(userID)
	if err := s.repo.Create(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// OnProfileUpdated feeds the recomputed completion percentage into the
// completeness component. Implements the profile service's ScoreUpdater.
// Failures are logged, never surfaced: trust scoring must not break a
// profile save.
func (s *Service) OnProfileUpdated(ctx context.Context, userID uuid.UUID, completionPercentage int) {
	ts, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to load trust score after profile update")
		return
	}

	ts.ProfileCompletenessScore = clampScore(completionPercentage)
	recompute(ts)

	if err := s.repo.Update(ctx, ts); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to update trust score after profile update")
	}
}

// Recalculate rebuilds the attendance component from the raw counters and
// rederives the overall score and moderation state.
func (s *Service) Recalculate(ctx context.Context, userID uuid.UUID) (*TrustScore, error) {
	ts, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, ErrTrustScoreNotFound
	}

	ts.AttendanceScore = clampScore(100 -
		ts.TotalDatesNoShow*penaltyNoShow -
		ts.LastMinuteCancellations*penaltyLastMinute -
		ts.TotalDatesCancelled*penaltyCancelled)
	recompute(ts)

	if err := s.repo.Update(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// recompute derives the overall score and the moderation state from the
// component scores.
func recompute(ts *TrustScore) {
	overall := weightAttendance*float64(ts.AttendanceScore) +
		weightPunctuality*float64(ts.PunctualityScore) +
		weightFeedback*float64(ts.FeedbackScore) +
		weightCompleteness*float64(ts.ProfileCompletenessScore)
	ts.OverallScore = clampScore(int(math.Round(overall)))

	switch {
	case ts.OverallScore >= 80:
		ts.WarningLevel = WarningNone
	case ts.OverallScore >= 60:
		ts.WarningLevel = WarningNotice
	case ts.OverallScore >= 40:
		ts.WarningLevel = WarningSerious
	default:
		ts.WarningLevel = WarningFinal
	}

	ts.IsOnProbation = ts.OverallScore < 40
	ts.CanBookDates = ts.OverallScore >= 40
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
