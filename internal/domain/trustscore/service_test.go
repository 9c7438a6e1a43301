package trustscore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeScoreRepo struct {
	stored    *TrustScore
	created   *TrustScore
	updated   *TrustScore
	getErr    error
	createErr error
	updateErr error
}

func (f *fakeScoreRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*TrustScore, error) {
	return f.stored, f.getErr
}

func (f *fakeScoreRepo) Create(_ context.Context, ts *TrustScore) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = ts
	return nil
}

func (f *fakeScoreRepo) Update(_ context.Context, ts *TrustScore) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = ts
	return nil
}

func TestGetOrCreateSeedsDefaults(t *testing.T) {
	repo := &fakeScoreRepo{}
	svc := NewService(repo)
	userID := uuid.New()

	ts, err := svc.GetOrCreate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected the seeded score to be persisted")
	}
	if ts.UserID != userID {
		t.Fatalf("expected score bound to user %s, got %s", userID, ts.UserID)
	}
	if ts.OverallScore != 100 || ts.AttendanceScore != 100 || ts.PunctualityScore != 100 || ts.FeedbackScore != 100 {
		t.Fatalf("expected a fresh account to start at 100, got %+v", ts)
	}
	if ts.ProfileCompletenessScore != 0 {
		t.Fatalf("expected completeness to start at 0, got %d", ts.ProfileCompletenessScore)
	}
	if !ts.CanBookDates || ts.MaxDatesPerWeek != 3 {
		t.Fatalf("expected default booking permissions, got %+v", ts)
	}
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	stored := NewDefault(uuid.New())
	repo := &fakeScoreRepo{stored: stored}
	svc := NewService(repo)

	ts, err := svc.GetOrCreate(context.Background(), stored.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts != stored {
		t.Fatal("expected the stored score back")
	}
	if repo.created != nil {
		t.Fatal("expected no second seed for an existing score")
	}
}

func TestOnProfileUpdatedFeedsCompleteness(t *testing.T) {
	stored := NewDefault(uuid.New())
	repo := &fakeScoreRepo{stored: stored}
	svc := NewService(repo)

	svc.OnProfileUpdated(context.Background(), stored.UserID, 80)

	if repo.updated == nil {
		t.Fatal("expected the score to be updated")
	}
	if repo.updated.ProfileCompletenessScore != 80 {
		t.Fatalf("expected completeness 80, got %d", repo.updated.ProfileCompletenessScore)
	}
	// 0.35*100 + 0.25*100 + 0.25*100 + 0.15*80 = 97
	if repo.updated.OverallScore != 97 {
		t.Fatalf("expected overall 97, got %d", repo.updated.OverallScore)
	}
	if repo.updated.WarningLevel != WarningNone {
		t.Fatalf("expected no warning, got level %d", repo.updated.WarningLevel)
	}
}

func TestOnProfileUpdatedClampsCompleteness(t *testing.T) {
	stored := NewDefault(uuid.New())
	repo := &fakeScoreRepo{stored: stored}
	svc := NewService(repo)

	svc.OnProfileUpdated(context.Background(), stored.UserID, 140)

	if repo.updated.ProfileCompletenessScore != 100 {
		t.Fatalf("expected completeness clamped to 100, got %d", repo.updated.ProfileCompletenessScore)
	}
}

func TestOnProfileUpdatedSwallowsErrors(t *testing.T) {
	repo := &fakeScoreRepo{getErr: errors.New("db down")}
	svc := NewService(repo)

	// Must not panic or propagate; a profile save never fails on scoring
	svc.OnProfileUpdated(context.Background(), uuid.New(), 50)

	repo = &fakeScoreRepo{stored: NewDefault(uuid.New()), updateErr: errors.New("db down")}
	svc = NewService(repo)
	svc.OnProfileUpdated(context.Background(), uuid.New(), 50)
}

func TestRecalculateAppliesAttendancePenalties(t *testing.T) {
	stored := NewDefault(uuid.New())
	stored.TotalDatesNoShow = 2        // -30
	stored.LastMinuteCancellations = 1 // -10
	stored.TotalDatesCancelled = 2     // -10
	repo := &fakeScoreRepo{stored: stored}
	svc := NewService(repo)

	ts, err := svc.Recalculate(context.Background(), stored.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.AttendanceScore != 50 {
		t.Fatalf("expected attendance 50 after penalties, got %d", ts.AttendanceScore)
	}
	// 0.35*50 + 0.25*100 + 0.25*100 + 0.15*0 = 67.5, rounds to 68
	if ts.OverallScore != 68 {
		t.Fatalf("expected overall 68, got %d", ts.OverallScore)
	}
	if ts.WarningLevel != WarningNotice {
		t.Fatalf("expected notice level, got %d", ts.WarningLevel)
	}
	if repo.updated != ts {
		t.Fatal("expected the recalculated score to be saved")
	}
}

func TestRecalculateAttendanceFloorsAtZero(t *testing.T) {
	stored := NewDefault(uuid.New())
	stored.TotalDatesNoShow = 10
	repo := &fakeScoreRepo{stored: stored}
	svc := NewService(repo)

	ts, err := svc.Recalculate(context.Background(), stored.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.AttendanceScore != 0 {
		t.Fatalf("expected attendance clamped to 0, got %d", ts.AttendanceScore)
	}
}

func TestRecalculateNotFound(t *testing.T) {
	svc := NewService(&fakeScoreRepo{})

	_, err := svc.Recalculate(context.Background(), uuid.New())
	if !errors.Is(err, ErrTrustScoreNotFound) {
		t.Fatalf("expected ErrTrustScoreNotFound, got %v", err)
	}
}

func TestRecomputeModerationThresholds(t *testing.T) {
	cases := []struct {
		score     int
		level     int
		probation bool
	}{
		{100, WarningNone, false},
		{80, WarningNone, false},
		{79, WarningNotice, false},
		{60, WarningNotice, false},
		{59, WarningSerious, false},
		{40, WarningSerious, false},
		{39, WarningFinal, true},
		{0, WarningFinal, true},
	}

	for _, tc := range cases {
		ts := &TrustScore{
			AttendanceScore:          tc.score,
			PunctualityScore:         tc.score,
			FeedbackScore:            tc.score,
			ProfileCompletenessScore: tc.score,
		}
		recompute(ts)
		if ts.OverallScore != tc.score {
			t.Errorf("score %d: expected overall unchanged, got %d", tc.score, ts.OverallScore)
		}
		if ts.WarningLevel != tc.level {
			t.Errorf("score %d: expected warning level %d, got %d", tc.score, tc.level, ts.WarningLevel)
		}
		if ts.IsOnProbation != tc.probation {
			t.Errorf("score %d: expected probation=%v", tc.score, tc.probation)
		}
		if ts.CanBookDates == tc.probation {
			t.Errorf("score %d: expected booking inverted from probation", tc.score)
		}
	}
}
