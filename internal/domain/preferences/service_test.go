package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakePrefsRepo struct {
	stored    *PartnerPreferences
	upserted  *PartnerPreferences
	getCalls  int
	getErr    error
	upsertErr error
}

func (f *fakePrefsRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*PartnerPreferences, error) {
	f.getCalls++
	return f.stored, f.getErr
}

func (f *fakePrefsRepo) Upsert(_ context.Context, p *PartnerPreferences) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = p
	return nil
}

func TestGetPreferencesNotFound(t *testing.T) {
	repo := &fakePrefsRepo{}
	svc := NewService(repo)

	_, err := svc.GetPreferences(context.Background(), uuid.New())
	if !errors.Is(err, ErrPreferencesNotFound) {
		t.Fatalf("expected ErrPreferencesNotFound, got %v", err)
	}
}

func TestGetPreferencesReturnsStored(t *testing.T) {
	stored := &PartnerPreferences{ID: uuid.New(), UserID: uuid.New()}
	repo := &fakePrefsRepo{stored: stored}
	svc := NewService(repo)

	p, err := svc.GetPreferences(context.Background(), stored.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != stored {
		t.Fatal("expected the stored record back")
	}
}

func TestUpdatePreferencesFirstSaveCreatesRecord(t *testing.T) {
	repo := &fakePrefsRepo{}
	svc := NewService(repo)
	userID := uuid.New()

	p, result, err := svc.UpdatePreferences(context.Background(), userID, completeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.upserted == nil {
		t.Fatal("expected the new record to be saved")
	}
	if p.UserID != userID {
		t.Fatalf("expected record bound to user %s, got %s", userID, p.UserID)
	}
	if p.ID == uuid.Nil {
		t.Fatal("expected a fresh id on first save")
	}
	if !result.IsValid {
		t.Fatalf("expected a valid result, errors=%+v", result.Errors)
	}
}

func TestUpdatePreferencesMergesOverStored(t *testing.T) {
	userID := uuid.New()
	stored := &PartnerPreferences{ID: uuid.New(), UserID: userID}
	base := completeInput()
	base.RelationshipGoals = nil
	base.Apply(stored)

	repo := &fakePrefsRepo{stored: stored}
	svc := NewService(repo)

	in := &PreferencesInput{RelationshipGoals: strPtr("Long-term")}
	p, _, err := svc.UpdatePreferences(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != stored.ID {
		t.Fatal("expected the stored record to be updated in place")
	}
	if !p.RelationshipGoals.Valid || p.RelationshipGoals.String != "Long-term" {
		t.Fatalf("expected relationship goals applied, got %+v", p.RelationshipGoals)
	}
	// Fields absent from the payload keep their stored values
	if !p.GenderPreference.Valid || p.GenderPreference.String != "Female" {
		t.Fatalf("expected stored gender preference preserved, got %+v", p.GenderPreference)
	}
}

func TestUpdatePreferencesValidationAbortsSave(t *testing.T) {
	repo := &fakePrefsRepo{}
	svc := NewService(repo)

	in := completeInput()
	in.MinAge = intPtr(17)

	p, result, err := svc.UpdatePreferences(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrPreferencesValidation) {
		t.Fatalf("expected ErrPreferencesValidation, got %v", err)
	}
	if p != nil {
		t.Fatal("expected no record on a failed validation")
	}
	if repo.upserted != nil {
		t.Fatal("expected the save to be skipped")
	}
	if result == nil || result.IsValid {
		t.Fatalf("expected the failing result to ride along, got %+v", result)
	}
}

func TestUpdatePreferencesValidatesMergedRecord(t *testing.T) {
	// The stored row already has maxAge 35; submitting only minAge 40
	// inverts the merged range even though the payload alone looks fine.
	userID := uuid.New()
	stored := &PartnerPreferences{ID: uuid.New(), UserID: userID}
	completeInput().Apply(stored)

	repo := &fakePrefsRepo{stored: stored}
	svc := NewService(repo)

	_, result, err := svc.UpdatePreferences(context.Background(), userID, &PreferencesInput{MinAge: intPtr(40)})
	if !errors.Is(err, ErrPreferencesValidation) {
		t.Fatalf("expected the merged record to fail validation, got %v", err)
	}
	if findByCode(result.Errors, "INVALID_AGE_RANGE") == nil {
		t.Fatalf("expected INVALID_AGE_RANGE against the stored maxAge, got %+v", result.Errors)
	}
}

func TestValidatePreferencesDoesNotTouchStorage(t *testing.T) {
	repo := &fakePrefsRepo{}
	svc := NewService(repo)

	result := svc.ValidatePreferences(context.Background(), &PreferencesInput{})
	if result.IsValid {
		t.Fatal("expected an empty record to be invalid")
	}
	if repo.getCalls != 0 || repo.upserted != nil {
		t.Fatal("expected the dry run to leave storage untouched")
	}
}
