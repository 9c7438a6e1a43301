package preferences

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles partner-preferences business logic
type Service struct {
	repo Repository
}

// NewService creates preferences service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetPreferences returns stored preferences for a user
func (s *Service) GetPreferences(ctx context.Context, userID uuid.UUID) (*PartnerPreferences, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPreferencesNotFound
	}
	return p, nil
}

// UpdatePreferences merges the submitted fields over the stored record,
// validates the merged result and saves it. Hard errors abort the save;
// warnings and the summary ride along with the response. A fresh engine
// (and field cache) is built per update session.
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, in *PreferencesInput) (*PartnerPreferences, *Result, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		now := time.Now()
		p = &PartnerPreferences{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	in.Apply(p)

	result := NewEngine().Validate(InputFromEntity(p))
	if !result.IsValid {
		return nil, result, ErrPreferencesValidation
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, nil, err
	}

	return p, result, nil
}

// ValidatePreferences runs a dry validation pass over the submitted record
// without touching storage.
func (s *Service) ValidatePreferences(_ context.Context, in *PreferencesInput) *Result {
	return NewEngine().Validate(in)
}
