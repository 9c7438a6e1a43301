package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

const (
	presignExpiry     = 15 * time.Minute
	avatarWakeChannel = "avatars:uploaded"
)

// AvatarStorage is the object-storage surface the service needs for photos
type AvatarStorage interface {
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	GetURL(key string) string
	KeyFromURL(url string) (string, bool)
}

// ScoreUpdater receives the recomputed completion percentage after every
// profile change (trust scoring keeps a completeness component).
type ScoreUpdater interface {
	OnProfileUpdated(ctx context.Context, userID uuid.UUID, completionPercentage int)
}

// Service handles profile business logic
type Service struct {
	repo         Repository
	cache        *redis.Client
	storage      AvatarStorage
	scoreUpdater ScoreUpdater
	statsTTL     time.Duration
}

// NewService creates profile service. cache, storage and scoreUpdater may be
// nil; the corresponding features degrade gracefully.
func NewService(repo Repository, cache *redis.Client, storage AvatarStorage, scoreUpdater ScoreUpdater, statsTTL time.Duration) *Service {
	if statsTTL <= 0 {
		statsTTL = 5 * time.Minute
	}
	return &Service{
		repo:         repo,
		cache:        cache,
		storage:      storage,
		scoreUpdater: scoreUpdater,
		statsTTL:     statsTTL,
	}
}

// GetProfile returns the profile for a user
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// CreateProfile creates an empty profile row for a new account
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, officialEmail string) (*Profile, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	now := time.Now()
	p := &Profile{
		ID:            uuid.New(),
		UserID:        userID,
		OfficialEmail: officialEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.SetImages(nil)
	p.SetFavInterest(nil)
	p.SetCausesYouSupport(nil)
	p.SetQualityYouValue(nil)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile applies a partial update. Every submitted field goes through
// the field validator first; error-severity results abort the save while
// warnings ride along with the response. A fresh validator (and cache) is
// constructed per update session.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*Profile, []*validation.Error, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrProfileNotFound
	}

	results := NewFieldValidator().ValidateFields(req.Fields())
	errs, warnings := validation.Partition(results)
	if len(errs) > 0 {
		return nil, errs, ErrProfileValidation
	}

	req.Apply(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, nil, err
	}

	s.invalidateStats(ctx, userID)
	s.notifyScoreUpdater(ctx, userID, p)

	return p, warnings, nil
}

// DeleteProfile soft-deletes the profile
func (s *Service) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, userID); err != nil {
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

// SetAvatar prepends the image to the profile's photo list. A URL already in
// the list moves to the front instead of duplicating. The list is capped at
// MaxImages by dropping from the tail.
func (s *Service) SetAvatar(ctx context.Context, userID uuid.UUID, imageURL string) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	images := []string{imageURL}
	for _, existing := range p.GetImages() {
		if existing != imageURL {
			images = append(images, existing)
		}
	}
	if len(images) > MaxImages {
		images = images[:MaxImages]
	}

	if err := s.repo.UpdateImages(ctx, userID, images); err != nil {
		return nil, err
	}

	p.SetImages(images)
	s.invalidateStats(ctx, userID)
	s.notifyScoreUpdater(ctx, userID, p)
	s.enqueueProcessing(ctx, userID, imageURL)

	return p, nil
}

// enqueueProcessing schedules the photo for optimization by the image worker.
// Best effort: the raw image is already being served.
func (s *Service) enqueueProcessing(ctx context.Context, userID uuid.UUID, imageURL string) {
	if s.storage == nil {
		return
	}
	key, ok := s.storage.KeyFromURL(imageURL)
	if !ok {
		return
	}

	if err := s.repo.EnqueueAvatarUpload(ctx, userID, key, mimeTypeFor(key)); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to enqueue avatar processing")
		return
	}
	if s.cache != nil {
		if err := s.cache.Publish(ctx, avatarWakeChannel, key).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to publish avatar wakeup")
		}
	}
}

// AvatarUploadURL returns a presigned upload slot for a new profile photo
func (s *Service) AvatarUploadURL(ctx context.Context, userID uuid.UUID, contentType string) (*AvatarUploadURLResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New(), extensionFor(contentType))
	uploadURL, err := s.storage.PresignUpload(ctx, key, contentType, presignExpiry)
	if err != nil {
		return nil, err
	}

	return &AvatarUploadURLResponse{
		UploadURL: uploadURL,
		ImageURL:  s.storage.GetURL(key),
	}, nil
}

// GetStats returns the completeness summary, cached in Redis for a short TTL
func (s *Service) GetStats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	key := statsCacheKey(userID)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var stats StatsResponse
			if err := json.Unmarshal(raw, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	completeness := CalculateCompleteness(p)
	stats := &StatsResponse{
		CompletionPercentage: completeness.CompletionPercentage,
		ProfileStrength:      completeness.ProfileStrength,
		IsComplete:           completeness.IsComplete,
		MissingFields:        completeness.MissingFields,
		Recommendations:      completeness.Recommendations,
		TotalImages:          len(p.GetImages()),
		PromptCount:          p.PromptCount(),
		EmailVerified:        p.IsOfficialEmailVerified,
		PhoneVerified:        p.IsPhoneVerified,
		AadharVerified:       p.IsAadharVerified,
		MemberSince:          p.CreatedAt.Format("2006-01-02"),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.statsTTL).Err(); err != nil {
				log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to cache profile stats")
			}
		}
	}

	return stats, nil
}

func (s *Service) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey(userID)).Err(); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to invalidate profile stats cache")
	}
}

func (s *Service) notifyScoreUpdater(ctx context.Context, userID uuid.UUID, p *Profile) {
	if s.scoreUpdater == nil {
		return
	}
	completeness := CalculateCompleteness(p)
	s.scoreUpdater.OnProfileUpdated(ctx, userID, completeness.CompletionPercentage)
}

func statsCacheKey(userID uuid.UUID) string {
	return "profile:stats:" + userID.String()
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func mimeTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
