package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeProfileRepo struct {
	profile     *Profile
	updated     *Profile
	images      []string
	deletedID   uuid.UUID
	enqueuedKey string
	updateErr   error
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *Profile) error {
	f.profile = p
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	if f.profile != nil && f.profile.UserID == userID {
		return f.profile, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = p
	return nil
}

func (f *fakeProfileRepo) UpdateImages(ctx context.Context, userID uuid.UUID, images []string) error {
	f.images = images
	return nil
}

func (f *fakeProfileRepo) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	f.deletedID = userID
	return nil
}

func (f *fakeProfileRepo) EnqueueAvatarUpload(ctx context.Context, userID uuid.UUID, storageKey, mimeType string) error {
	f.enqueuedKey = storageKey
	return nil
}

type fakeScoreUpdater struct {
	calls       int
	lastPercent int
}

func (f *fakeScoreUpdater) OnProfileUpdated(ctx context.Context, userID uuid.UUID, completionPercentage int) {
	f.calls++
	f.lastPercent = completionPercentage
}

type fakeStorage struct {
	presignedKey string
}

func (f *fakeStorage) PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	f.presignedKey = key
	return "https://r2.example.com/upload/" + key, nil
}

func (f *fakeStorage) GetURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (f *fakeStorage) KeyFromURL(url string) (string, bool) {
	const prefix = "https://cdn.example.com/"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):], true
	}
	return "", false
}

func strPtr(s string) *string { return &s }

func TestGetProfileNotFound(t *testing.T) {
	svc := NewService(&fakeProfileRepo{}, nil, nil, nil, 0)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpdateProfileAppliesFieldsAndNotifiesScorer(t *testing.T) {
	p := newTestProfile()
	repo := &fakeProfileRepo{profile: p}
	scorer := &fakeScoreUpdater{}
	svc := NewService(repo, nil, nil, scorer, 0)

	updated, warnings, err := svc.UpdateProfile(context.Background(), p.UserID, &UpdateProfileRequest{
		FirstName: strPtr("Jess"),
		LastName:  strPtr("Lee"),
	})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", warnings)
	}
	if !updated.FirstName.Valid || updated.FirstName.String != "Jess" {
		t.Fatalf("expected first name applied, got %+v", updated.FirstName)
	}
	if repo.updated == nil {
		t.Fatal("expected repository update")
	}
	if scorer.calls != 1 {
		t.Fatalf("expected one score update, got %d", scorer.calls)
	}
}

func TestUpdateProfileValidationErrorAbortsSave(t *testing.T) {
	p := newTestProfile()
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, nil, nil, 0)

	_, errs, err := svc.UpdateProfile(context.Background(), p.UserID, &UpdateProfileRequest{
		FirstName: strPtr("J"),
	})
	if !errors.Is(err, ErrProfileValidation) {
		t.Fatalf("expected ErrProfileValidation, got %v", err)
	}
	if len(errs) != 1 || errs[0].Code != "NAME_TOO_SHORT" {
		t.Fatalf("expected NAME_TOO_SHORT, got %+v", errs)
	}
	if repo.updated != nil {
		t.Fatal("expected the save to be aborted")
	}
}

func TestUpdateProfileWarningsRideAlong(t *testing.T) {
	p := newTestProfile()
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, nil, nil, 0)

	_, warnings, err := svc.UpdateProfile(context.Background(), p.UserID, &UpdateProfileRequest{
		Bio: strPtr("hey"),
	})
	if err != nil {
		t.Fatalf("expected warnings not to block the save, got %v", err)
	}
	if len(warnings) != 1 || warnings[0].Code != "DESCRIPTION_TOO_SHORT" {
		t.Fatalf("expected DESCRIPTION_TOO_SHORT warning, got %+v", warnings)
	}
	if repo.updated == nil {
		t.Fatal("expected the save to go through")
	}
}

func TestUpdateProfileIgnoresOfficialEmail(t *testing.T) {
	p := newTestProfile()
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, nil, nil, 0)

	updated, _, err := svc.UpdateProfile(context.Background(), p.UserID, &UpdateProfileRequest{
		OfficialEmail: strPtr("hacker@example.com"),
	})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if updated.OfficialEmail != "jess@example.com" {
		t.Fatalf("expected account email untouched, got %s", updated.OfficialEmail)
	}
}

func TestSetAvatarPrependsDedupesAndCaps(t *testing.T) {
	p := newTestProfile()
	p.SetImages([]string{"b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg", "g.jpg"})
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, nil, nil, 0)

	updated, err := svc.SetAvatar(context.Background(), p.UserID, "d.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	images := updated.GetImages()
	if images[0] != "d.jpg" {
		t.Fatalf("expected new avatar first, got %v", images)
	}
	if len(images) != MaxImages {
		t.Fatalf("expected list capped at %d, got %d", MaxImages, len(images))
	}
	seen := map[string]bool{}
	for _, img := range images {
		if seen[img] {
			t.Fatalf("duplicate image %s in %v", img, images)
		}
		seen[img] = true
	}
}

func TestSetAvatarDropsFromTailWhenFull(t *testing.T) {
	p := newTestProfile()
	p.SetImages([]string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"})
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, nil, nil, 0)

	updated, err := svc.SetAvatar(context.Background(), p.UserID, "new.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	images := updated.GetImages()
	if images[0] != "new.jpg" || len(images) != MaxImages {
		t.Fatalf("expected new avatar first with tail dropped, got %v", images)
	}
	for _, img := range images {
		if img == "f.jpg" {
			t.Fatalf("expected oldest image dropped, got %v", images)
		}
	}
}

func TestSetAvatarEnqueuesProcessingForStoredImages(t *testing.T) {
	p := newTestProfile()
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, &fakeStorage{}, nil, 0)

	key := "avatars/" + p.UserID.String() + "/photo.png"
	if _, err := svc.SetAvatar(context.Background(), p.UserID, "https://cdn.example.com/"+key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.enqueuedKey != key {
		t.Fatalf("expected processing enqueued for %s, got %q", key, repo.enqueuedKey)
	}

	// URLs outside our storage are kept but never enqueued
	repo.enqueuedKey = ""
	if _, err := svc.SetAvatar(context.Background(), p.UserID, "https://elsewhere.example.com/x.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.enqueuedKey != "" {
		t.Fatalf("expected no enqueue for a foreign URL, got %q", repo.enqueuedKey)
	}
}

func TestAvatarUploadURLWithoutStorage(t *testing.T) {
	svc := NewService(&fakeProfileRepo{}, nil, nil, nil, 0)

	_, err := svc.AvatarUploadURL(context.Background(), uuid.New(), "image/jpeg")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestAvatarUploadURLKeyLayout(t *testing.T) {
	storage := &fakeStorage{}
	userID := uuid.New()
	svc := NewService(&fakeProfileRepo{}, nil, storage, nil, 0)

	resp, err := svc.AvatarUploadURL(context.Background(), userID, "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prefix := "avatars/" + userID.String() + "/"
	if len(storage.presignedKey) <= len(prefix) || storage.presignedKey[:len(prefix)] != prefix {
		t.Fatalf("expected key under %s, got %s", prefix, storage.presignedKey)
	}
	if ext := storage.presignedKey[len(storage.presignedKey)-4:]; ext != ".png" {
		t.Fatalf("expected .png extension, got %s", storage.presignedKey)
	}
	if resp.UploadURL == "" || resp.ImageURL == "" {
		t.Fatal("expected both upload and public URLs")
	}
}

func TestGetStatsComputesWithoutCache(t *testing.T) {
	p := newTestProfile()
	fillRequired(p)
	p.SetImages([]string{"a.jpg", "b.jpg"})
	repo := &fakeProfileRepo{profile: p}
	svc := NewService(repo, nil, nil, nil, 0)

	stats, err := svc.GetStats(context.Background(), p.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalImages != 2 {
		t.Fatalf("expected 2 images, got %d", stats.TotalImages)
	}
	if !stats.IsComplete {
		t.Fatal("expected profile with required fields to be complete")
	}
	if stats.MemberSince != p.CreatedAt.Format("2006-01-02") {
		t.Fatalf("unexpected member since: %s", stats.MemberSince)
	}
}
