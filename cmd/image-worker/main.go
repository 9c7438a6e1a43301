package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/datifyy/datifyy-api/internal/config"
	"github.com/datifyy/datifyy-api/internal/pkg/database"
	"github.com/datifyy/datifyy-api/internal/pkg/imaging"
	"github.com/datifyy/datifyy-api/internal/pkg/logger"
	"github.com/datifyy/datifyy-api/internal/pkg/storage"
)

const (
	pollInterval = 5 * time.Second
	maxAttempts  = 3
)

type avatarJob struct {
	ID         string `db:"id"`
	StorageKey string `db:"storage_key"`
	MimeType   string `db:"mime_type"`
}

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().Msg("Starting image-worker")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	rdb, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(rdb)

	r2, err := storage.NewImageStorage(storage.R2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		AccessKeySecret: cfg.R2AccessKeySecret,
		BucketName:      cfg.R2BucketName,
		PublicURL:       cfg.R2PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create R2 storage client")
	}

	processor := imaging.NewProcessor(imaging.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis pub/sub wake-up; polling remains the main mechanism
	wake := make(chan struct{}, 1)
	if rdb != nil {
		go subscribeWakeups(ctx, rdb, wake)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info().Msg("Shutdown signal received")
		cancel()
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	lastIdleLog := time.Time{}
	idleLogEvery := 1 * time.Minute

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("image-worker stopped")
			return
		case <-wake:
			// immediate poll
		case <-ticker.C:
		}

		job, ok, err := claimNextJob(ctx, db)
		if err != nil {
			log.Error().Err(err).Msg("DB error while claiming job")
			continue
		}
		if !ok {
			now := time.Now()
			if lastIdleLog.IsZero() || now.Sub(lastIdleLog) >= idleLogEvery {
				log.Info().Msg("Idle: no unprocessed avatars found")
				lastIdleLog = now
			}
			continue
		}

		start := time.Now()
		log.Info().
			Str("upload_id", job.ID).
			Str("key", job.StorageKey).
			Msg("Processing avatar")

		width, height, err := processOne(ctx, r2, processor, job.StorageKey)
		if err != nil {
			log.Error().
				Err(err).
				Str("upload_id", job.ID).
				Msg("Processing failed")

			if err2 := markFailed(ctx, db, job.ID, err.Error()); err2 != nil {
				log.Error().Err(err2).Str("upload_id", job.ID).Msg("Failed to update DB status=failed")
			}
			continue
		}

		if err := markDone(ctx, db, job.ID, width, height); err != nil {
			log.Error().Err(err).Str("upload_id", job.ID).Msg("Failed to update DB status=done")
			continue
		}

		log.Info().
			Str("upload_id", job.ID).
			Dur("took", time.Since(start)).
			Int("width", width).
			Int("height", height).
			Msg("Processing done")
	}
}

func processOne(ctx context.Context, st *storage.ImageStorage, processor *imaging.Processor, originalKey string) (int, int, error) {
	rc, err := st.Get(ctx, originalKey)
	if err != nil {
		return 0, 0, fmt.Errorf("download: %w", err)
	}
	defer rc.Close()

	result, err := processor.Process(rc)
	if err != nil {
		return 0, 0, fmt.Errorf("process: %w", err)
	}

	// Overwrite the original with the web-optimized JPEG
	if err := st.Put(ctx, originalKey, bytes.NewReader(result.Full), "image/jpeg"); err != nil {
		return 0, 0, fmt.Errorf("upload optimized: %w", err)
	}

	thumbKey := thumbKeyFor(originalKey)
	if err := st.Put(ctx, thumbKey, bytes.NewReader(result.Thumbnail), "image/jpeg"); err != nil {
		return 0, 0, fmt.Errorf("upload thumbnail: %w", err)
	}

	return result.Width, result.Height, nil
}

func thumbKeyFor(originalKey string) string {
	base := strings.TrimSuffix(originalKey, path.Ext(originalKey))
	return base + "_thumb.jpg"
}

func claimNextJob(ctx context.Context, db *sqlx.DB) (*avatarJob, bool, error) {
	var j avatarJob
	err := db.GetContext(ctx, &j, `
		SELECT id, storage_key, mime_type
		FROM avatar_uploads
		WHERE storage_key <> ''
		  AND mime_type IN ('image/jpeg','image/png','image/webp')
		  AND process_status IN ('pending','failed')
		  AND process_attempts < $1
		ORDER BY created_at ASC
		LIMIT 1
	`, maxAttempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	// Claim atomically (safe if multiple workers later)
	res, err := db.ExecContext(ctx, `
		UPDATE avatar_uploads
		SET process_status = 'processing',
		    process_attempts = process_attempts + 1,
		    process_error = NULL
		WHERE id = $1
		  AND process_status IN ('pending','failed')
		  AND process_attempts < $2
	`, j.ID, maxAttempts)
	if err != nil {
		return nil, false, err
	}

	aff, _ := res.RowsAffected()
	if aff == 0 {
		return nil, false, nil
	}

	return &j, true, nil
}

func markDone(ctx context.Context, db *sqlx.DB, id string, width, height int) error {
	_, err := db.ExecContext(ctx, `
		UPDATE avatar_uploads
		SET process_status = 'done',
		    processed_at = NOW(),
		    width = $2,
		    height = $3,
		    process_error = NULL
		WHERE id = $1
	`, id, width, height)
	return err
}

func markFailed(ctx context.Context, db *sqlx.DB, id string, msg string) error {
	// attempts were already incremented in the claim
	if len(msg) > 2000 {
		msg = msg[:2000]
	}
	_, err := db.ExecContext(ctx, `
		UPDATE avatar_uploads
		SET process_status = 'failed',
		    process_error = $2
		WHERE id = $1
	`, id, msg)
	return err
}

func subscribeWakeups(ctx context.Context, rdb *redis.Client, wake chan<- struct{}) {
	sub := rdb.Subscribe(ctx, "avatars:uploaded")
	defer func() { _ = sub.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Channel():
			select {
			case wake <- struct{}{}:
			default:
			}
		}
	}
}
