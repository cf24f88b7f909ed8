// workers/retention_worker.go
package workers

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"fitness-tracker-backend/models"

	"gorm.io/gorm"
)

// RetentionClient purges workouts that have been soft-deleted for longer
// than RETENTION_DAYS (default 30). Until then a deleted workout stays
// recoverable via restore.
type RetentionClient struct {
	DB     *gorm.DB
	MaxAge time.Duration
}

func NewRetentionClient(db *gorm.DB) *RetentionClient {
	days := 30
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return &RetentionClient{
		DB:     db,
		MaxAge: time.Duration(days) * 24 * time.Hour,
	}
}

// PollRetention runs the purge on a fixed interval until ctx is cancelled.
func PollRetention(ctx context.Context, client *RetentionClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("🧹 Retention worker started (purging after %s, every %s)", client.MaxAge, interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Retention worker stopping...")
			return
		case <-ticker.C:
			if err := client.PurgeExpired(); err != nil {
				log.Printf("❌ [RETENTION] purge failed: %v", err)
			}
		}
	}
}

// PurgeExpired hard-deletes every workout whose soft-delete timestamp is
// older than MaxAge, clearing PR references first so records survive.
func (c *RetentionClient) PurgeExpired() error {
	cutoff := time.Now().UTC().Add(-c.MaxAge)

	var expired []models.WorkoutLog
	if err := c.DB.Where("is_deleted = ? AND deleted_at < ?", true, cutoff).
		Find(&expired).Error; err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	for _, workout := range expired {
		err := c.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.PersonalRecord{}).
				Where("workout_log_id = ?", workout.ID).
				Update("workout_log_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("workout_log_id = ?", workout.ID).
				Delete(&models.WorkoutExercise{}).Error; err != nil {
				return err
			}
			return tx.Delete(&workout).Error
		})
		if err != nil {
			log.Printf("❌ [RETENTION] failed to purge workout %s: %v", workout.ID, err)
			continue
		}
	}

	log.Printf("🧹 Purged %d soft-deleted workout(s) older than cutoff", len(expired))
	return nil
}
