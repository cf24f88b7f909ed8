// services/audit.go
package services

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"fitness-tracker-backend/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Record appends one audit entry. Best-effort: it runs after the main
// transaction commits and a failure is only logged, never surfaced — a
// broken audit trail must not fail a successful workout write.
func (s *AuditService) Record(actorID, action, entity, entityID string, changes map[string]interface{}) {
	var changesJSON string
	if len(changes) > 0 {
		if b, err := json.Marshal(changes); err == nil {
			changesJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:       uuid.NewString(),
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Changes:  changesJSON,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("⚠️  [AUDIT] failed to record %s %s/%s: %v", action, entity, entityID, err)
	}
}

// StartRetentionScheduler prunes audit entries older than
// AUDIT_RETENTION_DAYS (default 90) once a day.
func (s *AuditService) StartRetentionScheduler() {
	days := 90
	if v := os.Getenv("AUDIT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			cutoff := time.Now().AddDate(0, 0, -days)
			res := s.DB.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
			if res.Error != nil {
				log.Printf("[AuditRetention] DB error: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 Pruned %d audit entries older than %d days", res.RowsAffected, days)
			}
		}),
	)
}
