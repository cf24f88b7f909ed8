// models/audit_log.go
package models

import "time"

const (
	AuditActionCreate     = "CREATE"
	AuditActionSoftDelete = "SOFT_DELETE"
	AuditActionRestore    = "RESTORE"
	AuditActionHardDelete = "HARD_DELETE"
)

// AuditLog is an append-only trail of workout mutations. Entries are written
// best-effort after the main transaction commits.
type AuditLog struct {
	ID       string `json:"id" gorm:"primaryKey"`
	ActorID  string `json:"actor_id" gorm:"index;not null"`
	Action   string `json:"action" gorm:"not null"`
	Entity   string `json:"entity" gorm:"not null"`
	EntityID string `json:"entity_id" gorm:"index"`
	Changes  string `json:"changes,omitempty"` // JSON blob of changed fields

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}
