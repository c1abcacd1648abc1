package models

import "time"

// AuditLog records who did what to which entity, with the serialized new
// values for later inspection. Written best-effort inside the same
// transaction as the change it describes.
type AuditLog struct {
	LogID       int       `gorm:"primaryKey;column:log_id" json:"log_id"`
	UserID      int       `gorm:"column:user_id;index" json:"user_id"`
	Action      string    `gorm:"column:action" json:"action"`
	EntityType  string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID    *string   `gorm:"column:entity_id;size:64" json:"entity_id,omitempty"`
	NewValues   *string   `gorm:"column:new_values" json:"new_values,omitempty"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	IPAddress   string    `gorm:"column:ip_address" json:"ip_address"`
	UserAgent   *string   `gorm:"column:user_agent" json:"user_agent,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
