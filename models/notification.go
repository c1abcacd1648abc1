package models

import "time"

type Notification struct {
	NotificationID  uint       `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID          int        `gorm:"column:user_id;index" json:"user_id"`
	Title           string     `gorm:"column:title" json:"title"`
	Message         string     `gorm:"column:message" json:"message"`
	Type            string     `gorm:"column:type" json:"type"` // info|success|warning|error
	RelatedEntityID *string    `gorm:"column:related_entity_id;size:64" json:"related_entity_id,omitempty"`
	IsRead          bool       `gorm:"column:is_read" json:"is_read"`
	CreateAt        time.Time  `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
