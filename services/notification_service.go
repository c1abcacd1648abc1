package services

import (
	"fmt"
	"log"

	"alumni-network-api/config"
	"alumni-network-api/models"

	"gorm.io/gorm"
)

// NotificationService delivers the owner-facing hooks that fire after a
// decision commits: an in-app notification row, plus a best-effort email.
// Mail failures are logged and never fail the decision that triggered them.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	if db == nil {
		db = config.DB
	}
	return &NotificationService{db: db}
}

// NotifyRejection tells the owner their submission was rejected and why.
// Only the rejection reason is exposed; never reviewer identity or scope.
func (s *NotificationService) NotifyRejection(entity models.ApprovalEntity) {
	reason := ""
	if entity.RejectionReason != nil {
		reason = *entity.RejectionReason
	}

	entityID := entity.EntityID
	notification := models.Notification{
		UserID:          entity.OwnerID,
		Title:           "Submission rejected",
		Message:         fmt.Sprintf("Your %s submission %q was not approved. Reason: %s", entity.Subtype, entity.Title, reason),
		Type:            "error",
		RelatedEntityID: &entityID,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("Warning: failed to store rejection notification for entity %s: %v", entity.EntityID, err)
	}

	var owner models.User
	if err := s.db.Where("user_id = ? AND delete_at IS NULL", entity.OwnerID).First(&owner).Error; err != nil {
		log.Printf("Warning: owner %d not found for rejection mail: %v", entity.OwnerID, err)
		return
	}

	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your %s submission <strong>%s</strong> was reviewed and not approved.</p><p>Reason: %s</p>",
		owner.FullName(), entity.Subtype, entity.Title, reason,
	)
	if err := config.SendMail([]string{owner.Email}, "Your submission was not approved", html); err != nil {
		log.Printf("Warning: failed to send rejection mail to %s: %v", owner.Email, err)
	}
}

// NotifyApproval stores a success notification for the owner. Approval makes
// the record publicly visible, so the message is informational only.
func (s *NotificationService) NotifyApproval(entity models.ApprovalEntity) {
	entityID := entity.EntityID
	notification := models.Notification{
		UserID:          entity.OwnerID,
		Title:           "Submission approved",
		Message:         fmt.Sprintf("Your %s submission %q was approved and is now visible.", entity.Subtype, entity.Title),
		Type:            "success",
		RelatedEntityID: &entityID,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("Warning: failed to store approval notification for entity %s: %v", entity.EntityID, err)
	}
}
