package services

import (
	"encoding/json"
	"errors"
	"time"

	"alumni-network-api/config"
	"alumni-network-api/models"

	"gorm.io/gorm"
)

// DecisionRequest is the single payload reviewers submit to approve or
// reject an entity.
type DecisionRequest struct {
	EntityID string            `json:"entity_id" binding:"required"`
	Kind     models.EntityKind `json:"kind" binding:"required"`
	Action   string            `json:"action" binding:"required"`
	Reason   string            `json:"reason"`
}

// DecisionResult is returned to the caller so the UI can update in place
// without refetching the whole queue.
type DecisionResult struct {
	Entity  models.ApprovalEntity `json:"entity"`
	Message string                `json:"message"`
}

// AuditInfo carries request metadata into the decision audit trail.
type AuditInfo struct {
	IPAddress string
	UserAgent string
}

// DecisionService is the one entry point for reviewer decisions. It composes
// the scope resolver, the state machine and a conditional persisted write so
// that per-entity decisions are linearizable.
type DecisionService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewDecisionService(db *gorm.DB) *DecisionService {
	if db == nil {
		db = config.DB
	}
	return &DecisionService{db: db, notifier: NewNotificationService(db)}
}

// Decide validates scope and current state, applies the transition, persists
// it atomically and returns the updated entity.
func (s *DecisionService) Decide(reviewer ReviewerContext, req DecisionRequest, audit AuditInfo) (*DecisionResult, error) {
	if req.Action != ActionApprove && req.Action != ActionReject {
		return nil, ErrInvalidAction
	}

	if !KindRegistered(req.Kind) {
		return nil, ErrUnknownKind
	}

	scope, err := ComputeScope(reviewer)
	if err != nil {
		return nil, err
	}

	if !KindRegisteredInScope(scope, req.Kind) {
		// The reviewer cannot act on this kind at all; no need to touch the DB.
		return nil, ErrScopeViolation
	}

	var entity models.ApprovalEntity
	if err := s.db.
		Where("entity_id = ? AND kind = ? AND delete_at IS NULL", req.EntityID, req.Kind).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Listing queries already pre-filter, but a reviewer can POST an id
	// directly; the same scope check is enforced here against the loaded row.
	if !scope.Allows(entity.Kind, entity.Subtype) || !scope.InDepartment(entity.Department) {
		return nil, ErrScopeViolation
	}

	updated, err := Transition(entity, req.Action, req.Reason)
	if err != nil {
		return nil, err
	}
	updated.DecidedBy = &reviewer.UserID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional write: only flips the row if it is still IN_REVIEW.
		// When two reviewers race, exactly one write matches and the loser
		// surfaces as AlreadyDecided.
		res := tx.Model(&models.ApprovalEntity{}).
			Where("entity_id = ? AND status = ?", entity.EntityID, models.StatusInReview).
			Updates(map[string]interface{}{
				"status":           updated.Status,
				"rejection_reason": updated.RejectionReason,
				"decided_by":       updated.DecidedBy,
				"decided_at":       updated.DecidedAt,
				"is_public":        updated.IsPublic,
				"update_at":        time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDecided
		}

		var round int64
		if err := tx.Model(&models.ReviewRecord{}).
			Where("entity_id = ?", entity.EntityID).
			Count(&round).Error; err != nil {
			return err
		}

		record := models.ReviewRecord{
			EntityID:     entity.EntityID,
			ReviewerID:   reviewer.UserID,
			ReviewRound:  int(round) + 1,
			ReviewStatus: string(updated.Status),
			ReviewedAt:   *updated.DecidedAt,
		}
		if updated.RejectionReason != nil {
			record.Comments = updated.RejectionReason
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		history := models.ApprovalStatusHistory{
			EntityID:  entity.EntityID,
			OldStatus: entity.Status,
			NewStatus: updated.Status,
			ChangedBy: reviewer.UserID,
			Reason:    updated.RejectionReason,
			CreatedAt: *updated.DecidedAt,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		return s.writeAuditLog(tx, reviewer, updated, audit)
	})
	if err != nil {
		return nil, err
	}

	message := "Entity approved and published"
	if updated.Status == models.StatusRejected {
		message = "Entity rejected"
		s.notifier.NotifyRejection(updated)
	} else {
		s.notifier.NotifyApproval(updated)
	}

	return &DecisionResult{Entity: updated, Message: message}, nil
}

func (s *DecisionService) writeAuditLog(tx *gorm.DB, reviewer ReviewerContext, entity models.ApprovalEntity, audit AuditInfo) error {
	values := map[string]interface{}{
		"status":     entity.Status,
		"decided_by": reviewer.UserID,
	}
	if entity.RejectionReason != nil {
		values["rejection_reason"] = *entity.RejectionReason
	}
	serialized, _ := json.Marshal(values)

	entityID := entity.EntityID
	payload := string(serialized)
	log := models.AuditLog{
		UserID:     reviewer.UserID,
		Action:     "review",
		EntityType: string(entity.Kind) + "/" + string(entity.Subtype),
		EntityID:   &entityID,
		NewValues:  &payload,
		IPAddress:  audit.IPAddress,
	}
	if audit.UserAgent != "" {
		ua := audit.UserAgent
		log.UserAgent = &ua
	}
	return tx.Create(&log).Error
}

// KindRegisteredInScope reports whether the scope allows any subtype of kind.
func KindRegisteredInScope(scope Scope, kind models.EntityKind) bool {
	return len(scope.AllowedSubtypes(kind)) > 0
}
