package services

import (
	"strings"
	"time"

	"alumni-network-api/models"
)

// Decision actions accepted by the state machine.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Transition applies one reviewer action to an entity and returns the
// updated copy. The input is not mutated on failure. Identity-agnostic:
// DecidedBy is stamped by the decision service, not here.
//
//	IN_REVIEW --approve--> APPROVED
//	IN_REVIEW --reject--> REJECTED (reason required)
//
// APPROVED and REJECTED are terminal; any action on them fails with
// ErrAlreadyDecided rather than silently no-op'ing, which is what lets a
// losing concurrent reviewer see that someone else got there first.
func Transition(entity models.ApprovalEntity, action, reason string) (models.ApprovalEntity, error) {
	if entity.Status.IsTerminal() {
		return entity, ErrAlreadyDecided
	}
	if entity.Status != models.StatusInReview {
		// Unnormalized input; only the three canonical states are legal.
		return entity, ErrAlreadyDecided
	}

	now := time.Now()
	switch action {
	case ActionApprove:
		entity.Status = models.StatusApproved
		entity.IsPublic = true
		entity.RejectionReason = nil
	case ActionReject:
		trimmed := strings.TrimSpace(reason)
		if trimmed == "" {
			return entity, ErrMissingReason
		}
		entity.Status = models.StatusRejected
		entity.RejectionReason = &reason
	default:
		return entity, ErrInvalidAction
	}

	entity.DecidedAt = &now
	return entity, nil
}
