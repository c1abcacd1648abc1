package services

import (
	"errors"
	"testing"

	"alumni-network-api/models"
)

func inReviewEntity() models.ApprovalEntity {
	dept := "Computer Engineering"
	return models.ApprovalEntity{
		EntityID:   "e-1",
		Kind:       models.KindProfile,
		Subtype:    models.SubtypeStudent,
		OwnerID:    10,
		Title:      "Student profile",
		Department: &dept,
		Status:     models.StatusInReview,
	}
}

func TestTransitionApprove(t *testing.T) {
	updated, err := Transition(inReviewEntity(), ActionApprove, "")
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Errorf("status = %s, want APPROVED", updated.Status)
	}
	if !updated.IsPublic {
		t.Error("approval must make the entity publicly visible")
	}
	if updated.DecidedAt == nil {
		t.Error("DecidedAt must be stamped on a successful transition")
	}
	if updated.RejectionReason != nil {
		t.Error("approved entities carry no rejection reason")
	}
}

func TestTransitionApproveIgnoresReason(t *testing.T) {
	updated, err := Transition(inReviewEntity(), ActionApprove, "irrelevant")
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated.RejectionReason != nil {
		t.Error("reason must be ignored on approve")
	}
}

func TestTransitionReject(t *testing.T) {
	updated, err := Transition(inReviewEntity(), ActionReject, "Missing budget breakdown")
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated.Status != models.StatusRejected {
		t.Errorf("status = %s, want REJECTED", updated.Status)
	}
	if updated.RejectionReason == nil || *updated.RejectionReason != "Missing budget breakdown" {
		t.Errorf("rejection reason not preserved verbatim: %v", updated.RejectionReason)
	}
	if updated.IsPublic {
		t.Error("rejected entities must stay hidden")
	}
	if updated.DecidedAt == nil {
		t.Error("DecidedAt must be stamped on a successful transition")
	}
}

func TestTransitionRejectRequiresReason(t *testing.T) {
	for _, reason := range []string{"", "   ", "\t\n"} {
		entity := inReviewEntity()
		updated, err := Transition(entity, ActionReject, reason)
		if !errors.Is(err, ErrMissingReason) {
			t.Errorf("reason %q: error = %v, want ErrMissingReason", reason, err)
		}
		if updated.Status != models.StatusInReview {
			t.Errorf("reason %q: failed reject must not mutate status, got %s", reason, updated.Status)
		}
		if updated.DecidedAt != nil {
			t.Errorf("reason %q: failed reject must not stamp DecidedAt", reason)
		}
	}
}

func TestTransitionFromTerminalStates(t *testing.T) {
	for _, status := range []models.ApprovalStatus{models.StatusApproved, models.StatusRejected} {
		entity := inReviewEntity()
		entity.Status = status
		for _, action := range []string{ActionApprove, ActionReject} {
			updated, err := Transition(entity, action, "late reason")
			if !errors.Is(err, ErrAlreadyDecided) {
				t.Errorf("%s from %s: error = %v, want ErrAlreadyDecided", action, status, err)
			}
			if updated.Status != status {
				t.Errorf("%s from %s: status changed to %s", action, status, updated.Status)
			}
		}
	}
}

func TestTransitionInvalidAction(t *testing.T) {
	if _, err := Transition(inReviewEntity(), "escalate", ""); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("error = %v, want ErrInvalidAction", err)
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]models.ApprovalStatus{
		"IN_REVIEW": models.StatusInReview,
		"in_review": models.StatusInReview,
		"pending":   models.StatusInReview,
		"":          models.StatusInReview,
		"APPROVED":  models.StatusApproved,
		"approved":  models.StatusApproved,
		"REJECTED":  models.StatusRejected,
		"rejected":  models.StatusRejected,
		"garbage":   models.StatusInReview,
	}
	for raw, want := range cases {
		if got := models.NormalizeStatus(raw); got != want {
			t.Errorf("NormalizeStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}
