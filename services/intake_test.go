package services

import (
	"errors"
	"testing"

	"alumni-network-api/models"
)

func TestSubmitCreatesInReview(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)

	entity, err := svc.Submit(40, SubmitRequest{
		Kind:       models.KindProfile,
		Subtype:    models.SubtypeAlumni,
		Title:      "  Alumni profile  ",
		Department: "Computer Engineering",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if entity.Status != models.StatusInReview {
		t.Errorf("status = %s, want IN_REVIEW", entity.Status)
	}
	if entity.EntityID == "" {
		t.Error("entity id must be assigned")
	}
	if entity.IsPublic {
		t.Error("new submissions must not be public")
	}
	if entity.Title != "Alumni profile" {
		t.Errorf("title = %q, want sanitized", entity.Title)
	}
}

func TestSubmitUnknownPair(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)

	_, err := svc.Submit(40, SubmitRequest{
		Kind:    models.KindContent,
		Subtype: models.SubtypeStudent,
		Title:   "bad pair",
	})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("error = %v, want ErrUnknownKind", err)
	}
}

func TestSubmitRequiresDepartmentForProfiles(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)

	_, err := svc.Submit(40, SubmitRequest{
		Kind:    models.KindProfile,
		Subtype: models.SubtypeStudent,
		Title:   "No department",
	})
	if !errors.Is(err, ErrMissingDepartment) {
		t.Fatalf("error = %v, want ErrMissingDepartment", err)
	}
}

// Scenario: the owner of a rejected campaign sees the reason and can
// resubmit; the resubmission is a fresh IN_REVIEW entity, and the rejected
// one keeps its terminal state.
func TestResubmitAfterRejection(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 41)
	seedEntity(t, db, "camp-r", models.KindContent, models.SubtypeCampaign, "", 41)

	if _, err := NewDecisionService(db).Decide(adminCtx, DecisionRequest{
		EntityID: "camp-r",
		Kind:     models.KindContent,
		Action:   ActionReject,
		Reason:   "Missing budget breakdown",
	}, AuditInfo{}); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	svc := NewIntakeService(db)
	fresh, err := svc.Resubmit(41, "camp-r")
	if err != nil {
		t.Fatalf("Resubmit: %v", err)
	}

	if fresh.EntityID == "camp-r" {
		t.Error("resubmission must create a fresh entity id")
	}
	if fresh.Status != models.StatusInReview {
		t.Errorf("resubmitted status = %s, want IN_REVIEW", fresh.Status)
	}
	if fresh.RejectionReason != nil {
		t.Error("resubmitted entity must carry a clean approval tuple")
	}

	old := loadEntity(t, db, "camp-r")
	if old.Status != models.StatusRejected {
		t.Errorf("original status = %s, must stay REJECTED", old.Status)
	}
	if old.RejectionReason == nil || *old.RejectionReason != "Missing budget breakdown" {
		t.Errorf("original reason = %v, must stay intact", old.RejectionReason)
	}
}

func TestResubmitRequiresRejectedState(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 42)
	seedEntity(t, db, "evt-r", models.KindContent, models.SubtypeEvent, "", 42)

	svc := NewIntakeService(db)
	if _, err := svc.Resubmit(42, "evt-r"); !errors.Is(err, ErrNotResubmittable) {
		t.Errorf("error = %v, want ErrNotResubmittable", err)
	}
}

func TestResubmitOtherOwnersEntity(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 43)
	seedEntity(t, db, "evt-o", models.KindContent, models.SubtypeEvent, "", 43)

	svc := NewIntakeService(db)
	if _, err := svc.Resubmit(999, "evt-o"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestOwnedByNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)

	if _, err := svc.Submit(44, SubmitRequest{Kind: models.KindContent, Subtype: models.SubtypeEvent, Title: "first"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Submit(44, SubmitRequest{Kind: models.KindContent, Subtype: models.SubtypeDonation, Title: "second"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	owned, err := svc.OwnedBy(44)
	if err != nil {
		t.Fatalf("OwnedBy: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("owned = %d, want 2", len(owned))
	}
}
