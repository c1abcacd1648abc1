package services

import (
	"testing"

	"alumni-network-api/models"
)

func TestComputeStatsTalliesByStatus(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 30)

	seedEntity(t, db, "s1", models.KindProfile, models.SubtypeStudent, "Computer Engineering", 30)
	seedEntity(t, db, "s2", models.KindProfile, models.SubtypeStudent, "Computer Engineering", 30)
	rejected := seedEntity(t, db, "s3", models.KindProfile, models.SubtypeStudent, "Computer Engineering", 30)
	db.Model(&rejected).Update("status", models.StatusRejected)

	seedEntity(t, db, "e1", models.KindContent, models.SubtypeEvent, "", 30)
	approved := seedEntity(t, db, "e2", models.KindContent, models.SubtypeEvent, "", 30)
	db.Model(&approved).Updates(map[string]interface{}{"status": models.StatusApproved, "is_public": true})

	stats, err := NewStatsService(db).ComputeStats(coordCtx)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	students := stats[models.SubtypeStudent]
	if students.InReview != 2 || students.Approved != 0 || students.Rejected != 1 {
		t.Errorf("student counts = %+v, want {2 0 1}", students)
	}
	events := stats[models.SubtypeEvent]
	if events.InReview != 1 || events.Approved != 1 || events.Rejected != 0 {
		t.Errorf("event counts = %+v, want {1 1 0}", events)
	}
}

func TestComputeStatsRespectsDepartmentFilter(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 31)
	seedEntity(t, db, "ce-1", models.KindProfile, models.SubtypeAlumni, "Computer Engineering", 31)
	seedEntity(t, db, "chem-1", models.KindProfile, models.SubtypeAlumni, "Chemistry", 31)

	stats, err := NewStatsService(db).ComputeStats(coordCtx)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	if got := stats[models.SubtypeAlumni].Total(); got != 1 {
		t.Errorf("alumni total = %d, want 1 (other departments excluded)", got)
	}
}

func TestComputeStatsExcludesOutOfScopeRows(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 32)
	// Student profiles are out of admin scope, student registrations are in.
	seedEntity(t, db, "p-stu", models.KindProfile, models.SubtypeStudent, "Physics", 32)
	seedEntity(t, db, "r-stu", models.KindRegistration, models.SubtypeStudent, "Physics", 32)

	stats, err := NewStatsService(db).ComputeStats(adminCtx)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	if got := stats[models.SubtypeStudent].Total(); got != 1 {
		t.Errorf("admin student total = %d, want 1 (profile row out of scope)", got)
	}
}

func TestComputeStatsZeroesEverySubtypeInScope(t *testing.T) {
	db := openTestDB(t)

	stats, err := NewStatsService(db).ComputeStats(coordCtx)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	for _, subtype := range []models.EntitySubtype{
		models.SubtypeStudent, models.SubtypeAlumni, models.SubtypeFaculty,
		models.SubtypeEvent, models.SubtypeOpportunity, models.SubtypeDonation, models.SubtypeCampaign,
	} {
		counts, ok := stats[subtype]
		if !ok {
			t.Errorf("subtype %s missing from empty stats", subtype)
			continue
		}
		if counts.Total() != 0 {
			t.Errorf("subtype %s total = %d, want 0", subtype, counts.Total())
		}
	}
}

// The sum of the per-status buckets must always equal the scoped entity
// count, including immediately after a decision.
func TestComputeStatsConsistentWithDecisions(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 33)
	seedEntity(t, db, "d1", models.KindContent, models.SubtypeDonation, "", 33)
	seedEntity(t, db, "d2", models.KindContent, models.SubtypeDonation, "", 33)

	statsSvc := NewStatsService(db)
	before, err := statsSvc.ComputeStats(adminCtx)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}
	if before[models.SubtypeDonation].Total() != 2 {
		t.Fatalf("donation total = %d, want 2", before[models.SubtypeDonation].Total())
	}

	if _, err := NewDecisionService(db).Decide(adminCtx, DecisionRequest{
		EntityID: "d1",
		Kind:     models.KindContent,
		Action:   ActionApprove,
	}, AuditInfo{}); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	after, err := statsSvc.ComputeStats(adminCtx)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}
	donations := after[models.SubtypeDonation]
	if donations.Total() != 2 {
		t.Errorf("donation total drifted to %d after decision", donations.Total())
	}
	if donations.InReview != 1 || donations.Approved != 1 {
		t.Errorf("donation counts = %+v, want {1 1 0}", donations)
	}
}
