package services

import (
	"errors"
	"testing"

	"alumni-network-api/models"
)

func TestResolveEntityStoreKnownPairs(t *testing.T) {
	db := openTestDB(t)

	known := []struct {
		kind    models.EntityKind
		subtype models.EntitySubtype
	}{
		{models.KindProfile, models.SubtypeStudent},
		{models.KindProfile, models.SubtypeCoordinator},
		{models.KindContent, models.SubtypeCampaign},
		{models.KindRegistration, models.SubtypeAlumni},
		{models.KindRegistration, models.SubtypeFaculty},
	}
	for _, pair := range known {
		if _, err := ResolveEntityStore(db, pair.kind, pair.subtype); err != nil {
			t.Errorf("ResolveEntityStore(%s, %s): %v", pair.kind, pair.subtype, err)
		}
	}
}

func TestResolveEntityStoreUnknownPairs(t *testing.T) {
	db := openTestDB(t)

	unknown := []struct {
		kind    models.EntityKind
		subtype models.EntitySubtype
	}{
		{models.KindContent, models.SubtypeStudent},
		{models.KindProfile, models.SubtypeEvent},
		{"gallery", models.SubtypeEvent},
		{models.KindContent, "podcast"},
	}
	for _, pair := range unknown {
		if _, err := ResolveEntityStore(db, pair.kind, pair.subtype); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ResolveEntityStore(%s, %s): error = %v, want ErrUnknownKind", pair.kind, pair.subtype, err)
		}
	}
}

// The returned accessor is a live query handle, not just validation.
func TestResolveEntityStoreScopesQueries(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 30)
	seedEntity(t, db, "stu-reg", models.KindProfile, models.SubtypeStudent, "Physics", 30)
	seedEntity(t, db, "evt-reg", models.KindContent, models.SubtypeEvent, "", 30)

	store, err := ResolveEntityStore(db, models.KindContent, models.SubtypeEvent)
	if err != nil {
		t.Fatalf("ResolveEntityStore: %v", err)
	}

	entities := []models.ApprovalEntity{}
	if err := store.Find(&entities).Error; err != nil {
		t.Fatalf("query store: %v", err)
	}
	if len(entities) != 1 || entities[0].EntityID != "evt-reg" {
		t.Fatalf("store query returned %d entities, want only evt-reg", len(entities))
	}
}

func TestPairRegistered(t *testing.T) {
	if err := PairRegistered(models.KindProfile, models.SubtypeStudent); err != nil {
		t.Errorf("profile/student: %v", err)
	}
	if err := PairRegistered(models.KindContent, "podcast"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("content/podcast: error = %v, want ErrUnknownKind", err)
	}
}

func TestKindRegistered(t *testing.T) {
	if !KindRegistered(models.KindProfile) || !KindRegistered(models.KindContent) || !KindRegistered(models.KindRegistration) {
		t.Error("all three kinds must be registered")
	}
	if KindRegistered("gallery") {
		t.Error("unregistered kind reported as registered")
	}
}
