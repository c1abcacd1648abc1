package services

import (
	"alumni-network-api/models"

	"gorm.io/gorm"
)

// entityPair is one legal (kind, subtype) combination.
type entityPair struct {
	Kind    models.EntityKind
	Subtype models.EntitySubtype
}

// entityCatalog is the static registry of every approvable record type the
// platform knows. Anything not listed here never reaches the state machine.
var entityCatalog = map[entityPair]struct{}{
	{models.KindProfile, models.SubtypeStudent}:     {},
	{models.KindProfile, models.SubtypeAlumni}:      {},
	{models.KindProfile, models.SubtypeFaculty}:     {},
	{models.KindProfile, models.SubtypeCoordinator}: {},

	{models.KindContent, models.SubtypeEvent}:       {},
	{models.KindContent, models.SubtypeOpportunity}: {},
	{models.KindContent, models.SubtypeDonation}:    {},
	{models.KindContent, models.SubtypeCampaign}:    {},

	{models.KindRegistration, models.SubtypeStudent}:     {},
	{models.KindRegistration, models.SubtypeAlumni}:      {},
	{models.KindRegistration, models.SubtypeFaculty}:     {},
	{models.KindRegistration, models.SubtypeCoordinator}: {},
}

// KindRegistered reports whether kind has at least one registered subtype.
func KindRegistered(kind models.EntityKind) bool {
	for pair := range entityCatalog {
		if pair.Kind == kind {
			return true
		}
	}
	return false
}

// PairRegistered validates a (kind, subtype) pair against the catalog.
func PairRegistered(kind models.EntityKind, subtype models.EntitySubtype) error {
	if _, ok := entityCatalog[entityPair{Kind: kind, Subtype: subtype}]; !ok {
		return ErrUnknownKind
	}
	return nil
}

// ResolveEntityStore validates a (kind, subtype) pair against the catalog
// and returns a query accessor scoped to that store. Read-only; the caller
// adds status and department predicates on top.
func ResolveEntityStore(db *gorm.DB, kind models.EntityKind, subtype models.EntitySubtype) (*gorm.DB, error) {
	if err := PairRegistered(kind, subtype); err != nil {
		return nil, err
	}
	return db.Model(&models.ApprovalEntity{}).
		Where("kind = ? AND subtype = ? AND delete_at IS NULL", kind, subtype), nil
}
