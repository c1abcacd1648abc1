package services

import (
	"alumni-network-api/config"
	"alumni-network-api/models"

	"gorm.io/gorm"
)

// ListingService serves the scoped pending/approved queues. Listings are
// pure queries against the persistence layer, recomputed per call; nothing
// is cached in process.
type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	if db == nil {
		db = config.DB
	}
	return &ListingService{db: db}
}

// ListFilter narrows a queue listing. Zero values mean no filtering.
type ListFilter struct {
	Kind    models.EntityKind
	Subtype models.EntitySubtype
}

// Pending returns every IN_REVIEW entity within the reviewer's scope.
func (s *ListingService) Pending(reviewer ReviewerContext, filter ListFilter) ([]models.ApprovalEntity, error) {
	return s.listByStatus(reviewer, filter, models.StatusInReview)
}

// Approved returns every APPROVED entity within the reviewer's scope.
func (s *ListingService) Approved(reviewer ReviewerContext, filter ListFilter) ([]models.ApprovalEntity, error) {
	return s.listByStatus(reviewer, filter, models.StatusApproved)
}

func (s *ListingService) listByStatus(reviewer ReviewerContext, filter ListFilter, status models.ApprovalStatus) ([]models.ApprovalEntity, error) {
	scope, err := ComputeScope(reviewer)
	if err != nil {
		return nil, err
	}

	var query *gorm.DB
	if filter.Kind != "" && filter.Subtype != "" {
		// A fully specified filter names one store; query it directly.
		store, err := ResolveEntityStore(s.db, filter.Kind, filter.Subtype)
		if err != nil {
			return nil, err
		}
		if !scope.Allows(filter.Kind, filter.Subtype) {
			return []models.ApprovalEntity{}, nil
		}
		query = store
	} else {
		pairs := scope.Pairs()
		if filter.Kind != "" || filter.Subtype != "" {
			narrowed := pairs[:0]
			for _, pair := range pairs {
				if filter.Kind != "" && pair.Kind != filter.Kind {
					continue
				}
				if filter.Subtype != "" && pair.Subtype != filter.Subtype {
					continue
				}
				narrowed = append(narrowed, pair)
			}
			pairs = narrowed
		}
		if len(pairs) == 0 {
			return []models.ApprovalEntity{}, nil
		}
		query = s.db.Model(&models.ApprovalEntity{}).
			Where("delete_at IS NULL").
			Where(s.pairPredicate(pairs))
	}
	query = query.Where("status = ?", status)

	if scope.DepartmentFilter != "" {
		query = query.Where("department IS NULL OR department = ?", scope.DepartmentFilter)
	}

	entities := []models.ApprovalEntity{}
	if err := query.Preload("Owner").
		Order("create_at DESC").
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// pairPredicate builds the OR'd (kind, subtype) condition for a scope.
func (s *ListingService) pairPredicate(pairs []entityPair) *gorm.DB {
	cond := s.db
	for i, pair := range pairs {
		if i == 0 {
			cond = cond.Where("kind = ? AND subtype = ?", pair.Kind, pair.Subtype)
		} else {
			cond = cond.Or("kind = ? AND subtype = ?", pair.Kind, pair.Subtype)
		}
	}
	return cond
}
