package services

import (
	"alumni-network-api/config"
	"alumni-network-api/models"

	"gorm.io/gorm"
)

// StatusCounts is the per-subtype tally of entities by lifecycle state.
type StatusCounts struct {
	InReview int64 `json:"IN_REVIEW"`
	Approved int64 `json:"APPROVED"`
	Rejected int64 `json:"REJECTED"`
}

// Total sums the three buckets.
func (c StatusCounts) Total() int64 {
	return c.InReview + c.Approved + c.Rejected
}

// StatsService computes reviewer-scoped dashboard counts by scanning live
// entity state. No persisted counters exist anywhere: the scan is O(n) but
// can never drift from reality, which matters more at this data volume.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	if db == nil {
		db = config.DB
	}
	return &StatsService{db: db}
}

// ComputeStats tallies entities by subtype and status within the reviewer's
// scope. Every subtype in scope appears in the result, zeroed when empty.
func (s *StatsService) ComputeStats(reviewer ReviewerContext) (map[models.EntitySubtype]StatusCounts, error) {
	scope, err := ComputeScope(reviewer)
	if err != nil {
		return nil, err
	}

	stats := make(map[models.EntitySubtype]StatusCounts)
	for _, pair := range scope.Pairs() {
		if _, ok := stats[pair.Subtype]; !ok {
			stats[pair.Subtype] = StatusCounts{}
		}
	}

	type row struct {
		Kind    models.EntityKind    `gorm:"column:kind"`
		Subtype models.EntitySubtype `gorm:"column:subtype"`
		Status  string               `gorm:"column:status"`
		Count   int64                `gorm:"column:count"`
	}

	var rows []row
	query := s.db.Model(&models.ApprovalEntity{}).
		Select("kind, subtype, status, COUNT(*) AS count").
		Where("delete_at IS NULL")
	if scope.DepartmentFilter != "" {
		query = query.Where("department IS NULL OR department = ?", scope.DepartmentFilter)
	}
	if err := query.Group("kind").Group("subtype").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		// Rows outside the reviewer's (kind, subtype) scope are dropped here
		// rather than in SQL; the grouped scan stays one cheap query.
		if !scope.Allows(r.Kind, r.Subtype) {
			continue
		}

		counts := stats[r.Subtype]
		switch models.NormalizeStatus(r.Status) {
		case models.StatusInReview:
			counts.InReview += r.Count
		case models.StatusApproved:
			counts.Approved += r.Count
		case models.StatusRejected:
			counts.Rejected += r.Count
		}
		stats[r.Subtype] = counts
	}

	return stats, nil
}
