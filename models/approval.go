package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// EntityKind groups approvable records by the table family they belong to.
type EntityKind string

const (
	KindProfile      EntityKind = "profile"
	KindContent      EntityKind = "content"
	KindRegistration EntityKind = "registration"
)

// EntitySubtype narrows a kind to a concrete record type.
type EntitySubtype string

const (
	SubtypeStudent     EntitySubtype = "student"
	SubtypeAlumni      EntitySubtype = "alumni"
	SubtypeFaculty     EntitySubtype = "faculty"
	SubtypeCoordinator EntitySubtype = "coordinator"
	SubtypeEvent       EntitySubtype = "event"
	SubtypeOpportunity EntitySubtype = "opportunity"
	SubtypeDonation    EntitySubtype = "donation"
	SubtypeCampaign    EntitySubtype = "campaign"
)

// ApprovalStatus is the closed lifecycle enum. Free-form status strings from
// older rows are normalized once, on read, by the AfterFind hook; everything
// above the models package only ever sees these three values.
type ApprovalStatus string

const (
	StatusInReview ApprovalStatus = "IN_REVIEW"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// statusSynonyms maps legacy spellings seen in imported data to canonical values.
var statusSynonyms = map[string]ApprovalStatus{
	"in_review": StatusInReview,
	"pending":   StatusInReview,
	"":          StatusInReview,
	"approved":  StatusApproved,
	"rejected":  StatusRejected,
}

// NormalizeStatus resolves a raw status string to the canonical enum.
// Unknown values fall back to IN_REVIEW so stale rows stay reviewable
// instead of becoming invisible to every queue.
func NormalizeStatus(raw string) ApprovalStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	if status, ok := statusSynonyms[key]; ok {
		return status
	}
	switch ApprovalStatus(strings.ToUpper(key)) {
	case StatusInReview, StatusApproved, StatusRejected:
		return ApprovalStatus(strings.ToUpper(key))
	}
	return StatusInReview
}

// IsTerminal reports whether no further transition is permitted.
func (s ApprovalStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ApprovalEntity is the ledger row governing the visibility of one profile,
// content item or registration. Approval fields live on the same record as
// the domain entity they gate.
type ApprovalEntity struct {
	ID              int            `gorm:"primaryKey;column:id" json:"-"`
	EntityID        string         `gorm:"column:entity_id;size:64;uniqueIndex" json:"entity_id"`
	Kind            EntityKind     `gorm:"column:kind;size:32;index:idx_kind_subtype" json:"kind"`
	Subtype         EntitySubtype  `gorm:"column:subtype;size:32;index:idx_kind_subtype" json:"subtype"`
	OwnerID         int            `gorm:"column:owner_id;index" json:"owner_id"`
	Title           string         `gorm:"column:title" json:"title"`
	Department      *string        `gorm:"column:department;size:128" json:"department,omitempty"`
	Status          ApprovalStatus `gorm:"column:status;size:16;index" json:"status"`
	RejectionReason *string        `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	DecidedBy       *int           `gorm:"column:decided_by" json:"decided_by,omitempty"`
	DecidedAt       *time.Time     `gorm:"column:decided_at" json:"decided_at,omitempty"`
	IsPublic        bool           `gorm:"column:is_public" json:"is_public"`
	CreateAt        time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt        time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
	DeleteAt        *time.Time     `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Owner   *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Decider *User `gorm:"foreignKey:DecidedBy" json:"decider,omitempty"`
}

// TableName overrides
func (ApprovalEntity) TableName() string {
	return "approval_entities"
}

// AfterFind is the single normalization boundary for status values.
func (e *ApprovalEntity) AfterFind(*gorm.DB) error {
	e.Status = NormalizeStatus(string(e.Status))
	return nil
}

// ReviewRecord is the per-decision audit row written alongside every
// approve/reject, one row per review round.
type ReviewRecord struct {
	ReviewID     int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	EntityID     string    `gorm:"column:entity_id;size:64;index" json:"entity_id"`
	ReviewerID   int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	ReviewRound  int       `gorm:"column:review_round" json:"review_round"`
	ReviewStatus string    `gorm:"column:review_status" json:"review_status"`
	Comments     *string   `gorm:"column:comments" json:"comments"`
	ReviewedAt   time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (ReviewRecord) TableName() string {
	return "review_records"
}

// ApprovalStatusHistory logs every status change for an entity.
type ApprovalStatusHistory struct {
	HistoryID int            `gorm:"primaryKey;column:history_id" json:"history_id"`
	EntityID  string         `gorm:"column:entity_id;size:64;index" json:"entity_id"`
	OldStatus ApprovalStatus `gorm:"column:old_status;size:16" json:"old_status"`
	NewStatus ApprovalStatus `gorm:"column:new_status;size:16" json:"new_status"`
	ChangedBy int            `gorm:"column:changed_by" json:"changed_by"`
	Reason    *string        `gorm:"column:reason" json:"reason"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (ApprovalStatusHistory) TableName() string {
	return "approval_status_history"
}
