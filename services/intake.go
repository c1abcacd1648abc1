package services

import (
	"errors"
	"strings"

	"alumni-network-api/config"
	"alumni-network-api/models"
	"alumni-network-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntakeService covers the CRUD boundary this core consumes: creating
// entities in IN_REVIEW at submission time, and resubmitting rejected ones
// as fresh entities. Decisions never touch rows created by anyone else's
// path; every entity starts here in IN_REVIEW.
type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	if db == nil {
		db = config.DB
	}
	return &IntakeService{db: db}
}

// SubmitRequest describes a new submission from an owner.
type SubmitRequest struct {
	Kind       models.EntityKind    `json:"kind" binding:"required"`
	Subtype    models.EntitySubtype `json:"subtype" binding:"required"`
	Title      string               `json:"title" binding:"required"`
	Department string               `json:"department"`
}

// departmentRequired lists the subtypes that must carry a department.
var departmentRequired = map[models.EntitySubtype]bool{
	models.SubtypeStudent:     true,
	models.SubtypeAlumni:      true,
	models.SubtypeFaculty:     true,
	models.SubtypeCoordinator: true,
}

// Submit creates an approval entity in IN_REVIEW with a fresh uuid.
func (s *IntakeService) Submit(ownerID int, req SubmitRequest) (*models.ApprovalEntity, error) {
	if err := PairRegistered(req.Kind, req.Subtype); err != nil {
		return nil, err
	}

	department := strings.TrimSpace(req.Department)
	if departmentRequired[req.Subtype] && department == "" {
		return nil, ErrMissingDepartment
	}

	entity := models.ApprovalEntity{
		EntityID: uuid.NewString(),
		Kind:     req.Kind,
		Subtype:  req.Subtype,
		OwnerID:  ownerID,
		Title:    utils.SanitizeInput(req.Title),
		Status:   models.StatusInReview,
	}
	if department != "" {
		entity.Department = &department
	}

	if err := s.db.Create(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Resubmit creates a fresh IN_REVIEW entity from a rejected one owned by
// the caller. The rejected row keeps its terminal state untouched; the new
// row gets its own id and a clean approval tuple.
func (s *IntakeService) Resubmit(ownerID int, entityID string) (*models.ApprovalEntity, error) {
	var previous models.ApprovalEntity
	if err := s.db.
		Where("entity_id = ? AND owner_id = ? AND delete_at IS NULL", entityID, ownerID).
		First(&previous).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if previous.Status != models.StatusRejected {
		return nil, ErrNotResubmittable
	}

	fresh := models.ApprovalEntity{
		EntityID:   uuid.NewString(),
		Kind:       previous.Kind,
		Subtype:    previous.Subtype,
		OwnerID:    previous.OwnerID,
		Title:      previous.Title,
		Department: previous.Department,
		Status:     models.StatusInReview,
	}
	if err := s.db.Create(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// OwnedBy lists everything an owner has submitted, newest first. The
// rejection reason rides along; it is only ever shown to the owner.
func (s *IntakeService) OwnedBy(ownerID int) ([]models.ApprovalEntity, error) {
	entities := []models.ApprovalEntity{}
	if err := s.db.
		Where("owner_id = ? AND delete_at IS NULL", ownerID).
		Order("create_at DESC").
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
