package controllers

import (
	"net/http"

	"alumni-network-api/models"
	"alumni-network-api/services"

	"github.com/gin-gonic/gin"
)

// CreateSubmission files a new entity for review. Everything starts in
// IN_REVIEW; nothing becomes publicly visible until a reviewer approves it.
func CreateSubmission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entity, err := services.NewIntakeService(nil).Submit(userID, req)
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Submission received and queued for review",
		"entity":  entity,
	})
}

// ResubmitSubmission files a fresh entity based on a rejected one.
func ResubmitSubmission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	entity, err := services.NewIntakeService(nil).Resubmit(userID, c.Param("id"))
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Submission resubmitted for review",
		"entity":  entity,
	})
}

// GetMySubmissions lists the caller's own submissions. Rejection reasons are
// included here and only here; other users never see them.
func GetMySubmissions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	entities, err := services.NewIntakeService(nil).OwnedBy(userID)
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	// Visibility of a decided row is owner-facing: approved rows are public,
	// rejected rows stay hidden with only the reason exposed to the owner.
	summaries := make([]gin.H, 0, len(entities))
	for _, entity := range entities {
		summary := gin.H{
			"entity_id":  entity.EntityID,
			"kind":       entity.Kind,
			"subtype":    entity.Subtype,
			"title":      entity.Title,
			"status":     entity.Status,
			"is_public":  entity.IsPublic,
			"create_at":  entity.CreateAt,
			"decided_at": entity.DecidedAt,
		}
		if entity.Department != nil {
			summary["department"] = *entity.Department
		}
		if entity.Status == models.StatusRejected && entity.RejectionReason != nil {
			summary["rejection_reason"] = *entity.RejectionReason
		}
		summaries = append(summaries, summary)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": summaries,
		"total":       len(summaries),
	})
}
