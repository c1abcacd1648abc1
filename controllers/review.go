package controllers

import (
	"net/http"
	"strings"

	"alumni-network-api/models"
	"alumni-network-api/services"

	"github.com/gin-gonic/gin"
)

// listFilterFromQuery reads the optional kind/subtype query filters.
func listFilterFromQuery(c *gin.Context) services.ListFilter {
	return services.ListFilter{
		Kind:    models.EntityKind(strings.TrimSpace(c.Query("kind"))),
		Subtype: models.EntitySubtype(strings.TrimSpace(c.Query("subtype"))),
	}
}

// GetPendingEntities lists entities awaiting a decision within the caller's scope.
func GetPendingEntities(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	entities, err := services.NewListingService(nil).Pending(reviewer, listFilterFromQuery(c))
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"entities": entities,
		"total":    len(entities),
	})
}

// GetApprovedEntities lists already-approved entities within the caller's scope.
func GetApprovedEntities(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	entities, err := services.NewListingService(nil).Approved(reviewer, listFilterFromQuery(c))
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"entities": entities,
		"total":    len(entities),
	})
}

// SubmitDecision handles approve/reject decisions from reviewers. The
// updated entity is returned directly so the client can update in place.
func SubmitDecision(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	var req services.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Action = strings.ToLower(strings.TrimSpace(req.Action))

	audit := services.AuditInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := services.NewDecisionService(nil).Decide(reviewer, req, audit)
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
		"entity":  result.Entity,
	})
}

// GetReviewStats returns per-subtype status counts scoped to the caller.
func GetReviewStats(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication context missing"})
		return
	}

	stats, err := services.NewStatsService(nil).ComputeStats(reviewer)
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
