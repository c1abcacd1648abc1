package controllers

import (
	"net/http"
	"time"

	"alumni-network-api/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the reviewer dashboard: per-subtype status
// counts plus queue totals, computed live from entity state.
func GetDashboardStats(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "authentication context missing",
		})
		return
	}

	stats, err := services.NewStatsService(nil).ComputeStats(reviewer)
	if err != nil {
		abortWithReviewError(c, err)
		return
	}

	var pending, approved, rejected int64
	for _, counts := range stats {
		pending += counts.InReview
		approved += counts.Approved
		rejected += counts.Rejected
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"by_subtype": stats,
			"totals": gin.H{
				"IN_REVIEW": pending,
				"APPROVED":  approved,
				"REJECTED":  rejected,
			},
			"current_date": time.Now().Format("2006-01-02"),
		},
	})
}
