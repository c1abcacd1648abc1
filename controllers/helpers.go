package controllers

import (
	"errors"
	"net/http"

	"alumni-network-api/services"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int); ok {
			return id, true
		}
	}
	return 0, false
}

// reviewerFromContext assembles the ReviewerContext for the calling user.
func reviewerFromContext(c *gin.Context) (services.ReviewerContext, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return services.ReviewerContext{}, false
	}
	role, _ := c.Get("role")
	department, _ := c.Get("department")

	roleName, _ := role.(string)
	deptName, _ := department.(string)
	return services.ReviewerContext{
		UserID:     userID,
		Role:       roleName,
		Department: deptName,
	}, true
}

// reviewErrorStatus maps the service error taxonomy onto HTTP status codes.
// Messages are specific and actionable; internal details stay internal.
func reviewErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnknownKind):
		return http.StatusBadRequest, "Unknown entity kind or subtype"
	case errors.Is(err, services.ErrInvalidAction):
		return http.StatusBadRequest, "Action must be either 'approve' or 'reject'"
	case errors.Is(err, services.ErrMissingReason):
		return http.StatusBadRequest, "A reason is required when rejecting"
	case errors.Is(err, services.ErrMissingDepartment):
		return http.StatusBadRequest, "A department is required for this subtype"
	case errors.Is(err, services.ErrNotResubmittable):
		return http.StatusBadRequest, "Only rejected submissions can be resubmitted"
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden, "Your role is not authorized to review"
	case errors.Is(err, services.ErrScopeViolation):
		return http.StatusForbidden, "This item is outside your review scope"
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, services.ErrAlreadyDecided):
		return http.StatusConflict, "This item has already been decided by another reviewer"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// abortWithReviewError writes the mapped error response.
func abortWithReviewError(c *gin.Context, err error) {
	status, message := reviewErrorStatus(err)
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
