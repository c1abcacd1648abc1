package services

import "errors"

// Review error taxonomy. Every failure surfaced by the approval core is one
// of these sentinels (possibly wrapped); controllers match with errors.Is
// and translate to HTTP status codes.
var (
	// ErrUnknownKind means the (kind, subtype) pair is not in the entity registry.
	ErrUnknownKind = errors.New("unknown entity kind or subtype")

	// ErrUnauthorized means the caller's role is not a reviewer role.
	ErrUnauthorized = errors.New("role is not authorized to review")

	// ErrScopeViolation means the target entity lies outside the reviewer's scope.
	ErrScopeViolation = errors.New("entity is outside reviewer scope")

	// ErrNotFound means no entity exists for the given kind and id.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyDecided means the entity already reached a terminal state.
	ErrAlreadyDecided = errors.New("entity has already been decided")

	// ErrMissingReason means a reject decision arrived without a usable reason.
	ErrMissingReason = errors.New("rejection requires a non-blank reason")

	// ErrInvalidAction means the requested action is neither approve nor reject.
	ErrInvalidAction = errors.New("action must be approve or reject")

	// ErrMissingDepartment means a department-bound subtype arrived without one.
	ErrMissingDepartment = errors.New("department is required for this subtype")

	// ErrNotResubmittable means resubmission was requested for a non-rejected entity.
	ErrNotResubmittable = errors.New("only rejected submissions can be resubmitted")
)
