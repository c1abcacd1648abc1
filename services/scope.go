package services

import (
	"strings"

	"alumni-network-api/models"
)

// ReviewerContext identifies the reviewer making a call. Department is only
// meaningful for coordinators; it is ignored for admins.
type ReviewerContext struct {
	UserID     int
	Role       string
	Department string
}

// Scope is the computed review surface for one reviewer: the (kind, subtype)
// pairs they may see and act on, plus an optional department filter.
// DepartmentFilter == "" means no filtering.
type Scope struct {
	allowed          map[entityPair]struct{}
	DepartmentFilter string
}

// Allows reports whether the scope covers the given pair.
func (s Scope) Allows(kind models.EntityKind, subtype models.EntitySubtype) bool {
	_, ok := s.allowed[entityPair{Kind: kind, Subtype: subtype}]
	return ok
}

// AllowedSubtypes returns the subtypes in scope for one kind, in catalog order.
func (s Scope) AllowedSubtypes(kind models.EntityKind) []models.EntitySubtype {
	out := make([]models.EntitySubtype, 0, len(s.allowed))
	for _, subtype := range subtypeOrder {
		if s.Allows(kind, subtype) {
			out = append(out, subtype)
		}
	}
	return out
}

// Pairs returns every (kind, subtype) pair in scope.
func (s Scope) Pairs() []entityPair {
	out := make([]entityPair, 0, len(s.allowed))
	for _, kind := range kindOrder {
		for _, subtype := range subtypeOrder {
			if s.Allows(kind, subtype) {
				out = append(out, entityPair{Kind: kind, Subtype: subtype})
			}
		}
	}
	return out
}

var kindOrder = []models.EntityKind{
	models.KindProfile,
	models.KindContent,
	models.KindRegistration,
}

var subtypeOrder = []models.EntitySubtype{
	models.SubtypeStudent,
	models.SubtypeAlumni,
	models.SubtypeFaculty,
	models.SubtypeCoordinator,
	models.SubtypeEvent,
	models.SubtypeOpportunity,
	models.SubtypeDonation,
	models.SubtypeCampaign,
}

// scopeRules is the single policy table keyed by role. Adding a reviewer
// role is one entry here, not a new branch in every query path.
var scopeRules = map[string]struct {
	pairs            []entityPair
	departmentScoped bool
}{
	models.RoleAdmin: {
		pairs: []entityPair{
			{models.KindProfile, models.SubtypeFaculty},
			{models.KindProfile, models.SubtypeCoordinator},
			{models.KindContent, models.SubtypeEvent},
			{models.KindContent, models.SubtypeOpportunity},
			{models.KindContent, models.SubtypeDonation},
			{models.KindContent, models.SubtypeCampaign},
			{models.KindRegistration, models.SubtypeStudent},
			{models.KindRegistration, models.SubtypeAlumni},
			{models.KindRegistration, models.SubtypeFaculty},
			{models.KindRegistration, models.SubtypeCoordinator},
		},
		departmentScoped: false,
	},
	models.RoleCoordinator: {
		pairs: []entityPair{
			{models.KindProfile, models.SubtypeStudent},
			{models.KindProfile, models.SubtypeAlumni},
			{models.KindProfile, models.SubtypeFaculty},
			{models.KindContent, models.SubtypeEvent},
			{models.KindContent, models.SubtypeOpportunity},
			{models.KindContent, models.SubtypeDonation},
			{models.KindContent, models.SubtypeCampaign},
			{models.KindRegistration, models.SubtypeStudent},
			{models.KindRegistration, models.SubtypeAlumni},
		},
		departmentScoped: true,
	},
}

// ComputeScope resolves the review surface for a reviewer. Pure function:
// no I/O, identical input always yields identical output.
func ComputeScope(reviewer ReviewerContext) (Scope, error) {
	rule, ok := scopeRules[reviewer.Role]
	if !ok {
		return Scope{}, ErrUnauthorized
	}

	allowed := make(map[entityPair]struct{}, len(rule.pairs))
	for _, pair := range rule.pairs {
		allowed[pair] = struct{}{}
	}

	scope := Scope{allowed: allowed}
	if rule.departmentScoped {
		department := strings.TrimSpace(reviewer.Department)
		if department == "" {
			// A department-scoped reviewer without a department has no
			// review surface; refuse instead of returning an unfiltered one.
			return Scope{}, ErrUnauthorized
		}
		scope.DepartmentFilter = department
	}
	return scope, nil
}

// InDepartment reports whether an entity's department passes the scope's
// filter. Department-agnostic entities (nil department) pass any filter;
// they are platform-wide content with no department to match.
func (s Scope) InDepartment(department *string) bool {
	if s.DepartmentFilter == "" || department == nil {
		return true
	}
	return *department == s.DepartmentFilter
}
