// Package policy centralizes who-can-see-what decisions. Handlers build an
// Identity from the auth middleware and apply the query scopes below instead
// of inlining role checks.
package policy

import "github.com/vibetechlabs-developer/News-Portal-1/internal/models"

// Identity describes the caller for visibility and permission decisions.
// The zero value is an anonymous caller.
type Identity struct {
	UserID        string
	Role          models.Role
	Authenticated bool
}

func Anonymous() Identity {
	return Identity{Role: models.RoleAnonymous}
}

func (id Identity) IsSuperAdmin() bool {
	return id.Authenticated && id.Role == models.RoleSuperAdmin
}

// IsContentManager reports whether the caller can operate the CMS side
// (create and edit content, see unapproved and unpublished rows).
func (id Identity) IsContentManager() bool {
	return id.Authenticated && models.ContentManagerRoles[id.Role]
}

// CanPublish reports whether the caller may move content into PUBLISHED.
// Reporters draft and edit but never publish.
func (id Identity) CanPublish() bool {
	return id.Authenticated && (id.Role == models.RoleSuperAdmin || id.Role == models.RoleEditor)
}

// CanApprove reports whether the caller may approve or reject review items.
func (id Identity) CanApprove() bool {
	return id.IsSuperAdmin()
}

// CanModifyOwned reports whether the caller may modify a row owned by
// ownerID. Super admins and editors modify anything; reporters only their
// own rows.
func (id Identity) CanModifyOwned(ownerID *string) bool {
	if !id.IsContentManager() {
		return false
	}
	if id.Role != models.RoleReporter {
		return true
	}
	return ownerID != nil && *ownerID == id.UserID
}
