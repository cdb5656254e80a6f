// Package workflow implements the review, slug and publish state machines
// shared by taxonomy and content handlers.
package workflow

import (
	"time"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
)

// ApplyCreate sets the initial review state for a freshly created taxonomy
// record. Super admin creations are auto-approved; everyone else starts
// pending.
func ApplyCreate(rs *models.ReviewState, actor policy.Identity, now time.Time) {
	rs.IsActive = true
	if actor.IsSuperAdmin() {
		approve(rs, actor, now)
		return
	}
	rs.IsApproved = false
	rs.ApprovedByID = nil
	rs.ApprovedAt = nil
}

// ApplyUpdate adjusts review state on edit. A super admin edit counts as
// approval; any other edit sends the record back to pending so it has to
// be re-reviewed.
func ApplyUpdate(rs *models.ReviewState, actor policy.Identity, now time.Time) {
	if actor.IsSuperAdmin() {
		approve(rs, actor, now)
		return
	}
	rs.IsApproved = false
	rs.ApprovedByID = nil
	rs.ApprovedAt = nil
}

// Approve marks the record approved and stamps the reviewer. Callers must
// have checked CanApprove first.
func Approve(rs *models.ReviewState, actor policy.Identity, now time.Time) {
	approve(rs, actor, now)
}

// Reject marks the record rejected and deactivates it. The reviewer stamp
// is kept so a rejected record is distinguishable from a pending one.
func Reject(rs *models.ReviewState, actor policy.Identity, now time.Time) {
	rs.IsApproved = false
	rs.IsActive = false
	uid := actor.UserID
	rs.ApprovedByID = &uid
	rs.ApprovedAt = &now
}

func approve(rs *models.ReviewState, actor policy.Identity, now time.Time) {
	rs.IsApproved = true
	uid := actor.UserID
	rs.ApprovedByID = &uid
	rs.ApprovedAt = &now
}
