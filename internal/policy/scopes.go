package policy

import (
	"time"

	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

// TaxonomyVisible restricts sections, districts and categories for
// non-manager callers to active approved rows. Districts have no approval
// step; use DistrictVisible for them.
func TaxonomyVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		return db.Where("is_active = ? AND is_approved = ?", true, true)
	}
}

// DistrictVisible hides inactive districts from non-managers.
func DistrictVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		return db.Where("is_active = ?", true)
	}
}

// TagVisible only checks approval. Tags keep serving published articles
// even while deactivated, so is_active never filters reads.
func TagVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		return db.Where("is_approved = ?", true)
	}
}

// ContentVisible restricts articles, videos and reels for non-manager
// callers to published rows. Draft and archived content is only reachable
// through the CMS.
func ContentVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		return db.Where("status = ?", models.StatusPublished)
	}
}

// CommentsVisible hides unapproved comments from everyone except content
// managers and the comment's own author.
func CommentsVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		if id.Authenticated {
			return db.Where("is_approved = ? OR user_id = ?", true, id.UserID)
		}
		return db.Where("is_approved = ?", true)
	}
}

// LikesVisible limits the likes listing to the caller's own rows unless
// they manage content.
func LikesVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		return db.Where("user_id = ?", id.UserID)
	}
}

// ApplicationsVisible limits job applications to the caller's own unless
// they manage content. Anonymous submissions stay invisible to their
// submitters.
func ApplicationsVisible(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		if id.Authenticated {
			return db.Where("user_id = ?", id.UserID)
		}
		return db.Where("1 = 0")
	}
}

// AdsVisible is the query-side mirror of Advertisement.IsCurrentlyActive:
// active status, active flag, and now inside the optional schedule window.
func AdsVisible(id Identity, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.IsContentManager() {
			return db
		}
		return db.Where(
			"is_active = ? AND status = ? AND (start_at IS NULL OR start_at <= ?) AND (end_at IS NULL OR end_at >= ?)",
			true, models.AdStatusActive, now, now,
		)
	}
}
