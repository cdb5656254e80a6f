package workflow

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/utils"
)

const (
	maxSlugLen      = 180
	maxSlugAttempts = 50
)

// SlugBase derives the probe base for a record. Gujarati and Hindi titles
// slug to an empty string, so fall back through the English title and
// finally a random base.
func SlugBase(titles ...string) string {
	for _, t := range titles {
		if s := utils.GenerateSlug(t); s != "" {
			return utils.TruncateSlug(s, maxSlugLen)
		}
	}
	return "post-" + strings.Split(uuid.New().String(), "-")[0]
}

// UniqueSlug probes the table behind model for base, base-2, base-3, ...
// and returns the first free candidate. excludeID lets updates keep their
// own slug.
func UniqueSlug(db *gorm.DB, model any, base, excludeID string) (string, error) {
	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		q := db.Model(model).Where("slug = ?", candidate)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	// Heavily contended base; a random suffix always terminates.
	return fmt.Sprintf("%s-%s", base, strings.Split(uuid.New().String(), "-")[0]), nil
}

// CreateWithSlug assigns a unique slug via setSlug and inserts the record,
// retrying when a concurrent insert steals the probed slug. The unique
// index on slug is the real guarantee; the probe just picks a candidate.
func CreateWithSlug(db *gorm.DB, model any, base string, setSlug func(string)) error {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		var slug string
		slug, err = UniqueSlug(db, model, base, "")
		if err != nil {
			return err
		}
		setSlug(slug)
		err = db.Create(model).Error
		if err == nil || !database.IsUniqueViolation(err) {
			return err
		}
	}
	return err
}
