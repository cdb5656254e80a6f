package workflow

import (
	"time"

	apperrors "github.com/vibetechlabs-developer/News-Portal-1/pkg/errors"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
)

// ErrReporterPublish is returned when a reporter tries to move content
// into PUBLISHED. Only the transition into PUBLISHED is restricted;
// reporters may edit already-published content freely.
var ErrReporterPublish = apperrors.Forbidden("reporters cannot publish content; ask an editor to publish it")

// Publish validates a status transition and returns the published_at value
// the updated row should carry.
//
// The role check compares previous vs requested status: entering PUBLISHED
// requires publish rights, leaving it does not. published_at is stamped
// once on first publish and never overwritten unless the caller explicitly
// supplies one (privileged roles backdating republished stories).
func Publish(prev, next models.ContentStatus, actor policy.Identity, existing, supplied *time.Time, now time.Time) (*time.Time, error) {
	if next == models.StatusPublished && prev != models.StatusPublished {
		if !actor.CanPublish() {
			return nil, ErrReporterPublish
		}
	}
	if supplied != nil && actor.CanPublish() {
		return supplied, nil
	}
	if next == models.StatusPublished && existing == nil {
		stamped := now
		return &stamped, nil
	}
	return existing, nil
}
