// Package services holds business logic that spans models: engagement
// counters, notification fan-out, and the cricket score proxy.
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/utils"
)

// Engagement owns all writes to the denormalized view/like/impression
// counters. Handlers never touch the counter columns directly.
type Engagement struct {
	DB *gorm.DB
}

func NewEngagement(db *gorm.DB) *Engagement {
	return &Engagement{DB: db}
}

// ViewMeta is the request context logged with a view.
type ViewMeta struct {
	UserID    *string
	IPAddress string
	UserAgent string
}

// TrackView bumps an article's view counter atomically and appends a row
// to the view log. The log write is best effort: a failed log never rolls
// back the counter bump.
func (e *Engagement) TrackView(articleID string, meta ViewMeta) (int, error) {
	res := e.DB.Model(&models.NewsArticle{}).
		Where("id = ?", articleID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	view := models.ArticleView{
		ArticleID: articleID,
		UserID:    meta.UserID,
		IPAddress: meta.IPAddress,
		UserAgent: utils.TruncateUserAgent(meta.UserAgent),
	}
	if err := e.DB.Create(&view).Error; err != nil {
		logger.Error().Err(err).Str("article_id", articleID).Msg("Failed to log article view")
	}

	var count int
	if err := e.DB.Model(&models.NewsArticle{}).
		Select("view_count").
		Where("id = ?", articleID).
		Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TrackClipView bumps the view counter on a video or reel. Clips keep a
// counter but no per-view log.
func (e *Engagement) TrackClipView(model any, clipID string) (int, error) {
	res := e.DB.Model(model).
		Where("id = ?", clipID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var count int
	if err := e.DB.Model(model).Select("view_count").Where("id = ?", clipID).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ToggleLike creates or removes the caller's like and keeps likes_count in
// step. The unique index on (user_id, article_id) arbitrates concurrent
// toggles: the loser of an insert race falls through to the removal path.
// Returns whether the article is liked after the call and the new count.
func (e *Engagement) ToggleLike(userID, articleID string) (bool, int, error) {
	var liked bool

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.Like{UserID: userID, ArticleID: articleID}
			if err := tx.Create(&like).Error; err != nil {
				if database.IsUniqueViolation(err) {
					// Lost the race; treat as already liked and remove.
					return e.unlike(tx, userID, articleID, &liked)
				}
				return err
			}
			liked = true
			return tx.Model(&models.NewsArticle{}).
				Where("id = ?", articleID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error

		case err != nil:
			return err

		default:
			return e.unlike(tx, userID, articleID, &liked)
		}
	})
	if err != nil {
		return false, 0, err
	}

	var count int
	if err := e.DB.Model(&models.NewsArticle{}).
		Select("likes_count").
		Where("id = ?", articleID).
		Scan(&count).Error; err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

// unlike deletes the like row and applies a clamped decrement. The
// conditional update keeps the counter non-negative even if it drifted.
func (e *Engagement) unlike(tx *gorm.DB, userID, articleID string, liked *bool) error {
	res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	*liked = false
	if res.RowsAffected == 0 {
		return nil
	}
	return tx.Model(&models.NewsArticle{}).
		Where("id = ? AND likes_count > ?", articleID, 0).
		UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error
}

// TrackImpression bumps an advertisement's impression counter.
func (e *Engagement) TrackImpression(adID string) error {
	res := e.DB.Model(&models.Advertisement{}).
		Where("id = ?", adID).
		UpdateColumn("impression_count", gorm.Expr("impression_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TrackClick bumps an advertisement's click counter.
func (e *Engagement) TrackClick(adID string) error {
	res := e.DB.Model(&models.Advertisement{}).
		Where("id = ?", adID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReconcileReport summarizes a reconciliation run.
type ReconcileReport struct {
	ArticlesChecked int
	ViewsCorrected  int
	LikesCorrected  int
	StartedAt       time.Time
	FinishedAt      time.Time
}

// ReconcileCounters recomputes view and like counters from the source
// tables and fixes drifted articles. With dryRun set it only reports what
// would change.
func (e *Engagement) ReconcileCounters(dryRun bool) (*ReconcileReport, error) {
	report := &ReconcileReport{StartedAt: time.Now()}

	var articles []models.NewsArticle
	if err := e.DB.Select("id", "view_count", "likes_count").
		FindInBatches(&articles, 200, func(tx *gorm.DB, _ int) error {
			for i := range articles {
				if err := e.reconcileOne(&articles[i], dryRun, report); err != nil {
					return err
				}
			}
			report.ArticlesChecked += len(articles)
			return nil
		}).Error; err != nil {
		return nil, err
	}

	report.FinishedAt = time.Now()
	return report, nil
}

func (e *Engagement) reconcileOne(article *models.NewsArticle, dryRun bool, report *ReconcileReport) error {
	var views, likes int64
	if err := e.DB.Model(&models.ArticleView{}).Where("article_id = ?", article.ID).Count(&views).Error; err != nil {
		return err
	}
	if err := e.DB.Model(&models.Like{}).Where("article_id = ?", article.ID).Count(&likes).Error; err != nil {
		return err
	}

	updates := map[string]any{}
	if int(views) != article.ViewCount {
		report.ViewsCorrected++
		updates["view_count"] = views
	}
	if int(likes) != article.LikesCount {
		report.LikesCorrected++
		updates["likes_count"] = likes
	}
	if len(updates) == 0 || dryRun {
		return nil
	}
	return e.DB.Model(&models.NewsArticle{}).Where("id = ?", article.ID).UpdateColumns(updates).Error
}
