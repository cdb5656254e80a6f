package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like pairs a user with an article exactly once. The composite unique
// index is what makes concurrent toggle requests safe: both may race to
// insert but at most one row survives.
type Like struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID string `gorm:"uniqueIndex:idx_user_article_like;type:text;not null" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ArticleID string       `gorm:"uniqueIndex:idx_user_article_like;type:text;not null" json:"articleId"`
	Article   *NewsArticle `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

// Comment on an article. Replies nest one level deep via ParentID.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID *string `gorm:"type:text;index" json:"userId"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ArticleID string       `gorm:"type:text;index;not null" json:"articleId"`
	Article   *NewsArticle `gorm:"foreignKey:ArticleID" json:"-"`

	ParentID *string  `gorm:"type:text;index" json:"parentId"`
	Parent   *Comment `gorm:"foreignKey:ParentID" json:"-"`

	Content string `gorm:"type:text;not null" json:"content"`
	// Comments post live and get moderated down, so handlers set this
	// true on create.
	IsApproved bool `gorm:"index" json:"isApproved"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ArticleView is the append-only view log. view_count is a cache of
// COUNT(*) over this table; repeat views by the same user all count.
type ArticleView struct {
	ID string `gorm:"primaryKey;type:text" json:"id"`

	ArticleID string       `gorm:"type:text;index:idx_view_article;not null" json:"articleId"`
	Article   *NewsArticle `gorm:"foreignKey:ArticleID" json:"-"`

	UserID *string `gorm:"type:text;index" json:"userId"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	IPAddress string `json:"ipAddress"`
	UserAgent string `gorm:"size:300" json:"userAgent"`

	ViewedAt time.Time `gorm:"autoCreateTime;index:idx_view_article" json:"viewedAt"`
}

func (v *ArticleView) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

func (ArticleView) TableName() string {
	return "article_views"
}
