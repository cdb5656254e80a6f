package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClipFields is the shared shape of standalone video/reel content that is
// not tied to a full NewsArticle. VideoContent and ReelContent keep their
// own tables so the dedicated video and reel sections stay independent.
type ClipFields struct {
	TitleEn string `gorm:"not null" json:"titleEn"`
	TitleHi string `json:"titleHi"`
	TitleGu string `json:"titleGu"`

	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionHi string `gorm:"type:text" json:"descriptionHi"`
	DescriptionGu string `gorm:"type:text" json:"descriptionGu"`

	SectionID  string  `gorm:"type:text;index;not null" json:"sectionId"`
	CategoryID *string `gorm:"type:text;index" json:"categoryId"`

	Thumbnail  string `json:"thumbnail"`
	FilePath   string `json:"filePath"`
	YoutubeURL string `json:"youtubeUrl"`

	PrimaryLanguage Language      `gorm:"type:text;default:'GU'" json:"primaryLanguage"`
	Status          ContentStatus `gorm:"type:text;default:'DRAFT';index" json:"status"`

	ViewCount  int `gorm:"default:0" json:"viewCount"`
	LikesCount int `gorm:"default:0" json:"likesCount"`

	PublishedAt *time.Time `gorm:"index" json:"publishedAt"`
}

// VideoContent is a standalone (non-reel) video.
type VideoContent struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ClipFields
	Section  *Section  `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []*Tag    `gorm:"many2many:video_tags" json:"tags,omitempty"`
}

func (v *VideoContent) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

// ReelContent is a short vertical video.
type ReelContent struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ClipFields
	Section  *Section  `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []*Tag    `gorm:"many2many:reel_tags" json:"tags,omitempty"`
}

func (r *ReelContent) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
