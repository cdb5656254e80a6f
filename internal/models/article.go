package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Language string

const (
	LanguageEN Language = "EN"
	LanguageHI Language = "HI"
	LanguageGU Language = "GU"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "DRAFT"
	StatusPublished ContentStatus = "PUBLISHED"
	StatusArchived  ContentStatus = "ARCHIVED"
)

type ContentType string

const (
	ContentTypeArticle ContentType = "ARTICLE"
	ContentTypeReel    ContentType = "REEL"
	ContentTypeYouTube ContentType = "YOUTUBE"
	ContentTypeVideo   ContentType = "VIDEO"
)

// NewsArticle stores all three translations; the frontend language
// switch picks which one to render.
type NewsArticle struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TitleEn string `gorm:"not null" json:"titleEn"`
	TitleHi string `json:"titleHi"`
	TitleGu string `json:"titleGu"`

	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	SummaryEn string `gorm:"type:text" json:"summaryEn"`
	SummaryHi string `gorm:"type:text" json:"summaryHi"`
	SummaryGu string `gorm:"type:text" json:"summaryGu"`

	ContentEn string `gorm:"type:text;not null" json:"contentEn"`
	ContentHi string `gorm:"type:text" json:"contentHi"`
	ContentGu string `gorm:"type:text" json:"contentGu"`

	FeaturedImage string `json:"featuredImage"`

	SectionID  string    `gorm:"type:text;index:idx_article_section;not null" json:"sectionId"`
	Section    *Section  `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	CategoryID *string   `gorm:"type:text;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	DistrictID *string   `gorm:"type:text;index" json:"districtId"`
	District   *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Tags       []*Tag    `gorm:"many2many:article_tags" json:"tags,omitempty"`

	AuthorID *string `gorm:"type:text;index" json:"authorId"`
	Author   *User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	Status          ContentStatus `gorm:"type:text;default:'DRAFT';index:idx_article_status" json:"status"`
	ContentType     ContentType   `gorm:"type:text;default:'ARTICLE'" json:"contentType"`
	PrimaryLanguage Language      `gorm:"type:text;default:'GU'" json:"primaryLanguage"`

	IsBreaking bool `gorm:"default:false;index" json:"isBreaking"`
	IsTop      bool `gorm:"default:false;index" json:"isTop"`
	IsFeatured bool `gorm:"default:false" json:"isFeatured"`

	// Denormalized engagement counters. Mutated only through
	// services.Engagement; reconcilable from article_views / likes.
	ViewCount  int `gorm:"default:0" json:"viewCount"`
	LikesCount int `gorm:"default:0" json:"likesCount"`

	PublishedAt *time.Time `gorm:"index:idx_article_status" json:"publishedAt"`

	Media []*Media `gorm:"foreignKey:ArticleID" json:"media,omitempty"`
}

func (a *NewsArticle) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

type MediaType string

const (
	MediaTypeImage   MediaType = "IMAGE"
	MediaTypeVideo   MediaType = "VIDEO"
	MediaTypeReel    MediaType = "REEL"
	MediaTypeYouTube MediaType = "YOUTUBE"
)

// Media attaches uploaded files, images or YouTube embeds to an article.
type Media struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ArticleID string       `gorm:"type:text;index;not null" json:"articleId"`
	Article   *NewsArticle `gorm:"foreignKey:ArticleID" json:"-"`

	MediaType  MediaType `gorm:"type:text;not null" json:"mediaType"`
	FilePath   string    `json:"filePath"`
	ImagePath  string    `json:"imagePath"`
	YoutubeURL string    `json:"youtubeUrl"`
	Thumbnail  string    `json:"thumbnail"`
	Caption    string    `json:"caption"`
	SortOrder  int       `gorm:"default:0" json:"sortOrder"`
}

func (m *Media) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

// EpaperEdition is a single-file e-paper, typically one PDF per
// publication date. Editors upload; public users download.
type EpaperEdition struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PublicationDate time.Time `gorm:"uniqueIndex;not null" json:"publicationDate"`
	Title           string    `gorm:"not null" json:"title"`
	PDFPath         string    `gorm:"not null" json:"pdfPath"`
}

func (e *EpaperEdition) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}
