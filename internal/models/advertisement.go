package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdPlacement string

const (
	PlacementTop          AdPlacement = "TOP"
	PlacementSidebarLeft  AdPlacement = "SIDEBAR_LEFT"
	PlacementSidebarRight AdPlacement = "SIDEBAR_RIGHT"
	PlacementInArticle    AdPlacement = "IN_ARTICLE"
	PlacementFooter       AdPlacement = "FOOTER"
	PlacementPopup        AdPlacement = "POPUP"
)

type AdType string

const (
	AdTypeImage AdType = "IMAGE"
	AdTypeVideo AdType = "VIDEO"
	AdTypeHTML  AdType = "HTML"
)

type AdStatus string

const (
	AdStatusDraft  AdStatus = "DRAFT"
	AdStatusActive AdStatus = "ACTIVE"
	AdStatusPaused AdStatus = "PAUSED"
	AdStatusEnded  AdStatus = "ENDED"
)

// AdSenseSlot stores AdSense slot metadata so the frontend can render ad
// blocks by placement.
type AdSenseSlot struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name      string      `gorm:"uniqueIndex;not null" json:"name"`
	Placement AdPlacement `gorm:"type:text;not null;index" json:"placement"`

	ClientID   string `json:"clientId"` // e.g. ca-pub-xxxx
	SlotID     string `json:"slotId"`
	Format     string `json:"format"` // e.g. auto, rectangle
	Responsive bool   `json:"responsive"`

	IsActive  bool `gorm:"index" json:"isActive"`
	SortOrder int  `gorm:"default:0" json:"sortOrder"`
}

func (s *AdSenseSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

type Advertisement struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title     string      `gorm:"not null" json:"title"`
	Placement AdPlacement `gorm:"type:text;not null;index" json:"placement"`
	AdType    AdType      `gorm:"type:text;default:'IMAGE'" json:"adType"`
	Status    AdStatus    `gorm:"type:text;default:'DRAFT';index" json:"status"`

	ImagePath string `json:"imagePath"`
	VideoPath string `json:"videoPath"`
	// Trusted HTML snippet, editable only by content managers via the
	// ads API; not sanitized server-side.
	HTMLSnippet string `gorm:"type:text" json:"htmlSnippet"`

	LinkURL string `json:"linkUrl"`

	AdvertiserName  string `json:"advertiserName"`
	AdvertiserEmail string `json:"advertiserEmail"`
	AdvertiserPhone string `json:"advertiserPhone"`

	StartAt  *time.Time `gorm:"index" json:"startAt"`
	EndAt    *time.Time `gorm:"index" json:"endAt"`
	IsActive bool       `gorm:"index" json:"isActive"`

	ImpressionCount int `gorm:"default:0" json:"impressionCount"`
	ClickCount      int `gorm:"default:0" json:"clickCount"`
}

func (a *Advertisement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// IsCurrentlyActive reports whether the ad should be shown right now.
// The query-side mirror lives in policy.AdsVisible.
func (a *Advertisement) IsCurrentlyActive(now time.Time) bool {
	if !a.IsActive || a.Status != AdStatusActive {
		return false
	}
	if a.StartAt != nil && a.StartAt.After(now) {
		return false
	}
	if a.EndAt != nil && a.EndAt.Before(now) {
		return false
	}
	return true
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// AdvertisementRequest is a public "advertise with us" submission.
type AdvertisementRequest struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	AdvertiserName  string `gorm:"not null" json:"advertiserName"`
	AdvertiserEmail string `gorm:"not null" json:"advertiserEmail"`
	AdvertiserPhone string `json:"advertiserPhone"`
	CompanyName     string `json:"companyName"`

	Placement AdPlacement `gorm:"type:text;not null" json:"placement"`
	AdType    AdType      `gorm:"type:text;default:'IMAGE'" json:"adType"`
	Budget    *float64    `json:"budget"`
	Message   string      `gorm:"type:text" json:"message"`

	Status     RequestStatus `gorm:"type:text;default:'PENDING';index" json:"status"`
	AdminNotes string        `gorm:"type:text" json:"adminNotes"`
}

func (r *AdvertisementRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
