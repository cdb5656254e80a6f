package models

import "time"

// SiteSettings is a singleton row. GetOrCreate semantics live in the
// settings handler; ID is pinned to 1 so there is exactly one row.
type SiteSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`

	SiteName   string `gorm:"default:'News Portal'" json:"siteName"`
	SiteNameHi string `json:"siteNameHi"`
	SiteNameGu string `json:"siteNameGu"`

	Tagline   string `json:"tagline"`
	TaglineHi string `json:"taglineHi"`
	TaglineGu string `json:"taglineGu"`

	LogoPath    string `json:"logoPath"`
	FaviconPath string `json:"faviconPath"`

	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `gorm:"type:text" json:"contactAddress"`

	FacebookURL  string `json:"facebookUrl"`
	TwitterURL   string `json:"twitterUrl"`
	InstagramURL string `json:"instagramUrl"`
	YoutubeURL   string `json:"youtubeUrl"`

	AboutUs   string `gorm:"type:text" json:"aboutUs"`
	AboutUsHi string `gorm:"type:text" json:"aboutUsHi"`
	AboutUsGu string `gorm:"type:text" json:"aboutUsGu"`

	PrivacyPolicy string `gorm:"type:text" json:"privacyPolicy"`
	TermsOfUse    string `gorm:"type:text" json:"termsOfUse"`

	MaintenanceMode bool `gorm:"default:false" json:"maintenanceMode"`
}
