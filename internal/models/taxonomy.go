package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewState is the embedded approval workflow state shared by taxonomy
// entities. A record is publicly visible iff IsActive && IsApproved.
// Rejected records keep approver/timestamp stamped so the admin UI can
// tell "rejected" apart from "never reviewed".
type ReviewState struct {
	// No column default on IsActive: workflow.ApplyCreate sets it, and a
	// column default would silently override explicit false on insert.
	IsActive     bool       `gorm:"index:,composite:review" json:"isActive"`
	IsApproved   bool       `gorm:"default:false;index:,composite:review" json:"isApproved"`
	ApprovedByID *string    `gorm:"type:text" json:"approvedById"`
	ApprovedAt   *time.Time `json:"approvedAt"`
}

// Section is a navbar section. Regions form a tree via ParentID
// (e.g. Gujarat -> Daxin, Utar, Saurashtra, Madhya, Gandhinagar).
type Section struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	NameEn string `gorm:"not null" json:"nameEn"`
	NameHi string `json:"nameHi"`
	NameGu string `json:"nameGu"`
	Slug   string `gorm:"uniqueIndex;not null" json:"slug"`

	ParentID *string    `gorm:"type:text;index" json:"parentId"`
	Parent   *Section   `gorm:"foreignKey:ParentID" json:"-"`
	Children []*Section `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	SortOrder int `gorm:"default:0" json:"sortOrder"`

	ReviewState
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// District is a geographic district used for location-based navigation.
// Districts have no approval workflow; active is the only gate.
type District struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	NameEn string `gorm:"not null" json:"nameEn"`
	NameHi string `json:"nameHi"`
	NameGu string `json:"nameGu"`
	Slug   string `gorm:"uniqueIndex;not null" json:"slug"`

	SectionID string   `gorm:"type:text;index;not null" json:"sectionId"`
	Section   *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`

	SortOrder int  `gorm:"default:0" json:"sortOrder"`
	IsActive  bool `gorm:"index" json:"isActive"`
}

func (d *District) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}

// Category gives finer grouping inside a section (Politics -> Elections).
type Category struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	NameEn string `gorm:"not null" json:"nameEn"`
	NameHi string `json:"nameHi"`
	NameGu string `json:"nameGu"`
	Slug   string `gorm:"uniqueIndex;not null" json:"slug"`

	ReviewState
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// Tag visibility only checks approval; tags carry IsActive solely so
// rejection can deactivate them like the other taxonomy families.
type Tag struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	ReviewState
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}
