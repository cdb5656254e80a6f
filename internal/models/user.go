package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleEditor     Role = "EDITOR"
	RoleReporter   Role = "REPORTER"
	RoleUser       Role = "USER"

	// RoleAnonymous is never stored; it marks unauthenticated callers in
	// visibility checks.
	RoleAnonymous Role = "ANONYMOUS"
)

// ContentManagerRoles can create and edit news, ads, contact and
// analytics resources. Only SUPER_ADMIN and EDITOR may publish.
var ContentManagerRoles = map[Role]bool{
	RoleSuperAdmin: true,
	RoleEditor:     true,
	RoleReporter:   true,
}

type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PhoneNumber  string `json:"phoneNumber"`
	ProfileImage string `json:"profileImage"`

	Role Role `gorm:"type:text;default:'USER';index" json:"role"`

	Password string `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

func (u *User) IsContentManager() bool {
	return ContentManagerRoles[u.Role]
}
