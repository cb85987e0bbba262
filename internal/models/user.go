package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole determines the access level of a user.
type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

// IsValid checks if the role is one of the allowed values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User is the aggregate root for an account.
type User struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100)" json:"last_name"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	AvatarURL    string     `gorm:"type:varchar(500)" json:"avatar_url"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int64      `gorm:"not null;default:0" json:"version"`
}

// NewUserParams holds the creation-time attributes for a user.
type NewUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
	AvatarURL    string
}

// NewUser builds an active user account, defaulting the role to USER.
func NewUser(params NewUserParams) (*User, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if params.PasswordHash == "" {
		return nil, ErrPasswordHashMissing
	}

	role := params.Role
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: params.PasswordHash,
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		Role:         role,
		IsActive:     true,
		AvatarURL:    params.AvatarURL,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      0,
	}, nil
}

// Activate re-enables a deactivated account.
func (u *User) Activate() {
	u.IsActive = true
	u.touch()
}

// Deactivate disables the account without removing it.
func (u *User) Deactivate() {
	u.IsActive = false
	u.touch()
}

// UpdateLastLogin stamps the current time as the last login.
func (u *User) UpdateLastLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
	u.touch()
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(newPasswordHash string) error {
	if newPasswordHash == "" {
		return ErrPasswordHashMissing
	}
	u.PasswordHash = newPasswordHash
	u.touch()
	return nil
}

// UpdateProfile replaces the display fields.
func (u *User) UpdateProfile(firstName, lastName, avatarURL string) {
	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	u.AvatarURL = strings.TrimSpace(avatarURL)
	u.touch()
}

// FullName joins the first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user has the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager reports whether the user has the MANAGER role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}
