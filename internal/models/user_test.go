package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserParams() NewUserParams {
	return NewUserParams{
		Username:     "alice_dev",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$notarealhash",
	}
}

func TestNewUser_Defaults(t *testing.T) {
	user, err := NewUser(validUserParams())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.LastLoginAt)
	assert.Equal(t, int64(0), user.Version)
}

func TestNewUser_NormalizesEmail(t *testing.T) {
	params := validUserParams()
	params.Email = "  Alice@Example.COM "

	user, err := NewUser(params)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewUserParams)
		wantErr error
	}{
		{"blank username", func(p *NewUserParams) { p.Username = "  " }, ErrUsernameRequired},
		{"username too short", func(p *NewUserParams) { p.Username = "ab" }, ErrInvalidUsername},
		{"username with spaces", func(p *NewUserParams) { p.Username = "alice smith" }, ErrInvalidUsername},
		{"blank email", func(p *NewUserParams) { p.Email = "" }, ErrEmailRequired},
		{"malformed email", func(p *NewUserParams) { p.Email = "not-an-email" }, ErrInvalidEmail},
		{"missing hash", func(p *NewUserParams) { p.PasswordHash = "" }, ErrPasswordHashMissing},
		{"invalid role", func(p *NewUserParams) { p.Role = "SUPERUSER" }, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validUserParams()
			tt.mutate(&params)
			_, err := NewUser(params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser(validUserParams())
	require.NoError(t, err)

	assert.ErrorIs(t, user.ChangePassword(""), ErrPasswordHashMissing)

	require.NoError(t, user.ChangePassword("$2a$10$anotherhash"))
	assert.Equal(t, "$2a$10$anotherhash", user.PasswordHash)
}

func TestUser_ActivateDeactivate(t *testing.T) {
	user, err := NewUser(validUserParams())
	require.NoError(t, err)

	user.Deactivate()
	assert.False(t, user.IsActive)

	user.Activate()
	assert.True(t, user.IsActive)
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user, err := NewUser(validUserParams())
	require.NoError(t, err)

	user.UpdateLastLogin()
	require.NotNil(t, user.LastLoginAt)
}

func TestUser_FullName(t *testing.T) {
	user, err := NewUser(validUserParams())
	require.NoError(t, err)
	assert.Empty(t, user.FullName())

	user.UpdateProfile("Alice", "Smith", "")
	assert.Equal(t, "Alice Smith", user.FullName())

	user.UpdateProfile("Alice", "", "")
	assert.Equal(t, "Alice", user.FullName())
}

func TestUser_RolePredicates(t *testing.T) {
	params := validUserParams()
	params.Role = RoleAdmin
	admin, err := NewUser(params)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsManager())
}
