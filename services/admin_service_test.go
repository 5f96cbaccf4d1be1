package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfrabric/roilux/models"
)

func newTestAdminService(t *testing.T) (*AdminService, *mailRecorder) {
	t.Helper()

	mail := &mailRecorder{}
	svc := NewAdminService(newTestDB(t), newTestConfig(), NewMemoryTokenStore(), mail)
	return svc, mail
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAdminService(t)

	_, err := svc.Register("admin", "roilux.woods@gmail.com", "roilux2024", models.RoleAdmin)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login("admin", "roilux2024")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.Equal(t, models.RoleAdmin, user.Role)
		require.NotNil(t, user.LastLogin)
		assert.WithinDuration(t, time.Now(), *user.LastLogin, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login("nobody", "roilux2024")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAdminService(t)

	user, err := svc.Register("processor1", "processor@roilux.com", "processor123", models.RoleProcessor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleProcessor, user.Role)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register("processor1", "other@roilux.com", "processor123", models.RoleProcessor)
		assert.ErrorIs(t, err, ErrAdminAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register("processor2", "processor@roilux.com", "processor123", models.RoleProcessor)
		assert.ErrorIs(t, err, ErrAdminAlreadyExists)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.Register("viewer1", "viewer@roilux.com", "viewer12345", models.AdminRole("viewer"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("password hash never stored in plain text", func(t *testing.T) {
		var stored models.AdminUser
		require.NoError(t, svc.DB.Where("username = ?", "processor1").First(&stored).Error)
		assert.NotEqual(t, "processor123", stored.PasswordHash)
		assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
	})
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestAdminService(t)

	_, err := svc.Register("admin", "roilux.woods@gmail.com", "roilux2024", models.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword("admin", "newpassword1"))

	_, err = svc.Login("admin", "roilux2024")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("admin", "newpassword1")
	assert.NoError(t, err)

	t.Run("unknown account", func(t *testing.T) {
		err := svc.ChangePassword("nobody", "whatever123")
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestListAdminUsers(t *testing.T) {
	svc, _ := newTestAdminService(t)

	_, err := svc.Register("admin", "roilux.woods@gmail.com", "roilux2024", models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Register("processor1", "processor@roilux.com", "processor123", models.RoleProcessor)
	require.NoError(t, err)

	users, err := svc.ListAdminUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "processor1", users[1].Username)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mail := newTestAdminService(t)

	_, err := svc.Register("admin", "roilux.woods@gmail.com", "roilux2024", models.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("roilux.woods@gmail.com"))
	require.Len(t, mail.links, 1)
	assert.Equal(t, "roilux.woods@gmail.com", mail.to[0])

	// The mailed link carries the token as a query parameter.
	link := mail.links[0]
	idx := strings.Index(link, "token=")
	require.Greater(t, idx, -1)
	token := link[idx+len("token="):]
	require.NotEmpty(t, token)

	require.NoError(t, svc.ValidateResetToken(token))

	require.NoError(t, svc.ConfirmPasswordReset(token, "freshpass99"))

	_, err = svc.Login("admin", "freshpass99")
	assert.NoError(t, err)

	t.Run("token is single use", func(t *testing.T) {
		err := svc.ValidateResetToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)

		err = svc.ConfirmPasswordReset(token, "anotherpass1")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	svc, mail := newTestAdminService(t)

	// Unknown addresses succeed without sending anything so account
	// existence cannot be probed.
	require.NoError(t, svc.RequestPasswordReset("stranger@example.com"))
	assert.Empty(t, mail.to)
}
