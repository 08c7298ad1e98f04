package store

import (
	"database/sql"
	"testing"

	"chicchariot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T, db *sql.DB) *Auth {
	t.Helper()

	auth, err := NewAuth(db)
	require.NoError(t, err)
	return auth
}

func TestAuthSeedsDefaultAdmin(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	admins := auth.Admins()
	require.Len(t, admins, 1)
	assert.Equal(t, "sagar", admins[0].Username)
	assert.False(t, auth.IsLoggedIn())
}

func TestLogin(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	result := auth.Login("SAGAR", "123")
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "sagar", result.User.Username)
	assert.True(t, auth.IsLoggedIn())
	assert.True(t, auth.IsAdmin())

	assert.False(t, auth.Login("sagar", "wrong").Success)
	assert.False(t, auth.Login("", "").Success)
}

func TestSignupBecomesActiveSession(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	result := auth.Signup("priya", "secret")
	require.True(t, result.Success)

	user, loggedIn := auth.CurrentUser()
	require.True(t, loggedIn)
	assert.Equal(t, "priya", user.Username)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.False(t, auth.IsAdmin())

	// Usernames are unique ignoring case.
	assert.False(t, auth.Signup("PRIYA", "other").Success)
	assert.False(t, auth.Signup("Sagar", "other").Success)
}

func TestExternalLogin(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	result := auth.ExternalLogin()
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Empty(t, result.User.Password)
	assert.Equal(t, models.ProviderGoogle, result.User.Provider)
	assert.True(t, auth.IsLoggedIn())

	// Federated identities cannot use the credential path.
	assert.False(t, auth.Login(result.User.Username, "").Success)
}

func TestLogoutClearsSession(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuth(t, db)

	require.True(t, auth.Login("sagar", "123").Success)
	auth.Logout()
	assert.False(t, auth.IsLoggedIn())

	reloaded := newTestAuth(t, db)
	assert.False(t, reloaded.IsLoggedIn())
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuth(t, db)
	require.True(t, auth.Login("sagar", "123").Success)

	reloaded := newTestAuth(t, db)
	assert.True(t, reloaded.IsLoggedIn())
	assert.True(t, reloaded.IsAdmin())

	user, _ := reloaded.CurrentUser()
	assert.Equal(t, "sagar", user.Username)
}

func TestAddAdmin(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	require.True(t, auth.AddAdmin("meera", "pass").Success)
	assert.Len(t, auth.Admins(), 2)

	// The new admin is not logged in.
	assert.False(t, auth.IsLoggedIn())

	assert.False(t, auth.AddAdmin("MEERA", "pass").Success)
	assert.False(t, auth.AddAdmin("", "pass").Success)
}

func TestUpdateAdmin(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))
	require.True(t, auth.AddAdmin("meera", "pass").Success)

	admins := auth.Admins()
	var meera models.User
	for _, admin := range admins {
		if admin.Username == "meera" {
			meera = admin
		}
	}

	// Renaming to a name held by someone else fails; keeping your own
	// name succeeds.
	assert.False(t, auth.UpdateAdmin(meera.ID, "sagar", "").Success)
	assert.True(t, auth.UpdateAdmin(meera.ID, "meera", "").Success)

	require.True(t, auth.UpdateAdmin(meera.ID, "meera-r", "newpass").Success)
	assert.False(t, auth.Login("meera-r", "pass").Success)
	assert.True(t, auth.Login("meera-r", "newpass").Success)

	// Blank password keeps the old one.
	require.True(t, auth.UpdateAdmin(meera.ID, "meera-r", "  ").Success)
	auth.Logout()
	assert.True(t, auth.Login("meera-r", "newpass").Success)
}

func TestUpdateAdminRefreshesOwnSession(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))
	require.True(t, auth.Login("sagar", "123").Success)

	user, _ := auth.CurrentUser()
	require.True(t, auth.UpdateAdmin(user.ID, "sagar-admin", "").Success)

	refreshed, loggedIn := auth.CurrentUser()
	require.True(t, loggedIn)
	assert.Equal(t, "sagar-admin", refreshed.Username)
}

func TestRemoveAdminGuards(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))
	require.True(t, auth.Login("sagar", "123").Success)
	user, _ := auth.CurrentUser()

	// Last admin cannot be removed even if it were someone else's id.
	result := auth.RemoveAdmin(user.ID)
	assert.False(t, result.Success)

	require.True(t, auth.AddAdmin("meera", "pass").Success)

	// Self-removal stays blocked once other admins exist.
	result = auth.RemoveAdmin(user.ID)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "own account")

	var meera models.User
	for _, admin := range auth.Admins() {
		if admin.Username == "meera" {
			meera = admin
		}
	}
	assert.True(t, auth.RemoveAdmin(meera.ID).Success)
	assert.Len(t, auth.Admins(), 1)
}

func TestChangePassword(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	// No-op when logged out.
	auth.ChangePassword("nobody")

	require.True(t, auth.Login("sagar", "123").Success)
	assert.True(t, auth.VerifyPassword("123"))

	auth.ChangePassword("456")
	assert.True(t, auth.VerifyPassword("456"))

	auth.Logout()
	assert.False(t, auth.Login("sagar", "123").Success)
	assert.True(t, auth.Login("sagar", "456").Success)
}

func TestUpdateProfile(t *testing.T) {
	auth := newTestAuth(t, setupTestDB(t))

	assert.False(t, auth.UpdateProfile("x", nil).Success)

	require.True(t, auth.Signup("priya", "secret").Success)

	details := models.CustomerDetails{FullName: "Priya Sharma", Phone: "9876543210", Address: "12 Rose Street"}
	require.True(t, auth.UpdateProfile("priya-s", &details).Success)

	user, _ := auth.CurrentUser()
	assert.Equal(t, "priya-s", user.Username)
	require.NotNil(t, user.CustomerDetails)
	assert.Equal(t, "Priya Sharma", user.CustomerDetails.FullName)

	// Blank username keeps the current one.
	require.True(t, auth.UpdateProfile("", nil).Success)
	user, _ = auth.CurrentUser()
	assert.Equal(t, "priya-s", user.Username)

	assert.False(t, auth.UpdateProfile("sagar", nil).Success)
}

func TestUsersPersistAcrossRestart(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuth(t, db)
	require.True(t, auth.Signup("priya", "secret").Success)
	auth.Logout()

	reloaded := newTestAuth(t, db)
	assert.True(t, reloaded.Login("priya", "secret").Success)
}
