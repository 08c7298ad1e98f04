package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"chicchariot/internal/models"
	"chicchariot/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Session is the derived view of the active login.
type Session struct {
	User       *models.User `json:"user,omitempty"`
	IsLoggedIn bool         `json:"isLoggedIn"`
	IsAdmin    bool         `json:"isAdmin"`
}

// Auth holds the user directory and the active session. Credentials are
// compared verbatim; this mirrors the sample data set and is not a
// security mechanism.
type Auth struct {
	db   *sql.DB
	mu   sync.Mutex
	subs subscribers[Session]

	users   []models.User
	current *models.User
}

// NewAuth rehydrates the user directory and session from storage. With no
// persisted directory it seeds the default admin account.
func NewAuth(db *sql.DB) (*Auth, error) {
	a := &Auth{db: db}

	usersFound, err := storage.Load(db, storage.KeyUsers, &a.users)
	if err != nil {
		return nil, err
	}
	if !usersFound {
		a.users = seedUsers()
		a.persistUsersLocked()
	}

	var current models.User
	sessionFound, err := storage.Load(db, storage.KeySession, &current)
	if err != nil {
		return nil, err
	}
	if sessionFound {
		a.current = &current
	}

	return a, nil
}

func (a *Auth) Subscribe(fn func(Session)) int {
	return a.subs.add(fn)
}

func (a *Auth) Unsubscribe(id int) {
	a.subs.remove(id)
}

// Session returns the derived login state.
func (a *Auth) Session() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionLocked()
}

func (a *Auth) IsLoggedIn() bool {
	return a.Session().IsLoggedIn
}

func (a *Auth) IsAdmin() bool {
	return a.Session().IsAdmin
}

// CurrentUser returns a copy of the logged-in user, if any.
func (a *Auth) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return models.User{}, false
	}
	return *a.current, true
}

// Admins lists the admin accounts.
func (a *Auth) Admins() []models.User {
	a.mu.Lock()
	defer a.mu.Unlock()

	var admins []models.User
	for _, user := range a.users {
		if user.Role == models.RoleAdmin {
			admins = append(admins, user)
		}
	}
	return admins
}

// Login authenticates a credentials account. Username matching ignores
// case; the password must match exactly. Externally-authenticated accounts
// cannot log in through this path.
func (a *Auth) Login(username, password string) UserResult {
	if username == "" || password == "" {
		return userFail("Username and password are required.")
	}

	a.mu.Lock()
	for _, user := range a.users {
		if strings.EqualFold(user.Username, username) &&
			user.Password == password &&
			user.Provider == models.ProviderCredentials {
			current := user
			a.current = &current
			a.persistSessionLocked()
			session := a.sessionLocked()
			a.mu.Unlock()

			a.subs.notify(session)
			return userOK(user)
		}
	}
	a.mu.Unlock()
	return userFail("Invalid username or password.")
}

// Signup creates a credentials account and makes it the active session.
func (a *Auth) Signup(username, password string) UserResult {
	if username == "" || password == "" {
		return userFail("Username and password are required.")
	}

	a.mu.Lock()
	if a.usernameTakenLocked(username, "") {
		a.mu.Unlock()
		return userFail("Username already exists.")
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		Role:     models.RoleCustomer,
		Provider: models.ProviderCredentials,
	}
	a.users = append(a.users, user)
	current := user
	a.current = &current
	a.persistUsersLocked()
	a.persistSessionLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
	return userOK(user)
}

// ExternalLogin creates or reuses a synthetic externally-authenticated
// identity without a password, simulating third-party identity federation.
func (a *Auth) ExternalLogin() UserResult {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	username := "user" + millis[len(millis)-4:]

	a.mu.Lock()
	for _, user := range a.users {
		if user.Username == username {
			current := user
			a.current = &current
			a.persistSessionLocked()
			session := a.sessionLocked()
			a.mu.Unlock()

			a.subs.notify(session)
			return userOK(user)
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Role:     models.RoleCustomer,
		Provider: models.ProviderGoogle,
	}
	a.users = append(a.users, user)
	current := user
	a.current = &current
	a.persistUsersLocked()
	a.persistSessionLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
	return userOK(user)
}

// Logout clears the active session.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.current = nil
	a.persistSessionLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
}

// AddAdmin creates a new admin account without logging it in.
func (a *Auth) AddAdmin(username, password string) Result {
	if username == "" || password == "" {
		return fail("Username and password are required.")
	}

	a.mu.Lock()
	if a.usernameTakenLocked(username, "") {
		a.mu.Unlock()
		return fail("Username already exists.")
	}

	a.users = append(a.users, models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		Role:     models.RoleAdmin,
		Provider: models.ProviderCredentials,
	})
	a.persistUsersLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
	return ok()
}

// UpdateAdmin renames an admin account and optionally changes its
// password. A blank password keeps the existing one.
func (a *Auth) UpdateAdmin(id, username, password string) Result {
	username = strings.TrimSpace(username)
	if username == "" {
		return fail("Username cannot be empty.")
	}

	a.mu.Lock()
	if a.usernameTakenLocked(username, id) {
		a.mu.Unlock()
		return fail("Username already taken.")
	}

	for i := range a.users {
		if a.users[i].ID == id {
			a.users[i].Username = username
			if trimmed := strings.TrimSpace(password); trimmed != "" {
				a.users[i].Password = trimmed
			}
			if a.current != nil && a.current.ID == id {
				updated := a.users[i]
				a.current = &updated
				a.persistSessionLocked()
			}
			break
		}
	}
	a.persistUsersLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
	return ok()
}

// RemoveAdmin deletes an account through the admin-management screen. The
// caller's own account is refused, as is removing the last admin; both
// rules exist to avoid locking everyone out.
func (a *Auth) RemoveAdmin(id string) Result {
	a.mu.Lock()
	if a.current != nil && a.current.ID == id {
		a.mu.Unlock()
		return fail("You cannot remove your own account.")
	}

	adminCount := 0
	for _, user := range a.users {
		if user.Role == models.RoleAdmin {
			adminCount++
		}
	}
	if adminCount <= 1 {
		a.mu.Unlock()
		return fail("Cannot remove the last admin account.")
	}

	kept := a.users[:0]
	for _, user := range a.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	a.users = kept
	a.persistUsersLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
	return ok()
}

// ChangePassword sets a new password for the logged-in user. The caller is
// expected to have verified the current password first. A no-op when
// nobody is logged in.
func (a *Auth) ChangePassword(newPassword string) {
	a.mu.Lock()
	if a.current == nil {
		a.mu.Unlock()
		return
	}

	for i := range a.users {
		if a.users[i].ID == a.current.ID {
			a.users[i].Password = newPassword
			updated := a.users[i]
			a.current = &updated
			break
		}
	}
	a.persistUsersLocked()
	a.persistSessionLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
}

// UpdateProfile changes the logged-in user's username and/or shipping
// details. A blank username keeps the current one; a nil details pointer
// leaves the stored details untouched.
func (a *Auth) UpdateProfile(username string, details *models.CustomerDetails) Result {
	a.mu.Lock()
	if a.current == nil {
		a.mu.Unlock()
		return fail("Not logged in.")
	}

	username = strings.TrimSpace(username)
	if username != "" && a.usernameTakenLocked(username, a.current.ID) {
		a.mu.Unlock()
		return fail("Username already taken.")
	}

	for i := range a.users {
		if a.users[i].ID == a.current.ID {
			if username != "" {
				a.users[i].Username = username
			}
			if details != nil {
				copied := *details
				a.users[i].CustomerDetails = &copied
			}
			updated := a.users[i]
			a.current = &updated
			break
		}
	}
	a.persistUsersLocked()
	a.persistSessionLocked()
	session := a.sessionLocked()
	a.mu.Unlock()

	a.subs.notify(session)
	return ok()
}

// VerifyPassword reports whether the logged-in user's password matches.
// Used by the collaborator before ChangePassword.
func (a *Auth) VerifyPassword(password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current != nil &&
		a.current.Provider == models.ProviderCredentials &&
		a.current.Password == password
}

func (a *Auth) usernameTakenLocked(username, excludeID string) bool {
	for _, user := range a.users {
		if user.ID != excludeID && strings.EqualFold(user.Username, username) {
			return true
		}
	}
	return false
}

func (a *Auth) sessionLocked() Session {
	session := Session{}
	if a.current != nil {
		user := *a.current
		session.User = &user
		session.IsLoggedIn = true
		session.IsAdmin = user.Role == models.RoleAdmin
	}
	return session
}

func (a *Auth) persistUsersLocked() {
	if err := storage.Save(a.db, storage.KeyUsers, a.users); err != nil {
		log.Error().Err(err).Msg("failed to persist users")
	}
}

func (a *Auth) persistSessionLocked() {
	if a.current == nil {
		if err := storage.Delete(a.db, storage.KeySession); err != nil {
			log.Error().Err(err).Msg("failed to clear session")
		}
		return
	}
	if err := storage.Save(a.db, storage.KeySession, a.current); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
	}
}
