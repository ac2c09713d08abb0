// Package auth manages registered users and the current session on top of
// the key-value store. Credentials are stored and compared as plaintext;
// this mirrors the original application's local account list and is not a
// security boundary.
package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gallerie-app/gallerie/internal/common"
	"github.com/gallerie-app/gallerie/internal/kv"
	"github.com/gallerie-app/gallerie/internal/logging"
	"github.com/gallerie-app/gallerie/internal/models"
)

// Persisted key-value store keys.
const (
	usersKey   = "gallerie_users"
	sessionKey = "gallerie_user"
)

// now is a test seam for timestamp-derived ids and join dates.
var now = time.Now

// Service is the credential store. All operations are synchronous and local;
// the only failure modes besides storage errors are the two business-rule
// rejections (duplicate email, bad credentials).
type Service struct {
	store kv.Store
	log   logging.Logger
}

func NewService(store kv.Store, log logging.Logger) *Service {
	return &Service{store: store, log: log.With("component", "auth")}
}

// CurrentUser returns the persisted current-session user, or nil when nobody
// is logged in.
func (s *Service) CurrentUser(ctx context.Context) *models.User {
	return kv.GetJSON[*models.User](ctx, s.store, sessionKey, nil)
}

// Login finds the first registered user with an exact, case-sensitive email
// and password match, persists it (password stripped) as the current session
// and returns it. On any mismatch it returns common.ErrInvalidCredentials;
// the error is identical whether the email is unknown or the password wrong,
// so callers cannot probe for registered addresses.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds := kv.GetJSON(ctx, s.store, usersKey, []models.Credential{})

	for _, c := range creds {
		if c.Email == email && c.Password == password {
			user := c.User
			if err := kv.SetJSON(ctx, s.store, sessionKey, user); err != nil {
				return nil, fmt.Errorf("failed to persist session: %w", err)
			}
			s.log.Info(ctx, "user logged in", "user_id", user.ID)
			return &user, nil
		}
	}

	return nil, common.ErrInvalidCredentials
}

// Signup registers a new account and logs it in. It fails with
// common.ErrEmailExists when the email is already registered, leaving the
// current session untouched.
func (s *Service) Signup(ctx context.Context, email, password, fullName string) (*models.User, error) {
	creds := kv.GetJSON(ctx, s.store, usersKey, []models.Credential{})

	for _, c := range creds {
		if c.Email == email {
			return nil, common.ErrEmailExists
		}
	}

	t := now()
	user := models.User{
		ID:       strconv.FormatInt(t.UnixMilli(), 10),
		Email:    email,
		FullName: fullName,
		JoinDate: t.Year(),
	}

	creds = append(creds, models.Credential{User: user, Password: password})
	if err := kv.SetJSON(ctx, s.store, usersKey, creds); err != nil {
		return nil, fmt.Errorf("failed to persist users: %w", err)
	}
	if err := kv.SetJSON(ctx, s.store, sessionKey, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return &user, nil
}

// Logout clears the current-session pointer only; the registered-user list
// is untouched.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, sessionKey)
}
