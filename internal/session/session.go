// Package session models the signed-in operator as an explicit object that
// commands and page controllers receive, instead of fetching it implicitly.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

// State is the authentication lifecycle
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	Failed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// ErrNotAuthenticated is returned when an operation needs a session
var ErrNotAuthenticated = errors.New("not logged in")

// Store persists the session cookie between invocations
type Store interface {
	UpdateAuth(identifier, cookie string) error
	ClearAuth() error
}

// Session owns the client credentials and the signed-in profile
type Session struct {
	mu      sync.RWMutex
	client  *api.Client
	store   Store
	state   State
	profile *models.Profile
	err     error
}

// New creates a session bound to client. A client that already carries a
// cookie starts out Authenticating until Resume confirms it.
func New(client *api.Client, store Store) *Session {
	s := &Session{client: client, store: store}
	if client.Cookie() != "" {
		s.state = Authenticating
	}
	return s
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Profile returns the signed-in user, if any
func (s *Session) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Err returns the failure that moved the session to Failed
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Client returns the credentialed transport
func (s *Session) Client() *api.Client {
	return s.client
}

func (s *Session) transition(state State, profile *models.Profile, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.profile = profile
	s.err = err
}

// Login signs in and persists the returned session cookie.
func (s *Session) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	s.transition(Authenticating, nil, nil)

	resp, err := s.client.Do(ctx, api.Request{Method: http.MethodPost, Path: "/auth/login", Body: req})
	if err != nil {
		s.transition(Failed, nil, err)
		return nil, err
	}

	var out models.LoginResponse
	_ = json.Unmarshal(resp.Body, &out)

	if cookie := api.SessionCookie(resp.Cookies); cookie != "" {
		s.client.SetCookie(cookie)
	}
	if s.store != nil {
		if err := s.store.UpdateAuth(req.Identifier, s.client.Cookie()); err != nil {
			s.transition(Failed, nil, err)
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}

	if _, err := s.Resume(ctx); err != nil {
		return &out, err
	}
	return &out, nil
}

// Resume confirms the current cookie by loading the profile. A 401 means
// the session is simply absent.
func (s *Session) Resume(ctx context.Context) (*models.Profile, error) {
	if s.client.Cookie() == "" {
		s.transition(Unauthenticated, nil, nil)
		return nil, ErrNotAuthenticated
	}
	s.transition(Authenticating, nil, nil)

	profile, err := FetchProfile(ctx, s.client)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.transition(Unauthenticated, nil, nil)
			return nil, ErrNotAuthenticated
		}
		s.transition(Failed, nil, err)
		return nil, err
	}

	s.transition(Authenticated, profile, nil)
	return profile, nil
}

// Logout ends the backend session and forgets the cookie locally, even when
// the backend call fails.
func (s *Session) Logout(ctx context.Context) error {
	_, err := s.client.Do(ctx, api.Request{Method: http.MethodPost, Path: "/auth/logout"})

	s.client.SetCookie("")
	s.transition(Unauthenticated, nil, nil)
	if s.store != nil {
		if cerr := s.store.ClearAuth(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Register creates a buyer account
func Register(ctx context.Context, client *api.Client, req models.RegisterRequest) error {
	_, err := client.Do(ctx, api.Request{Method: http.MethodPost, Path: "/auth/register", Body: req})
	return err
}

// FetchProfile loads the signed-in user. The backend answers either
// {data: profile} or {user: profile}.
func FetchProfile(ctx context.Context, client *api.Client) (*models.Profile, error) {
	resp, err := client.Do(ctx, api.Request{Method: http.MethodGet, Path: "/user/profile/me"})
	if err != nil {
		return nil, err
	}

	if d, err := api.NormalizeDetail[models.Profile](resp.Body); err == nil {
		return &d.Data, nil
	}

	var wrapped struct {
		User *models.Profile `json:"user"`
	}
	if err := json.Unmarshal(resp.Body, &wrapped); err != nil || wrapped.User == nil {
		return nil, &api.ShapeError{Field: "data", Body: resp.Body}
	}
	return wrapped.User, nil
}
