package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

type memoryStore struct {
	identifier string
	cookie     string
	cleared    bool
}

func (m *memoryStore) UpdateAuth(identifier, cookie string) error {
	m.identifier, m.cookie = identifier, cookie
	return nil
}

func (m *memoryStore) ClearAuth() error {
	m.identifier, m.cookie, m.cleared = "", "", true
	return nil
}

func fakeBackend(t *testing.T, profile string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			var req models.LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "rahasia" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s3ss10n", Path: "/"})
			_, _ = io.WriteString(w, `{"message":"Login success","user":{"id":"u-1","email":"admin@example.com"}}`)
		case "/user/profile/me":
			if r.Header.Get("Cookie") != "sid=s3ss10n" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Unauthorized"}`)
				return
			}
			_, _ = io.WriteString(w, profile)
		case "/auth/logout":
			_, _ = io.WriteString(w, `{"message":"Logged out"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin(t *testing.T) {
	t.Run("stores the cookie and loads the profile", func(t *testing.T) {
		srv := fakeBackend(t, `{"data":{"id":"u-1","username":"admin","email":"admin@example.com","level":"ADMIN"}}`)
		store := &memoryStore{}
		s := New(api.NewClient(srv.URL), store)
		assert.Equal(t, Unauthenticated, s.State())

		out, err := s.Login(context.Background(), models.LoginRequest{Identifier: "admin@example.com", Password: "rahasia"})
		require.NoError(t, err)
		assert.Equal(t, "Login success", out.Message)

		assert.Equal(t, Authenticated, s.State())
		assert.Equal(t, "sid=s3ss10n", store.cookie)
		assert.Equal(t, "admin@example.com", store.identifier)
		require.NotNil(t, s.Profile())
		assert.Equal(t, models.LevelAdmin, s.Profile().Level)
	})

	t.Run("wrong password fails the session", func(t *testing.T) {
		srv := fakeBackend(t, `{}`)
		store := &memoryStore{}
		s := New(api.NewClient(srv.URL), store)

		_, err := s.Login(context.Background(), models.LoginRequest{Identifier: "admin", Password: "nope"})
		assert.EqualError(t, err, "Invalid credentials")
		assert.Equal(t, Failed, s.State())
		assert.Equal(t, err, s.Err())
		assert.Empty(t, store.cookie)
	})
}

func TestResume(t *testing.T) {
	t.Run("profile wrapped as user", func(t *testing.T) {
		srv := fakeBackend(t, `{"user":{"id":"u-2","username":"ops","level":"MERCHANT"}}`)
		s := New(api.NewClient(srv.URL, api.WithCookie("sid=s3ss10n")), nil)
		assert.Equal(t, Authenticating, s.State())

		p, err := s.Resume(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ops", p.Username)
		assert.Equal(t, Authenticated, s.State())
	})

	t.Run("expired cookie is simply unauthenticated", func(t *testing.T) {
		srv := fakeBackend(t, `{}`)
		s := New(api.NewClient(srv.URL, api.WithCookie("sid=expired")), nil)

		_, err := s.Resume(context.Background())
		assert.True(t, errors.Is(err, ErrNotAuthenticated))
		assert.Equal(t, Unauthenticated, s.State())
	})

	t.Run("no cookie at all", func(t *testing.T) {
		s := New(api.NewClient("http://backend.invalid"), nil)
		_, err := s.Resume(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("malformed profile", func(t *testing.T) {
		srv := fakeBackend(t, `{"status":true}`)
		s := New(api.NewClient(srv.URL, api.WithCookie("sid=s3ss10n")), nil)

		_, err := s.Resume(context.Background())
		var shape *api.ShapeError
		assert.ErrorAs(t, err, &shape)
		assert.Equal(t, Failed, s.State())
	})
}

func TestLogout(t *testing.T) {
	srv := fakeBackend(t, `{"data":{"id":"u-1"}}`)
	store := &memoryStore{identifier: "admin", cookie: "sid=s3ss10n"}
	client := api.NewClient(srv.URL, api.WithCookie("sid=s3ss10n"))
	s := New(client, store)

	require.NoError(t, s.Logout(context.Background()))
	assert.True(t, store.cleared)
	assert.Empty(t, client.Cookie())
	assert.Equal(t, Unauthenticated, s.State())
	assert.Nil(t, s.Profile())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "error", Failed.String())
}
