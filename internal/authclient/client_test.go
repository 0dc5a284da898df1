package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// newBackend serves POST /user/login with the given handler.
func newBackend(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/user/login", h)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	var got Credentials
	var reqID string
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		reqID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"token":"abc","grantType":"Bearer"}`))
	})

	c := New(srv.URL+"/user/login", time.Second)
	token, err := c.Login(context.Background(), Credentials{UserID: "alice", UserPw: "pw123"})
	require.NoError(t, err)
	require.Equal(t, "abc", token)
	require.Equal(t, Credentials{UserID: "alice", UserPw: "pw123"}, got)
	require.Len(t, reqID, 36)
}

func TestLoginWireFormat(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"token":"t"}`))
	})

	_, err := New(srv.URL+"/user/login", time.Second).Login(context.Background(), Credentials{UserID: "a", UserPw: "b"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"userId": "a", "userPw": "b"}, raw)
}

func TestLoginRejected(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `{"token":""}`, `null`, `{"message":"invalid"}`} {
		srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		_, err := New(srv.URL+"/user/login", time.Second).Login(context.Background(), Credentials{UserID: "alice", UserPw: "x"})
		require.ErrorIs(t, err, ErrRejected, body)
	}
}

func TestLoginTransportFailures(t *testing.T) {
	t.Parallel()

	t.Run("status", func(t *testing.T) {
		srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		_, err := New(srv.URL+"/user/login", time.Second).Login(context.Background(), Credentials{UserID: "a", UserPw: "b"})

		var te *TransportError
		require.True(t, errors.As(err, &te))
		require.Equal(t, http.StatusInternalServerError, te.Status)
		require.False(t, errors.Is(err, ErrRejected))
	})

	t.Run("bad body", func(t *testing.T) {
		srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})
		_, err := New(srv.URL+"/user/login", time.Second).Login(context.Background(), Credentials{UserID: "a", UserPw: "b"})

		var te *TransportError
		require.True(t, errors.As(err, &te))
		require.Equal(t, http.StatusOK, te.Status)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL + "/user/login"
		srv.Close()

		_, err := New(url, time.Second).Login(context.Background(), Credentials{UserID: "a", UserPw: "b"})
		var te *TransportError
		require.True(t, errors.As(err, &te))
		require.Zero(t, te.Status)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		_, err := New(srv.URL+"/user/login", 50*time.Millisecond).Login(context.Background(), Credentials{UserID: "a", UserPw: "b"})
		var te *TransportError
		require.True(t, errors.As(err, &te))
	})

	t.Run("cancelled", func(t *testing.T) {
		srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(srv.URL+"/user/login", time.Second).Login(ctx, Credentials{UserID: "a", UserPw: "b"})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestTokenSubject(t *testing.T) {
	t.Parallel()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte("k"))
	require.NoError(t, err)

	require.Equal(t, "alice", TokenSubject(signed))
	require.Equal(t, "", TokenSubject("abc"))
}
