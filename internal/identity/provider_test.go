package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeValidSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-123", r.Header.Get("X-Session-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"email": "pat@example.com",
			"name": "Pat Doe",
			"picture": "https://img.example/pat.webp",
			"session_token": "tok-abc"
		}`))
	}))
	defer srv.Close()

	profile, err := NewHTTPProvider(srv.URL).Exchange(context.Background(), "sess-123")
	require.NoError(t, err)

	assert.Equal(t, "pat@example.com", profile.Email)
	assert.Equal(t, "Pat Doe", profile.Name)
	assert.Equal(t, "tok-abc", profile.SessionToken)
}

func TestExchangeRejectedSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL).Exchange(context.Background(), "bad-session")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestExchangeIncompleteProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "No Email"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL).Exchange(context.Background(), "sess-123")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestExchangeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL).Exchange(context.Background(), "sess-123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSession)
}
