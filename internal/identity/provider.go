package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidSession means the provider rejected the session id.
var ErrInvalidSession = errors.New("identity: invalid session")

// Profile is what the hosted identity provider returns for a valid session
// id. SessionToken is the opaque token the provider minted; it becomes the
// server-side session key.
type Profile struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Provider exchanges a provider session id for the authenticated profile.
// The ledger never talks to the provider directly; it only sees the
// identity this interface resolves.
type Provider interface {
	Exchange(ctx context.Context, sessionID string) (*Profile, error)
}

type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *HTTPProvider) Exchange(ctx context.Context, sessionID string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidSession
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("identity: decoding profile: %w", err)
	}

	if profile.Email == "" || profile.SessionToken == "" {
		return nil, ErrInvalidSession
	}

	return &profile, nil
}
