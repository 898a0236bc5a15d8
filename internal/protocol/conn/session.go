package conn

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// sessionServiceURL is the Mojang session-service endpoint consulted in the
// online-mode login path.
const sessionServiceURL = "https://sessionserver.mojang.com/session/minecraft/hasJoined"

// SessionClient wraps the plain net/http.Client used to verify a joining
// player's session. No pack repo offers an HTTP client library better
// suited to a single unauthenticated GET than net/http itself (see
// DESIGN.md).
type SessionClient struct {
	httpClient *http.Client
}

// NewSessionClient builds a SessionClient with a bounded request timeout —
// this call sits on the connection's own goroutine and must not block it
// indefinitely.
func NewSessionClient() *SessionClient {
	return &SessionClient{httpClient: &http.Client{Timeout: 10 * time.Second}}
}

// HasJoined calls the session service for username/serverHash. It reports
// whether the client has joined (HTTP 200) and wraps any non-200 response in
// ErrExternal.
func (c *SessionClient) HasJoined(username, serverHash string) (bool, error) {
	u, err := url.Parse(sessionServiceURL)
	if err != nil {
		return false, fmt.Errorf("parse session service url: %w", err)
	}
	q := u.Query()
	q.Set("username", username)
	q.Set("serverId", serverHash)
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: session service returned %d", ErrExternal, resp.StatusCode)
	}
	return true, nil
}
