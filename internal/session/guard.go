// Package session tracks the service's session with the remote booking
// store's auth service: an access/refresh token pair obtained from the
// refresh endpoint.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"ceremonia/internal/domain"
)

// expiryLeeway treats tokens about to expire as already expired, so a write
// started "just in time" does not race the cutoff.
const expiryLeeway = 30 * time.Second

type Guard struct {
	client     *http.Client
	refreshURL string
	strategy   retry.Strategy
	log        logger.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func New(baseURL, refreshPath, refreshToken string, timeout time.Duration, log logger.Logger) *Guard {
	return &Guard{
		client:     &http.Client{Timeout: timeout},
		refreshURL: baseURL + refreshPath,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		log:          log,
		refreshToken: refreshToken,
	}
}

// IsAuthenticated reports whether the current access token is present and
// not expired. Only the exp claim is inspected; signature verification is the
// auth service's job, liveness is all the coordinator needs here.
func (g *Guard) IsAuthenticated(_ context.Context) bool {
	g.mu.Lock()
	token := g.accessToken
	g.mu.Unlock()

	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return time.Now().Add(expiryLeeway).Before(exp.Time)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Error        string `json:"error,omitempty"`
}

// Refresh exchanges the refresh token for a fresh pair. Failures wrap
// domain.ErrAuthRefresh so callers can surface re-authentication as an
// actionable condition.
func (g *Guard) Refresh(ctx context.Context) error {
	g.mu.Lock()
	refreshToken := g.refreshToken
	g.mu.Unlock()

	if refreshToken == "" {
		return fmt.Errorf("%w: no refresh token configured", domain.ErrAuthRefresh)
	}

	body, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", domain.ErrAuthRefresh, err)
	}

	var resp refreshResponse
	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.refreshURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("auth service returned %d", res.StatusCode)
		}

		resp = refreshResponse{}
		return json.NewDecoder(res.Body).Decode(&resp)
	}, g.strategy)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuthRefresh, err)
	}

	if resp.Error != "" {
		return fmt.Errorf("%w: %s", domain.ErrAuthRefresh, resp.Error)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("%w: auth service returned no access token", domain.ErrAuthRefresh)
	}

	g.mu.Lock()
	g.accessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		g.refreshToken = resp.RefreshToken
	}
	g.mu.Unlock()

	g.log.Info("session refreshed")

	return nil
}
