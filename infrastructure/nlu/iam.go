package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"medical-panel/errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"
	// tokens are renewed this long before they expire
	tokenRefreshMargin = time.Minute
)

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}

// iamTokenSource exchanges an IBM Cloud API key for a bearer token and caches it.
// Concurrent callers share a single exchange.
type iamTokenSource struct {
	url    string
	apiKey string
	client *http.Client
	now    func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newIAMTokenSource(endpoint, apiKey string, client *http.Client) *iamTokenSource {
	return &iamTokenSource{url: endpoint, apiKey: apiKey, client: client, now: time.Now}
}

func (s *iamTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiry.Add(-tokenRefreshMargin)) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: cannot build IAM request: %w", errors.ErrService, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: IAM token request failed: %w", errors.ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: IAM token request returned status %d: %s",
			errors.ErrService, resp.StatusCode, readErrorMessage(resp.Body))
	}

	var payload iamTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: malformed IAM token response: %w", errors.ErrService, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: malformed IAM token response: no access token", errors.ErrService)
	}

	s.token = payload.AccessToken
	switch {
	case payload.Expiration > 0:
		s.expiry = time.Unix(payload.Expiration, 0)
	default:
		s.expiry = s.now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	}
	return s.token, nil
}
