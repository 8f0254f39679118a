package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

type AuthMode string

const (
	AuthIAM   AuthMode = "iam"
	AuthBasic AuthMode = "basic"
)

const (
	DefaultVersion = "2022-04-07"
	DefaultIAMURL  = "https://iam.cloud.ibm.com/identity/token"
	DefaultLimit   = 5
	DefaultTimeout = 30 * time.Second

	analyzePath     = "/v1/analyze"
	maxErrorPayload = 4 << 10
)

// boilerplate keywords Watson tends to lift from report headings.
var boilerplate = []string{"keywords", "analysis of the medical report"}

type Config struct {
	APIKey   string
	URL      string
	Version  string
	AuthMode AuthMode
	IAMURL   string
	Timeout  time.Duration
	Limit    int
}

// WatsonClient calls the IBM Watson Natural Language Understanding analyze endpoint.
// One attempt per call, no retry. Every failure is reported as errors.ErrService.
type WatsonClient struct {
	cfg      Config
	language string
	client   *http.Client
	tokens   *iamTokenSource
	log      *slog.Logger
}

type analyzeRequest struct {
	Text     string   `json:"text"`
	Language string   `json:"language,omitempty"`
	Features features `json:"features"`
}

type features struct {
	Keywords keywordsOptions `json:"keywords"`
}

type keywordsOptions struct {
	Limit int `json:"limit,omitempty"`
}

type analyzeResponse struct {
	Language string          `json:"language"`
	Keywords []watsonKeyword `json:"keywords"`
}

type watsonKeyword struct {
	Text      string  `json:"text"`
	Relevance float64 `json:"relevance"`
	Count     int     `json:"count"`
}

// watsonError covers both the NLU and the IAM error payloads.
type watsonError struct {
	Error        string `json:"error"`
	Code         int    `json:"code"`
	ErrorMessage string `json:"errorMessage"`
}

func NewWatsonClient(cfg Config, log *slog.Logger) *WatsonClient {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = AuthIAM
	}
	if cfg.IAMURL == "" {
		cfg.IAMURL = DefaultIAMURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}

	client := &http.Client{Timeout: cfg.Timeout}
	c := &WatsonClient{cfg: cfg, client: client, log: log}
	if cfg.AuthMode == AuthIAM {
		c.tokens = newIAMTokenSource(cfg.IAMURL, cfg.APIKey, client)
	}
	return c
}

// ForLanguage returns a client pinned to an ISO 639-1 language code.
// The copy shares the HTTP client and the IAM token cache.
func (c *WatsonClient) ForLanguage(language string) *WatsonClient {
	pinned := *c
	pinned.language = language
	return &pinned
}

// Extract returns the top keywords of text by descending relevance.
func (c *WatsonClient) Extract(ctx context.Context, text string) ([]specialist.Term, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %w", errors.ErrService, errors.ErrEmptyText)
	}

	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(analyzeRequest{
		Text:     text,
		Language: c.language,
		Features: features{Keywords: keywordsOptions{Limit: c.cfg.Limit + len(boilerplate)}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode analyze request: %w", errors.ErrService, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot build analyze request: %w", errors.ErrService, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if err := c.authorize(ctx, httpReq); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: analyze request failed: %w", errors.ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: analyze returned status %d: %s",
			errors.ErrService, resp.StatusCode, readErrorMessage(resp.Body))
	}

	var result analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed analyze response: %w", errors.ErrService, err)
	}
	if result.Keywords == nil {
		return nil, fmt.Errorf("%w: malformed analyze response: no keywords", errors.ErrService)
	}

	terms := rank(result.Keywords, c.cfg.Limit)
	c.log.Debug("NLU keywords extracted",
		"received", len(result.Keywords),
		"kept", len(terms),
		"language", result.Language,
		"latency", time.Since(start))
	return terms, nil
}

func (c *WatsonClient) endpoint() (string, error) {
	u, err := url.Parse(strings.TrimRight(c.cfg.URL, "/") + analyzePath)
	if err != nil {
		return "", fmt.Errorf("%w: invalid service url %q: %w", errors.ErrService, c.cfg.URL, err)
	}
	q := u.Query()
	q.Set("version", c.cfg.Version)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *WatsonClient) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		req.SetBasicAuth("apikey", c.cfg.APIKey)
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// rank drops boilerplate keywords, sorts by relevance (stable) and keeps the top limit.
func rank(keywords []watsonKeyword, limit int) []specialist.Term {
	kept := lo.Filter(keywords, func(k watsonKeyword, _ int) bool {
		text := strings.TrimSpace(k.Text)
		return text != "" && !lo.Contains(boilerplate, strings.ToLower(text))
	})
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Relevance > kept[j].Relevance
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return lo.Map(kept, func(k watsonKeyword, _ int) specialist.Term {
		return specialist.Term{Text: strings.TrimSpace(k.Text), Score: k.Relevance}
	})
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorPayload))
	if err != nil {
		return "unreadable error body"
	}
	var payload watsonError
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.ErrorMessage != "" {
			return payload.ErrorMessage
		}
	}
	return strings.TrimSpace(string(data))
}
