package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rdSoftInc/DevConnect/internal/config"
)

// GithubService public repository listing for a GitHub user
type GithubService interface {
	Repos(ctx context.Context, username string) (json.RawMessage, error)
}

type githubService struct {
	cfg        config.GitHubConfig
	httpClient *http.Client
}

// NewGithubService creates a GithubService. A nil client gets one with the
// configured timeout.
func NewGithubService(cfg config.GitHubConfig, httpClient *http.Client) GithubService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &githubService{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// Repos returns the user's five oldest repositories as GitHub sent them
func (s *githubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrGithubNotFound
	}

	query := url.Values{}
	query.Set("per_page", "5")
	query.Set("sort", "created")
	query.Set("direction", "asc")
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", s.cfg.APIURL, url.PathEscape(username), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrGithubNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read github response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("github returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
