package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type TMDBConfig struct {
	BaseURL  string
	Token    string
	Language string
}

// TMDBService proxies movie searches to The Movie Database.
type TMDBService struct {
	HTTPClient *http.Client
	config     TMDBConfig
}

func NewTMDBService(config TMDBConfig) *TMDBService {
	return &TMDBService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		config:     config,
	}
}

type tmdbSearchResponse struct {
	Results []json.RawMessage `json:"results"`
}

// SearchMovies returns the raw result objects of /search/movie.
func (s *TMDBService) SearchMovies(ctx context.Context, query string) ([]json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(s.config.Token) == "" {
		return nil, fmt.Errorf("tmdb token: %w", ErrNotConfigured)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	if s.config.Language != "" {
		params.Set("language", s.config.Language)
	}
	endpoint := strings.TrimRight(s.config.BaseURL, "/") + "/search/movie?" + params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+s.config.Token)
	request.Header.Set("Accept", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer response.Body.Close()
	if response.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, response.StatusCode)
	}

	var payload tmdbSearchResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if payload.Results == nil {
		payload.Results = []json.RawMessage{}
	}
	return payload.Results, nil
}
