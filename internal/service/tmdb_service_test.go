package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "matrix", r.URL.Query().Get("query"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"Matrix"}]}`))
	}))
	defer server.Close()

	svc := NewTMDBService(TMDBConfig{BaseURL: server.URL + "/", Token: "secret", Language: "pt-BR"})
	results, err := svc.SearchMovies(context.Background(), " matrix ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.JSONEq(t, `{"id":603,"title":"Matrix"}`, string(results[0]))
}

func TestSearchMoviesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	ctx := context.Background()

	svc := NewTMDBService(TMDBConfig{BaseURL: server.URL, Token: "secret"})
	_, err := svc.SearchMovies(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SearchMovies(ctx, "matrix")
	assert.ErrorIs(t, err, ErrUpstream)

	unconfigured := NewTMDBService(TMDBConfig{BaseURL: server.URL})
	_, err = unconfigured.SearchMovies(ctx, "matrix")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSearchMoviesEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page":1}`))
	}))
	defer server.Close()

	svc := NewTMDBService(TMDBConfig{BaseURL: server.URL, Token: "secret"})
	results, err := svc.SearchMovies(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
