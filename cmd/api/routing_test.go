package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config{RateLimitRPS: 1000, RateLimitBurst: 1000, MaxBodyBytes: 1 << 10}
	rl := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	t.Cleanup(rl.Close)

	srv := httptest.NewServer(newRouter(cfg, book.NewService(book.NewMemoryRepository(nil)), rl))
	t.Cleanup(srv.Close)
	return srv
}

type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		BookID string         `json:"bookId"`
		Book   book.Book      `json:"book"`
		Books  []book.Summary `json:"books"`
	} `json:"data"`
}

func call(t *testing.T, method, url, body string) (*http.Response, apiResponse) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestRouter_BookLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, created := call(t, http.MethodPost, srv.URL+"/books",
		`{"name":"Dunia Sophie","year":2010,"author":"John Doe","summary":"S","publisher":"Dicoding","pageCount":200,"readPage":200,"reading":false}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", created.Status)
	assert.NotEmpty(t, resp.Header.Get(httpx.RequestIDHeader))
	id := created.Data.BookID
	require.NotEmpty(t, id)

	resp, got := call(t, http.MethodGet, srv.URL+"/books/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, got.Data.Book.Finished)
	insertedAt := got.Data.Book.InsertedAt

	resp, listed := call(t, http.MethodGet, srv.URL+"/books", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []book.Summary{{ID: id, Name: "Dunia Sophie", Publisher: "Dicoding"}}, listed.Data.Books)

	resp, _ = call(t, http.MethodPut, srv.URL+"/books/"+id,
		`{"name":"Dunia Sophie","year":2011,"author":"John Doe","summary":"S","publisher":"Dicoding","pageCount":200,"readPage":10,"reading":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, got = call(t, http.MethodGet, srv.URL+"/books/"+id, "")
	assert.Equal(t, id, got.Data.Book.ID)
	assert.True(t, insertedAt.Equal(got.Data.Book.InsertedAt))
	assert.False(t, got.Data.Book.UpdatedAt.Before(insertedAt))
	assert.False(t, got.Data.Book.Finished)
	assert.True(t, got.Data.Book.Reading)

	resp, _ = call(t, http.MethodDelete, srv.URL+"/books/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, deleted := call(t, http.MethodDelete, srv.URL+"/books/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "fail", deleted.Status)
}

func TestRouter_Rejections(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "empty name", method: http.MethodPost, path: "/books", body: `{"name":"","pageCount":100,"readPage":50}`, expectedStatus: http.StatusBadRequest},
		{name: "read page too high", method: http.MethodPost, path: "/books", body: `{"name":"X","pageCount":100,"readPage":150}`, expectedStatus: http.StatusBadRequest},
		{name: "unknown id", method: http.MethodGet, path: "/books/nope", expectedStatus: http.StatusNotFound},
		{name: "unrouted path", method: http.MethodGet, path: "/books/", expectedStatus: http.StatusNotFound},
		{name: "known path wrong method", method: http.MethodPatch, path: "/books/nope", expectedStatus: http.StatusMethodNotAllowed},
		{name: "body too large", method: http.MethodPost, path: "/books", body: `{"name":"` + strings.Repeat("x", 2048) + `"}`, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := call(t, tt.method, srv.URL+tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	_, listed := call(t, http.MethodGet, srv.URL+"/books", "")
	assert.Empty(t, listed.Data.Books)
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestRouter_UnroutedPathUsesEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, body := call(t, http.MethodGet, srv.URL+"/books/", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "fail", body.Status)
	assert.NotEmpty(t, body.Message)
}
