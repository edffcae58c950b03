package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchReturnsURLsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "scenery", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"photos":[
			{"src":{"medium":"https://img.test/1.jpg"}},
			{"src":{"medium":"https://img.test/2.jpg"}},
			{"src":{"medium":"https://img.test/3.jpg"}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 10)
	urls, err := client.Batch(context.Background(), "scenery")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://img.test/1.jpg",
		"https://img.test/2.jpg",
		"https://img.test/3.jpg",
	}, urls)
}

func TestBatchEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"photos":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 10)
	urls, err := client.Batch(context.Background(), "scenery")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestBatchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 10)
	_, err := client.Batch(context.Background(), "scenery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestBatchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"photos":`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 10)
	_, err := client.Batch(context.Background(), "scenery")
	assert.Error(t, err)
}
