package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"image-verifier/core/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("TrimsTrailingSlash", func(t *testing.T) {
		c := client.NewClient("http://127.0.0.1:8081/", client.Config{})
		assert.Equal(t, "http://127.0.0.1:8081", c.BaseURL())
	})

	t.Run("KeepsBaseURL", func(t *testing.T) {
		c := client.NewClient("http://localhost:9000", client.Config{Timeout: time.Second})
		assert.Equal(t, "http://localhost:9000", c.BaseURL())
	})
}

func TestClient_Get(t *testing.T) {
	var gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	c := client.NewClient(srv.URL, client.Config{Timeout: time.Second, UserAgent: "probe/1"})
	resp, err := c.Get(context.Background(), "/pot")
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.ContentType())
	assert.Equal(t, "short and stout", string(resp.Body))
	assert.Equal(t, "probe/1", gotUA)
	assert.Equal(t, "/pot", gotPath)
}

func TestClient_Get_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := client.NewClient(srv.URL, client.Config{Timeout: 50 * time.Millisecond})
	start := time.Now()
	_, err := c.Get(context.Background(), "/slow")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_Get_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := client.NewClient(addr, client.Config{Timeout: time.Second})
	_, err := c.Get(context.Background(), "/image")
	assert.Error(t, err)
}

func TestClient_Get_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := client.NewClient(srv.URL, client.Config{Timeout: time.Second})
	_, err := c.Get(ctx, "/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestResponse_ContentTypeMissing(t *testing.T) {
	resp := &client.Response{Header: http.Header{}}
	assert.Equal(t, "", resp.ContentType())
}
