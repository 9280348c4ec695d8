package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestOpen_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	rc, err := Default().Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello", readAll(t, rc))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Default().Open(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()

	rc, err := Default().Open(context.Background(), srv.URL+"/chart.csv")
	require.NoError(t, err)
	assert.Equal(t, "remote", readAll(t, rc))
}

func TestOpen_HTTPRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	o := New(Config{Timeout: 5 * time.Second, RetryMax: 3})
	rc, err := o.Open(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", readAll(t, rc))
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpen_HTTPNotFoundFailsFast(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Default().Open(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/a.csv"))
	assert.True(t, IsRemote("HTTP://example.com/a.csv"))
	assert.False(t, IsRemote("/data/a.csv"))
	assert.False(t, IsRemote("AeroplanChart.csv"))
}
