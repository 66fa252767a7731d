package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navfold/navfold/integration/fetch"
)

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "text/html", r.Header.Get("Accept"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		body, err := fetch.New().Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", body)
	})

	t.Run("empty body is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		_, err := fetch.New().Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, fetch.ErrEmptyBody)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := fetch.New().Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, fetch.ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := fetch.New().Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, fetch.ErrRequestFailed)
	})

	t.Run("context cancellation respected", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := fetch.New().Fetch(ctx, srv.URL)
		assert.ErrorIs(t, err, fetch.ErrRequestFailed)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "navfold-test/1.0", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		_, err := fetch.New(fetch.WithUserAgent("navfold-test/1.0")).Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
	})
}
