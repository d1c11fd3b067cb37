package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
)

func moscowServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`[{"lat":"55.7558","lon":"37.6173"}]`))
	}))
}

func TestCurrentDate_UsesCityTimezone(t *testing.T) {
	server := moscowServer(t, nil)
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	// 22:30 UTC is already past midnight in Moscow (UTC+3).
	client.now = func() time.Time {
		return time.Date(2026, 8, 29, 22, 30, 0, 0, time.UTC)
	}

	date, err := client.CurrentDate(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", date)
}

func TestCurrentDate_CachesTimezone(t *testing.T) {
	hits := 0
	server := moscowServer(t, &hits)
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.CurrentDate(context.Background(), "Москва")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, hits)
}

func TestCurrentDate_UnknownCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.CurrentDate(context.Background(), "Атлантида")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCityNotFound))
}

func TestCurrentDate_GeocoderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.CurrentDate(context.Background(), "Москва")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrCityNotFound))
}
