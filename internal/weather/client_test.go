package weather

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

func TestCurrentWeather_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Москва", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":27.4,"feels_like":29.1},"weather":[{"description":"ясно"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)

	weather, err := client.CurrentWeather(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, 27.4, weather.TempC)
	assert.Equal(t, 29.1, weather.FeelsLikeC)
	assert.Equal(t, "ясно", weather.Description)
}

func TestCurrentWeather_UnknownCity(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)

	_, err := client.CurrentWeather(context.Background(), "Атлантида")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCityNotFound))
	// 404 is permanent, no retries.
	assert.Equal(t, 1, requests)
}

func TestCurrentWeather_RetriesServerErrors(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"main":{"temp":10}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)

	weather, err := client.CurrentWeather(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, 10.0, weather.TempC)
	assert.Equal(t, 3, requests)
}

func TestCurrentWeather_GivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)

	_, err := client.CurrentWeather(context.Background(), "Москва")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrWeatherService))
}
