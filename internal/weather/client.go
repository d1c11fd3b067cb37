package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

const maxRetries = 2

// Client queries the OpenWeatherMap current-weather API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a weather client with a bounded request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type currentWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// CurrentWeather returns the current weather for a city in metric units.
// Transient failures are retried with exponential backoff; an unknown city is
// reported as apperrors.ErrCityNotFound and never retried.
func (c *Client) CurrentWeather(ctx context.Context, city string) (domain.Weather, error) {
	var result domain.Weather

	operation := func() error {
		w, err := c.fetch(ctx, city)
		if err != nil {
			return err
		}
		result = w
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return domain.Weather{}, err
	}
	return result, nil
}

func (c *Client) fetch(ctx context.Context, city string) (domain.Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "ru")

	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Weather{}, backoff.Permanent(apperrors.WeatherServiceError(err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Weather{}, apperrors.WeatherServiceError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return domain.Weather{}, backoff.Permanent(apperrors.CityNotFound(city))
	case resp.StatusCode >= 500:
		return domain.Weather{}, apperrors.WeatherServiceError(fmt.Errorf("weather API returned status %d", resp.StatusCode))
	default:
		return domain.Weather{}, backoff.Permanent(
			apperrors.WeatherServiceError(fmt.Errorf("weather API returned status %d", resp.StatusCode)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Weather{}, apperrors.WeatherServiceError(err)
	}

	var parsed currentWeatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.Weather{}, backoff.Permanent(apperrors.WeatherServiceError(err))
	}

	w := domain.Weather{
		TempC:      parsed.Main.Temp,
		FeelsLikeC: parsed.Main.FeelsLike,
	}
	if len(parsed.Weather) > 0 {
		w.Description = parsed.Weather[0].Description
	}
	return w, nil
}
