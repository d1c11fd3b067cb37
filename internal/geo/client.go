package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ringsaturn/tzf"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
)

const timezoneCacheSize = 256

// Client resolves a city name to its current calendar date: it geocodes the
// city through Nominatim, maps the coordinates to an IANA timezone and reads
// off today's date in that zone. City to timezone resolution is cached, the
// timezone of a city does not change.
type Client struct {
	httpClient *http.Client
	baseURL    string
	finder     tzf.F
	tzCache    *lru.Cache[string, string]
	now        func() time.Time
}

// NewClient creates a geo client. Building the timezone finder parses the
// embedded polygon data once at startup.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to build timezone finder: %w", err)
	}

	cache, err := lru.New[string, string](timezoneCacheSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		finder:     finder,
		tzCache:    cache,
		now:        time.Now,
	}, nil
}

// CurrentDate returns today's date ("2006-01-02") in the city's timezone.
func (c *Client) CurrentDate(ctx context.Context, city string) (string, error) {
	tzName, err := c.resolveTimezone(ctx, city)
	if err != nil {
		return "", err
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrorTypeExternal, "TZ_UNRESOLVABLE",
			fmt.Sprintf("unknown timezone %q for city %q", tzName, city))
	}

	return c.now().In(loc).Format("2006-01-02"), nil
}

func (c *Client) resolveTimezone(ctx context.Context, city string) (string, error) {
	if tzName, ok := c.tzCache.Get(city); ok {
		return tzName, nil
	}

	lat, lon, err := c.geocode(ctx, city)
	if err != nil {
		return "", err
	}

	tzName := c.finder.GetTimezoneName(lon, lat)
	if tzName == "" {
		return "", apperrors.New(apperrors.ErrorTypeExternal, "TZ_UNRESOLVABLE",
			fmt.Sprintf("no timezone for city %q", city)).
			WithContext("lat", lat).
			WithContext("lon", lon)
	}

	c.tzCache.Add(city, tzName)
	return tzName, nil
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) geocode(ctx context.Context, city string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, apperrors.ExternalAPIError(err, "geocoder")
	}
	// Nominatim usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", "fitness-helper-bot")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, apperrors.ExternalAPIError(err, "geocoder")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, apperrors.ExternalAPIError(
			fmt.Errorf("geocoder returned status %d", resp.StatusCode), "geocoder")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, apperrors.ExternalAPIError(err, "geocoder")
	}

	var results []geocodeResult
	if err := json.Unmarshal(body, &results); err != nil {
		return 0, 0, apperrors.ExternalAPIError(err, "geocoder")
	}
	if len(results) == 0 {
		return 0, 0, apperrors.CityNotFound(city)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, apperrors.ExternalAPIError(err, "geocoder")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, apperrors.ExternalAPIError(err, "geocoder")
	}

	return lat, lon, nil
}
