package food

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

// Client searches the OpenFoodFacts database by free-text product name.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a food client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Lookup returns the first product matching the name and its energy density
// per 100 g. An empty search result is a valid no-match outcome, not an error.
func (c *Client) Lookup(ctx context.Context, name string) (domain.FoodInfo, bool, error) {
	var (
		info  domain.FoodInfo
		found bool
	)

	operation := func() error {
		i, ok, err := c.search(ctx, name)
		if err != nil {
			return err
		}
		info, found = i, ok
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return domain.FoodInfo{}, false, err
	}
	return info, found, nil
}

func (c *Client) search(ctx context.Context, name string) (domain.FoodInfo, bool, error) {
	params := url.Values{}
	params.Set("action", "process")
	params.Set("search_terms", name)
	params.Set("json", "true")

	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.FoodInfo{}, false, backoff.Permanent(apperrors.ExternalAPIError(err, "food"))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.FoodInfo{}, false, apperrors.ExternalAPIError(err, "food")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := apperrors.ExternalAPIError(fmt.Errorf("food API returned status %d", resp.StatusCode), "food")
		if resp.StatusCode >= 500 {
			return domain.FoodInfo{}, false, err
		}
		return domain.FoodInfo{}, false, backoff.Permanent(err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FoodInfo{}, false, apperrors.ExternalAPIError(err, "food")
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.FoodInfo{}, false, backoff.Permanent(apperrors.ExternalAPIError(err, "food"))
	}

	if len(parsed.Products) == 0 {
		return domain.FoodInfo{}, false, nil
	}

	first := parsed.Products[0]
	displayName := first.ProductName
	if displayName == "" {
		displayName = name
	}

	return domain.FoodInfo{
		Name:            displayName,
		CaloriesPer100g: first.Nutriments.EnergyKcal100g,
	}, true, nil
}
