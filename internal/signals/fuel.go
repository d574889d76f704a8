// README: Fuel price provider client; the period-over-period trend feeds the
// fuel multiplier.
package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type FuelClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewFuelClient(baseURL string, timeout time.Duration, logger *zap.Logger) *FuelClient {
	return &FuelClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type fuelTrendResponse struct {
	ChangeRatio float64   `json:"change_ratio"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// TrendRatio returns the national diesel price change ratio for the current
// period (0.05 = +5%). Errors degrade to the neutral multiplier upstream.
func (c *FuelClient) TrendRatio(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/prices/trend", c.baseURL), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("fuel provider returned non-OK",
			zap.Int("status", resp.StatusCode))
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var trend fuelTrendResponse
	if err := json.NewDecoder(resp.Body).Decode(&trend); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return trend.ChangeRatio, nil
}
