// README: Weather provider client; route conditions feed the weather multiplier.
package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// WeatherReport is one sampled point's forecast.
type WeatherReport struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

type WeatherClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewWeatherClient(baseURL string, timeout time.Duration, logger *zap.Logger) *WeatherClient {
	return &WeatherClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Conditions fetches the forecast for one coordinate and date. Callers treat
// any error as a degraded signal and substitute the neutral multiplier.
func (c *WeatherClient) Conditions(ctx context.Context, lat, lng float64, date time.Time) (WeatherReport, error) {
	url := fmt.Sprintf("%s/v1/forecast?lat=%f&lng=%f&date=%s",
		c.baseURL, lat, lng, date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("weather provider returned non-OK",
			zap.Int("status", resp.StatusCode),
			zap.String("url", url))
		return WeatherReport{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var report WeatherReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return WeatherReport{}, fmt.Errorf("decode response: %w", err)
	}
	return report, nil
}
