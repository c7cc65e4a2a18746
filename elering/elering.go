package elering

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Mpukk3/electricity-twitter-bot/types"
)

const defaultBaseUrl = "https://dashboard.elering.ee/api/nps/price"

type priceEntry struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

type priceResponse struct {
	Success bool                    `json:"success"`
	Data    map[string][]priceEntry `json:"data"`
}

// Elering fetches Nord Pool day-ahead prices from the Elering dashboard API.
// Prices are EUR/MWh at hourly resolution, keyed by area ("ee", "fi", "lv", "lt").
type Elering struct {
	area    string
	baseUrl string
}

func New(area string) Elering {
	return Elering{area: area, baseUrl: defaultBaseUrl}
}

func (e Elering) GetPrices(ctx context.Context) ([]types.SpotPrice, error) {
	t := time.Now()
	return e.getPrices(ctx, t, t.AddDate(0, 0, 1))
}

func (e Elering) getPrices(ctx context.Context, start, end time.Time) ([]types.SpotPrice, error) {
	url := fmt.Sprintf("%s?start=%s&end=%s",
		e.baseUrl,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	entries, ok := data.Data[e.area]
	if !ok {
		return nil, fmt.Errorf("no prices for area %q in response", e.area)
	}

	prices := make([]types.SpotPrice, 0, len(entries))
	for _, entry := range entries {
		prices = append(prices, types.SpotPrice{
			Time:  time.Unix(entry.Timestamp, 0),
			Price: entry.Price,
		})
	}

	return prices, nil
}
