package types

import (
	"context"
	"time"
)

// SpotPrice is one hourly Nord Pool spot price interval.
type SpotPrice struct {
	Time  time.Time
	Price float64 // Price in EUR per MWh as published by the market
}

type PriceProvider interface {
	GetPrices(ctx context.Context) ([]SpotPrice, error)
}
