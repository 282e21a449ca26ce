package adapters

import (
	"context"
)

// RateFetcher returns the current rate of one currency pair as a decimal string.
type RateFetcher interface {
	FetchRate(ctx context.Context) (string, error)
}
