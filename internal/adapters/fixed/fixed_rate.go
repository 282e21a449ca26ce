package fixed

import (
	"context"
)

// RateClient serves a preset rate or error without touching the network.
type RateClient struct {
	rate string
	err  error
}

func (c *RateClient) FetchRate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.err != nil {
		return "", c.err
	}
	return c.rate, nil
}

func NewRateClient(rate string) *RateClient {
	return &RateClient{rate: rate}
}

func NewFailingRateClient(err error) *RateClient {
	return &RateClient{err: err}
}
