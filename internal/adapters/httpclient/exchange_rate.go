package httpclient

import (
	"btcrate/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://api.coinbase.com/v2/exchange-rates"

type ExchangeRateClient struct {
	http    *http.Client
	baseURL string
	pair    domain.CurrencyPair
}

type apiResponse struct {
	Data *struct {
		Currency *string           `json:"currency"`
		Rates    map[string]string `json:"rates"`
	} `json:"data"`
}

// FetchRate asks the exchange-rates endpoint for all rates of the base currency
// and returns the quote entry unchanged.
func (c *ExchangeRateClient) FetchRate(ctx context.Context) (string, error) {
	log := logrus.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"base":       c.pair.Base,
		"quote":      c.pair.Quote,
	})

	rate, err := c.fetch(ctx)
	if err != nil {
		log.WithError(err).Warn("Exchange rate fetch failed")
		return "", err
	}

	log.WithField("rate", rate).Info("Exchange rate fetched")
	return rate, nil
}

func (c *ExchangeRateClient) fetch(ctx context.Context) (string, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", domain.ErrInvalidURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request for currency %q: %v", domain.ErrFetch, c.pair.Base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status code %d for currency %q", domain.ErrFetch, resp.StatusCode, c.pair.Base)
	}

	body, err := decodeResponse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode response for currency %q: %v", domain.ErrDecode, c.pair.Base, err)
	}

	rate, ok := body.Data.Rates[c.pair.Quote]
	if !ok {
		return "", fmt.Errorf("%w: no %q rate for currency %q", domain.ErrInvalidResponse, c.pair.Quote, c.pair.Base)
	}
	return rate, nil
}

// decodeResponse accepts exactly one {"data":{"currency":..,"rates":{..}}} object.
func decodeResponse(r io.Reader) (*apiResponse, error) {
	dec := json.NewDecoder(r)

	var body apiResponse
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after response object")
	}

	switch {
	case body.Data == nil:
		return nil, errors.New("missing data object")
	case body.Data.Currency == nil:
		return nil, errors.New("missing data.currency")
	case body.Data.Rates == nil:
		return nil, errors.New("missing data.rates")
	}
	return &body, nil
}

func (c *ExchangeRateClient) endpoint() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse base URL: %v", domain.ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: base URL %q is not absolute", domain.ErrInvalidURL, c.baseURL)
	}

	q := u.Query()
	q.Set("currency", c.pair.Base)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func NewExchangeRateClient(httpClient *http.Client, baseURL string, pair domain.CurrencyPair) *ExchangeRateClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL, pair: pair}
}
