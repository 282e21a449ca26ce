package rate

import (
	"btcrate/internal/domain"
	"errors"
	"regexp"
)

var (
	ErrBaseRequired  = errors.New("base currency is required")
	ErrQuoteRequired = errors.New("quote currency is required")
	ErrSameCodes     = errors.New("base and quote must be different")
	ErrBaseInvalid   = errors.New("base currency code is malformed")
	ErrQuoteInvalid  = errors.New("quote currency code is malformed")
)

// fiat codes are 3 letters, crypto tickers go up to a handful of alphanumerics (USDC, 1INCH)
var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

func ValidatePair(pair domain.CurrencyPair) error {
	if pair.Base == "" {
		return ErrBaseRequired
	}
	if pair.Quote == "" {
		return ErrQuoteRequired
	}
	if pair.Base == pair.Quote {
		return ErrSameCodes
	}
	if !codePattern.MatchString(pair.Base) {
		return ErrBaseInvalid
	}
	if !codePattern.MatchString(pair.Quote) {
		return ErrQuoteInvalid
	}
	return nil
}
