package domain

import "errors"

var (
	ErrInvalidURL      = errors.New("invalid exchange rate url")
	ErrFetch           = errors.New("exchange rate fetch failed")
	ErrDecode          = errors.New("exchange rate response decode failed")
	ErrInvalidResponse = errors.New("exchange rate missing from response")
)
