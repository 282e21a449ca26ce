package domain

const (
	DefaultBase  = "BTC"
	DefaultQuote = "AUD"
)

type CurrencyPair struct {
	Base  string
	Quote string
}

func (p CurrencyPair) String() string {
	return p.Base + "/" + p.Quote
}

// DisplayState is what a view renders. Empty Rate means nothing to show yet.
type DisplayState struct {
	Rate string
}

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
)
