package rate

import (
	"btcrate/internal/adapters"
	"context"
)

// Result is the outcome of one fetch. OK is false when no rate is available,
// whatever the reason.
type Result struct {
	Rate string
	OK   bool
}

type Interactor struct {
	fetcher adapters.RateFetcher
}

// FetchRate starts a fetch in the background. The returned channel yields exactly
// one Result and is then closed.
func (i *Interactor) FetchRate(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- i.fetch(ctx)
	}()
	return out
}

func (i *Interactor) fetch(ctx context.Context) (res Result) {
	defer func() {
		if recover() != nil {
			res = Result{}
		}
	}()

	rate, err := i.fetcher.FetchRate(ctx)
	if err != nil {
		return Result{}
	}
	return Result{Rate: rate, OK: true}
}

func NewInteractor(fetcher adapters.RateFetcher) *Interactor {
	return &Interactor{fetcher: fetcher}
}
