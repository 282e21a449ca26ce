package view

import (
	"btcrate/internal/domain"
	"btcrate/internal/rate"
	"context"
	"fmt"
	"io"
	"sync"
)

type Presenter interface {
	State() domain.DisplayState
	Subscribe(o rate.Observer) func()
	Activate(ctx context.Context)
}

// Label prints the rate as one line of text per state change.
type Label struct {
	presenter Presenter
	out       io.Writer
	prefix    string

	shown       sync.Once
	mu          sync.Mutex
	unsubscribe func()
}

// Show renders the current state and activates the presenter. Only the first
// call has any effect; it blocks until that activation returns.
func (l *Label) Show(ctx context.Context) {
	l.shown.Do(func() {
		unsubscribe := l.presenter.Subscribe(l)
		l.mu.Lock()
		l.unsubscribe = unsubscribe
		l.mu.Unlock()

		l.OnStateChange(l.presenter.State())
		l.presenter.Activate(ctx)
	})
}

func (l *Label) OnStateChange(state domain.DisplayState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "%s%s\n", l.prefix, state.Rate)
}

// Close stops rendering.
func (l *Label) Close() {
	l.mu.Lock()
	unsubscribe := l.unsubscribe
	l.unsubscribe = nil
	l.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func NewLabel(presenter Presenter, out io.Writer, pair domain.CurrencyPair) *Label {
	return &Label{presenter: presenter, out: out, prefix: pair.String() + ": "}
}
