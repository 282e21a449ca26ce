package rate

import (
	"btcrate/internal/domain"
	"context"
	"sync"
)

type RateInteractor interface {
	FetchRate(ctx context.Context) <-chan Result
}

type Observer interface {
	OnStateChange(state domain.DisplayState)
}

type ObserverFunc func(state domain.DisplayState)

func (f ObserverFunc) OnStateChange(state domain.DisplayState) { f(state) }

// Presenter owns the display state and refreshes it from the interactor.
type Presenter struct {
	interactor RateInteractor

	// scope is canceled by Close, which invalidates every fetch started here
	scope  context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     domain.DisplayState
	status    domain.Status
	issued    uint64
	applied   uint64
	pending   int
	nextSubID uint64
	observers map[uint64]Observer
}

func (p *Presenter) State() domain.DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Presenter) Status() domain.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Subscribe registers o for state changes until the returned func is called
// or the presenter is closed.
func (p *Presenter) Subscribe(o Observer) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.observers == nil {
		return func() {}
	}

	p.nextSubID++
	id := p.nextSubID
	p.observers[id] = o

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.observers, id)
		})
	}
}

// Activate fetches the rate once and returns after the result has been written
// to the state. It returns early without touching the state if ctx is done or
// the presenter is closed; a loading status nobody will resolve goes back to idle.
func (p *Presenter) Activate(ctx context.Context) {
	p.mu.Lock()
	if p.observers == nil {
		p.mu.Unlock()
		return
	}
	p.issued++
	gen := p.issued
	p.pending++
	if p.status != domain.StatusLoaded {
		p.status = domain.StatusLoading
	}
	p.mu.Unlock()

	fetchCtx, cancel := mergeCancel(ctx, p.scope)
	defer cancel()
	defer p.settle()

	select {
	case res := <-p.interactor.FetchRate(fetchCtx):
		p.apply(gen, res)
	case <-ctx.Done():
	case <-p.scope.Done():
	}
}

func (p *Presenter) settle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending--
	if p.pending == 0 && p.status == domain.StatusLoading {
		p.status = domain.StatusIdle
	}
}

func (p *Presenter) apply(gen uint64, res Result) {
	p.mu.Lock()
	// closed, or a newer fetch already landed
	if p.observers == nil || gen <= p.applied {
		p.mu.Unlock()
		return
	}
	p.applied = gen

	rate := ""
	if res.OK {
		rate = res.Rate
	}
	p.state = domain.DisplayState{Rate: rate}
	p.status = domain.StatusLoaded

	state := p.state
	observers := make([]Observer, 0, len(p.observers))
	for _, o := range p.observers {
		observers = append(observers, o)
	}
	p.mu.Unlock()

	for _, o := range observers {
		o.OnStateChange(state)
	}
}

// Close drops all observers and makes late results no-ops.
func (p *Presenter) Close() {
	p.cancel()
	p.mu.Lock()
	p.observers = nil
	p.mu.Unlock()
}

func mergeCancel(ctx, scope context.Context) (context.Context, context.CancelFunc) {
	merged, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(scope, cancel)
	return merged, func() {
		stop()
		cancel()
	}
}

func NewPresenter(interactor RateInteractor) *Presenter {
	scope, cancel := context.WithCancel(context.Background())
	return &Presenter{
		interactor: interactor,
		scope:      scope,
		cancel:     cancel,
		status:     domain.StatusIdle,
		observers:  make(map[uint64]Observer),
	}
}
