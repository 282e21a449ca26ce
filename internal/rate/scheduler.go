package rate

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = 30 * time.Second

type Activator interface {
	Activate(ctx context.Context)
}

// Scheduler periodically re-activates the presenter so the displayed rate stays fresh.
type Scheduler struct {
	presenter       Activator
	refreshInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

// Start is a no-op while a previous Start is still running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		logrus.Debugf("Refreshing exchange rate; execID: %s", execID)
		s.presenter.Activate(jobCtx)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	scheduler.Start()
	s.sched = scheduler

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.shutdown(scheduler); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	return s.shutdown(nil)
}

// shutdown stops the running scheduler; a non-nil target limits it to that instance.
func (s *Scheduler) shutdown(target gocron.Scheduler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil || (target != nil && s.sched != target) {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(presenter Activator, refreshInterval time.Duration) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Scheduler{presenter: presenter, refreshInterval: refreshInterval}
}
