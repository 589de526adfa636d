package scheduler

import (
	"context"
	"fmt"
	e "healthreminder/internal/core/domain/errors"
	"healthreminder/internal/core/domain/logging"
	"healthreminder/internal/core/domain/reminder"
	"healthreminder/internal/core/services"
	sendreminder "healthreminder/internal/core/services/send_reminder"
	"sync"
)

type Scheduler struct {
	log       logging.Logger
	send      services.Service[sendreminder.Input, sendreminder.Result]
	newTicker TickerFactory
}

type Option func(*Scheduler)

func WithTickerFactory(f TickerFactory) Option {
	return func(s *Scheduler) {
		s.newTicker = f
	}
}

func New(
	log logging.Logger,
	send services.Service[sendreminder.Input, sendreminder.Result],
	opts ...Option,
) *Scheduler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if send == nil {
		panic(e.NewNilArgumentError("send"))
	}
	s := &Scheduler{
		log:       log,
		send:      send,
		newTicker: NewTicker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handles controls the timer units spawned by a single Start call.
type Handles struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Stop cancels every timer unit. It does not wait for them to return.
func (h *Handles) Stop() {
	h.cancel()
}

// Wait blocks until every timer unit has returned.
func (h *Handles) Wait() {
	h.wg.Wait()
}

// Start validates the reminders and runs each one in its own goroutine.
// Nothing is started if any reminder is invalid.
func (s *Scheduler) Start(ctx context.Context, reminders ...reminder.Reminder) (*Handles, error) {
	for _, rem := range reminders {
		if err := rem.Validate(); err != nil {
			return nil, fmt.Errorf("reminder %q: %w", rem.Name, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handles{cancel: cancel}
	for _, rem := range reminders {
		if rem.Every == 0 {
			s.log.Warning(
				ctx,
				"Zero interval, reminder will fire continuously.",
				logging.Entry("reminder", rem.Name),
			)
		}
		ticker := s.newTicker(rem.Every)
		h.wg.Add(1)
		go func(rem reminder.Reminder) {
			defer h.wg.Done()
			defer ticker.Stop()
			s.run(ctx, rem, ticker)
		}(rem)
		s.log.Info(
			ctx,
			"Reminder timer started.",
			logging.Entry("reminder", rem.Name),
			logging.Entry("every", rem.Every.String()),
		)
	}
	return h, nil
}

func (s *Scheduler) run(ctx context.Context, rem reminder.Reminder, ticker Ticker) {
	for {
		select {
		case <-ctx.Done():
			s.log.Debug(ctx, "Reminder timer stopped.", logging.Entry("reminder", rem.Name))
			return
		case <-ticker.C():
		}
		// Both cases may be ready at once; cancellation wins.
		if ctx.Err() != nil {
			s.log.Debug(ctx, "Reminder timer stopped.", logging.Entry("reminder", rem.Name))
			return
		}

		if _, err := s.send.Run(ctx, sendreminder.Input{Reminder: rem}); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminder", rem.Name))
		}
	}
}
