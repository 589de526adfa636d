package sendreminder

import (
	"context"
	"fmt"
	e "healthreminder/internal/core/domain/errors"
	"healthreminder/internal/core/domain/logging"
	"healthreminder/internal/core/domain/reminder"
	"healthreminder/internal/core/services"
	"io"
	"sync"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	Reminder reminder.Reminder
}

type Result struct {
	DesktopDelivered bool
}

type service struct {
	log     logging.Logger
	out     io.Writer
	outLock sync.Mutex
	desktop reminder.DesktopNotifier
	now     func() time.Time
}

// New returns a service that prints the reminder to out and then tries the
// desktop notifier. Delivery failures are logged, never returned.
func New(
	log logging.Logger,
	out io.Writer,
	desktop reminder.DesktopNotifier,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if out == nil {
		panic(e.NewNilArgumentError("out"))
	}
	if desktop == nil {
		panic(e.NewNilArgumentError("desktop"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:     log,
		out:     out,
		desktop: desktop,
		now:     now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem := input.Reminder
	s.print(ctx, rem)

	if err := s.desktop.Notify(rem.Title, rem.Body); err != nil {
		s.log.Warning(
			ctx,
			"Desktop notification failed.",
			logging.Entry("reminder", rem.Name),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Debug(ctx, "Desktop notification delivered.", logging.Entry("reminder", rem.Name))
	result.DesktopDelivered = true
	return result, nil
}

func (s *service) print(ctx context.Context, rem reminder.Reminder) {
	at := carbon.Time2Carbon(s.now()).ToTimeString()

	s.outLock.Lock()
	defer s.outLock.Unlock()
	if _, err := fmt.Fprintf(s.out, "[%s] %s — %s\n", at, rem.Title, rem.Body); err != nil {
		s.log.Warning(ctx, "Could not print reminder.", logging.Entry("reminder", rem.Name), logging.Entry("err", err))
	}
}
