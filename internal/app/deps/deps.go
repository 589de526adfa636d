package deps

import (
	"context"
	"healthreminder/internal/config"
	dl "healthreminder/internal/core/domain/logging"
	"healthreminder/internal/core/domain/reminder"
	"healthreminder/internal/core/services"
	sendreminder "healthreminder/internal/core/services/send_reminder"
	desktopnotifier "healthreminder/internal/implementations/desktop_notifier"
	"healthreminder/internal/implementations/logging"
	"healthreminder/internal/scheduler"
	"io"
	"time"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger
	Stdout io.Writer

	Now func() time.Time

	DesktopNotifier reminder.DesktopNotifier
	SendReminder    services.Service[sendreminder.Input, sendreminder.Result]
	Scheduler       *scheduler.Scheduler

	tickerFactory scheduler.TickerFactory
}

type Option func(*Deps)

// WithLogger replaces the zap logger.
func WithLogger(log dl.Logger) Option {
	return func(d *Deps) {
		d.Logger = log
	}
}

func WithDesktopNotifier(n reminder.DesktopNotifier) Option {
	return func(d *Deps) {
		d.DesktopNotifier = n
	}
}

func WithTickerFactory(f scheduler.TickerFactory) Option {
	return func(d *Deps) {
		d.tickerFactory = f
	}
}

func InitDeps(cfg *config.Config, stdout io.Writer, opts ...Option) (*Deps, func(), error) {
	deps := &Deps{Config: cfg, Stdout: stdout}
	for _, opt := range opts {
		opt(deps)
	}

	closeLogger, err := deps.initLogger()
	if err != nil {
		return nil, nil, err
	}

	deps.Now = time.Now
	if deps.DesktopNotifier == nil {
		deps.DesktopNotifier = desktopnotifier.New()
	}
	deps.SendReminder = sendreminder.New(deps.Logger, deps.Stdout, deps.DesktopNotifier, deps.Now)

	var schedulerOpts []scheduler.Option
	if deps.tickerFactory != nil {
		schedulerOpts = append(schedulerOpts, scheduler.WithTickerFactory(deps.tickerFactory))
	}
	deps.Scheduler = scheduler.New(deps.Logger, deps.SendReminder, schedulerOpts...)

	return deps, func() {
		deps.Logger.Debug(context.Background(), "Shutting down dependencies.")
		closeLogger()
	}, nil
}

func (deps *Deps) initLogger() (func(), error) {
	if deps.Logger != nil {
		return func() {}, nil
	}
	logger, err := logging.NewZapLogger(deps.Config.LogLevel)
	if err != nil {
		return nil, err
	}
	deps.Logger = logger
	return func() { logger.Sync() }, nil
}
