package sendreminder

import (
	"bytes"
	"context"
	"errors"
	"healthreminder/internal/core/domain/logging"
	"healthreminder/internal/core/domain/reminder"
	"healthreminder/internal/core/services"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var (
	Now = time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)
)

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	out     *bytes.Buffer
	desktop *reminder.TestDesktopNotifier
	service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.out = &bytes.Buffer{}
	suite.desktop = reminder.NewTestDesktopNotifier()
	suite.service = New(
		suite.logger,
		suite.out,
		suite.desktop,
		func() time.Time { return Now },
	)
}

func TestSendReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestPrintsTimestampedLineAndNotifies() {
	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: reminder.Eyes(time.Minute)})

	// Verify ---
	s.Nil(err)
	s.True(result.DesktopDelivered)
	s.Equal("[09:05:07] Eye break 👀 — Look away for ~20s. 20-20-20 rule!\n", s.out.String())
	s.Equal(
		[]reminder.TestNotification{{Title: "Eye break 👀", Body: "Look away for ~20s. 20-20-20 rule!"}},
		s.desktop.Notified,
	)
	s.Empty(s.logger.Records(logging.WARNING))
}

func (s *testSuite) TestDesktopFailureIsWarningOnly() {
	// Setup ---
	s.desktop.Errors = []error{errors.New("no notification service")}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: reminder.Water(time.Hour)})

	// Verify ---
	s.Nil(err)
	s.False(result.DesktopDelivered)
	s.Equal("[09:05:07] Hydration 💧 — Drink a few sips of water.\n", s.out.String())
	warnings := s.logger.Records(logging.WARNING)
	s.Len(warnings, 1)
	s.Contains(warnings[0].Entries, logging.Entry("reminder", reminder.NameWater))
}

func (s *testSuite) TestFailureDoesNotAffectNextTick() {
	// Setup ---
	s.desktop.Errors = []error{errors.New("dbus unavailable")}
	rem := reminder.Water(time.Hour)

	// Exercise ---
	_, err1 := s.service.Run(context.Background(), Input{Reminder: rem})
	result, err2 := s.service.Run(context.Background(), Input{Reminder: rem})

	// Verify ---
	s.Nil(err1)
	s.Nil(err2)
	s.True(result.DesktopDelivered)
	lines := strings.Split(strings.TrimSuffix(s.out.String(), "\n"), "\n")
	s.Len(lines, 2)
	s.Equal(lines[0], lines[1])
	s.Equal(2, s.desktop.Calls())
}

func (s *testSuite) TestNilArguments() {
	s.Panics(func() { New(nil, s.out, s.desktop, time.Now) })
	s.Panics(func() { New(s.logger, nil, s.desktop, time.Now) })
	s.Panics(func() { New(s.logger, s.out, nil, time.Now) })
	s.Panics(func() { New(s.logger, s.out, s.desktop, nil) })
}
