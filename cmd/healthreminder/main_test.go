package main

import (
	"bytes"
	"healthreminder/internal/app/deps"
	"healthreminder/internal/core/domain/interval"
	"healthreminder/internal/core/domain/logging"
	desktopnotifier "healthreminder/internal/implementations/desktop_notifier"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOpts() []deps.Option {
	return []deps.Option{
		deps.WithLogger(logging.NewFakeLogger()),
		deps.WithDesktopNotifier(desktopnotifier.Noop{}),
	}
}

func TestInvalidFlagsFailBeforeStart(t *testing.T) {
	cases := []struct {
		args     []string
		sentinel error
		contains []string
	}{
		{args: []string{"--eyes", "20x"}, sentinel: interval.ErrInvalidUnit, contains: []string{"--eyes", "20x"}},
		{args: []string{"--water=abcm"}, sentinel: interval.ErrInvalidNumber, contains: []string{"--water", "abcm"}},
		{args: []string{"--eyes", "1h30m"}, sentinel: interval.ErrInvalidNumber, contains: []string{"--eyes", "1h30m"}},
	}

	for _, testcase := range cases {
		t.Run(testcase.args[0], func(t *testing.T) {
			out := &bytes.Buffer{}
			cmd := newRootCmd(out, make(chan os.Signal), testOpts()...)
			cmd.SetArgs(testcase.args)

			err := cmd.Execute()

			require.ErrorIs(t, err, testcase.sentinel)
			for _, s := range testcase.contains {
				assert.ErrorContains(t, err, s)
			}
			assert.Empty(t, out.String())
		})
	}
}

func TestRunsUntilSignal(t *testing.T) {
	out := &bytes.Buffer{}
	stopCh := make(chan os.Signal, 1)
	stopCh <- os.Interrupt
	cmd := newRootCmd(out, stopCh, testOpts()...)
	cmd.SetArgs([]string{"--eyes", "30m", "--water", "2h"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "eyes every 30m0s, water every 2h0m0s.")
	assert.Contains(t, out.String(), "Take care!")
}

func TestRejectsPositionalArgs(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, make(chan os.Signal), testOpts()...)
	cmd.SetArgs([]string{"20m"})

	assert.Error(t, cmd.Execute())
}

func TestVersionFlag(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newRootCmd(out, make(chan os.Signal), testOpts()...)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "healthreminder version dev")
}
