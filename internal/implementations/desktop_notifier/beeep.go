//go:build linux || freebsd || netbsd || openbsd || darwin || windows

package desktopnotifier

import (
	"fmt"
	"healthreminder/internal/core/domain/reminder"

	"github.com/gen2brain/beeep"
)

const AppName = "health-reminder"

// BeeepNotifier talks to D-Bus on unix, Notification Center on macOS and
// toast notifications on Windows.
type BeeepNotifier struct{}

func (BeeepNotifier) Notify(title, body string) error {
	if err := beeep.Notify(title, body, ""); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// New returns the notifier supported by the current platform.
func New() reminder.DesktopNotifier {
	beeep.AppName = AppName
	return BeeepNotifier{}
}
