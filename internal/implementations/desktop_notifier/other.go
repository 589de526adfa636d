//go:build !(linux || freebsd || netbsd || openbsd || darwin || windows)

package desktopnotifier

import "healthreminder/internal/core/domain/reminder"

// New returns a no-op notifier: this platform has no notification service,
// reminders are shown in the terminal only.
func New() reminder.DesktopNotifier {
	return Noop{}
}
