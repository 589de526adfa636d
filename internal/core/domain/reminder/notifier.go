package reminder

// DesktopNotifier delivers a notification through the host notification
// service. Implementations are selected per platform at build time.
type DesktopNotifier interface {
	Notify(title, body string) error
}
