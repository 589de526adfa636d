package reminder

import "sync"

type TestNotification struct {
	Title string
	Body  string
}

type TestDesktopNotifier struct {
	Notified []TestNotification
	// Errors are returned by consecutive calls; nil entries mean success.
	Errors []error
	calls  int
	lock   sync.Mutex
}

func NewTestDesktopNotifier() *TestDesktopNotifier {
	return &TestDesktopNotifier{}
}

func (n *TestDesktopNotifier) Notify(title, body string) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	call := n.calls
	n.calls++
	if call < len(n.Errors) && n.Errors[call] != nil {
		return n.Errors[call]
	}
	n.Notified = append(n.Notified, TestNotification{Title: title, Body: body})
	return nil
}

func (n *TestDesktopNotifier) Calls() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.calls
}
