package exchange

// Notifier shows messages to the user
type Notifier interface {
	// Alert shows a failure the user has to acknowledge
	Alert(message string)
	// Info shows a transient message
	Info(message string)
}

// Loader is the shared loading indicator
type Loader interface {
	Show()
	Hide()
}

type nopNotifier struct{}

func (nopNotifier) Alert(string) {}
func (nopNotifier) Info(string)  {}

type nopLoader struct{}

func (nopLoader) Show() {}
func (nopLoader) Hide() {}
