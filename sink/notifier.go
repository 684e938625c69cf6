// Package sink carries side-channel signals out of the core: the UI
// refresh notifier lives here. It never touches domain state.
package sink

// Notifier coalesces refresh requests into a one-slot channel. Multiple
// notifications between two reads collapse into one; Notify never blocks.
type Notifier struct {
	ch chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

func (n *Notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Refresh is the channel the UI loop waits on.
func (n *Notifier) Refresh() <-chan struct{} {
	return n.ch
}
