package sink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifier_CoalescesBursts(t *testing.T) {
	req := require.New(t)
	n := NewNotifier()

	for i := 0; i < 100; i++ {
		n.Notify()
	}

	// Exactly one pending signal, however many were sent.
	select {
	case <-n.Refresh():
	default:
		req.Fail("expected one pending notification")
	}
	select {
	case <-n.Refresh():
		req.Fail("expected the burst to collapse into one notification")
	default:
	}
}

func TestNotifier_NotifyNeverBlocks(t *testing.T) {
	n := NewNotifier()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			n.Notify()
		}
	}()
	<-done
}
