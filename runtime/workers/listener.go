package workers

import (
	"context"
	"log/slog"
	"time"

	"social-bridge/contract"
	"social-bridge/domain"
)

// ListenerWorker owns the event subscription for one monitored identity.
//
// It cycles through three states: connecting (open the subscription),
// streaming (block on the next event, apply it), and backoff (fixed
// delay, then reconnect). The backoff never grows and never gives up;
// the only exit is the context, observed at stream open and at backoff
// completion. An in-flight Recv is not interrupted, so shutdown latency
// is bounded by time-to-next-event or the backoff delay.
type ListenerWorker struct {
	subscriber contract.EventSubscriber
	address    domain.ProfileAddress
	owner      string
	sink       contract.EventSink
	backoff    time.Duration
	log        *slog.Logger
}

func NewListenerWorker(
	subscriber contract.EventSubscriber,
	address domain.ProfileAddress,
	owner string,
	sink contract.EventSink,
	backoff time.Duration,
	log *slog.Logger,
) *ListenerWorker {
	return &ListenerWorker{
		subscriber: subscriber,
		address:    address,
		owner:      owner,
		sink:       sink,
		backoff:    backoff,
		log:        log,
	}
}

func (w *ListenerWorker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		stream, err := w.subscriber.Listen(ctx, w.address)
		if err != nil {
			w.log.Warn("Subscription failed, retrying after backoff",
				"owner", w.owner, "error", err)
			if err := w.wait(ctx); err != nil {
				return err
			}
			continue
		}
		w.log.Info("Listening for events", "owner", w.owner, "address", w.address)

		for {
			evt, err := stream.Recv()
			if err != nil {
				w.log.Warn("Stream interrupted, reconnecting after backoff",
					"owner", w.owner, "error", err)
				break
			}
			w.sink.Consume(evt)
		}

		if err := w.wait(ctx); err != nil {
			return err
		}
	}
}

func (w *ListenerWorker) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(w.backoff):
		return nil
	}
}
