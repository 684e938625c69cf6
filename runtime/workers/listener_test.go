package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"social-bridge/contract"
	"social-bridge/domain"
	"social-bridge/domain/event"
	"social-bridge/mocks"
)

func TestListenerWorker_DeliversEventsInOrder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subscriber := mocks.NewMockEventSubscriber(ctrl)
	stream := mocks.NewMockEventStream(ctrl)
	sinkMock := mocks.NewMockEventSink(ctrl)

	address := domain.ProfileAddress{1}
	first := event.CommandDispatched{CommandID: domain.CommandTextMessage, Ts: 1}
	second := event.CommandDispatched{CommandID: domain.CommandFileTransfer, Ts: 2}

	subscriber.EXPECT().Listen(gomock.Any(), address).Return(stream, nil).Times(1)
	gomock.InOrder(
		stream.EXPECT().Recv().Return(first, nil),
		stream.EXPECT().Recv().Return(second, nil),
		stream.EXPECT().Recv().Return(nil, fmt.Errorf("stream closed")),
	)

	var seen []event.BridgeEvent
	done := make(chan struct{})
	gomock.InOrder(
		sinkMock.EXPECT().Consume(first).Do(func(e event.BridgeEvent) { seen = append(seen, e) }),
		sinkMock.EXPECT().Consume(second).Do(func(e event.BridgeEvent) {
			seen = append(seen, e)
			close(done)
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewListenerWorker(subscriber, address, "Alice", sinkMock,
		time.Hour, slog.Default())

	finished := make(chan error, 1)
	go func() { finished <- worker.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("events were not consumed in time")
	}

	cancel()
	select {
	case err := <-finished:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(1 * time.Second):
		req.Fail("worker did not stop on cancellation")
	}
	req.Len(seen, 2)
}

func TestListenerWorker_ReconnectsAfterBackoff(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subscriber := mocks.NewMockEventSubscriber(ctrl)
	sinkMock := mocks.NewMockEventSink(ctrl)
	address := domain.ProfileAddress{2}

	backoff := 50 * time.Millisecond
	var attempts []time.Time
	second := make(chan struct{})
	subscriber.EXPECT().Listen(gomock.Any(), address).
		DoAndReturn(func(context.Context, domain.ProfileAddress) (contract.EventStream, error) {
			attempts = append(attempts, time.Now())
			if len(attempts) == 2 {
				close(second)
			}
			return nil, fmt.Errorf("gateway unavailable")
		}).
		MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewListenerWorker(subscriber, address, "Bob", sinkMock,
		backoff, slog.Default())

	finished := make(chan error, 1)
	go func() { finished <- worker.Run(ctx) }()

	select {
	case <-second:
	case <-time.After(1 * time.Second):
		req.Fail("no reconnection attempt observed")
	}
	cancel()
	<-finished

	// Resubscription happens no earlier than the fixed backoff.
	req.GreaterOrEqual(attempts[1].Sub(attempts[0]), backoff)
}

func TestListenerWorker_StopsDuringBackoff(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subscriber := mocks.NewMockEventSubscriber(ctrl)
	sinkMock := mocks.NewMockEventSink(ctrl)
	address := domain.ProfileAddress{3}

	failed := make(chan struct{})
	subscriber.EXPECT().Listen(gomock.Any(), address).
		DoAndReturn(func(context.Context, domain.ProfileAddress) (contract.EventStream, error) {
			close(failed)
			return nil, fmt.Errorf("gateway unavailable")
		}).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewListenerWorker(subscriber, address, "Bob", sinkMock,
		time.Hour, slog.Default())

	finished := make(chan error, 1)
	go func() { finished <- worker.Run(ctx) }()

	<-failed
	cancel()

	select {
	case err := <-finished:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(1 * time.Second):
		req.Fail("worker kept waiting through a canceled backoff")
	}
}
