package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"social-bridge/domain"
	"social-bridge/mocks"
)

func newSchedulerFixture(t *testing.T, fileModulus uint64) (*SchedulerWorker, *mocks.MockConversationActions, *mocks.MockStatusReader, []domain.Identity) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	actions := mocks.NewMockConversationActions(ctrl)
	statuses := mocks.NewMockStatusReader(ctrl)

	alice, err := domain.NewIdentity("Alice")
	require.NoError(t, err)
	bob, err := domain.NewIdentity("Bob")
	require.NoError(t, err)
	bots := []domain.Identity{alice, bob}

	worker := NewSchedulerWorker(actions, statuses, bots,
		time.Hour, fileModulus, slog.Default())
	return worker, actions, statuses, bots
}

func TestSchedulerWorker_ActionPolicyMod2(t *testing.T) {
	worker, actions, statuses, bots := newSchedulerFixture(t, 2)
	alice, bob := bots[0], bots[1]
	ctx := context.Background()

	statuses.EXPECT().Status(gomock.Any()).Return(domain.StatusOnline).AnyTimes()

	// Per-bot counter n drives the choice: n=0,1 text, n=2 file (mod 2),
	// ... n=8 sticker. Both bots progress through the same sequence.
	for _, bot := range []domain.Identity{alice, bob} {
		other := bob
		if bot.Name == bob.Name {
			other = alice
		}
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bot.Name), "Hello! This is message #1").Return(nil)
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bot.Name), "Hello! This is message #2").Return(nil)
		actions.EXPECT().TransferFile(gomock.Any(), identityNamed(bot.Name), identityNamed(other.Name)).Return(nil).Times(3) // n=2,4,6
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bot.Name), "Hello! This is message #4").Return(nil)
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bot.Name), "Hello! This is message #6").Return(nil)
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bot.Name), "Hello! This is message #8").Return(nil)
		actions.EXPECT().SendSticker(gomock.Any(), identityNamed(bot.Name)).Return(nil) // n=8
	}

	// 9 successful dispatches per bot, interleaved by the rotation.
	for i := 0; i < 18; i++ {
		worker.takeTurn(ctx)
	}
}

func TestSchedulerWorker_ActionPolicyMod5(t *testing.T) {
	worker, actions, statuses, bots := newSchedulerFixture(t, 5)
	alice, bob := bots[0], bots[1]
	ctx := context.Background()

	statuses.EXPECT().Status(gomock.Any()).Return(domain.StatusOnline).AnyTimes()

	for _, bot := range []domain.Identity{alice, bob} {
		other := bob
		if bot.Name == bob.Name {
			other = alice
		}
		// n=0..4 text, n=5 file under mod 5.
		for n := 0; n < 5; n++ {
			actions.EXPECT().SendText(gomock.Any(), identityNamed(bot.Name),
				fmt.Sprintf("Hello! This is message #%d", n+1)).Return(nil)
		}
		actions.EXPECT().TransferFile(gomock.Any(), identityNamed(bot.Name), identityNamed(other.Name)).Return(nil)
	}

	for i := 0; i < 12; i++ {
		worker.takeTurn(ctx)
	}
}

func TestSchedulerWorker_BannedBotForfeitsTurn(t *testing.T) {
	worker, actions, statuses, bots := newSchedulerFixture(t, 2)
	ctx := context.Background()

	statuses.EXPECT().Status(bots[0].Name).Return(domain.StatusBanned).AnyTimes()
	statuses.EXPECT().Status(bots[1].Name).Return(domain.StatusOnline).AnyTimes()

	// Only Bob ever dispatches; Alice's turns pass silently.
	actions.EXPECT().SendText(gomock.Any(), identityNamed(bots[1].Name), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 4; i++ {
		worker.takeTurn(ctx)
	}
}

func TestSchedulerWorker_FailedTurnDoesNotAdvanceCounter(t *testing.T) {
	worker, actions, statuses, bots := newSchedulerFixture(t, 2)
	ctx := context.Background()

	statuses.EXPECT().Status(gomock.Any()).Return(domain.StatusOnline).AnyTimes()

	gomock.InOrder(
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bots[0].Name), "Hello! This is message #1").
			Return(fmt.Errorf("ledger unavailable")),
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bots[1].Name), "Hello! This is message #1").
			Return(nil),
		// Alice retries the same message on her next turn.
		actions.EXPECT().SendText(gomock.Any(), identityNamed(bots[0].Name), "Hello! This is message #1").
			Return(nil),
	)

	worker.takeTurn(ctx)
	worker.takeTurn(ctx)
	worker.takeTurn(ctx)
}

func TestSchedulerWorker_RunStopsOnCancel(t *testing.T) {
	req := require.New(t)
	worker, _, _, _ := newSchedulerFixture(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.ErrorIs(worker.Run(ctx), context.Canceled)
}

// identityNamed matches a domain.Identity by name; keys are generated per
// test so value equality would never hold.
func identityNamed(name string) gomock.Matcher {
	return identityMatcher{name: name}
}

type identityMatcher struct{ name string }

func (m identityMatcher) Matches(x any) bool {
	id, ok := x.(domain.Identity)
	return ok && id.Name == m.name
}

func (m identityMatcher) String() string {
	return fmt.Sprintf("identity named %q", m.name)
}
