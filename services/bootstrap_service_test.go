package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"social-bridge/contract"
	"social-bridge/domain"
	"social-bridge/mocks"
)

type bootstrapFixture struct {
	preparer  *mocks.MockTransactionPreparer
	submitter *mocks.MockTransactionSubmitter
	ledger    *mocks.MockLedgerClient
	fallback  *mocks.MockLedgerClient
	admin     domain.Identity
	bots      []domain.Identity
	human     domain.Identity
}

func newBootstrapFixture(t *testing.T) *bootstrapFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	admin, err := domain.NewIdentity("admin")
	require.NoError(t, err)
	alice, err := domain.NewIdentity("Alice")
	require.NoError(t, err)
	bob, err := domain.NewIdentity("Bob")
	require.NoError(t, err)
	human, err := domain.NewIdentity("You")
	require.NoError(t, err)

	return &bootstrapFixture{
		preparer:  mocks.NewMockTransactionPreparer(ctrl),
		submitter: mocks.NewMockTransactionSubmitter(ctrl),
		ledger:    mocks.NewMockLedgerClient(ctrl),
		fallback:  mocks.NewMockLedgerClient(ctrl),
		admin:     admin,
		bots:      []domain.Identity{alice, bob},
		human:     human,
	}
}

func (f *bootstrapFixture) service(fallback contract.LedgerClient, log *slog.Logger) *BootstrapService {
	return NewBootstrapService(f.preparer, f.submitter, f.ledger, fallback,
		1_000_000_000, 100_000_000, log)
}

func TestBootstrapService_HappyPath(t *testing.T) {
	req := require.New(t)
	f := newBootstrapFixture(t)
	ctx := context.Background()

	// Admin, two bots and the human all get funded.
	f.ledger.EXPECT().RequestFunding(gomock.Any(), gomock.Any(), uint64(1_000_000_000)).
		Return(nil).Times(4)

	f.preparer.EXPECT().PrepareAdminRegisterProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("register"), nil)
	f.preparer.EXPECT().PrepareUserCreateProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("create"), nil).Times(2)
	f.preparer.EXPECT().PrepareUserDeposit(gomock.Any(), gomock.Any(), gomock.Any(), uint64(100_000_000)).
		Return([]byte("deposit"), nil).Times(2)

	// One registration, plus create+deposit per bot.
	f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("sig", nil).Times(5)

	svc := f.service(nil, slog.Default())
	req.NoError(svc.Run(ctx, f.admin, f.bots, f.human))
}

func TestBootstrapService_FallbackFunding(t *testing.T) {
	req := require.New(t)
	f := newBootstrapFixture(t)
	ctx := context.Background()

	// Primary refuses everyone; the fallback faucet covers all four.
	f.ledger.EXPECT().RequestFunding(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("faucet dry")).Times(4)
	f.fallback.EXPECT().RequestFunding(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(4)

	f.preparer.EXPECT().PrepareAdminRegisterProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("register"), nil)
	f.preparer.EXPECT().PrepareUserCreateProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("create"), nil).Times(2)
	f.preparer.EXPECT().PrepareUserDeposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("deposit"), nil).Times(2)
	f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("sig", nil).Times(5)

	svc := f.service(f.fallback, slog.Default())
	req.NoError(svc.Run(ctx, f.admin, f.bots, f.human))
}

func TestBootstrapService_FundingFailureAborts(t *testing.T) {
	req := require.New(t)
	f := newBootstrapFixture(t)
	ctx := context.Background()

	f.ledger.EXPECT().RequestFunding(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("faucet dry")).Times(1)

	// No fallback configured: the first funding failure ends the run
	// before any profile RPC happens.
	svc := f.service(nil, slog.Default())
	req.Error(svc.Run(ctx, f.admin, f.bots, f.human))
}

func TestBootstrapService_RegistrationFailureAborts(t *testing.T) {
	req := require.New(t)
	f := newBootstrapFixture(t)
	ctx := context.Background()

	f.ledger.EXPECT().RequestFunding(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(4)
	f.preparer.EXPECT().PrepareAdminRegisterProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("gateway down"))

	svc := f.service(nil, slog.Default())
	req.Error(svc.Run(ctx, f.admin, f.bots, f.human))
}
