package services

import (
	"context"
	"fmt"
	"log/slog"

	"social-bridge/contract"
	"social-bridge/domain"
)

// BootstrapService performs the one-shot on-chain setup: fund every
// identity, register the admin profile, create the user profiles and
// deposit the bots' spending balance.
//
// Any failure aborts the sequence and is reported to the caller, which is
// expected to log it and continue in degraded mode with unregistered
// identities rather than crash.
type BootstrapService struct {
	preparer        contract.TransactionPreparer
	submitter       contract.TransactionSubmitter
	ledger          contract.LedgerClient
	fallbackFunding contract.LedgerClient // optional secondary funding source
	airdrop         uint64
	deposit         uint64
	log             *slog.Logger
}

func NewBootstrapService(
	preparer contract.TransactionPreparer,
	submitter contract.TransactionSubmitter,
	ledger contract.LedgerClient,
	fallbackFunding contract.LedgerClient,
	airdrop, deposit uint64,
	log *slog.Logger,
) *BootstrapService {
	return &BootstrapService{
		preparer:        preparer,
		submitter:       submitter,
		ledger:          ledger,
		fallbackFunding: fallbackFunding,
		airdrop:         airdrop,
		deposit:         deposit,
		log:             log,
	}
}

// Run sets up the chain state for the admin, the two bots and the human
// user. Bots receive a deposit so they can pay for priced commands.
func (s *BootstrapService) Run(ctx context.Context, admin domain.Identity, bots []domain.Identity, human domain.Identity) error {
	adminAddress := domain.DeriveAdminProfileAddress(admin.PublicKey)

	all := append(append([]domain.Identity{admin}, bots...), human)
	for _, id := range all {
		if err := s.fund(ctx, id); err != nil {
			return err
		}
	}

	s.log.Info("Registering admin profile", "address", adminAddress)
	unsigned, err := s.preparer.PrepareAdminRegisterProfile(ctx, admin.PublicKey, admin.PublicKey)
	if err != nil {
		return fmt.Errorf("preparing admin registration: %w", err)
	}
	if _, err := s.submitter.Submit(ctx, unsigned, admin); err != nil {
		return fmt.Errorf("registering admin profile: %w", err)
	}

	for _, bot := range bots {
		if err := s.createProfile(ctx, bot, adminAddress); err != nil {
			return err
		}
		if err := s.depositFor(ctx, bot, adminAddress); err != nil {
			return err
		}
	}
	s.log.Info("On-chain setup complete")
	return nil
}

func (s *BootstrapService) fund(ctx context.Context, id domain.Identity) error {
	err := s.ledger.RequestFunding(ctx, id.PublicKey, s.airdrop)
	if err == nil {
		return nil
	}
	if s.fallbackFunding == nil {
		return fmt.Errorf("funding %s: %w", id.Name, err)
	}

	s.log.Warn("Primary funding failed, trying fallback", "identity", id.Name, "error", err)
	if err := s.fallbackFunding.RequestFunding(ctx, id.PublicKey, s.airdrop); err != nil {
		return fmt.Errorf("fallback funding %s: %w", id.Name, err)
	}
	return nil
}

func (s *BootstrapService) createProfile(ctx context.Context, user domain.Identity, admin domain.ProfileAddress) error {
	unsigned, err := s.preparer.PrepareUserCreateProfile(ctx, user.PublicKey, admin, user.PublicKey)
	if err != nil {
		return fmt.Errorf("preparing profile for %s: %w", user.Name, err)
	}
	if _, err := s.submitter.Submit(ctx, unsigned, user); err != nil {
		return fmt.Errorf("creating profile for %s: %w", user.Name, err)
	}
	s.log.Info("User profile created", "name", user.Name,
		"address", domain.DeriveUserProfileAddress(user.PublicKey, admin))
	return nil
}

func (s *BootstrapService) depositFor(ctx context.Context, user domain.Identity, admin domain.ProfileAddress) error {
	unsigned, err := s.preparer.PrepareUserDeposit(ctx, user.PublicKey, admin, s.deposit)
	if err != nil {
		return fmt.Errorf("preparing deposit for %s: %w", user.Name, err)
	}
	if _, err := s.submitter.Submit(ctx, unsigned, user); err != nil {
		return fmt.Errorf("depositing for %s: %w", user.Name, err)
	}
	return nil
}
