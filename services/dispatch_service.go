// Package services composes the domain codec, the gateway preparer and
// the ledger submitter into the operations the bots and the UI invoke.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"social-bridge/contract"
	"social-bridge/domain"
	"social-bridge/transfer"
)

const (
	stickerPayload = "STICKER:smiley_face"

	// HTTP-style action code recorded on both sides of a completed transfer.
	actionTransferOK uint16 = 200
)

// DispatchService authorizes, prepares, signs and submits commands.
// Every method blocks until ledger confirmation and returns the first
// error untouched; callers log and move on.
type DispatchService struct {
	preparer  contract.TransactionPreparer
	submitter contract.TransactionSubmitter
	admin     domain.ProfileAddress
	oracle    domain.Identity
	sticker   uint64
	log       *slog.Logger
}

func NewDispatchService(
	preparer contract.TransactionPreparer,
	submitter contract.TransactionSubmitter,
	admin domain.ProfileAddress,
	oracle domain.Identity,
	stickerPrice uint64,
	log *slog.Logger,
) *DispatchService {
	return &DispatchService{
		preparer:  preparer,
		submitter: submitter,
		admin:     admin,
		oracle:    oracle,
		sticker:   stickerPrice,
		log:       log,
	}
}

func (s *DispatchService) SendText(ctx context.Context, from domain.Identity, text string) error {
	payload := []byte(domain.MessagePrefix + text)
	_, err := s.dispatch(ctx, from, domain.CommandTextMessage, 0, payload)
	return err
}

func (s *DispatchService) SendSticker(ctx context.Context, from domain.Identity) error {
	_, err := s.dispatch(ctx, from, domain.CommandPaidSticker, s.sticker, []byte(stickerPayload))
	return err
}

// TransferFile runs the whole simulated exchange: serve the file, dispatch
// the transfer command, let the recipient "download" it, then log the
// outcome on-chain for both parties.
func (s *DispatchService) TransferFile(ctx context.Context, from, to domain.Identity) error {
	session, err := transfer.Start(s.log)
	if err != nil {
		return err
	}
	defer session.Close()

	payload, err := session.BuildPayload(to.Name)
	if err != nil {
		return err
	}
	if _, err := s.dispatch(ctx, from, domain.CommandFileTransfer, 0, payload); err != nil {
		return err
	}

	if err := simulateDownload(ctx, session.URL); err != nil {
		s.log.Warn("Simulated download failed", "recipient", to.Name, "error", err)
	}

	if err := s.LogAction(ctx, from, session.ID, actionTransferOK); err != nil {
		return err
	}
	return s.LogAction(ctx, to, session.ID, actionTransferOK)
}

// LogAction records an off-chain outcome against the actor's profile.
func (s *DispatchService) LogAction(ctx context.Context, actor domain.Identity, sessionID uint64, actionCode uint16) error {
	user := domain.DeriveUserProfileAddress(actor.PublicKey, s.admin)
	unsigned, err := s.preparer.PrepareLogAction(ctx, actor.PublicKey, user, s.admin, sessionID, actionCode)
	if err != nil {
		return fmt.Errorf("preparing log action for %s: %w", actor.Name, err)
	}
	_, err = s.submitter.Submit(ctx, unsigned, actor)
	return err
}

// BanUser prepares and submits the admin ban. The chat log is not touched
// here; the UserBanned event coming back through the stream is the single
// source of truth.
func (s *DispatchService) BanUser(ctx context.Context, admin domain.Identity, target domain.Identity) error {
	targetAddress := domain.DeriveUserProfileAddress(target.PublicKey, s.admin)
	unsigned, err := s.preparer.PrepareAdminBanUser(ctx, admin.PublicKey, targetAddress)
	if err != nil {
		return fmt.Errorf("preparing ban of %s: %w", target.Name, err)
	}
	_, err = s.submitter.Submit(ctx, unsigned, admin)
	return err
}

func (s *DispatchService) dispatch(ctx context.Context, from domain.Identity, id domain.CommandID, price uint64, payload []byte) (string, error) {
	message := domain.AuthorizationMessage{
		CommandID: id,
		Price:     price,
		Timestamp: time.Now().Unix(),
	}

	// Free commands are vouched for by a throwaway key; only a non-zero
	// price requires the registered oracle. See domain.SignedAuthorization.
	signer := s.oracle
	if price == 0 {
		ephemeral, err := domain.NewIdentity("ephemeral-authorizer")
		if err != nil {
			return "", err
		}
		signer = ephemeral
	}

	cmd := domain.Command{
		ID:            id,
		Price:         price,
		Timestamp:     message.Timestamp,
		Payload:       payload,
		Authorization: domain.SignAuthorization(message, signer),
	}

	unsigned, err := s.preparer.PrepareUserDispatchCommand(ctx, from.PublicKey, s.admin, cmd)
	if err != nil {
		return "", fmt.Errorf("preparing command %d for %s: %w", id, from.Name, err)
	}

	signature, err := s.submitter.Submit(ctx, unsigned, from)
	if err != nil {
		return "", err
	}
	s.log.Debug("Command confirmed", "from", from.Name, "command_id", id, "signature", signature)
	return signature, nil
}

func simulateDownload(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
