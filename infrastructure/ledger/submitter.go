package ledger

import (
	"context"
	"log/slog"

	"social-bridge/contract"
	"social-bridge/domain"
)

// Submitter turns a prepared blob into a confirmed transaction:
// fetch the current anchor, attach exactly one local signature, broadcast,
// and block until the ledger reports the configured commitment.
//
// Failures propagate to the caller untouched. There are no implicit
// retries here: a bot turn or UI action decides what to do next.
type Submitter struct {
	ledger contract.LedgerClient
	log    *slog.Logger
}

func NewSubmitter(ledger contract.LedgerClient, log *slog.Logger) *Submitter {
	return &Submitter{ledger: ledger, log: log}
}

func (s *Submitter) Submit(ctx context.Context, unsignedTx []byte, signer domain.Identity) (string, error) {
	// The anchor is fetched no earlier than signing: the signature covers it.
	anchor, err := s.ledger.LatestAnchor(ctx)
	if err != nil {
		return "", err
	}

	message := append(append([]byte{}, anchor[:]...), unsignedTx...)
	env := envelope{
		Anchor:    anchor,
		SignerKey: signer.PublicKey,
		Signature: signer.Sign(message),
		Unsigned:  unsignedTx,
	}

	signature, err := s.ledger.SubmitSigned(ctx, env.encode())
	if err != nil {
		return "", err
	}
	s.log.Debug("Transaction broadcast", "signer", signer.Name, "signature", signature)

	if err := s.ledger.Confirm(ctx, signature); err != nil {
		return "", err
	}
	return signature, nil
}
