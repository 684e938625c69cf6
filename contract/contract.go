//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"crypto/ed25519"
	"reflect"

	"social-bridge/domain"
	"social-bridge/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// TransactionPreparer is the gateway boundary: one method per operation,
// each returning an opaque unsigned transaction blob. The blob must be
// signed as-is and never mutated by the caller.
type TransactionPreparer interface {
	PrepareAdminRegisterProfile(ctx context.Context, authority, communicationKey ed25519.PublicKey) ([]byte, error)
	PrepareUserCreateProfile(ctx context.Context, authority ed25519.PublicKey, targetAdmin domain.ProfileAddress, communicationKey ed25519.PublicKey) ([]byte, error)
	PrepareUserDeposit(ctx context.Context, authority ed25519.PublicKey, admin domain.ProfileAddress, amount uint64) ([]byte, error)
	PrepareUserDispatchCommand(ctx context.Context, authority ed25519.PublicKey, targetAdmin domain.ProfileAddress, cmd domain.Command) ([]byte, error)
	PrepareLogAction(ctx context.Context, authority ed25519.PublicKey, user, admin domain.ProfileAddress, sessionID uint64, actionCode uint16) ([]byte, error)
	PrepareAdminBanUser(ctx context.Context, authority ed25519.PublicKey, targetUser domain.ProfileAddress) ([]byte, error)
}

// LedgerClient exposes the four ledger RPCs the client needs. Confirm
// blocks until the configured commitment level is reached or the
// confirmation window elapses.
type LedgerClient interface {
	RequestFunding(ctx context.Context, recipient ed25519.PublicKey, amount uint64) error
	LatestAnchor(ctx context.Context) ([32]byte, error)
	SubmitSigned(ctx context.Context, signedTx []byte) (string, error)
	Confirm(ctx context.Context, signature string) error
}

// TransactionSubmitter attaches exactly one local signature to a prepared
// blob, broadcasts it, and blocks until ledger confirmation. It never
// retries; callers needing resilience wrap it themselves.
type TransactionSubmitter interface {
	Submit(ctx context.Context, unsignedTx []byte, signer domain.Identity) (string, error)
}

// EventStream yields decoded bridge events in subscription order.
type EventStream interface {
	Recv() (event.BridgeEvent, error)
}

// EventSubscriber opens a long-lived stream filtered to one profile address.
type EventSubscriber interface {
	Listen(ctx context.Context, address domain.ProfileAddress) (EventStream, error)
}

type EventSink interface {
	Consume(e event.BridgeEvent)
}

// ConversationActions are the moves a scheduled bot can make.
type ConversationActions interface {
	SendText(ctx context.Context, from domain.Identity, text string) error
	SendSticker(ctx context.Context, from domain.Identity) error
	TransferFile(ctx context.Context, from, to domain.Identity) error
}

// StatusReader answers status checks without exposing the whole store.
type StatusReader interface {
	Status(name string) domain.IdentityStatus
}
