package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrLedgerUnavailable = fmt.Errorf("ledger unreachable")
	ErrAnchorExpired     = fmt.Errorf("anchor expired before confirmation")
	ErrNotConfirmed      = fmt.Errorf("transaction not confirmed in time")
	ErrUnknownIdentity   = fmt.Errorf("unknown identity")
)
