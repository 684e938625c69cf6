// Package event defines the ledger events observed through the gateway
// stream. Events are produced remotely and consumed exactly once per
// stream position by the listener that owns the subscription.
package event

import "social-bridge/domain"

// BridgeEvent is the union of events a profile subscription can deliver.
type BridgeEvent interface {
	Timestamp() int64
}

// CommandDispatched reports that a user command was confirmed on the ledger.
type CommandDispatched struct {
	Sender    domain.ProfileAddress
	CommandID domain.CommandID
	PricePaid uint64
	Payload   []byte
	Ts        int64
}

func (e CommandDispatched) Timestamp() int64 { return e.Ts }

// UserBanned reports that an admin banned the target profile.
type UserBanned struct {
	Target domain.ProfileAddress
	Ts     int64
}

func (e UserBanned) Timestamp() int64 { return e.Ts }
