// Package projection turns observed bridge events into shared state
// mutations. Handles classification and sender resolution; does not emit
// events or interact with the UI directly.
package projection

import (
	"fmt"
	"strings"

	"social-bridge/domain"
	"social-bridge/domain/event"
	"social-bridge/state"
)

// unknownSenderLabel is used when a sender address matches no known
// identity, which happens for commands dispatched by the human user.
const unknownSenderLabel = "You"

// ChatLog applies events from one subscription to the shared store.
// Per-stream order is preserved because Consume is called sequentially by
// the owning listener; interleaving across listeners follows lock
// acquisition order and is deliberately non-deterministic.
type ChatLog struct {
	store *state.Store
	names map[domain.ProfileAddress]string
}

func NewChatLog(store *state.Store, names map[domain.ProfileAddress]string) *ChatLog {
	return &ChatLog{store: store, names: names}
}

func (p *ChatLog) Consume(e event.BridgeEvent) {
	switch evt := e.(type) {
	case event.CommandDispatched:
		p.applyCommand(evt)
	case event.UserBanned:
		name := p.resolve(evt.Target)
		p.store.Ban(name, fmt.Sprintf("[ADMIN]: %s has been banned.", name))
	}
}

func (p *ChatLog) applyCommand(evt event.CommandDispatched) {
	sender := p.resolve(evt.Sender)

	payload := string(evt.Payload)
	if strings.HasPrefix(payload, domain.MessagePrefix) {
		p.store.Append(fmt.Sprintf("[%s]: %s", sender, strings.TrimPrefix(payload, domain.MessagePrefix)))
		return
	}

	switch evt.CommandID {
	case domain.CommandFileTransfer:
		p.store.Append(fmt.Sprintf("[%s] sent a file transfer request.", sender))
	case domain.CommandPaidSticker:
		p.store.Append(fmt.Sprintf("[%s] sent a paid sticker!", sender))
	default:
		// Unrecognized command ids are forward-compatible: ignore, don't reject.
	}
}

func (p *ChatLog) resolve(address domain.ProfileAddress) string {
	if name, ok := p.names[address]; ok {
		return name
	}
	return unknownSenderLabel
}
