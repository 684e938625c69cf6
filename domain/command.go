package domain

// CommandID is a closed enumeration on our side, but an open one on the
// wire: consumers must ignore ids they do not recognize, never reject them.
type CommandID uint16

const (
	CommandTextMessage  CommandID = 1
	CommandFileTransfer CommandID = 2
	CommandPaidSticker  CommandID = 3
)

// MessagePrefix marks a payload as a plain chat message.
const MessagePrefix = "MSG:"

// Command is a fully authorized operation ready to be prepared and submitted.
type Command struct {
	ID            CommandID
	Price         uint64
	Timestamp     int64
	Payload       []byte
	Authorization SignedAuthorization
}
