package projection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"social-bridge/domain"
	"social-bridge/domain/event"
	"social-bridge/sink"
	"social-bridge/state"
)

func newFixture(t *testing.T) (*ChatLog, *state.Store, domain.ProfileAddress) {
	t.Helper()
	store := state.NewStore(sink.NewNotifier())

	alice, err := domain.NewIdentity("Alice")
	require.NoError(t, err)
	admin, err := domain.NewIdentity("admin")
	require.NoError(t, err)
	address := domain.DeriveUserProfileAddress(alice.PublicKey,
		domain.DeriveAdminProfileAddress(admin.PublicKey))

	names := map[domain.ProfileAddress]string{address: "Alice"}
	return NewChatLog(store, names), store, address
}

func TestChatLog_TextMessage(t *testing.T) {
	req := require.New(t)
	chatLog, store, address := newFixture(t)

	chatLog.Consume(event.CommandDispatched{
		Sender:    address,
		CommandID: domain.CommandTextMessage,
		Payload:   []byte("MSG:hello"),
	})

	snapshot := store.Snapshot()
	req.Len(snapshot.Entries, 1)
	req.Equal("[Alice]: hello", snapshot.Entries[0].Text)
}

func TestChatLog_FileTransferNotice(t *testing.T) {
	req := require.New(t)
	chatLog, store, address := newFixture(t)

	chatLog.Consume(event.CommandDispatched{
		Sender:    address,
		CommandID: domain.CommandFileTransfer,
		Payload:   []byte{0x08, 0x01}, // opaque config bytes, no MSG prefix
	})

	snapshot := store.Snapshot()
	req.Len(snapshot.Entries, 1)
	req.Equal("[Alice] sent a file transfer request.", snapshot.Entries[0].Text)
}

func TestChatLog_PaidStickerNotice(t *testing.T) {
	req := require.New(t)
	chatLog, store, address := newFixture(t)

	chatLog.Consume(event.CommandDispatched{
		Sender:    address,
		CommandID: domain.CommandPaidSticker,
		PricePaid: 1_000_000,
		Payload:   []byte("STICKER:smiley_face"),
	})

	snapshot := store.Snapshot()
	req.Len(snapshot.Entries, 1)
	req.Equal("[Alice] sent a paid sticker!", snapshot.Entries[0].Text)
}

func TestChatLog_UnrecognizedCommandIgnored(t *testing.T) {
	req := require.New(t)
	chatLog, store, address := newFixture(t)

	chatLog.Consume(event.CommandDispatched{
		Sender:    address,
		CommandID: 99,
		Payload:   []byte("whatever"),
	})

	req.Empty(store.Snapshot().Entries)
}

func TestChatLog_MessagePrefixWinsOverCommandID(t *testing.T) {
	req := require.New(t)
	chatLog, store, address := newFixture(t)

	// A MSG: payload renders as text whatever the command id says.
	chatLog.Consume(event.CommandDispatched{
		Sender:    address,
		CommandID: domain.CommandFileTransfer,
		Payload:   []byte("MSG:surprise"),
	})

	snapshot := store.Snapshot()
	req.Len(snapshot.Entries, 1)
	req.Equal("[Alice]: surprise", snapshot.Entries[0].Text)
}

func TestChatLog_UnknownSenderFallsBackToYou(t *testing.T) {
	req := require.New(t)
	chatLog, store, _ := newFixture(t)

	chatLog.Consume(event.CommandDispatched{
		Sender:    domain.ProfileAddress{0xAA},
		CommandID: domain.CommandTextMessage,
		Payload:   []byte("MSG:hi all"),
	})

	snapshot := store.Snapshot()
	req.Len(snapshot.Entries, 1)
	req.Equal("[You]: hi all", snapshot.Entries[0].Text)
}

func TestChatLog_UserBanned(t *testing.T) {
	req := require.New(t)
	chatLog, store, address := newFixture(t)

	chatLog.Consume(event.UserBanned{Target: address})

	snapshot := store.Snapshot()
	req.Len(snapshot.Entries, 1)
	req.Equal("[ADMIN]: Alice has been banned.", snapshot.Entries[0].Text)
	req.Equal(domain.StatusBanned, store.Status("Alice"))

	// A second ban event appends a second notice; deduplication is not
	// this layer's job.
	chatLog.Consume(event.UserBanned{Target: address})
	req.Len(store.Snapshot().Entries, 2)
}
