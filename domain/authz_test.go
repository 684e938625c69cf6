package domain

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorizationMessage_EncodeLayout(t *testing.T) {
	req := require.New(t)

	m := AuthorizationMessage{
		CommandID: CommandPaidSticker,
		Price:     1_000_000,
		Timestamp: 1_700_000_000,
	}
	raw := m.Encode()

	req.Len(raw, AuthorizationMessageSize)
	req.Equal(uint16(3), binary.LittleEndian.Uint16(raw[0:2]))
	req.Equal(uint64(1_000_000), binary.LittleEndian.Uint64(raw[2:10]))
	req.Equal(uint64(1_700_000_000), binary.LittleEndian.Uint64(raw[10:18]))
}

func TestAuthorizationMessage_RoundTrip(t *testing.T) {
	req := require.New(t)

	cases := []AuthorizationMessage{
		{CommandID: CommandTextMessage, Price: 0, Timestamp: 0},
		{CommandID: CommandFileTransfer, Price: 1, Timestamp: -1},
		{CommandID: CommandPaidSticker, Price: 1_000_000, Timestamp: 1_700_000_000},
		{CommandID: 65535, Price: ^uint64(0), Timestamp: 1<<63 - 1},
	}
	for _, m := range cases {
		decoded, err := DecodeAuthorizationMessage(m.Encode())
		req.NoError(err)
		req.Equal(m, decoded)
	}
}

func TestDecodeAuthorizationMessage_WrongSize(t *testing.T) {
	req := require.New(t)

	_, err := DecodeAuthorizationMessage(make([]byte, 17))
	req.Error(err)

	_, err = DecodeAuthorizationMessage(make([]byte, 19))
	req.Error(err)
}

func TestSignAuthorization_Verify(t *testing.T) {
	req := require.New(t)
	signer, err := NewIdentity("oracle")
	req.NoError(err)

	m := AuthorizationMessage{CommandID: CommandPaidSticker, Price: 1_000_000, Timestamp: 42}
	signed := SignAuthorization(m, signer)

	req.True(signed.Verify())
}

func TestSignAuthorization_RejectsMutations(t *testing.T) {
	req := require.New(t)
	signer, err := NewIdentity("oracle")
	req.NoError(err)

	m := AuthorizationMessage{CommandID: CommandTextMessage, Price: 7, Timestamp: 42}
	signed := SignAuthorization(m, signer)

	// Every single-bit flip of the message must break verification.
	raw := m.Encode()
	for byteIdx := range raw {
		for bit := 0; bit < 8; bit++ {
			mutated := make([]byte, len(raw))
			copy(mutated, raw)
			mutated[byteIdx] ^= 1 << bit

			decoded, err := DecodeAuthorizationMessage(mutated)
			req.NoError(err)

			tampered := SignedAuthorization{
				Message:         decoded,
				SignerPublicKey: signed.SignerPublicKey,
				Signature:       signed.Signature,
			}
			req.False(tampered.Verify(), "bit %d of byte %d", bit, byteIdx)
		}
	}
}

func TestSignAuthorization_RejectsWrongKey(t *testing.T) {
	req := require.New(t)
	signer, err := NewIdentity("oracle")
	req.NoError(err)
	other, err := NewIdentity("impostor")
	req.NoError(err)

	m := AuthorizationMessage{CommandID: CommandTextMessage, Price: 0, Timestamp: 1}
	signed := SignAuthorization(m, signer)
	signed.SignerPublicKey = other.PublicKey

	req.False(signed.Verify())
}

func TestSignedAuthorization_VerifyBadKeySize(t *testing.T) {
	req := require.New(t)

	s := SignedAuthorization{
		Message:         AuthorizationMessage{},
		SignerPublicKey: []byte{1, 2, 3},
		Signature:       make([]byte, 64),
	}
	req.False(s.Verify())
}
