package domain

import (
	"crypto/ed25519"
	"encoding/binary"
	"fmt"
)

// AuthorizationMessageSize is the exact wire size of an encoded
// authorization message: command id (2) + price (8) + timestamp (8).
const AuthorizationMessageSize = 18

// AuthorizationMessage is the fixed-layout message a price-authorizing
// signature is computed over. Encoding is total and deterministic: two
// messages with identical fields always encode to identical bytes.
type AuthorizationMessage struct {
	CommandID CommandID
	Price     uint64
	Timestamp int64
}

// Encode serializes the message little-endian into exactly 18 bytes:
// bytes[0:2] command id, bytes[2:10] price, bytes[10:18] timestamp.
func (m AuthorizationMessage) Encode() []byte {
	buf := make([]byte, AuthorizationMessageSize)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(m.CommandID))
	binary.LittleEndian.PutUint64(buf[2:10], m.Price)
	binary.LittleEndian.PutUint64(buf[10:18], uint64(m.Timestamp))
	return buf
}

// DecodeAuthorizationMessage is the inverse of Encode.
func DecodeAuthorizationMessage(raw []byte) (AuthorizationMessage, error) {
	if len(raw) != AuthorizationMessageSize {
		return AuthorizationMessage{}, fmt.Errorf("authorization message: expected %d bytes, got %d", AuthorizationMessageSize, len(raw))
	}
	return AuthorizationMessage{
		CommandID: CommandID(binary.LittleEndian.Uint16(raw[0:2])),
		Price:     binary.LittleEndian.Uint64(raw[2:10]),
		Timestamp: int64(binary.LittleEndian.Uint64(raw[10:18])),
	}, nil
}

// SignedAuthorization couples a message with the key that vouched for it.
// It is built immediately before a dispatch, consumed once by the
// preparer, and never persisted.
//
// A price of zero may be authorized by a freshly generated single-use key:
// that proves only that some key signed the message, not that a trusted
// price authority did. Non-zero prices must be signed by the registered
// oracle key.
type SignedAuthorization struct {
	Message         AuthorizationMessage
	SignerPublicKey ed25519.PublicKey
	Signature       []byte
}

// SignAuthorization signs the raw encoded bytes of m, not a hash of them.
func SignAuthorization(m AuthorizationMessage, signer Identity) SignedAuthorization {
	return SignedAuthorization{
		Message:         m,
		SignerPublicKey: signer.PublicKey,
		Signature:       signer.Sign(m.Encode()),
	}
}

// Verify reports whether the signature covers the encoded message under
// the recorded public key.
func (s SignedAuthorization) Verify() bool {
	if len(s.SignerPublicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(s.SignerPublicKey, s.Message.Encode(), s.Signature)
}
