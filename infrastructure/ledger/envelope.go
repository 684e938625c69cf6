package ledger

import (
	"crypto/ed25519"
	"fmt"
)

// Signed transaction envelope, fixed layout:
// anchor (32) | signer public key (32) | signature (64) | unsigned blob.
// The signature covers anchor||blob, which ties the broadcast to the
// anchor fetched at signing time.
const envelopeHeaderSize = 32 + ed25519.PublicKeySize + ed25519.SignatureSize

type envelope struct {
	Anchor    [32]byte
	SignerKey ed25519.PublicKey
	Signature []byte
	Unsigned  []byte
}

func (e envelope) encode() []byte {
	buf := make([]byte, 0, envelopeHeaderSize+len(e.Unsigned))
	buf = append(buf, e.Anchor[:]...)
	buf = append(buf, e.SignerKey...)
	buf = append(buf, e.Signature...)
	buf = append(buf, e.Unsigned...)
	return buf
}

func decodeEnvelope(raw []byte) (envelope, error) {
	if len(raw) < envelopeHeaderSize {
		return envelope{}, fmt.Errorf("signed transaction too short: %d bytes", len(raw))
	}
	var e envelope
	copy(e.Anchor[:], raw[:32])
	e.SignerKey = ed25519.PublicKey(raw[32:64])
	e.Signature = raw[64:128]
	e.Unsigned = raw[128:]
	return e, nil
}

// verify reports whether the envelope carries a valid signature over
// anchor||blob under its recorded signer key.
func (e envelope) verify() bool {
	message := append(append([]byte{}, e.Anchor[:]...), e.Unsigned...)
	return ed25519.Verify(e.SignerKey, message, e.Signature)
}
