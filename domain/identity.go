// Package domain contains core concepts of the bridge client.
// Identities, profile addresses, commands and the authorization codec
// live here; nothing in this package performs I/O.
package domain

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// IdentityStatus reflects what the event stream has told us about a participant.
type IdentityStatus string

const (
	StatusOnline IdentityStatus = "Online"
	StatusBanned IdentityStatus = "Banned"
	StatusError  IdentityStatus = "Error"
)

// Identity is a participant keypair. It is created once per participant
// and never changes for the lifetime of the process.
type Identity struct {
	Name      string
	PublicKey ed25519.PublicKey

	privateKey ed25519.PrivateKey
}

func NewIdentity(name string) (Identity, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Identity{}, fmt.Errorf("generating keypair for %q: %w", name, err)
	}
	return Identity{Name: name, PublicKey: pub, privateKey: priv}, nil
}

// Sign produces a detached ed25519 signature over message.
func (id Identity) Sign(message []byte) []byte {
	return ed25519.Sign(id.privateKey, message)
}

// PublicKeyHex is the wire form used in gateway and ledger requests.
func (id Identity) PublicKeyHex() string {
	return hex.EncodeToString(id.PublicKey)
}
