package domain

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ProfileAddress is the deterministic on-chain address of a profile.
// Derivation is pure: the same role tag, owner key and parent always
// produce the same address, and distinct inputs never collide.
type ProfileAddress [32]byte

const (
	adminProfileSeed = "admin_profile"
	userProfileSeed  = "user_profile"
)

// DeriveAdminProfileAddress binds an admin profile to its owner key.
func DeriveAdminProfileAddress(owner ed25519.PublicKey) ProfileAddress {
	h := sha256.New()
	h.Write([]byte(adminProfileSeed))
	h.Write(owner)
	return ProfileAddress(h.Sum(nil))
}

// DeriveUserProfileAddress binds a user profile to its owner key within
// the scope of one admin profile.
func DeriveUserProfileAddress(owner ed25519.PublicKey, admin ProfileAddress) ProfileAddress {
	h := sha256.New()
	h.Write([]byte(userProfileSeed))
	h.Write(owner)
	h.Write(admin[:])
	return ProfileAddress(h.Sum(nil))
}

func (a ProfileAddress) String() string {
	return hex.EncodeToString(a[:])
}

func ParseProfileAddress(s string) (ProfileAddress, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ProfileAddress{}, fmt.Errorf("decoding profile address %q: %w", s, err)
	}
	if len(raw) != len(ProfileAddress{}) {
		return ProfileAddress{}, fmt.Errorf("profile address %q: expected %d bytes, got %d", s, len(ProfileAddress{}), len(raw))
	}
	var a ProfileAddress
	copy(a[:], raw)
	return a, nil
}
