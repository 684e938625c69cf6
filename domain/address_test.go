package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveProfileAddresses_Deterministic(t *testing.T) {
	req := require.New(t)
	admin, err := NewIdentity("admin")
	req.NoError(err)
	user, err := NewIdentity("Alice")
	req.NoError(err)

	adminAddr := DeriveAdminProfileAddress(admin.PublicKey)
	req.Equal(adminAddr, DeriveAdminProfileAddress(admin.PublicKey))

	userAddr := DeriveUserProfileAddress(user.PublicKey, adminAddr)
	req.Equal(userAddr, DeriveUserProfileAddress(user.PublicKey, adminAddr))

	// Role separation: the same key never derives the same address for
	// admin and user profiles.
	req.NotEqual(DeriveAdminProfileAddress(user.PublicKey),
		DeriveUserProfileAddress(user.PublicKey, adminAddr))
}

func TestDeriveUserProfileAddress_ScopedToAdmin(t *testing.T) {
	req := require.New(t)
	user, err := NewIdentity("Alice")
	req.NoError(err)
	adminA, err := NewIdentity("admin-a")
	req.NoError(err)
	adminB, err := NewIdentity("admin-b")
	req.NoError(err)

	addrA := DeriveUserProfileAddress(user.PublicKey, DeriveAdminProfileAddress(adminA.PublicKey))
	addrB := DeriveUserProfileAddress(user.PublicKey, DeriveAdminProfileAddress(adminB.PublicKey))
	req.NotEqual(addrA, addrB)
}

func TestParseProfileAddress_RoundTrip(t *testing.T) {
	req := require.New(t)
	admin, err := NewIdentity("admin")
	req.NoError(err)

	addr := DeriveAdminProfileAddress(admin.PublicKey)
	parsed, err := ParseProfileAddress(addr.String())
	req.NoError(err)
	req.Equal(addr, parsed)
}

func TestParseProfileAddress_Invalid(t *testing.T) {
	req := require.New(t)

	_, err := ParseProfileAddress("not-hex")
	req.Error(err)

	_, err = ParseProfileAddress("abcd")
	req.Error(err)
}
