package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meet-lab/domain"
	"meet-lab/errors"
)

func TestDirectory_Register_And_Lookup(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	session := domain.NewSession("alice")

	// When a session is registered
	req.NoError(directory.Register(session))

	// Then it can be resolved by username
	found, ok := directory.Lookup("alice")
	req.True(ok)
	req.Same(session, found)
	req.Equal(1, directory.Len())
}

func TestDirectory_Register_Rejects_Duplicate_Username(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	req.NoError(directory.Register(domain.NewSession("alice")))

	// When the same username registers again
	err := directory.Register(domain.NewSession("alice"))

	// Then the live session is not replaced
	req.ErrorIs(err, errors.ErrUsernameTaken)
	req.Equal(1, directory.Len())
}

func TestDirectory_Unregister(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	req.NoError(directory.Register(domain.NewSession("alice")))

	directory.Unregister("alice")

	_, ok := directory.Lookup("alice")
	req.False(ok)
	req.Equal(0, directory.Len())

	// Unregistering an unknown username is harmless
	directory.Unregister("ghost")
}
