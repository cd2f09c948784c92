package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidRoomName(t *testing.T) {
	req := require.New(t)

	// Accepted: letters, digits, '_', '-', '.', up to 32 chars
	req.True(validRoomName("team-standup"))
	req.True(validRoomName("Room_1.b"))
	req.True(validRoomName("a"))
	req.True(validRoomName(strings.Repeat("x", 32)))

	// Rejected
	req.False(validRoomName(""))
	req.False(validRoomName(strings.Repeat("x", 33)))
	req.False(validRoomName("no spaces"))
	req.False(validRoomName("équipe"))
	req.False(validRoomName("room/1"))
}

func TestValidUsername(t *testing.T) {
	req := require.New(t)

	req.True(validUsername("alice"))
	req.True(validUsername("bob-2.0"))
	req.False(validUsername(""))
	req.False(validUsername("al ice"))
}
