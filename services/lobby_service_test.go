package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meet-lab/domain"
	"meet-lab/runtime"
)

func newLobby(t *testing.T, usernames ...string) *LobbyService {
	t.Helper()
	directory := runtime.NewDirectory()
	for _, username := range usernames {
		require.NoError(t, directory.Register(domain.NewSession(username)))
	}
	return NewLobbyService(runtime.NewRegistry(directory))
}

func TestLobbyService_Rooms_Sorted_With_Counts(t *testing.T) {
	req := require.New(t)
	lobby := newLobby(t, "alice", "bob", "carol")

	// Given two rooms with different member counts
	req.NoError(lobby.JoinRoom("alice", "standup"))
	req.NoError(lobby.JoinRoom("bob", "standup"))
	req.NoError(lobby.JoinRoom("carol", "design"))

	// Then the lobby view is sorted by name and carries the counts
	req.Equal([]domain.RoomInfo{
		{Name: "design", Users: 1},
		{Name: "standup", Users: 2},
	}, lobby.Rooms())
}

func TestLobbyService_Delegates_Join_And_Leave(t *testing.T) {
	req := require.New(t)
	lobby := newLobby(t, "alice")

	lobby.CreateRoom("standup")
	req.NoError(lobby.JoinRoom("alice", "standup"))

	room, ok := lobby.UserRoom("alice")
	req.True(ok)
	req.Equal("standup", room)
	req.Equal([]string{"alice"}, lobby.Users("standup"))

	req.NoError(lobby.LeaveRoom("alice"))
	req.Empty(lobby.Rooms())
}
