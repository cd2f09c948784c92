//go:generate go run go.uber.org/mock/mockgen -source=lobby_service.go -destination=../mocks/mock_lobby_service.go -package=mocks
package services

import (
	"sort"

	"github.com/samber/lo"

	"meet-lab/contract"
	"meet-lab/domain"
)

// ILobbyService is what presentation clients (the WS gateway, lobbyctl)
// talk to. It owns no state of its own: every call delegates to the
// registry, which stays the single source of truth.
type ILobbyService interface {
	CreateRoom(name string)
	JoinRoom(username, name string) error
	LeaveRoom(username string) error
	UserRoom(username string) (string, bool)
	Rooms() []domain.RoomInfo
	Users(name string) []string
}

type LobbyService struct {
	registry contract.IRegistry
}

func NewLobbyService(registry contract.IRegistry) *LobbyService {
	return &LobbyService{registry: registry}
}

func (s *LobbyService) CreateRoom(name string) {
	s.registry.CreateRoom(name)
}

func (s *LobbyService) JoinRoom(username, name string) error {
	return s.registry.JoinRoom(username, name)
}

func (s *LobbyService) LeaveRoom(username string) error {
	return s.registry.LeaveRoom(username)
}

func (s *LobbyService) UserRoom(username string) (string, bool) {
	return s.registry.UserRoom(username)
}

// Rooms returns the lobby room list with member counts, sorted by name so
// the rendered list does not jump around between refreshes.
func (s *LobbyService) Rooms() []domain.RoomInfo {
	rooms := lo.MapToSlice(s.registry.Counts(), func(name string, users int) domain.RoomInfo {
		return domain.RoomInfo{Name: name, Users: users}
	})
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
	return rooms
}

func (s *LobbyService) Users(name string) []string {
	return s.registry.Users(name)
}
