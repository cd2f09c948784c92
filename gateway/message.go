package gateway

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"meet-lab/domain"
)

// Client-to-server command types.
const (
	TypeHello      = "hello"
	TypeCreateRoom = "create_room"
	TypeJoin       = "join"
	TypeLeave      = "leave"
	TypeListRooms  = "list_rooms"
	TypeListUsers  = "list_users"
)

// Server-to-client reply types.
const (
	TypeWelcome = "welcome"
	TypeRooms   = "rooms"
	TypeUsers   = "users"
	TypeJoined  = "joined"
	TypeLeft    = "left"
	TypeError   = "error"
)

// Message is the JSON envelope for everything crossing the websocket, in
// both directions. Fields are omitted when empty so each message only
// carries what its type needs.
type Message struct {
	Type     string            `json:"type"`
	Username string            `json:"username,omitempty"`
	Room     string            `json:"room,omitempty"`
	Rooms    []domain.RoomInfo `json:"rooms,omitempty"`
	Users    []string          `json:"users,omitempty"`
	Reason   string            `json:"reason,omitempty"`
}

// Room names and usernames share the same syntax: letters, digits, '_',
// '-', '.', 1 to 32 characters. The gateway is the upstream validator, the
// registry never sees a name that failed this check.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,32}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	})
	return v
}

const (
	reasonBadRoomName = "room name must contain only letters, numbers, '_', '-', '.' and be up to 32 characters"
	reasonBadUsername = "username must contain only letters, numbers, '_', '-', '.' and be up to 32 characters"
)

type helloCommand struct {
	Username string `validate:"required,identifier"`
}

type roomCommand struct {
	Room string `validate:"required,identifier"`
}

func validUsername(username string) bool {
	return validate.Struct(helloCommand{Username: username}) == nil
}

func validRoomName(name string) bool {
	return validate.Struct(roomCommand{Room: name}) == nil
}
