package domain

// RoomInfo is the lobby-facing view of a room: its name and how many
// members it currently has. It carries no membership details on purpose,
// the lobby only renders "name [count]" rows.
type RoomInfo struct {
	Name  string `json:"name"`
	Users int    `json:"users"`
}
