package gateway

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"meet-lab/domain"
	meeterrors "meet-lab/errors"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Commands are tiny.
	maxMessageSize = 4 * 1024
)

// Client wraps a single websocket connection. A client starts anonymous;
// the first hello registers a session in the directory and from then on
// the connection acts for that username until it goes away.
type Client struct {
	server  *Server
	conn    *websocket.Conn
	session *domain.Session
	send    chan Message
	log     *slog.Logger
}

// readPump pumps commands from the websocket into the lobby service.
// There is at most one reader per connection: all reads happen here.
func (c *Client) readPump() {
	defer func() {
		c.server.dropClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Warn("Read failed", "error", err)
			}
			return
		}
		c.handle(msg)
	}
}

// writePump drains the send channel onto the websocket and keeps the
// connection alive with pings. There is at most one writer per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.Warn("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(msg Message) {
	if msg.Type == TypeHello {
		c.hello(msg.Username)
		return
	}
	if c.session == nil {
		c.reply(Message{Type: TypeError, Reason: "say hello first"})
		return
	}

	switch msg.Type {
	case TypeCreateRoom:
		if !validRoomName(msg.Room) {
			c.reply(Message{Type: TypeError, Reason: reasonBadRoomName})
			return
		}
		c.server.lobby.CreateRoom(msg.Room)
		c.reply(Message{Type: TypeRooms, Rooms: c.server.lobby.Rooms()})

	case TypeJoin:
		if !validRoomName(msg.Room) {
			c.reply(Message{Type: TypeError, Reason: reasonBadRoomName})
			return
		}
		if err := c.server.lobby.JoinRoom(c.session.Username, msg.Room); err != nil {
			c.reply(Message{Type: TypeError, Reason: err.Error()})
			return
		}
		c.reply(Message{Type: TypeJoined, Room: msg.Room})

	case TypeLeave:
		if err := c.server.lobby.LeaveRoom(c.session.Username); err != nil {
			c.reply(Message{Type: TypeError, Reason: err.Error()})
			return
		}
		c.reply(Message{Type: TypeLeft})

	case TypeListRooms:
		c.reply(Message{Type: TypeRooms, Rooms: c.server.lobby.Rooms()})

	case TypeListUsers:
		c.reply(Message{Type: TypeUsers, Room: msg.Room, Users: c.server.lobby.Users(msg.Room)})

	default:
		c.reply(Message{Type: TypeError, Reason: "unknown command"})
	}
}

// hello identifies the connection. The username must pass the same syntax
// check as room names and must not collide with a live session; nothing is
// registered when either fails, the client may retry with another name.
func (c *Client) hello(username string) {
	if c.session != nil {
		c.reply(Message{Type: TypeError, Reason: "already registered"})
		return
	}
	if !validUsername(username) {
		c.reply(Message{Type: TypeError, Reason: reasonBadUsername})
		return
	}

	session := domain.NewSession(username)
	if err := c.server.directory.Register(session); err != nil {
		if errors.Is(err, meeterrors.ErrUsernameTaken) {
			c.reply(Message{Type: TypeError, Reason: "username already registered"})
			return
		}
		c.reply(Message{Type: TypeError, Reason: err.Error()})
		return
	}

	c.session = session
	c.log = c.log.With("username", username)
	c.log.Info("Session registered", "session_id", session.ID)
	c.reply(Message{Type: TypeWelcome, Username: username})
}

// reply queues a message for the write pump. A client that cannot keep up
// loses replies rather than blocking the reader.
func (c *Client) reply(msg Message) {
	select {
	case c.send <- msg:
	default:
		c.log.Warn("Send buffer full, dropping reply", "type", msg.Type)
	}
}
