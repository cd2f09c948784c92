package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"meet-lab/runtime"
	"meet-lab/services"
)

const shutdownTimeout = 5 * time.Second

// Server is the session/control gateway: it upgrades websocket clients,
// owns the client directory, and exposes a small HTTP surface for polling
// presentation clients. It runs as a worker under the supervisor.
type Server struct {
	log        *slog.Logger
	addr       string
	lobby      services.ILobbyService
	directory  *runtime.Directory
	sendBuffer int
	upgrader   websocket.Upgrader
}

func NewServer(
	log *slog.Logger,
	addr string,
	lobby services.ILobbyService,
	directory *runtime.Directory,
	sendBuffer int,
) *Server {
	return &Server{
		log:        log,
		addr:       addr,
		lobby:      lobby,
		directory:  directory,
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			// Lobby clients come from anywhere on the LAN/VPN.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler builds the gateway's HTTP surface. Separate from Run so tests
// can mount it on an httptest server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/rooms", s.handleRooms)
	mux.HandleFunc("/users", s.handleUsers)
	return mux
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Gateway listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Upgrade failed", "error", err)
		return
	}

	client := &Client{
		server: s,
		conn:   conn,
		send:   make(chan Message, s.sendBuffer),
		log:    s.log.With("remote", conn.RemoteAddr().String()),
	}

	go client.writePump()
	go client.readPump()
}

// dropClient tears a connection down. A registered session goes through
// the normal leave path first, so an abrupt disconnect restores the same
// invariants as an explicit leave, then the session disappears from the
// directory.
func (s *Server) dropClient(c *Client) {
	if c.session != nil {
		if err := s.lobby.LeaveRoom(c.session.Username); err != nil {
			c.log.Warn("Leave on disconnect failed", "error", err)
		}
		s.directory.Unregister(c.session.Username)
		c.log.Info("Session unregistered")
	}
	close(c.send)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleRooms serves the lobby room list with member counts as JSON, for
// clients that poll instead of holding a websocket (lobbyctl).
func (s *Server) handleRooms(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.lobby.Rooms())
}

// handleUsers serves the member list of one room: GET /users?room=name.
// An unknown room yields an empty list, not an error.
func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("room")
	if !validRoomName(name) {
		http.Error(w, reasonBadRoomName, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.lobby.Users(name))
}
