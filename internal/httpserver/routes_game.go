// internal/httpserver/routes_game.go
//
// HTTP routes for the puzzle itself. Exposes, under /game:
//   - POST /game/new            → create a session (guest or logged in)
//   - GET  /game/{id}           → current state snapshot
//   - POST /game/{id}/select    → select (or toggle) a tray slot
//   - POST /game/{id}/drop      → attempt a placement
//   - POST /game/{id}/deselect  → cancel the selection
//   - POST /game/{id}/restart   → start a fresh game in the same session
//   - GET  /game/{id}/ws        → websocket; a snapshot after every change
//
// The engine rejects invalid actions silently, so every action endpoint just
// forwards the call and returns the resulting snapshot. Finished games are
// persisted from the engine's change callback, because a game can end inside
// the delayed clear, outside any request.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mlowery2/blockpuzzle/internal/puzzle"
	"github.com/mlowery2/blockpuzzle/internal/store"
)

// gameServer wraps dependencies for /game endpoints.
type gameServer struct {
	srv *Server
	hub *wsHub
}

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	gs := &gameServer{srv: s, hub: newWSHub()}
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", gs.handleNew)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", gs.handleState)
			r.Post("/select", gs.handleSelect)
			r.Post("/drop", gs.handleDrop)
			r.Post("/deselect", gs.handleDeselect)
			r.Post("/restart", gs.handleRestart)
			r.Get("/ws", gs.handleWS)
		})
	})
}

// ownerID returns (userID, ownerID) for the request: the user ID twice when
// logged in, otherwise "" and the anonymous cookie ID.
func (g *gameServer) ownerID(w http.ResponseWriter, r *http.Request) (string, string) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, me.ID
	}
	return "", g.srv.ensureAnonID(w, r)
}

// session loads the session for {id} and verifies the caller owns it.
func (g *gameServer) session(w http.ResponseWriter, r *http.Request) *store.Session {
	id := chi.URLParam(r, "id")
	sess, err := g.srv.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil
	}
	if _, owner := g.ownerID(w, r); owner != sess.OwnerID {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil
	}
	return sess
}

// -----------------------------------------------------------------------------
// /game/new

// newGameRes is returned by /game/new.
type newGameRes struct {
	GameID string          `json:"gameId"`
	State  puzzle.Snapshot `json:"state"`
}

// handleNew creates a session with a running game. The best score comes from
// the owner's best-score backend and follows the player across games.
func (g *gameServer) handleNew(w http.ResponseWriter, r *http.Request) {
	userID, owner := g.ownerID(w, r)

	sess := &store.Session{
		ID:        uuid.NewString(),
		OwnerID:   owner,
		UserID:    userID,
		StartedAt: time.Now(),
	}
	sess.Game = puzzle.New(puzzle.Config{
		Best:       g.srv.bestStoreFor(owner),
		ClearDelay: g.srv.delay,
		OnChange: func(snap puzzle.Snapshot) {
			g.hub.publish(sess.ID, snap)
			if snap.GameOver {
				g.srv.recordFinishedGame(sess, snap)
			}
		},
	})

	if err := g.srv.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", sess.ID).Str("owner", owner).Msg("game created")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, State: sess.Game.Snapshot()})
}

// -----------------------------------------------------------------------------
// actions

type selectReq struct {
	Slot int `json:"slot"`
}

type dropReq struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (g *gameServer) handleState(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	if sess == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(sess.Game.Snapshot())
}

func (g *gameServer) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	if sess == nil {
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess.Game.SelectPiece(req.Slot)
	_ = json.NewEncoder(w).Encode(sess.Game.Snapshot())
}

func (g *gameServer) handleDrop(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	if sess == nil {
		return
	}
	var req dropReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Row < 0 || req.Row >= puzzle.GridSize || req.Col < 0 || req.Col >= puzzle.GridSize {
		http.Error(w, `{"error":"out_of_range"}`, http.StatusBadRequest)
		return
	}
	sess.Game.Drop(req.Row, req.Col)
	_ = json.NewEncoder(w).Encode(sess.Game.Snapshot())
}

func (g *gameServer) handleDeselect(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	if sess == nil {
		return
	}
	sess.Game.Deselect()
	_ = json.NewEncoder(w).Encode(sess.Game.Snapshot())
}

// handleRestart begins a new game in place, discarding any pending clear.
func (g *gameServer) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	if sess == nil {
		return
	}
	sess.ResetRecorded()
	sess.StartedAt = time.Now()
	snap := sess.Game.Start()
	log.Info().Str("gameId", sess.ID).Msg("game restarted")
	_ = json.NewEncoder(w).Encode(snap)
}

// -----------------------------------------------------------------------------
// websocket

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Browser clients come from the configured origin; CORS already gates
	// the REST surface, so mirror that here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWS upgrades the connection and streams a snapshot after every state
// change until the client goes away.
func (g *gameServer) handleWS(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	if sess == nil {
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("ws upgrade")
		return
	}

	g.hub.add(sess.ID, conn)
	// Prime the client with the current state.
	g.hub.send(conn, sess.Game.Snapshot())

	// Clients only listen; the read loop exists to notice disconnects.
	go func() {
		defer func() {
			g.hub.remove(sess.ID, conn)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// wsHub fans game snapshots out to websocket subscribers, keyed by game ID.
type wsHub struct {
	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]bool
}

func newWSHub() *wsHub {
	return &wsHub{subs: make(map[string]map[*websocket.Conn]bool)}
}

func (h *wsHub) add(id string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[id] == nil {
		h.subs[id] = make(map[*websocket.Conn]bool)
	}
	h.subs[id][c] = true
}

func (h *wsHub) remove(id string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[id], c)
	if len(h.subs[id]) == 0 {
		delete(h.subs, id)
	}
}

// send writes one snapshot to one connection.
func (h *wsHub) send(c *websocket.Conn, snap puzzle.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = c.WriteJSON(snap)
}

// publish pushes a snapshot to every subscriber of a game. Dead connections
// are dropped on write failure.
func (h *wsHub) publish(id string, snap puzzle.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.subs[id] {
		if err := c.WriteJSON(snap); err != nil {
			delete(h.subs[id], c)
			_ = c.Close()
		}
	}
}
