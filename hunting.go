// Happy Hunting Grounds
//
// Two players share one session and take turns. The acting player picks a
// difficulty (1-10) and is dealt a random "Team @ Venue" hunting ground of
// that difficulty. They then name a player who scored an away goal there,
// and the season it happened in. The name is fuzzy-matched against the
// recorded scorers: a good match in the right season earns the full
// difficulty in points, the right scorer in the wrong season earns half,
// anything else earns nothing. Scores accumulate until a new game resets.
//
// Features:
// - WebSockets per game ID: /path/:gameid and /path/:gameid/ws
// - All state lives server-side; clients redraw from game_state broadcasts
// - A session reopened from a second device (QR link) mirrors the same game
// - Games auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/Seednode/huntinggrounds/internal/dataset"
	"github.com/Seednode/huntinggrounds/internal/game"
)

// Messages coming from clients
type ClientMessage struct {
	Type       string `json:"type"`                 // "set_name", "choose_prompt", "submit_answer", "next_player", "new_game"
	Seat       int    `json:"seat,omitempty"`       // set_name: 0 or 1
	Name       string `json:"name,omitempty"`       // set_name
	Difficulty int    `json:"difficulty,omitempty"` // choose_prompt
	Scorer     string `json:"scorer,omitempty"`     // submit_answer
	Season     string `json:"season,omitempty"`     // submit_answer
}

// SessionInfoMessage is sent once on connect with the fixed option lists.
type SessionInfoMessage struct {
	Type          string   `json:"type"` // "session_info"
	GameID        string   `json:"game_id"`
	Seasons       []string `json:"seasons"`
	MinDifficulty int      `json:"min_difficulty"`
	MaxDifficulty int      `json:"max_difficulty"`
}

type PlayerState struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ResultState describes the outcome of the last submitted answer.
type ResultState struct {
	Verdict     string               `json:"verdict"` // "incorrect", "half correct", "both correct"
	Guess       string               `json:"guess"`
	MatchedName string               `json:"matched_name,omitempty"`
	Goals       []dataset.GoalRecord `json:"goals,omitempty"` // only on full credit
}

// GameStateMessage is the full session snapshot broadcast after every action.
type GameStateMessage struct {
	Type       string        `json:"type"` // "game_state"
	Players    []PlayerState `json:"players"`
	Current    int           `json:"current"`
	Phase      string        `json:"phase"`
	Prompt     string        `json:"prompt,omitempty"`
	Difficulty int           `json:"difficulty"`
	Season     string        `json:"season"`
	Result     *ResultState  `json:"result,omitempty"`
}

// ErrorMessage is sent only to the client whose action failed.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

type Client struct {
	conn *websocket.Conn
	send chan any
}

type actionRequest struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	clients map[*Client]bool
	game    *game.Game

	register chan *Client
	unreg    chan *Client
	actions  chan actionRequest

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
}

func newHub(gameID string, data *dataset.Dataset) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		clients:    make(map[*Client]bool),
		game:       game.NewGame(data),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		actions:    make(chan actionRequest),
		createdAt:  now,
		lastActive: now,
	}
}

func (h *Hub) run(cfg *Config, m *metrics) {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.clients[c] = true

			c.send <- SessionInfoMessage{
				Type:          "session_info",
				GameID:        h.id,
				Seasons:       dataset.Seasons(),
				MinDifficulty: dataset.MinDifficulty,
				MaxDifficulty: dataset.MaxDifficulty,
			}
			c.send <- h.stateLocked()
			h.mu.Unlock()

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case ar := <-h.actions:
			h.handleAction(cfg, m, ar)
		}
	}
}

func (h *Hub) stateLocked() GameStateMessage {
	g := h.game

	msg := GameStateMessage{
		Type: "game_state",
		Players: []PlayerState{
			{Name: g.Players[0].Name, Score: g.Players[0].Score},
			{Name: g.Players[1].Name, Score: g.Players[1].Score},
		},
		Current:    g.Current,
		Phase:      g.Phase.String(),
		Prompt:     g.Prompt,
		Difficulty: g.Difficulty,
		Season:     g.Season,
	}

	if g.Result != nil {
		msg.Result = &ResultState{
			Verdict:     g.Result.Verdict.String(),
			Guess:       g.Result.Guess,
			MatchedName: g.Result.MatchedName,
			Goals:       g.Result.Goals,
		}
	}

	return msg
}

func (h *Hub) broadcastStateLocked() {
	msg := h.stateLocked()

	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// handleAction applies one client action to the game and broadcasts the
// updated state. Failures are reported only to the offending client.
func (h *Hub) handleAction(cfg *Config, m *metrics, ar actionRequest) {
	c := ar.client
	msg := ar.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	var err error

	switch msg.Type {
	case "set_name":
		err = h.game.SetPlayerName(msg.Seat, msg.Name)

	case "choose_prompt":
		err = h.game.ChoosePrompt(msg.Difficulty)
		if err == nil {
			m.promptsServed.Inc()
			logf(cfg, "GAMES: Dealt %q at difficulty %d in %s", h.game.Prompt, msg.Difficulty, h.id)
		}

	case "submit_answer":
		var result *game.Result
		result, err = h.game.SubmitAnswer(msg.Scorer, msg.Season)
		if err == nil {
			m.answers.WithLabelValues(result.Verdict.String()).Inc()
			logf(cfg, "GAMES: %q guessed %q (%s) for %.1f points in %s",
				h.game.Players[h.game.Current].Name, msg.Scorer, result.Verdict, result.Points, h.id)
		}

	case "next_player":
		err = h.game.AdvanceTurn()

	case "new_game":
		h.game.Reset()
		logf(cfg, "GAMES: New game in %s", h.id)

	default:
		// ignore unknown types
		return
	}

	if err != nil {
		// Data-integrity faults are server problems; log them loudly and
		// keep the session usable.
		if errors.Is(err, game.ErrEmptyPool) || errors.Is(err, game.ErrNoCandidates) {
			log.Printf("%s | ERROR: reference data fault in %s: %v", time.Now().Format(logDate), h.id, err)
		}

		select {
		case c.send <- ErrorMessage{
			Type:    "error",
			Message: err.Error(),
		}:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}

	h.broadcastStateLocked()
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session over the shared dataset.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	data        *dataset.Dataset
	idleTimeout time.Duration
}

func newGameManager(data *dataset.Dataset, idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		data:        data,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, m *metrics, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gameID, gm.data)
	gm.hubs[gameID] = hub
	m.sessionsCreated.Inc()
	go hub.run(cfg, m)
	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-gm.idleTimeout)

		gm.mu.Lock()
		for id, hub := range gm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(gm.hubs, id)
				go hub.closeAll()
			}
		}
		gm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager, m *metrics) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		hub := gm.getHub(cfg, m, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 8),
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "set_name", "choose_prompt", "submit_answer", "next_player", "new_game":
			h.actions <- actionRequest{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed hunting/index.html
var indexHTML []byte

//go:embed hunting/app.css
var huntingCSS []byte

//go:embed hunting/app.js
var huntingJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(huntingCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(huntingJS)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerHuntingGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerHuntingGame(cfg *Config, path string, mux *httprouter.Router, data *dataset.Dataset, m *metrics) {
	gm := newGameManager(data, cfg.sessionTimeout)

	// Root path → redirect to new random game
	mux.GET(path, redirectNewGame(cfg, path, gm))

	// Per-game client view (HTML)
	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg))

	// Shared assets (no gameid in route)
	mux.GET(cfg.prefix+"/assets/hunting/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/hunting/app.js", getJsHandler(cfg))

	// Per-game websocket
	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm, m))

	// Per-game QR code
	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)
}
