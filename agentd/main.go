// Package main implements the agent daemon: the bridge between the
// perception/injection collaborators and the decision engine.
//
// Perception clients either POST an observed board to /move or hold a
// websocket open on /ws and stream boards; either way they get back
// the chosen move, the key to press, and the board the engine expects
// to observe next. An "undo" verdict comes with an all-empty board,
// signalling that a fresh observation cycle is required.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Simba256/2048/agent"
	"github.com/Simba256/2048/engine"
	"github.com/Simba256/2048/game"
	"github.com/Simba256/2048/logging"
	"github.com/gorilla/websocket"
)

type moveRequest struct {
	Board [][]int `json:"board"`
}

type moveResponse struct {
	Move  string  `json:"move"`
	Key   string  `json:"key"`
	Board [][]int `json:"board"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type infoResponse struct {
	Name  string   `json:"name"`
	Moves []string `json:"moves"`
}

type server struct {
	engine      *engine.Engine
	log         *slog.Logger
	upgrader    websocket.Upgrader
	readTimeout time.Duration
}

func newServer(e *engine.Engine, logger *slog.Logger, readTimeout time.Duration) *server {
	return &server{
		engine: e,
		log:    logger,
		upgrader: websocket.Upgrader{
			// Perception clients run as local scripts; no origin policy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		readTimeout: readTimeout,
	}
}

// decide runs one decision cycle for an observed board matrix. The
// per-request agent captures the key press so the response can carry
// it to the injection side.
func (s *server) decide(rows [][]int) (moveResponse, error) {
	b, err := game.FromRows(rows)
	if err != nil {
		return moveResponse{}, err
	}
	var pressed string
	ag := agent.New(s.engine, agent.ActuatorFunc(func(key string) { pressed = key }), s.log)
	next, move := ag.Advance(b)
	return moveResponse{Move: move.String(), Key: pressed, Board: next.Rows()}, nil
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, infoResponse{
		Name:  "2048-agent",
		Moves: []string{"down", "left", "right", "undo"},
	})
}

func (s *server) handleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request: " + err.Error()})
		return
	}
	resp, err := s.decide(req.Board)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, game.ErrMalformed) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleWS holds a long-lived session with one perception client:
// board in, decision out, until the client goes away.
func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	s.log.Info("perception client connected", "remote", conn.RemoteAddr().String())
	for {
		if s.readTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		}
		var req moveRequest
		if err := conn.ReadJSON(&req); err != nil {
			s.log.Info("perception client gone", "remote", conn.RemoteAddr().String(), "err", err)
			return
		}
		resp, err := s.decide(req.Board)
		if err != nil {
			if writeErr := conn.WriteJSON(errorResponse{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			s.log.Error("websocket write failed", "err", err)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	readTimeout := flag.Duration("ws-read-timeout", 5*time.Minute, "Websocket read deadline per board (0 disables)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(logging.NewHandler(os.Stdout, level))

	s := newServer(engine.New(engine.DefaultConfig()), logger, *readTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/move", s.handleMove)
	mux.HandleFunc("/ws", s.handleWS)

	logger.Info("agent daemon listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
