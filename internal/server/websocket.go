// Package server exposes the game engine to presentation clients over a
// websocket JSON API. It carries no rules of its own: every request maps
// onto one engine entry point and every response returns the refreshed
// game view.
package server

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
	"github.com/animaldominion/dominion-server-go/internal/config"
	"github.com/animaldominion/dominion-server-go/internal/game"
)

// Request is the client-to-server envelope. Type selects the operation;
// the remaining fields apply per type.
type Request struct {
	Type    string         `json:"type"`
	GameID  string         `json:"game_id,omitempty"`
	CardID  string         `json:"card_id,omitempty"`
	Players [2]string      `json:"players,omitempty"`
	Choices map[string]int `json:"choices,omitempty"`
}

// Response is the server-to-client envelope. OK is false for ordinary rule
// failures; Error is set for malformed requests and unknown games.
type Response struct {
	Type   string         `json:"type"`
	GameID string         `json:"game_id,omitempty"`
	OK     bool           `json:"ok"`
	Error  string         `json:"error,omitempty"`
	View   *game.GameView `json:"view,omitempty"`
}

// Server handles websocket sessions against one engine.
type Server struct {
	engine   *game.Engine
	decks    *catalog.DeckList
	newRand  func() *rand.Rand
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// New creates a websocket server. newRand supplies the shuffle source for
// each created game.
func New(engine *game.Engine, decks *catalog.DeckList, newRand func() *rand.Rand, logger *zap.Logger) *Server {
	return &Server{
		engine:  engine,
		decks:   decks,
		newRand: newRand,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Start runs the websocket listener until the process exits.
func (s *Server) Start(cfg config.WebSocketConfig) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleConnection)
	s.logger.Info("starting websocket server", zap.String("address", cfg.Address))
	return http.ListenAndServe(cfg.Address, mux)
}

func (s *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	s.logger.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("client read error", zap.Error(err))
			}
			return
		}
		resp := s.dispatch(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("client write error", zap.Error(err))
			return
		}
	}
}

func (s *Server) dispatch(req Request) Response {
	switch req.Type {
	case "create_game":
		return s.handleCreateGame(req)
	case "play_card":
		return s.handlePlayCard(req)
	case "end_turn":
		return s.handleEndTurn(req)
	case "view":
		return s.handleView(req)
	default:
		return Response{Type: req.Type, Error: "unknown request type"}
	}
}

func (s *Server) handleCreateGame(req Request) Response {
	names := req.Players
	if names[0] == "" {
		names[0] = "Player 1"
	}
	if names[1] == "" {
		names[1] = "Player 2"
	}
	gameID, err := s.engine.CreateGame(names, [2][]string{s.decks.Player1, s.decks.Player2}, s.newRand())
	if err != nil {
		return Response{Type: req.Type, Error: err.Error()}
	}
	view, err := s.engine.View(gameID)
	if err != nil {
		return Response{Type: req.Type, Error: err.Error()}
	}
	return Response{Type: req.Type, GameID: gameID, OK: true, View: view}
}

func (s *Server) handlePlayCard(req Request) Response {
	ok, err := s.engine.PlayCard(req.GameID, req.CardID)
	if err != nil {
		return Response{Type: req.Type, GameID: req.GameID, Error: err.Error()}
	}
	view, err := s.engine.View(req.GameID)
	if err != nil {
		return Response{Type: req.Type, GameID: req.GameID, Error: err.Error()}
	}
	return Response{Type: req.Type, GameID: req.GameID, OK: ok, View: view}
}

func (s *Server) handleEndTurn(req Request) Response {
	choices, err := DecodeChoices(req.Choices)
	if err != nil {
		return Response{Type: req.Type, GameID: req.GameID, Error: err.Error()}
	}
	if err := s.engine.EndTurn(req.GameID, choices); err != nil {
		return Response{Type: req.Type, GameID: req.GameID, Error: err.Error()}
	}
	view, err := s.engine.View(req.GameID)
	if err != nil {
		return Response{Type: req.Type, GameID: req.GameID, Error: err.Error()}
	}
	return Response{Type: req.Type, GameID: req.GameID, OK: true, View: view}
}

func (s *Server) handleView(req Request) Response {
	view, err := s.engine.View(req.GameID)
	if err != nil {
		return Response{Type: req.Type, GameID: req.GameID, Error: err.Error()}
	}
	return Response{Type: req.Type, GameID: req.GameID, OK: true, View: view}
}

// DecodeChoices converts the JSON hunting-choices object (string keys, as
// JSON requires) into the engine's instance-id map.
func DecodeChoices(raw map[string]int) (map[int]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	choices := make(map[int]int, len(raw))
	for key, preyID := range raw {
		predatorID, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		choices[predatorID] = preyID
	}
	return choices, nil
}
