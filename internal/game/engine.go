package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
)

// MatchResult summarizes a finished game for recording.
type MatchResult struct {
	GameID     string
	Winner     string
	Loser      string
	Turns      int
	FinishedAt time.Time
}

// MatchRecorder receives the result of every game that reaches a winner.
// The engine tolerates a nil recorder.
type MatchRecorder interface {
	RecordResult(ctx context.Context, result MatchResult) error
}

// Engine owns every running game, keyed by id. Access to the games map is
// guarded by an RWMutex and each game is serialized by its own lock, so the
// rules pipeline inside a single call never observes interleaving.
type Engine struct {
	mu       sync.RWMutex
	games    map[string]*liveGame
	cat      *catalog.Catalog
	params   Params
	recorder MatchRecorder
	logger   *zap.Logger
}

type liveGame struct {
	mu    sync.Mutex
	match *Match
}

// NewEngine creates an engine sharing one immutable catalog across games.
func NewEngine(cat *catalog.Catalog, params Params, logger *zap.Logger) *Engine {
	return &Engine{
		games:  make(map[string]*liveGame),
		cat:    cat,
		params: params,
		logger: logger,
	}
}

// SetMatchRecorder installs the hook invoked once per finished game.
func (e *Engine) SetMatchRecorder(recorder MatchRecorder) {
	e.recorder = recorder
}

// CreateGame starts a new game with independently shuffled decks and
// returns its id. The returned game is already in its first action window.
func (e *Engine) CreateGame(names [2]string, decks [2][]string, rng *rand.Rand) (string, error) {
	match, err := NewMatch(e.cat, e.params, names, decks, rng)
	if err != nil {
		return "", fmt.Errorf("creating game: %w", err)
	}
	gameID := uuid.New().String()

	e.mu.Lock()
	e.games[gameID] = &liveGame{match: match}
	e.mu.Unlock()

	e.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.String("player1", names[0]),
		zap.String("player2", names[1]),
		zap.String("biome", e.params.BiomeName),
	)
	return gameID, nil
}

func (e *Engine) game(gameID string) (*liveGame, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	lg, ok := e.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s not found", gameID)
	}
	return lg, nil
}

// PlayCard plays one card for the active player of the given game.
func (e *Engine) PlayCard(gameID, cardID string) (bool, error) {
	lg, err := e.game(gameID)
	if err != nil {
		return false, err
	}
	lg.mu.Lock()
	defer lg.mu.Unlock()

	ok, err := lg.match.PlayCard(cardID)
	if err != nil {
		e.logger.Error("card play hit a data-integrity fault",
			zap.String("game_id", gameID),
			zap.String("card_id", cardID),
			zap.Error(err),
		)
		return false, err
	}
	e.logger.Debug("card played",
		zap.String("game_id", gameID),
		zap.String("card_id", cardID),
		zap.Bool("accepted", ok),
	)
	return ok, nil
}

// EndTurn resolves the active player's turn, including the following
// player's turn start, atomically. Hunting choices map predator instance
// ids to prey instance ids.
func (e *Engine) EndTurn(gameID string, huntingChoices map[int]int) error {
	lg, err := e.game(gameID)
	if err != nil {
		return err
	}
	lg.mu.Lock()
	defer lg.mu.Unlock()

	wasOver := lg.match.Over()
	lg.match.EndTurn(huntingChoices)

	if !wasOver && lg.match.Over() {
		e.finishGame(gameID, lg.match)
	}
	return nil
}

func (e *Engine) finishGame(gameID string, match *Match) {
	state := match.State
	loser := ""
	for _, player := range state.Players {
		if player.Name != state.Winner {
			loser = player.Name
		}
	}
	e.logger.Info("game finished",
		zap.String("game_id", gameID),
		zap.String("winner", state.Winner),
		zap.Int("turns", state.TurnNumber),
	)
	if e.recorder == nil {
		return
	}
	result := MatchResult{
		GameID:     gameID,
		Winner:     state.Winner,
		Loser:      loser,
		Turns:      state.TurnNumber,
		FinishedAt: time.Now().UTC(),
	}
	if err := e.recorder.RecordResult(context.Background(), result); err != nil {
		e.logger.Warn("failed to record match result",
			zap.String("game_id", gameID),
			zap.Error(err),
		)
	}
}

// View returns the full snapshot of a game.
func (e *Engine) View(gameID string) (*GameView, error) {
	lg, err := e.game(gameID)
	if err != nil {
		return nil, err
	}
	lg.mu.Lock()
	defer lg.mu.Unlock()
	return lg.match.View(), nil
}

// AnimalsByLevel returns the grouped-by-level projection of a game.
func (e *Engine) AnimalsByLevel(gameID string) (map[int][]AnimalView, error) {
	lg, err := e.game(gameID)
	if err != nil {
		return nil, err
	}
	lg.mu.Lock()
	defer lg.mu.Unlock()
	return lg.match.AnimalsByLevel(), nil
}

// HungryPredators returns the predators due to hunt at the next end of
// turn, for hunting-choice collection.
func (e *Engine) HungryPredators(gameID string) ([]AnimalView, error) {
	lg, err := e.game(gameID)
	if err != nil {
		return nil, err
	}
	lg.mu.Lock()
	defer lg.mu.Unlock()
	return lg.match.HungryPredators(), nil
}

// GameCount reports how many games the engine currently holds.
func (e *Engine) GameCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.games)
}
