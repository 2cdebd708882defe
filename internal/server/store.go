package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var errGameNotFound = errors.New("game not found")

// Store owns the live game documents. All mutations go through UpdateGame,
// which runs the update function under the store lock: each read-modify-write
// on a game is atomic, which is what keeps "exactly one winner per round"
// true under concurrent guesses.
type Store struct {
	mu    sync.Mutex
	games map[string]*Game
}

func NewStore() *Store {
	return &Store{
		games: make(map[string]*Game),
	}
}

func (s *Store) CreateGame(createdBy string) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := &Game{
		ID:             uuid.NewString(),
		CreatedBy:      createdBy,
		Theme:          "",
		AnswersHistory: []string{},
		Guesses:        []GuessEntry{},
		Scores:         []ScoreEntry{},
		CreatedAt:      timeNowUTC(),
	}
	s.games[game.ID] = game
	return game
}

// Snapshot returns a deep copy of a game, safe to read without holding the
// lock and safe to hand to the generator while other mutations proceed.
func (s *Store) Snapshot(id string) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, false
	}
	return copyGame(game), true
}

// UpdateGame applies update to the game under the store lock. Returning an
// error from update aborts with no mutation visible to other callers as long
// as the update function itself only mutates after its checks pass.
func (s *Store) UpdateGame(id string, update func(game *Game) error) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, errGameNotFound
	}
	if err := update(game); err != nil {
		return nil, err
	}
	return copyGame(game), nil
}

// Restore reinserts a game loaded from the database, e.g. on boot.
func (s *Store) Restore(game *Game) error {
	if game == nil {
		return errors.New("game is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.ID]; ok {
		return errors.New("game already running")
	}
	s.games[game.ID] = game
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

func copyGame(game *Game) *Game {
	clone := *game
	if game.CurrentRound != nil {
		round := *game.CurrentRound
		clone.CurrentRound = &round
	}
	clone.AnswersHistory = append([]string(nil), game.AnswersHistory...)
	clone.Guesses = append([]GuessEntry(nil), game.Guesses...)
	clone.Scores = append([]ScoreEntry(nil), game.Scores...)
	return &clone
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
