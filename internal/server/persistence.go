package server

import (
	"encoding/json"
	"errors"
	"log"

	"ai-pictionary/internal/db"

	"github.com/jackc/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// EventPayload is the JSONB body of an operator event.
type EventPayload struct {
	UserID string `json:"user_id,omitempty"`
	Round  int    `json:"round,omitempty"`
	Theme  string `json:"theme,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) persistGame(game *Game) error {
	if s.db == nil {
		return nil
	}
	record, err := gameToRecord(game)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
}

// persistGameState writes the whole game document back as one row update.
// Persistence failures are logged, not surfaced: the in-memory store remains
// the source of truth for the live session.
func (s *Server) persistGameState(game *Game) {
	if s.db == nil || game == nil {
		return
	}
	record, err := gameToRecord(game)
	if err != nil {
		log.Printf("failed to encode game game_id=%s: %v", game.ID, err)
		return
	}
	updates := map[string]any{
		"theme":           record.Theme,
		"reveal_answer":   record.RevealAnswer,
		"winner":          record.Winner,
		"current_round":   record.CurrentRound,
		"answers_history": record.AnswersHistory,
		"guesses":         record.Guesses,
		"scores":          record.Scores,
	}
	if err := s.db.Model(&db.Game{}).Where("id = ?", game.ID).Updates(updates).Error; err != nil {
		log.Printf("failed to persist game game_id=%s: %v", game.ID, err)
	}
}

func (s *Server) persistEvent(game *Game, eventType string, payload EventPayload) {
	if s.db == nil || game == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to encode event type=%s: %v", eventType, err)
		return
	}
	event := db.Event{
		GameID:  game.ID,
		UserID:  payload.UserID,
		Type:    eventType,
		Payload: datatypes.JSON(data),
	}
	if err := s.db.Create(&event).Error; err != nil {
		log.Printf("failed to persist event type=%s game_id=%s: %v", eventType, game.ID, err)
	}
}

func gameToRecord(game *Game) (*db.Game, error) {
	history, err := json.Marshal(game.AnswersHistory)
	if err != nil {
		return nil, err
	}
	guesses, err := json.Marshal(game.Guesses)
	if err != nil {
		return nil, err
	}
	scores, err := json.Marshal(game.Scores)
	if err != nil {
		return nil, err
	}
	record := &db.Game{
		ID:             game.ID,
		CreatedBy:      game.CreatedBy,
		Theme:          game.Theme,
		RevealAnswer:   game.RevealAnswer,
		Winner:         game.Winner,
		AnswersHistory: datatypes.JSON(history),
		Guesses:        datatypes.JSON(guesses),
		Scores:         datatypes.JSON(scores),
		CreatedAt:      game.CreatedAt,
	}
	if game.CurrentRound != nil {
		round, err := json.Marshal(game.CurrentRound)
		if err != nil {
			return nil, err
		}
		record.CurrentRound = datatypes.JSON(round)
	}
	return record, nil
}

func gameFromRecord(record *db.Game) (*Game, error) {
	game := &Game{
		ID:           record.ID,
		CreatedBy:    record.CreatedBy,
		Theme:        record.Theme,
		RevealAnswer: record.RevealAnswer,
		Winner:       record.Winner,
		CreatedAt:    record.CreatedAt,
	}
	if len(record.CurrentRound) > 0 && string(record.CurrentRound) != "null" {
		var round RoundInfo
		if err := json.Unmarshal(record.CurrentRound, &round); err != nil {
			return nil, err
		}
		game.CurrentRound = &round
	}
	if err := json.Unmarshal(record.AnswersHistory, &game.AnswersHistory); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(record.Guesses, &game.Guesses); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(record.Scores, &game.Scores); err != nil {
		return nil, err
	}
	if game.AnswersHistory == nil {
		game.AnswersHistory = []string{}
	}
	if game.Guesses == nil {
		game.Guesses = []GuessEntry{}
	}
	if game.Scores == nil {
		game.Scores = []ScoreEntry{}
	}
	return game, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
