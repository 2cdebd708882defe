package server

import (
	"context"
	"log"
	"sort"
	"strings"
)

// canStartRound is the one precondition guarding round creation: a new round
// may begin only when no round exists yet or the active round has been
// revealed. A host double-clicking "next round" therefore lands on a no-op
// instead of overwriting an unrevealed answer.
func canStartRound(game *Game) bool {
	return game.CurrentRound == nil || game.RevealAnswer
}

// StartNewRound asks the generator for a fresh answer/image pair and commits
// it as the game's current round. The generator call runs outside the store
// lock: the game is snapshotted first, and the precondition is re-checked at
// commit time so a concurrent start that won the race turns this one into a
// no-op. Generator failures leave the game untouched.
func (s *Server) StartNewRound(ctx context.Context, gameID, requester string) (*Game, error) {
	game, ok := s.store.Snapshot(gameID)
	if !ok {
		return nil, errGameNotFound
	}
	if requester == "" || requester != game.CreatedBy {
		return game, nil
	}
	if !canStartRound(game) {
		return game, nil
	}

	generated, err := s.generator.Generate(ctx, game.Theme, game.AnswersHistory)
	if err != nil {
		log.Printf("round generation failed game_id=%s round=%d: %v", game.ID, game.Round()+1, err)
		s.persistEvent(game, "generation_failed", EventPayload{UserID: requester, Detail: err.Error()})
		return game, nil
	}
	answer := strings.TrimSpace(generated.AnswerWord)
	if answer == "" || len(generated.ImageBytes) == 0 {
		log.Printf("round generation returned empty result game_id=%s", game.ID)
		s.persistEvent(game, "generation_failed", EventPayload{UserID: requester, Detail: "empty answer or image"})
		return game, nil
	}

	blobID, err := s.blobs.Store(generated.ImageBytes, "image/png")
	if err != nil {
		log.Printf("failed to store round image game_id=%s: %v", game.ID, err)
		return game, nil
	}

	committed := false
	updated, err := s.store.UpdateGame(gameID, func(game *Game) error {
		if !canStartRound(game) {
			return nil
		}
		game.CurrentRound = &RoundInfo{
			AnswerWord: answer,
			BlobID:     blobID,
			Theme:      game.Theme,
		}
		game.RevealAnswer = false
		game.AnswersHistory = append(game.AnswersHistory, answer)
		game.Guesses = []GuessEntry{}
		game.Winner = ""
		committed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !committed {
		log.Printf("round start lost race game_id=%s", gameID)
		return updated, nil
	}

	log.Printf("round started game_id=%s round=%d", updated.ID, updated.Round())
	s.persistGameState(updated)
	s.persistEvent(updated, "round_started", EventPayload{UserID: requester, Round: updated.Round()})
	s.broadcastGame(updated)
	return updated, nil
}

// Reveal exposes the current round's answer without a winning guess. Only
// the host may do this, and only while a round is active; anything else is a
// silent no-op since concurrent host clicks are expected.
func (s *Server) Reveal(gameID, requester string) (*Game, error) {
	revealed := false
	updated, err := s.store.UpdateGame(gameID, func(game *Game) error {
		if requester == "" || requester != game.CreatedBy {
			return nil
		}
		if !game.RoundActive() {
			return nil
		}
		game.RevealAnswer = true
		revealed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !revealed {
		return updated, nil
	}

	log.Printf("answer revealed game_id=%s round=%d", updated.ID, updated.Round())
	s.archiveRound(updated)
	s.persistGameState(updated)
	s.persistEvent(updated, "answer_revealed", EventPayload{UserID: requester, Round: updated.Round()})
	s.broadcastGame(updated)
	return updated, nil
}

// SubmitGuess records a guess against the active round. Guesses arriving
// before the first round or after the reveal are dropped silently. A correct
// guess resolves the round: one point, one winner, answer revealed. The
// store lock serializes concurrent correct guesses, so the second one finds
// the round already revealed and is dropped.
func (s *Server) SubmitGuess(gameID, guesser, text string) (*Game, error) {
	if guesser == "" {
		game, ok := s.store.Snapshot(gameID)
		if !ok {
			return nil, errGameNotFound
		}
		return game, nil
	}

	accepted := false
	won := false
	updated, err := s.store.UpdateGame(gameID, func(game *Game) error {
		if !game.RoundActive() {
			return nil
		}
		game.Guesses = append(game.Guesses, GuessEntry{UserID: guesser, Text: text})
		accepted = true
		if !guessMatches(text, game.CurrentRound.AnswerWord) {
			return nil
		}
		awardPoint(game, guesser)
		game.Winner = guesser
		game.RevealAnswer = true
		won = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !accepted {
		return updated, nil
	}

	s.persistGameState(updated)
	s.persistEvent(updated, "guess_submitted", EventPayload{UserID: guesser, Round: updated.Round()})
	if won {
		log.Printf("round won game_id=%s round=%d winner=%s", updated.ID, updated.Round(), guesser)
		s.archiveRound(updated)
		s.persistEvent(updated, "round_won", EventPayload{UserID: guesser, Round: updated.Round()})
	}
	s.broadcastGame(updated)
	return updated, nil
}

// SetTheme updates the game's theme. Host only, allowed at any time; the
// active round keeps the theme it was generated under.
func (s *Server) SetTheme(gameID, requester, theme string) (*Game, error) {
	changed := false
	updated, err := s.store.UpdateGame(gameID, func(game *Game) error {
		if requester == "" || requester != game.CreatedBy {
			return nil
		}
		game.Theme = theme
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.persistGameState(updated)
		s.persistEvent(updated, "theme_set", EventPayload{UserID: requester, Theme: theme})
		s.broadcastGame(updated)
	}
	return updated, nil
}

// CreateGame starts a fresh play session owned by the given user.
func (s *Server) CreateGame(createdBy string) (*Game, error) {
	game := s.store.CreateGame(createdBy)
	if err := s.persistGame(game); err != nil {
		return nil, err
	}
	log.Printf("game created game_id=%s created_by=%s", game.ID, createdBy)
	s.persistEvent(game, "game_created", EventPayload{UserID: createdBy})
	return game, nil
}

// Comparison is case-insensitive and deliberately not trimmed: "pika chu"
// does not match "pikachu", and neither does " pikachu".
func guessMatches(guess, answer string) bool {
	return strings.ToLower(guess) == strings.ToLower(answer)
}

// awardPoint bumps the guesser's score, creating the entry on first win,
// then re-sorts descending. The sort is stable so ties keep their order.
func awardPoint(game *Game, userID string) {
	found := false
	for i := range game.Scores {
		if game.Scores[i].UserID == userID {
			game.Scores[i].Score++
			found = true
			break
		}
	}
	if !found {
		game.Scores = append(game.Scores, ScoreEntry{UserID: userID, Score: 1})
	}
	sort.SliceStable(game.Scores, func(i, j int) bool {
		return game.Scores[i].Score > game.Scores[j].Score
	})
}
