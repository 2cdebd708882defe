package server

import (
	"context"
	"errors"
	"testing"

	"ai-pictionary/internal/config"
)

// fakeGenerator returns canned rounds, or fails when Err is set. It records
// the arguments of the last call so tests can assert what the controller
// passed along.
type fakeGenerator struct {
	Answers      []string
	Err          error
	calls        int
	lastTheme    string
	lastExcluded []string
}

func (f *fakeGenerator) Generate(ctx context.Context, theme string, excludedAnswers []string) (GeneratedRound, error) {
	f.calls++
	f.lastTheme = theme
	f.lastExcluded = append([]string(nil), excludedAnswers...)
	if f.Err != nil {
		return GeneratedRound{}, f.Err
	}
	if len(f.Answers) == 0 {
		return GeneratedRound{}, errors.New("fake generator exhausted")
	}
	answer := f.Answers[0]
	f.Answers = f.Answers[1:]
	return GeneratedRound{AnswerWord: answer, ImageBytes: []byte("png-bytes")}, nil
}

func newTestApp(t *testing.T) (*Server, *fakeGenerator) {
	t.Helper()
	srv := New(nil, config.Default())
	gen := &fakeGenerator{}
	srv.generator = gen
	return srv, gen
}

func mustUser(t *testing.T, srv *Server, name string) User {
	t.Helper()
	user, err := srv.users.Ensure(name)
	if err != nil {
		t.Fatalf("failed to create user %q: %v", name, err)
	}
	return user
}

func startRound(t *testing.T, srv *Server, gen *fakeGenerator, gameID, host, answer string) *Game {
	t.Helper()
	gen.Answers = append(gen.Answers, answer)
	game, err := srv.StartNewRound(context.Background(), gameID, host)
	if err != nil {
		t.Fatalf("failed to start round: %v", err)
	}
	if game.CurrentRound == nil || game.CurrentRound.AnswerWord != answer {
		t.Fatalf("expected active round with answer %q, got %#v", answer, game.CurrentRound)
	}
	return game
}
