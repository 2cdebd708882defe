package server

import (
	"errors"
	"sync"
	"testing"
)

func TestUpdateGameUnknownID(t *testing.T) {
	store := NewStore()
	_, err := store.UpdateGame("missing", func(game *Game) error { return nil })
	if !errors.Is(err, errGameNotFound) {
		t.Fatalf("expected errGameNotFound, got %v", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	game := store.CreateGame("user-1")

	snap, ok := store.Snapshot(game.ID)
	if !ok {
		t.Fatal("expected snapshot")
	}
	snap.Theme = "mutated"
	snap.AnswersHistory = append(snap.AnswersHistory, "Tiger")
	snap.Scores = append(snap.Scores, ScoreEntry{UserID: "user-1", Score: 9})

	fresh, _ := store.Snapshot(game.ID)
	if fresh.Theme != "" || len(fresh.AnswersHistory) != 0 || len(fresh.Scores) != 0 {
		t.Fatalf("snapshot mutation leaked into store: %#v", fresh)
	}
}

func TestUpdateGameErrorReturnsNothing(t *testing.T) {
	store := NewStore()
	game := store.CreateGame("user-1")

	_, err := store.UpdateGame(game.ID, func(game *Game) error {
		return errors.New("precondition failed")
	})
	if err == nil {
		t.Fatal("expected error from update closure")
	}
}

func TestRestoreRejectsDuplicates(t *testing.T) {
	store := NewStore()
	game := store.CreateGame("user-1")

	err := store.Restore(&Game{ID: game.ID})
	if err == nil {
		t.Fatal("expected duplicate restore to fail")
	}
	if err := store.Restore(nil); err == nil {
		t.Fatal("expected nil restore to fail")
	}
}

// Concurrent updates against one game must serialize: every increment lands.
func TestUpdateGameSerializesWriters(t *testing.T) {
	store := NewStore()
	game := store.CreateGame("user-1")

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, _ = store.UpdateGame(game.ID, func(game *Game) error {
				game.Guesses = append(game.Guesses, GuessEntry{UserID: "user-1", Text: "x"})
				return nil
			})
		}()
	}
	wg.Wait()

	final, _ := store.Snapshot(game.ID)
	if len(final.Guesses) != writers {
		t.Fatalf("expected %d guesses, got %d", writers, len(final.Guesses))
	}
}
