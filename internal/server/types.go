package server

import "time"

// Game is the live gameplay document. One exists per play session and every
// mutation to it runs under the store lock, so readers never observe a torn
// round transition.
type Game struct {
	ID             string
	CreatedBy      string
	Theme          string
	CurrentRound   *RoundInfo
	RevealAnswer   bool
	AnswersHistory []string
	Guesses        []GuessEntry
	Scores         []ScoreEntry
	Winner         string
	CreatedAt      time.Time
}

// RoundInfo is present only while a round is active. Theme is captured at
// generation time so later theme edits do not relabel the round.
type RoundInfo struct {
	AnswerWord string `json:"answer_word"`
	BlobID     string `json:"blob_id"`
	Theme      string `json:"theme"`
}

type GuessEntry struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type ScoreEntry struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

// Round reports the round counter: the count of answers generated so far.
func (g *Game) Round() int {
	return len(g.AnswersHistory)
}

// RoundActive reports whether there is a round whose answer has not been
// revealed yet. Guesses are only accepted while this holds.
func (g *Game) RoundActive() bool {
	return g.CurrentRound != nil && !g.RevealAnswer
}

// ArchivedImage is one immutable gallery entry per resolved round.
type ArchivedImage struct {
	ID        string
	GameID    string
	BlobID    string
	Theme     string
	Answer    string
	CreatedAt time.Time
}

type User struct {
	ID   string
	Name string
}
