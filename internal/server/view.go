package server

// GameView is the per-viewer projection of a game. The answer appears only
// once it has been revealed; user identifiers are replaced by display names.
type GameView struct {
	GameID  string      `json:"game_id"`
	Image   string      `json:"image,omitempty"`
	IsHost  bool        `json:"is_host"`
	Answer  string      `json:"answer,omitempty"`
	Round   int         `json:"round"`
	Theme   string      `json:"theme"`
	Winner  string      `json:"winner,omitempty"`
	Guesses []GuessView `json:"guesses"`
	Scores  []ScoreView `json:"scores"`
}

type GuessView struct {
	Username string `json:"username"`
	Guess    string `json:"guess"`
}

type ScoreView struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// GameViewFor shapes a game for one viewer. Unauthenticated viewers get nil.
// A current-round blob that fails to resolve is an error: the round points
// at it, so missing bytes mean stored-data corruption.
func (s *Server) GameViewFor(game *Game, viewerID string) (*GameView, error) {
	if game == nil || viewerID == "" {
		return nil, nil
	}

	view := &GameView{
		GameID:  game.ID,
		IsHost:  viewerID == game.CreatedBy,
		Round:   game.Round(),
		Theme:   game.Theme,
		Guesses: make([]GuessView, 0, len(game.Guesses)),
		Scores:  make([]ScoreView, 0, len(game.Scores)),
	}

	if game.CurrentRound != nil {
		url, err := s.blobs.URL(game.CurrentRound.BlobID)
		if err != nil {
			return nil, err
		}
		view.Image = url
		if game.RevealAnswer {
			view.Answer = game.CurrentRound.AnswerWord
		}
	}
	if game.Winner != "" {
		view.Winner = s.users.Name(game.Winner)
	}
	for _, guess := range game.Guesses {
		view.Guesses = append(view.Guesses, GuessView{
			Username: s.users.Name(guess.UserID),
			Guess:    guess.Text,
		})
	}
	for _, score := range game.Scores {
		view.Scores = append(view.Scores, ScoreView{
			Username: s.users.Name(score.UserID),
			Score:    score.Score,
		})
	}
	return view, nil
}

// publicGameView is the broadcast shape: same projection as an ordinary
// authenticated non-host viewer, so the unrevealed answer never goes out on
// the wire.
func (s *Server) publicGameView(game *Game) (*GameView, error) {
	view, err := s.GameViewFor(game, "viewer")
	if err != nil || view == nil {
		return view, err
	}
	view.IsHost = false
	return view, nil
}
