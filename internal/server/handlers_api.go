package server

import (
	"net/http"
	"strconv"
	"strings"
)

type signInRequest struct {
	Name string `json:"name"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type guessRequest struct {
	Guess string `json:"guess"`
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := s.users.Ensure(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}
	if err := s.signIn(w, r, user); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"user_id": user.ID,
		"name":    user.Name,
	})
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	userID := s.currentUserID(w, r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}
	game, err := s.CreateGame(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"game_id": game.ID,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, ok := s.store.Snapshot(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	view, err := s.GameViewFor(game, s.currentUserID(w, r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if view == nil {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "theme is required")
		return
	}
	theme, err := validateTheme(req.Theme, s.cfg.MaxThemeLength)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	userID := s.currentUserID(w, r)
	game, err := s.SetTheme(r.PathValue("id"), userID, theme)
	if err != nil {
		s.respondGameError(w, r, err)
		return
	}
	s.respondGameView(w, game, userID)
}

func (s *Server) handleStartRound(w http.ResponseWriter, r *http.Request) {
	userID := s.currentUserID(w, r)
	game, err := s.StartNewRound(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.respondGameError(w, r, err)
		return
	}
	s.respondGameView(w, game, userID)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	userID := s.currentUserID(w, r)
	game, err := s.Reveal(r.PathValue("id"), userID)
	if err != nil {
		s.respondGameError(w, r, err)
		return
	}
	s.respondGameView(w, game, userID)
}

func (s *Server) handleSubmitGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "guess is required")
		return
	}
	guess, err := validateGuess(req.Guess, s.cfg.MaxGuessLength)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	userID := s.currentUserID(w, r)
	game, err := s.SubmitGuess(r.PathValue("id"), userID, guess)
	if err != nil {
		s.respondGameError(w, r, err)
		return
	}
	s.respondGameView(w, game, userID)
}

func (s *Server) handleGalleryImages(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.GalleryPageSize
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			limit = value
		}
	}
	page, err := s.GalleryPage(limit, strings.TrimSpace(r.URL.Query().Get("cursor")))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleBlob(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := s.blobs.Get(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	_, _ = w.Write(data)
}

func (s *Server) respondGameView(w http.ResponseWriter, game *Game, userID string) {
	view, err := s.GameViewFor(game, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if view == nil {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) respondGameError(w http.ResponseWriter, r *http.Request, err error) {
	if err == errGameNotFound {
		http.NotFound(w, r)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
