package server

import (
	"net/http"
	"time"

	"ai-pictionary/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store     *Store
	db        *gorm.DB
	ws        *wsHub
	cfg       config.Config
	sessions  *sessionStore
	users     *userRegistry
	blobs     *blobStore
	archive   *imageArchive
	generator Generator
	jwt       *jwtManager
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		store:     NewStore(),
		db:        conn,
		ws:        newWSHub(),
		cfg:       cfg,
		sessions:  newSessionStore(conn),
		users:     newUserRegistry(conn),
		blobs:     newBlobStore(conn),
		archive:   newImageArchive(conn),
		generator: newGeminiClient(cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImageModel),
		jwt:       newJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTMaxAgeSeconds)*time.Second),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /games/{id}", s.handleGameView)
	mux.HandleFunc("GET /gallery", s.handleGalleryView)
	mux.HandleFunc("POST /api/signin", s.handleSignIn)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	mux.HandleFunc("POST /api/games/{id}/theme", s.handleSetTheme)
	mux.HandleFunc("POST /api/games/{id}/rounds", s.handleStartRound)
	mux.HandleFunc("POST /api/games/{id}/reveal", s.handleReveal)
	mux.HandleFunc("POST /api/games/{id}/guesses", s.handleSubmitGuess)
	mux.HandleFunc("GET /api/images", s.handleGalleryImages)
	mux.HandleFunc("GET /blobs/{id}", s.handleBlob)
	mux.HandleFunc("GET /ws/games/{id}", s.handleGameWebsocket)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}
