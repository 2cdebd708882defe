package server

import (
	"net/http"

	"ai-pictionary/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templ.Handler(web.Home()).ServeHTTP(w, r)
}

func (s *Server) handleGameView(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if _, ok := s.store.Snapshot(gameID); !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	templ.Handler(web.GamePage(gameID)).ServeHTTP(w, r)
}

func (s *Server) handleGalleryView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.GalleryPage()).ServeHTTP(w, r)
}
