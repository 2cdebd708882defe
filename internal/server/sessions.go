package server

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ai-pictionary/internal/db"

	"gorm.io/gorm"
)

// sessionStore ties a browser cookie to a user id. Backed by the sessions
// table when a database is configured, by an in-process map otherwise.
type sessionStore struct {
	db       *gorm.DB
	mu       sync.Mutex
	sessions map[string]string
}

func newSessionStore(conn *gorm.DB) *sessionStore {
	return &sessionStore{
		db:       conn,
		sessions: make(map[string]string),
	}
}

func (s *sessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) {
	if userID == "" {
		return
	}
	id := s.ensureSessionID(w, r)
	if s.db == nil {
		s.mu.Lock()
		s.sessions[id] = userID
		s.mu.Unlock()
		return
	}
	record := db.Session{
		ID:     id,
		UserID: userID,
	}
	_ = s.db.Save(&record).Error
}

func (s *sessionStore) GetUserID(w http.ResponseWriter, r *http.Request) string {
	id := s.ensureSessionID(w, r)
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.sessions[id]
	}
	var record db.Session
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		return ""
	}
	return record.UserID
}

func (s *sessionStore) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie("ap_session")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     "ap_session",
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("sess-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", buf)
}
