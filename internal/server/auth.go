package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const authCookieName = "ap_auth"

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secretKey []byte
	maxAge    time.Duration
}

func newJWTManager(secret string, maxAge time.Duration) *jwtManager {
	if strings.TrimSpace(secret) == "" {
		return nil
	}
	return &jwtManager{
		secretKey: []byte(secret),
		maxAge:    maxAge,
	}
}

func (m *jwtManager) Generate(userID string, now time.Time) (string, error) {
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

func (m *jwtManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// currentUserID resolves the caller's identity: JWT cookie first, session
// record second. Empty string means unauthenticated; callers treat that as
// a silent no-op or a view with nothing answer-revealing in it.
func (s *Server) currentUserID(w http.ResponseWriter, r *http.Request) string {
	if s.jwt != nil {
		if cookie, err := r.Cookie(authCookieName); err == nil && cookie.Value != "" {
			if userID, err := s.jwt.Verify(cookie.Value); err == nil {
				return userID
			}
		}
	}
	if s.sessions != nil {
		if userID := s.sessions.GetUserID(w, r); userID != "" {
			return userID
		}
	}
	return ""
}

// signIn records the user on the session and, when a JWT secret is
// configured, sets the signed auth cookie as well.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, user User) error {
	if s.sessions != nil {
		s.sessions.SetUserID(w, r, user.ID)
	}
	if s.jwt == nil {
		return nil
	}
	token, err := s.jwt.Generate(user.ID, timeNowUTC())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.jwt.maxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
