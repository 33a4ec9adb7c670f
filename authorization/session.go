package authorization

import (
	"encoding/json"
	"sync"

	"hostelhub_client/domain"

	"github.com/cristalhq/jwt/v4"
)

// Session is the process-wide authenticated identity. It is written once at
// login, cleared once at logout and only read in between.
type Session struct {
	mu    sync.RWMutex
	user  *domain.User
	token string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Login(user *domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.UserType
}

// TokenClaims is the subset of claims the backend issues that the client
// cares about.
type TokenClaims struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
}

// DecodeToken extracts identity claims without verifying the signature. The
// client never holds the signing secret, the server remains the verifier.
func DecodeToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.ParseNoVerify([]byte(token))
	if err != nil {
		return nil, err
	}

	var claims TokenClaims
	if err := json.Unmarshal(parsed.Claims(), &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
