package services

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// AuthService guards the admin mode behind a single shared password. There
// are no user accounts; a session either holds admin rights or it doesn't.
// With no hash configured the guard is disabled and admin mode is open.
type AuthService struct {
	Hash string

	mu     sync.Mutex
	admins map[string]bool
}

func NewAuthService(hash string) *AuthService {
	return &AuthService{Hash: hash, admins: make(map[string]bool)}
}

func (s *AuthService) Enabled() bool { return s.Hash != "" }

// Login compares the password against the configured bcrypt hash and, on
// success, marks the session as admin.
func (s *AuthService) Login(sid, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(s.Hash), []byte(password)) != nil {
		return ErrBadCreds
	}
	s.mu.Lock()
	s.admins[sid] = true
	s.mu.Unlock()
	return nil
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.admins, sid)
	s.mu.Unlock()
}

func (s *AuthService) IsAdmin(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admins[sid]
}
