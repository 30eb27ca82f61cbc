// Package session owns the authenticated identity and bearer
// credential: in-memory for the running process, mirrored durably so a
// restart resumes the same session. It performs no network calls;
// whether the credential is still honored is discovered at gateway
// call time.
package session

import (
	"encoding/json"
	"sync"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

// The two fixed names the session is persisted under. The user record
// is stored as verbatim JSON with no schema versioning; anything that
// fails to parse on restore is treated as no session.
const (
	tokenName = "authToken"
	userName  = "authUser"
)

// Session is the authenticated identity plus its bearer credential.
// The pair is atomic: both are set on login and cleared on logout,
// never one without the other.
type Session struct {
	User  api.User
	Token string
}

// Port abstracts the durable storage behind the store so tests can
// substitute an in-memory implementation.
type Port interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Clear(names ...string) error
}

// Store holds the current session. Reads are safe from command
// goroutines; writes happen only from the event loop.
type Store struct {
	mu      sync.RWMutex
	port    Port
	current *Session
}

// NewStore creates a store backed by the given persistence port.
func NewStore(port Port) *Store {
	return &Store{port: port}
}

// Restore loads a previously persisted session. Absent or malformed
// state is simply "no session", never an error: a corrupt file must
// not block startup, and partial state (token without user, or the
// reverse) violates the atomic-pair invariant so it is discarded too.
// The in-memory session always mirrors what was read, so a restore
// after the files were removed externally also drops the credential.
func (s *Store) Restore() *Session {
	sess := s.readPersisted()
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	if sess == nil {
		return nil
	}
	cp := *sess
	return &cp
}

func (s *Store) readPersisted() *Session {
	token, err := s.port.Read(tokenName)
	if err != nil || len(token) == 0 {
		return nil
	}
	rawUser, err := s.port.Read(userName)
	if err != nil || len(rawUser) == 0 {
		return nil
	}

	var user api.User
	if err := json.Unmarshal(rawUser, &user); err != nil || user.ID == "" {
		return nil
	}
	return &Session{User: user, Token: string(token)}
}

// Login replaces the current session and persists it. Idempotent; a
// persistence failure still installs the session in memory so the
// running process works, it just won't survive a restart.
func (s *Store) Login(sess Session) error {
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	if err := s.port.Write(tokenName, []byte(sess.Token)); err != nil {
		return err
	}
	return s.port.Write(userName, rawUser)
}

// Logout clears the session and its durable copy. Idempotent; calling
// with no active session is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.port.Clear(tokenName, userName)
}

// IsAuthenticated reports whether both identity and credential are
// present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Token != "" && s.current.User.ID != ""
}

// Current returns a copy of the active session, or nil.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Token returns the current bearer credential, or "" when logged out.
// Satisfies api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// SetUser replaces the identity half of the session (profile update)
// and re-persists. No-op when logged out.
func (s *Store) SetUser(user api.User) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	s.current.User = user
	sess := *s.current
	s.mu.Unlock()
	return s.Login(sess)
}
