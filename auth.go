package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoUserID   = "1"
	demoUserName = "Demo User"
)

func mustHashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func checkPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func newID() string {
	return uuid.NewString()
}

// nameFromEmail returns the local part of an email address.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// SessionStore holds the identity of whoever is currently acting. There is
// no user directory behind it: any credentials log in.
type SessionStore struct {
	storage Storage
	cfg     Config

	mu      sync.RWMutex
	user    *User
	pending int
}

// NewSessionStore restores a previously persisted identity, if any.
func NewSessionStore(storage Storage, cfg Config) (*SessionStore, error) {
	s := &SessionStore{storage: storage, cfg: cfg}
	if err := s.restoreSession(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SessionStore) restoreSession() error {
	raw, ok, err := s.storage.Get(userKey)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if !ok {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return fmt.Errorf("%w: decoding session user: %w", ErrPersistence, err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Login never rejects credentials. The configured demo account maps to a
// fixed identity; anyone else gets a fresh id on every call.
func (s *SessionStore) Login(email, password string) *Task[User] {
	s.begin()
	return runTask(s.cfg.Latency, func() (User, error) {
		defer s.end()

		if email == s.cfg.DemoEmail && checkPassword(s.cfg.DemoPasswordHash, password) {
			return s.setUser(User{ID: demoUserID, Email: email, Name: demoUserName})
		}
		return s.setUser(User{ID: newID(), Email: email, Name: nameFromEmail(email)})
	})
}

// Register does not check for an existing account with the same email.
func (s *SessionStore) Register(email, password, name string) *Task[User] {
	s.begin()
	return runTask(s.cfg.Latency, func() (User, error) {
		defer s.end()
		return s.setUser(User{ID: newID(), Email: email, Name: name})
	})
}

func (s *SessionStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.storage.Delete(userKey); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}

func (s *SessionStore) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *SessionStore) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// IsLoading reports whether a login or registration is in flight.
func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

func (s *SessionStore) setUser(user User) (User, error) {
	user = User{ID: validText(user.ID), Email: validText(user.Email), Name: validText(user.Name)}
	data, err := json.Marshal(user)
	if err != nil {
		return User{}, fmt.Errorf("%w: encoding session user: %w", ErrPersistence, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(userKey, string(data)); err != nil {
		return User{}, fmt.Errorf("saving session: %w", err)
	}
	s.user = &user
	return user, nil
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *SessionStore) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}
