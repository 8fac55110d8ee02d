package main

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

const (
	userKey  = "user"
	postsKey = "blogs"
)

// Storage is the durable mirror the stores write after each mutation.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type sqliteStorage struct {
	db *sql.DB
}

func newSQLiteStorage(db *sql.DB) *sqliteStorage {
	return &sqliteStorage{db: db}
}

func (s *sqliteStorage) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: reading %q: %w", ErrPersistence, key, err)
	}
	return value, true, nil
}

func (s *sqliteStorage) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrPersistence, key, err)
	}
	return nil
}

func (s *sqliteStorage) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM storage WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("%w: deleting %q: %w", ErrPersistence, key, err)
	}
	return nil
}

type memoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{values: make(map[string]string)}
}

func (s *memoryStorage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
