package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

var demoHash = sync.OnceValue(func() string { return mustHashPassword("password") })

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func testConfig() Config {
	return Config{
		DBPath:           ":memory:",
		DemoEmail:        defaultDemoEmail,
		DemoPasswordHash: demoHash(),
		Now:              stepClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
	}
}

func setupTestDB(t *testing.T, path string) *sqliteStorage {
	t.Helper()
	db, err := openDB(path)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err = initDB(db); err != nil {
		t.Fatalf("initializing test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return newSQLiteStorage(db)
}

func setupPostStore(t *testing.T) (*PostStore, *memoryStorage) {
	t.Helper()
	storage := newMemoryStorage()
	store := NewPostStore(storage, testConfig())
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	return store, storage
}

func wait[T any](t *testing.T, task *Task[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return task.Wait(ctx)
}

func mustWait[T any](t *testing.T, task *Task[T]) T {
	t.Helper()
	v, err := wait(t, task)
	if err != nil {
		t.Fatalf("task error: %v", err)
	}
	return v
}

func strPtr(s string) *string { return &s }

func samePost(a, b Post) bool {
	return a.ID == b.ID &&
		a.Title == b.Title &&
		a.Content == b.Content &&
		a.Excerpt == b.Excerpt &&
		a.CoverImage == b.CoverImage &&
		a.Author == b.Author &&
		a.CreatedAt.Equal(b.CreatedAt) &&
		a.UpdatedAt.Equal(b.UpdatedAt)
}

func postIDs(posts []Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

// flakyStorage wraps a Storage and fails writes while failWrites is set.
type flakyStorage struct {
	Storage
	failWrites bool
}

func (s *flakyStorage) Set(key, value string) error {
	if s.failWrites {
		return fmt.Errorf("%w: disk full", ErrPersistence)
	}
	return s.Storage.Set(key, value)
}

func (s *flakyStorage) Delete(key string) error {
	if s.failWrites {
		return fmt.Errorf("%w: disk full", ErrPersistence)
	}
	return s.Storage.Delete(key)
}

type brokenStorage struct{}

func (brokenStorage) Get(string) (string, bool, error) {
	return "", false, fmt.Errorf("%w: %w", ErrPersistence, errors.New("io error"))
}
func (brokenStorage) Set(string, string) error { return errors.New("unused") }
func (brokenStorage) Delete(string) error      { return errors.New("unused") }
