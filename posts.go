package main

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"sync"
)

// PostStore owns the post collection. Storage only mirrors it: it is read
// once by Initialize and rewritten in full after every mutation.
type PostStore struct {
	storage Storage
	cfg     Config

	once    sync.Once
	initErr error

	mu    sync.RWMutex
	posts []Post
	ready bool
}

func NewPostStore(storage Storage, cfg Config) *PostStore {
	return &PostStore{storage: storage, cfg: cfg}
}

// Initialize loads the persisted collection, or seeds and persists the
// sample posts when there is none. Only the first call does any work.
func (s *PostStore) Initialize() error {
	s.once.Do(func() {
		s.initErr = s.load()
	})
	return s.initErr
}

func (s *PostStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.Get(postsKey)
	if err != nil {
		return fmt.Errorf("loading posts: %w", err)
	}

	if !ok {
		posts := samplePosts()
		if err := s.persist(posts); err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
		log.Printf("seeded %d sample posts", len(posts))
		s.posts = posts
		s.ready = true
		return nil
	}

	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return fmt.Errorf("%w: decoding posts: %w", ErrPersistence, err)
	}
	s.posts = posts
	s.ready = true
	return nil
}

func (s *PostStore) persist(posts []Post) error {
	if posts == nil {
		posts = []Post{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("%w: encoding posts: %w", ErrPersistence, err)
	}
	return s.storage.Set(postsKey, string(data))
}

// IsLoading reports whether the collection has not been loaded yet.
func (s *PostStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ready
}

// Posts returns a copy of the collection in stored order.
func (s *PostStore) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts)
}

func (s *PostStore) CreatePost(fields PostFields) *Task[Post] {
	return runTask(s.cfg.Latency, func() (Post, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.ready {
			return Post{}, ErrNotInitialized
		}

		id := newID()
		for indexOfPost(s.posts, id) >= 0 {
			id = newID()
		}

		post := newPost(id, fields, s.cfg.now())
		posts := prependPost(s.posts, post)
		if err := s.persist(posts); err != nil {
			return Post{}, fmt.Errorf("creating post: %w", err)
		}
		s.posts = posts
		return post, nil
	})
}

// UpdatePost applies patch to the post with id on behalf of actingUserID,
// who must be its author.
func (s *PostStore) UpdatePost(actingUserID, id string, patch PostPatch) *Task[Post] {
	return runTask(s.cfg.Latency, func() (Post, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.ready {
			return Post{}, ErrNotInitialized
		}

		i := indexOfPost(s.posts, id)
		if i < 0 {
			return Post{}, fmt.Errorf("updating post %q: %w", id, ErrNotFound)
		}
		if s.posts[i].Author.ID != actingUserID {
			return Post{}, fmt.Errorf("updating post %q: %w", id, ErrPermissionDenied)
		}

		post := applyPatch(s.posts[i], patch, s.cfg.now())
		posts := replacePost(s.posts, i, post)
		if err := s.persist(posts); err != nil {
			return Post{}, fmt.Errorf("updating post %q: %w", id, err)
		}
		s.posts = posts
		return post, nil
	})
}

// DeletePost removes the post with id. A missing post is not an error.
func (s *PostStore) DeletePost(actingUserID, id string) *Task[struct{}] {
	return runTask(s.cfg.Latency, func() (struct{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.ready {
			return struct{}{}, ErrNotInitialized
		}

		i := indexOfPost(s.posts, id)
		if i < 0 {
			return struct{}{}, nil
		}
		if s.posts[i].Author.ID != actingUserID {
			return struct{}{}, fmt.Errorf("deleting post %q: %w", id, ErrPermissionDenied)
		}

		posts := removePost(s.posts, i)
		if err := s.persist(posts); err != nil {
			return struct{}{}, fmt.Errorf("deleting post %q: %w", id, err)
		}
		s.posts = posts
		return struct{}{}, nil
	})
}

func (s *PostStore) GetPost(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOfPost(s.posts, id)
	if i < 0 {
		return Post{}, false
	}
	return s.posts[i], true
}

func (s *PostStore) GetPostsByAuthor(authorID string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return postsByAuthor(s.posts, authorID)
}

func (s *PostStore) GetRecentPosts(count int) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return recentPosts(s.posts, count)
}
