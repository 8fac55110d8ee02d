package main

import (
	"log"

	"github.com/joho/godotenv"
)

// Blog bundles the stores handed to presentation code.
type Blog struct {
	Session *SessionStore
	Posts   *PostStore
}

func NewBlog(storage Storage, cfg Config) (*Blog, error) {
	session, err := NewSessionStore(storage, cfg)
	if err != nil {
		return nil, err
	}

	posts := NewPostStore(storage, cfg)
	if err := posts.Initialize(); err != nil {
		return nil, err
	}

	return &Blog{Session: session, Posts: posts}, nil
}

func main() {
	godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initDB(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	blog, err := NewBlog(newSQLiteStorage(db), cfg)
	if err != nil {
		log.Fatalf("starting blog: %v", err)
	}

	if user, ok := blog.Session.CurrentUser(); ok {
		log.Printf("restored session for %s <%s>", user.Name, user.Email)
	} else {
		log.Println("no active session")
	}

	all := blog.Posts.Posts()
	page := Paginate(all, 1, DefaultPageSize)
	log.Printf("%d posts, %d pages of %d", len(all), page.TotalPages, DefaultPageSize)
	for _, p := range blog.Posts.GetRecentPosts(3) {
		log.Printf("  %s  %q by %s", p.CreatedAt.Format("2006-01-02"), p.Title, p.Author.Name)
	}
}
