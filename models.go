package main

import "time"

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Author is a snapshot of the user taken when the post was created.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"coverImage"`
	Author     Author    `json:"author"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PostFields are the author-supplied fields of a new post.
type PostFields struct {
	Title      string
	Content    string
	Excerpt    string
	CoverImage string
	Author     Author
}

// PostPatch replaces only the non-nil fields.
type PostPatch struct {
	Title      *string
	Content    *string
	Excerpt    *string
	CoverImage *string
}

type Page struct {
	Items      []Post
	TotalPages int
}
