package main

import (
	"slices"
	"strings"
	"time"
)

// The functions below never modify the slice they are given, so the store
// can compute a new collection, persist it and only then swap it in.

func indexOfPost(posts []Post, id string) int {
	return slices.IndexFunc(posts, func(p Post) bool { return p.ID == id })
}

// validText repairs invalid UTF-8 up front. encoding/json would otherwise
// rewrite it on persist and storage would no longer match memory.
func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func newPost(id string, fields PostFields, now time.Time) Post {
	return Post{
		ID:         id,
		Title:      validText(fields.Title),
		Content:    validText(fields.Content),
		Excerpt:    validText(fields.Excerpt),
		CoverImage: validText(fields.CoverImage),
		Author: Author{
			ID:   validText(fields.Author.ID),
			Name: validText(fields.Author.Name),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func prependPost(posts []Post, post Post) []Post {
	out := make([]Post, 0, len(posts)+1)
	out = append(out, post)
	return append(out, posts...)
}

func applyPatch(post Post, patch PostPatch, now time.Time) Post {
	if patch.Title != nil {
		post.Title = validText(*patch.Title)
	}
	if patch.Content != nil {
		post.Content = validText(*patch.Content)
	}
	if patch.Excerpt != nil {
		post.Excerpt = validText(*patch.Excerpt)
	}
	if patch.CoverImage != nil {
		post.CoverImage = validText(*patch.CoverImage)
	}

	// A clock that steps backwards must not put updatedAt before createdAt.
	if now.Before(post.CreatedAt) {
		now = post.CreatedAt
	}
	post.UpdatedAt = now
	return post
}

func replacePost(posts []Post, i int, post Post) []Post {
	out := slices.Clone(posts)
	out[i] = post
	return out
}

func removePost(posts []Post, i int) []Post {
	return slices.Delete(slices.Clone(posts), i, i+1)
}

func postsByAuthor(posts []Post, authorID string) []Post {
	var out []Post
	for _, p := range posts {
		if p.Author.ID == authorID {
			out = append(out, p)
		}
	}
	return out
}

// recentPosts sorts a copy newest first; equal timestamps keep their
// collection order.
func recentPosts(posts []Post, count int) []Post {
	if count <= 0 {
		return nil
	}

	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted
}
