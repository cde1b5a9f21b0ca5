// Package models defines the hoot client's entity types and the ownership
// predicate shared by the CLI and the services layer.
package models

import (
	"errors"
	"time"
)

// Category classifies a hoot. The set is closed; the backend rejects
// anything outside it at creation time and so does draft validation here.
type Category string

const (
	CategoryNews       Category = "News"
	CategoryGames      Category = "Games"
	CategoryMusic      Category = "Music"
	CategoryMovies     Category = "Movies"
	CategorySports     Category = "Sports"
	CategoryTelevision Category = "Television"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryNews,
		CategoryGames,
		CategoryMusic,
		CategoryMovies,
		CategorySports,
		CategoryTelevision,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryNews, CategoryGames, CategoryMusic,
		CategoryMovies, CategorySports, CategoryTelevision:
		return true
	}
	return false
}

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrEmptyText       = errors.New("text must not be empty")
	ErrEmptyUsername   = errors.New("username must not be empty")
	ErrEmptyPassword   = errors.New("password must not be empty")
)

// User is the identity decoded from the bearer token or embedded in
// server responses. Read-only on the client.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Comment is a reply embedded in a hoot's comment sequence. Its lifecycle
// is bounded by the parent hoot.
type Comment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Author    User      `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Hoot is the top-level authored unit. Comments are embedded, oldest first,
// exactly as the backend returns them.
type Hoot struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Author    User      `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// WithComments returns a copy of h whose comment sequence is exactly
// comments. The receiver is not modified; nested mutations always go
// through a wholesale hoot substitution.
func (h Hoot) WithComments(comments []Comment) Hoot {
	h.Comments = comments
	return h
}

// HootDraft is the author-editable subset of a hoot sent on create/update.
type HootDraft struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Validate checks the draft against the contract enforced by the backend,
// so obviously broken drafts never reach the wire.
func (d HootDraft) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if d.Text == "" {
		return ErrEmptyText
	}
	if !d.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// CommentDraft is the author-editable subset of a comment.
type CommentDraft struct {
	Text string `json:"text"`
}

func (d CommentDraft) Validate() error {
	if d.Text == "" {
		return ErrEmptyText
	}
	return nil
}

// CanMutate reports whether user owns the entity authored by author.
// An anonymous user (nil or without an id) owns nothing.
func CanMutate(author User, user *User) bool {
	if user == nil || user.ID == "" {
		return false
	}
	return author.ID == user.ID
}
