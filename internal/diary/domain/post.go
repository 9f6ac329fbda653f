package domain

import "time"

// Post is a diary entry. Author name/photo and the like count are joined in
// by the store so listings render without extra round trips.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Published   bool      `json:"published"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	AuthorPhoto string    `json:"authorPhoto,omitempty"`
	LikeCount   int       `json:"likeCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostUpdate carries the mutable post fields; nil means leave unchanged.
type PostUpdate struct {
	Title     *string
	Content   *string
	ImageURL  *string
	Published *bool
}
