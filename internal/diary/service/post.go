package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/store"
)

type PostService struct {
	Store store.Store
}

// Create persists a post and reads it back so the caller gets the enriched
// view (author fields, like count, timestamps).
func (s *PostService) Create(ctx context.Context, authorID, title, content, imageURL string) (domain.Post, error) {
	post := domain.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		Published: true,
		AuthorID:  authorID,
	}
	if err := s.Store.Posts().CreatePost(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, post.ID)
}

func (s *PostService) Get(ctx context.Context, id string) (domain.Post, error) {
	return s.Store.Posts().GetPostByID(ctx, id)
}

// List pages through published posts, newest first.
func (s *PostService) List(ctx context.Context, page domain.Page) (domain.Paginated[domain.Post], error) {
	var result domain.Paginated[domain.Post]
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		posts, err := tx.Posts().ListPublishedPosts(ctx, page.Offset(), domain.PageSize)
		if err != nil {
			return err
		}
		total, err := tx.Posts().CountPublishedPosts(ctx)
		if err != nil {
			return err
		}
		result = domain.NewPaginated(posts, total)
		return nil
	})
	return result, err
}

// Feed pages through published posts by authors the user follows. Following
// nobody yields an empty first page, not an error.
func (s *PostService) Feed(ctx context.Context, userID string, page domain.Page) (domain.Paginated[domain.Post], error) {
	var result domain.Paginated[domain.Post]
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		authorIDs, err := tx.Follows().ListFollowingIDs(ctx, userID)
		if err != nil {
			return err
		}
		posts, err := tx.Posts().ListPostsByAuthors(ctx, authorIDs, page.Offset(), domain.PageSize)
		if err != nil {
			return err
		}
		total, err := tx.Posts().CountPostsByAuthors(ctx, authorIDs)
		if err != nil {
			return err
		}
		result = domain.NewPaginated(posts, total)
		return nil
	})
	return result, err
}

type PostUpdateInput struct {
	Title    *string
	Content  *string
	ImageURL *string
}

func (s *PostService) Update(ctx context.Context, id string, in PostUpdateInput) (domain.Post, error) {
	upd := domain.PostUpdate{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
	}
	if err := s.Store.Posts().UpdatePost(ctx, id, upd); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

// SetPublished toggles a post in or out of public listings without touching
// its content.
func (s *PostService) SetPublished(ctx context.Context, id string, published bool) (domain.Post, error) {
	if err := s.Store.Posts().SetPublished(ctx, id, published); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.Store.Posts().DeletePost(ctx, id)
}
