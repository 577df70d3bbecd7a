package posts

import (
	"context"
	"fmt"

	"yatube/domain"
)

type Detail struct {
	Post             domain.Post
	Title            string
	AuthorPostsCount int
}

// Detail returns one post and how many posts its author has written.
func (s *Service) Detail(ctx context.Context, postID int64) (Detail, error) {
	post, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return Detail{}, err
	}
	count, err := s.store.CountUserPosts(ctx, post.Author.ID)
	if err != nil {
		return Detail{}, fmt.Errorf("count posts of %s: %w", post.Author.Username, err)
	}
	return Detail{
		Post:             post,
		Title:            post.Text,
		AuthorPostsCount: count,
	}, nil
}
