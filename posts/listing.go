package posts

import (
	"context"
	"fmt"

	"yatube/domain"
	"yatube/i18n"
	"yatube/pager"
)

// Listing is one page of posts plus what the listing was filtered by.
type Listing struct {
	Page             pager.Page[domain.Post]
	Title            string
	Group            *domain.Group
	Author           *domain.User
	AuthorPostsCount int
}

// ListGlobal returns the requested page of every post.
func (s *Service) ListGlobal(ctx context.Context, page int) (Listing, error) {
	p, err := pager.Paginate(ctx, s.store.AllPosts(), pager.PerPage, page)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Page:  p,
		Title: s.printer.Sprintf(i18n.LatestUpdates),
	}, nil
}

// ListByGroup returns the requested page of the posts filed under the group with slug.
func (s *Service) ListByGroup(ctx context.Context, slug string, page int) (Listing, error) {
	group, err := s.store.GroupBySlug(ctx, slug)
	if err != nil {
		return Listing{}, err
	}
	p, err := pager.Paginate(ctx, s.store.GroupPosts(group.ID), pager.PerPage, page)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Page:  p,
		Title: s.printer.Sprintf(i18n.GroupPosts, group.Title),
		Group: &group,
	}, nil
}

// ListByAuthor returns the requested page of the posts written by username.
func (s *Service) ListByAuthor(ctx context.Context, username string, page int) (Listing, error) {
	author, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		return Listing{}, err
	}
	count, err := s.store.CountUserPosts(ctx, author.ID)
	if err != nil {
		return Listing{}, fmt.Errorf("count posts of %s: %w", author.Username, err)
	}
	p, err := pager.Paginate(ctx, s.store.UserPosts(author.ID), pager.PerPage, page)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Page:             p,
		Title:            s.printer.Sprintf(i18n.AuthorPosts, author.Username),
		Author:           &author,
		AuthorPostsCount: count,
	}, nil
}

// ListGroups returns every group ordered by title.
func (s *Service) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.store.ListGroups(ctx)
}
