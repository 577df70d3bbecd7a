// Package posts assembles post listings and detail pages and gates post mutations.
package posts

import (
	"context"
	"time"

	"golang.org/x/text/message"

	"yatube/domain"
	"yatube/i18n"
	"yatube/pager"
)

// Store is the entity store the service reads from and writes to.
// Post collections are newest-first.
type Store interface {
	GroupBySlug(ctx context.Context, slug string) (domain.Group, error)
	GroupByID(ctx context.Context, id int64) (domain.Group, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	UserByUsername(ctx context.Context, username string) (domain.User, error)
	PostByID(ctx context.Context, id int64) (domain.Post, error)
	AllPosts() pager.Collection[domain.Post]
	GroupPosts(groupID int64) pager.Collection[domain.Post]
	UserPosts(userID int64) pager.Collection[domain.Post]
	CountUserPosts(ctx context.Context, userID int64) (int, error)
	CreatePost(ctx context.Context, text string, authorID int64, groupID *int64, createdAt time.Time) (domain.Post, error)
	UpdatePost(ctx context.Context, id int64, text string, groupID *int64) (domain.Post, error)
}

type Service struct {
	store   Store
	printer *message.Printer
	now     func() time.Time
}

// NewService builds a service whose titles and messages use lang.
func NewService(store Store, lang string) *Service {
	return &Service{
		store:   store,
		printer: i18n.Printer(lang),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Printer returns the printer used for titles and messages.
func (s *Service) Printer() *message.Printer {
	return s.printer
}
