package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"yatube/domain"
	"yatube/pager"
)

const postSelect = `SELECT p.id, p.text, p.created_at,
       u.id, u.username,
       g.id, g.title, g.slug, g.description
  FROM posts p
  JOIN users u ON u.id = p.author_id
  LEFT JOIN post_groups g ON g.id = p.group_id`

const newestFirst = " ORDER BY p.created_at DESC, p.id DESC"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (domain.Post, error) {
	var (
		p           domain.Post
		createdAt   int64
		groupID     sql.NullInt64
		title       sql.NullString
		slug        sql.NullString
		description sql.NullString
	)
	if err := row.Scan(
		&p.ID, &p.Text, &createdAt,
		&p.Author.ID, &p.Author.Username,
		&groupID, &title, &slug, &description,
	); err != nil {
		return domain.Post{}, err
	}
	p.CreatedAt = fromMillis(createdAt)
	if groupID.Valid {
		p.Group = &domain.Group{
			ID:          groupID.Int64,
			Title:       title.String,
			Slug:        slug.String,
			Description: description.String,
		}
	}
	return p, nil
}

// PostByID returns the post with its author and group.
func (s *Store) PostByID(ctx context.Context, id int64) (domain.Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx, postSelect+" WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, domain.ErrNotFound
		}
		return domain.Post{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

// CreatePost inserts a post and returns it as stored.
func (s *Store) CreatePost(ctx context.Context, text string, authorID int64, groupID *int64, createdAt time.Time) (domain.Post, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO posts (text, created_at, author_id, group_id) VALUES ($1, $2, $3, $4) RETURNING id",
		text, toMillis(createdAt), authorID, nullInt64(groupID),
	).Scan(&id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return s.PostByID(ctx, id)
}

// UpdatePost overwrites the text and group of a post.
func (s *Store) UpdatePost(ctx context.Context, id int64, text string, groupID *int64) (domain.Post, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE posts SET text = $1, group_id = $2 WHERE id = $3", text, nullInt64(groupID), id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("update post %d: %w", id, err)
	}
	if err := expectAffected(res); err != nil {
		return domain.Post{}, err
	}
	return s.PostByID(ctx, id)
}

// CountUserPosts counts every post written by the user.
func (s *Store) CountUserPosts(ctx context.Context, userID int64) (int, error) {
	return s.UserPosts(userID).Count(ctx)
}

// AllPosts returns every post, newest first.
func (s *Store) AllPosts() pager.Collection[domain.Post] {
	return postQuery{db: s.db}
}

// GroupPosts returns the posts filed under the group, newest first.
func (s *Store) GroupPosts(groupID int64) pager.Collection[domain.Post] {
	return postQuery{db: s.db, where: " WHERE p.group_id = $1", args: []any{groupID}}
}

// UserPosts returns the posts written by the user, newest first.
func (s *Store) UserPosts(userID int64) pager.Collection[domain.Post] {
	return postQuery{db: s.db, where: " WHERE p.author_id = $1", args: []any{userID}}
}

// postQuery is a filtered post collection fetched lazily in LIMIT/OFFSET windows.
type postQuery struct {
	db    *sql.DB
	where string
	args  []any
}

func (q postQuery) Count(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts p"+q.where, q.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func (q postQuery) Slice(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	n := len(q.args)
	query := fmt.Sprintf("%s%s%s LIMIT $%d OFFSET $%d", postSelect, q.where, newestFirst, n+1, n+2)
	args := append(append([]any{}, q.args...), limit, offset)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
