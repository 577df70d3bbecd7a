package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"yatube/domain"
)

const groupColumns = "id, title, slug, description"

// CreateGroup inserts g. A taken slug yields domain.ErrConflict.
func (s *Store) CreateGroup(ctx context.Context, g domain.Group) (domain.Group, error) {
	if err := g.Validate(); err != nil {
		return domain.Group{}, err
	}
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO post_groups (title, slug, description) VALUES ($1, $2, $3) RETURNING id",
		g.Title, g.Slug, g.Description,
	).Scan(&g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Group{}, domain.ErrConflict
		}
		return domain.Group{}, fmt.Errorf("create group: %w", err)
	}
	return g, nil
}

func (s *Store) GroupBySlug(ctx context.Context, slug string) (domain.Group, error) {
	return s.group(ctx, "slug = $1", slug)
}

func (s *Store) GroupByID(ctx context.Context, id int64) (domain.Group, error) {
	return s.group(ctx, "id = $1", id)
}

func (s *Store) group(ctx context.Context, where string, arg any) (domain.Group, error) {
	var g domain.Group
	err := s.db.QueryRowContext(ctx, "SELECT "+groupColumns+" FROM post_groups WHERE "+where, arg).
		Scan(&g.ID, &g.Title, &g.Slug, &g.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Group{}, domain.ErrNotFound
		}
		return domain.Group{}, fmt.Errorf("get group: %w", err)
	}
	return g, nil
}

// ListGroups returns every group ordered by title.
func (s *Store) ListGroups(ctx context.Context) ([]domain.Group, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+groupColumns+" FROM post_groups ORDER BY title, id")
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Title, &g.Slug, &g.Description); err != nil {
			return nil, fmt.Errorf("list groups: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// DeleteGroup removes the group. Its posts remain with no group.
func (s *Store) DeleteGroup(ctx context.Context, slug string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM post_groups WHERE slug = $1", slug)
	if err != nil {
		return fmt.Errorf("delete group %q: %w", slug, err)
	}
	return expectAffected(res)
}
