package domain

import (
	"time"
)

type Post struct {
	ID        int64
	Text      string
	CreatedAt time.Time
	Author    User
	// Group is nil for posts filed under no group, including posts whose group was deleted.
	Group *Group
}

// String returns the first 15 characters of the post text.
func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > 15 {
		return string(runes[:15])
	}
	return p.Text
}

// GroupID returns the id of the post's group or nil.
func (p Post) GroupID() *int64 {
	if p.Group == nil {
		return nil
	}
	id := p.Group.ID
	return &id
}
