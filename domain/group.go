package domain

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

const (
	MaxGroupTitleLen = 200
	MaxGroupSlugLen  = 100
)

var slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type Group struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}

func (g Group) String() string {
	return g.Title
}

func (g Group) Validate() error {
	if g.Title == "" || utf8.RuneCountInString(g.Title) > MaxGroupTitleLen {
		return errors.New("group title must be between 1 and 200 characters")
	}
	if utf8.RuneCountInString(g.Slug) > MaxGroupSlugLen || !slugRegexp.MatchString(g.Slug) {
		return errors.New("group slug must be up to 100 letters, digits, hyphens or underscores")
	}
	return nil
}
