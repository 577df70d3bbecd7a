package posts

import (
	"context"
	"errors"
	"fmt"

	"yatube/domain"
	"yatube/i18n"
)

type RedirectKind int

const (
	// RedirectProfile sends the user to Redirect.Username's profile listing.
	RedirectProfile RedirectKind = iota + 1
	// RedirectDetail sends the user to the detail page of Redirect.PostID.
	RedirectDetail
)

type Redirect struct {
	Kind     RedirectKind
	Username string
	PostID   int64
}

// Editor is the outcome of a create or edit step: either a form to show or a redirect.
type Editor struct {
	Form     PostForm
	Errors   FieldErrors
	IsEdit   bool
	PostID   int64
	Groups   []domain.Group
	Redirect *Redirect
}

// CreateForm returns an empty post form.
func (s *Service) CreateForm(ctx context.Context, actor *domain.Actor) (Editor, error) {
	if actor == nil {
		return Editor{}, domain.ErrUnauthorized
	}
	return s.form(ctx, Editor{})
}

// Create validates form and stores a new post authored by actor.
func (s *Service) Create(ctx context.Context, actor *domain.Actor, form PostForm) (Editor, error) {
	if actor == nil {
		return Editor{}, domain.ErrUnauthorized
	}
	v, err := s.validate(ctx, form)
	if err != nil {
		return Editor{}, err
	}
	if !v.Valid() {
		return s.form(ctx, Editor{Form: form, Errors: v.Errors})
	}
	post, err := s.store.CreatePost(ctx, v.Fields.Text, actor.UserID, v.Fields.GroupID, s.now())
	if err != nil {
		return Editor{}, fmt.Errorf("create post: %w", err)
	}
	return Editor{
		PostID:   post.ID,
		Redirect: &Redirect{Kind: RedirectProfile, Username: actor.Username},
	}, nil
}

// EditForm returns the form for postID filled with its current values.
// Actors other than the author are redirected to the post.
func (s *Service) EditForm(ctx context.Context, actor *domain.Actor, postID int64) (Editor, error) {
	post, redirect, err := s.editable(ctx, actor, postID)
	if err != nil || redirect != nil {
		return Editor{PostID: postID, Redirect: redirect}, err
	}
	return s.form(ctx, Editor{Form: FormFromPost(post), IsEdit: true, PostID: post.ID})
}

// Edit overwrites the text and group of postID. Last write wins.
func (s *Service) Edit(ctx context.Context, actor *domain.Actor, postID int64, form PostForm) (Editor, error) {
	post, redirect, err := s.editable(ctx, actor, postID)
	if err != nil || redirect != nil {
		return Editor{PostID: postID, Redirect: redirect}, err
	}
	v, err := s.validate(ctx, form)
	if err != nil {
		return Editor{}, err
	}
	if !v.Valid() {
		return s.form(ctx, Editor{Form: form, Errors: v.Errors, IsEdit: true, PostID: post.ID})
	}
	if _, err := s.store.UpdatePost(ctx, post.ID, v.Fields.Text, v.Fields.GroupID); err != nil {
		return Editor{}, fmt.Errorf("update post %d: %w", post.ID, err)
	}
	return Editor{
		PostID:   post.ID,
		Redirect: &Redirect{Kind: RedirectDetail, PostID: post.ID},
	}, nil
}

// editable resolves postID and checks actor authored it. A non-nil Redirect
// means the actor may not edit the post.
func (s *Service) editable(ctx context.Context, actor *domain.Actor, postID int64) (domain.Post, *Redirect, error) {
	if actor == nil {
		return domain.Post{}, nil, domain.ErrUnauthorized
	}
	post, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return domain.Post{}, nil, err
	}
	if !actor.Owns(post) {
		return domain.Post{}, &Redirect{Kind: RedirectDetail, PostID: post.ID}, nil
	}
	return post, nil, nil
}

func (s *Service) validate(ctx context.Context, form PostForm) (Validation, error) {
	v := ValidatePostForm(form)
	if form.GroupID != nil {
		if _, err := s.store.GroupByID(ctx, *form.GroupID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return Validation{}, err
			}
			if v.Errors == nil {
				v.Errors = FieldErrors{}
			}
			v.Errors.Add(FieldGroup, i18n.InvalidChoice)
		}
	}
	for field, keys := range v.Errors {
		for i, key := range keys {
			v.Errors[field][i] = s.printer.Sprintf(key)
		}
	}
	return v, nil
}

func (s *Service) form(ctx context.Context, e Editor) (Editor, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return Editor{}, err
	}
	e.Groups = groups
	return e, nil
}
