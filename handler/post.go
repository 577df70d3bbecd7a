package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"yatube/domain"
	"yatube/i18n"
	"yatube/pager"
	"yatube/posts"
)

type ListingView struct {
	Layout
	Page             PageDTO
	Group            *domain.Group
	Author           *domain.User
	AuthorPostsCount int
}

type DetailView struct {
	Layout
	Post             PostDTO
	AuthorPostsCount int
	CanEdit          bool
}

type GroupOption struct {
	ID       int64
	Title    string
	Selected bool
}

type PostFormView struct {
	Layout
	Text       string
	Groups     []GroupOption
	TextError  string
	GroupError string
	IsEdit     bool
	PostID     int64
}

func (h *Handler) GetPosts(c echo.Context) error {
	listing, err := h.Posts.ListGlobal(c.Request().Context(), pager.ParseNumber(c.QueryParam("page")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Render(http.StatusOK, "index.html", h.listingView(c, listing))
}

func (h *Handler) GetGroupPosts(c echo.Context) error {
	listing, err := h.Posts.ListByGroup(c.Request().Context(), c.Param("slug"), pager.ParseNumber(c.QueryParam("page")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Render(http.StatusOK, "group_list.html", h.listingView(c, listing))
}

func (h *Handler) GetProfile(c echo.Context) error {
	listing, err := h.Posts.ListByAuthor(c.Request().Context(), c.Param("username"), pager.ParseNumber(c.QueryParam("page")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Render(http.StatusOK, "profile.html", h.listingView(c, listing))
}

func (h *Handler) GetByID(c echo.Context) error {
	id, ok := postID(c)
	if !ok {
		return echo.ErrNotFound
	}
	detail, err := h.Posts.Detail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Render(http.StatusOK, "post_detail.html", DetailView{
		Layout:           layout(c, detail.Title),
		Post:             toPostDTO(detail.Post),
		AuthorPostsCount: detail.AuthorPostsCount,
		CanEdit:          actor(c).Owns(detail.Post),
	})
}

func (h *Handler) GetNewPostForm(c echo.Context) error {
	editor, err := h.Posts.CreateForm(c.Request().Context(), actor(c))
	return h.editor(c, editor, err)
}

func (h *Handler) NewPost(c echo.Context) error {
	editor, err := h.Posts.Create(c.Request().Context(), actor(c), postForm(c))
	return h.editor(c, editor, err)
}

func (h *Handler) GetEditPostForm(c echo.Context) error {
	if actor(c) == nil {
		return loginRedirect(c)
	}
	id, ok := postID(c)
	if !ok {
		return echo.ErrNotFound
	}
	editor, err := h.Posts.EditForm(c.Request().Context(), actor(c), id)
	return h.editor(c, editor, err)
}

func (h *Handler) EditPost(c echo.Context) error {
	if actor(c) == nil {
		return loginRedirect(c)
	}
	id, ok := postID(c)
	if !ok {
		return echo.ErrNotFound
	}
	editor, err := h.Posts.Edit(c.Request().Context(), actor(c), id, postForm(c))
	return h.editor(c, editor, err)
}

func (h *Handler) GetGroups(c echo.Context) error {
	groups, err := h.Posts.ListGroups(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "groups.html", struct {
		Layout
		Groups []domain.Group
	}{
		Layout: layout(c, h.Posts.Printer().Sprintf(i18n.Groups)),
		Groups: groups,
	})
}

func (h *Handler) listingView(c echo.Context, listing posts.Listing) ListingView {
	return ListingView{
		Layout:           layout(c, listing.Title),
		Page:             toPageDTO(listing.Page),
		Group:            listing.Group,
		Author:           listing.Author,
		AuthorPostsCount: listing.AuthorPostsCount,
	}
}

// editor turns a create/edit outcome into a redirect or the post form.
func (h *Handler) editor(c echo.Context, editor posts.Editor, err error) error {
	if err != nil {
		return h.fail(c, err)
	}
	if r := editor.Redirect; r != nil {
		switch r.Kind {
		case posts.RedirectProfile:
			return c.Redirect(http.StatusFound, profilePath(r.Username))
		case posts.RedirectDetail:
			return c.Redirect(http.StatusFound, postPath(r.PostID))
		}
	}

	title := i18n.NewPost
	if editor.IsEdit {
		title = i18n.EditPost
	}
	view := PostFormView{
		Layout:     layout(c, h.Posts.Printer().Sprintf(title)),
		Text:       editor.Form.Text,
		TextError:  editor.Errors.Get(posts.FieldText),
		GroupError: editor.Errors.Get(posts.FieldGroup),
		IsEdit:     editor.IsEdit,
		PostID:     editor.PostID,
	}
	for _, g := range editor.Groups {
		view.Groups = append(view.Groups, GroupOption{
			ID:       g.ID,
			Title:    g.Title,
			Selected: editor.Form.GroupID != nil && *editor.Form.GroupID == g.ID,
		})
	}
	return c.Render(http.StatusOK, "create_post.html", view)
}

// fail maps domain outcomes onto HTTP responses. Other errors propagate.
func (h *Handler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return loginRedirect(c)
	case errors.Is(err, domain.ErrNotFound):
		return echo.ErrNotFound
	case errors.Is(err, domain.ErrForbidden):
		return echo.ErrForbidden
	}
	return err
}

func postID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func postForm(c echo.Context) posts.PostForm {
	form := posts.PostForm{Text: c.FormValue("text")}
	if raw := strings.TrimSpace(c.FormValue("group")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// No group has id 0, so a malformed choice is reported as an invalid one.
			id = 0
		}
		form.GroupID = &id
	}
	return form
}
