package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"yatube/domain"
	"yatube/i18n"
)

type GroupAdminView struct {
	Layout
	Groups []domain.Group
	Form   domain.Group
	Error  string
}

// requireAdmin lets through only actors named in ADMIN_USERNAMES.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		a := actor(c)
		if a == nil {
			return loginRedirect(c)
		}
		if !h.Config.IsAdmin(a.Username) {
			return h.fail(c, domain.ErrForbidden)
		}
		return next(c)
	}
}

func (h *Handler) GetGroupAdmin(c echo.Context) error {
	return h.renderGroupAdmin(c, http.StatusOK, domain.Group{}, "")
}

func (h *Handler) NewGroup(c echo.Context) error {
	g := domain.Group{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Slug:        strings.TrimSpace(c.FormValue("slug")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	if err := g.Validate(); err != nil {
		return h.renderGroupAdmin(c, http.StatusBadRequest, g, err.Error())
	}
	created, err := h.Store.CreateGroup(c.Request().Context(), g)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return h.renderGroupAdmin(c, http.StatusConflict, g, "Slug already taken")
		}
		return err
	}
	c.Logger().Infof("group %s created by %s", created.Slug, actor(c).Username)
	return c.Redirect(http.StatusFound, "/admin/groups/")
}

// DeleteGroup removes a group; its posts stay, filed under no group.
func (h *Handler) DeleteGroup(c echo.Context) error {
	slug := c.Param("slug")
	if err := h.Store.DeleteGroup(c.Request().Context(), slug); err != nil {
		return h.fail(c, err)
	}
	c.Logger().Infof("group %s deleted by %s", slug, actor(c).Username)
	return c.Redirect(http.StatusFound, "/admin/groups/")
}

func (h *Handler) renderGroupAdmin(c echo.Context, code int, form domain.Group, msg string) error {
	groups, err := h.Store.ListGroups(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(code, "admin-groups.html", GroupAdminView{
		Layout: layout(c, h.Posts.Printer().Sprintf(i18n.GroupAdmin)),
		Groups: groups,
		Form:   form,
		Error:  msg,
	})
}
