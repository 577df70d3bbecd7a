package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"yatube/i18n"
)

type ErrorView struct {
	Layout
	Code int
}

// HTTPErrorHandler renders an error page and logs everything but 404s.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code != http.StatusNotFound {
		c.Logger().Error(err)
	}

	title := i18n.ServerErrTitle
	if code == http.StatusNotFound {
		title = i18n.NotFoundTitle
	}
	view := ErrorView{
		Layout: layout(c, h.Posts.Printer().Sprintf(title)),
		Code:   code,
	}
	if err := c.Render(code, "error.html", view); err != nil {
		c.Logger().Error(err)
		_ = c.String(code, http.StatusText(code))
	}
}
