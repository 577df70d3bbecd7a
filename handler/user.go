package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"yatube/domain"
	"yatube/i18n"
)

type AuthFormView struct {
	Layout
	Username string
	Email    string
	Next     string
	Error    string
}

func (h *Handler) Login(c echo.Context) error {
	formUsername := strings.TrimSpace(c.FormValue("username"))
	formPassword := c.FormValue("password")
	next := safeNext(c.FormValue("next"))

	if len(formUsername) == 0 || len(formPassword) == 0 {
		return h.renderLogin(c, http.StatusBadRequest, formUsername, next, "Bad request")
	}

	user, storedPassword, err := h.Store.UserCredentials(c.Request().Context(), formUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.renderLogin(c, http.StatusBadRequest, formUsername, next, "Wrong username or password")
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword(storedPassword, []byte(formPassword)); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, formUsername, next, "Wrong username or password")
	}

	cookie, err := authorizationCookie(user, h.Config.JWTSecret, h.Config.SessionTTL())
	if err != nil {
		return err
	}
	c.SetCookie(cookie)
	c.Logger().Infof("user %s logged in", user.Username)
	return c.Redirect(http.StatusFound, next)
}

func (h *Handler) NewUser(c echo.Context) error {
	if !h.Config.SignupAllowed() {
		return c.HTML(http.StatusForbidden, "<h1>Forbidden!</h1><p>Sign up has been disabled.</p>")
	}

	user := domain.User{
		Username: strings.TrimSpace(c.FormValue("username")),
	}
	if email := strings.TrimSpace(c.FormValue("email")); email != "" {
		user.Email = &email
	}
	password := c.FormValue("password")
	if user.Username == "" || password == "" {
		return h.renderSignup(c, http.StatusBadRequest, user, "Username and password are required")
	}
	if err := user.ValidateEmail(); err != nil {
		return h.renderSignup(c, http.StatusBadRequest, user, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	created, err := h.Store.CreateUser(c.Request().Context(), user.Username, user.Email, hashedPassword)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return h.renderSignup(c, http.StatusConflict, user, "Username already taken")
		}
		return err
	}

	cookie, err := authorizationCookie(created, h.Config.JWTSecret, h.Config.SessionTTL())
	if err != nil {
		return err
	}
	c.SetCookie(cookie)
	c.Logger().Infof("user %s signed up", created.Username)
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	cookie := new(http.Cookie)
	cookie.Name = authCookieName
	cookie.Value = ""
	cookie.Path = "/"

	cookie.Expires = time.Now().Add(-1 * time.Second)
	c.SetCookie(cookie)
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) GetNewUserForm(c echo.Context) error {
	if !h.Config.SignupAllowed() {
		return c.HTML(http.StatusForbidden, "<h1>Forbidden!</h1><p>Sign up has been disabled.</p>")
	}
	return h.renderSignup(c, http.StatusOK, domain.User{}, "")
}

func (h *Handler) GetLoginForm(c echo.Context) error {
	return h.renderLogin(c, http.StatusOK, "", safeNext(c.QueryParam("next")), "")
}

func (h *Handler) renderLogin(c echo.Context, code int, username, next, msg string) error {
	return c.Render(code, "user-login.html", AuthFormView{
		Layout:   layout(c, h.Posts.Printer().Sprintf(i18n.LogIn)),
		Username: username,
		Next:     next,
		Error:    msg,
	})
}

func (h *Handler) renderSignup(c echo.Context, code int, user domain.User, msg string) error {
	view := AuthFormView{
		Layout:   layout(c, h.Posts.Printer().Sprintf(i18n.SignUp)),
		Username: user.Username,
		Error:    msg,
	}
	if user.Email != nil {
		view.Email = *user.Email
	}
	return c.Render(code, "user-signup.html", view)
}
