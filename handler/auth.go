package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"yatube/domain"
)

const (
	authCookieName = "Authorization"
	tokenKey       = "user"
	loginPath      = "/auth/login/"
	csrfField      = "csrf"
)

// Claims identify the signed-in user. Subject holds the user id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticate parses the session cookie when present. Requests without a
// valid token continue anonymously.
func (h *Handler) Authenticate() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(h.Config.JWTSecret),
		TokenLookup: "cookie:" + authCookieName,
		ContextKey:  tokenKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			if !errors.Is(err, echojwt.ErrJWTMissing) {
				c.Logger().Debugf("ignoring session cookie: %v", err)
			}
			return nil
		},
	})
}

// CSRF checks the "csrf" form field of unsafe requests against the token cookie.
// Templates read the token from Layout.CSRF.
func CSRF() echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup: "form:" + csrfField,
		CookiePath:  "/",
	})
}

// actor returns the authenticated identity of the request or nil.
func actor(c echo.Context) *domain.Actor {
	token, ok := c.Get(tokenKey).(*jwt.Token)
	if !ok || token == nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &domain.Actor{UserID: id, Username: claims.Username}
}

func authorizationCookie(user domain.User, secret string, ttl time.Duration) (*http.Cookie, error) {
	if secret == "" {
		return nil, errors.New("missing secret")
	}
	exp := time.Now().Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signedData, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	cookie := new(http.Cookie)
	cookie.Name = authCookieName
	cookie.Value = signedData
	cookie.Expires = exp
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	return cookie, nil
}

// loginRedirect sends anonymous users to the login form and back afterwards.
func loginRedirect(c echo.Context) error {
	next := url.QueryEscape(c.Request().URL.RequestURI())
	return c.Redirect(http.StatusFound, loginPath+"?next="+next)
}

// safeNext accepts only local absolute paths as post-login targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
