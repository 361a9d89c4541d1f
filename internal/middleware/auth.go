package middleware

import (
	"context"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	// UserKey holds the authenticated *domain.User in the gin context.
	UserKey = "user"

	tokenCookie = "jwt"
	loggedOut   = "loggedout"
)

//go:generate mockery --name=Authenticator --output=./mocks --outpkg=mocks --with-expecter
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Protect requires a valid token from the Authorization header or the jwt cookie.
func Protect(auth Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(tokenCookie); err == nil && cookie != loggedOut {
				token = cookie
			}
		}
		if token == "" {
			abort(c, domain.ErrNotLoggedIn)
			return
		}

		u, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}

		setUser(c, u)
		c.Next()
	}
}

// IsLoggedIn exposes the cookie's user to views when there is one. It never
// rejects a request.
func IsLoggedIn(auth Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		cookie, err := c.Cookie(tokenCookie)
		if err != nil || cookie == "" || cookie == loggedOut {
			c.Next()
			return
		}

		if u, err := auth.Authenticate(c.Request.Context(), cookie); err == nil {
			setUser(c, u)
		}
		c.Next()
	}
}

// RestrictTo admits only users holding one of roles. It must run after Protect.
func RestrictTo(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		u, ok := domain.UserFromContext(c.Request.Context())
		if !ok {
			abort(c, domain.ErrNotLoggedIn)
			return
		}
		if !u.HasRole(roles...) {
			abort(c, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

func bearerToken(c *ginext.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func setUser(c *ginext.Context, u *domain.User) {
	c.Set(UserKey, u)
	c.Request = c.Request.WithContext(domain.ContextWithUser(c.Request.Context(), u))
}

func abort(c *ginext.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
