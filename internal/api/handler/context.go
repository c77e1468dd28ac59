package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/userhub/account-system/internal/core/domain"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware.
// An empty identity means the middleware did not run (or the token carried
// no usable claims); callers decide whether that is fatal.
func ctxIdentity(c echo.Context) domain.Identity {
	username, _ := c.Get("username").(string)
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return domain.Identity{
		Username: username,
		Email:    email,
		Role:     domain.ParseRole(role),
	}
}
