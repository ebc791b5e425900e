package context

import (
	"kuttyport/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeySubject is the key for the authenticated token subject.
	KeySubject ContextKey = "subject"

	// KeyRoles is the key for the roles of the authenticated token.
	KeyRoles ContextKey = "roles"
)

// SetPrincipal stores the authenticated subject and roles in echo.Context.
func SetPrincipal(c echo.Context, subject string, roles entity.Roles) {
	c.Set(string(KeySubject), subject)
	c.Set(string(KeyRoles), roles)
}

// GetSubject returns the authenticated subject, or "" for anonymous requests.
func GetSubject(c echo.Context) string {
	subject, _ := c.Get(string(KeySubject)).(string)

	return subject
}

// GetRoles returns the roles of the authenticated token.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(string(KeyRoles)).(entity.Roles)

	return roles
}
