package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"askhub/internal/session"
)

// page builds the template data envelope every page shares: the current
// user for the navigation bar plus handler-specific fields.
func page(c echo.Context, extra echo.Map) echo.Map {
	data := echo.Map{"User": session.CurrentUser(c)}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// notFound renders the graceful 404 page. Bad identifiers must never fault.
func notFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "notfound.html", page(c, nil))
}
