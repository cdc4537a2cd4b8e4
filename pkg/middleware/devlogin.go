package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevLogin resolves the student uid from a cookie, falling back to a query
// parameter and finally a fixed dev identity. Single-user app semantics; the
// cookie only keeps separate browsers from sharing a plan.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("STUDENT_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "STUDENT_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: "STUDENT_UID", Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
