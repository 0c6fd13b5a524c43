package middleware

// identity.go defines helper functions shared across middleware files.
// Currently it provides a user identifier used to build rate-limit
// bucket keys. When no user is authenticated, "anon" is returned so
// guests on the same IP share one bucket.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID extracts the user identifier stored by JWTAuth. The JWT
// library decodes numeric claims as float64, so the value is formatted
// rather than asserted to a single type.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
		return "anon"
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
