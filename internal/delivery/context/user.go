package context

import (
	"context"
	"strings"

	"coshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for storing the acting user id in context.
	KeyUserID ContextKey = "user_id"

	// HeaderXUserID carries the acting user id. There is no real authentication.
	HeaderXUserID = "X-User-Id"
)

// SetUserID sets the acting user id in echo.Context.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the acting user id, or the demo user when none was set.
func GetUserID(c echo.Context) string {
	if id, ok := c.Get(string(KeyUserID)).(string); ok && strings.TrimSpace(id) != "" {
		return id
	}

	return entity.DemoUserID
}

// WithUserID returns a new context with the acting user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext extracts the acting user id, or the demo user when absent.
func GetUserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyUserID).(string); ok && id != "" {
		return id
	}

	return entity.DemoUserID
}
