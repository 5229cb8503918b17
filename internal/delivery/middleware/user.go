package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CurrentUserMiddleware resolves the acting user from the X-User-Id header.
// Requests without the header act as the demo user.
type CurrentUserMiddleware struct{}

// NewCurrentUserMiddleware creates a new current user middleware
func NewCurrentUserMiddleware() *CurrentUserMiddleware {
	return &CurrentUserMiddleware{}
}

// Process must run after RequestIDMiddleware so the scoped logger exists
func (m *CurrentUserMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXUserID))
		if userID == "" {
			userID = entity.DemoUserID
		}

		deliverycontext.SetUserID(c, userID)

		ctx := deliverycontext.WithUserID(c.Request().Context(), userID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
