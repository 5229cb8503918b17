package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coshare/internal/delivery/api/response"
	domainerrors "coshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error keeps details",
			err:         domainerrors.ErrAssetNotFound.WithDetails("re-9"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "ASSET_NOT_FOUND",
			wantDetails: "re-9",
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrDayUnavailable, "day 5"),
			wantStatus: http.StatusConflict,
			wantCode:   "DAY_UNAVAILABLE",
		},
		{
			name:       "server app error hides details",
			err:        domainerrors.ErrCatalogPersistFailed.WithDetails("bucket unreachable"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CATALOG_PERSIST_FAILED",
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
