package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "coshare/internal/delivery/context"
	domainerrors "coshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"count": 2}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"count":2},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsOnlyForClientErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails any
	}{
		{name: "bad request", status: http.StatusBadRequest, wantDetails: "day 31"},
		{name: "conflict", status: http.StatusConflict, wantDetails: "day 31"},
		{name: "server error", status: http.StatusInternalServerError, wantDetails: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "day 31"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error is rendered", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrSyndicateNotFound.WithDetails("ABC123"), "get")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SYNDICATE_NOT_FOUND"`)
		assert.Contains(t, rec.Body.String(), `"details":"ABC123"`)
	})

	t.Run("other errors are returned to the error handler", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.New("boom"))

		assert.Error(t, err)
		assert.Equal(t, 0, rec.Body.Len())
	})
}

func TestPNG(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, PNG(c, []byte{0x89, 'P', 'N', 'G'}))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, 4, rec.Body.Len())
}
