package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"coshare/internal/delivery/api/response"
	"coshare/internal/delivery/api/validator"
	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/delivery/middleware"
	"coshare/internal/domain/entity"
	"coshare/internal/domain/money"
	mockUsecase "coshare/internal/mocks/usecase"
	"coshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// envelope is the decoded form of both success and error responses.
type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.Use(middleware.NewRequestIDMiddleware(newDiscardLogger()).Process)
	e.Use(middleware.NewCurrentUserMiddleware().Process)

	return e
}

func serve(t *testing.T, e *echo.Echo, method, target, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(deliverycontext.HeaderXUserID, userID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Meta)

	return env
}

// expectRealPricing makes the valuation mock format amounts like the real service.
func expectRealPricing(valuation *mockUsecase.MockValuationUsecase) {
	valuation.EXPECT().Price(mock.Anything, mock.Anything).
		RunAndReturn(func(amount decimal.Decimal, currency money.CurrencyCode) usecase.Amount {
			return usecase.Amount{
				Value:     money.Convert(amount, currency),
				Formatted: money.Format(amount, currency),
			}
		}).Maybe()
}

func testAsset(id string, visibility entity.Visibility, ownerID string) *entity.Asset {
	return &entity.Asset{
		ID:               id,
		Name:             "Asset " + id,
		Category:         entity.CategoryYacht,
		Location:         "Monaco",
		TotalValue:       decimal.NewFromInt(1000000),
		SharePrice:       decimal.NewFromInt(125000),
		FundedPercentage: decimal.NewFromInt(25),
		ImageURL:         entity.FallbackImageURL,
		Specs:            []entity.Spec{},
		OwnerID:          ownerID,
		Visibility:       visibility,
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}
