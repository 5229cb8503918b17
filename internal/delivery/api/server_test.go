package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coshare/config"
	"coshare/internal/delivery/api/router"
	"coshare/internal/delivery/api/router/handler"
	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	"coshare/internal/domain/money"
	mockUsecase "coshare/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serverFixtures holds the routed echo instance and the usecase mocks behind it.
type serverFixtures struct {
	echo      *echo.Echo
	catalog   *mockUsecase.MockCatalogUsecase
	query     *mockUsecase.MockQueryUsecase
	valuation *mockUsecase.MockValuationUsecase
	syndicate *mockUsecase.MockSyndicateUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	query := mockUsecase.NewMockQueryUsecase(t)
	valuation := mockUsecase.NewMockValuationUsecase(t)
	syndicate := mockUsecase.NewMockSyndicateUsecase(t)
	scheduling := mockUsecase.NewMockSchedulingUsecase(t)
	reservation := mockUsecase.NewMockReservationUsecase(t)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	e := newEcho(cfg, logger, router.RouterParams{
		AssetHandler: handler.NewAssetHandler(handler.AssetHandlerParams{
			CatalogUC: catalog, QueryUC: query, ValuationUC: valuation, Logger: logger,
		}),
		ValuationHandler: handler.NewValuationHandler(handler.ValuationHandlerParams{
			ValuationUC: valuation, Logger: logger,
		}),
		SyndicateHandler: handler.NewSyndicateHandler(handler.SyndicateHandlerParams{
			SyndicateUC: syndicate, Logger: logger,
		}),
		SchedulingHandler: handler.NewSchedulingHandler(handler.SchedulingHandlerParams{
			SchedulingUC: scheduling, Logger: logger,
		}),
		ReservationHandler: handler.NewReservationHandler(handler.ReservationHandlerParams{
			ReservationUC: reservation, Logger: logger,
		}),
	})

	return serverFixtures{
		echo:      e,
		catalog:   catalog,
		query:     query,
		valuation: valuation,
		syndicate: syndicate,
	}
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestServer_FeaturedIsNotAnAssetID(t *testing.T) {
	fx := createTestServer(t)
	fx.query.EXPECT().Featured(mock.Anything).Return([]*entity.Asset{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/featured", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CurrentUserFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "header", header: "user-42", want: "user-42"},
		{name: "demo user", header: "", want: entity.DemoUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)
			fx.catalog.EXPECT().ListByOwner(mock.Anything, tt.want).Return([]*entity.Asset{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXUserID, tt.header)
			}
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServer_Currencies(t *testing.T) {
	fx := createTestServer(t)
	fx.valuation.EXPECT().Currencies().Return(money.Currencies())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []money.Currency `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 4)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_BodyLimit(t *testing.T) {
	fx := createTestServer(t)

	body := `{"name":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
