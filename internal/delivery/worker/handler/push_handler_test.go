package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coshare/config"
	"coshare/internal/domain/constants"
	"coshare/internal/domain/entity"
	"coshare/internal/domain/service"
	"coshare/internal/infra/pubsub"
	mockUsecase "coshare/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler   *PushHandler
	concierge *mockUsecase.MockConciergeUsecase
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	concierge := mockUsecase.NewMockConciergeUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ConciergeUC: concierge,
	})

	return pushHandlerFixtures{handler: h, concierge: concierge}
}

func reservationEvent() *service.CatalogEvent {
	return &service.CatalogEvent{
		EventID:       "evt-1",
		Type:          service.EventReservationRequested,
		RequestID:     "req-from-event",
		AssetID:       "y-1",
		ReservationID: "rsv-1",
		Subject:       "Call Ada about Asset y-1",
	}
}

func pushBody(t *testing.T, event *service.CatalogEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(pubsub.NewPushMessage(event, data))
	require.NoError(t, err)

	return string(body)
}

func doPush(handler *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = handler.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	event := reservationEvent()

	fx.concierge.EXPECT().HandleEvent(mock.Anything, mock.MatchedBy(func(got *service.CatalogEvent) bool {
		return got.EventID == "evt-1" && got.Type == service.EventReservationRequested && got.ReservationID == "rsv-1"
	})).Return(&entity.ConciergeTask{ID: "task-1", Kind: entity.TaskCallLead, Reference: "rsv-1"}, nil)

	rec := doPush(fx.handler, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedIsAcked(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"***","messageId":"m-1"}}`},
		{
			name: "data not an event",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain text")) + `","messageId":"m-1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, nil)

			rec := doPush(fx.handler, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_ProcessingErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "unsupported event is acked",
			err:        errors.New("unsupported catalog event type"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "deadline is retried",
			err:        errors.Wrap(context.DeadlineExceeded, "handle event"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, nil)
			fx.concierge.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doPush(fx.handler, pushBody(t, reservationEvent()))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_VerifiesTokenOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	fx := createTestPushHandler(t, cfg)
	require.True(t, fx.handler.verifyPushAuth)

	t.Run("rejected", func(t *testing.T) {
		fx.handler.verifyToken = func(*http.Request) error { return errors.New("bad token") }

		rec := doPush(fx.handler, pushBody(t, reservationEvent()))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		fx.handler.verifyToken = func(*http.Request) error { return nil }
		fx.concierge.EXPECT().HandleEvent(mock.Anything, mock.Anything).
			Return(&entity.ConciergeTask{ID: "task-1"}, nil).Once()

		rec := doPush(fx.handler, pushBody(t, reservationEvent()))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_SkipsTokenInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	fx := createTestPushHandler(t, cfg)

	assert.False(t, fx.handler.verifyPushAuth)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "basic auth", header: "Basic abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Error(t, verifyPubSubToken(req))
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	tests := []struct {
		name      string
		attribute string
		eventID   string
		want      string
	}{
		{name: "attribute wins", attribute: "req-attr", eventID: "req-event", want: "req-attr"},
		{name: "event field", eventID: "req-event", want: "req-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg PubSubMessage
			msg.Message.Attributes = map[string]string{}
			if tt.attribute != "" {
				msg.Message.Attributes["request_id"] = tt.attribute
			}

			got := fx.handler.extractRequestID(context.Background(), &msg, &service.CatalogEvent{RequestID: tt.eventID})

			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("generated", func(t *testing.T) {
		got := fx.handler.extractRequestID(context.Background(), &PubSubMessage{}, &service.CatalogEvent{})

		assert.NotEmpty(t, got)
	})
}

func TestPushHandler_ListTasks(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	fx.concierge.EXPECT().Tasks(mock.Anything).Return([]*entity.ConciergeTask{
		{ID: "task-2", Kind: entity.TaskReviewListing, Reference: "ua-1"},
		{ID: "task-1", Kind: entity.TaskCallLead, Reference: "rsv-1"},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, fx.handler.ListTasks(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []entity.ConciergeTask `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "task-2", body.Data[0].ID)
}
