package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"coshare/config"
	deliverycontext "coshare/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO catalog_snapshots", 0
	}, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM catalog_snapshots", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TruncatesLongSQLAndUsesRequestLogger(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	reqLogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	long := "INSERT INTO catalog_snapshots VALUES ('" + strings.Repeat("x", 2*maxLoggedSQLLength) + "')"
	l.Trace(ctx, time.Now(), func() (string, int64) { return long, 1 }, nil)

	out := buf.String()
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "...")
	assert.Less(t, len(out), len(long))
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("ignored"))

	assert.Empty(t, buf.String())
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "payload" (SQLSTATE 23502)`)))
	assert.True(t, isCheckConstraintViolation(errors.New(`ERROR: new row violates check constraint (SQLSTATE 23514)`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isInvalidJSON(errors.New(`ERROR: invalid input syntax for type json (SQLSTATE 22P02)`)))
	assert.False(t, isInvalidJSON(errors.New("connection refused")))
}
