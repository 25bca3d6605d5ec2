package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		setupContext func(c echo.Context)
		expectInLogs []string
	}{
		{
			name:         "string panic",
			panicValue:   "escrow ledger exploded",
			expectInLogs: []string{"escrow ledger exploded", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   errors.New("nil offer"),
			expectInLogs: []string{"nil offer", "*errors.errorString"},
		},
		{
			name:       "panic with user context",
			panicValue: "user context panic",
			setupContext: func(c echo.Context) {
				c.Set("user_id", "4b7c7a3e-0000-0000-0000-000000000001")
			},
			expectInLogs: []string{"4b7c7a3e-0000-0000-0000-000000000001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var logBuffer bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/trades", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.setupContext != nil {
				tt.setupContext(c)
			}

			handler := PanicRecoveryWithZapMiddleware(bufferedLogger(&logBuffer))(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			// Act
			err := handler(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)

			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logBuffer.String(), expected)
			}
		})
	}
}

func TestPanicRecoveryWithZapMiddleware_NoPanic(t *testing.T) {
	var logBuffer bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecoveryWithZapMiddleware(bufferedLogger(&logBuffer))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuffer.String())
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryWithZapMiddleware(nil)
	})
}
