package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware_Handle(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	inner := func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		logger.Info("inside handler")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
	}
	chain := NewLoggingMiddleware().Handle(inner)

	resp, err := chain(context.Background(), zap.New(core), events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/v1/accounts",
		Headers: map[string]string{
			"Authorization": "Bearer secret-token",
			"Accept":        "application/json",
		},
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "req-42"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "REQUEST", entries[0].Message)
	assert.Equal(t, "inside handler", entries[1].Message)
	assert.Equal(t, "RESPONSE", entries[2].Message)

	// The handler's own entry carries the request id through the child
	// logger, not just the middleware's entries.
	for _, entry := range entries {
		assert.Equal(t, "req-42", entry.ContextMap()["requestId"], entry.Message)
	}

	headers, ok := entries[0].ContextMap()["headers"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "***", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Accept"])
}

func TestLoggingMiddleware_HandlerError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	chain := NewLoggingMiddleware().Handle(failingHandler(assert.AnError))

	_, err := chain(context.Background(), zap.New(core), events.APIGatewayProxyRequest{
		HTTPMethod:     "GET",
		Path:           "/v1/accounts",
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "req-43"},
	})

	// Errors pass through untouched; folding them into the envelope is the
	// recovery middleware's job.
	assert.ErrorIs(t, err, assert.AnError)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "handler error", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestMaskSensitiveHeaders(t *testing.T) {
	original := map[string]string{
		"Authorization": "Bearer secret",
		"X-Api-Key":     "key-123",
		"Cookie":        "session=abc",
		"X-Book-Id":     "book-1",
	}

	masked := maskSensitiveHeaders(original)

	assert.Equal(t, "***", masked["Authorization"])
	assert.Equal(t, "***", masked["X-Api-Key"])
	assert.Equal(t, "***", masked["Cookie"])
	assert.Equal(t, "book-1", masked["X-Book-Id"])

	// The caller's map is left alone.
	assert.Equal(t, "Bearer secret", original["Authorization"])
}
