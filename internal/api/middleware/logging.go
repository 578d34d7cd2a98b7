package middleware

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// LoggingMiddleware is a middleware for logging requests and responses
type LoggingMiddleware struct{}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware() LoggingMiddleware {
	return LoggingMiddleware{}
}

// Handle handles the logging middleware. Downstream handlers receive a
// child logger tagged with the request id.
func (m LoggingMiddleware) Handle(next APIGatewayHandler) APIGatewayHandler {
	return func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		reqLogger := logger.With(zap.String("requestId", request.RequestContext.RequestID))
		startTime := time.Now()

		logRequest(request, reqLogger)

		response, err := next(ctx, reqLogger, request)

		logResponse(response, err, time.Since(startTime), reqLogger)

		return response, err
	}
}

// logRequest logs the request
func logRequest(request events.APIGatewayProxyRequest, logger *zap.Logger) {
	logger.Info("REQUEST",
		zap.String("method", request.HTTPMethod),
		zap.String("path", request.Path),
		zap.Any("queryParameters", request.QueryStringParameters),
		zap.Any("headers", maskSensitiveHeaders(request.Headers)))

	if request.Body != "" {
		logger.Debug("REQUEST BODY", zap.String("body", request.Body))
	}
}

// logResponse logs the response
func logResponse(response events.APIGatewayProxyResponse, err error, duration time.Duration, logger *zap.Logger) {
	if err != nil {
		logger.Error("handler error", zap.Error(err))
	}

	logger.Info("RESPONSE",
		zap.Int("status", response.StatusCode),
		zap.Duration("duration", duration))

	if response.Body != "" {
		logger.Debug("RESPONSE BODY", zap.String("body", response.Body))
	}
}

// maskSensitiveHeaders masks sensitive headers
func maskSensitiveHeaders(headers map[string]string) map[string]string {
	maskedHeaders := make(map[string]string, len(headers))
	for k, v := range headers {
		maskedHeaders[k] = v
	}

	sensitiveHeaders := []string{
		"Authorization",
		"X-Api-Key",
		"Cookie",
	}

	for _, header := range sensitiveHeaders {
		if _, ok := maskedHeaders[header]; ok {
			maskedHeaders[header] = "***"
		}
	}

	return maskedHeaders
}
