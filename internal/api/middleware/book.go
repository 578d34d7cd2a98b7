package middleware

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// BookContextKey is the key for the book ID in the request context
type BookContextKey string

const (
	// BookContextKeyValue is the context key for the resolved book ID
	BookContextKeyValue BookContextKey = "book"
)

// BookMiddleware resolves which ledger book a request addresses.
type BookMiddleware struct {
	defaultBookID string
}

// NewBookMiddleware creates a new book middleware
func NewBookMiddleware(defaultBookID string) *BookMiddleware {
	return &BookMiddleware{defaultBookID: defaultBookID}
}

// Handle resolves the book ID from the X-Book-Id header, then the bookId
// query parameter, then the configured default.
func (m *BookMiddleware) Handle(next APIGatewayHandler) APIGatewayHandler {
	return func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		bookID := request.Headers["X-Book-Id"]
		if bookID == "" {
			// API Gateway forwards header names in whatever case the
			// client sent them.
			bookID = request.Headers["x-book-id"]
		}
		if bookID == "" {
			bookID = request.QueryStringParameters["bookId"]
		}
		if bookID == "" {
			bookID = m.defaultBookID
		}

		ctx = context.WithValue(ctx, BookContextKeyValue, bookID)

		return next(ctx, logger, request)
	}
}

// GetBookID gets the book ID from the request context
func GetBookID(ctx context.Context) string {
	bookID, ok := ctx.Value(BookContextKeyValue).(string)
	if !ok {
		return ""
	}
	return bookID
}
