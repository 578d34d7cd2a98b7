package middleware

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// APIGatewayHandler is a function that handles API Gateway requests
type APIGatewayHandler func(context.Context, *zap.Logger, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
