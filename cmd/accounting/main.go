package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/handlers"
	"github.com/rupeebooks/backend/internal/api/middleware"
	"github.com/rupeebooks/backend/internal/api/response"
	envconfig "github.com/rupeebooks/backend/internal/common/config"
	"github.com/rupeebooks/backend/internal/domain/ledger"
	"github.com/rupeebooks/backend/internal/domain/reports"
	"github.com/rupeebooks/backend/internal/domain/tax"
	ddbclient "github.com/rupeebooks/backend/internal/platform/dynamodb/client"
	"github.com/rupeebooks/backend/internal/platform/dynamodb/repository"
	platformlogger "github.com/rupeebooks/backend/internal/platform/logger"
)

var (
	chain  middleware.APIGatewayHandler
	logger *zap.Logger
	config *envconfig.Config
)

func init() {
	var err error
	config, err = envconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load Env config: %v", err)
	}

	logger, err = platformlogger.NewLogger(config.Environment, config.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	dbClient, err := ddbclient.NewDynamoDBClient(context.Background(), config.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	factory := repository.NewFactory(dbClient, config.DynamoDBTableName, logger)

	reportsService := reports.NewService(factory.LedgerRepository(), logger)

	router := handlers.NewRouter(
		handlers.NewReportsHandler(reportsService),
		handlers.NewTaxHandler(tax.NewGSTCalculator(), tax.NewTDSCalculator(), config.GSTHomeState),
		handlers.NewLedgerHandler(ledger.NewPoster()),
	)

	chain = middleware.NewLoggingMiddleware().Handle(
		middleware.NewRecoveryMiddleware().Handle(
			middleware.NewBookMiddleware(config.DefaultBookID).Handle(
				router.Route,
			),
		),
	)
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Handle CORS preflight
	if request.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    response.DefaultHeaders(),
		}, nil
	}

	return chain(ctx, logger, request)
}

func main() {
	lambda.Start(handler)
}
