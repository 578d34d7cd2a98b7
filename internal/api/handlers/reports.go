package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/middleware"
	"github.com/rupeebooks/backend/internal/api/response"
	"github.com/rupeebooks/backend/internal/common/utils"
	"github.com/rupeebooks/backend/internal/domain/ledger"
	"github.com/rupeebooks/backend/internal/domain/reports"
)

// ReportsHandler handles the reporting endpoints
type ReportsHandler struct {
	service *reports.Service
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(service *reports.Service) *ReportsHandler {
	return &ReportsHandler{service: service}
}

// GetAccounts handles GET /v1/accounts
func (h *ReportsHandler) GetAccounts(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	bookID := middleware.GetBookID(ctx)

	chart, err := h.service.ListChartOfAccounts(ctx, bookID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(chart, request.RequestContext.RequestID), nil
}

// GetBalanceSheet handles GET /v1/reports/balance-sheet
func (h *ReportsHandler) GetBalanceSheet(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := request.RequestContext.RequestID

	asOf := request.QueryStringParameters["asOf"]
	if asOf == "" {
		return response.BadRequest("asOf query parameter is required", requestID), nil
	}
	if err := utils.ValidateISODate(asOf); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	report, err := h.service.GenerateBalanceSheet(ctx, middleware.GetBookID(ctx), asOf)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(report, requestID), nil
}

// GetCashFlow handles GET /v1/reports/cash-flow
func (h *ReportsHandler) GetCashFlow(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := request.RequestContext.RequestID

	startDate := request.QueryStringParameters["startDate"]
	endDate := request.QueryStringParameters["endDate"]
	if startDate == "" || endDate == "" {
		return response.BadRequest("startDate and endDate query parameters are required", requestID), nil
	}
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	statement, err := h.service.GenerateCashFlow(ctx, middleware.GetBookID(ctx), ledger.DateRange{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(statement, requestID), nil
}
