package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/response"
)

// Router dispatches API Gateway requests to the endpoint handlers. It is
// itself an APIGatewayHandler, so the middleware chain wraps it whole.
type Router struct {
	reports *ReportsHandler
	tax     *TaxHandler
	ledger  *LedgerHandler
}

// NewRouter creates a new router
func NewRouter(reports *ReportsHandler, tax *TaxHandler, ledger *LedgerHandler) *Router {
	return &Router{
		reports: reports,
		tax:     tax,
		ledger:  ledger,
	}
}

// Route routes the request by path and method
func (r *Router) Route(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	path := request.Path
	method := request.HTTPMethod

	switch {
	case path == "/v1/accounts" && method == "GET":
		return r.reports.GetAccounts(ctx, logger, request)
	case path == "/v1/reports/balance-sheet" && method == "GET":
		return r.reports.GetBalanceSheet(ctx, logger, request)
	case path == "/v1/reports/cash-flow" && method == "GET":
		return r.reports.GetCashFlow(ctx, logger, request)
	case path == "/v1/transactions/validate" && method == "POST":
		return r.ledger.ValidateTransaction(ctx, logger, request)
	case path == "/v1/transactions/reverse" && method == "POST":
		return r.ledger.ReverseTransaction(ctx, logger, request)
	case path == "/v1/tax/gst" && method == "POST":
		return r.tax.CalculateGST(ctx, logger, request)
	case path == "/v1/tax/tds" && method == "POST":
		return r.tax.CalculateTDS(ctx, logger, request)
	default:
		return response.NotFound("Endpoint not found"), nil
	}
}
