package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/response"
	"github.com/rupeebooks/backend/internal/common/utils"
	"github.com/rupeebooks/backend/internal/domain/errors"
	"github.com/rupeebooks/backend/internal/domain/ledger"
)

// LedgerHandler handles the stateless posting operations. The ledger
// table itself is owned by the bookkeeping service, so these endpoints
// work on transaction payloads supplied by the caller and persist
// nothing.
type LedgerHandler struct {
	poster *ledger.Poster
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(poster *ledger.Poster) *LedgerHandler {
	return &LedgerHandler{poster: poster}
}

// ValidateTransaction handles POST /v1/transactions/validate
func (h *LedgerHandler) ValidateTransaction(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := request.RequestContext.RequestID

	var txn ledger.Transaction
	if err := json.Unmarshal([]byte(request.Body), &txn); err != nil {
		return response.BadRequest("Invalid JSON body", requestID), nil
	}

	if err := h.poster.ValidateForPosting(&txn); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(map[string]interface{}{
		"balanced":     true,
		"totalDebits":  txn.TotalDebits(),
		"totalCredits": txn.TotalCredits(),
	}, requestID), nil
}

// ReverseTransaction handles POST /v1/transactions/reverse. The body is
// the POSTED transaction to correct; the optional date query parameter
// dates the reversal, defaulting to today.
func (h *LedgerHandler) ReverseTransaction(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := request.RequestContext.RequestID

	var txn ledger.Transaction
	if err := json.Unmarshal([]byte(request.Body), &txn); err != nil {
		return response.BadRequest("Invalid JSON body", requestID), nil
	}

	date := request.QueryStringParameters["date"]
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if err := utils.ValidateISODate(date); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	reversal, err := h.poster.Reverse(txn, date)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.NewInvalidInputError(err.Error(), err)
	}

	return response.OK(reversal, requestID), nil
}
