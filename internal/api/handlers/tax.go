package handlers

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/response"
	"github.com/rupeebooks/backend/internal/common/utils"
	"github.com/rupeebooks/backend/internal/domain/tax"
)

// TaxHandler handles the GST and TDS calculation endpoints
type TaxHandler struct {
	gst       *tax.GSTCalculator
	tds       *tax.TDSCalculator
	homeState string
}

// NewTaxHandler creates a new tax handler. homeState is the registered
// state of the business; it backs requests that omit sourceState.
func NewTaxHandler(gst *tax.GSTCalculator, tds *tax.TDSCalculator, homeState string) *TaxHandler {
	return &TaxHandler{
		gst:       gst,
		tds:       tds,
		homeState: homeState,
	}
}

type gstRequest struct {
	TaxableAmount    decimal.Decimal `json:"taxableAmount"`
	GSTRate          decimal.Decimal `json:"gstRate"`
	SourceState      string          `json:"sourceState"`
	DestinationState string          `json:"destinationState"`
	LineItems        []tax.LineItem  `json:"lineItems,omitempty"`
}

// CalculateGST handles POST /v1/tax/gst. A body with lineItems is treated
// as an invoice summary request; otherwise a single amount is split.
func (h *TaxHandler) CalculateGST(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := request.RequestContext.RequestID

	var req gstRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", requestID), nil
	}

	sourceState := req.SourceState
	if sourceState == "" {
		sourceState = h.homeState
	}

	if len(req.LineItems) > 0 {
		invoice, err := h.gst.CalculateInvoiceGST(req.LineItems, sourceState, req.DestinationState)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return response.OK(invoice, requestID), nil
	}

	details, err := h.gst.CalculateGST(req.TaxableAmount, req.GSTRate, sourceState, req.DestinationState)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(details, requestID), nil
}

type tdsRequest struct {
	Amount       decimal.Decimal  `json:"amount"`
	Section      string           `json:"section"`
	PANNumber    string           `json:"panNumber"`
	RateOverride *decimal.Decimal `json:"rateOverride,omitempty"`
}

// CalculateTDS handles POST /v1/tax/tds
func (h *TaxHandler) CalculateTDS(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := request.RequestContext.RequestID

	var req tdsRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", requestID), nil
	}

	if err := utils.ValidateRequiredString(req.Section, "section"); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	// A malformed PAN is rejected here; the calculator itself only
	// distinguishes present from absent.
	pan := strings.TrimSpace(req.PANNumber)
	if err := utils.ValidatePAN(pan); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	details, err := h.tds.CalculateTDS(req.Amount, req.Section, pan, req.RateOverride)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(details, requestID), nil
}
