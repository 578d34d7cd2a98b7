package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/response"
	apperrors "github.com/rupeebooks/backend/internal/domain/errors"
	"github.com/rupeebooks/backend/internal/domain/ledger"
	"github.com/rupeebooks/backend/internal/domain/reports"
	"github.com/rupeebooks/backend/internal/domain/tax"
)

func decodeErrorEnvelope(t *testing.T, body string) response.ErrorResponse {
	t.Helper()
	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope
}

func failingHandler(err error) APIGatewayHandler {
	return func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, err
	}
}

func TestRecoveryMiddleware_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "Unbalanced Ledger",
			err:        &ledger.UnbalancedLedgerError{Debits: decimal.NewFromInt(100), Credits: decimal.NewFromInt(90), Diff: decimal.NewFromInt(10)},
			wantCode:   "UNBALANCED_LEDGER",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Empty Transaction",
			err:        ledger.ErrEmptyTransaction,
			wantCode:   "EMPTY_TRANSACTION",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Store Read Failure",
			err:        ledger.NewStoreReadError("query accounts", errors.New("throttled")),
			wantCode:   "STORE_READ_ERROR",
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "Report Generation Wraps Store Failure",
			err:        &reports.ReportGenerationError{Report: "balance sheet", Err: ledger.NewStoreReadError("query accounts", errors.New("throttled"))},
			wantCode:   "REPORT_GENERATION_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Invalid TDS Section",
			err:        &tax.InvalidSectionError{Section: "194Z"},
			wantCode:   "INVALID_SECTION",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid GST State Code",
			err:        &tax.InvalidStateCodeError{Code: "99"},
			wantCode:   "INVALID_STATE_CODE",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "AppError Passes Through",
			err:        apperrors.NewValidationError("asOf must be a YYYY-MM-DD date"),
			wantCode:   "VALIDATION_ERROR",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown Error Becomes Internal",
			err:        errors.New("boom"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewRecoveryMiddleware().Handle(failingHandler(tt.err))

			resp, err := chain(context.Background(), zap.NewNop(), events.APIGatewayProxyRequest{})

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			envelope := decodeErrorEnvelope(t, resp.Body)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantCode, envelope.Error)
		})
	}
}

func TestRecoveryMiddleware_UnbalancedDetails(t *testing.T) {
	chain := NewRecoveryMiddleware().Handle(failingHandler(&ledger.UnbalancedLedgerError{
		Debits:  decimal.RequireFromString("1500.00"),
		Credits: decimal.RequireFromString("500.00"),
		Diff:    decimal.RequireFromString("1000.00"),
	}))

	resp, err := chain(context.Background(), zap.NewNop(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	envelope := decodeErrorEnvelope(t, resp.Body)
	assert.Equal(t, "1500.00", envelope.ErrorDescription.Details["debits"])
	assert.Equal(t, "500.00", envelope.ErrorDescription.Details["credits"])
	assert.Equal(t, "1000.00", envelope.ErrorDescription.Details["difference"])
}

func TestRecoveryMiddleware_PanicRecovered(t *testing.T) {
	panicking := func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		panic(fmt.Errorf("nil map write"))
	}
	chain := NewRecoveryMiddleware().Handle(panicking)

	resp, err := chain(context.Background(), zap.NewNop(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	envelope := decodeErrorEnvelope(t, resp.Body)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error)
}

func TestRecoveryMiddleware_SuccessUntouched(t *testing.T) {
	ok := func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: `{"success":true}`}, nil
	}
	chain := NewRecoveryMiddleware().Handle(ok)

	resp, err := chain(context.Background(), zap.NewNop(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"success":true}`, resp.Body)
}
