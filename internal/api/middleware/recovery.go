package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/api/response"
	apperrors "github.com/rupeebooks/backend/internal/domain/errors"
	"github.com/rupeebooks/backend/internal/domain/ledger"
	"github.com/rupeebooks/backend/internal/domain/reports"
	"github.com/rupeebooks/backend/internal/domain/tax"
)

// RecoveryMiddleware recovers from panics and folds domain errors into
// the API error envelope.
type RecoveryMiddleware struct{}

// NewRecoveryMiddleware creates a new recovery middleware
func NewRecoveryMiddleware() RecoveryMiddleware {
	return RecoveryMiddleware{}
}

// Handle handles the recovery middleware
func (m RecoveryMiddleware) Handle(next APIGatewayHandler) APIGatewayHandler {
	return func(ctx context.Context, logger *zap.Logger, request events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				resp = response.Error(
					apperrors.NewInternalError("An unexpected error occurred", fmt.Errorf("panic: %v", r)),
					request.RequestContext.RequestID)
				err = nil
			}
		}()

		resp, err = next(ctx, logger, request)
		if err != nil {
			appErr := toAppError(err)
			logger.Error("request failed",
				zap.String("code", appErr.Code),
				zap.Error(err))
			return response.Error(appErr, request.RequestContext.RequestID), nil
		}

		return resp, nil
	}
}

// toAppError maps domain errors onto the transport
// error codes. ReportGenerationError is checked before StoreReadError
// because the former wraps the latter; the outer failure names the
// operation the caller asked for.
func toAppError(err error) apperrors.AppError {
	var appErr apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var genErr *reports.ReportGenerationError
	if errors.As(err, &genErr) {
		return apperrors.NewReportGenerationError(genErr.Error(), genErr)
	}

	var readErr *ledger.StoreReadError
	if errors.As(err, &readErr) {
		return apperrors.NewStoreReadError(readErr.Error(), readErr)
	}

	var unbalancedErr *ledger.UnbalancedLedgerError
	if errors.As(err, &unbalancedErr) {
		return apperrors.NewUnbalancedLedgerError(unbalancedErr.Error(), unbalancedErr).
			WithDetail("debits", unbalancedErr.Debits.StringFixed(2)).
			WithDetail("credits", unbalancedErr.Credits.StringFixed(2)).
			WithDetail("difference", unbalancedErr.Diff.StringFixed(2))
	}

	if errors.Is(err, ledger.ErrEmptyTransaction) {
		return apperrors.NewEmptyTransactionError(err.Error(), err)
	}

	var sectionErr *tax.InvalidSectionError
	if errors.As(err, &sectionErr) {
		return apperrors.NewInvalidSectionError(sectionErr.Error(), sectionErr).
			WithDetail("section", sectionErr.Section)
	}

	var stateErr *tax.InvalidStateCodeError
	if errors.As(err, &stateErr) {
		return apperrors.NewInvalidStateCodeError(stateErr.Error(), stateErr).
			WithDetail("stateCode", stateErr.Code)
	}

	return apperrors.NewInternalError("An unexpected error occurred", err)
}
