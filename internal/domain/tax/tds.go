package tax

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rupeebooks/backend/internal/domain/errors"
)

// TDS sections supported by the withholding table.
const (
	Section194A = "194A" // interest other than on securities
	Section194C = "194C" // payments to contractors
	Section194D = "194D" // insurance commission
	Section194H = "194H" // commission or brokerage
	Section194I = "194I" // rent
	Section194J = "194J" // professional or technical fees
)

// noPANPenaltyRate is the statutory withholding rate applied when the
// deductee has not furnished a PAN (section 206AA).
var noPANPenaltyRate = decimal.NewFromInt(20)

// DefaultSectionRates returns the statutory section rate table applied
// when the deductee's PAN is on record.
func DefaultSectionRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		Section194A: decimal.NewFromInt(10),
		Section194C: decimal.NewFromInt(2),
		Section194D: decimal.NewFromInt(5),
		Section194H: decimal.NewFromInt(5),
		Section194I: decimal.NewFromInt(10),
		Section194J: decimal.NewFromInt(10),
	}
}

// TDSCalculator resolves withholding rates and computes deductions. The
// section rate table is injected at construction and never mutated.
type TDSCalculator struct {
	rates map[string]decimal.Decimal
}

// NewTDSCalculator creates a calculator with the default section table.
func NewTDSCalculator() *TDSCalculator {
	return NewTDSCalculatorWithRates(DefaultSectionRates())
}

// NewTDSCalculatorWithRates creates a calculator with a custom section
// table. The map is copied.
func NewTDSCalculatorWithRates(rates map[string]decimal.Decimal) *TDSCalculator {
	copied := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		copied[k] = v
	}
	return &TDSCalculator{rates: copied}
}

// CalculateTDS computes the deduction for a payment under a statutory
// section. Rate resolution order: an explicit override always wins, then
// the 20% no-PAN penalty, then the section's table rate. The deduction is
// rounded to two decimal places at computation.
func (c *TDSCalculator) CalculateTDS(amount decimal.Decimal, section, panNumber string, rateOverride *decimal.Decimal) (*TDSDetails, error) {
	if !amount.IsPositive() {
		return nil, errors.NewValidationError("TDS amount must be positive")
	}

	section = strings.TrimSpace(section)
	tableRate, ok := c.rates[section]
	if !ok {
		return nil, &InvalidSectionError{Section: section}
	}

	panProvided := strings.TrimSpace(panNumber) != ""

	var rate decimal.Decimal
	switch {
	case rateOverride != nil:
		rate = *rateOverride
	case !panProvided:
		rate = noPANPenaltyRate
	default:
		rate = tableRate
	}

	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return nil, errors.NewValidationError("TDS rate must be between 0 and 100")
	}

	return &TDSDetails{
		Section:     section,
		Rate:        rate,
		PANProvided: panProvided,
		TDSAmount:   round2(amount.Mul(rate).Div(hundred)),
	}, nil
}
