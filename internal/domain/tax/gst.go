package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// GSTCalculator splits taxable amounts into their statutory components.
// The state code registry is injected at construction and never mutated.
type GSTCalculator struct {
	states map[string]string
}

// NewGSTCalculator creates a calculator with the published state codes.
func NewGSTCalculator() *GSTCalculator {
	return NewGSTCalculatorWithStates(StateCodes())
}

// NewGSTCalculatorWithStates creates a calculator with a custom state code
// registry. The map is copied.
func NewGSTCalculatorWithStates(states map[string]string) *GSTCalculator {
	copied := make(map[string]string, len(states))
	for k, v := range states {
		copied[k] = v
	}
	return &GSTCalculator{states: copied}
}

// CalculateGST splits taxableAmount for a supply between the two states.
// Matching source and destination is an intra-state supply and splits the
// levy evenly into CGST and SGST; differing states take IGST. When either
// code is missing the supply type cannot be determined and IGST applies as
// the conservative fallback. Each component is rounded to two decimal
// places at computation.
func (c *GSTCalculator) CalculateGST(taxableAmount, gstRate decimal.Decimal, sourceState, destinationState string) (*GSTDetails, error) {
	src, err := c.normalizeState(sourceState)
	if err != nil {
		return nil, err
	}
	dst, err := c.normalizeState(destinationState)
	if err != nil {
		return nil, err
	}

	details := &GSTDetails{TaxableAmount: taxableAmount}

	if src != "" && src == dst {
		half := round2(taxableAmount.Mul(gstRate.Div(two)).Div(hundred))
		sgst := half
		details.GSTType = GSTTypeCGSTSGST
		details.CGSTAmount = &half
		details.SGSTAmount = &sgst
		details.TotalGST = half.Add(sgst)
		return details, nil
	}

	igst := round2(taxableAmount.Mul(gstRate).Div(hundred))
	details.GSTType = GSTTypeIGST
	details.IGSTAmount = &igst
	details.TotalGST = igst
	return details, nil
}

// CalculateInvoiceGST applies the split to every line item of an invoice
// and aggregates the totals. Per-line components are rounded before
// summing, so the invoice total is the sum of the printed lines.
func (c *GSTCalculator) CalculateInvoiceGST(items []LineItem, sourceState, destinationState string) (*InvoiceGST, error) {
	invoice := &InvoiceGST{
		GSTType: GSTTypeIGST,
		Lines:   make([]GSTDetails, 0, len(items)),
	}

	rates := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		line, err := c.CalculateGST(item.TaxableAmount, item.GSTRate, sourceState, destinationState)
		if err != nil {
			return nil, err
		}
		invoice.GSTType = line.GSTType
		invoice.Lines = append(invoice.Lines, *line)
		invoice.TaxableAmount = invoice.TaxableAmount.Add(line.TaxableAmount)
		invoice.TotalGST = invoice.TotalGST.Add(line.TotalGST)
		rates = append(rates, item.GSTRate)
	}

	invoice.AverageRate = AverageGSTRate(rates)
	return invoice, nil
}

// AverageGSTRate is the unweighted arithmetic mean of the given rates.
// High-value lines count no more than small ones; the weighted variant is
// an open product decision.
func AverageGSTRate(rates []decimal.Decimal) decimal.Decimal {
	if len(rates) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range rates {
		sum = sum.Add(r)
	}
	return sum.Div(decimal.NewFromInt(int64(len(rates))))
}

// normalizeState trims and zero-pads a state code, then checks it against
// the registry. Empty input stays empty: missing codes are a documented
// IGST fallback, not an error.
func (c *GSTCalculator) normalizeState(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) == 1 {
		trimmed = "0" + trimmed
	}
	if _, ok := c.states[trimmed]; !ok {
		return "", &InvalidStateCodeError{Code: code}
	}
	return trimmed, nil
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
