package tax

import "github.com/shopspring/decimal"

// GSTType identifies how a taxable amount is split.
type GSTType string

const (
	// GSTTypeCGSTSGST is the intra-state split: half central, half state.
	GSTTypeCGSTSGST GSTType = "CGST_SGST"
	// GSTTypeIGST is the inter-state (or indeterminate) integrated levy.
	GSTTypeIGST GSTType = "IGST"
)

// GSTDetails carries the computed split for one taxable amount. For
// CGST_SGST the two halves are always equal; for IGST only the integrated
// amount is populated.
type GSTDetails struct {
	TaxableAmount decimal.Decimal  `json:"taxableAmount"`
	GSTType       GSTType          `json:"gstType"`
	CGSTAmount    *decimal.Decimal `json:"cgstAmount,omitempty"`
	SGSTAmount    *decimal.Decimal `json:"sgstAmount,omitempty"`
	IGSTAmount    *decimal.Decimal `json:"igstAmount,omitempty"`
	TotalGST      decimal.Decimal  `json:"totalGST"`
}

// TDSDetails carries a resolved withholding computation.
type TDSDetails struct {
	Section     string          `json:"section"`
	Rate        decimal.Decimal `json:"rate"`
	PANProvided bool            `json:"panProvided"`
	TDSAmount   decimal.Decimal `json:"tdsAmount"`
}

// LineItem is one taxable line of an invoice.
type LineItem struct {
	Description   string          `json:"description,omitempty"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	GSTRate       decimal.Decimal `json:"gstRate"`
}

// InvoiceGST summarises GST over an invoice's line items. AverageRate is
// the unweighted arithmetic mean of the line rates, which is how the
// headline rate has always been reported here; it is an approximation for
// mixed-rate invoices.
type InvoiceGST struct {
	GSTType       GSTType         `json:"gstType"`
	Lines         []GSTDetails    `json:"lines"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	TotalGST      decimal.Decimal `json:"totalGST"`
	AverageRate   decimal.Decimal `json:"averageRate"`
}
