package reports

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SectionBuilder accumulates labelled lines for one report section and
// closes it with a subtotal line. The subtotal line is emitted even for an
// empty section so renderers always have something to print.
type SectionBuilder struct {
	title         string
	subtotalLabel string
	lines         []Line
	total         decimal.Decimal
}

// NewSectionBuilder creates a builder for a titled section.
func NewSectionBuilder(title, subtotalLabel string) *SectionBuilder {
	return &SectionBuilder{title: title, subtotalLabel: subtotalLabel}
}

// Add appends a line and rolls its amount into the section total.
func (b *SectionBuilder) Add(label string, amount decimal.Decimal) *SectionBuilder {
	b.lines = append(b.lines, Line{Label: label, Amount: amount})
	b.total = b.total.Add(amount)
	return b
}

// AddCounted appends an aggregated line labelled with the number of
// transactions it summarises, e.g. "Cash received from customers (3)".
func (b *SectionBuilder) AddCounted(label string, count int, amount decimal.Decimal) *SectionBuilder {
	return b.Add(fmt.Sprintf("%s (%d)", label, count), amount)
}

// Total returns the running section total.
func (b *SectionBuilder) Total() decimal.Decimal {
	return b.total
}

// Build closes the section with its subtotal line.
func (b *SectionBuilder) Build() Section {
	lines := make([]Line, 0, len(b.lines)+1)
	lines = append(lines, b.lines...)
	lines = append(lines, Line{Label: b.subtotalLabel, Amount: b.total})
	return Section{Title: b.title, Lines: lines, Total: b.total}
}
