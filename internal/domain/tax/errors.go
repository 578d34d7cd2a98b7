package tax

import "fmt"

// InvalidSectionError is returned when a TDS section outside the statutory
// table is requested.
type InvalidSectionError struct {
	Section string
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("unknown TDS section %q", e.Section)
}

// InvalidStateCodeError is returned when a GST state code is present but
// not a recognised two-digit code.
type InvalidStateCodeError struct {
	Code string
}

func (e *InvalidStateCodeError) Error() string {
	return fmt.Sprintf("invalid GST state code %q", e.Code)
}
