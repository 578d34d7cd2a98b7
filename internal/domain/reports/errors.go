package reports

import "fmt"

// ReportGenerationError wraps a failure while assembling a report,
// typically a store read. The cause stays reachable through errors.Is/As.
type ReportGenerationError struct {
	Report string
	Err    error
}

func (e *ReportGenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Report, e.Err)
}

func (e *ReportGenerationError) Unwrap() error {
	return e.Err
}
