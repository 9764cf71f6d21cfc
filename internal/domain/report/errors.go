package report

import "errors"

// ErrReportInFlight indicates a report for the same project is already
// being generated.
var ErrReportInFlight = errors.New("report generation already in flight for project")
