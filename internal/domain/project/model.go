package project

// Status represents the lifecycle state of a project
type Status string

const (
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Known reports whether s is one of the enumerated statuses.
// Unknown values are tolerated on read and rendered verbatim,
// but rejected as input.
func (s Status) Known() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted:
		return true
	}
	return false
}

// MonthlyRecord is one month's sales/coverage/activity snapshot
// for a project. Month is formatted YYYY-MM; lexicographic order
// equals chronological order.
type MonthlyRecord struct {
	Month            string  `json:"month"`
	ActualSales      float64 `json:"actualSales"`
	TargetSales      float64 `json:"targetSales"`
	HospitalCoverage int     `json:"hospitalCoverage"`
	Activities       string  `json:"activities"`
}

// Project is a tracked manufacturer partnership with recurring
// monthly performance data. MonthlyData is kept sorted ascending
// by month, at most one record per month.
type Project struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Manufacturer string          `json:"manufacturer"`
	Products     string          `json:"products"`
	StartDate    string          `json:"startDate"`
	Status       Status          `json:"status"`
	Description  string          `json:"description"`
	MonthlyData  []MonthlyRecord `json:"monthlyData"`
}

// Clone returns a deep copy so callers can hold a snapshot without
// aliasing the authoritative collection.
func (p Project) Clone() Project {
	out := p
	if p.MonthlyData != nil {
		out.MonthlyData = make([]MonthlyRecord, len(p.MonthlyData))
		copy(out.MonthlyData, p.MonthlyData)
	}
	return out
}
