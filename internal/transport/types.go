package transport

import "github.com/medlink/pharmtrack/internal/domain/project"

// CreateProjectRequest is the POST /api/projects body.
type CreateProjectRequest struct {
	Name         string `json:"name" validate:"required"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	Products     string `json:"products"`
	Description  string `json:"description"`
}

// UpdateProjectRequest is the PUT /api/projects/{id} body. The path
// id is authoritative; an id in the body is ignored.
type UpdateProjectRequest struct {
	Name         string                 `json:"name" validate:"required"`
	Manufacturer string                 `json:"manufacturer" validate:"required"`
	Products     string                 `json:"products"`
	StartDate    string                 `json:"startDate" validate:"required"`
	Status       string                 `json:"status" validate:"required,oneof=Active Pending Completed"`
	Description  string                 `json:"description"`
	MonthlyData  []MonthlyRecordRequest `json:"monthlyData" validate:"dive"`
}

func (r UpdateProjectRequest) toProject(id string) project.Project {
	records := make([]project.MonthlyRecord, 0, len(r.MonthlyData))
	for _, m := range r.MonthlyData {
		records = append(records, project.MonthlyRecord{
			Month:            m.Month,
			ActualSales:      m.ActualSales,
			TargetSales:      m.TargetSales,
			HospitalCoverage: m.HospitalCoverage,
			Activities:       m.Activities,
		})
	}
	return project.Project{
		ID:           id,
		Name:         r.Name,
		Manufacturer: r.Manufacturer,
		Products:     r.Products,
		StartDate:    r.StartDate,
		Status:       project.Status(r.Status),
		Description:  r.Description,
		MonthlyData:  records,
	}
}

// MonthlyRecordRequest is the POST /api/projects/{id}/months body.
type MonthlyRecordRequest struct {
	Month            string  `json:"month" validate:"required"`
	ActualSales      float64 `json:"actualSales" validate:"gte=0"`
	TargetSales      float64 `json:"targetSales" validate:"gte=0"`
	HospitalCoverage int     `json:"hospitalCoverage" validate:"gte=0"`
	Activities       string  `json:"activities"`
}

// ReportResponse is the POST /api/projects/{id}/report payload.
type ReportResponse struct {
	ProjectID string `json:"projectId"`
	Report    string `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
}
