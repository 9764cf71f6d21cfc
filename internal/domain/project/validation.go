package project

import (
	"regexp"
	"strings"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidateCreateInput validates fields required to create a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Manufacturer) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateRecord validates a monthly record before it is persisted.
func ValidateRecord(rec MonthlyRecord) error {
	if !monthPattern.MatchString(rec.Month) {
		return ErrInvalidMonth
	}
	if rec.ActualSales < 0 || rec.TargetSales < 0 || rec.HospitalCoverage < 0 {
		return ErrNegativeValue
	}
	return nil
}

// ValidateProject validates a full project for update. Status must be
// one of the enumerated values and every monthly record must be valid.
func ValidateProject(p Project) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Manufacturer) == "" {
		return ErrInvalidInput
	}
	if !p.Status.Known() {
		return ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(p.MonthlyData))
	for _, rec := range p.MonthlyData {
		if err := ValidateRecord(rec); err != nil {
			return err
		}
		if _, dup := seen[rec.Month]; dup {
			return ErrDuplicateMonth
		}
		seen[rec.Month] = struct{}{}
	}
	return nil
}
