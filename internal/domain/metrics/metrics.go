// Package metrics derives dashboard figures from a project collection.
// Every function is pure and always operates over the full collection;
// aggregation and list filtering are independent concerns.
package metrics

import (
	"sort"

	"github.com/medlink/pharmtrack/internal/domain/project"
)

// LatestRecord returns the most recent monthly record of a project,
// relying on MonthlyData being sorted ascending by month.
func LatestRecord(p project.Project) (project.MonthlyRecord, bool) {
	if len(p.MonthlyData) == 0 {
		return project.MonthlyRecord{}, false
	}
	return p.MonthlyData[len(p.MonthlyData)-1], true
}

// AchievementRate is actual sales over target sales as a percentage.
// A zero target yields 0, not an error or infinity.
func AchievementRate(rec project.MonthlyRecord) float64 {
	if rec.TargetSales <= 0 {
		return 0
	}
	return rec.ActualSales / rec.TargetSales * 100
}

// TotalSales sums the latest-month actual sales across the collection.
// Projects without monthly data contribute 0.
func TotalSales(projects []project.Project) float64 {
	var total float64
	for _, p := range projects {
		if rec, ok := LatestRecord(p); ok {
			total += rec.ActualSales
		}
	}
	return total
}

// TotalTarget sums the latest-month target sales across the collection.
func TotalTarget(projects []project.Project) float64 {
	var total float64
	for _, p := range projects {
		if rec, ok := LatestRecord(p); ok {
			total += rec.TargetSales
		}
	}
	return total
}

// OverallAchievement is TotalSales over TotalTarget as a percentage,
// 0 when the total target is 0.
func OverallAchievement(projects []project.Project) float64 {
	target := TotalTarget(projects)
	if target <= 0 {
		return 0
	}
	return TotalSales(projects) / target * 100
}

// DistinctManufacturers counts distinct manufacturer strings,
// case-sensitive exact equality.
func DistinctManufacturers(projects []project.Project) int {
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		seen[p.Manufacturer] = struct{}{}
	}
	return len(seen)
}

// TopByLatestSales returns up to n projects ordered descending by
// latest-month actual sales (missing data counts as 0). The sort is
// stable, so ties keep the original collection order.
func TopByLatestSales(projects []project.Project, n int) []project.Project {
	ranked := make([]project.Project, len(projects))
	copy(ranked, projects)

	sort.SliceStable(ranked, func(i, j int) bool {
		return latestSales(ranked[i]) > latestSales(ranked[j])
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func latestSales(p project.Project) float64 {
	rec, ok := LatestRecord(p)
	if !ok {
		return 0
	}
	return rec.ActualSales
}

// TopProject is one entry of the dashboard ranking chart.
type TopProject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ActualSales float64 `json:"actualSales"`
	TargetSales float64 `json:"targetSales"`
}

// Summary is the dashboard payload derived from the full collection.
type Summary struct {
	TotalProjects      int          `json:"totalProjects"`
	ActiveProjects     int          `json:"activeProjects"`
	TotalSales         float64      `json:"totalSales"`
	TotalTarget        float64      `json:"totalTarget"`
	OverallAchievement float64      `json:"overallAchievement"`
	Manufacturers      int          `json:"manufacturers"`
	TopProjects        []TopProject `json:"topProjects"`
}

// Summarize computes the dashboard summary. topN bounds the ranking
// chart; the reference dashboard shows the top five.
func Summarize(projects []project.Project, topN int) Summary {
	active := 0
	for _, p := range projects {
		if p.Status == project.StatusActive {
			active++
		}
	}

	top := make([]TopProject, 0, topN)
	for _, p := range TopByLatestSales(projects, topN) {
		entry := TopProject{ID: p.ID, Name: p.Name}
		if rec, ok := LatestRecord(p); ok {
			entry.ActualSales = rec.ActualSales
			entry.TargetSales = rec.TargetSales
		}
		top = append(top, entry)
	}

	return Summary{
		TotalProjects:      len(projects),
		ActiveProjects:     active,
		TotalSales:         TotalSales(projects),
		TotalTarget:        TotalTarget(projects),
		OverallAchievement: OverallAchievement(projects),
		Manufacturers:      DistinctManufacturers(projects),
		TopProjects:        top,
	}
}
