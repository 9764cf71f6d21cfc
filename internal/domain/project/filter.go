package project

import "strings"

// StatusAll is the sentinel status filter matching every project.
const StatusAll Status = "All"

// Filter narrows a collection to the projects matching both the search
// term and the status filter. The term matches case-insensitively as a
// substring of name, manufacturer or products; an empty term matches
// everything. Original order is preserved.
func Filter(projects []Project, term string, status Status) []Project {
	term = strings.ToLower(term)

	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if !matchesTerm(p, term) {
			continue
		}
		if status != "" && status != StatusAll && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p Project, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Manufacturer), term) {
		return true
	}
	if p.Products != "" && strings.Contains(strings.ToLower(p.Products), term) {
		return true
	}
	return false
}
