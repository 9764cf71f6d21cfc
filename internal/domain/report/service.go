// Package report turns a project's recent performance into a prose
// progress report via a generative text endpoint.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/medlink/pharmtrack/internal/domain/project"
)

// FallbackMessage is surfaced to the caller whenever the generator
// fails. Generator faults never propagate as hard failures.
const FallbackMessage = "报告生成失败，请检查 API 密钥配置或网络连接后重试。"

// recentMonths is how many trailing monthly records feed the prompt.
const recentMonths = 3

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds report prompts and guards against duplicate
// concurrent requests for the same project.
type Service struct {
	gen    Generator
	logger *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService creates a new report service.
func NewService(gen Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gen:      gen,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Generate produces a progress report for the project. At most one
// request per project may be outstanding; a concurrent second call
// returns ErrReportInFlight. Generator failures resolve to
// FallbackMessage, never to an error.
func (s *Service) Generate(ctx context.Context, p project.Project) (string, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[p.ID]; busy {
		s.mu.Unlock()
		return "", ErrReportInFlight
	}
	s.inFlight[p.ID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, p.ID)
		s.mu.Unlock()
	}()

	text, err := s.gen.Generate(ctx, BuildPrompt(p))
	if err != nil {
		s.logger.Warn("report generation failed", "project", p.ID, "error", err)
		return FallbackMessage, nil
	}
	if strings.TrimSpace(text) == "" {
		return FallbackMessage, nil
	}
	return text, nil
}

// BuildPrompt renders the analysis prompt from the project's name,
// manufacturer and most recent monthly records.
func BuildPrompt(p project.Project) string {
	records := p.MonthlyData
	if len(records) > recentMonths {
		records = records[len(records)-recentMonths:]
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf(
			"Month: %s, Actual Sales: %.0f, Target: %.0f, Coverage: %d, Activities: %s",
			rec.Month, rec.ActualSales, rec.TargetSales, rec.HospitalCoverage, rec.Activities))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Act as a senior Pharmaceutical Project Manager.\n")
	fmt.Fprintf(&b, "Analyze the following data for the project %q (Manufacturer: %s).\n\n", p.Name, p.Manufacturer)
	fmt.Fprintf(&b, "Recent Data:\n%s\n\n", strings.Join(lines, "\n"))
	b.WriteString("Please provide a concise monthly progress report in Chinese (Professional Tone).\n")
	b.WriteString("Structure:\n")
	b.WriteString("1. Sales Performance Analysis (Achievement rate, Trend).\n")
	b.WriteString("2. Key Highlights (Based on activities).\n")
	b.WriteString("3. Strategic Suggestions for next month.\n\n")
	b.WriteString("Keep it brief (under 200 words) and professional.\n")
	return b.String()
}
