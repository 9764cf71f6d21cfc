package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medlink/pharmtrack/internal/domain/metrics"
	"github.com/medlink/pharmtrack/internal/domain/project"
	"github.com/medlink/pharmtrack/internal/domain/report"
	"github.com/medlink/pharmtrack/internal/transport"
)

// memStore is an in-memory project.Store for handler tests.
type memStore struct {
	projects []project.Project
}

func (s *memStore) Load(context.Context) ([]project.Project, error) {
	out := make([]project.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *memStore) Save(_ context.Context, projects []project.Project) error {
	s.projects = projects
	return nil
}

type staticGenerator struct {
	text string
	err  error
}

func (g staticGenerator) Generate(context.Context, string) (string, error) {
	return g.text, g.err
}

func newTestServer(t *testing.T, gen report.Generator) (*httptest.Server, *memStore) {
	t.Helper()

	store := &memStore{projects: []project.Project{
		{
			ID: "p1", Name: "心血管-立普妥专项推广", Manufacturer: "辉瑞制药 (Pfizer)",
			Products: "阿托伐他汀钙片, 络活喜", StartDate: "2023-01-01",
			Status: project.StatusActive,
			MonthlyData: []project.MonthlyRecord{
				{Month: "2023-10", ActualSales: 130000, TargetSales: 120000, HospitalCoverage: 50},
			},
		},
		{
			ID: "p5", Name: "呼吸科-OTC连锁合作", Manufacturer: "葛兰素史克 (GSK)",
			Products: "辅舒良, 舒利迭", StartDate: "2023-06-01",
			Status:      project.StatusPending,
			MonthlyData: []project.MonthlyRecord{},
		},
	}}

	if gen == nil {
		gen = staticGenerator{text: "报告正文"}
	}

	projectSvc := project.NewService(store, nil)
	reportSvc := report.NewService(gen, nil)
	srv := httptest.NewServer(transport.NewRouter(projectSvc, reportSvc, nil))
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func postJSON(t *testing.T, url, body string, v any) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	resp := getJSON(t, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListProjects(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var projects []project.Project
	resp := getJSON(t, srv.URL+"/api/projects", &projects)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, projects, 2)
}

func TestListProjectsFiltered(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var projects []project.Project
	resp := getJSON(t, srv.URL+"/api/projects?q=%E8%BE%89%E7%91%9E", &projects)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, projects, 1)
	require.Equal(t, "p1", projects[0].ID)

	resp = getJSON(t, srv.URL+"/api/projects?status=Pending", &projects)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, projects, 1)
	require.Equal(t, "p5", projects[0].ID)
}

func TestGetProject(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var proj project.Project
	resp := getJSON(t, srv.URL+"/api/projects/p1", &proj)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "心血管-立普妥专项推广", proj.Name)

	resp = getJSON(t, srv.URL+"/api/projects/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProject(t *testing.T) {
	srv, store := newTestServer(t, nil)

	var proj project.Project
	resp := postJSON(t, srv.URL+"/api/projects",
		`{"name":"骨科-高值耗材集采","manufacturer":"史赛克 (Stryker)","products":"膝关节假体"}`,
		&proj)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, project.StatusActive, proj.Status)
	require.Len(t, store.projects, 3)
}

func TestCreateProjectValidation(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var errResp map[string]string
	resp := postJSON(t, srv.URL+"/api/projects", `{"name":"","manufacturer":"X"}`, &errResp)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, errResp["error"], "Name")

	resp = postJSON(t, srv.URL+"/api/projects", `{definitely not json`, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordMonth(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var proj project.Project
	resp := postJSON(t, srv.URL+"/api/projects/p1/months",
		`{"month":"2023-11","actualSales":140000,"targetSales":125000,"hospitalCoverage":52,"activities":"华东区学术巡讲"}`,
		&proj)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, proj.MonthlyData, 2)
	require.Equal(t, "2023-11", proj.MonthlyData[1].Month)
}

func TestRecordMonthNotFound(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/projects/nope/months",
		`{"month":"2023-11","actualSales":1,"targetSales":1}`, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordMonthRejectsNegative(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/projects/p1/months",
		`{"month":"2023-11","actualSales":-5,"targetSales":1}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var sum metrics.Summary
	resp := getJSON(t, srv.URL+"/api/dashboard", &sum)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, sum.TotalProjects)
	require.Equal(t, 1, sum.ActiveProjects)
	require.Equal(t, float64(130000), sum.TotalSales)
	require.Equal(t, 2, sum.Manufacturers)
}

func TestReport(t *testing.T) {
	srv, _ := newTestServer(t, staticGenerator{text: "## 报告\n达成率良好"})

	var rep transport.ReportResponse
	resp := postJSON(t, srv.URL+"/api/projects/p1/report", ``, &rep)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "p1", rep.ProjectID)
	require.Contains(t, rep.Report, "报告")
}

func TestReportFallbackOnGeneratorFailure(t *testing.T) {
	srv, _ := newTestServer(t, staticGenerator{err: errors.New("endpoint unreachable")})

	var rep transport.ReportResponse
	resp := postJSON(t, srv.URL+"/api/projects/p1/report", ``, &rep)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, report.FallbackMessage, rep.Report)
}

func TestUpdateProject(t *testing.T) {
	srv, store := newTestServer(t, nil)

	body := `{"name":"心血管-立普妥专项推广","manufacturer":"辉瑞制药 (Pfizer)",` +
		`"products":"阿托伐他汀钙片","startDate":"2023-01-01","status":"Completed",` +
		`"description":"项目收尾","monthlyData":[]}`

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/projects/p1", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var proj project.Project
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&proj))
	require.Equal(t, project.StatusCompleted, proj.Status)
	require.Equal(t, project.StatusCompleted, store.projects[0].Status)
}

func TestUpdateProjectRejectsDuplicateMonths(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	body := `{"name":"心血管-立普妥专项推广","manufacturer":"辉瑞制药 (Pfizer)",` +
		`"startDate":"2023-01-01","status":"Active","monthlyData":[` +
		`{"month":"2023-10","actualSales":130000,"targetSales":120000},` +
		`{"month":"2023-10","actualSales":1,"targetSales":1}]}`

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/projects/p1", strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProjectRejectsUnknownStatus(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	body := `{"name":"X","manufacturer":"Y","startDate":"2023-01-01","status":"Archived","monthlyData":[]}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/projects/p1", strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
