package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/tkaykim/totalmanagement-sub003/internal/adapter/db"
	httpadapter "github.com/tkaykim/totalmanagement-sub003/internal/adapter/http"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/dto"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/handlers"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/middleware"
	appservice "github.com/tkaykim/totalmanagement-sub003/internal/app/service"
	"github.com/tkaykim/totalmanagement-sub003/pkg/apierrors"
)

// TemplateFlowSuite drives the full HTTP stack against a real database. newDB returns a clean
// database with the schema applied.
type TemplateFlowSuite struct {
	suite.Suite

	newDB  func(t *testing.T) *sqlx.DB
	DB     *sqlx.DB
	router *gin.Engine
}

type caller struct {
	id   string
	role string
	bu   string
}

var (
	admin        = caller{id: "admin-1", role: "admin"}
	grigoLeader  = caller{id: "leader-1", role: "leader", bu: "GRIGO"}
	reactManager = caller{id: "manager-1", role: "manager", bu: "REACT"}
	grigoViewer  = caller{id: "viewer-1", role: "viewer", bu: "GRIGO"}
	grigoMember  = caller{id: "member-1", role: "member", bu: "GRIGO"}
)

const releaseChecklist = `{
  "bu_code": "GRIGO",
  "name": "Release Checklist",
  "description": "Single release",
  "template_type": "release",
  "options_schema": {
    "type": "object",
    "properties": {"has_mv": {"type": "boolean", "title": "Music video"}},
    "required": []
  },
  "tasks": [
    {"title": "Release", "days_before": 0, "priority": "high"},
    {"title": "Master", "days_before": 20},
    {"title": "MV", "days_before": 10, "condition_key": "has_mv"}
  ]
}`

func (s *TemplateFlowSuite) SetupTest() {
	s.DB = s.newDB(s.T())

	_, err := s.DB.Exec(`INSERT INTO projects (id, name, bu_code, pm_id) VALUES (1, 'Summer Festival', 'GRIGO', 'pm-1')`)
	s.Require().NoError(err)
	_, err = s.DB.Exec(`INSERT INTO projects (id, name, bu_code, pm_id) VALUES (2, 'Label Launch', 'REACT', NULL)`)
	s.Require().NoError(err)

	templateRepository := dbadapter.NewTemplateRepository(s.DB)
	taskRepository := dbadapter.NewProjectTaskRepository(s.DB)
	activityRepository := dbadapter.NewActivityRepository(s.DB)
	templateService := appservice.NewTemplateService(templateRepository, taskRepository, activityRepository)
	projectTaskService := appservice.NewProjectTaskService(taskRepository)

	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(s.DB, "task-templates", "test"),
		handlers.NewTemplateHandler(templateService),
		handlers.NewProjectTaskHandler(projectTaskService),
	)
	s.router = router
}

func (s *TemplateFlowSuite) do(method, path, body string, who caller) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if who.id != "" {
		req.Header.Set(middleware.HeaderUserID, who.id)
		req.Header.Set(middleware.HeaderUserRole, who.role)
		req.Header.Set(middleware.HeaderUserBU, who.bu)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TemplateFlowSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *TemplateFlowSuite) errorMessage(rec *httptest.ResponseRecorder) string {
	var got apierrors.JsonErr
	s.decode(rec, &got)
	return got.Message
}

func (s *TemplateFlowSuite) createReleaseChecklist() dto.TemplateItem {
	rec := s.do(http.MethodPost, "/api/task-templates", releaseChecklist, grigoLeader)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TemplateItem
	s.decode(rec, &created)
	return created
}

func (s *TemplateFlowSuite) count(table string) int {
	var n int
	s.Require().NoError(s.DB.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func (s *TemplateFlowSuite) TestHealth_ReportsDatabaseUp() {
	rec := s.do(http.MethodGet, "/api/health", "", caller{})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"message":"ok"`)
}

func (s *TemplateFlowSuite) TestCreateAndRead() {
	created := s.createReleaseChecklist()

	s.NotZero(created.ID)
	s.Equal("GRIGO", created.BuCode)
	s.True(created.IsActive)
	s.Require().NotNil(created.AuthorID)
	s.Equal("leader-1", *created.AuthorID)
	s.Require().Len(created.Tasks, 3)
	s.Equal("medium", created.Tasks[1].Priority)

	rec := s.do(http.MethodGet, "/api/task-templates?bu=GRIGO", "", grigoViewer)
	s.Require().Equal(http.StatusOK, rec.Code)
	var listed []dto.TemplateItem
	s.decode(rec, &listed)
	s.Require().Len(listed, 1)
	s.Equal(created.ID, listed[0].ID)

	rec = s.do(http.MethodGet, "/api/task-templates?bu=REACT", "", grigoViewer)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/task-templates/%d", created.ID), "", reactManager)
	s.Require().Equal(http.StatusOK, rec.Code)
	var got dto.TemplateItem
	s.decode(rec, &got)
	s.Equal("Release Checklist", got.Name)
	s.Require().NotNil(got.Description)
	s.Equal("boolean", got.OptionsSchema.Properties["has_mv"].Type)
}

func (s *TemplateFlowSuite) TestCreate_PermissionAndValidation() {
	rec := s.do(http.MethodPost, "/api/task-templates", releaseChecklist, reactManager)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/task-templates", releaseChecklist, grigoViewer)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/task-templates", releaseChecklist, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("User must have a business unit.", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/api/task-templates", `{"bu_code": "GRIGO", "name": "Empty", "template_type": "event", "tasks": []}`, grigoLeader)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("A template needs at least one task.", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/api/task-templates", `{"bu_code": "GRIGO", "name": "", "template_type": "event", "tasks": [{"title": "a"}]}`, grigoLeader)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Template name is required.", s.errorMessage(rec))

	s.Zero(s.count("task_templates"))
}

func (s *TemplateFlowSuite) TestUpdate_DeactivateHidesFromDefaultList() {
	created := s.createReleaseChecklist()
	path := fmt.Sprintf("/api/task-templates/%d", created.ID)

	rec := s.do(http.MethodPatch, path, `{"name": "Release Checklist v2", "is_active": false}`, reactManager)
	s.Require().Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, path, `{"name": "Release Checklist v2", "is_active": false}`, admin)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.TemplateItem
	s.decode(rec, &updated)
	s.Equal("Release Checklist v2", updated.Name)
	s.False(updated.IsActive)
	s.Len(updated.Tasks, 3)

	rec = s.do(http.MethodGet, "/api/task-templates", "", grigoLeader)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/task-templates?include_inactive=true", "", grigoLeader)
	var listed []dto.TemplateItem
	s.decode(rec, &listed)
	s.Len(listed, 1)

	rec = s.do(http.MethodPatch, "/api/task-templates/999", `{"name": "x"}`, admin)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TemplateFlowSuite) TestPreview_FiltersAndOrders() {
	created := s.createReleaseChecklist()
	path := fmt.Sprintf("/api/task-templates/%d/preview", created.ID)

	rec := s.do(http.MethodPost, path, `{"anchor_date": "2025-06-30", "options": {"has_mv": false}}`, grigoViewer)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var preview dto.PreviewTemplateResponse
	s.decode(rec, &preview)
	s.Require().Equal(2, preview.Count)
	s.Equal("Master", preview.Tasks[0].Title)
	s.Equal("2025-06-10", preview.Tasks[0].DueDate)
	s.Equal("D-20", preview.Tasks[0].DayLabel)
	s.Equal("Release", preview.Tasks[1].Title)
	s.Equal("D-Day", preview.Tasks[1].DayLabel)

	rec = s.do(http.MethodPost, path, `{"anchor_date": "2025-06-30", "options": {"has_mv": true}}`, grigoViewer)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &preview)
	s.Require().Equal(3, preview.Count)
	s.Equal("MV", preview.Tasks[1].Title)
	s.Equal("2025-06-20", preview.Tasks[1].DueDate)

	rec = s.do(http.MethodPost, path, `{"anchor_date": "2025-06-30", "options": {"has_stage": true}}`, grigoViewer)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(`Unknown template option "has_stage".`, s.errorMessage(rec))
}

func (s *TemplateFlowSuite) TestGenerate_PersistsTasksAndActivity() {
	created := s.createReleaseChecklist()
	body := fmt.Sprintf(`{
  "template_id": %d,
  "project_id": 1,
  "tasks": [
    {"title": "Master", "due_date": "2025-06-10", "priority": "medium"},
    {"title": "Release", "due_date": "2025-06-30", "priority": "high", "assignee_role": "PD"}
  ]
}`, created.ID)

	rec := s.do(http.MethodPost, "/api/task-templates/generate", body, grigoLeader)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var result dto.GenerateTasksResponse
	s.decode(rec, &result)
	s.Require().Equal(2, result.Count)
	s.Require().Len(result.Tasks, 2)
	s.Equal("GRIGO", result.Tasks[0].BuCode)
	s.Equal("todo", result.Tasks[0].Status)
	s.Require().NotNil(result.Tasks[1].AssigneeRole)
	s.Equal("PD", *result.Tasks[1].AssigneeRole)
	s.Equal(2, s.count("activity_logs"))

	rec = s.do(http.MethodGet, "/api/projects/1/tasks", "", grigoViewer)
	s.Require().Equal(http.StatusOK, rec.Code)
	var tasks []dto.ProjectTaskItem
	s.decode(rec, &tasks)
	s.Require().Len(tasks, 2)
	s.Equal("Master", tasks[0].Title)
	s.Equal("2025-06-10", *tasks[0].DueDate)

	// Tasks outlive the template they came from.
	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/task-templates/%d", created.ID), "", grigoLeader)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success": true}`, rec.Body.String())
	s.Equal(2, s.count("project_tasks"))
}

func (s *TemplateFlowSuite) TestGenerate_Rejections() {
	task := `{"title": "Master", "due_date": "2025-06-10"}`

	rec := s.do(http.MethodPost, "/api/task-templates/generate", `{"template_id": 1, "project_id": 1, "tasks": []}`, grigoLeader)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("No tasks to create", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/api/task-templates/generate", `{"template_id": 1, "project_id": 99, "tasks": [`+task+`]}`, grigoLeader)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Project not found", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/api/task-templates/generate", `{"template_id": 1, "project_id": 2, "tasks": [`+task+`]}`, grigoLeader)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/task-templates/generate", `{"template_id": 1, "project_id": 1, "tasks": [`+task+`]}`, grigoViewer)
	s.Equal(http.StatusForbidden, rec.Code)

	s.Zero(s.count("project_tasks"))
	s.Zero(s.count("activity_logs"))
}

func (s *TemplateFlowSuite) TestGenerate_ProjectManagerOfOtherUnit() {
	_, err := s.DB.Exec(`UPDATE projects SET pm_id = 'manager-1' WHERE id = 1`)
	s.Require().NoError(err)

	rec := s.do(http.MethodPost, "/api/task-templates/generate", `{"template_id": 0, "project_id": 1, "tasks": [{"title": "Kick-off", "due_date": "2025-06-01"}]}`, reactManager)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var result dto.GenerateTasksResponse
	s.decode(rec, &result)
	s.Require().Len(result.Tasks, 1)
	s.Nil(result.Tasks[0].TemplateID)
	s.Equal("medium", result.Tasks[0].Priority)
}

func (s *TemplateFlowSuite) TestGenerate_MemberNeedsToTakePartInProject() {
	body := `{"template_id": 0, "project_id": 1, "tasks": [{"title": "Rehearsal", "due_date": "2025-06-02"}]}`

	rec := s.do(http.MethodPost, "/api/task-templates/generate", body, grigoMember)
	s.Require().Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	s.Zero(s.count("project_tasks"))

	_, err := s.DB.Exec(`INSERT INTO project_participants (project_id, user_id) VALUES (1, 'member-1')`)
	s.Require().NoError(err)

	rec = s.do(http.MethodPost, "/api/task-templates/generate", body, grigoMember)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Equal(1, s.count("project_tasks"))
}
