package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/tkaykim/totalmanagement-sub003/internal/adapter/http"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/handlers"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/middleware"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/pkg/translator"
)

type identity struct {
	id   string
	role domain.Role
	bu   domain.BusinessUnit
}

var (
	grigoLeader = identity{id: "leader-1", role: domain.RoleLeader, bu: domain.BusinessUnitGrigo}
	anonymous   = identity{}
)

func (i identity) actor() domain.Actor {
	actor := domain.Actor{ID: i.id, Role: i.role}
	if i.bu != "" {
		bu := i.bu
		actor.BusinessUnit = &bu
	}
	return actor
}

func newRouter(templateService *templateServiceMock, taskService *projectTaskServiceMock) *gin.Engine {
	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(nil, "task-templates", "test"),
		handlers.NewTemplateHandler(templateService),
		handlers.NewProjectTaskHandler(taskService),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, body string, who identity, lang string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)
	if who.id != "" {
		req.Header.Set(middleware.HeaderUserID, who.id)
		req.Header.Set(middleware.HeaderUserRole, string(who.role))
		if who.bu != "" {
			req.Header.Set(middleware.HeaderUserBU, string(who.bu))
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
