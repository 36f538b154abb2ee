package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNegotiateLanguage(t *testing.T) {
	cases := map[string]string{
		"":                          "en",
		"ko":                        "ko",
		"ko-KR,ko;q=0.9,en;q=0.8":   "ko",
		"fr-CA":                     "fr",
		"de-DE,fr;q=0.5":            "fr",
		"ja":                        "en",
		"en-US,en;q=0.9":            "en",
		";;;not a language header;": "en",
	}
	for header, want := range cases {
		assert.Equal(t, want, negotiateLanguage(header), header)
	}
}

func TestLanguageMiddleware_SetsContentLanguage(t *testing.T) {
	router := gin.New()
	router.Use(LanguageMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetLang(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ko-KR")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "ko", rec.Body.String())
	assert.Equal(t, "ko", rec.Header().Get("Content-Language"))
}

func TestActorMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(LanguageMiddleware(), ActorMiddleware())
	var got domain.Actor
	router.GET("/", func(c *gin.Context) {
		got, _ = GetActor(c)
		c.Status(http.StatusNoContent)
	})

	serve := func(headers map[string]string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	status := serve(map[string]string{HeaderUserID: "pm-1", HeaderUserRole: "Manager", HeaderUserBU: "grigo"})
	require.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, "pm-1", got.ID)
	assert.Equal(t, domain.RoleManager, got.Role)
	require.NotNil(t, got.BusinessUnit)
	assert.Equal(t, domain.BusinessUnitGrigo, *got.BusinessUnit)

	assert.Equal(t, http.StatusNoContent, serve(map[string]string{HeaderUserID: "admin-1", HeaderUserRole: "admin"}))
	assert.Equal(t, http.StatusUnauthorized, serve(map[string]string{HeaderUserRole: "admin"}))
	assert.Equal(t, http.StatusUnauthorized, serve(map[string]string{HeaderUserID: "x", HeaderUserRole: "owner"}))
	assert.Equal(t, http.StatusUnauthorized, serve(map[string]string{HeaderUserID: "x", HeaderUserRole: "leader", HeaderUserBU: "NOPE"}))
}

func TestGinZapMiddleware_RequestID(t *testing.T) {
	router := gin.New()
	router.Use(GinZapMiddleware(zap.NewNop()))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())
}
