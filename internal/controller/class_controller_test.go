package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/repository/memdb"
	"classboard_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupClassRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repos := memdb.New(fixture.Load())
	classController := NewClassController(service.NewClassroomService(repos))
	gradeController := NewGradeController(service.NewGradeService(repos))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/classes", classController.ListClasses)
	api.GET("/classes/:classId", classController.GetClass)
	api.GET("/classes/:classId/stream", classController.Stream)
	api.GET("/classes/:classId/quizzes", classController.Quizzes)
	api.GET("/classes/:classId/people", classController.People)
	api.GET("/classes/:classId/grades", gradeController.Gradebook)
	return router
}

func getJSON(router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestGetClassNotFound(t *testing.T) {
	router := setupClassRouter()

	paths := []string{
		"/api/classes/999",
		"/api/classes/999/stream",
		"/api/classes/999/quizzes",
		"/api/classes/999/people",
		"/api/classes/999/grades",
	}
	for _, path := range paths {
		w, resp := getJSON(router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "Class not found", resp.Message, path)
	}
}

func TestGetClassDetail(t *testing.T) {
	router := setupClassRouter()

	w, resp := getJSON(router, "/api/classes/2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Computer Science", resp.Data["name"])
	assert.Equal(t, "Prof. Michael Chen", resp.Data["teacher"])
}

func TestListClasses(t *testing.T) {
	router := setupClassRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes", nil)
	router.ServeHTTP(w, req)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data, 6)
}
