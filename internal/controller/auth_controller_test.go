package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classboard_backend/internal/config"
	"classboard_backend/internal/fixture"
	"classboard_backend/internal/middleware"
	"classboard_backend/internal/model"
	"classboard_backend/internal/repository/memdb"
	"classboard_backend/internal/service"
	"classboard_backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
	}
	repos := memdb.New(fixture.Load())
	store := session.NewMemoryStore(0)
	policy := &session.PresencePolicy{Store: store}

	authController := NewAuthController(service.NewAuthService(repos.Users, store, cfg))
	dashboardController := NewDashboardController(service.NewDashboardService(repos))

	router := gin.New()
	api := router.Group("/api")
	api.POST("/login", authController.Login)
	api.POST("/logout", middleware.TryAuthMiddleware(policy, store), authController.Logout)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(policy, store))
	authGroup.GET("/profile", authController.Profile)
	authGroup.GET("/teacher-dashboard", middleware.RoleMiddleware(model.RoleTeacher), dashboardController.TeacherDashboard)

	return router
}

func doLogin(t *testing.T, router *gin.Engine, email, password string) (int, envelope) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func doGet(router *gin.Engine, path, token string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestLoginRedirectsByRole(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name     string
		email    string
		password string
		redirect string
	}{
		{name: "admin", email: "admin@admin.com", password: "admin123", redirect: "/admin-dashboard"},
		{name: "teacher", email: "sarah.johnson@school.edu", password: "teacher123", redirect: "/teacher-dashboard"},
		{name: "student", email: "john.doe@school.edu", password: "student123", redirect: "/student-dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := doLogin(t, router, tt.email, tt.password)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.redirect, resp.Data["redirect"])
			assert.NotEmpty(t, resp.Data["token"])
		})
	}
}

func TestLoginFailure(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "admin@admin.com", password: "nope"},
		{name: "unknown email", email: "nobody@school.edu", password: "admin123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := doLogin(t, router, tt.email, tt.password)
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.Equal(t, "Login failed", resp.Message)
		})
	}
}

func TestLoginResponseHidesPassword(t *testing.T) {
	router := setupRouter()

	_, resp := doLogin(t, router, "john.doe@school.edu", "student123")
	user, ok := resp.Data["user"].(map[string]interface{})
	assert.True(t, ok)
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestProtectedRouteWithoutSession(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "unknown token", token: "not-a-session"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doGet(router, "/api/profile", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "You must login first.", resp.Message)
		})
	}
}

func TestProfileWithSession(t *testing.T) {
	router := setupRouter()

	_, login := doLogin(t, router, "john.doe@school.edu", "student123")
	token := login.Data["token"].(string)

	w, resp := doGet(router, "/api/profile", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "john.doe@school.edu", resp.Data["email"])
}

func TestRoleGate(t *testing.T) {
	router := setupRouter()

	_, studentLogin := doLogin(t, router, "john.doe@school.edu", "student123")
	w, _ := doGet(router, "/api/teacher-dashboard", studentLogin.Data["token"].(string))
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, teacherLogin := doLogin(t, router, "sarah.johnson@school.edu", "teacher123")
	w, _ = doGet(router, "/api/teacher-dashboard", teacherLogin.Data["token"].(string))
	assert.Equal(t, http.StatusOK, w.Code)

	// 管理员越过角色门
	_, adminLogin := doLogin(t, router, "admin@admin.com", "admin123")
	w, _ = doGet(router, "/api/teacher-dashboard", adminLogin.Data["token"].(string))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout(t *testing.T) {
	router := setupRouter()

	_, login := doLogin(t, router, "john.doe@school.edu", "student123")
	token := login.Data["token"].(string)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", resp.Data["redirect"])

	// 登出后会话失效
	got, _ := doGet(router, "/api/profile", token)
	assert.Equal(t, http.StatusUnauthorized, got.Code)
}

func TestLogoutWithoutSessionStillSucceeds(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "unknown token", token: "expired-or-garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			router.ServeHTTP(w, req)

			var resp envelope
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "/login", resp.Data["redirect"])
		})
	}
}
