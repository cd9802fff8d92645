package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/observability"
	"github.com/dhruvkrishnavaid/oceaneye/internal/repository"
	"github.com/dhruvkrishnavaid/oceaneye/internal/service"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()

	repo := repository.NewSessionRepository(t.TempDir(), "oceaneye-auth")
	svc := service.NewAuthService(repo, clockwork.NewRealClock(), observability.NewMetricsForTesting(), "test-secret", 72*time.Hour, 0)

	h := NewAuthHandler(svc)
	router := gin.New()
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.PATCH("/me", h.UpdateMe)
	}
	router.POST("/api/reports", AuthRequired(svc), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return router, svc
}

func jsonRequest(router *gin.Engine, method, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := jsonRequest(router, http.MethodPost, "/api/auth/login", model.LoginRequest{
		Email:    "moderator@ocean.example",
		Password: "anything",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "moderator@ocean.example", resp.User.Email)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLogin_MissingEmail(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := jsonRequest(router, http.MethodPost, "/api/auth/login", gin.H{"password": "pw"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := jsonRequest(router, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	jsonRequest(router, http.MethodPost, "/api/auth/login", model.LoginRequest{Email: "a@b.example", Password: "pw"}, nil)

	w = jsonRequest(router, http.MethodGet, "/api/auth/me", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "a@b.example", user.Email)
}

func TestUpdateMe(t *testing.T) {
	router, _ := newAuthRouter(t)

	jsonRequest(router, http.MethodPost, "/api/auth/login", model.LoginRequest{Email: "a@b.example", Password: "pw"}, nil)

	w := jsonRequest(router, http.MethodPatch, "/api/auth/me", gin.H{"name": "Shoreline Admin"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Shoreline Admin", user.Name)
	assert.Equal(t, "a@b.example", user.Email)
}

func TestLogout(t *testing.T) {
	router, _ := newAuthRouter(t)

	jsonRequest(router, http.MethodPost, "/api/auth/login", model.LoginRequest{Email: "a@b.example", Password: "pw"}, nil)
	w := jsonRequest(router, http.MethodPost, "/api/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = jsonRequest(router, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := jsonRequest(router, http.MethodPost, "/api/reports", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = jsonRequest(router, http.MethodPost, "/api/reports", nil, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	loginResp := jsonRequest(router, http.MethodPost, "/api/auth/login", model.LoginRequest{Email: "a@b.example", Password: "pw"}, nil)
	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(loginResp.Body.Bytes(), &resp))

	w = jsonRequest(router, http.MethodPost, "/api/reports", nil, map[string]string{"Authorization": "Bearer " + resp.Token})
	assert.Equal(t, http.StatusCreated, w.Code)
}
