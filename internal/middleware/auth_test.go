package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/pkg/auth"
)

func testJWTService() auth.JWTService {
	return auth.NewJWTService(auth.Config{
		Secret:        "test-secret",
		RefreshSecret: "test-refresh-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func setupAuthRouter(jwtSvc auth.JWTService, roles ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtSvc)

	engine := gin.New()
	group := engine.Group("/", m.Authenticate())
	if len(roles) > 0 {
		group.Use(m.RequireRole(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		sess, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": sess.UserID, "role": sess.Role})
	})
	return engine
}

func TestAuthenticateSetsSession(t *testing.T) {
	jwtSvc := testJWTService()
	user := &model.User{
		Base:  model.Base{ID: uuid.New()},
		Email: "doctor@example.com",
		Role:  model.RoleDoctor,
	}
	token, err := jwtSvc.GenerateAccessToken(user)
	require.NoError(t, err)

	router := setupAuthRouter(jwtSvc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
	assert.Contains(t, w.Body.String(), "doctor")
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	router := setupAuthRouter(testJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsBadScheme(t *testing.T) {
	router := setupAuthRouter(testJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	router := setupAuthRouter(testJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	jwtSvc := testJWTService()
	patient := &model.User{
		Base:  model.Base{ID: uuid.New()},
		Email: "patient@example.com",
		Role:  model.RolePatient,
	}
	token, err := jwtSvc.GenerateAccessToken(patient)
	require.NoError(t, err)

	router := setupAuthRouter(jwtSvc, model.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	jwtSvc := testJWTService()
	doctor := &model.User{
		Base:  model.Base{ID: uuid.New()},
		Email: "doctor@example.com",
		Role:  model.RoleDoctor,
	}
	token, err := jwtSvc.GenerateAccessToken(doctor)
	require.NoError(t, err)

	router := setupAuthRouter(jwtSvc, model.RoleAdmin, model.RoleDoctor)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
