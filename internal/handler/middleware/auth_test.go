//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"frontdesk/internal/domain/staff"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/usecase"
	"frontdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))

	s.router = gin.New()
	s.router.GET("/front-desk", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.StaffID(c)
		require.True(s.T(), ok)
		c.JSON(http.StatusOK, gin.H{"staff_id": id})
	})
	s.router.GET("/manager", auth.RequireAuth(), auth.RequireRole(staff.RoleManager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(role string) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), role)
	require.NoError(s.T(), err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("valid token passes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/front-desk", nil, s.token("front_desk"))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing header rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/front-desk", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("garbage token rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/front-desk", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("expired token rejected", func() {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), "front_desk")
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/front-desk", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("unknown role rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/front-desk", nil, s.token("janitor"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("manager can reach manager routes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manager", nil, s.token("manager"))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("front desk cannot reach manager routes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manager", nil, s.token("front_desk"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
