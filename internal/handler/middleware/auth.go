package middleware

import (
	"net/http"
	"strings"

	"frontdesk/internal/domain/staff"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
)

var roleLevel = map[staff.Role]int{
	staff.RoleFrontDesk: 1,
	staff.RoleManager:   2,
}

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth validates the Bearer token and stores staff identity in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing authorization header"), "Authentication required", nil)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("malformed authorization header"), "Authentication required", nil)
			return
		}

		staffID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxStaffRoleKey, role)
		c.Next()
	}
}

// RequireRole enforces a minimum role. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(min staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := StaffRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no staff role in context"), "Authentication required", nil)
			return
		}
		if roleLevel[role] < roleLevel[min] {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("insufficient role"), "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func StaffID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxStaffIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func StaffRole(c *gin.Context) (staff.Role, bool) {
	v, ok := c.Get(ctxStaffRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(staff.Role)
	return role, ok
}
