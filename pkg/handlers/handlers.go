package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/auth"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/roster"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB           *gorm.DB
	CoverageRule roster.CoverageRule
}

// AuthMiddleware verifies the JWT token and stores the caller's session
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("session", claims.Session())
		c.Next()
	}
}

// AdminOnly rejects callers whose session is not an administrator one
func (h *Handler) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session(c).Role != auth.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// session returns the caller's session set by AuthMiddleware
func session(c *gin.Context) models.Session {
	raw, exists := c.Get("session")
	if !exists {
		return models.Session{}
	}
	return raw.(models.Session)
}

// Login handles admin and employee login. Admin accounts live in
// master_users, employee accounts on the employee record itself.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err == nil {
		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.issueToken(c, models.Session{Role: auth.RoleAdmin})
		return
	}

	var emp database.Employee
	if err := h.DB.Where("id = ?", req.Username).First(&emp).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if emp.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, emp.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	h.issueToken(c, models.Session{Role: auth.RoleEmployee, EmployeeID: emp.ID})
}

func (h *Handler) issueToken(c *gin.Context, s models.Session) {
	token, err := auth.CreateToken(s)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer", "role": s.Role})
}

// statusFor maps the core's error kinds onto HTTP statuses so
// user-input, policy and not-found failures stay distinguishable
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnavailable), errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidFormat), errors.Is(err, models.ErrInvalidRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// weekParam reads and Monday-normalizes the ?week= query parameter
func weekParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("week")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week query parameter required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	week, err := time.Parse(database.DateFormat, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week date"})
		return time.Time{}, false
	}
	return models.WeekStart(week), true
}

// loadEmployees builds the employee snapshot the engine reads
func (h *Handler) loadEmployees() (map[string]*models.Employee, error) {
	var rows []database.Employee
	if err := h.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]*models.Employee, len(rows))
	for _, row := range rows {
		emp, err := database.EmployeeToModel(row)
		if err != nil {
			return nil, err
		}
		out[emp.ID] = &emp
	}
	return out, nil
}

// loadEngine assembles a roster engine over the employees and the
// week's availability records. Both are read-only snapshots for the
// duration of one request.
func (h *Handler) loadEngine(week time.Time) (*roster.Engine, error) {
	employees, err := h.loadEmployees()
	if err != nil {
		return nil, err
	}

	var rows []database.Availability
	if err := h.DB.Where("week_start = ?", week.Format(database.DateFormat)).Find(&rows).Error; err != nil {
		return nil, err
	}
	availability := make(map[string]*models.AvailabilityRecord, len(rows))
	for _, row := range rows {
		rec, err := database.AvailabilityToModel(row)
		if err != nil {
			return nil, err
		}
		availability[rec.EmployeeID] = &rec
	}

	return roster.NewEngine(employees, availability), nil
}
