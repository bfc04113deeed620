package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/auth"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/workflow"
)

// CreateRequest files a leave/exchange/sick request for the calling
// employee. Creation never touches the roster; only approval does.
func (h *Handler) CreateRequest(c *gin.Context) {
	var req struct {
		Kind   models.RequestKind `json:"kind"`
		Date   string             `json:"date"`
		Slot   string             `json:"slot"`
		Motive string             `json:"motive"`
		Urgent bool               `json:"urgent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Kind {
	case models.RequestLeave, models.RequestExchange, models.RequestSick:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be leave, exchange or sick"})
		return
	}
	date, err := time.Parse(database.DateFormat, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	s := session(c)
	employeeID := s.EmployeeID
	if s.Role == auth.RoleAdmin {
		employeeID = c.Query("employee_id")
	}
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id required"})
		return
	}

	row := database.LeaveRequestFromModel(models.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Kind:       req.Kind,
		Date:       date,
		Slot:       req.Slot,
		Motive:     req.Motive,
		Urgent:     req.Urgent,
		Status:     models.RequestPending,
		CreatedAt:  time.Now(),
	})
	if err := h.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create request"})
		return
	}
	out, _ := database.LeaveRequestToModel(row)
	c.JSON(http.StatusCreated, out)
}

// ListRequests returns requests, admins see all, employees their own
func (h *Handler) ListRequests(c *gin.Context) {
	q := h.DB.Order("created_at desc")
	s := session(c)
	if s.Role != auth.RoleAdmin {
		q = q.Where("employee_id = ?", s.EmployeeID)
	} else if employeeID := c.Query("employee_id"); employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var rows []database.LeaveRequest
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]models.LeaveRequest, 0, len(rows))
	for _, row := range rows {
		req, err := database.LeaveRequestToModel(row)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = append(out, req)
	}
	c.JSON(http.StatusOK, gin.H{"requests": out})
}

// ApproveRequest transitions a pending request to approved and marks the
// day as leave on the persisted roster. The transition is validated
// before anything is written.
func (h *Handler) ApproveRequest(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		ReplacementID string `json:"replacement_id"`
	}
	_ = c.ShouldBindJSON(&body)

	var row database.LeaveRequest
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	req, err := database.LeaveRequestToModel(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	week := models.WeekStart(req.Date)
	eng, err := h.loadEngine(week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	r, err := database.LoadRoster(h.DB, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	approved, updated, err := workflow.ApproveLeave(req, r, eng, body.ReplacementID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if err := database.SaveRoster(h.DB, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save roster"})
		return
	}
	saved := database.LeaveRequestFromModel(approved)
	saved.CreatedAt = row.CreatedAt
	if err := h.DB.Save(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": approved, "roster": updated})
}

// RefuseRequest transitions a pending request to refused; the roster is
// untouched
func (h *Handler) RefuseRequest(c *gin.Context) {
	id := c.Param("id")

	var row database.LeaveRequest
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	req, err := database.LeaveRequestToModel(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	refused, err := workflow.RefuseLeave(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	saved := database.LeaveRequestFromModel(refused)
	saved.CreatedAt = row.CreatedAt
	if err := h.DB.Save(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save request"})
		return
	}
	c.JSON(http.StatusOK, refused)
}
