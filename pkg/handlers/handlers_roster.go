package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/roster"
)

// SeedWeek builds a fresh roster for the week from fixed-contract
// templates and persists it, replacing whatever the week held. Template
// parse failures are configuration errors and come back as 422, not 400.
func (h *Handler) SeedWeek(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	eng, err := h.loadEngine(week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	r, err := eng.SeedWeek(week)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "template configuration: " + err.Error()})
		return
	}
	if err := database.SaveRoster(h.DB, r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save roster"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetRoster returns the persisted roster for a week
func (h *Handler) GetRoster(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	r, err := database.LoadRoster(h.DB, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

type assignPayload struct {
	EmployeeID string         `json:"employee_id"`
	Day        models.DayKey  `json:"day"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	Options    roster.Options `json:"options"`
}

// Assign upserts one slot; availability is enforced. An unavailable day
// answers 409 and requires the override route instead.
func (h *Handler) Assign(c *gin.Context) {
	h.assign(c, false)
}

// AssignOverride is the explicitly-named escape hatch that skips the
// availability check
func (h *Handler) AssignOverride(c *gin.Context) {
	h.assign(c, true)
}

func (h *Handler) assign(c *gin.Context, override bool) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	var req assignPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	var updated models.WeeklyRoster
	if override {
		updated, err = eng.AssignOverride(r, req.EmployeeID, req.Day, req.Start, req.End, req.Options)
	} else {
		updated, err = eng.Assign(r, req.EmployeeID, req.Day, req.Start, req.End, req.Options)
	}
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	slot, _ := updated.SlotFor(req.EmployeeID, req.Day)
	if err := database.UpsertSlot(h.DB, week, slot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save slot"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Unassign removes one slot; removing an absent one succeeds
func (h *Handler) Unassign(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	employeeID := c.Query("employee_id")
	day := models.DayKey(c.Query("day"))
	if employeeID == "" || day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id and day query parameters required"})
		return
	}

	if err := database.DeleteSlot(h.DB, week, employeeID, day); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete slot"})
		return
	}
	r, err := database.LoadRoster(h.DB, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// Coverage evaluates each day of the week against the staffing rule
func (h *Handler) Coverage(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	r, err := database.LoadRoster(h.DB, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"week_start": r.WeekStart.Format(database.DateFormat),
		"rule":       h.CoverageRule,
		"days":       roster.EvaluateWeek(r, h.CoverageRule),
	})
}

// Hours reports weekly hours per employee plus the role groupings
func (h *Handler) Hours(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	r, err := database.LoadRoster(h.DB, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	employees, err := h.loadEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"week_start":    r.WeekStart.Format(database.DateFormat),
		"weekly_hours":  roster.WeeklyHours(r),
		"role_hours":    roster.RoleHours(r, employees),
		"role_coverage": roster.RoleCoverageTable(r, employees),
	})
}
