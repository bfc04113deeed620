package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/workflow"
)

// SeedRotation creates one unassigned night guard per date over a span.
// Dates that already carry a guard are left alone, so re-seeding an
// overlapping span is harmless.
func (h *Handler) SeedRotation(c *gin.Context) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := time.Parse(database.DateFormat, req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.Parse(database.DateFormat, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return
	}

	created := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		var existing database.NightGuard
		if err := h.DB.Where("date = ?", date.Format(database.DateFormat)).First(&existing).Error; err == nil {
			continue
		}
		guard := workflow.NewNightGuard(uuid.NewString(), date)
		row := database.NightGuardFromModel(guard)
		if err := h.DB.Create(&row).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create guard"})
			return
		}
		created++
	}
	c.JSON(http.StatusCreated, gin.H{"created": created})
}

// ListGuards returns guards, optionally bounded by ?from=/?to=
func (h *Handler) ListGuards(c *gin.Context) {
	q := h.DB.Order("date")
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var rows []database.NightGuard
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]models.NightGuard, 0, len(rows))
	for _, row := range rows {
		guard, err := database.NightGuardToModel(row)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = append(out, guard)
	}
	c.JSON(http.StatusOK, gin.H{"guards": out})
}

// AssignGuardRefs sets the pharmacist and/or companion on a guard. The
// pharmacist reference must point at a pharmacist.
func (h *Handler) AssignGuardRefs(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		PharmacistID string `json:"pharmacist_id"`
		CompanionID  string `json:"companion_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row database.NightGuard
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "guard not found"})
		return
	}
	guard, err := database.NightGuardToModel(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.PharmacistID != "" {
		var emp database.Employee
		if err := h.DB.Where("id = ?", req.PharmacistID).First(&emp).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "pharmacist not found"})
			return
		}
		if emp.Role != string(models.RolePharmacist) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guard pharmacist must hold the pharmacist role"})
			return
		}
	}
	if req.CompanionID != "" {
		var emp database.Employee
		if err := h.DB.Where("id = ?", req.CompanionID).First(&emp).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "companion not found"})
			return
		}
	}

	updated, err := workflow.AssignGuard(guard, req.PharmacistID, req.CompanionID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	saved := database.NightGuardFromModel(updated)
	saved.CreatedAt = row.CreatedAt
	if err := h.DB.Save(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save guard"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ValidateGuard is the administrative confirmation making a guard final
func (h *Handler) ValidateGuard(c *gin.Context) {
	id := c.Param("id")

	var row database.NightGuard
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "guard not found"})
		return
	}
	guard, err := database.NightGuardToModel(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	validated, err := workflow.ValidateGuard(guard)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	saved := database.NightGuardFromModel(validated)
	saved.CreatedAt = row.CreatedAt
	if err := h.DB.Save(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save guard"})
		return
	}
	c.JSON(http.StatusOK, validated)
}
