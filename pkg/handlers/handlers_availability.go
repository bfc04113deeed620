package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/auth"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

// PutAvailability declares an employee's windows for one week. An
// employee edits their own record; an administrator may edit anyone's.
// Days may arrive as free text and are normalized here when they parse;
// days that don't parse are kept as hints; omitted or null days mean
// unavailable.
func (h *Handler) PutAvailability(c *gin.Context) {
	employeeID := c.Param("id")
	s := session(c)
	if s.Role != auth.RoleAdmin && s.EmployeeID != employeeID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot edit another employee's availability"})
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}

	var req struct {
		Days map[models.DayKey]*string `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := models.AvailabilityRecord{
		EmployeeID: employeeID,
		WeekStart:  week,
		Days:       make(map[models.DayKey]*models.DayAvailability),
	}
	for _, day := range models.WorkingDays {
		text, present := req.Days[day]
		if !present || text == nil || *text == "" {
			rec.Days[day] = nil
			continue
		}
		if rng, err := timerange.ParseRange(*text); err == nil {
			rec.Days[day] = &models.DayAvailability{Start: rng.Start, End: rng.End}
		} else {
			rec.Days[day] = &models.DayAvailability{Hint: *text}
		}
	}

	row, err := database.AvailabilityFromModel(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "week_start"}},
		DoUpdates: clause.AssignmentColumns([]string{"days"}),
	}).Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save availability"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetAvailability returns one employee's record for a week. A missing
// record comes back as an empty one rather than 404, matching how the
// sidebar listing treats undeclared weeks.
func (h *Handler) GetAvailability(c *gin.Context) {
	employeeID := c.Param("id")
	week, ok := weekParam(c)
	if !ok {
		return
	}

	var row database.Availability
	err := h.DB.Where("employee_id = ? AND week_start = ?", employeeID, week.Format(database.DateFormat)).First(&row).Error
	if err != nil {
		c.JSON(http.StatusOK, models.AvailabilityRecord{
			EmployeeID: employeeID,
			WeekStart:  week,
			Days:       map[models.DayKey]*models.DayAvailability{},
		})
		return
	}
	rec, err := database.AvailabilityToModel(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
