package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/roster"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

// ExportWeek renders the week grouped by morning/afternoon for the
// print/email collaborators, as JSON or CSV (?format=csv)
func (h *Handler) ExportWeek(c *gin.Context) {
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

	days := roster.ExportWeek(r, employees)
	if c.Query("format") != "csv" {
		c.JSON(http.StatusOK, gin.H{
			"week_start": r.WeekStart.Format(database.DateFormat),
			"days":       days,
		})
		return
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"day", "group", "employee", "role", "start", "end", "pause", "hours"})

	for _, day := range days {
		for _, line := range day.Morning {
			writeExportLine(writer, string(day.Day), "morning", line)
		}
		for _, line := range day.Afternoon {
			writeExportLine(writer, string(day.Day), "afternoon", line)
		}
	}
	writer.Flush()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=roster-%s.csv", r.WeekStart.Format(database.DateFormat)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.String()))
}

func writeExportLine(writer *csv.Writer, day, group string, line roster.ExportLine) {
	hours := float64(timerange.DurationMinutes(line.Start, line.End)) / 60
	writer.Write([]string{
		day,
		group,
		line.Name,
		string(line.Role),
		line.Start,
		line.End,
		line.PauseInfo,
		fmt.Sprintf("%.2f", hours),
	})
}
