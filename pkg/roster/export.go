package roster

import (
	"fmt"
	"sort"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

// ExportBoundary splits a day into the morning and afternoon groups the
// PDF/email collaborators print
const ExportBoundary = "14:00"

// ExportLine is one printable interval of a day's schedule
type ExportLine struct {
	EmployeeID string      `json:"employee_id"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	Start      string      `json:"start"`
	End        string      `json:"end"`
	PauseInfo  string      `json:"pause_info,omitempty"`
}

// DayExport is a day's schedule grouped for export collaborators
type DayExport struct {
	Day       models.DayKey `json:"day"`
	Morning   []ExportLine  `json:"morning"`
	Afternoon []ExportLine  `json:"afternoon"`
}

// ExportDay projects one day of the roster into ordered morning and
// afternoon lines. Split slots contribute one line per sub-range; leave
// markers are skipped. A line lands in the group its start falls in.
func ExportDay(r models.WeeklyRoster, day models.DayKey, employees map[string]*models.Employee) DayExport {
	boundary := timerange.MinutesOf(ExportBoundary)
	out := DayExport{Day: day}

	for _, s := range r.Days[day] {
		if s.IsLeave {
			continue
		}
		emp, ok := employees[s.EmployeeID]
		if !ok {
			continue
		}

		intervals := s.SplitSlots
		if len(intervals) == 0 {
			intervals = []models.SubRange{{Start: s.Start, End: s.End}}
		}
		for _, iv := range intervals {
			line := ExportLine{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				Role:       emp.Role,
				Start:      iv.Start,
				End:        iv.End,
			}
			if len(s.SplitSlots) == 0 && s.PauseMinutes > 0 {
				line.PauseInfo = fmt.Sprintf("%s (%dmin)", s.PauseStart, s.PauseMinutes)
			}
			if timerange.MinutesOf(iv.Start) < boundary {
				out.Morning = append(out.Morning, line)
			} else {
				out.Afternoon = append(out.Afternoon, line)
			}
		}
	}

	sortLines(out.Morning)
	sortLines(out.Afternoon)
	return out
}

// ExportWeek projects every working day in week order
func ExportWeek(r models.WeeklyRoster, employees map[string]*models.Employee) []DayExport {
	out := make([]DayExport, 0, len(models.WorkingDays))
	for _, day := range models.WorkingDays {
		out = append(out, ExportDay(r, day, employees))
	}
	return out
}

func sortLines(lines []ExportLine) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Start != lines[j].Start {
			return timerange.MinutesOf(lines[i].Start) < timerange.MinutesOf(lines[j].Start)
		}
		return lines[i].Name < lines[j].Name
	})
}
