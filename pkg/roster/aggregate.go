package roster

import (
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

// WeeklyHours sums each employee's worked hours over the week. Leave
// markers contribute nothing; split slots are summed sub-range by
// sub-range; a pause is subtracted from an unsplit slot.
func WeeklyHours(r models.WeeklyRoster) map[string]float64 {
	out := make(map[string]float64)
	for _, day := range models.WorkingDays {
		for _, s := range r.Days[day] {
			if s.IsLeave {
				continue
			}
			out[s.EmployeeID] += float64(SlotMinutes(s)) / 60
		}
	}
	return out
}

// SlotMinutes is the worked minutes of one slot
func SlotMinutes(s models.PlanningSlot) int {
	if len(s.SplitSlots) > 0 {
		total := 0
		for _, sub := range s.SplitSlots {
			total += timerange.DurationMinutes(sub.Start, sub.End)
		}
		return total
	}
	minutes := timerange.DurationMinutes(s.Start, s.End)
	minutes -= s.PauseMinutes
	if minutes < 0 {
		return 0
	}
	return minutes
}

// RoleHours groups WeeklyHours by employee role. Employees missing from
// the snapshot are skipped rather than invented.
func RoleHours(r models.WeeklyRoster, employees map[string]*models.Employee) map[models.Role]float64 {
	out := make(map[models.Role]float64)
	for id, hours := range WeeklyHours(r) {
		emp, ok := employees[id]
		if !ok {
			continue
		}
		out[emp.Role] += hours
	}
	return out
}

// RoleCoverageTable counts, per day and role, how many non-leave slots
// are planned. Reporting projection, read-only.
func RoleCoverageTable(r models.WeeklyRoster, employees map[string]*models.Employee) map[models.DayKey]map[models.Role]int {
	out := make(map[models.DayKey]map[models.Role]int, len(models.WorkingDays))
	for _, day := range models.WorkingDays {
		counts := make(map[models.Role]int)
		for _, s := range r.Days[day] {
			if s.IsLeave {
				continue
			}
			if emp, ok := employees[s.EmployeeID]; ok {
				counts[emp.Role]++
			}
		}
		out[day] = counts
	}
	return out
}
