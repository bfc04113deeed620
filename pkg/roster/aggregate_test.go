package roster

import (
	"math"
	"testing"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWeeklyHoursPause(t *testing.T) {
	r := rosterWith(models.Monday, models.PlanningSlot{
		EmployeeID: "paul", Day: models.Monday,
		Start: "08:00", End: "18:00",
		PauseStart: "12:00", PauseMinutes: 30,
	})

	hours := WeeklyHours(r)
	if !almostEqual(hours["paul"], 9.5) {
		t.Errorf("10h slot with 30min pause = %f, want 9.5", hours["paul"])
	}
}

func TestWeeklyHoursSplit(t *testing.T) {
	r := rosterWith(models.Monday, models.PlanningSlot{
		EmployeeID: "paul", Day: models.Monday,
		Start: "08:00", End: "18:00",
		SplitSlots: []models.SubRange{{Start: "08:00", End: "12:00"}, {Start: "14:00", End: "18:00"}},
	})

	hours := WeeklyHours(r)
	if !almostEqual(hours["paul"], 8.0) {
		t.Errorf("split 08-12 + 14-18 = %f, want 8.0", hours["paul"])
	}
}

func TestWeeklyHoursSkipsLeaveAndSums(t *testing.T) {
	r := models.WeeklyRoster{
		WeekStart: testWeek,
		Days: map[models.DayKey][]models.PlanningSlot{
			models.Monday: {
				{EmployeeID: "paul", Day: models.Monday, Start: "08:00", End: "14:00"},
				{EmployeeID: "marie", Day: models.Monday, Start: "00:00", End: "00:00", IsLeave: true},
			},
			models.Tuesday: {
				{EmployeeID: "paul", Day: models.Tuesday, Start: "09:00", End: "12:00"},
			},
		},
	}

	hours := WeeklyHours(r)
	if !almostEqual(hours["paul"], 9.0) {
		t.Errorf("paul = %f, want 9.0 across two days", hours["paul"])
	}
	if _, ok := hours["marie"]; ok {
		t.Error("leave marker should contribute no hours")
	}
}

func TestRoleHours(t *testing.T) {
	employees := map[string]*models.Employee{
		"paul":  {ID: "paul", Role: models.RoleDispenser},
		"marie": {ID: "marie", Role: models.RolePharmacist},
	}
	r := rosterWith(models.Monday,
		models.PlanningSlot{EmployeeID: "paul", Day: models.Monday, Start: "08:00", End: "12:00"},
		models.PlanningSlot{EmployeeID: "marie", Day: models.Monday, Start: "08:00", End: "14:00"},
	)

	byRole := RoleHours(r, employees)
	if !almostEqual(byRole[models.RoleDispenser], 4.0) {
		t.Errorf("dispenser hours = %f, want 4.0", byRole[models.RoleDispenser])
	}
	if !almostEqual(byRole[models.RolePharmacist], 6.0) {
		t.Errorf("pharmacist hours = %f, want 6.0", byRole[models.RolePharmacist])
	}
}

func TestRoleCoverageTable(t *testing.T) {
	employees := map[string]*models.Employee{
		"paul":  {ID: "paul", Role: models.RoleDispenser},
		"marie": {ID: "marie", Role: models.RolePharmacist},
	}
	r := rosterWith(models.Monday,
		models.PlanningSlot{EmployeeID: "paul", Day: models.Monday, Start: "08:00", End: "12:00"},
		models.PlanningSlot{EmployeeID: "marie", Day: models.Monday, Start: "00:00", End: "00:00", IsLeave: true},
	)

	table := RoleCoverageTable(r, employees)
	if table[models.Monday][models.RoleDispenser] != 1 {
		t.Errorf("monday dispenser count = %d, want 1", table[models.Monday][models.RoleDispenser])
	}
	if table[models.Monday][models.RolePharmacist] != 0 {
		t.Error("leave marker should not count toward role coverage")
	}
}

func TestExportDayGroupsAtBoundary(t *testing.T) {
	employees := map[string]*models.Employee{
		"paul":  {ID: "paul", Name: "Paul", Role: models.RoleDispenser},
		"marie": {ID: "marie", Name: "Marie", Role: models.RolePharmacist},
		"lea":   {ID: "lea", Name: "Léa", Role: models.RoleStudent},
	}
	r := rosterWith(models.Monday,
		models.PlanningSlot{
			EmployeeID: "paul", Day: models.Monday, Start: "08:00", End: "18:00",
			SplitSlots: []models.SubRange{{Start: "08:00", End: "12:00"}, {Start: "14:00", End: "18:00"}},
		},
		models.PlanningSlot{
			EmployeeID: "marie", Day: models.Monday, Start: "09:00", End: "13:00",
			PauseStart: "11:00", PauseMinutes: 15,
		},
		models.PlanningSlot{EmployeeID: "lea", Day: models.Monday, Start: "00:00", End: "00:00", IsLeave: true},
	)

	export := ExportDay(r, models.Monday, employees)
	if len(export.Morning) != 2 {
		t.Fatalf("morning lines = %d, want 2", len(export.Morning))
	}
	if len(export.Afternoon) != 1 {
		t.Fatalf("afternoon lines = %d, want 1", len(export.Afternoon))
	}
	if export.Morning[0].Start != "08:00" || export.Morning[1].Start != "09:00" {
		t.Error("morning lines not ordered by start time")
	}
	if export.Morning[1].PauseInfo != "11:00 (15min)" {
		t.Errorf("pause info = %q, want \"11:00 (15min)\"", export.Morning[1].PauseInfo)
	}
	if export.Afternoon[0].EmployeeID != "paul" || export.Afternoon[0].Start != "14:00" {
		t.Error("second sub-range should land in the afternoon group")
	}
}
