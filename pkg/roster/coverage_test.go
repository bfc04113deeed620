package roster

import (
	"testing"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

func rosterWith(day models.DayKey, slots ...models.PlanningSlot) models.WeeklyRoster {
	return models.WeeklyRoster{
		WeekStart: testWeek,
		Days:      map[models.DayKey][]models.PlanningSlot{day: slots},
	}
}

func TestEvaluateDay(t *testing.T) {
	rule := DefaultCoverageRule()

	two := rosterWith(models.Monday,
		models.PlanningSlot{EmployeeID: "a", Day: models.Monday, Start: "15:00", End: "19:00"},
		models.PlanningSlot{EmployeeID: "b", Day: models.Monday, Start: "15:00", End: "19:00"},
	)
	if got := EvaluateDay(two, models.Monday, rule); got != CoverageOK {
		t.Errorf("two covering slots = %s, want ok", got)
	}

	one := rosterWith(models.Monday,
		models.PlanningSlot{EmployeeID: "a", Day: models.Monday, Start: "15:00", End: "19:00"},
	)
	if got := EvaluateDay(one, models.Monday, rule); got != CoverageWarning {
		t.Errorf("one covering slot = %s, want warning", got)
	}

	empty := rosterWith(models.Monday)
	if got := EvaluateDay(empty, models.Monday, rule); got != CoverageWarning {
		t.Errorf("empty day = %s, want warning", got)
	}
}

func TestEvaluateDayIgnoresLeaveAndPartial(t *testing.T) {
	rule := DefaultCoverageRule()

	r := rosterWith(models.Monday,
		models.PlanningSlot{EmployeeID: "a", Day: models.Monday, Start: "15:00", End: "19:00"},
		models.PlanningSlot{EmployeeID: "b", Day: models.Monday, Start: "00:00", End: "00:00", IsLeave: true},
		models.PlanningSlot{EmployeeID: "c", Day: models.Monday, Start: "08:00", End: "17:00"}, // leaves before 18:00
	)
	if got := EvaluateDay(r, models.Monday, rule); got != CoverageWarning {
		t.Errorf("leave and partial slots should not count, got %s", got)
	}
}

func TestEvaluateDaySplitUnion(t *testing.T) {
	rule := DefaultCoverageRule()

	covering := models.PlanningSlot{
		EmployeeID: "a", Day: models.Monday, Start: "08:00", End: "19:00",
		SplitSlots: []models.SubRange{{Start: "08:00", End: "12:00"}, {Start: "14:00", End: "19:00"}},
	}
	gapInPeak := models.PlanningSlot{
		EmployeeID: "b", Day: models.Monday, Start: "08:00", End: "19:00",
		SplitSlots: []models.SubRange{{Start: "08:00", End: "16:30"}, {Start: "17:00", End: "19:00"}},
	}
	touching := models.PlanningSlot{
		EmployeeID: "c", Day: models.Monday, Start: "08:00", End: "19:00",
		SplitSlots: []models.SubRange{{Start: "14:00", End: "17:00"}, {Start: "17:00", End: "19:00"}},
	}

	r := rosterWith(models.Monday, covering, gapInPeak, touching)
	// covering and touching span 16:00-18:00, gapInPeak does not
	if got := EvaluateDay(r, models.Monday, rule); got != CoverageOK {
		t.Errorf("expected ok from the two split slots spanning the peak, got %s", got)
	}

	alone := rosterWith(models.Monday, gapInPeak)
	if got := EvaluateDay(alone, models.Monday, rule); got != CoverageWarning {
		t.Errorf("split with a gap inside the peak should not cover, got %s", got)
	}
}

func TestEvaluateWeek(t *testing.T) {
	r := rosterWith(models.Monday,
		models.PlanningSlot{EmployeeID: "a", Day: models.Monday, Start: "08:00", End: "19:00"},
		models.PlanningSlot{EmployeeID: "b", Day: models.Monday, Start: "08:00", End: "19:00"},
	)
	statuses := EvaluateWeek(r, DefaultCoverageRule())
	if statuses[models.Monday] != CoverageOK {
		t.Errorf("monday = %s, want ok", statuses[models.Monday])
	}
	if statuses[models.Tuesday] != CoverageWarning {
		t.Errorf("tuesday (no slots) = %s, want warning", statuses[models.Tuesday])
	}
}
