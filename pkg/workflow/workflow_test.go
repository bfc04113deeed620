package workflow

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/roster"
)

var (
	testWeek = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	testDate = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) // Wednesday of that week
)

func testEngine() *roster.Engine {
	return roster.NewEngine(map[string]*models.Employee{
		"paul": {ID: "paul", Name: "Paul", Role: models.RoleDispenser, Contract: models.ContractFixed, Active: true},
	}, nil)
}

func pendingRequest() models.LeaveRequest {
	return models.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "paul",
		Kind:       models.RequestLeave,
		Date:       testDate,
		Status:     models.RequestPending,
	}
}

func rosterWithSlot(eng *roster.Engine) models.WeeklyRoster {
	r := models.WeeklyRoster{WeekStart: testWeek, Days: map[models.DayKey][]models.PlanningSlot{}}
	r, _ = eng.AssignOverride(r, "paul", models.Wednesday, "08:00", "14:00", roster.Options{})
	return r
}

func TestApproveLeaveMarksRoster(t *testing.T) {
	eng := testEngine()
	r := rosterWithSlot(eng)

	approved, updated, err := ApproveLeave(pendingRequest(), r, eng, "marie")
	if err != nil {
		t.Fatalf("ApproveLeave returned error: %v", err)
	}
	if approved.Status != models.RequestApproved {
		t.Errorf("status = %s, want approved", approved.Status)
	}
	if approved.ReplacementID != "marie" {
		t.Errorf("replacement = %q, want marie", approved.ReplacementID)
	}

	slot, ok := updated.SlotFor("paul", models.Wednesday)
	if !ok || !slot.IsLeave {
		t.Fatal("approval should place a leave marker, replacing the prior slot")
	}
	if len(updated.Days[models.Wednesday]) != 1 {
		t.Errorf("leave marker duplicated: %d slots", len(updated.Days[models.Wednesday]))
	}
}

func TestRefuseLeaveKeepsRoster(t *testing.T) {
	eng := testEngine()
	r := rosterWithSlot(eng)
	before := r.Clone()

	refused, err := RefuseLeave(pendingRequest())
	if err != nil {
		t.Fatalf("RefuseLeave returned error: %v", err)
	}
	if refused.Status != models.RequestRefused {
		t.Errorf("status = %s, want refused", refused.Status)
	}
	if !reflect.DeepEqual(before.Days, r.Days) {
		t.Error("refusal must not touch the roster")
	}
}

func TestLeaveTerminality(t *testing.T) {
	eng := testEngine()
	r := rosterWithSlot(eng)

	approved, updated, err := ApproveLeave(pendingRequest(), r, eng, "")
	if err != nil {
		t.Fatalf("ApproveLeave returned error: %v", err)
	}

	if _, _, err := ApproveLeave(approved, updated, eng, ""); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("approve on approved request = %v, want ErrInvalidTransition", err)
	}
	if _, err := RefuseLeave(approved); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("refuse on approved request = %v, want ErrInvalidTransition", err)
	}
}

func TestApproveLeaveUnknownEmployee(t *testing.T) {
	eng := testEngine()
	r := rosterWithSlot(eng)

	req := pendingRequest()
	req.EmployeeID = "ghost"
	if _, _, err := ApproveLeave(req, r, eng, ""); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("approval for a removed employee = %v, want ErrNotFound", err)
	}
	if _, ok := r.SlotFor("ghost", models.Wednesday); ok {
		t.Error("failed approval must not place a leave marker")
	}
}

func TestApproveLeaveOutsideWeek(t *testing.T) {
	eng := testEngine()
	r := rosterWithSlot(eng)

	req := pendingRequest()
	req.Date = testDate.AddDate(0, 0, 14)
	if _, _, err := ApproveLeave(req, r, eng, ""); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("date outside the roster week = %v, want ErrNotFound", err)
	}

	req = pendingRequest()
	req.Date = testWeek.AddDate(0, 0, 6) // Sunday
	if _, _, err := ApproveLeave(req, r, eng, ""); err == nil {
		t.Error("a Sunday date should be rejected")
	}
}

func TestGuardAssignment(t *testing.T) {
	g := NewNightGuard("g-1", testDate)
	if g.Status != models.GuardUnassigned {
		t.Fatalf("new guard status = %s, want unassigned", g.Status)
	}
	if g.Start != "20:30" || g.End != "08:30" {
		t.Errorf("guard window = %s-%s, want 20:30-08:30", g.Start, g.End)
	}

	// one reference is not enough
	g, err := AssignGuard(g, "marie", "")
	if err != nil {
		t.Fatalf("AssignGuard returned error: %v", err)
	}
	if g.Status != models.GuardUnassigned {
		t.Errorf("single reference should leave the guard unassigned, got %s", g.Status)
	}

	g, err = AssignGuard(g, "", "paul")
	if err != nil {
		t.Fatalf("AssignGuard returned error: %v", err)
	}
	if g.Status != models.GuardAssigned {
		t.Errorf("both references set should assign, got %s", g.Status)
	}
}

func TestGuardValidationTerminal(t *testing.T) {
	g := NewNightGuard("g-1", testDate)

	// validating before assignment is illegal
	if _, err := ValidateGuard(g); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("validate on unassigned guard = %v, want ErrInvalidTransition", err)
	}

	g, _ = AssignGuard(g, "marie", "paul")
	g, err := ValidateGuard(g)
	if err != nil {
		t.Fatalf("ValidateGuard returned error: %v", err)
	}
	if g.Status != models.GuardValidated {
		t.Fatalf("status = %s, want validated", g.Status)
	}

	// validated is terminal: no regression, no re-validation
	if _, err := AssignGuard(g, "other", "person"); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("assign on validated guard = %v, want ErrInvalidTransition", err)
	}
	if _, err := ValidateGuard(g); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("re-validate = %v, want ErrInvalidTransition", err)
	}
}
