// Package workflow implements the leave-request and night-guard state
// machines. Transitions are pure: they return the updated record (and,
// for leave approval, the updated roster) and fail from terminal states
// with models.ErrInvalidTransition.
package workflow

import (
	"fmt"
	"time"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/roster"
)

// ApproveLeave moves a pending request to approved, records the optional
// replacement, and marks the employee's day as leave on the roster. The
// roster mutation is a side effect of this transition, not of request
// creation. The request date must fall inside the given roster's week
// and the employee must still exist in the engine's snapshot.
func ApproveLeave(req models.LeaveRequest, r models.WeeklyRoster, eng *roster.Engine, replacementID string) (models.LeaveRequest, models.WeeklyRoster, error) {
	if req.Status != models.RequestPending {
		return req, r, fmt.Errorf("%w: request %s is already %s", models.ErrInvalidTransition, req.ID, req.Status)
	}
	if _, ok := eng.Employees[req.EmployeeID]; !ok {
		return req, r, fmt.Errorf("%w: employee %s", models.ErrNotFound, req.EmployeeID)
	}
	day, err := dayInWeek(req.Date, r.WeekStart)
	if err != nil {
		return req, r, err
	}

	updated := req
	updated.Status = models.RequestApproved
	updated.ReplacementID = replacementID
	return updated, eng.MarkLeave(r, req.EmployeeID, day), nil
}

// RefuseLeave moves a pending request to refused. The roster is not
// touched.
func RefuseLeave(req models.LeaveRequest) (models.LeaveRequest, error) {
	if req.Status != models.RequestPending {
		return req, fmt.Errorf("%w: request %s is already %s", models.ErrInvalidTransition, req.ID, req.Status)
	}
	updated := req
	updated.Status = models.RequestRefused
	return updated, nil
}

// NewNightGuard creates the unassigned guard record for one rotation
// date, carrying the canonical overnight window.
func NewNightGuard(id string, date time.Time) models.NightGuard {
	return models.NightGuard{
		ID:     id,
		Date:   date,
		Status: models.GuardUnassigned,
		Start:  models.GuardWindowStart,
		End:    models.GuardWindowEnd,
	}
}

// AssignGuard sets the pharmacist and/or companion references. The guard
// only reaches assigned once both are set; setting a single reference
// leaves it unassigned. A validated guard can no longer change — fixing
// one means creating a new record.
func AssignGuard(g models.NightGuard, pharmacistID, companionID string) (models.NightGuard, error) {
	if g.Status == models.GuardValidated {
		return g, fmt.Errorf("%w: guard %s is validated", models.ErrInvalidTransition, g.ID)
	}

	updated := g
	if pharmacistID != "" {
		updated.PharmacistID = pharmacistID
	}
	if companionID != "" {
		updated.CompanionID = companionID
	}
	if updated.PharmacistID != "" && updated.CompanionID != "" {
		updated.Status = models.GuardAssigned
	} else {
		updated.Status = models.GuardUnassigned
	}
	return updated, nil
}

// ValidateGuard is the explicit administrative confirmation, legal only
// from assigned. Validated is terminal.
func ValidateGuard(g models.NightGuard) (models.NightGuard, error) {
	if g.Status != models.GuardAssigned {
		return g, fmt.Errorf("%w: guard %s is %s, not assigned", models.ErrInvalidTransition, g.ID, g.Status)
	}
	updated := g
	updated.Status = models.GuardValidated
	return updated, nil
}

// dayInWeek resolves a request date to the roster day it falls on
func dayInWeek(date time.Time, weekStart time.Time) (models.DayKey, error) {
	day, ok := models.DayKeyFor(date)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a working day", models.ErrInvalidRange, date.Format("2006-01-02"))
	}
	if !models.WeekStart(date).Equal(models.WeekStart(weekStart)) {
		return "", fmt.Errorf("%w: %s is outside the roster week of %s",
			models.ErrNotFound, date.Format("2006-01-02"), weekStart.Format("2006-01-02"))
	}
	return day, nil
}
