package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

// DateFormat is the wire format for week-start and calendar dates
const DateFormat = "2006-01-02"

// EmployeeToModel converts a stored employee row into the domain value
func EmployeeToModel(row Employee) (models.Employee, error) {
	emp := models.Employee{
		ID:       row.ID,
		Name:     row.Name,
		Initials: row.Initials,
		Role:     models.Role(row.Role),
		Contract: models.ContractKind(row.Contract),
		Active:   row.Active,
	}
	if row.Template != "" {
		if err := json.Unmarshal([]byte(row.Template), &emp.Template); err != nil {
			return models.Employee{}, fmt.Errorf("employee %s template: %w", row.ID, err)
		}
	}
	return emp, nil
}

// EmployeeFromModel converts a domain employee into its row. The
// password hash is managed separately and left empty here.
func EmployeeFromModel(emp models.Employee) (Employee, error) {
	row := Employee{
		ID:       emp.ID,
		Name:     emp.Name,
		Initials: emp.Initials,
		Role:     string(emp.Role),
		Contract: string(emp.Contract),
		Active:   emp.Active,
	}
	if emp.Template != nil {
		raw, err := json.Marshal(emp.Template)
		if err != nil {
			return Employee{}, err
		}
		row.Template = string(raw)
	}
	return row, nil
}

// AvailabilityToModel converts a stored availability row. Days absent
// from the JSON object and days stored as null both mean unavailable.
func AvailabilityToModel(row Availability) (models.AvailabilityRecord, error) {
	week, err := time.Parse(DateFormat, row.WeekStart)
	if err != nil {
		return models.AvailabilityRecord{}, fmt.Errorf("availability for %s: %w", row.EmployeeID, err)
	}
	rec := models.AvailabilityRecord{
		EmployeeID: row.EmployeeID,
		WeekStart:  week,
		Days:       make(map[models.DayKey]*models.DayAvailability),
	}
	if row.Days != "" {
		if err := json.Unmarshal([]byte(row.Days), &rec.Days); err != nil {
			return models.AvailabilityRecord{}, fmt.Errorf("availability for %s: %w", row.EmployeeID, err)
		}
	}
	return rec, nil
}

// AvailabilityFromModel converts a domain availability record into its
// row, preserving explicit nulls for unavailable days
func AvailabilityFromModel(rec models.AvailabilityRecord) (Availability, error) {
	raw, err := json.Marshal(rec.Days)
	if err != nil {
		return Availability{}, err
	}
	return Availability{
		EmployeeID: rec.EmployeeID,
		WeekStart:  rec.WeekStart.Format(DateFormat),
		Days:       string(raw),
	}, nil
}

// SlotToModel converts a stored slot row into the domain value,
// restoring split sub-ranges from their JSON column
func SlotToModel(row Slot) (models.PlanningSlot, error) {
	slot := models.PlanningSlot{
		EmployeeID:   row.EmployeeID,
		Day:          models.DayKey(row.Day),
		Start:        row.Start,
		End:          row.End,
		PauseStart:   row.PauseStart,
		PauseMinutes: row.PauseMinutes,
		IsLeave:      row.IsLeave,
	}
	if row.SplitSlots != "" {
		if err := json.Unmarshal([]byte(row.SplitSlots), &slot.SplitSlots); err != nil {
			return models.PlanningSlot{}, fmt.Errorf("slot %s/%s: %w", row.EmployeeID, row.Day, err)
		}
	}
	return slot, nil
}

// SlotFromModel converts a domain slot into its row for one week
func SlotFromModel(weekStart time.Time, slot models.PlanningSlot) (Slot, error) {
	row := Slot{
		EmployeeID:   slot.EmployeeID,
		WeekStart:    weekStart.Format(DateFormat),
		Day:          string(slot.Day),
		Start:        slot.Start,
		End:          slot.End,
		PauseStart:   slot.PauseStart,
		PauseMinutes: slot.PauseMinutes,
		IsLeave:      slot.IsLeave,
	}
	if len(slot.SplitSlots) > 0 {
		raw, err := json.Marshal(slot.SplitSlots)
		if err != nil {
			return Slot{}, err
		}
		row.SplitSlots = string(raw)
	}
	return row, nil
}

// LeaveRequestToModel converts a stored request row
func LeaveRequestToModel(row LeaveRequest) (models.LeaveRequest, error) {
	date, err := time.Parse(DateFormat, row.Date)
	if err != nil {
		return models.LeaveRequest{}, fmt.Errorf("request %s: %w", row.ID, err)
	}
	return models.LeaveRequest{
		ID:            row.ID,
		EmployeeID:    row.EmployeeID,
		Kind:          models.RequestKind(row.Kind),
		Date:          date,
		Slot:          row.Slot,
		Motive:        row.Motive,
		Urgent:        row.Urgent,
		Status:        models.RequestStatus(row.Status),
		ReplacementID: row.ReplacementID,
		CreatedAt:     row.CreatedAt,
	}, nil
}

// LeaveRequestFromModel converts a domain request into its row
func LeaveRequestFromModel(req models.LeaveRequest) LeaveRequest {
	return LeaveRequest{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		Kind:          string(req.Kind),
		Date:          req.Date.Format(DateFormat),
		Slot:          req.Slot,
		Motive:        req.Motive,
		Urgent:        req.Urgent,
		Status:        string(req.Status),
		ReplacementID: req.ReplacementID,
		CreatedAt:     req.CreatedAt,
	}
}

// NightGuardToModel converts a stored guard row
func NightGuardToModel(row NightGuard) (models.NightGuard, error) {
	date, err := time.Parse(DateFormat, row.Date)
	if err != nil {
		return models.NightGuard{}, fmt.Errorf("guard %s: %w", row.ID, err)
	}
	return models.NightGuard{
		ID:           row.ID,
		Date:         date,
		PharmacistID: row.PharmacistID,
		CompanionID:  row.CompanionID,
		Status:       models.GuardStatus(row.Status),
		Start:        row.Start,
		End:          row.End,
	}, nil
}

// NightGuardFromModel converts a domain guard into its row
func NightGuardFromModel(g models.NightGuard) NightGuard {
	return NightGuard{
		ID:           g.ID,
		Date:         g.Date.Format(DateFormat),
		PharmacistID: g.PharmacistID,
		CompanionID:  g.CompanionID,
		Status:       string(g.Status),
		Start:        g.Start,
		End:          g.End,
	}
}
