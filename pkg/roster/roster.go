// Package roster builds and validates the weekly staffing roster: seeding
// from fixed-contract templates, manual assignment with pauses and split
// shifts, coverage evaluation and weekly-hours aggregation.
package roster

import (
	"fmt"
	"sort"
	"time"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

// Engine validates and applies roster mutations. It holds read-only
// snapshots of the employees and of the week's declared availability;
// refreshing those snapshots is the caller's job. Every operation is a
// pure transformation: it returns a new roster and never touches its
// input, so a failed call leaves the previous value intact.
type Engine struct {
	Employees    map[string]*models.Employee
	Availability map[string]*models.AvailabilityRecord // keyed by employee ID
}

// NewEngine creates an engine over employee and availability snapshots
func NewEngine(employees map[string]*models.Employee, availability map[string]*models.AvailabilityRecord) *Engine {
	if availability == nil {
		availability = make(map[string]*models.AvailabilityRecord)
	}
	return &Engine{Employees: employees, Availability: availability}
}

// Options carries the optional pause or split sub-ranges of an
// assignment. A slot takes at most one of the two.
type Options struct {
	PauseStart   string            `json:"pause_start,omitempty"`
	PauseMinutes int               `json:"pause_minutes,omitempty"`
	SplitSlots   []models.SubRange `json:"split_slots,omitempty"`
}

// SeedWeek builds the initial roster for a week from fixed-contract
// templates. "leave" template days produce a leave marker, "off" and
// "variable" produce nothing, anything else must parse as a range.
// Variable-contract employees are only populated by explicit assignment.
// Malformed template text is a configuration error reported to the
// caller, never dropped.
func (e *Engine) SeedWeek(weekStart time.Time) (models.WeeklyRoster, error) {
	r := models.WeeklyRoster{
		WeekStart: models.WeekStart(weekStart),
		Days:      make(map[models.DayKey][]models.PlanningSlot, len(models.WorkingDays)),
	}
	for _, day := range models.WorkingDays {
		r.Days[day] = nil
	}

	for _, id := range sortedEmployeeIDs(e.Employees) {
		emp := e.Employees[id]
		if !emp.Active || emp.Contract != models.ContractFixed {
			continue
		}
		for _, day := range models.WorkingDays {
			value, ok := emp.Template[day]
			if !ok {
				continue
			}
			switch value {
			case models.TemplateOff, models.TemplateVariable, "":
				continue
			case models.TemplateLeave:
				r.Days[day] = append(r.Days[day], leaveSlot(emp.ID, day))
			default:
				rng, err := timerange.ParseRange(value)
				if err != nil {
					return models.WeeklyRoster{}, fmt.Errorf("template for %s on %s: %w", emp.ID, day, err)
				}
				r.Days[day] = append(r.Days[day], models.PlanningSlot{
					EmployeeID: emp.ID,
					Day:        day,
					Start:      rng.Start,
					End:        rng.End,
				})
			}
		}
	}
	return r, nil
}

// Assign upserts the slot for the (employee, day) key. The employee's
// declared availability is enforced for variable contracts; assigning
// against an unavailable day fails with ErrUnavailable and requires the
// explicitly-named AssignOverride instead.
func (e *Engine) Assign(r models.WeeklyRoster, employeeID string, day models.DayKey, start, end string, opts Options) (models.WeeklyRoster, error) {
	emp, ok := e.Employees[employeeID]
	if !ok {
		return r, fmt.Errorf("%w: employee %s", models.ErrNotFound, employeeID)
	}
	if emp.Contract == models.ContractVariable && !e.Availability[employeeID].Available(day) {
		return r, fmt.Errorf("%w: %s has no declared window on %s", models.ErrUnavailable, employeeID, day)
	}
	return e.apply(r, employeeID, day, start, end, opts)
}

// AssignOverride upserts like Assign but skips the availability check.
// This is the deliberate escape hatch for covering an unavailable day;
// there is no silent override path.
func (e *Engine) AssignOverride(r models.WeeklyRoster, employeeID string, day models.DayKey, start, end string, opts Options) (models.WeeklyRoster, error) {
	if _, ok := e.Employees[employeeID]; !ok {
		return r, fmt.Errorf("%w: employee %s", models.ErrNotFound, employeeID)
	}
	return e.apply(r, employeeID, day, start, end, opts)
}

func (e *Engine) apply(r models.WeeklyRoster, employeeID string, day models.DayKey, start, end string, opts Options) (models.WeeklyRoster, error) {
	slot, err := buildSlot(employeeID, day, start, end, opts)
	if err != nil {
		return r, err
	}
	out := r.Clone()
	out.Days[day] = replaceSlot(out.Days[day], slot)
	return out, nil
}

// Unassign removes the slot for the (employee, day) key. Removing an
// absent slot is not an error.
func (e *Engine) Unassign(r models.WeeklyRoster, employeeID string, day models.DayKey) models.WeeklyRoster {
	out := r.Clone()
	slots := out.Days[day]
	for i, s := range slots {
		if s.EmployeeID == employeeID {
			out.Days[day] = append(slots[:i:i], slots[i+1:]...)
			break
		}
	}
	return out
}

// MarkLeave sets a leave marker for the (employee, day) key, overwriting
// any prior slot. The leave-approval workflow calls this as its roster
// side effect.
func (e *Engine) MarkLeave(r models.WeeklyRoster, employeeID string, day models.DayKey) models.WeeklyRoster {
	out := r.Clone()
	out.Days[day] = replaceSlot(out.Days[day], leaveSlot(employeeID, day))
	return out
}

// buildSlot validates an assignment and produces the slot value. With
// split sub-ranges the bare start/end pair is ignored and the stored
// envelope is derived from the sub-ranges, so the two can never
// disagree.
func buildSlot(employeeID string, day models.DayKey, start, end string, opts Options) (models.PlanningSlot, error) {
	slot := models.PlanningSlot{
		EmployeeID: employeeID,
		Day:        day,
	}

	if len(opts.SplitSlots) > 0 {
		if opts.PauseStart != "" || opts.PauseMinutes != 0 {
			return models.PlanningSlot{}, fmt.Errorf("%w: a slot takes a pause or split sub-ranges, not both", models.ErrInvalidRange)
		}
		split, err := normalizeSplit(opts.SplitSlots)
		if err != nil {
			return models.PlanningSlot{}, err
		}
		slot.SplitSlots = split
		slot.Start = split[0].Start
		slot.End = split[len(split)-1].End
		return slot, nil
	}

	rng, err := timerange.ParseRange(start + "-" + end)
	if err != nil {
		return models.PlanningSlot{}, err
	}
	slot.Start = rng.Start
	slot.End = rng.End

	if opts.PauseStart != "" || opts.PauseMinutes != 0 {
		pauseStart, err := timerange.ParseTime(opts.PauseStart)
		if err != nil {
			return models.PlanningSlot{}, err
		}
		if opts.PauseMinutes <= 0 {
			return models.PlanningSlot{}, fmt.Errorf("%w: pause duration must be positive", models.ErrInvalidRange)
		}
		pauseEnd := timerange.MinutesOf(pauseStart) + opts.PauseMinutes
		if timerange.MinutesOf(pauseStart) < timerange.MinutesOf(slot.Start) || pauseEnd > timerange.MinutesOf(slot.End) {
			return models.PlanningSlot{}, fmt.Errorf("%w: pause %s+%dmin falls outside %s-%s",
				models.ErrInvalidRange, pauseStart, opts.PauseMinutes, slot.Start, slot.End)
		}
		slot.PauseStart = pauseStart
		slot.PauseMinutes = opts.PauseMinutes
	}
	return slot, nil
}

// normalizeSplit validates the sub-ranges of a split slot: at least two,
// each a valid range, mutually non-overlapping once sorted by start.
func normalizeSplit(split []models.SubRange) ([]models.SubRange, error) {
	if len(split) < 2 {
		return nil, fmt.Errorf("%w: a split slot needs at least two sub-ranges", models.ErrInvalidRange)
	}
	out := make([]models.SubRange, 0, len(split))
	for _, sub := range split {
		rng, err := timerange.ParseRange(sub.Start + "-" + sub.End)
		if err != nil {
			return nil, err
		}
		out = append(out, models.SubRange{Start: rng.Start, End: rng.End})
	}
	sort.Slice(out, func(i, j int) bool {
		return timerange.MinutesOf(out[i].Start) < timerange.MinutesOf(out[j].Start)
	})
	for i := 1; i < len(out); i++ {
		if timerange.MinutesOf(out[i].Start) < timerange.MinutesOf(out[i-1].End) {
			return nil, fmt.Errorf("%w: sub-ranges %s-%s and %s-%s overlap",
				models.ErrInvalidRange, out[i-1].Start, out[i-1].End, out[i].Start, out[i].End)
		}
	}
	return out, nil
}

// replaceSlot upserts by (employee, day): any prior slot for the key is
// discarded, never duplicated.
func replaceSlot(slots []models.PlanningSlot, slot models.PlanningSlot) []models.PlanningSlot {
	out := make([]models.PlanningSlot, 0, len(slots)+1)
	for _, s := range slots {
		if s.EmployeeID != slot.EmployeeID {
			out = append(out, s)
		}
	}
	return append(out, slot)
}

// leaveSlot is the sentinel zero-length marker used for leave days
func leaveSlot(employeeID string, day models.DayKey) models.PlanningSlot {
	return models.PlanningSlot{
		EmployeeID: employeeID,
		Day:        day,
		Start:      "00:00",
		End:        "00:00",
		IsLeave:    true,
	}
}

func sortedEmployeeIDs(employees map[string]*models.Employee) []string {
	ids := make([]string, 0, len(employees))
	for id := range employees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
