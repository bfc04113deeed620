package models

import "time"

// Role is one of the fixed staff roles of the pharmacy
type Role string

const (
	RolePharmacist Role = "pharmacist"
	RoleDispenser  Role = "dispensing-technician"
	RoleApprentice Role = "apprentice"
	RoleStudent    Role = "student"
	RolePacker     Role = "packer"
)

// Roles lists every valid role, in reporting order
var Roles = []Role{RolePharmacist, RoleDispenser, RoleApprentice, RoleStudent, RolePacker}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ContractKind distinguishes fixed-template employees from
// availability-driven ones
type ContractKind string

const (
	ContractFixed    ContractKind = "fixed"
	ContractVariable ContractKind = "variable"
)

// DayKey identifies one of the six working days of a roster week
type DayKey string

const (
	Monday    DayKey = "monday"
	Tuesday   DayKey = "tuesday"
	Wednesday DayKey = "wednesday"
	Thursday  DayKey = "thursday"
	Friday    DayKey = "friday"
	Saturday  DayKey = "saturday"
)

// WorkingDays is the ordered week used everywhere a roster is walked
var WorkingDays = []DayKey{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayKeyFor maps a calendar date onto its roster day key. Sundays are
// outside the working week and return false.
func DayKeyFor(date time.Time) (DayKey, bool) {
	switch date.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	}
	return "", false
}

// WeekStart normalizes a date to the Monday of its week
func WeekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// Template sentinel values used in fixed-contract day templates.
// Anything else is parsed as a time range.
const (
	TemplateOff      = "off"
	TemplateLeave    = "leave"
	TemplateVariable = "variable"
)

// Employee is an organization staff record, read-only to the roster engine
type Employee struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Initials string            `json:"initials"`
	Role     Role              `json:"role"`
	Contract ContractKind      `json:"contract"`
	Active   bool              `json:"active"`
	Template map[DayKey]string `json:"template,omitempty"` // fixed contracts only
}

// DayAvailability is one day of a variable employee's declared window.
// A nil *DayAvailability in AvailabilityRecord.Days means unavailable.
type DayAvailability struct {
	Hint  string `json:"hint,omitempty"` // free text not yet normalized
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// AvailabilityRecord holds one employee's declared windows for one week.
// Only meaningful for variable-contract employees.
type AvailabilityRecord struct {
	EmployeeID string                      `json:"employee_id"`
	WeekStart  time.Time                   `json:"week_start"` // always a Monday
	Days       map[DayKey]*DayAvailability `json:"days"`
}

// Available reports whether the employee declared any window for the day
func (a *AvailabilityRecord) Available(day DayKey) bool {
	if a == nil {
		return false
	}
	return a.Days[day] != nil
}

// SubRange is one interval of a split slot
type SubRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PlanningSlot is a single employee's working interval (or leave marker)
// on one day. When SplitSlots is present the bare Start/End pair is
// ignored in favor of the sub-ranges; a pause is only meaningful on an
// unsplit slot.
type PlanningSlot struct {
	EmployeeID   string     `json:"employee_id"`
	Day          DayKey     `json:"day"`
	Start        string     `json:"start"`
	End          string     `json:"end"`
	PauseStart   string     `json:"pause_start,omitempty"`
	PauseMinutes int        `json:"pause_minutes,omitempty"`
	SplitSlots   []SubRange `json:"split_slots,omitempty"`
	IsLeave      bool       `json:"is_leave,omitempty"`
}

// WeeklyRoster is the full set of slots for one week, keyed by day.
// It is owned by the roster engine and treated as an immutable value:
// every engine operation returns a fresh roster.
type WeeklyRoster struct {
	WeekStart time.Time                 `json:"week_start"`
	Days      map[DayKey][]PlanningSlot `json:"days"`
}

// Clone deep-copies the roster so an operation can build a new value
// without touching its input
func (r WeeklyRoster) Clone() WeeklyRoster {
	out := WeeklyRoster{WeekStart: r.WeekStart, Days: make(map[DayKey][]PlanningSlot, len(r.Days))}
	for day, slots := range r.Days {
		copied := make([]PlanningSlot, len(slots))
		copy(copied, slots)
		out.Days[day] = copied
	}
	return out
}

// SlotFor returns the slot for the (employee, day) key, if any
func (r WeeklyRoster) SlotFor(employeeID string, day DayKey) (PlanningSlot, bool) {
	for _, s := range r.Days[day] {
		if s.EmployeeID == employeeID {
			return s, true
		}
	}
	return PlanningSlot{}, false
}

// RequestKind classifies a staff request
type RequestKind string

const (
	RequestLeave    RequestKind = "leave"
	RequestExchange RequestKind = "exchange"
	RequestSick     RequestKind = "sick"
)

// RequestStatus is the leave-request workflow state
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRefused  RequestStatus = "refused"
)

// LeaveRequest is a staff leave/exchange/sick request. Created by the
// employee, transitioned by an administrator; approved and refused are
// terminal.
type LeaveRequest struct {
	ID            string        `json:"id"`
	EmployeeID    string        `json:"employee_id"`
	Kind          RequestKind   `json:"kind"`
	Date          time.Time     `json:"date"`
	Slot          string        `json:"slot,omitempty"` // descriptor of the slot concerned
	Motive        string        `json:"motive,omitempty"`
	Urgent        bool          `json:"urgent,omitempty"`
	Status        RequestStatus `json:"status"`
	ReplacementID string        `json:"replacement_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
}

// GuardStatus is the night-guard workflow state
type GuardStatus string

const (
	GuardUnassigned GuardStatus = "unassigned"
	GuardAssigned   GuardStatus = "assigned"
	GuardValidated  GuardStatus = "validated"
)

// Canonical night-guard window
const (
	GuardWindowStart = "20:30"
	GuardWindowEnd   = "08:30"
)

// NightGuard is one date of the recurring on-call rotation. It moves to
// assigned only once both the pharmacist and companion references are
// set, and validated is terminal.
type NightGuard struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	PharmacistID string      `json:"pharmacist_id,omitempty"`
	CompanionID  string      `json:"companion_id,omitempty"`
	Status       GuardStatus `json:"status"`
	Start        string      `json:"start"`
	End          string      `json:"end"`
}

// Session identifies the authenticated caller on every boundary call.
// How it was established (tokens, cookies) is the auth collaborator's
// concern.
type Session struct {
	Role       string `json:"role"` // "admin" or "employee"
	EmployeeID string `json:"employee_id,omitempty"`
}
