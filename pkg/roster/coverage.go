package roster

import (
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

// CoverageStatus is the outcome of a day's staffing check
type CoverageStatus string

const (
	CoverageOK      CoverageStatus = "ok"
	CoverageWarning CoverageStatus = "warning"
)

// CoverageRule is the staffing policy: at least MinStaff non-leave slots
// must fully cover the peak window. The production threshold was never
// written down anywhere authoritative, so it stays configuration.
type CoverageRule struct {
	PeakStart string `json:"peak_start"`
	PeakEnd   string `json:"peak_end"`
	MinStaff  int    `json:"min_staff"`
}

// DefaultCoverageRule is the 16:00-18:00 rush with two staff minimum
func DefaultCoverageRule() CoverageRule {
	return CoverageRule{PeakStart: "16:00", PeakEnd: "18:00", MinStaff: 2}
}

// EvaluateDay checks one day's staffing against the rule. It is a pure
// read: re-run on demand, never cached as roster truth. A day with no
// slots at all is always a warning.
func EvaluateDay(r models.WeeklyRoster, day models.DayKey, rule CoverageRule) CoverageStatus {
	slots := r.Days[day]
	if len(slots) == 0 {
		return CoverageWarning
	}

	peakStart := timerange.MinutesOf(rule.PeakStart)
	peakEnd := timerange.MinutesOf(rule.PeakEnd)

	covering := 0
	for _, s := range slots {
		if s.IsLeave {
			continue
		}
		if slotCovers(s, peakStart, peakEnd) {
			covering++
		}
	}
	if covering < rule.MinStaff {
		return CoverageWarning
	}
	return CoverageOK
}

// EvaluateWeek runs the day check across the whole roster
func EvaluateWeek(r models.WeeklyRoster, rule CoverageRule) map[models.DayKey]CoverageStatus {
	out := make(map[models.DayKey]CoverageStatus, len(models.WorkingDays))
	for _, day := range models.WorkingDays {
		out[day] = EvaluateDay(r, day, rule)
	}
	return out
}

// slotCovers reports whether the slot's working time fully contains the
// window. Split slots are judged on the union of their sub-ranges, with
// touching sub-ranges merged.
func slotCovers(s models.PlanningSlot, windowStart, windowEnd int) bool {
	if len(s.SplitSlots) == 0 {
		return timerange.MinutesOf(s.Start) <= windowStart && timerange.MinutesOf(s.End) >= windowEnd
	}

	// Sub-ranges are already ascending and non-overlapping; merge runs
	// that touch, then look for one run containing the window.
	runStart, runEnd := -1, -1
	for _, sub := range s.SplitSlots {
		start, end := timerange.MinutesOf(sub.Start), timerange.MinutesOf(sub.End)
		if runEnd == start {
			runEnd = end
		} else {
			runStart, runEnd = start, end
		}
		if runStart <= windowStart && runEnd >= windowEnd {
			return true
		}
	}
	return false
}
