// Package timerange normalizes the heterogeneous time-range text found
// in contract templates and declared availability ("8h-14h", "08:00-14:00",
// "8h30-14h") into canonical HH:MM pairs and computes durations over them.
package timerange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

// Range is a canonical (start, end) pair, both zero-padded HH:MM
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseRange parses a free-text range into a canonical Range. Accepted
// separators are ":" and "h", the minute component may be missing, and
// exactly one dash separates the two times. Sentinel markers ("off",
// "leave", "variable") are handled upstream as states, never as ranges,
// so they are rejected here along with empty input.
func ParseRange(text string) (Range, error) {
	trimmed := strings.TrimSpace(strings.ToLower(text))
	if trimmed == "" {
		return Range{}, fmt.Errorf("%w: empty range", models.ErrInvalidFormat)
	}
	switch trimmed {
	case models.TemplateOff, models.TemplateLeave, models.TemplateVariable:
		return Range{}, fmt.Errorf("%w: %q is a sentinel, not a range", models.ErrInvalidFormat, trimmed)
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q", models.ErrInvalidFormat, text)
	}

	start, err := ParseTime(parts[0])
	if err != nil {
		return Range{}, err
	}
	end, err := ParseTime(parts[1])
	if err != nil {
		return Range{}, err
	}

	if MinutesOf(start) >= MinutesOf(end) {
		return Range{}, fmt.Errorf("%w: %s is not before %s", models.ErrInvalidRange, start, end)
	}
	return Range{Start: start, End: end}, nil
}

// ParseTime parses a single time like "8", "8h", "8h30", "08:00" into
// zero-padded HH:MM
func ParseTime(text string) (string, error) {
	t := strings.TrimSpace(strings.ToLower(text))
	if t == "" {
		return "", fmt.Errorf("%w: empty time", models.ErrInvalidFormat)
	}

	var hourPart, minutePart string
	switch {
	case strings.Contains(t, ":"):
		pieces := strings.SplitN(t, ":", 2)
		hourPart, minutePart = pieces[0], pieces[1]
	case strings.Contains(t, "h"):
		pieces := strings.SplitN(t, "h", 2)
		hourPart, minutePart = pieces[0], pieces[1]
	default:
		hourPart, minutePart = t, ""
	}
	if minutePart == "" {
		minutePart = "0"
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: bad hour in %q", models.ErrInvalidFormat, text)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: bad minute in %q", models.ErrInvalidFormat, text)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// MinutesOf converts canonical HH:MM to minutes since midnight. Input is
// assumed already normalized; malformed text maps to 0.
func MinutesOf(hhmm string) int {
	pieces := strings.SplitN(hhmm, ":", 2)
	if len(pieces) != 2 {
		return 0
	}
	hour, _ := strconv.Atoi(pieces[0])
	minute, _ := strconv.Atoi(pieces[1])
	return hour*60 + minute
}

// DurationMinutes is the length of a valid range in minutes, never
// negative for a range that passed ParseRange
func DurationMinutes(start, end string) int {
	d := MinutesOf(end) - MinutesOf(start)
	if d < 0 {
		return 0
	}
	return d
}

// AddMinutes shifts a canonical time by delta minutes. Crossing a day
// boundary is outside the working window and not supported.
func AddMinutes(hhmm string, delta int) string {
	total := MinutesOf(hhmm) + delta
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ToPercent positions a time within the displayed day as a 0-100
// percentage. Presentation helper for grid layouts.
func ToPercent(hhmm, dayStart, dayEnd string) float64 {
	span := MinutesOf(dayEnd) - MinutesOf(dayStart)
	if span <= 0 {
		return 0
	}
	pct := float64(MinutesOf(hhmm)-MinutesOf(dayStart)) / float64(span) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
