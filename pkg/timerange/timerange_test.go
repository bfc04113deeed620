package timerange

import (
	"errors"
	"testing"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		in    string
		start string
		end   string
	}{
		{"8h-14h", "08:00", "14:00"},
		{"08:00-14:00", "08:00", "14:00"},
		{"8h30-14h", "08:30", "14:00"},
		{"8-14", "08:00", "14:00"},
		{" 9h15 - 17h45 ", "09:15", "17:45"},
	}

	for _, tc := range cases {
		rng, err := ParseRange(tc.in)
		if err != nil {
			t.Errorf("ParseRange(%q) returned error: %v", tc.in, err)
			continue
		}
		if rng.Start != tc.start || rng.End != tc.end {
			t.Errorf("ParseRange(%q) = %s-%s, want %s-%s", tc.in, rng.Start, rng.End, tc.start, tc.end)
		}
	}
}

func TestParseRangeRejectsSentinels(t *testing.T) {
	for _, in := range []string{"off", "leave", "variable", ""} {
		if _, err := ParseRange(in); !errors.Is(err, models.ErrInvalidFormat) {
			t.Errorf("ParseRange(%q) = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	for _, in := range []string{"14h-8h", "8h-8h", "8h", "8h-14h-16h", "25h-26h", "8h70-14h"} {
		if _, err := ParseRange(in); err == nil {
			t.Errorf("ParseRange(%q) succeeded, want error", in)
		}
	}
}

func TestParseRangeStartBeforeEnd(t *testing.T) {
	if _, err := ParseRange("14:00-08:00"); !errors.Is(err, models.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for inverted range, got %v", err)
	}
}

func TestDurationMinutes(t *testing.T) {
	if d := DurationMinutes("08:00", "14:00"); d != 360 {
		t.Errorf("DurationMinutes(08:00, 14:00) = %d, want 360", d)
	}
	if d := DurationMinutes("14:00", "08:00"); d < 0 {
		t.Errorf("DurationMinutes should never be negative, got %d", d)
	}
}

func TestAddMinutes(t *testing.T) {
	if got := AddMinutes("08:45", 30); got != "09:15" {
		t.Errorf("AddMinutes(08:45, 30) = %s, want 09:15", got)
	}
	if got := AddMinutes("12:00", -15); got != "11:45" {
		t.Errorf("AddMinutes(12:00, -15) = %s, want 11:45", got)
	}
}

func TestToPercent(t *testing.T) {
	if got := ToPercent("14:30", "08:00", "21:00"); got < 49.9 || got > 50.1 {
		t.Errorf("ToPercent(14:30) = %f, want ~50", got)
	}
	if got := ToPercent("07:00", "08:00", "21:00"); got != 0 {
		t.Errorf("ToPercent before day start = %f, want 0", got)
	}
	if got := ToPercent("22:00", "08:00", "21:00"); got != 100 {
		t.Errorf("ToPercent after day end = %f, want 100", got)
	}
}
