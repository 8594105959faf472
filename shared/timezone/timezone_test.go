package timezone_test

import (
	"testing"
	"time"

	"hotelsite/shared/timezone"
)

func TestTimezoneNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestTimezoneToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}

	if !appTime.Equal(utcTime) {
		t.Error("Expected conversion to preserve the instant")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-09-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}
}
