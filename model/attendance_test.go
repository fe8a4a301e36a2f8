package model

import (
	"testing"
	"time"
)

func TestNormalizeAttendanceDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2025, 3, 14, 23, 45, 0, 0, loc)

	got := NormalizeAttendanceDate(in)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeAttendanceDate = %v, want %v", got, want)
	}
}

func TestNormalizeAttendanceDateSameDayCollapses(t *testing.T) {
	morning := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 14, 20, 30, 0, 0, time.UTC)

	if !NormalizeAttendanceDate(morning).Equal(NormalizeAttendanceDate(evening)) {
		t.Error("two instants on the same day should normalize to the same date")
	}
}
