package model

import (
	"testing"
	"time"
)

func TestExamOpenAt(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		isActive bool
		examDate *time.Time
		hours    int
		now      time.Time
		want     bool
	}{
		{name: "inactive never open", isActive: false, examDate: nil, now: base, want: false},
		{name: "inactive with valid window", isActive: false, examDate: &base, hours: 2, now: base.Add(time.Hour), want: false},
		{name: "no date open while active", isActive: true, examDate: nil, now: base, want: true},
		{name: "before window", isActive: true, examDate: &base, hours: 2, now: base.Add(-time.Minute), want: false},
		{name: "at opening instant", isActive: true, examDate: &base, hours: 2, now: base, want: true},
		{name: "inside window", isActive: true, examDate: &base, hours: 2, now: base.Add(time.Hour), want: true},
		{name: "at closing instant", isActive: true, examDate: &base, hours: 2, now: base.Add(2 * time.Hour), want: true},
		{name: "after window", isActive: true, examDate: &base, hours: 2, now: base.Add(2*time.Hour + time.Second), want: false},
		{name: "window closed three hours in", isActive: true, examDate: &base, hours: 2, now: base.Add(3 * time.Hour), want: false},
		{name: "longer window still open", isActive: true, examDate: &base, hours: 4, now: base.Add(3 * time.Hour), want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exam := Exam{IsActive: tc.isActive, ExamDate: tc.examDate, OpenDurationHours: tc.hours}
			if got := exam.OpenAt(tc.now); got != tc.want {
				t.Fatalf("OpenAt(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}
