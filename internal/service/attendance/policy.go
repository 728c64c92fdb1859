package attendance

import (
	"fmt"
	"time"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/config"
)

// WindowPolicy is the pure clock window decision logic. The shift is
// overnight: clock-in opens at the nominal shift start in the evening and
// clock-out stays open across midnight until the morning deadline. Window
// checks are minute-granular, so the closing minute is accepted in full.
type WindowPolicy struct {
	clockInOpens     int // minute of day
	clockInCloses    int // minute of day, inclusive
	clockOutDeadline int // minute of day, inclusive
	halfDayBefore    int // second of day, exclusive
	lateAfter        int // second of day, exclusive
}

func NewWindowPolicy(cfg config.AttendanceConfig) (WindowPolicy, error) {
	opens, err := parseMinuteOfDay(cfg.ClockInOpens)
	if err != nil {
		return WindowPolicy{}, fmt.Errorf("invalid clock-in opening time: %w", err)
	}
	closes, err := parseMinuteOfDay(cfg.ClockInCloses)
	if err != nil {
		return WindowPolicy{}, fmt.Errorf("invalid clock-in closing time: %w", err)
	}
	deadline, err := parseMinuteOfDay(cfg.ClockOutDeadline)
	if err != nil {
		return WindowPolicy{}, fmt.Errorf("invalid clock-out deadline: %w", err)
	}
	halfDay, err := parseSecondOfDay(cfg.HalfDayBefore)
	if err != nil {
		return WindowPolicy{}, fmt.Errorf("invalid half-day threshold: %w", err)
	}
	late, err := parseSecondOfDay(cfg.LateAfter)
	if err != nil {
		return WindowPolicy{}, fmt.Errorf("invalid late threshold: %w", err)
	}

	return WindowPolicy{
		clockInOpens:     opens,
		clockInCloses:    closes,
		clockOutDeadline: deadline,
		halfDayBefore:    halfDay,
		lateAfter:        late,
	}, nil
}

// CanClockIn reports whether a clock-in is permitted at t.
func (p WindowPolicy) CanClockIn(t time.Time) bool {
	m := minuteOfDay(t)
	return m >= p.clockInOpens && m <= p.clockInCloses
}

// CanClockOut reports whether a clock-out is permitted at t. The window runs
// from the shift start through midnight until the morning deadline.
func (p WindowPolicy) CanClockOut(t time.Time) bool {
	m := minuteOfDay(t)
	return m >= p.clockInOpens || m <= p.clockOutDeadline
}

// IsLate reports whether a clock-in at t falls after the late threshold.
func (p WindowPolicy) IsLate(t time.Time) bool {
	return secondOfDay(t) > p.lateAfter
}

// IsHalfDay reports whether a clock-out at t is early enough to reduce the
// session to a half day.
func (p WindowPolicy) IsHalfDay(t time.Time) bool {
	return secondOfDay(t) < p.halfDayBefore
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func parseMinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}
	return minuteOfDay(t), nil
}

func parseSecondOfDay(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}
	return secondOfDay(t), nil
}
