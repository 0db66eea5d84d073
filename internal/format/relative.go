package format

import (
	"strconv"
	"time"

	"AOSocial/internal/domain"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// daysBeforeFullDate is the last day count still rendered as "Mon D".
	daysBeforeFullDate = 365

	fullDateLayout = "1/2/2006, 3:04:05 PM"
	justNow        = "just now"
	agoSuffix      = " ago"
)

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Formatter renders timestamps relative to a clock.
type Formatter struct {
	Now      func() time.Time
	Location *time.Location
}

// NewFormatter uses the wall clock and the local time zone.
func NewFormatter() *Formatter {
	return &Formatter{Now: time.Now, Location: time.Local}
}

// FormatRelative formats ts against the wall clock.
func FormatRelative(ts domain.Timestamp, showSuffix bool) string {
	return NewFormatter().Relative(ts, showSuffix)
}

// Relative renders ts as a full date past a year, "Mon D" past a day, and
// otherwise as the largest nonzero of hours, minutes and seconds ("3h", "5m ago").
// Buckets come from integer division of the elapsed seconds, not the calendar.
func (f *Formatter) Relative(ts domain.Timestamp, showSuffix bool) string {
	diff := f.now().Unix() - int64(ts)

	days := diff / secondsPerDay
	if days > 0 {
		t := time.Unix(int64(ts), 0).In(f.location())
		if days > daysBeforeFullDate {
			return t.Format(fullDateLayout)
		}
		return monthNames[t.Month()-1] + " " + strconv.Itoa(t.Day())
	}

	units := []struct {
		value  int64
		letter string
	}{
		{diff % secondsPerDay / secondsPerHour, "h"},
		{diff % secondsPerHour / secondsPerMinute, "m"},
		{diff % secondsPerMinute, "s"},
	}
	for _, u := range units {
		if u.value > 0 {
			s := strconv.FormatInt(u.value, 10) + u.letter
			if showSuffix {
				s += agoSuffix
			}
			return s
		}
	}
	return justNow
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}
