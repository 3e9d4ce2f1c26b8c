// Package schedule describes a person's day as the list of places they go and
// the hours they get there.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownHour is returned when parsing a string that is not a class hour.
var ErrUnknownHour = errors.New("schedule: unknown hour")

// Hour is an hour at which a class can start.
type Hour string

// Hours lists every hour at which classes start, in order.
var Hours = []Hour{
	"8:30", "9:30", "10:30", "11:30", "12:30",
	"1:30", "2:30", "3:30", "4:30", "5:30",
}

// ParseHour returns the Hour named by s.
func ParseHour(s string) (Hour, error) {
	for _, h := range Hours {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHour, s)
}

// UnmarshalJSON accepts only known hours.
func (h *Hour) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hour is not a string: %w", err)
	}
	parsed, err := ParseHour(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HoursAfter returns all hours after h.
func HoursAfter(h Hour) []Hour {
	for i, hour := range Hours {
		if hour == h {
			after := make([]Hour, len(Hours)-i-1)
			copy(after, Hours[i+1:])
			return after
		}
	}
	return nil
}

// EventStart is the time and place where some event starts.
type EventStart struct {
	Hour     Hour   `json:"hour"`
	Location string `json:"location"`
	Desc     string `json:"desc"`
}

// Schedule is a list of events and the times at which they start. The person
// stays at each location until shortly before the next event, then walks
// there.
type Schedule []EventStart

// IndexAtHour returns the index of the event starting at h, or -1 if there
// is none.
func IndexAtHour(s Schedule, h Hour) int {
	for i, e := range s {
		if e.Hour == h {
			return i
		}
	}
	return -1
}

// Walk returns the locations a person walks between at h: the place of the
// previous event and the place of the event starting at h. The boolean is
// false when no event starts at h or it is the first of the day.
func (s Schedule) Walk(h Hour) (from, to string, ok bool) {
	i := IndexAtHour(s, h)
	if i <= 0 {
		return "", "", false
	}
	return s[i-1].Location, s[i].Location, true
}
