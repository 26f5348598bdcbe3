package schedule

import (
	"encoding/json"
	"fmt"
)

// Clock is a time of day in minutes since midnight. Scenario files and
// schedule output use military HHMM integers (e.g. 1330 for 13:30);
// Clock keeps arithmetic on the 5-minute slot grid exact and comparable
// with plain integer operators.
type Clock int

// FromMilitary converts an HHMM integer to a Clock.
func FromMilitary(hhmm int) (Clock, error) {
	hour, minute := hhmm/100, hhmm%100
	if hhmm < 0 || hour > 23 || minute > 59 {
		return 0, fmt.Errorf("invalid military time %04d", hhmm)
	}
	return Clock(hour*60 + minute), nil
}

// Military returns the HHMM integer form.
func (c Clock) Military() int {
	return int(c)/60*100 + int(c)%60
}

// Add returns the clock shifted forward by the given number of minutes.
func (c Clock) Add(minutes int) Clock { return c + Clock(minutes) }

// String formats as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// MarshalJSON writes the military integer form used by the scenario and
// schedule files.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Military())
}

// UnmarshalJSON reads the military integer form.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var hhmm int
	if err := json.Unmarshal(data, &hhmm); err != nil {
		return err
	}
	parsed, err := FromMilitary(hhmm)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Grid enumerates the slot starts in [start, stop) at the given step in
// minutes, in ascending order.
func Grid(start, stop Clock, stepMinutes int) []Clock {
	if stepMinutes <= 0 || stop <= start {
		return nil
	}
	var slots []Clock
	for t := start; t < stop; t = t.Add(stepMinutes) {
		slots = append(slots, t)
	}
	return slots
}
