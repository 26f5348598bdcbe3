package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// Timeline renders a schedule as a text Gantt chart, one row per
// aircraft, truck and forklift, one column per 5-minute slot. Aircraft
// and truck stays draw as '#' bars; forklift rows draw each job with its
// kind letter ('U' for the 20-minute unloads, 'L' for the 5-minute
// loads).
func Timeline(s *Schedule) string {
	type bar struct {
		start, end Clock // [start, end)
		glyph      byte
	}
	type row struct {
		label string
		sort  int
		bars  []bar
	}

	var rows []row
	var minT, maxT Clock
	first := true
	observe := func(a, b Clock) {
		if first {
			minT, maxT, first = a, b, false
			return
		}
		if a < minT {
			minT = a
		}
		if b > maxT {
			maxT = b
		}
	}
	clockOf := func(military int) Clock {
		c, _ := FromMilitary(military)
		return c
	}

	for name, w := range s.Aircraft {
		start, end := clockOf(w.Arrival), clockOf(w.Departure)
		observe(start, end)
		rows = append(rows, row{
			label: fmt.Sprintf("%s @ %s", name, w.Hangar),
			sort:  0,
			bars:  []bar{{start: start, end: end, glyph: '#'}},
		})
	}
	for name, w := range s.Trucks {
		start, end := clockOf(w.Arrival), clockOf(w.Departure)
		observe(start, end)
		rows = append(rows, row{
			label: fmt.Sprintf("%s @ %s", name, w.Hangar),
			sort:  1,
			bars:  []bar{{start: start, end: end, glyph: '#'}},
		})
	}
	for name, jobs := range s.Forklifts {
		r := row{label: name, sort: 2}
		for _, job := range jobs {
			duration := LoadMinutes
			glyph := byte('L')
			if job.Job == Unload {
				duration = UnloadMinutes
				glyph = 'U'
			}
			start := clockOf(job.Time)
			end := start.Add(duration)
			observe(start, end)
			r.bars = append(r.bars, bar{start: start, end: end, glyph: glyph})
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 || first {
		return "(empty schedule)\n"
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].sort != rows[j].sort {
			return rows[i].sort < rows[j].sort
		}
		return rows[i].label < rows[j].label
	})

	labelWidth := 0
	for _, r := range rows {
		if len(r.label) > labelWidth {
			labelWidth = len(r.label)
		}
	}
	slots := int((maxT - minT) / SlotMinutes)
	if slots == 0 {
		slots = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %s - %s, one column per %d min\n",
		labelWidth, "", minT, maxT, SlotMinutes)
	for _, r := range rows {
		cells := make([]byte, slots)
		for i := range cells {
			cells[i] = '.'
		}
		for _, b := range r.bars {
			from := int((b.start - minT) / SlotMinutes)
			to := int((b.end - minT) / SlotMinutes)
			for i := from; i < to && i < slots; i++ {
				cells[i] = b.glyph
			}
		}
		fmt.Fprintf(&sb, "%-*s  |%s|\n", labelWidth, r.label, cells)
	}
	return sb.String()
}
