package schedule

import (
	"encoding/json"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Window is one entity's stay at the terminal: hangar plus arrival and
// departure in military HHMM form.
type Window struct {
	Hangar    string `json:"Hangar"`
	Arrival   int    `json:"Arrival"`
	Departure int    `json:"Departure"`
}

// ForkliftJob is one entry of a forklift's work list.
type ForkliftJob struct {
	Hangar string  `json:"Hangar"`
	Time   int     `json:"Time"`
	Job    JobKind `json:"Job"`
}

// Schedule is the human-facing result: per-aircraft and per-truck
// windows and per-forklift job lists, grouped back out of the flat
// per-job assignment the engine returns.
type Schedule struct {
	Aircraft  map[string]Window        `json:"aircraft"`
	Trucks    map[string]Window        `json:"trucks"`
	Forklifts map[string][]ForkliftJob `json:"forklifts"`
}

// BuildSchedule converts a complete assignment back into a schedule.
//
// An aircraft's window spans its earliest unload start to its latest
// unload start plus the unload duration; all of one aircraft's unloads
// are expected in a single hangar, and a mismatch is logged as a
// warning without failing the schedule. A truck's window is its load
// job's start plus the load duration. Forklift job lists are sorted by
// start time.
func BuildSchedule(sc *Scenario, solution csp.Assignment, log logrus.FieldLogger) *Schedule {
	out := &Schedule{
		Aircraft:  make(map[string]Window),
		Trucks:    make(map[string]Window),
		Forklifts: make(map[string][]ForkliftJob),
	}

	jobs := make([]Job, 0, len(solution))
	for _, value := range solution {
		jobs = append(jobs, value.(Job))
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].Arrival != jobs[j].Arrival {
			return jobs[i].Arrival < jobs[j].Arrival
		}
		return jobs[i].Name < jobs[j].Name
	})

	for _, name := range sc.AircraftNames() {
		var unloads []Job
		for _, job := range jobs {
			if job.Kind == Unload && job.Aircraft == name {
				unloads = append(unloads, job)
			}
		}
		if len(unloads) == 0 {
			continue
		}
		earliest, latest := unloads[0].Arrival, unloads[0].Arrival
		hangar := unloads[0].Hangar
		for _, job := range unloads {
			if job.Arrival < earliest {
				earliest = job.Arrival
			}
			if job.Arrival > latest {
				latest = job.Arrival
			}
			if job.Hangar != hangar {
				log.WithFields(logrus.Fields{
					"aircraft": name,
					"hangars":  []string{hangar, job.Hangar},
				}).Warn("aircraft unload jobs assigned to different hangars")
			}
		}
		out.Aircraft[name] = Window{
			Hangar:    hangar,
			Arrival:   earliest.Military(),
			Departure: latest.Add(UnloadMinutes).Military(),
		}
	}

	for _, job := range jobs {
		if job.Kind != Load || job.Truck == "" {
			continue
		}
		out.Trucks[job.Truck] = Window{
			Hangar:    job.Hangar,
			Arrival:   job.Arrival.Military(),
			Departure: job.Arrival.Add(LoadMinutes).Military(),
		}
	}

	for _, job := range jobs {
		out.Forklifts[job.Forklift] = append(out.Forklifts[job.Forklift], ForkliftJob{
			Hangar: job.Hangar,
			Time:   job.Arrival.Military(),
			Job:    job.Kind,
		})
	}

	return out
}

// MarshalSolution renders the raw assignment as indented JSON keyed by
// variable name, with times in military form.
func MarshalSolution(solution csp.Assignment) ([]byte, error) {
	byName := make(map[string]Job, len(solution))
	for name, value := range solution {
		byName[name] = value.(Job)
	}
	return json.MarshalIndent(byName, "", "    ")
}

// MarshalSchedule renders a schedule as indented JSON.
func MarshalSchedule(s *Schedule) ([]byte, error) {
	return json.MarshalIndent(s, "", "    ")
}
