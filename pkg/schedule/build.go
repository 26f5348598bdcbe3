// Package schedule translates a terminal scheduling scenario into a CSP
// instance for the generic engine and converts a returned assignment
// back into a human-facing schedule. Aircraft arrive with cargo that
// forklifts move through shared hangars onto collecting trucks.
//
// The model assigns one unload job and one load job per cargo unit. A
// job's value fixes its forklift, hangar and start slot on a 5-minute
// grid; aircraft and truck windows are derived from their associated
// jobs afterwards. Structural infeasibility (fewer trucks than cargo
// units, or no feasible slot for some job) is detected here and marks
// the instance unsolvable so the engine skips search entirely.
package schedule

import (
	"fmt"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Durations and separations of the terminal model, in minutes.
const (
	// SlotMinutes is the scheduling grid granularity.
	SlotMinutes = 5
	// UnloadMinutes is how long a forklift unload occupies.
	UnloadMinutes = 20
	// LoadMinutes is how long a forklift load occupies.
	LoadMinutes = 5
	// HandoverMinutes is the minimum gap between a cargo unit's unload
	// start and its load start (strictly greater than).
	HandoverMinutes = 15
)

// JobKind distinguishes the two forklift job types.
type JobKind string

const (
	// Unload moves a cargo unit off its aircraft.
	Unload JobKind = "Unload"
	// Load moves a cargo unit onto its truck.
	Load JobKind = "Load"
)

// Job is the candidate value of a forklift-job variable: which forklift
// performs it, in which hangar, starting at which slot. The association
// fields are constant across a variable's domain; they tie each load to
// its unload, truck and aircraft so constraint predicates and the
// presenter can correlate jobs without consulting the engine.
type Job struct {
	Name     string  `json:"job_name"`
	Kind     JobKind `json:"kind"`
	Forklift string  `json:"forklift_name"`
	Hangar   string  `json:"hangar_assignment"`
	Arrival  Clock   `json:"arrival_time"`

	// AssociatedJob names the counterpart job for the same cargo unit
	// (the unload for a load, the load for an unload).
	AssociatedJob string `json:"associated_job"`
	// Truck is the collecting truck; set on load jobs only.
	Truck string `json:"associated_truck_name,omitempty"`
	// Aircraft is the delivering flight.
	Aircraft string `json:"associated_aircraft_name"`
}

// LoadJobName returns the variable name of the i-th load job.
func LoadJobName(i int) string { return fmt.Sprintf("forklift_load_job_%d", i) }

// UnloadJobName returns the variable name of the i-th unload job.
func UnloadJobName(i int) string { return fmt.Sprintf("forklift_unload_job_%d", i) }

// Build translates a scenario into a CSP instance. Variable order is
// all load jobs then all unload jobs, each in cargo-unit order; domains
// enumerate hangar × slot × forklift combinations filtered by earliest
// availability (a load cannot start before its truck arrives, an unload
// cannot start before its aircraft arrives).
func Build(sc *Scenario) (*csp.Problem, error) {
	start, err := FromMilitary(sc.Meta.Start)
	if err != nil {
		return nil, fmt.Errorf("meta start time: %w", err)
	}
	stop, err := FromMilitary(sc.Meta.Stop)
	if err != nil {
		return nil, fmt.Errorf("meta stop time: %w", err)
	}
	if stop <= start {
		return nil, fmt.Errorf("operating window is empty: %v..%v", start, stop)
	}
	if len(sc.Meta.Hangars) == 0 || len(sc.Meta.Forklifts) == 0 {
		return nil, fmt.Errorf("scenario needs at least one hangar and one forklift")
	}

	slots := Grid(start, stop, SlotMinutes)
	p := csp.NewProblem()

	// One cargo unit per list entry, aircraft in sorted order so the
	// instance (and therefore the search) is deterministic.
	var cargoAircraft []string
	for _, name := range sc.AircraftNames() {
		a := sc.Aircraft[name]
		for unit := 0; unit < a.Cargo; unit++ {
			cargoAircraft = append(cargoAircraft, name)
		}
	}
	totalCargo := len(cargoAircraft)

	// Each cargo unit needs a dedicated truck; fewer trucks than cargo
	// is structurally infeasible, no search required.
	truckNames := sc.TruckNames()
	if len(truckNames) < totalCargo {
		p.SetSolvable(false)
		return p, nil
	}
	truckNames = truckNames[:totalCargo]

	for i := 0; i < totalCargo; i++ {
		truckArrival, err := FromMilitary(sc.Trucks[truckNames[i]])
		if err != nil {
			return nil, fmt.Errorf("truck %s arrival: %w", truckNames[i], err)
		}
		job := Job{
			Name:          LoadJobName(i),
			Kind:          Load,
			AssociatedJob: UnloadJobName(i),
			Truck:         truckNames[i],
			Aircraft:      cargoAircraft[i],
		}
		domain := jobDomain(job, sc.Meta, slots, truckArrival)
		if len(domain) == 0 {
			p.SetSolvable(false)
		}
		if err := p.AddVariable(csp.NewVariable(job.Name, domain)); err != nil {
			return nil, err
		}
	}

	for i := 0; i < totalCargo; i++ {
		aircraftArrival, err := FromMilitary(sc.Aircraft[cargoAircraft[i]].Time)
		if err != nil {
			return nil, fmt.Errorf("aircraft %s arrival: %w", cargoAircraft[i], err)
		}
		job := Job{
			Name:          UnloadJobName(i),
			Kind:          Unload,
			AssociatedJob: LoadJobName(i),
			Aircraft:      cargoAircraft[i],
		}
		domain := jobDomain(job, sc.Meta, slots, aircraftArrival)
		if len(domain) == 0 {
			p.SetSolvable(false)
		}
		if err := p.AddVariable(csp.NewVariable(job.Name, domain)); err != nil {
			return nil, err
		}
	}

	addJobConstraints(p, totalCargo)
	return p, nil
}

// jobDomain enumerates every (hangar, slot, forklift) combination whose
// slot is not before earliest. The template job carries the constant
// association fields.
func jobDomain(template Job, meta Meta, slots []Clock, earliest Clock) []csp.Value {
	var domain []csp.Value
	for _, hangar := range meta.Hangars {
		for _, slot := range slots {
			if slot < earliest {
				continue
			}
			for _, forklift := range meta.Forklifts {
				value := template
				value.Hangar = hangar
				value.Arrival = slot
				value.Forklift = forklift
				domain = append(domain, value)
			}
		}
	}
	return domain
}

// addJobConstraints attaches the mutual-exclusion and precedence rules:
//
//   - one forklift cannot run two unloads within UnloadMinutes of each
//     other, nor a load within UnloadMinutes after starting an unload,
//     nor an unload within LoadMinutes after starting a load, nor two
//     loads within LoadMinutes of each other;
//   - a cargo unit's load starts strictly more than HandoverMinutes
//     after its unload, in the same hangar;
//   - two loads in the same hangar cannot share a start slot.
func addJobConstraints(p *csp.Problem, totalCargo int) {
	for i := 0; i < totalCargo; i++ {
		unloadA := UnloadJobName(i)
		for j := i + 1; j < totalCargo; j++ {
			p.AddBinary(unloadA, csp.BinaryConstraint{
				Neighbor: UnloadJobName(j),
				Name:     "forklift unload/unload separation",
				Holds:    sameForkliftApart(UnloadMinutes, UnloadMinutes),
			})
		}
		for k := 0; k < totalCargo; k++ {
			loadB := LoadJobName(k)
			p.AddBinary(unloadA, csp.BinaryConstraint{
				Neighbor: loadB,
				Name:     "forklift unload/load separation",
				Holds:    sameForkliftApart(UnloadMinutes, LoadMinutes),
			})
			p.AddBinary(unloadA, csp.BinaryConstraint{
				Neighbor: loadB,
				Name:     "cargo handover precedence",
				Holds:    handoverPrecedence(HandoverMinutes),
			})
		}
	}
	for i := 0; i < totalCargo; i++ {
		loadA := LoadJobName(i)
		for j := i + 1; j < totalCargo; j++ {
			loadB := LoadJobName(j)
			p.AddBinary(loadA, csp.BinaryConstraint{
				Neighbor: loadB,
				Name:     "forklift load/load separation",
				Holds:    sameForkliftApart(LoadMinutes, LoadMinutes),
			})
			p.AddBinary(loadA, csp.BinaryConstraint{
				Neighbor: loadB,
				Name:     "hangar load exclusivity",
				Holds:    distinctSlotWhenSameHangar,
			})
		}
	}
}

// sameForkliftApart builds a predicate allowing two jobs on the same
// forklift only when b starts at least gapAfterA minutes after a, or a
// starts at least gapAfterB minutes after b. Jobs on different forklifts
// always pass. Gap parameters are captured by value.
func sameForkliftApart(gapAfterA, gapAfterB int) csp.BinaryPredicate {
	return func(a, b csp.Value) bool {
		ja, jb := a.(Job), b.(Job)
		if ja.Forklift != jb.Forklift {
			return true
		}
		return jb.Arrival >= ja.Arrival.Add(gapAfterA) ||
			ja.Arrival >= jb.Arrival.Add(gapAfterB)
	}
}

// handoverPrecedence builds the unload-to-load rule for a shared cargo
// unit: the load must start strictly more than minGap minutes after its
// associated unload, in the same hangar. Unrelated pairs always pass.
func handoverPrecedence(minGap int) csp.BinaryPredicate {
	return func(a, b csp.Value) bool {
		unload, load := a.(Job), b.(Job)
		if load.AssociatedJob != unload.Name {
			return true
		}
		return load.Arrival > unload.Arrival.Add(minGap) &&
			load.Hangar == unload.Hangar
	}
}

// distinctSlotWhenSameHangar forbids two loads from sharing both hangar
// and start slot.
func distinctSlotWhenSameHangar(a, b csp.Value) bool {
	ja, jb := a.(Job), b.(Job)
	return ja.Hangar != jb.Hangar || ja.Arrival != jb.Arrival
}
