package schedule

import (
	"os"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Meta describes the terminal: the operating window, the hangars an
// aircraft (and its jobs) may be assigned to, and the forklift fleet.
// Field names follow the scenario file keys.
type Meta struct {
	Start     int      `json:"Start Time"`
	Stop      int      `json:"Stop Time"`
	Hangars   []string `json:"Hangars"`
	Forklifts []string `json:"Forklifts"`
}

// Aircraft is one inbound flight: when it reaches the terminal and how
// many cargo units it carries. Every cargo unit needs one unload job,
// one load job, and one truck.
type Aircraft struct {
	Time  int `json:"Time"`
	Cargo int `json:"Cargo"`
}

// Scenario is a complete scheduling problem instance as read from the
// meta, aircraft and trucks files. Truck values are terminal arrival
// times in military HHMM form.
type Scenario struct {
	Meta     Meta
	Aircraft map[string]Aircraft
	Trucks   map[string]int
}

// LoadScenario reads the three scenario files. Files may be JSON or
// YAML; both parse through the same path.
func LoadScenario(metaPath, aircraftPath, trucksPath string) (*Scenario, error) {
	sc := &Scenario{}
	if err := loadFile(metaPath, &sc.Meta); err != nil {
		return nil, err
	}
	if err := loadFile(aircraftPath, &sc.Aircraft); err != nil {
		return nil, err
	}
	if err := loadFile(trucksPath, &sc.Trucks); err != nil {
		return nil, err
	}
	return sc, nil
}

func loadFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading scenario file %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parsing scenario file %s", path)
	}
	return nil
}

// AircraftNames returns the aircraft names in sorted order. Builders
// iterate this instead of the map so variable and constraint order, and
// therefore search order, is deterministic.
func (s *Scenario) AircraftNames() []string {
	names := make([]string, 0, len(s.Aircraft))
	for name := range s.Aircraft {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TruckNames returns the truck names in sorted order.
func (s *Scenario) TruckNames() []string {
	names := make([]string, 0, len(s.Trucks))
	for name := range s.Trucks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalCargo sums the cargo units across all aircraft.
func (s *Scenario) TotalCargo() int {
	total := 0
	for _, a := range s.Aircraft {
		total += a.Cargo
	}
	return total
}
