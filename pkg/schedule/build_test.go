package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func testScenario() *Scenario {
	return &Scenario{
		Meta: Meta{
			Start:     800,
			Stop:      900,
			Hangars:   []string{"Hangar 1", "Hangar 2"},
			Forklifts: []string{"forklift_1", "forklift_2"},
		},
		Aircraft: map[string]Aircraft{
			"flight_1": {Time: 800, Cargo: 2},
		},
		Trucks: map[string]int{
			"truck_1": 800,
			"truck_2": 805,
		},
	}
}

func mustClock(t *testing.T, hhmm int) Clock {
	t.Helper()
	c, err := FromMilitary(hhmm)
	require.NoError(t, err)
	return c
}

func TestBuildVariableLayout(t *testing.T) {
	p, err := Build(testScenario())
	require.NoError(t, err)
	require.True(t, p.Solvable())
	require.NoError(t, p.Validate())

	vars := p.Variables()
	require.Len(t, vars, 4, "two cargo units need two load and two unload jobs")
	assert.Equal(t, LoadJobName(0), vars[0].Name())
	assert.Equal(t, LoadJobName(1), vars[1].Name())
	assert.Equal(t, UnloadJobName(0), vars[2].Name())
	assert.Equal(t, UnloadJobName(1), vars[3].Name())

	// 2 hangars × 12 slots × 2 forklifts, every slot at or after the
	// truck/aircraft arrival.
	assert.Equal(t, 2*12*2, vars[0].DomainSize())
	// truck_2 arrives 08:05: one slot fewer.
	assert.Equal(t, 2*11*2, vars[1].DomainSize())
	assert.Equal(t, 2*12*2, vars[2].DomainSize())

	first := vars[0].Domain()[0].(Job)
	assert.Equal(t, Load, first.Kind)
	assert.Equal(t, "truck_1", first.Truck)
	assert.Equal(t, "flight_1", first.Aircraft)
	assert.Equal(t, UnloadJobName(0), first.AssociatedJob)
	assert.Equal(t, mustClock(t, 800), first.Arrival)
}

// checkJobRules re-validates a solved assignment against the scheduling
// rules independently of the engine's constraint bookkeeping.
func checkJobRules(t *testing.T, solution csp.Assignment) {
	t.Helper()
	jobs := make(map[string]Job, len(solution))
	for name, v := range solution {
		jobs[name] = v.(Job)
	}
	gap := func(k JobKind) int {
		if k == Unload {
			return UnloadMinutes
		}
		return LoadMinutes
	}
	for _, a := range jobs {
		for _, b := range jobs {
			if a.Name == b.Name {
				continue
			}
			if a.Forklift == b.Forklift {
				apart := b.Arrival >= a.Arrival.Add(gap(a.Kind)) ||
					a.Arrival >= b.Arrival.Add(gap(b.Kind))
				assert.True(t, apart,
					"forklift %s double-booked: %s and %s", a.Forklift, a.Name, b.Name)
			}
			if a.Kind == Unload && b.Kind == Load && b.AssociatedJob == a.Name {
				assert.True(t, b.Arrival > a.Arrival.Add(HandoverMinutes),
					"load %s must start more than %d min after unload %s", b.Name, HandoverMinutes, a.Name)
				assert.Equal(t, a.Hangar, b.Hangar,
					"load %s must share its unload's hangar", b.Name)
			}
			if a.Kind == Load && b.Kind == Load && a.Hangar == b.Hangar {
				assert.NotEqual(t, a.Arrival, b.Arrival,
					"loads %s and %s share hangar %s and slot", a.Name, b.Name, a.Hangar)
			}
		}
	}
}

func TestBuildAndSolveScenario(t *testing.T) {
	for name, solve := range map[string]func(*csp.Problem) (csp.Assignment, csp.Stats, error){
		"plain":            csp.NewSolver().Solve,
		"forward checking": csp.NewSolver().SolveForwardChecking,
	} {
		t.Run(name, func(t *testing.T) {
			p, err := Build(testScenario())
			require.NoError(t, err)

			solution, _, err := solve(p)
			require.NoError(t, err)
			require.True(t, solution.Complete(p))
			checkJobRules(t, solution)
		})
	}
}

func TestBuildAndSolveIsDeterministic(t *testing.T) {
	p1, err := Build(testScenario())
	require.NoError(t, err)
	p2, err := Build(testScenario())
	require.NoError(t, err)

	s1, _, err := csp.NewSolver().SolveForwardChecking(p1)
	require.NoError(t, err)
	s2, _, err := csp.NewSolver().SolveForwardChecking(p2)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
}

func TestBuildMarksTooFewTrucksUnsolvable(t *testing.T) {
	sc := testScenario()
	sc.Trucks = map[string]int{"truck_1": 800}

	p, err := Build(sc)
	require.NoError(t, err)
	assert.False(t, p.Solvable())

	_, stats, err := csp.NewSolver().SolveForwardChecking(p)
	require.ErrorIs(t, err, csp.ErrUnsolvable)
	assert.Zero(t, stats.Nodes, "structural infeasibility must skip search")
}

func TestBuildMarksUnreachableSlotsUnsolvable(t *testing.T) {
	sc := testScenario()
	sc.Aircraft = map[string]Aircraft{"flight_1": {Time: 800, Cargo: 1}}
	// The only truck arrives as the window closes: no load slot exists.
	sc.Trucks = map[string]int{"truck_1": 900}

	p, err := Build(sc)
	require.NoError(t, err)
	assert.False(t, p.Solvable())

	_, _, err = csp.NewSolver().SolveForwardChecking(p)
	require.ErrorIs(t, err, csp.ErrUnsolvable)
}

func TestBuildRejectsBadMeta(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{name: "bad start time", mutate: func(sc *Scenario) { sc.Meta.Start = 2470 }},
		{name: "empty window", mutate: func(sc *Scenario) { sc.Meta.Stop = sc.Meta.Start }},
		{name: "no hangars", mutate: func(sc *Scenario) { sc.Meta.Hangars = nil }},
		{name: "no forklifts", mutate: func(sc *Scenario) { sc.Meta.Forklifts = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := testScenario()
			tt.mutate(sc)
			_, err := Build(sc)
			require.Error(t, err)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	metaPath := write("meta.json", `{
        "Start Time": 800,
        "Stop Time": 900,
        "Hangars": ["Hangar 1"],
        "Forklifts": ["forklift_1"]
    }`)
	// Aircraft file in YAML: both formats parse through the same path.
	aircraftPath := write("aircraft.yaml", "flight_1:\n  Time: 805\n  Cargo: 1\n")
	trucksPath := write("trucks.json", `{"truck_1": 810}`)

	sc, err := LoadScenario(metaPath, aircraftPath, trucksPath)
	require.NoError(t, err)
	assert.Equal(t, 800, sc.Meta.Start)
	assert.Equal(t, []string{"Hangar 1"}, sc.Meta.Hangars)
	assert.Equal(t, Aircraft{Time: 805, Cargo: 1}, sc.Aircraft["flight_1"])
	assert.Equal(t, 810, sc.Trucks["truck_1"])
	assert.Equal(t, 1, sc.TotalCargo())

	_, err = LoadScenario(filepath.Join(dir, "missing.json"), aircraftPath, trucksPath)
	require.Error(t, err)

	badPath := write("bad.json", `{"Start Time": "not a time"}`)
	_, err = LoadScenario(badPath, aircraftPath, trucksPath)
	require.Error(t, err)
}
