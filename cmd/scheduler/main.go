// Command scheduler solves terminal scheduling scenarios (aircraft,
// trucks and forklifts sharing hangars and time slots) and the N-Queens
// puzzle with the finite-domain CSP engine.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/internal/parallel"
	"github.com/gitrdm/gocsp/internal/tracelog"
	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/queens"
	"github.com/gitrdm/gocsp/pkg/schedule"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := &cobra.Command{
		Use:           "scheduler",
		Short:         "Finite-domain CSP solver for terminal scheduling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search events")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newSolveCmd(log, &verbose))
	root.AddCommand(newBatchCmd(log))
	root.AddCommand(newQueensCmd())

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newSolveCmd(log *logrus.Logger, verbose *bool) *cobra.Command {
	var (
		metaPath     string
		aircraftPath string
		trucksPath   string
		solutionPath string
		schedulePath string
		naive        bool
		timeline     bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one scenario and write solution and schedule files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := schedule.LoadScenario(metaPath, aircraftPath, trucksPath)
			if err != nil {
				return err
			}
			solution, stats, err := solveScenario(sc, naive, *verbose, log)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"nodes":      stats.Nodes,
				"backtracks": stats.Backtracks,
				"pruned":     stats.Pruned,
				"duration":   stats.Duration,
			}).Info("solved")

			if data, err := schedule.MarshalSolution(solution); err != nil {
				return err
			} else if err := os.WriteFile(solutionPath, data, 0o644); err != nil {
				return err
			}

			sched := schedule.BuildSchedule(sc, solution, log)
			data, err := schedule.MarshalSchedule(sched)
			if err != nil {
				return err
			}
			if err := os.WriteFile(schedulePath, data, 0o644); err != nil {
				return err
			}
			log.WithField("path", schedulePath).Info("schedule written")

			if timeline {
				fmt.Fprint(cmd.OutOrStdout(), schedule.Timeline(sched))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metaPath, "meta", "meta.json", "terminal description file")
	cmd.Flags().StringVar(&aircraftPath, "aircraft", "aircraft.json", "inbound aircraft file")
	cmd.Flags().StringVar(&trucksPath, "trucks", "trucks.json", "truck arrivals file")
	cmd.Flags().StringVar(&solutionPath, "solution", "solution.json", "raw per-job solution output")
	cmd.Flags().StringVar(&schedulePath, "schedule", "schedule.json", "grouped schedule output")
	cmd.Flags().BoolVar(&naive, "naive", false, "plain backtracking instead of forward checking")
	cmd.Flags().BoolVar(&timeline, "timeline", false, "print a text timeline of the schedule")
	return cmd
}

func solveScenario(sc *schedule.Scenario, naive, verbose bool, log *logrus.Logger) (csp.Assignment, csp.Stats, error) {
	problem, err := schedule.Build(sc)
	if err != nil {
		return nil, csp.Stats{}, err
	}

	var opts []csp.Option
	if verbose {
		opts = append(opts, csp.WithTracer(tracelog.New(log)))
	}
	solver := csp.NewSolver(opts...)
	if naive {
		return solver.Solve(problem)
	}
	return solver.SolveForwardChecking(problem)
}

func newBatchCmd(log *logrus.Logger) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch DIR [DIR...]",
		Short: "Solve several scenario directories concurrently",
		Long: "Each directory must contain meta.json, aircraft.json and trucks.json; " +
			"a schedule.json is written back into it. Individual solves stay " +
			"single-threaded; directories are distributed over a worker pool.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, dirs []string) error {
			pool := parallel.NewWorkerPool(workers)
			defer pool.Shutdown()

			var (
				wg     sync.WaitGroup
				mu     sync.Mutex
				failed []string
			)
			for _, dir := range dirs {
				dir := dir
				wg.Add(1)
				err := pool.Submit(cmd.Context(), func() {
					defer wg.Done()
					if err := solveDirectory(dir, log); err != nil {
						log.WithError(err).WithField("dir", dir).Error("scenario failed")
						mu.Lock()
						failed = append(failed, dir)
						mu.Unlock()
					}
				})
				if err != nil {
					wg.Done()
					return err
				}
			}
			wg.Wait()

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d scenarios failed", len(failed), len(dirs))
			}
			log.WithField("scenarios", len(dirs)).Info("batch complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = number of CPUs)")
	return cmd
}

func solveDirectory(dir string, log *logrus.Logger) error {
	sc, err := schedule.LoadScenario(
		filepath.Join(dir, "meta.json"),
		filepath.Join(dir, "aircraft.json"),
		filepath.Join(dir, "trucks.json"),
	)
	if err != nil {
		return err
	}
	solution, stats, err := solveScenario(sc, false, false, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"dir":      dir,
		"nodes":    stats.Nodes,
		"duration": stats.Duration,
	}).Info("scenario solved")

	data, err := schedule.MarshalSchedule(schedule.BuildSchedule(sc, solution, log))
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "schedule.json"), data, 0o644)
}

func newQueensCmd() *cobra.Command {
	var (
		n     int
		naive bool
	)

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Solve the N-Queens puzzle and print the board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			problem, err := queens.Build(n)
			if err != nil {
				return err
			}
			solver := csp.NewSolver()
			var (
				solution csp.Assignment
				stats    csp.Stats
			)
			if naive {
				solution, stats, err = solver.Solve(problem)
			} else {
				solution, stats, err = solver.SolveForwardChecking(problem)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d-queens solved in %v (%d nodes)\n%s",
				n, stats.Duration, stats.Nodes, queens.Render(solution, n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "size", "n", 6, "board size and queen count")
	cmd.Flags().BoolVar(&naive, "naive", false, "plain backtracking instead of forward checking")
	return cmd
}
