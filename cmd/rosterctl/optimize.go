package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stitts-dev/f1-fantasy/internal/roster"
)

var optimizeFlags struct {
	driversFile      string
	constructorsFile string
	budget           float64
	driverCount      int
	constructorCount int
	maxPerTeam       int
	greedy           bool
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Select the best roster from candidate pools",
	Long: `Reads driver and constructor candidate pools (JSON arrays of
{id, team, points, price}) and selects a roster under the budget. By
default the exhaustive optimizer runs while the pool is small enough and
the tiered-greedy optimizer serves as fallback; --greedy forces the
greedy strategy.`,
	RunE: runOptimize,
}

func init() {
	f := optimizeCmd.Flags()
	f.StringVar(&optimizeFlags.driversFile, "drivers", "", "JSON file with driver candidates (required)")
	f.StringVar(&optimizeFlags.constructorsFile, "constructors", "", "JSON file with constructor candidates (required)")
	f.Float64Var(&optimizeFlags.budget, "budget", 0, "total budget in millions (default from config)")
	f.IntVar(&optimizeFlags.driverCount, "driver-count", 0, "drivers per roster (default from config)")
	f.IntVar(&optimizeFlags.constructorCount, "constructor-count", 0, "constructors per roster (default from config)")
	f.IntVar(&optimizeFlags.maxPerTeam, "max-per-team", 0, "max drivers per constructor team, 0 for unlimited")
	f.BoolVar(&optimizeFlags.greedy, "greedy", false, "force the tiered-greedy optimizer")
	_ = optimizeCmd.MarkFlagRequired("drivers")
	_ = optimizeCmd.MarkFlagRequired("constructors")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	var drivers, constructors []roster.Candidate
	if err := readJSONFile(optimizeFlags.driversFile, &drivers); err != nil {
		return err
	}
	if err := readJSONFile(optimizeFlags.constructorsFile, &constructors); err != nil {
		return err
	}

	cons := roster.Constraint{
		DriverCount:      cfg.DriverCount,
		ConstructorCount: cfg.ConstructorCount,
		Budget:           cfg.Budget,
		MaxPerTeam:       cfg.MaxPerTeam,
	}
	if optimizeFlags.budget > 0 {
		cons.Budget = optimizeFlags.budget
	}
	if optimizeFlags.driverCount > 0 {
		cons.DriverCount = optimizeFlags.driverCount
	}
	if optimizeFlags.constructorCount > 0 {
		cons.ConstructorCount = optimizeFlags.constructorCount
	}
	if optimizeFlags.maxPerTeam > 0 {
		cons.MaxPerTeam = optimizeFlags.maxPerTeam
	}

	if optimizeFlags.greedy {
		selected, err := roster.FindGreedyRoster(drivers, constructors, cons)
		if err != nil {
			return err
		}
		if selected == nil {
			return fmt.Errorf("no valid roster fits budget %.1f", cons.Budget)
		}
		return printJSON(roster.Result{Roster: selected, Strategy: "greedy"})
	}

	selector := &roster.Selector{MaxCombinations: cfg.MaxExhaustiveCombos, Logger: log}
	result, err := selector.Select(drivers, constructors, cons)
	if err != nil {
		return err
	}
	if result.Roster == nil {
		return fmt.Errorf("no valid roster fits budget %.1f", cons.Budget)
	}
	return printJSON(result)
}
