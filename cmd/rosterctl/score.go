package main

import (
	"github.com/spf13/cobra"

	"github.com/stitts-dev/f1-fantasy/internal/prices"
	"github.com/stitts-dev/f1-fantasy/internal/roster"
	"github.com/stitts-dev/f1-fantasy/internal/scoring"
)

var scoreFlags struct {
	weekendFile string
	pricesFile  string
	optimize    bool
}

// priceFile is the optional price input: flat quotes effective at the
// weekend date.
type priceFile struct {
	Drivers      map[string]float64 `json:"drivers"`
	Constructors map[string]float64 `json:"constructors"`
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a race weekend",
	Long: `Reads race weekend results (JSON) and prints each entrant's fantasy
points with the per-category breakdown, price, and value. Prices come from
--prices when given, otherwise from the bundled season-start grid. With
--optimize the scored weekend is fed straight into roster selection.`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.weekendFile, "weekend", "", "JSON file with race weekend results (required)")
	f.StringVar(&scoreFlags.pricesFile, "prices", "", "JSON file with driver/constructor prices")
	f.BoolVar(&scoreFlags.optimize, "optimize", false, "also select the best roster for this weekend")
	_ = scoreCmd.MarkFlagRequired("weekend")
}

func runScore(cmd *cobra.Command, args []string) error {
	var weekend scoring.WeekendResults
	if err := readJSONFile(scoreFlags.weekendFile, &weekend); err != nil {
		return err
	}

	book := prices.SampleBook(weekend.Date)
	if scoreFlags.pricesFile != "" {
		var pf priceFile
		if err := readJSONFile(scoreFlags.pricesFile, &pf); err != nil {
			return err
		}
		book = prices.NewBook()
		for id, price := range pf.Drivers {
			book.AddDriverQuote(id, price, weekend.Date)
		}
		for id, price := range pf.Constructors {
			book.AddConstructorQuote(id, price, weekend.Date)
		}
	}

	scored := scoring.ScoreWeekend(scoring.DefaultRules(), weekend, book)
	if err := printJSON(scored); err != nil {
		return err
	}

	if !scoreFlags.optimize {
		return nil
	}

	selector := &roster.Selector{MaxCombinations: cfg.MaxExhaustiveCombos, Logger: log}
	cons := roster.Constraint{
		DriverCount:      cfg.DriverCount,
		ConstructorCount: cfg.ConstructorCount,
		Budget:           cfg.Budget,
		MaxPerTeam:       cfg.MaxPerTeam,
	}
	result, err := selector.Select(scored.DriverCandidates(), scored.ConstructorCandidates(), cons)
	if err != nil {
		return err
	}
	return printJSON(result)
}
