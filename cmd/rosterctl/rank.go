package main

import (
	"github.com/spf13/cobra"

	"github.com/stitts-dev/f1-fantasy/internal/analysis"
)

var rankFlags struct {
	recordsFile string
	undervalued bool
	threshold   float64
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank drivers or constructors by value efficiency",
	Long: `Reads season records (JSON array of {id, name, points, price,
history}) and prints them ordered by points per million. With
--undervalued only records beating the pool average by the threshold are
shown.`,
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.StringVar(&rankFlags.recordsFile, "records", "", "JSON file with season records (required)")
	f.BoolVar(&rankFlags.undervalued, "undervalued", false, "only show undervalued records")
	f.Float64Var(&rankFlags.threshold, "threshold", 0.1, "undervalued threshold above pool average")
	_ = rankCmd.MarkFlagRequired("records")
}

func runRank(cmd *cobra.Command, args []string) error {
	var records []analysis.Record
	if err := readJSONFile(rankFlags.recordsFile, &records); err != nil {
		return err
	}

	if rankFlags.undervalued {
		return printJSON(analysis.Undervalued(records, rankFlags.threshold))
	}
	return printJSON(analysis.RankByValue(records))
}
