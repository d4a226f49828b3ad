// Package analysis provides season-level analytics over driver and
// constructor records: value ranking, form trends, price/points
// correlation, and simple points projections.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Record is one driver or constructor with season totals and per-race
// history (oldest race first).
type Record struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Points  float64   `json:"points"`
	Price   float64   `json:"price"`
	History []float64 `json:"history,omitempty"`
}

// ValueEfficiency returns points per million spent, 0 for unpriced records.
func ValueEfficiency(r Record) float64 {
	if r.Price <= 0 {
		return 0
	}
	return r.Points / r.Price
}

// RankedRecord pairs a record with its value efficiency.
type RankedRecord struct {
	Record Record  `json:"record"`
	Value  float64 `json:"value"`
}

// RankByValue orders records by descending value efficiency. The sort is
// stable; the input is untouched.
func RankByValue(records []Record) []RankedRecord {
	ranked := make([]RankedRecord, 0, len(records))
	for _, r := range records {
		ranked = append(ranked, RankedRecord{Record: r, Value: ValueEfficiency(r)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })
	return ranked
}

// formWindow is how many recent races feed the form trend.
const formWindow = 3

// FormTrend returns the least-squares slope over the record's most recent
// races. Fewer than two races give no trend (0).
func FormTrend(r Record) float64 {
	recent := r.History
	if len(recent) > formWindow {
		recent = recent[len(recent)-formWindow:]
	}
	if len(recent) < 2 {
		return 0
	}
	xs := make([]float64, len(recent))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, recent, nil, false)
	return slope
}

// FormTrends computes the form trend for every record, keyed by name.
func FormTrends(records []Record) map[string]float64 {
	trends := make(map[string]float64, len(records))
	for _, r := range records {
		trends[r.Name] = FormTrend(r)
	}
	return trends
}

// Correlation summarizes the linear relationship between price and points
// across a pool.
type Correlation struct {
	Coefficient float64 `json:"correlation"`
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
}

// PricePointsCorrelation measures how strongly price predicts points over
// the given records. Pools with fewer than two records yield zeros.
func PricePointsCorrelation(records []Record) Correlation {
	if len(records) < 2 {
		return Correlation{}
	}
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.Price
		ys[i] = r.Points
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Correlation{
		Coefficient: stat.Correlation(xs, ys, nil),
		Slope:       slope,
		Intercept:   intercept,
	}
}

// Undervalued returns the records whose value efficiency beats the pool
// mean by more than threshold (0.1 = 10%), ordered best value first.
func Undervalued(records []Record, threshold float64) []RankedRecord {
	ranked := RankByValue(records)
	if len(ranked) == 0 {
		return nil
	}
	total := 0.0
	for _, r := range ranked {
		total += r.Value
	}
	cutoff := total / float64(len(ranked)) * (1 + threshold)

	out := make([]RankedRecord, 0, len(ranked))
	for _, r := range ranked {
		if r.Value > cutoff {
			out = append(out, r)
		}
	}
	return out
}

// Projection extends a record's season points to the end of the season.
type Projection struct {
	Record       Record  `json:"record"`
	FuturePoints float64 `json:"future_points"`
	TotalPoints  float64 `json:"total_points"`
}

// ProjectPoints estimates remaining-season points from points per race,
// scaled by each record's form factor (recent form trend normalized around
// 1.0). With no races completed every projection is zero.
func ProjectPoints(records []Record, racesCompleted, racesRemaining int) []Projection {
	out := make([]Projection, 0, len(records))
	for _, r := range records {
		p := Projection{Record: r, TotalPoints: r.Points}
		if racesCompleted > 0 {
			perRace := r.Points / float64(racesCompleted)
			factor := 1.0
			if trend := FormTrend(r); trend != 0 && perRace != 0 {
				// A positive trend nudges the projection up, a slump down.
				factor = 1 + trend/perRace
				if factor < 0 {
					factor = 0
				}
			}
			p.FuturePoints = perRace * factor * float64(racesRemaining)
			p.TotalPoints = r.Points + p.FuturePoints
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPoints > out[j].TotalPoints })
	return out
}
