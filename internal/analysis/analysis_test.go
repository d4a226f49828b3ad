package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEfficiency(t *testing.T) {
	assert.Equal(t, 5.0, ValueEfficiency(Record{Points: 150, Price: 30}))
	assert.Zero(t, ValueEfficiency(Record{Points: 150, Price: 0}))
	assert.Zero(t, ValueEfficiency(Record{Points: 150, Price: -2}))
}

func TestRankByValue(t *testing.T) {
	records := []Record{
		{ID: "expensive", Name: "Expensive Star", Points: 200, Price: 40}, // 5.0
		{ID: "bargain", Name: "Bargain", Points: 90, Price: 9},            // 10.0
		{ID: "dud", Name: "Dud", Points: 10, Price: 10},                   // 1.0
	}

	ranked := RankByValue(records)
	require.Len(t, ranked, 3)
	assert.Equal(t, "bargain", ranked[0].Record.ID)
	assert.Equal(t, "expensive", ranked[1].Record.ID)
	assert.Equal(t, "dud", ranked[2].Record.ID)
	assert.Equal(t, 10.0, ranked[0].Value)
}

func TestFormTrend(t *testing.T) {
	// Steadily improving: slope of [10, 20, 30] over x = 0,1,2 is 10.
	up := Record{History: []float64{10, 20, 30}}
	assert.InDelta(t, 10.0, FormTrend(up), 1e-9)

	// Only the last three races count.
	long := Record{History: []float64{100, 100, 30, 20, 10}}
	assert.InDelta(t, -10.0, FormTrend(long), 1e-9)

	assert.Zero(t, FormTrend(Record{History: []float64{42}}))
	assert.Zero(t, FormTrend(Record{}))
}

func TestFormTrends(t *testing.T) {
	trends := FormTrends([]Record{
		{Name: "Improver", History: []float64{5, 10, 15}},
		{Name: "Slumper", History: []float64{15, 10, 5}},
	})
	assert.InDelta(t, 5.0, trends["Improver"], 1e-9)
	assert.InDelta(t, -5.0, trends["Slumper"], 1e-9)
}

func TestPricePointsCorrelation(t *testing.T) {
	// Perfectly linear pool: points = 5 * price.
	linear := []Record{
		{Price: 10, Points: 50},
		{Price: 20, Points: 100},
		{Price: 30, Points: 150},
	}
	c := PricePointsCorrelation(linear)
	assert.InDelta(t, 1.0, c.Coefficient, 1e-9)
	assert.InDelta(t, 5.0, c.Slope, 1e-9)
	assert.InDelta(t, 0.0, c.Intercept, 1e-9)

	assert.Zero(t, PricePointsCorrelation([]Record{{Price: 10, Points: 50}}))
}

func TestUndervalued(t *testing.T) {
	records := []Record{
		{ID: "steal", Points: 120, Price: 6},  // value 20
		{ID: "fair1", Points: 50, Price: 10},  // value 5
		{ID: "fair2", Points: 45, Price: 9},   // value 5
		{ID: "brick", Points: 10, Price: 20},  // value 0.5
	}

	// Pool average is 7.625; only the steal clears the 10% threshold.
	under := Undervalued(records, 0.1)
	require.Len(t, under, 1)
	assert.Equal(t, "steal", under[0].Record.ID)

	assert.Nil(t, Undervalued(nil, 0.1))
}

func TestProjectPoints(t *testing.T) {
	records := []Record{
		{ID: "steady", Points: 100, History: []float64{10, 10, 10}},
		{ID: "surging", Points: 90, History: []float64{5, 10, 15}},
	}

	projections := ProjectPoints(records, 10, 14)
	require.Len(t, projections, 2)

	// Steady: 10 per race, flat form, 140 more points.
	var steady, surging Projection
	for _, p := range projections {
		switch p.Record.ID {
		case "steady":
			steady = p
		case "surging":
			surging = p
		}
	}
	assert.InDelta(t, 140.0, steady.FuturePoints, 1e-9)
	assert.InDelta(t, 240.0, steady.TotalPoints, 1e-9)

	// Surging: 9 per race with a +5 trend lifts the projection above the
	// flat rate.
	assert.Greater(t, surging.FuturePoints, 9.0*14)

	// Ordered by projected season total, best first.
	assert.GreaterOrEqual(t, projections[0].TotalPoints, projections[1].TotalPoints)
}

func TestProjectPoints_NoRacesCompleted(t *testing.T) {
	projections := ProjectPoints([]Record{{ID: "x", Points: 0}}, 0, 24)
	require.Len(t, projections, 1)
	assert.Zero(t, projections[0].FuturePoints)
	assert.Zero(t, projections[0].TotalPoints)
}
