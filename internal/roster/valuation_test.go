package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		want      float64
	}{
		{"normal", Candidate{Points: 100, Price: 20}, 5},
		{"fractional", Candidate{Points: 25, Price: 10}, 2.5},
		{"zero price", Candidate{Points: 100, Price: 0}, 0},
		{"negative price", Candidate{Points: 100, Price: -5}, 0},
		{"zero points", Candidate{Points: 0, Price: 10}, 0},
		{"negative points", Candidate{Points: -15, Price: 10}, -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.candidate))
		})
	}
}

func TestRankByValue(t *testing.T) {
	candidates := []Candidate{
		{ID: "mid", Points: 50, Price: 10},   // value 5
		{ID: "best", Points: 100, Price: 10}, // value 10
		{ID: "worst", Points: 10, Price: 10}, // value 1
	}

	ranked := RankByValue(candidates)
	assert.Equal(t, "best", ranked[0].Candidate.ID)
	assert.Equal(t, "mid", ranked[1].Candidate.ID)
	assert.Equal(t, "worst", ranked[2].Candidate.ID)
	assert.Equal(t, 10.0, ranked[0].Value)

	// Input order untouched.
	assert.Equal(t, "mid", candidates[0].ID)
}

func TestRankByValue_FreeCandidateNeverOutranksPricedValue(t *testing.T) {
	// Same points, but the free candidate's value is defined as 0, not
	// infinity: it must sort behind any positive-value candidate.
	candidates := []Candidate{
		{ID: "free", Points: 80, Price: 0},
		{ID: "priced", Points: 80, Price: 40},
	}

	ranked := RankByValue(candidates)
	assert.Equal(t, "priced", ranked[0].Candidate.ID)
	assert.Equal(t, "free", ranked[1].Candidate.ID)
	assert.Zero(t, ranked[1].Value)
}

func TestConstraintValidate(t *testing.T) {
	assert.NoError(t, DefaultConstraint(100).Validate())

	cons := DefaultConstraint(100)
	cons.MaxPerTeam = 2
	assert.NoError(t, cons.Validate())

	assert.ErrorIs(t, Constraint{DriverCount: 0, ConstructorCount: 2, Budget: 100}.Validate(), ErrInvalidConstraint)
	assert.ErrorIs(t, Constraint{DriverCount: 5, ConstructorCount: 0, Budget: 100}.Validate(), ErrInvalidConstraint)
	assert.ErrorIs(t, Constraint{DriverCount: 5, ConstructorCount: 2, Budget: 0}.Validate(), ErrInvalidConstraint)
	assert.ErrorIs(t, Constraint{DriverCount: 5, ConstructorCount: 2, Budget: 100, MaxPerTeam: -1}.Validate(), ErrInvalidConstraint)
}

func TestRosterLookups(t *testing.T) {
	r := newRoster(
		[]Candidate{{ID: "d2", Points: 10, Price: 1}, {ID: "d1", Points: 20, Price: 2}},
		[]Candidate{{ID: "c1", Points: 30, Price: 3}},
	)

	assert.Equal(t, []string{"d1", "d2"}, r.DriverIDs, "IDs are normalized to sorted order")
	assert.True(t, r.HasDriver("d1"))
	assert.False(t, r.HasDriver("c1"))
	assert.True(t, r.HasConstructor("c1"))
	assert.InDelta(t, 6.0, r.TotalCost, 1e-9)
	assert.InDelta(t, 60.0, r.TotalPoints, 1e-9)
}
