package roster

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSelector_SmallPoolUsesExhaustive(t *testing.T) {
	drivers, constructors := feasibleFixture()
	selector := &Selector{Logger: quietLogger()}

	result, err := selector.Select(drivers, constructors, DefaultConstraint(100))
	require.NoError(t, err)
	require.NotNil(t, result.Roster)

	assert.Equal(t, "exhaustive", result.Strategy)
	assert.Equal(t, 800.0, result.Roster.TotalPoints)
	assert.NotEmpty(t, result.RunID)
}

func TestSelector_CeilingForcesGreedy(t *testing.T) {
	drivers, constructors := feasibleFixture()
	selector := &Selector{MaxCombinations: 1, Logger: quietLogger()}

	result, err := selector.Select(drivers, constructors, DefaultConstraint(100))
	require.NoError(t, err)
	require.NotNil(t, result.Roster)

	assert.Equal(t, "greedy", result.Strategy)
	assert.LessOrEqual(t, result.Roster.TotalCost, 100.0)
}

func TestSelector_NoFeasibleRoster(t *testing.T) {
	drivers := []Candidate{
		{ID: "d1", Points: 100, Price: 90},
		{ID: "d2", Points: 90, Price: 85},
	}
	constructors := []Candidate{{ID: "c1", Points: 50, Price: 40}}
	selector := &Selector{Logger: quietLogger()}

	result, err := selector.Select(drivers, constructors, Constraint{DriverCount: 2, ConstructorCount: 1, Budget: 100})
	require.NoError(t, err)
	assert.Nil(t, result.Roster)
	assert.NotEmpty(t, result.RunID)
}

func TestSelector_InvalidConstraint(t *testing.T) {
	drivers, constructors := feasibleFixture()
	selector := &Selector{Logger: quietLogger()}

	result, err := selector.Select(drivers, constructors, Constraint{DriverCount: -1, ConstructorCount: 2, Budget: 100})
	assert.ErrorIs(t, err, ErrInvalidConstraint)
	assert.Nil(t, result)
}

func TestSearchSpace(t *testing.T) {
	assert.Equal(t, int64(6), searchSpace(4, 2, 1, 1))
	assert.Equal(t, int64(697_680), searchSpace(20, 5, 10, 2), "C(20,5)*C(10,2)")
	assert.Zero(t, searchSpace(3, 5, 10, 2), "pool smaller than subset size")
}
