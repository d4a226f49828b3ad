package roster

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidConstraint is returned when a selection constraint is malformed.
// Budget infeasibility is never an error; it is reported as a nil roster.
var ErrInvalidConstraint = errors.New("invalid roster constraint")

// Candidate is a driver or constructor being considered for selection,
// carrying the points and price supplied by the scoring layer. Candidates
// are immutable for the duration of an optimization run.
type Candidate struct {
	ID     string  `json:"id"`
	Team   string  `json:"team,omitempty"`
	Points float64 `json:"points"`
	Price  float64 `json:"price"`
}

// Constraint fixes the shape of a valid roster for one optimization call.
type Constraint struct {
	DriverCount      int     `json:"driver_count"`
	ConstructorCount int     `json:"constructor_count"`
	Budget           float64 `json:"budget"`
	// MaxPerTeam caps how many drivers may share a constructor team in the
	// greedy fill. Zero means unlimited. Constructors are never capped.
	MaxPerTeam int `json:"max_per_team,omitempty"`
}

// DefaultConstraint returns the standard game shape: 5 drivers and
// 2 constructors under the given budget.
func DefaultConstraint(budget float64) Constraint {
	return Constraint{DriverCount: 5, ConstructorCount: 2, Budget: budget}
}

// Validate rejects malformed constraints up front. Counts must be positive
// and the budget must be positive; MaxPerTeam may not be negative.
func (c Constraint) Validate() error {
	if c.DriverCount <= 0 {
		return fmt.Errorf("%w: driver count must be positive, got %d", ErrInvalidConstraint, c.DriverCount)
	}
	if c.ConstructorCount <= 0 {
		return fmt.Errorf("%w: constructor count must be positive, got %d", ErrInvalidConstraint, c.ConstructorCount)
	}
	if c.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive, got %g", ErrInvalidConstraint, c.Budget)
	}
	if c.MaxPerTeam < 0 {
		return fmt.Errorf("%w: max per team must not be negative, got %d", ErrInvalidConstraint, c.MaxPerTeam)
	}
	return nil
}

// Roster is a complete team selection. It is a value object: built once by
// an optimizer and never mutated afterwards.
type Roster struct {
	DriverIDs      []string `json:"driver_ids"`
	ConstructorIDs []string `json:"constructor_ids"`
	TotalCost      float64  `json:"total_cost"`
	TotalPoints    float64  `json:"total_points"`
}

// newRoster builds a roster from final selections, summing cost and points
// and normalizing ID order so equal selections compare equal.
func newRoster(drivers, constructors []Candidate) *Roster {
	r := &Roster{
		DriverIDs:      make([]string, 0, len(drivers)),
		ConstructorIDs: make([]string, 0, len(constructors)),
	}
	for _, d := range drivers {
		r.DriverIDs = append(r.DriverIDs, d.ID)
		r.TotalCost += d.Price
		r.TotalPoints += d.Points
	}
	for _, c := range constructors {
		r.ConstructorIDs = append(r.ConstructorIDs, c.ID)
		r.TotalCost += c.Price
		r.TotalPoints += c.Points
	}
	sort.Strings(r.DriverIDs)
	sort.Strings(r.ConstructorIDs)
	return r
}

// HasDriver reports whether the roster contains the given driver.
func (r *Roster) HasDriver(id string) bool { return containsID(r.DriverIDs, id) }

// HasConstructor reports whether the roster contains the given constructor.
func (r *Roster) HasConstructor(id string) bool { return containsID(r.ConstructorIDs, id) }

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sumPrice(cs []Candidate) float64 {
	total := 0.0
	for _, c := range cs {
		total += c.Price
	}
	return total
}

func sumPoints(cs []Candidate) float64 {
	total := 0.0
	for _, c := range cs {
		total += c.Points
	}
	return total
}
