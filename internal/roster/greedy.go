package roster

// tier is one fallback stage of the greedy optimizer: an ordering plus a
// name for logging and tests. Tiers are tried in sequence and every tier
// restarts the fill from an empty selection and a fresh budget; there is no
// partial blending between tiers.
type tier struct {
	name string
	less func(a, b Candidate) bool
}

// greedyTiers is the fixed fallback ladder. Value-greedy is usually
// near-optimal; points-greedy and price-ascending exist to guarantee a
// complete selection whenever the budget mathematically permits one.
var greedyTiers = []tier{
	{name: "value", less: byValueDesc},
	{name: "points", less: byPointsDesc},
	{name: "price", less: byPriceAsc},
}

// FindGreedyRoster assembles a roster in linear-ish time, trading
// optimality for speed. Drivers are filled first through the tier ladder
// against the full budget; constructors then run the identical ladder
// against whatever budget the drivers left. MaxPerTeam, when set, caps how
// many selected drivers may share a constructor team: a candidate skipped
// for the cap is simply passed over and does not advance the tier ladder.
//
// The result carries no optimality guarantee. A nil roster with a nil error
// means not even the price-ascending tier could fill the required counts.
func FindGreedyRoster(drivers, constructors []Candidate, cons Constraint) (*Roster, error) {
	if err := cons.Validate(); err != nil {
		return nil, err
	}

	selectedDrivers := fillByTiers(drivers, cons.DriverCount, cons.Budget, cons.MaxPerTeam)
	if selectedDrivers == nil {
		return nil, nil
	}

	remaining := cons.Budget - sumPrice(selectedDrivers)
	// Team caps only group drivers; constructors have no grouping above
	// themselves.
	selectedConstructors := fillByTiers(constructors, cons.ConstructorCount, remaining, 0)
	if selectedConstructors == nil {
		return nil, nil
	}

	return newRoster(selectedDrivers, selectedConstructors), nil
}

// fillByTiers runs the tier ladder until one ordering yields a complete
// selection of count candidates within budget, or returns nil when none
// does.
func fillByTiers(candidates []Candidate, count int, budget float64, maxPerTeam int) []Candidate {
	for _, t := range greedyTiers {
		if selected := greedyFill(sortedCopy(candidates, t.less), count, budget, maxPerTeam); selected != nil {
			return selected
		}
	}
	return nil
}

// greedyFill takes candidates in the given order while they fit the
// remaining budget, stopping at count selections. Returns nil when the list
// is exhausted before count is reached.
func greedyFill(ordered []Candidate, count int, budget float64, maxPerTeam int) []Candidate {
	selected := make([]Candidate, 0, count)
	remaining := budget
	teamCounts := make(map[string]int)

	for _, c := range ordered {
		if len(selected) == count {
			break
		}
		if maxPerTeam > 0 && teamCounts[c.Team] >= maxPerTeam {
			continue
		}
		if c.Price > remaining {
			continue
		}
		selected = append(selected, c)
		remaining -= c.Price
		teamCounts[c.Team]++
	}

	if len(selected) < count {
		return nil
	}
	return selected
}
