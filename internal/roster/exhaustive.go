package roster

// FindOptimalRoster finds the roster with maximum total points whose total
// cost stays within the budget, by enumerating every unordered subset of
// DriverCount drivers crossed with every unordered subset of
// ConstructorCount constructors.
//
// Candidates are pre-sorted descending by points. That makes the driver-cost
// prune bite early and fixes the tie-break: combined points are compared with
// a strict greater-than, so the first-enumerated maximal roster under the
// points ordering wins.
//
// Complexity is C(n_d, k_d) * C(n_c, k_c), which is exponential in the
// subset sizes. That is acceptable for real F1 field sizes (about 20 drivers
// and 10 constructors); it does not scale to large pools, and callers with
// bigger pools should fall back to FindGreedyRoster (see Selector).
//
// A nil roster with a nil error means no combination fits the budget, which
// includes pools smaller than the required counts. That is an expected
// outcome, not a failure.
func FindOptimalRoster(drivers, constructors []Candidate, cons Constraint) (*Roster, error) {
	if err := cons.Validate(); err != nil {
		return nil, err
	}

	sortedDrivers := sortedCopy(drivers, byPointsDesc)
	sortedConstructors := sortedCopy(constructors, byPointsDesc)

	var (
		best       *Roster
		bestPoints = -1.0
	)

	forEachCombination(len(sortedDrivers), cons.DriverCount, func(driverIdx []int) {
		driverCombo := pick(sortedDrivers, driverIdx)
		driverCost := sumPrice(driverCombo)
		// Drivers alone already blow the budget: skip before touching
		// constructor subsets.
		if driverCost > cons.Budget {
			return
		}
		driverPoints := sumPoints(driverCombo)

		forEachCombination(len(sortedConstructors), cons.ConstructorCount, func(consIdx []int) {
			constructorCombo := pick(sortedConstructors, consIdx)
			totalCost := driverCost + sumPrice(constructorCombo)
			if totalCost > cons.Budget {
				return
			}
			totalPoints := driverPoints + sumPoints(constructorCombo)
			if totalPoints > bestPoints {
				bestPoints = totalPoints
				best = newRoster(driverCombo, constructorCombo)
			}
		})
	})

	return best, nil
}

// forEachCombination visits every unordered k-subset of {0..n-1} in
// lexicographic order, passing the index set to fn. The slice passed to fn
// is reused between calls. No subsets are produced when k > n.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k > n || k <= 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Advance to the next combination, rightmost index first.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func pick(candidates []Candidate, idx []int) []Candidate {
	out := make([]Candidate, len(idx))
	for i, j := range idx {
		out[i] = candidates[j]
	}
	return out
}
