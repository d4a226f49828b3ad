package roster

import "sort"

// Value returns the points earned per unit of price, the ranking metric for
// greedy selection. A free or negatively priced candidate has value 0 so it
// neither divides by zero nor jumps the value ordering.
func Value(c Candidate) float64 {
	if c.Price <= 0 {
		return 0
	}
	return c.Points / c.Price
}

// ValuedCandidate pairs a candidate with its computed value.
type ValuedCandidate struct {
	Candidate Candidate `json:"candidate"`
	Value     float64   `json:"value"`
}

// RankByValue returns the candidates ordered by descending value. The sort
// is stable so equal-value candidates keep their input order. The input
// slice is not modified.
func RankByValue(candidates []Candidate) []ValuedCandidate {
	ranked := make([]ValuedCandidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, ValuedCandidate{Candidate: c, Value: Value(c)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return ranked
}

// sortedCopy returns a copy of candidates ordered by the given less
// function, leaving the caller's slice untouched.
func sortedCopy(candidates []Candidate, less func(a, b Candidate) bool) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byPointsDesc(a, b Candidate) bool { return a.Points > b.Points }
func byValueDesc(a, b Candidate) bool  { return Value(a) > Value(b) }
func byPriceAsc(a, b Candidate) bool   { return a.Price < b.Price }
