package roster

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/f1-fantasy/pkg/logger"
)

// Selector applies the caller-level strategy policy: run the exhaustive
// search while the combinatorial space is small enough, and fall back to
// the tiered-greedy optimizer when the pool is too large or the exhaustive
// search finds nothing. Neither optimizer enforces this policy itself.
type Selector struct {
	// MaxCombinations bounds the driver-subset x constructor-subset space
	// the exhaustive search is allowed to enumerate. Zero applies
	// DefaultMaxCombinations.
	MaxCombinations int64
	Logger          *logrus.Logger
}

// DefaultMaxCombinations comfortably covers a real F1 field:
// C(20,5) * C(10,2) is about 700k combinations.
const DefaultMaxCombinations = int64(100_000_000)

// Result reports which strategy produced the roster.
type Result struct {
	Roster   *Roster `json:"roster"`
	Strategy string  `json:"strategy"`
	RunID    string  `json:"run_id"`
}

// Select picks a roster for the given pools. The returned Result has a nil
// Roster when no valid selection exists under the constraint.
func (s *Selector) Select(drivers, constructors []Candidate, cons Constraint) (*Result, error) {
	if err := cons.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := s.log().WithFields(logrus.Fields{
		"run_id":            runID,
		"driver_pool":       len(drivers),
		"constructor_pool":  len(constructors),
		"budget":            cons.Budget,
		"driver_count":      cons.DriverCount,
		"constructor_count": cons.ConstructorCount,
	})
	log.Info("Starting roster selection")

	space := searchSpace(len(drivers), cons.DriverCount, len(constructors), cons.ConstructorCount)
	ceiling := s.MaxCombinations
	if ceiling <= 0 {
		ceiling = DefaultMaxCombinations
	}

	if space <= ceiling {
		start := time.Now()
		roster, err := FindOptimalRoster(drivers, constructors, cons)
		if err != nil {
			return nil, err
		}
		if roster != nil {
			log.WithFields(logrus.Fields{
				"strategy":     "exhaustive",
				"combinations": space,
				"total_points": roster.TotalPoints,
				"total_cost":   roster.TotalCost,
				"duration_ms":  time.Since(start).Milliseconds(),
			}).Info("Roster selection completed")
			return &Result{Roster: roster, Strategy: "exhaustive", RunID: runID}, nil
		}
		log.WithField("combinations", space).Debug("Exhaustive search found no roster, trying greedy")
	} else {
		log.WithFields(logrus.Fields{
			"combinations": space,
			"ceiling":      ceiling,
		}).Warn("Search space exceeds ceiling, using greedy optimizer")
	}

	roster, err := FindGreedyRoster(drivers, constructors, cons)
	if err != nil {
		return nil, err
	}
	if roster == nil {
		log.Info("No valid roster exists under budget")
		return &Result{Strategy: "greedy", RunID: runID}, nil
	}
	log.WithFields(logrus.Fields{
		"strategy":     "greedy",
		"total_points": roster.TotalPoints,
		"total_cost":   roster.TotalCost,
	}).Info("Roster selection completed")
	return &Result{Roster: roster, Strategy: "greedy", RunID: runID}, nil
}

func (s *Selector) log() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logger.GetLogger()
}

// searchSpace computes C(nd, kd) * C(nc, kc), saturating at MaxInt64.
func searchSpace(nd, kd, nc, kc int) int64 {
	product := new(big.Int).Mul(binomial(nd, kd), binomial(nc, kc))
	if !product.IsInt64() {
		return int64(^uint64(0) >> 1)
	}
	return product.Int64()
}

func binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
