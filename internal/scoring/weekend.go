package scoring

import (
	"time"

	"github.com/stitts-dev/f1-fantasy/internal/prices"
	"github.com/stitts-dev/f1-fantasy/internal/roster"
)

// WeekendResults collects all raw performance data from one race weekend.
type WeekendResults struct {
	RaceID   int       `json:"race_id"`
	RaceName string    `json:"race_name"`
	Circuit  string    `json:"circuit"`
	Date     time.Time `json:"date"`

	Drivers      []DriverWeekend      `json:"drivers"`
	Constructors []ConstructorWeekend `json:"constructors"`
}

// ScoredEntrant is one driver or constructor with its computed weekend
// score, its price at the weekend date, and the resulting value metric.
type ScoredEntrant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Team  string  `json:"team,omitempty"`
	Score Score   `json:"score"`
	Price float64 `json:"price"`
	Value float64 `json:"value"` // points per million, 0 when unpriced
}

// ScoredWeekend is a fully scored race weekend: the seam between scoring
// and the roster optimizer.
type ScoredWeekend struct {
	RaceID   int       `json:"race_id"`
	RaceName string    `json:"race_name"`
	Date     time.Time `json:"date"`

	Drivers      []ScoredEntrant `json:"drivers"`
	Constructors []ScoredEntrant `json:"constructors"`
}

// ScoreWeekend scores every entrant of a weekend under the given rules and
// attaches prices in effect at the weekend date. Entrants without a quote
// get price 0 and value 0 but still participate in selection.
func ScoreWeekend(rules Rules, w WeekendResults, book *prices.Book) ScoredWeekend {
	scored := ScoredWeekend{
		RaceID:       w.RaceID,
		RaceName:     w.RaceName,
		Date:         w.Date,
		Drivers:      make([]ScoredEntrant, 0, len(w.Drivers)),
		Constructors: make([]ScoredEntrant, 0, len(w.Constructors)),
	}

	for _, d := range w.Drivers {
		entrant := ScoredEntrant{
			ID:    d.DriverID,
			Name:  d.DriverName,
			Team:  d.Team,
			Score: ScoreDriver(rules, d),
			Price: book.DriverPrice(d.DriverID, w.Date),
		}
		entrant.Value = valueOf(entrant)
		scored.Drivers = append(scored.Drivers, entrant)
	}

	for _, c := range w.Constructors {
		entrant := ScoredEntrant{
			ID:    c.TeamID,
			Name:  c.TeamName,
			Score: ScoreConstructor(rules, c),
			Price: book.ConstructorPrice(c.TeamID, w.Date),
		}
		entrant.Value = valueOf(entrant)
		scored.Constructors = append(scored.Constructors, entrant)
	}

	return scored
}

func valueOf(e ScoredEntrant) float64 {
	if e.Price <= 0 {
		return 0
	}
	return float64(e.Score.Points) / e.Price
}

// DriverCandidates converts the scored drivers into optimizer candidates.
func (w ScoredWeekend) DriverCandidates() []roster.Candidate {
	return toCandidates(w.Drivers)
}

// ConstructorCandidates converts the scored constructors into optimizer
// candidates.
func (w ScoredWeekend) ConstructorCandidates() []roster.Candidate {
	return toCandidates(w.Constructors)
}

func toCandidates(entrants []ScoredEntrant) []roster.Candidate {
	out := make([]roster.Candidate, 0, len(entrants))
	for _, e := range entrants {
		out = append(out, roster.Candidate{
			ID:     e.ID,
			Team:   e.Team,
			Points: float64(e.Score.Points),
			Price:  e.Price,
		})
	}
	return out
}

// TeamScore re-derives the total points and cost of an arbitrary roster
// against this scored weekend. Selections absent from the weekend
// contribute nothing.
func (w ScoredWeekend) TeamScore(r *roster.Roster) (points int, cost float64) {
	for _, d := range w.Drivers {
		if r.HasDriver(d.ID) {
			points += d.Score.Points
			cost += d.Price
		}
	}
	for _, c := range w.Constructors {
		if r.HasConstructor(c.ID) {
			points += c.Score.Points
			cost += c.Price
		}
	}
	return points, cost
}
