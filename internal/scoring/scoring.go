package scoring

// DriverWeekend captures everything about a driver's race weekend that the
// scoring rules care about.
type DriverWeekend struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	Team       string `json:"team"`

	QualifyingPosition int `json:"qualifying_position"`
	GridPosition       int `json:"grid_position"` // may differ from qualifying due to penalties
	RacePosition       int `json:"race_position"`

	Q3Appearance           bool `json:"q3_appearance"`
	Q2Appearance           bool `json:"q2_appearance"`
	BeatTeammateQualifying bool `json:"beat_teammate_qualifying"`

	FinishedRace     bool `json:"finished_race"`
	FastestLap       bool `json:"fastest_lap"`
	DriverOfDay      bool `json:"driver_of_day"`
	BeatTeammateRace bool `json:"beat_teammate_race"`
	Disqualified     bool `json:"disqualified"`
}

// ConstructorWeekend captures a constructor's race weekend: its two
// drivers' results plus team-level pit stop achievements.
type ConstructorWeekend struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`

	FastestPitStop bool `json:"fastest_pit_stop"`
	PitStopRecord  bool `json:"pit_stop_record"`

	Drivers []DriverWeekend `json:"drivers"`
}

// Score is a computed point total with its per-category breakdown. The
// breakdown keys are stable category names; the values sum to Points.
type Score struct {
	Points    int            `json:"points"`
	Breakdown map[string]int `json:"breakdown"`
}

// ScoreDriver computes a driver's weekend score under the given rules.
func ScoreDriver(rules Rules, w DriverWeekend) Score {
	breakdown := make(map[string]int)
	total := 0

	qualifying := rules.QualifyingPoints(w.QualifyingPosition)
	breakdown["qualifying_position"] = qualifying
	total += qualifying

	if w.Q3Appearance {
		breakdown["q3_appearance"] = rules.Q3Appearance
		total += rules.Q3Appearance
	} else if w.Q2Appearance {
		// Q2 points are only awarded to drivers who did not reach Q3.
		breakdown["q2_appearance"] = rules.Q2Appearance
		total += rules.Q2Appearance
	}

	race := 0
	if !w.Disqualified {
		race = rules.RacePoints(w.RacePosition)
	}
	breakdown["race_position"] = race
	total += race

	if w.FinishedRace && !w.Disqualified {
		if changed := w.GridPosition - w.RacePosition; changed > 0 {
			gained := changed * rules.PerPositionGained
			breakdown["positions_gained"] = gained
			total += gained
		} else if changed < 0 {
			lost := -changed * rules.PerPositionLost
			breakdown["positions_lost"] = lost
			total += lost
		}
	}

	switch {
	case w.Disqualified:
		breakdown["disqualified"] = rules.Disqualified
		total += rules.Disqualified
	case w.FinishedRace:
		breakdown["finished_race"] = rules.FinishedRace
		total += rules.FinishedRace
	default:
		breakdown["dnf"] = rules.DNF
		total += rules.DNF
	}

	if w.FastestLap {
		breakdown["fastest_lap"] = rules.FastestLap
		total += rules.FastestLap
	}
	if w.DriverOfDay {
		breakdown["driver_of_day"] = rules.DriverOfDay
		total += rules.DriverOfDay
	}
	if w.BeatTeammateQualifying {
		breakdown["beat_teammate_qualifying"] = rules.BeatTeammateQualifying
		total += rules.BeatTeammateQualifying
	}
	if w.BeatTeammateRace {
		breakdown["beat_teammate_race"] = rules.BeatTeammateRace
		total += rules.BeatTeammateRace
	}

	return Score{Points: total, Breakdown: breakdown}
}

// ScoreConstructor computes a constructor's weekend score: the sum of its
// drivers' points plus the team's pit stop bonuses.
func ScoreConstructor(rules Rules, w ConstructorWeekend) Score {
	breakdown := make(map[string]int)
	total := 0

	driverPoints := 0
	for _, d := range w.Drivers {
		driverPoints += ScoreDriver(rules, d).Points
	}
	breakdown["driver_points"] = driverPoints
	total += driverPoints

	if w.FastestPitStop {
		breakdown["fastest_pit_stop"] = rules.FastestPitStop
		total += rules.FastestPitStop
	}
	if w.PitStopRecord {
		breakdown["pit_stop_record"] = rules.PitStopRecord
		total += rules.PitStopRecord
	}

	return Score{Points: total, Breakdown: breakdown}
}
