// Package scoring turns raw race-weekend performance data into fantasy
// points for drivers and constructors. The scoring tables live in an
// explicitly constructed Rules value owned by the caller; there is no
// hidden global rule set.
package scoring

// Rules holds the complete scoring table for one fantasy season. Zero
// values are meaningful (a position missing from a table scores zero), so
// construct Rules with DefaultRules unless a custom table is intended.
type Rules struct {
	QualifyingPositionPoints map[int]int `json:"qualifying_position_points"`
	RacePositionPoints       map[int]int `json:"race_position_points"`

	Q3Appearance           int `json:"q3_appearance"`
	Q2Appearance           int `json:"q2_appearance"`
	PerPositionGained      int `json:"per_position_gained"`
	PerPositionLost        int `json:"per_position_lost"`
	FinishedRace           int `json:"finished_race"`
	DNF                    int `json:"dnf"`
	Disqualified           int `json:"disqualified"`
	FastestLap             int `json:"fastest_lap"`
	DriverOfDay            int `json:"driver_of_day"`
	BeatTeammateQualifying int `json:"beat_teammate_qualifying"`
	BeatTeammateRace       int `json:"beat_teammate_race"`
	FastestPitStop         int `json:"fastest_pit_stop"`
	PitStopRecord          int `json:"pit_stop_record"`
}

// DefaultRules returns the standard F1 Fantasy scoring table.
func DefaultRules() Rules {
	return Rules{
		QualifyingPositionPoints: map[int]int{
			1: 10, 2: 9, 3: 8, 4: 7, 5: 6,
			6: 5, 7: 4, 8: 3, 9: 2, 10: 1,
			11: 0, 12: 0, 13: 0, 14: 0, 15: 0,
			16: -1, 17: -1, 18: -1, 19: -1, 20: -1,
			21: -2,
		},
		RacePositionPoints: map[int]int{
			1: 25, 2: 18, 3: 15, 4: 12, 5: 10,
			6: 8, 7: 6, 8: 4, 9: 2, 10: 1,
			11: 0, 12: 0, 13: 0, 14: 0, 15: 0,
			16: -1, 17: -1, 18: -1, 19: -1, 20: -1,
			21: -2,
		},
		Q3Appearance:           2,
		Q2Appearance:           1,
		PerPositionGained:      2,
		PerPositionLost:        -2,
		FinishedRace:           1,
		DNF:                    -15,
		Disqualified:           -20,
		FastestLap:             5,
		DriverOfDay:            10,
		BeatTeammateQualifying: 2,
		BeatTeammateRace:       3,
		FastestPitStop:         5,
		PitStopRecord:          5,
	}
}

// QualifyingPoints looks up the points for a qualifying position. Positions
// outside the table score zero.
func (r Rules) QualifyingPoints(position int) int {
	return r.QualifyingPositionPoints[position]
}

// RacePoints looks up the points for a race finishing position. Positions
// outside the table score zero.
func (r Rules) RacePoints(position int) int {
	return r.RacePositionPoints[position]
}
