package prices

import "time"

// samplePrice is one entry of the bundled 2025 season price grid.
type samplePrice struct {
	id    string
	team  string
	price float64
}

// Season-start driver prices for the 2025 grid, in millions.
var sampleDrivers = []samplePrice{
	{"max_verstappen", "red_bull", 30.5},
	{"lewis_hamilton", "ferrari", 28.0},
	{"charles_leclerc", "ferrari", 25.5},
	{"lando_norris", "mclaren", 24.0},
	{"oscar_piastri", "mclaren", 21.5},
	{"george_russell", "mercedes", 23.0},
	{"carlos_sainz", "williams", 20.5},
	{"sergio_perez", "red_bull", 19.0},
	{"fernando_alonso", "aston_martin", 17.5},
	{"lance_stroll", "aston_martin", 12.0},
	{"pierre_gasly", "alpine", 11.5},
	{"esteban_ocon", "alpine", 11.0},
	{"alexander_albon", "williams", 10.5},
	{"yuki_tsunoda", "rb", 9.0},
	{"daniel_ricciardo", "rb", 8.5},
	{"valtteri_bottas", "sauber", 8.0},
	{"zhou_guanyu", "sauber", 7.5},
	{"kevin_magnussen", "haas", 7.0},
	{"nico_hulkenberg", "haas", 6.5},
	{"oliver_bearman", "haas", 5.5},
}

// Season-start constructor prices for the 2025 grid, in millions.
var sampleConstructors = []samplePrice{
	{"red_bull", "", 26.0},
	{"ferrari", "", 25.5},
	{"mclaren", "", 24.0},
	{"mercedes", "", 23.5},
	{"aston_martin", "", 16.0},
	{"williams", "", 14.5},
	{"alpine", "", 12.0},
	{"rb", "", 10.5},
	{"haas", "", 8.0},
	{"sauber", "", 7.5},
}

// SampleBook returns a Book seeded with the 2025 season-start price grid,
// all quotes effective from the given time. Useful for demos and tests.
func SampleBook(effective time.Time) *Book {
	b := NewBook()
	for _, d := range sampleDrivers {
		b.AddDriverQuote(d.id, d.price, effective)
	}
	for _, c := range sampleConstructors {
		b.AddConstructorQuote(c.id, c.price, effective)
	}
	return b
}

// SampleDriverTeams maps the sample grid's driver IDs to their constructor
// team IDs.
func SampleDriverTeams() map[string]string {
	teams := make(map[string]string, len(sampleDrivers))
	for _, d := range sampleDrivers {
		teams[d.id] = d.team
	}
	return teams
}
