package prices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	seasonStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	afterRace1  = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	afterRace2  = time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
)

func TestBook_PriceAt(t *testing.T) {
	b := NewBook()
	b.AddDriverQuote("lando_norris", 24.0, seasonStart)
	b.AddDriverQuote("lando_norris", 24.8, afterRace1)
	b.AddDriverQuote("lando_norris", 25.3, afterRace2)

	assert.Equal(t, 24.0, b.DriverPrice("lando_norris", seasonStart))
	assert.Equal(t, 24.0, b.DriverPrice("lando_norris", afterRace1.Add(-time.Hour)))
	assert.Equal(t, 24.8, b.DriverPrice("lando_norris", afterRace1))
	assert.Equal(t, 25.3, b.DriverPrice("lando_norris", afterRace2.AddDate(1, 0, 0)))

	// Before any quote, and unknown IDs, price as zero.
	assert.Zero(t, b.DriverPrice("lando_norris", seasonStart.Add(-time.Minute)))
	assert.Zero(t, b.DriverPrice("unknown", afterRace1))
}

func TestBook_OutOfOrderInserts(t *testing.T) {
	b := NewBook()
	b.AddConstructorQuote("mclaren", 25.0, afterRace2)
	b.AddConstructorQuote("mclaren", 24.0, seasonStart)
	b.AddConstructorQuote("mclaren", 24.5, afterRace1)

	history := b.ConstructorHistory("mclaren")
	require.Len(t, history, 3)
	assert.Equal(t, 24.0, history[0].Price)
	assert.Equal(t, 24.5, history[1].Price)
	assert.Equal(t, 25.0, history[2].Price)

	assert.Equal(t, 24.5, b.ConstructorPrice("mclaren", afterRace1.Add(time.Hour)))
}

func TestBook_Change(t *testing.T) {
	b := NewBook()
	b.AddDriverQuote("oscar_piastri", 21.5, seasonStart)
	b.AddDriverQuote("oscar_piastri", 22.3, afterRace1)

	assert.InDelta(t, 0.8, b.DriverChange("oscar_piastri", seasonStart, afterRace1), 1e-9)
	assert.InDelta(t, -0.8, b.DriverChange("oscar_piastri", afterRace1, seasonStart), 1e-9)
	assert.Zero(t, b.DriverChange("oscar_piastri", afterRace1, afterRace2))

	b.AddConstructorQuote("mclaren", 24.0, seasonStart)
	b.AddConstructorQuote("mclaren", 23.0, afterRace1)
	assert.InDelta(t, -1.0, b.ConstructorChange("mclaren", seasonStart, afterRace1), 1e-9)
}

func TestSampleBook(t *testing.T) {
	b := SampleBook(seasonStart)

	assert.Equal(t, 30.5, b.DriverPrice("max_verstappen", seasonStart))
	assert.Equal(t, 5.5, b.DriverPrice("oliver_bearman", seasonStart))
	assert.Equal(t, 26.0, b.ConstructorPrice("red_bull", seasonStart))
	assert.Equal(t, 7.5, b.ConstructorPrice("sauber", seasonStart))
	assert.Zero(t, b.DriverPrice("max_verstappen", seasonStart.Add(-time.Second)))

	teams := SampleDriverTeams()
	assert.Equal(t, "red_bull", teams["max_verstappen"])
	assert.Equal(t, "haas", teams["oliver_bearman"])
	assert.Len(t, teams, 20)
}
