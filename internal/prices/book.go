// Package prices tracks time-varying driver and constructor prices as
// in-memory records. Prices change after race weekends; a lookup at a
// given time returns the most recent quote in effect at that time.
package prices

import (
	"sort"
	"time"
)

// Quote is one dated price observation.
type Quote struct {
	Price     float64   `json:"price"`
	Effective time.Time `json:"effective"`
}

// Book holds price histories for drivers and constructors. Use NewBook;
// a Book is not safe for concurrent mutation, so build it up front and
// share it read-only.
type Book struct {
	drivers      map[string][]Quote
	constructors map[string][]Quote
}

func NewBook() *Book {
	return &Book{
		drivers:      make(map[string][]Quote),
		constructors: make(map[string][]Quote),
	}
}

// AddDriverQuote records a driver price effective from the given time.
func (b *Book) AddDriverQuote(driverID string, price float64, effective time.Time) {
	b.drivers[driverID] = insertQuote(b.drivers[driverID], Quote{Price: price, Effective: effective})
}

// AddConstructorQuote records a constructor price effective from the given time.
func (b *Book) AddConstructorQuote(teamID string, price float64, effective time.Time) {
	b.constructors[teamID] = insertQuote(b.constructors[teamID], Quote{Price: price, Effective: effective})
}

// DriverPrice returns the driver's price in effect at asOf, or 0 when no
// quote that old exists.
func (b *Book) DriverPrice(driverID string, asOf time.Time) float64 {
	return priceAt(b.drivers[driverID], asOf)
}

// ConstructorPrice returns the constructor's price in effect at asOf, or 0
// when no quote that old exists.
func (b *Book) ConstructorPrice(teamID string, asOf time.Time) float64 {
	return priceAt(b.constructors[teamID], asOf)
}

// DriverChange reports how much a driver's price moved between two times.
func (b *Book) DriverChange(driverID string, from, to time.Time) float64 {
	return priceAt(b.drivers[driverID], to) - priceAt(b.drivers[driverID], from)
}

// ConstructorChange reports how much a constructor's price moved between
// two times.
func (b *Book) ConstructorChange(teamID string, from, to time.Time) float64 {
	return priceAt(b.constructors[teamID], to) - priceAt(b.constructors[teamID], from)
}

// DriverHistory returns the driver's quotes in effective-date order.
func (b *Book) DriverHistory(driverID string) []Quote {
	return append([]Quote(nil), b.drivers[driverID]...)
}

// ConstructorHistory returns the constructor's quotes in effective-date order.
func (b *Book) ConstructorHistory(teamID string) []Quote {
	return append([]Quote(nil), b.constructors[teamID]...)
}

// insertQuote keeps the history sorted ascending by effective date so
// lookups can binary search.
func insertQuote(history []Quote, q Quote) []Quote {
	i := sort.Search(len(history), func(i int) bool {
		return history[i].Effective.After(q.Effective)
	})
	history = append(history, Quote{})
	copy(history[i+1:], history[i:])
	history[i] = q
	return history
}

func priceAt(history []Quote, asOf time.Time) float64 {
	// First quote strictly after asOf; the one before it is in effect.
	i := sort.Search(len(history), func(i int) bool {
		return history[i].Effective.After(asOf)
	})
	if i == 0 {
		return 0
	}
	return history[i-1].Price
}
