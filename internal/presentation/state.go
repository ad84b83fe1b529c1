// Package presentation holds the search/result state machine shared by the
// web page and the terminal session, plus the text rendering of the card.
package presentation

import "weather_card/internal/weather/transport"

// Kind names a State variant.
type Kind string

const (
	KindIdle    Kind = "idle"
	KindLoading Kind = "loading"
	KindLoaded  Kind = "loaded"
	KindFailed  Kind = "failed"
)

// State is one of Idle, Loading, Loaded or Failed.
type State interface {
	Kind() Kind
	sealed()
}

// Idle is the state before the first search.
type Idle struct{}

// Loading is the state while a search for Query is in flight.
type Loading struct {
	Query string
}

// Loaded holds the snapshot of the latest successful search.
type Loaded struct {
	Snapshot transport.WeatherSnapshot
}

// Failed holds the user-facing message of the latest failed search.
type Failed struct {
	Message string
}

func (Idle) Kind() Kind    { return KindIdle }
func (Loading) Kind() Kind { return KindLoading }
func (Loaded) Kind() Kind  { return KindLoaded }
func (Failed) Kind() Kind  { return KindFailed }

func (Idle) sealed()    {}
func (Loading) sealed() {}
func (Loaded) sealed()  {}
func (Failed) sealed()  {}
