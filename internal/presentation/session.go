package presentation

import (
	"context"
	"errors"
	"strings"
	"sync"

	geotransport "weather_card/internal/geolocation/transport"
	"weather_card/internal/weather/transport"
	"weather_card/platform/apperr"
	"weather_card/platform/logger"

	"github.com/google/uuid"
)

// GenericErrorMessage is shown when a failed search carries no message.
const GenericErrorMessage = "Ein Fehler ist aufgetreten"

const subscriberBuffer = 8

// Searcher runs the primary weather lookup.
type Searcher interface {
	GetWeatherByCity(ctx context.Context, name string) (transport.WeatherSnapshot, error)
}

// Locator provides the best-effort location suggestion.
type Locator interface {
	Locate(ctx context.Context) (geotransport.LocationGuess, error)
}

// Session owns the state of one search box and its result card.
//
// Every submission gets the next sequence number; a result is applied only
// while its number is still the latest, and the previous in-flight lookup is
// cancelled.
type Session struct {
	id      string
	weather Searcher
	locator Locator
	log     *logger.Logger

	mu          sync.Mutex
	state       State
	seq         uint64
	cancel      context.CancelFunc
	input       string
	suggestion  string
	subscribers map[chan State]struct{}
}

// NewSession creates an Idle session. locator may be nil.
func NewSession(weather Searcher, locator Locator, log *logger.Logger) *Session {
	return &Session{
		id:          uuid.NewString(),
		weather:     weather,
		locator:     locator,
		log:         log,
		state:       Idle{},
		subscribers: make(map[chan State]struct{}),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetInput records the current content of the search field.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()
}

// Suggestion returns the location suggestion while the search field is empty.
func (s *Session) Suggestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suggestion == "" || s.input != "" {
		return "", false
	}
	return s.suggestion, true
}

// Subscribe returns a channel receiving every state change and a func that
// unsubscribes. Slow subscribers miss updates rather than block the session.
func (s *Session) Subscribe() (<-chan State, func()) {
	ch := make(chan State, subscriberBuffer)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Submit searches for query and returns the session state afterwards.
// A blank query performs no lookup and leaves the state unchanged.
func (s *Session) Submit(ctx context.Context, query string) State {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.State()
	}

	ctx = context.WithValue(ctx, logger.SessionIDKey, s.id)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.input = query
	s.setStateLocked(Loading{Query: query})
	s.mu.Unlock()

	snap, err := s.weather.GetWeatherByCity(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.WithContext(ctx).Debug("dropping superseded search result", "query", query)
		return s.state
	}
	s.cancel = nil

	if err != nil {
		s.log.WithContext(ctx).Info("search failed", "query", query, "error", err)
		s.setStateLocked(Failed{Message: errorMessage(err)})
		return s.state
	}

	s.setStateLocked(Loaded{Snapshot: snap})
	return s.state
}

// AcceptSuggestion submits the suggested city, if one is offered.
func (s *Session) AcceptSuggestion(ctx context.Context) (State, bool) {
	city, ok := s.Suggestion()
	if !ok {
		return s.State(), false
	}
	return s.Submit(ctx, city), true
}

// StartSuggestion looks up the caller's location in the background. The
// result becomes the suggestion only if no search was submitted meanwhile
// and the search field is still empty. Failures are only logged.
// The returned channel is closed when the lookup has finished.
func (s *Session) StartSuggestion(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	if s.locator == nil {
		close(done)
		return done
	}

	s.mu.Lock()
	startSeq := s.seq
	s.mu.Unlock()

	go func() {
		defer close(done)

		guess, err := s.locator.Locate(ctx)
		if err != nil {
			s.log.Warn("location suggestion unavailable", "session_id", s.id, "error", err)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq != startSeq || s.input != "" || guess.City == "" {
			return
		}
		s.suggestion = guess.City
	}()

	return done
}

func (s *Session) setStateLocked(st State) {
	s.state = st
	for ch := range s.subscribers {
		select {
		case ch <- st:
		default:
			s.log.Debug("state subscriber buffer full", "session_id", s.id)
		}
	}
}

func errorMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return GenericErrorMessage
}
