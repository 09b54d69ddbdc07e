package session

import (
	"fmt"
	"sync"
	"time"

	"media-picker/internal/logging"
	"media-picker/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is one pick interaction. Its callback fires exactly once.
type Session struct {
	ID      string
	Started time.Time

	mu        sync.Mutex
	state     State
	callback  Callback
	delivered bool
	response  Response
	log       zerolog.Logger
}

func newSession(cb Callback) *Session {
	id := uuid.New().String()
	return &Session{
		ID:       id,
		Started:  time.Now(),
		state:    StateIdle,
		callback: cb,
		log:      logging.With("session", id),
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Response returns the delivered response and whether one was delivered.
func (s *Session) Response() (Response, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response, s.delivered
}

func (s *Session) transition(to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !canTransition(s.state, to) {
		return fmt.Errorf("invalid session transition %s -> %s", s.state, to)
	}
	s.log.Debug().Str("from", s.state.String()).Str("to", to.String()).Msg("session transition")
	s.state = to
	return nil
}

// finish moves to a terminal state and delivers resp. Later calls are ignored.
func (s *Session) finish(to State, resp Response) {
	s.mu.Lock()
	if s.delivered {
		s.mu.Unlock()
		s.log.Warn().Str("state", s.state.String()).Msg("session already delivered, dropping response")
		return
	}
	if s.state != to && !canTransition(s.state, to) {
		s.log.Error().Str("from", s.state.String()).Str("to", to.String()).Msg("forcing invalid terminal transition")
	}
	s.state = to
	s.delivered = true
	s.response = resp
	cb := s.callback
	s.mu.Unlock()

	outcome := to.String()
	metrics.SessionsTotal.WithLabelValues(outcome).Inc()
	metrics.SessionDuration.WithLabelValues(outcome).Observe(time.Since(s.Started).Seconds())
	if resp.Error != nil {
		metrics.SessionErrors.WithLabelValues(resp.Error.Code.String()).Inc()
	}

	s.log.Info().
		Str("outcome", outcome).
		Int("results", len(resp.Results)).
		Dur("duration", time.Since(s.Started)).
		Msg("session finished")

	if cb != nil {
		cb(resp)
	}
}
