package session

import (
	"context"
	"fmt"
	"sync"

	"media-picker/internal/encoder"
	"media-picker/internal/logging"
	"media-picker/internal/normalizer"
	"media-picker/internal/pickconfig"
	"media-picker/internal/picker"
	"media-picker/internal/tempfiles"
)

// Command names accepted by Dispatch.
const (
	ActionPresent = "present"
	ActionCleanup = "cleanup"
)

// Plugin serves pick sessions and temp file cleanup.
type Plugin struct {
	picker     picker.Picker
	normalizer *normalizer.Normalizer
	temp       *tempfiles.Manager

	mu     sync.Mutex
	active map[string]*Session
}

// New returns a Plugin.
func New(p picker.Picker, n *normalizer.Normalizer, temp *tempfiles.Manager) *Plugin {
	return &Plugin{
		picker:     p,
		normalizer: n,
		temp:       temp,
		active:     make(map[string]*Session),
	}
}

// ActiveSessions returns the number of sessions still in progress.
func (p *Plugin) ActiveSessions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

func (p *Plugin) track(s *Session) {
	p.mu.Lock()
	p.active[s.ID] = s
	p.mu.Unlock()
}

func (p *Plugin) untrack(s *Session) {
	p.mu.Lock()
	delete(p.active, s.ID)
	p.mu.Unlock()
}

// Present runs one pick session to completion and returns it. cb receives
// the single Response before Present returns.
func (p *Plugin) Present(ctx context.Context, raw map[string]interface{}, cb Callback) *Session {
	s := newSession(cb)
	p.track(s)
	defer p.untrack(s)

	cfg, err := pickconfig.Parse(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("rejected configuration")
		s.finish(StateFailed, Failure(err))
		return s
	}

	if err := s.transition(StateAwaitingPick); err != nil {
		s.finish(StateFailed, Failure(err))
		return s
	}

	s.log.Debug().
		Str("media_type", string(cfg.MediaType)).
		Int("min", cfg.MinItems).
		Int("max", cfg.MaxItems).
		Bool("base64", cfg.AsBase64).
		Bool("jpeg", cfg.AsJpeg).
		Msg("presenting picker")

	outcome, err := p.picker.Pick(ctx, cfg)
	if err != nil {
		s.finish(StateFailed, Failure(fmt.Errorf("picker failed: %w", err)))
		return s
	}
	if outcome.Cancelled {
		s.finish(StateCancelled, Failure(ErrPickCanceled))
		return s
	}

	if err := s.transition(StateNormalizing); err != nil {
		s.finish(StateFailed, Failure(err))
		return s
	}

	results, err := p.normalizer.Normalize(outcome.Items, encoder.Options{
		AsBase64: cfg.AsBase64,
		AsJpeg:   cfg.AsJpeg,
	})
	if err != nil {
		s.finish(StateFailed, Failure(err))
		return s
	}

	s.finish(StateCompleted, Success(results))
	return s
}

// Cleanup purges every temp file owned by this plugin.
func (p *Plugin) Cleanup() Response {
	removed, err := p.temp.Purge()
	if err != nil {
		logging.Error("Cleanup failed after removing %d files: %v", removed, err)
		return Failure(err)
	}
	return Ack()
}

// Dispatch routes a named command. args follows the bridge convention of a
// positional argument list; present expects the configuration first.
func (p *Plugin) Dispatch(ctx context.Context, action string, args []interface{}, cb Callback) {
	switch action {
	case ActionPresent:
		var raw map[string]interface{}
		if len(args) > 0 {
			raw, _ = args[0].(map[string]interface{})
		}
		p.Present(ctx, raw, cb)
	case ActionCleanup:
		cb(p.Cleanup())
	default:
		logging.Warn("Unsupported action %q", action)
		cb(Failure(fmt.Errorf("%w: %s", ErrUnsupportedAction, action)))
	}
}

// IsCanceled reports whether resp is a picker cancellation.
func IsCanceled(resp Response) bool {
	return resp.Error != nil && resp.Error.Code == CodePickerCanceled
}
