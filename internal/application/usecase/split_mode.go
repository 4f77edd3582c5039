package usecase

import "sync/atomic"

// SplitModeState is the process-wide split-mode flag. New panes copy its
// value into CanSplit at creation time; flipping it does not touch panes
// that already exist.
type SplitModeState struct {
	enabled atomic.Bool
}

// NewSplitModeState creates the state with the given initial value.
func NewSplitModeState(enabled bool) *SplitModeState {
	s := &SplitModeState{}
	s.enabled.Store(enabled)
	return s
}

// SplitModeEnabled implements port.SplitModeSource.
func (s *SplitModeState) SplitModeEnabled() bool {
	return s.enabled.Load()
}

// Set replaces the flag. The config watcher calls this on reload.
func (s *SplitModeState) Set(enabled bool) {
	s.enabled.Store(enabled)
}
