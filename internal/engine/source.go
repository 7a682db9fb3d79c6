package engine

import "github.com/vovakirdan/board-engine/internal/core"

// InputSource yields the events that arrived since the previous poll.
// core.EventQueue is the usual implementation.
type InputSource interface {
	Poll() []core.InputEvent
}

var _ InputSource = (*core.EventQueue)(nil)

// ScriptSource replays fixed batches, one per poll, then reports quit.
type ScriptSource struct {
	batches  [][]core.InputEvent
	next     int
	quitWhen func() bool
}

// NewScriptSource creates a source that returns each batch in turn.
func NewScriptSource(batches ...[]core.InputEvent) *ScriptSource {
	return &ScriptSource{batches: batches}
}

// QuitWhen delays the final quit event until cond reports true.
func (s *ScriptSource) QuitWhen(cond func() bool) *ScriptSource {
	s.quitWhen = cond
	return s
}

// Poll returns the next batch, or a single quit event once all batches
// have been delivered.
func (s *ScriptSource) Poll() []core.InputEvent {
	if s.next >= len(s.batches) {
		if s.quitWhen != nil && !s.quitWhen() {
			return nil
		}
		return []core.InputEvent{core.QuitEvent()}
	}
	batch := s.batches[s.next]
	s.next++
	return batch
}

// Remaining returns the number of batches not yet delivered.
func (s *ScriptSource) Remaining() int {
	return len(s.batches) - s.next
}
