package usecase

import (
	"slices"
	"sync"

	"nexstock/internal/assistant"
	"nexstock/internal/model"
)

// session is one assistant conversation. token increases with every dispatched
// query; a reply is applied only if its token is still the latest.
type session struct {
	mu          sync.Mutex
	token       uint64
	turns       []assistant.Turn
	highlighted []string
	view        model.ViewState
}

// session returns the session for id, creating it with the greeting turn.
// Every access re-adds the session, so SessionTTL is an idle timeout.
func (uc *implUseCase) session(id string, create bool) (*session, bool) {
	uc.sessionsMu.Lock()
	defer uc.sessionsMu.Unlock()

	if s, ok := uc.sessions.Get(id); ok {
		uc.sessions.Add(id, s)
		return s, true
	}
	if !create {
		return nil, false
	}

	s := &session{
		turns: []assistant.Turn{{Role: assistant.RoleAssistant, Text: assistant.Greeting, At: uc.now()}},
		view:  model.ViewDashboard,
	}
	uc.sessions.Add(id, s)
	return s, true
}

// appendTurn adds t and drops the oldest turns beyond limit. Callers hold s.mu.
func (s *session) appendTurn(t assistant.Turn, limit int) {
	s.turns = append(s.turns, t)
	if over := len(s.turns) - limit; over > 0 {
		s.turns = slices.Delete(s.turns, 0, over)
	}
}

// snapshot copies the session state. Callers hold s.mu.
func (s *session) snapshot(id string) assistant.TranscriptOutput {
	return assistant.TranscriptOutput{
		SessionID:      id,
		Turns:          slices.Clone(s.turns),
		HighlightedIDs: slices.Clone(s.highlighted),
		ActiveView:     s.view,
	}
}
