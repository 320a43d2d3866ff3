package usecase

import (
	"context"
	"slices"
	"strings"

	"nexstock/internal/assistant"
	"nexstock/internal/catalog"
	"nexstock/internal/model"
)

// Ask resolves query against the current catalog and applies the resulting
// filter to the session's highlight set, unless a newer query overtook it.
func (uc *implUseCase) Ask(ctx context.Context, input assistant.AskInput) (assistant.AskOutput, error) {
	if strings.TrimSpace(input.SessionID) == "" {
		return assistant.AskOutput{}, assistant.ErrSessionIDRequired
	}
	if strings.TrimSpace(input.Query) == "" {
		return assistant.AskOutput{}, assistant.ErrEmptyQuery
	}

	items, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Ask Snapshot: %v", err)
		return assistant.AskOutput{}, err
	}

	s, _ := uc.session(input.SessionID, true)

	s.mu.Lock()
	s.token++
	token := s.token
	s.appendTurn(assistant.Turn{Role: assistant.RoleUser, Text: input.Query, At: uc.now()}, uc.cfg.MaxTranscript)
	s.mu.Unlock()

	res := uc.Resolve(ctx, input.Query, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendTurn(assistant.Turn{Role: assistant.RoleAssistant, Text: res.Answer, Filter: res.Filter, At: uc.now()}, uc.cfg.MaxTranscript)

	stale := token != s.token
	if stale {
		uc.l.Infof(ctx, "assistant.Ask: discarding stale reply session=%s token=%d latest=%d", input.SessionID, token, s.token)
	} else {
		applyFilter(s, items, res.Filter)
	}

	return assistant.AskOutput{
		Answer:         res.Answer,
		Filter:         res.Filter,
		HighlightedIDs: slices.Clone(s.highlighted),
		ActiveView:     s.view,
		Stale:          stale,
		Degraded:       res.Degraded,
	}, nil
}

// applyFilter recomputes the highlight set. A non-empty match switches the
// session to the inventory view; anything else just clears the highlight.
func applyFilter(s *session, items []catalog.Item, f *catalog.FilterCriteria) {
	matches := catalog.Match(items, f)
	if len(matches) == 0 {
		s.highlighted = nil
		return
	}
	s.highlighted = catalog.IDs(matches)
	s.view = model.ViewInventory
}

// Transcript returns the session's turns and current highlight state.
func (uc *implUseCase) Transcript(ctx context.Context, sessionID string) (assistant.TranscriptOutput, error) {
	if strings.TrimSpace(sessionID) == "" {
		return assistant.TranscriptOutput{}, assistant.ErrSessionIDRequired
	}

	s, _ := uc.session(sessionID, true)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(sessionID), nil
}

// ClearHighlight empties the session's highlight set.
func (uc *implUseCase) ClearHighlight(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return assistant.ErrSessionIDRequired
	}

	s, ok := uc.session(sessionID, false)
	if !ok {
		return assistant.ErrSessionNotFound
	}
	s.mu.Lock()
	s.highlighted = nil
	s.mu.Unlock()
	return nil
}
