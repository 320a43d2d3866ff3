package http

import (
	"time"

	"nexstock/internal/assistant"
	"nexstock/internal/catalog"
	"nexstock/internal/model"
)

// --- Request DTOs ---

type askReq struct {
	SessionID string `json:"-"`
	Query     string `json:"query" binding:"required,max=2000"`
}

func (r askReq) toInput() assistant.AskInput {
	return assistant.AskInput{SessionID: r.SessionID, Query: r.Query}
}

// --- Response DTOs ---

type askResp struct {
	Answer         string                  `json:"answer"`
	FilterCriteria *catalog.FilterCriteria `json:"filterCriteria"`
	HighlightedIDs []string                `json:"highlightedIds"`
	ActiveView     model.ViewState         `json:"activeView"`
	Stale          bool                    `json:"stale"`
	Degraded       bool                    `json:"degraded"`
}

func (h *handler) newAskResp(out assistant.AskOutput) askResp {
	return askResp{
		Answer:         out.Answer,
		FilterCriteria: out.Filter,
		HighlightedIDs: nonNil(out.HighlightedIDs),
		ActiveView:     out.ActiveView,
		Stale:          out.Stale,
		Degraded:       out.Degraded,
	}
}

type turnResp struct {
	Role           string                  `json:"role"`
	Text           string                  `json:"text"`
	FilterCriteria *catalog.FilterCriteria `json:"filterCriteria,omitempty"`
	At             time.Time               `json:"at"`
}

type transcriptResp struct {
	SessionID      string          `json:"sessionId"`
	Turns          []turnResp      `json:"turns"`
	HighlightedIDs []string        `json:"highlightedIds"`
	ActiveView     model.ViewState `json:"activeView"`
}

func (h *handler) newTranscriptResp(out assistant.TranscriptOutput) transcriptResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{Role: t.Role, Text: t.Text, FilterCriteria: t.Filter, At: t.At}
	}
	return transcriptResp{
		SessionID:      out.SessionID,
		Turns:          turns,
		HighlightedIDs: nonNil(out.HighlightedIDs),
		ActiveView:     out.ActiveView,
	}
}

type forecastResp struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Forecast    string    `json:"forecast"`
	Degraded    bool      `json:"degraded"`
	Stale       bool      `json:"stale"`
	GeneratedAt time.Time `json:"generatedAt"`
}

func (h *handler) newForecastResp(f assistant.Forecast, stale bool) forecastResp {
	return forecastResp{
		ProductID:   f.ProductID,
		ProductName: f.ProductName,
		Forecast:    f.Text,
		Degraded:    f.Degraded,
		Stale:       stale,
		GeneratedAt: f.GeneratedAt,
	}
}

type inFlightResp struct {
	ProductIDs []string `json:"productIds"`
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
