package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"nexstock/internal/assistant"
	"nexstock/internal/catalog"
)

var errNotAnObject = errors.New("reply is not a JSON object")

// resolveReply is the structured reply the model is asked for.
type resolveReply struct {
	Answer         *string                 `json:"answer"`
	FilterCriteria *catalog.FilterCriteria `json:"filterCriteria"`
}

// Resolve asks the model to interpret query against items.
func (uc *implUseCase) Resolve(ctx context.Context, query string, items []catalog.Item) assistant.Resolution {
	if !uc.llm.Available() {
		uc.l.Warnf(ctx, "assistant.Resolve: no language model configured")
		return degraded(assistant.AnswerUnavailable)
	}

	req, err := buildResolveRequest(query, items)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Resolve buildResolveRequest: %v", err)
		return degraded(assistant.AnswerUnavailable)
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Resolve GenerateContent: %v", err)
		return degraded(assistant.AnswerUnavailable)
	}

	reply, err := parseResolveReply(resp.Text())
	if err != nil {
		uc.l.Warnf(ctx, "assistant.Resolve parseResolveReply: %v", err)
		return degraded(assistant.AnswerUnavailable)
	}

	res := assistant.Resolution{Answer: assistant.AnswerEmpty}
	if reply.Answer != nil && strings.TrimSpace(*reply.Answer) != "" {
		res.Answer = *reply.Answer
	}
	if reply.FilterCriteria != nil {
		f := reply.FilterCriteria.Normalize()
		if !f.IsEmpty() {
			res.Filter = &f
		}
	}
	return res
}

func degraded(answer string) assistant.Resolution {
	return assistant.Resolution{Answer: answer, Degraded: true}
}

// parseResolveReply decodes the model text. Code fences around the JSON are tolerated.
func parseResolveReply(text string) (resolveReply, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		text = "{}"
	}
	if text == "null" {
		return resolveReply{}, errNotAnObject
	}

	var reply resolveReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return resolveReply{}, err
	}
	return reply, nil
}
