package llmprovider

import (
	"context"
	"errors"
	"testing"

	"nexstock/pkg/gemini"
)

type mockGeminiClient struct {
	lastReq  *gemini.Request
	response *gemini.Response
	err      error
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }

func TestGeminiAdapter_ConvertsSchemaAndResponse(t *testing.T) {
	client := &mockGeminiClient{
		response: &gemini.Response{
			Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: `{"answer":"hi"}`}}},
			Usage:   &gemini.Usage{InputTokens: 3, OutputTokens: 2, TotalTokens: 5},
		},
	}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "system"}}},
		Messages:          UserText("query"),
		ResponseMIMEType:  gemini.MimeTypeJSON,
		ResponseSchema: &Schema{
			Type: gemini.TypeObject,
			Properties: map[string]*Schema{
				"filterCriteria": {
					Type:       gemini.TypeObject,
					Nullable:   true,
					Properties: map[string]*Schema{"name": {Type: gemini.TypeString}},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text() != `{"answer":"hi"}` || resp.ProviderName != "gemini" || resp.ModelName != "gemini-test" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("expected usage to be carried over")
	}

	req := client.lastReq
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "system" {
		t.Errorf("system instruction not converted")
	}
	nested := req.ResponseSchema.Properties["filterCriteria"]
	if nested == nil || !nested.Nullable || nested.Properties["name"].Type != gemini.TypeString {
		t.Errorf("nested schema not converted: %+v", req.ResponseSchema)
	}
}

func TestGeminiAdapter_PropagatesError(t *testing.T) {
	adapter := NewGeminiAdapter(&mockGeminiClient{err: errors.New("boom")})
	if _, err := adapter.GenerateContent(context.Background(), &Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGeminiAdapter_UpperCasesSchemaTypes(t *testing.T) {
	client := &mockGeminiClient{response: &gemini.Response{}}
	adapter := NewGeminiAdapter(client)

	_, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: UserText("query"),
		ResponseSchema: &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"answer": {Type: "string"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := client.lastReq.ResponseSchema
	if got.Type != gemini.TypeObject || got.Properties["answer"].Type != gemini.TypeString {
		t.Errorf("schema types not upper-cased: %+v", got)
	}
}
