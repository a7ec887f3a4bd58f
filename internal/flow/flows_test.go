package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

// fakeClient serves canned JSON per flow so no model is needed.
type fakeClient struct {
	jsonResponse string
	textResponse string
	err          error

	lastPrompt string
	lastSchema *genai.Schema
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	f.lastPrompt = prompt
	f.lastSchema = schema
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.jsonResponse), out)
}

func (f *fakeClient) GenerateFromFile(ctx context.Context, prompt, path, mimeType string) (string, error) {
	f.lastPrompt = prompt
	return f.textResponse, f.err
}

func TestList(t *testing.T) {
	r := New(&fakeClient{}, logger.New("error"))

	descs := r.List()
	if len(descs) != 4 {
		t.Fatalf("List() returned %d flows, want 4", len(descs))
	}

	want := []string{FlowSummarize, FlowMinutes, FlowActionItems, FlowTranscribe}
	for i, name := range want {
		if descs[i].Name != name {
			t.Errorf("List()[%d].Name = %q, want %q", i, descs[i].Name, name)
		}
		if descs[i].Description == "" {
			t.Errorf("List()[%d].Description is empty", i)
		}
	}
}

func TestRunUnknownFlow(t *testing.T) {
	r := New(&fakeClient{}, logger.New("error"))

	_, err := r.Run(context.Background(), "nonexistent", nil)
	if !errors.Is(err, ErrUnknownFlow) {
		t.Errorf("Run() error = %v, want ErrUnknownFlow", err)
	}
}

func TestSummarize(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"summary": "# Weekly sync\n\nShipped the release."}`}
	r := New(client, logger.New("error"))

	out, err := r.Summarize(context.Background(), SummarizeInput{Transcript: "Alice: we shipped"})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if out.Summary == "" {
		t.Error("Summarize() returned empty summary")
	}
	if client.lastSchema != summarySchema {
		t.Error("Summarize() did not send the summary schema")
	}
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	r := New(&fakeClient{}, logger.New("error"))

	_, err := r.Summarize(context.Background(), SummarizeInput{Transcript: "   "})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("Summarize() error = %v, want *InputError", err)
	}
}

func TestSummarizeContractViolation(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"summary": ""}`}
	r := New(client, logger.New("error"))

	_, err := r.Summarize(context.Background(), SummarizeInput{Transcript: "Alice: hi"})
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("Summarize() error = %v, want *ContractError", err)
	}
	if contractErr.Flow != FlowSummarize {
		t.Errorf("ContractError.Flow = %q, want %q", contractErr.Flow, FlowSummarize)
	}
}

func TestMinutes(t *testing.T) {
	client := &fakeClient{jsonResponse: `{
		"title": "Q3 planning",
		"date": "2026-08-12",
		"attendees": ["Alice", "Bob"],
		"agenda": ["Roadmap"],
		"discussion": [{"topic": "Roadmap", "summary": "Agreed to focus on billing."}],
		"decisions": ["Billing ships first"]
	}`}
	r := New(client, logger.New("error"))

	out, err := r.Minutes(context.Background(), MinutesInput{Transcript: "Alice: planning"})
	if err != nil {
		t.Fatalf("Minutes() error = %v", err)
	}
	if out.Title != "Q3 planning" {
		t.Errorf("Title = %q", out.Title)
	}
	if len(out.Attendees) != 2 || len(out.Discussion) != 1 {
		t.Errorf("unexpected minutes shape: %+v", out)
	}
}

func TestMinutesContractViolation(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing title", `{"title": "", "attendees": [], "discussion": [{"topic": "x", "summary": "y"}]}`},
		{"missing discussion", `{"title": "Sync", "attendees": ["Alice"], "discussion": []}`},
		{"blank topic", `{"title": "Sync", "attendees": [], "discussion": [{"topic": " ", "summary": "y"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeClient{jsonResponse: tt.response}, logger.New("error"))

			_, err := r.Minutes(context.Background(), MinutesInput{Transcript: "Alice: hi"})
			var contractErr *ContractError
			if !errors.As(err, &contractErr) {
				t.Errorf("Minutes() error = %v, want *ContractError", err)
			}
		})
	}
}

func TestActionItems(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"items": [
		{"task": "Migrate billing DB", "owner": "Bob", "deadline": "2026-09-01", "priority": "high"},
		{"task": "Draft release notes", "owner": "unassigned"}
	]}`}
	r := New(client, logger.New("error"))

	out, err := r.ActionItems(context.Background(), ActionItemsInput{Transcript: "Bob: I'll migrate"})
	if err != nil {
		t.Fatalf("ActionItems() error = %v", err)
	}
	if len(out.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(out.Items))
	}
	if out.Items[0].Owner != "Bob" || out.Items[0].Deadline != "2026-09-01" {
		t.Errorf("unexpected first item: %+v", out.Items[0])
	}
}

func TestActionItemsEmptyListIsValid(t *testing.T) {
	// A meeting with no commitments is a legal outcome.
	r := New(&fakeClient{jsonResponse: `{"items": []}`}, logger.New("error"))

	out, err := r.ActionItems(context.Background(), ActionItemsInput{Transcript: "Alice: just FYI"})
	if err != nil {
		t.Fatalf("ActionItems() error = %v", err)
	}
	if len(out.Items) != 0 {
		t.Errorf("got %d items, want 0", len(out.Items))
	}
}

func TestTranscribe(t *testing.T) {
	client := &fakeClient{textResponse: "Speaker 1: hello"}
	r := New(client, logger.New("error"))

	out, err := r.Transcribe(context.Background(), TranscribeInput{
		FilePath: "recording.m4a",
		MIMEType: "audio/mp4",
	})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if out.Transcript != "Speaker 1: hello" {
		t.Errorf("Transcript = %q", out.Transcript)
	}
}

func TestTranscribeInputValidation(t *testing.T) {
	r := New(&fakeClient{}, logger.New("error"))

	tests := []struct {
		name string
		in   TranscribeInput
	}{
		{"missing path", TranscribeInput{MIMEType: "audio/mp4"}},
		{"missing mime type", TranscribeInput{FilePath: "a.m4a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Transcribe(context.Background(), tt.in)
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Errorf("Transcribe() error = %v, want *InputError", err)
			}
		})
	}
}

func TestRunDecodesInput(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"summary": "ok"}`}
	r := New(client, logger.New("error"))

	out, err := r.Run(context.Background(), FlowSummarize,
		json.RawMessage(`{"transcript": "Alice: hello"}`))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	summary, ok := out.(*SummarizeOutput)
	if !ok {
		t.Fatalf("Run() returned %T, want *SummarizeOutput", out)
	}
	if summary.Summary != "ok" {
		t.Errorf("Summary = %q, want ok", summary.Summary)
	}
}

func TestRunLogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	client := &fakeClient{jsonResponse: `{"summary": "ok"}`}
	r := New(client, logger.NewWithWriter("debug", &buf))

	if _, err := r.Run(context.Background(), FlowSummarize,
		json.RawMessage(`{"transcript": "Alice: hello"}`)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Dispatching flow summarize") {
		t.Errorf("dispatch was not logged: %q", buf.String())
	}
}

func TestRunMalformedInput(t *testing.T) {
	r := New(&fakeClient{}, logger.New("error"))

	_, err := r.Run(context.Background(), FlowSummarize, json.RawMessage(`{not json`))
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("Run() error = %v, want *InputError", err)
	}
}

func TestRunPropagatesModelError(t *testing.T) {
	modelErr := fmt.Errorf("generate content: backend down")
	r := New(&fakeClient{err: modelErr}, logger.New("error"))

	_, err := r.Run(context.Background(), FlowMinutes,
		json.RawMessage(`{"transcript": "Alice: hi"}`))
	if !errors.Is(err, modelErr) {
		t.Errorf("Run() error = %v, want wrapped model error", err)
	}
}

func TestPromptsEmbedTranscript(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"summary": "ok"}`}
	r := New(client, logger.New("error"))

	_, err := r.Summarize(context.Background(), SummarizeInput{Transcript: "MARKER-TEXT"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(client.lastPrompt, "MARKER-TEXT") {
		t.Error("prompt does not contain the transcript")
	}
}
