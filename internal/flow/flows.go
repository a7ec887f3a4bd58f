package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Run executes a registered flow by name.
func (r *implRegistry) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	run, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}

	r.logger.Debug(ctx, "Dispatching flow %s (%d bytes of input)", name, len(input))
	return run(ctx, input)
}

// List returns the registered flows in registration order.
func (r *implRegistry) List() []Descriptor {
	descs := make([]Descriptor, 0, len(r.flows))
	for _, f := range r.flows {
		descs = append(descs, f.desc)
	}
	return descs
}

// Summarize turns transcript text into a markdown meeting summary.
func (r *implRegistry) Summarize(ctx context.Context, in SummarizeInput) (*SummarizeOutput, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, &InputError{Reason: "transcript is empty"}
	}

	prompt := fmt.Sprintf(summarizePrompt, in.Transcript)

	var out SummarizeOutput
	if err := r.client.GenerateJSON(ctx, prompt, summarySchema, &out); err != nil {
		return nil, fmt.Errorf("summarize flow: %w", err)
	}
	if err := out.validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// Minutes turns transcript text into a structured MoM record.
func (r *implRegistry) Minutes(ctx context.Context, in MinutesInput) (*MeetingMinutes, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, &InputError{Reason: "transcript is empty"}
	}

	prompt := fmt.Sprintf(minutesPrompt, in.Transcript)

	var out MeetingMinutes
	if err := r.client.GenerateJSON(ctx, prompt, minutesSchema, &out); err != nil {
		return nil, fmt.Errorf("minutes flow: %w", err)
	}
	if err := out.validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// ActionItems extracts owned, deadlined tasks from transcript text.
func (r *implRegistry) ActionItems(ctx context.Context, in ActionItemsInput) (*ActionItemsOutput, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, &InputError{Reason: "transcript is empty"}
	}

	prompt := fmt.Sprintf(actionItemsPrompt, in.Transcript)

	var out ActionItemsOutput
	if err := r.client.GenerateJSON(ctx, prompt, actionItemsSchema, &out); err != nil {
		return nil, fmt.Errorf("action items flow: %w", err)
	}
	if err := out.validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// Transcribe delegates a recording to the model and returns its
// transcript. The model does all audio/video understanding.
func (r *implRegistry) Transcribe(ctx context.Context, in TranscribeInput) (*TranscribeOutput, error) {
	if strings.TrimSpace(in.FilePath) == "" {
		return nil, &InputError{Reason: "file_path is required"}
	}
	if strings.TrimSpace(in.MIMEType) == "" {
		return nil, &InputError{Reason: "mime_type is required"}
	}

	text, err := r.client.GenerateFromFile(ctx, transcribePrompt, in.FilePath, in.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("transcribe flow: %w", err)
	}

	return &TranscribeOutput{Transcript: text}, nil
}
