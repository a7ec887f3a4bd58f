package flow

import (
	"context"
	"encoding/json"
)

// Descriptor is the public description of a registered flow.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry resolves named flows and runs them against the model.
type Registry interface {
	// Run executes a flow by name with a raw JSON input contract,
	// returning the flow's output contract. Used by the HTTP surface.
	Run(ctx context.Context, name string, input json.RawMessage) (any, error)

	// List returns the registered flows in stable order.
	List() []Descriptor

	Summarize(ctx context.Context, in SummarizeInput) (*SummarizeOutput, error)
	Minutes(ctx context.Context, in MinutesInput) (*MeetingMinutes, error)
	ActionItems(ctx context.Context, in ActionItemsInput) (*ActionItemsOutput, error)
	Transcribe(ctx context.Context, in TranscribeInput) (*TranscribeOutput, error)
}
