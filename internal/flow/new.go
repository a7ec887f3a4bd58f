package flow

import (
	"context"
	"encoding/json"

	"github.com/nguyentantai21042004/meeting-flow/internal/llm"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type runner func(ctx context.Context, input json.RawMessage) (any, error)

type registered struct {
	desc Descriptor
	run  runner
}

type implRegistry struct {
	client llm.Client
	logger logger.Logger
	flows  []registered
	byName map[string]runner
}

// New creates a Registry with the four meeting flows registered.
func New(client llm.Client, log logger.Logger) Registry {
	r := &implRegistry{
		client: client,
		logger: log,
		byName: make(map[string]runner),
	}

	r.register(FlowSummarize,
		"Transcript text to a markdown meeting summary",
		decode(r.Summarize))
	r.register(FlowMinutes,
		"Transcript text to structured Minutes of Meeting",
		decode(r.Minutes))
	r.register(FlowActionItems,
		"Transcript text to action items with owner and deadline",
		decode(r.ActionItems))
	r.register(FlowTranscribe,
		"Audio/video recording to transcript text via the remote model",
		decode(r.Transcribe))

	return r
}

func (r *implRegistry) register(name, description string, run runner) {
	r.flows = append(r.flows, registered{
		desc: Descriptor{Name: name, Description: description},
		run:  run,
	})
	r.byName[name] = run
}

// decode adapts a typed flow entry point into the raw-JSON runner the
// HTTP surface calls.
func decode[In, Out any](fn func(context.Context, In) (*Out, error)) runner {
	return func(ctx context.Context, input json.RawMessage) (any, error) {
		var in In
		if len(input) > 0 {
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, &InputError{Reason: "malformed request body: " + err.Error()}
			}
		}
		return fn(ctx, in)
	}
}
