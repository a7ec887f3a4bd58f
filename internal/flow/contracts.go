package flow

import (
	"errors"
	"fmt"
	"strings"
)

// Flow names as exposed on the HTTP surface.
const (
	FlowSummarize   = "summarize"
	FlowMinutes     = "minutes"
	FlowActionItems = "action-items"
	FlowTranscribe  = "transcribe"
)

// ErrUnknownFlow is returned by Run for unregistered flow names.
var ErrUnknownFlow = errors.New("unknown flow")

// InputError marks a request rejected before any model call.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "invalid input: " + e.Reason }

// ContractError marks a model response that decoded but violates the
// flow's output contract.
type ContractError struct {
	Flow    string
	Missing []string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("flow %s: model output missing required fields: %s",
		e.Flow, strings.Join(e.Missing, ", "))
}

// SummarizeInput is the contract for the summarize flow.
type SummarizeInput struct {
	Transcript string `json:"transcript"`
}

// SummarizeOutput carries the markdown meeting summary.
type SummarizeOutput struct {
	Summary string `json:"summary"`
}

// MinutesInput is the contract for the minutes flow.
type MinutesInput struct {
	Transcript string `json:"transcript"`
}

// MeetingMinutes is the structured Minutes of Meeting record.
type MeetingMinutes struct {
	Title      string            `json:"title"`
	Date       string            `json:"date,omitempty"`
	Attendees  []string          `json:"attendees"`
	Agenda     []string          `json:"agenda,omitempty"`
	Discussion []DiscussionPoint `json:"discussion"`
	Decisions  []string          `json:"decisions,omitempty"`
}

// DiscussionPoint is one topic covered in the meeting.
type DiscussionPoint struct {
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}

// ActionItemsInput is the contract for the action-items flow.
type ActionItemsInput struct {
	Transcript string `json:"transcript"`
}

// ActionItemsOutput carries the extracted action items.
type ActionItemsOutput struct {
	Items []ActionItem `json:"items"`
}

// ActionItem is a task extracted from the transcript. Deadline stays a
// string as emitted by the model: an ISO date when the meeting fixed
// one, otherwise fuzzy text like "next sprint" or empty.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// TranscribeInput is the contract for the transcribe flow. The file is
// a local recording; understanding it is delegated to the model.
type TranscribeInput struct {
	FilePath string `json:"file_path"`
	MIMEType string `json:"mime_type"`
}

// TranscribeOutput carries the transcript produced by the model.
type TranscribeOutput struct {
	Transcript string `json:"transcript"`
}

func (o *SummarizeOutput) validate() error {
	if strings.TrimSpace(o.Summary) == "" {
		return &ContractError{Flow: FlowSummarize, Missing: []string{"summary"}}
	}
	return nil
}

func (m *MeetingMinutes) validate() error {
	var missing []string
	if strings.TrimSpace(m.Title) == "" {
		missing = append(missing, "title")
	}
	if len(m.Discussion) == 0 {
		missing = append(missing, "discussion")
	}
	for i, p := range m.Discussion {
		if strings.TrimSpace(p.Topic) == "" {
			missing = append(missing, fmt.Sprintf("discussion[%d].topic", i))
		}
	}
	if len(missing) > 0 {
		return &ContractError{Flow: FlowMinutes, Missing: missing}
	}
	return nil
}

func (o *ActionItemsOutput) validate() error {
	var missing []string
	for i, item := range o.Items {
		if strings.TrimSpace(item.Task) == "" {
			missing = append(missing, fmt.Sprintf("items[%d].task", i))
		}
	}
	if len(missing) > 0 {
		return &ContractError{Flow: FlowActionItems, Missing: missing}
	}
	return nil
}
