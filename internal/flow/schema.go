package flow

import "google.golang.org/genai"

// Response schemas sent with each JSON flow. These are the canonical
// output contracts; keep them in lockstep with the structs in
// contracts.go.

var minutesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "One-line title describing the meeting",
		},
		"date": {
			Type:        genai.TypeString,
			Description: "Meeting date if stated in the transcript, ISO format, else empty",
		},
		"attendees": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"agenda": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"discussion": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"topic":   {Type: genai.TypeString},
					"summary": {Type: genai.TypeString},
				},
				Required: []string{"topic", "summary"},
			},
		},
		"decisions": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"title", "attendees", "discussion"},
}

var actionItemsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"items": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"task": {
						Type:        genai.TypeString,
						Description: "What has to be done",
					},
					"owner": {
						Type:        genai.TypeString,
						Description: "Person responsible, as named in the transcript",
					},
					"deadline": {
						Type:        genai.TypeString,
						Description: "Deadline as stated; empty when none was agreed",
					},
					"priority": {
						Type: genai.TypeString,
						Enum: []string{"high", "medium", "low"},
					},
				},
				Required: []string{"task", "owner"},
			},
		},
	},
	Required: []string{"items"},
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "Markdown summary of the meeting",
		},
	},
	Required: []string{"summary"},
}
