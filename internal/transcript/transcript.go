// Package transcript parses meeting transcripts into speaker turns.
// It understands plain text ("Speaker: utterance" lines or free text),
// SRT and WebVTT. No model calls happen here.
package transcript

import "strings"

// Turn is a single utterance attributed to a speaker. Speaker is empty
// when the source format carries no attribution.
type Turn struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

// Transcript is the parsed form of a meeting transcript file.
type Transcript struct {
	Turns []Turn `json:"turns"`
}

// Text renders the transcript as the flat text sent to the model,
// one "Speaker: utterance" line per turn.
func (t *Transcript) Text() string {
	var b strings.Builder
	for i, turn := range t.Turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		if turn.Speaker != "" {
			b.WriteString(turn.Speaker)
			b.WriteString(": ")
		}
		b.WriteString(turn.Text)
	}
	return b.String()
}

// Empty reports whether the transcript has no usable content.
func (t *Transcript) Empty() bool {
	for _, turn := range t.Turns {
		if strings.TrimSpace(turn.Text) != "" {
			return false
		}
	}
	return true
}

// SupportedExtensions lists the transcript file extensions the
// drop-folder watcher picks up.
var SupportedExtensions = []string{".txt", ".srt", ".vtt"}
