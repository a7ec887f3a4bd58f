package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	reSrtIndex   = regexp.MustCompile(`^\d+$`)
	reSrtTiming  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[,.]\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}[,.]\d{3}`)
	reVttTiming  = regexp.MustCompile(`^(?:\d{2}:)?\d{2}:\d{2}\.\d{3}\s+-->\s+(?:\d{2}:)?\d{2}:\d{2}\.\d{3}`)
	reSpeakerCue = regexp.MustCompile(`^<v\s+([^>]+)>(.*)$`)
	reSpeaker    = regexp.MustCompile(`^([A-Za-z][\w .'-]{0,40}):\s+(.*)$`)
)

// ParseFile reads and parses a transcript, choosing the format from
// the file extension.
func ParseFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return ParseSRT(f)
	case ".vtt":
		return ParseVTT(f)
	default:
		return ParsePlain(f)
	}
}

// ParsePlain reads "Speaker: utterance" lines; lines without a speaker
// prefix become unattributed turns. Blank lines are skipped.
func ParsePlain(r io.Reader) (*Transcript, error) {
	var turns []Turn

	scanner := newScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := reSpeaker.FindStringSubmatch(line); m != nil {
			turns = append(turns, Turn{Speaker: m[1], Text: strings.TrimSpace(m[2])})
			continue
		}
		turns = append(turns, Turn{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return &Transcript{Turns: turns}, nil
}

// ParseSRT reads SubRip cues. Index and timing lines are dropped;
// malformed cues are skipped rather than failing the whole file.
func ParseSRT(r io.Reader) (*Transcript, error) {
	var turns []Turn

	scanner := newScanner(r)
	inCue := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			inCue = false
		case reSrtIndex.MatchString(line) && !inCue:
			// cue counter
		case reSrtTiming.MatchString(line):
			inCue = true
		case inCue:
			turns = append(turns, cueTurn(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan srt: %w", err)
	}

	return &Transcript{Turns: turns}, nil
}

// ParseVTT reads WebVTT cues, including <v Speaker> voice tags.
func ParseVTT(r io.Reader) (*Transcript, error) {
	var turns []Turn

	scanner := newScanner(r)
	inCue := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			inCue = false
		case strings.HasPrefix(line, "WEBVTT"),
			strings.HasPrefix(line, "NOTE"),
			strings.HasPrefix(line, "STYLE"):
			// header blocks
		case reVttTiming.MatchString(line):
			inCue = true
		case inCue:
			turns = append(turns, cueTurn(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan vtt: %w", err)
	}

	return &Transcript{Turns: turns}, nil
}

// cueTurn extracts the speaker from a cue text line when present,
// either as a WebVTT voice tag or a "Speaker: text" prefix.
func cueTurn(line string) Turn {
	if m := reSpeakerCue.FindStringSubmatch(line); m != nil {
		text := strings.TrimSuffix(strings.TrimSpace(m[2]), "</v>")
		return Turn{Speaker: strings.TrimSpace(m[1]), Text: strings.TrimSpace(text)}
	}
	if m := reSpeaker.FindStringSubmatch(line); m != nil {
		return Turn{Speaker: m[1], Text: strings.TrimSpace(m[2])}
	}
	return Turn{Text: line}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return scanner
}
