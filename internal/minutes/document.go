// Package minutes assembles the per-meeting deliverable: a combined
// markdown document and its docx rendering.
package minutes

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/flow"
)

// Document is everything the pipeline produced for one meeting.
type Document struct {
	Name        string
	GeneratedAt time.Time
	Minutes     *flow.MeetingMinutes
	Summary     *flow.SummarizeOutput
	ActionItems *flow.ActionItemsOutput
}

// Markdown renders the combined document. Sections whose flow failed
// (nil) are skipped so a partial run still yields a usable file.
func (d *Document) Markdown() string {
	var b strings.Builder

	title := d.Name
	if d.Minutes != nil && strings.TrimSpace(d.Minutes.Title) != "" {
		title = d.Minutes.Title
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_%s_\n\n", d.GeneratedAt.Format("2006-01-02 15:04"))

	if d.Minutes != nil {
		writeMinutes(&b, d.Minutes)
	}

	if d.Summary != nil && strings.TrimSpace(d.Summary.Summary) != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(strings.TrimSpace(d.Summary.Summary))
		b.WriteString("\n\n")
	}

	if d.ActionItems != nil {
		writeActionItems(&b, d.ActionItems.Items)
	}

	return b.String()
}

func writeMinutes(b *strings.Builder, m *flow.MeetingMinutes) {
	if m.Date != "" {
		fmt.Fprintf(b, "**Date:** %s\n\n", m.Date)
	}

	if len(m.Attendees) > 0 {
		fmt.Fprintf(b, "**Attendees:** %s\n\n", strings.Join(m.Attendees, ", "))
	}

	if len(m.Agenda) > 0 {
		b.WriteString("## Agenda\n\n")
		for _, item := range m.Agenda {
			fmt.Fprintf(b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	if len(m.Discussion) > 0 {
		b.WriteString("## Discussion\n\n")
		for _, p := range m.Discussion {
			fmt.Fprintf(b, "### %s\n\n%s\n\n", p.Topic, strings.TrimSpace(p.Summary))
		}
	}

	if len(m.Decisions) > 0 {
		b.WriteString("## Decisions\n\n")
		for _, d := range m.Decisions {
			fmt.Fprintf(b, "- %s\n", d)
		}
		b.WriteString("\n")
	}
}

func writeActionItems(b *strings.Builder, items []flow.ActionItem) {
	b.WriteString("## Action items\n\n")
	if len(items) == 0 {
		b.WriteString("No action items were recorded in this meeting.\n\n")
		return
	}

	for _, item := range items {
		fmt.Fprintf(b, "- **%s**", item.Task)
		var meta []string
		if item.Owner != "" {
			meta = append(meta, "owner: "+item.Owner)
		}
		if item.Deadline != "" {
			meta = append(meta, "due: "+item.Deadline)
		}
		if item.Priority != "" {
			meta = append(meta, "priority: "+item.Priority)
		}
		if len(meta) > 0 {
			fmt.Fprintf(b, " (%s)", strings.Join(meta, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
