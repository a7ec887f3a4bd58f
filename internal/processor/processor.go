package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/flow"
	"github.com/nguyentantai21042004/meeting-flow/internal/minutes"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcript"
)

// Process turns one dropped transcript file into minutes deliverables:
// <name>.md and <name>.docx in the output dir, then archives the input.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))

	p.logger.Info(ctx, "Processing transcript: %s", transcriptPath)

	// Step 1: Parse the transcript
	tr, err := transcript.ParseFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}
	if tr.Empty() {
		return fmt.Errorf("transcript %s has no usable content", transcriptPath)
	}
	text := tr.Text()

	// Step 2: Run the flows. A single failed flow degrades the
	// document instead of losing the whole meeting.
	doc := &minutes.Document{Name: name, GeneratedAt: time.Now()}
	failures := 0

	if doc.Minutes, err = p.flows.Minutes(ctx, flow.MinutesInput{Transcript: text}); err != nil {
		p.logger.Warn(ctx, "Minutes flow failed for %s: %v", name, err)
		failures++
	}
	if doc.Summary, err = p.flows.Summarize(ctx, flow.SummarizeInput{Transcript: text}); err != nil {
		p.logger.Warn(ctx, "Summarize flow failed for %s: %v", name, err)
		failures++
	}
	if doc.ActionItems, err = p.flows.ActionItems(ctx, flow.ActionItemsInput{Transcript: text}); err != nil {
		p.logger.Warn(ctx, "Action items flow failed for %s: %v", name, err)
		failures++
	}

	if failures == 3 {
		return fmt.Errorf("all flows failed for %s", transcriptPath)
	}

	// Step 3: Write the markdown deliverable
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
	if err := os.WriteFile(mdPath, []byte(doc.Markdown()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	// Step 4: Render the docx copy
	docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	if err := doc.RenderDocx(docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to render docx for %s: %v", name, err)
	}

	// Step 5: Move the source transcript out of the drop dir
	if err := p.archive(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", transcriptPath, err)
	}

	p.logger.Info(ctx, "Completed %s in %s (output: %s)", name, time.Since(startTime), mdPath)
	return nil
}

func (p *implProcessor) archive(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Debug(ctx, "Archived %s -> %s", path, dest)
	return nil
}
